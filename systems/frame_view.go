package systems

import (
	"image/color"

	"cave-dungeons/components"
)

// EntitySprite is the drawable part of an entity
type EntitySprite struct {
	X, Y   float64
	Kind   components.EntityKind
	Colour color.RGBA
}

// FrameView is the read-only picture of one tick handed to render sinks
type FrameView struct {
	Grid        components.GridReader
	Entities    []EntitySprite
	State       GameState
	LevelNumber int
	Messages    []ColoredMessage
}

// RenderSink receives one frame per tick
type RenderSink interface {
	Render(view FrameView)
}
