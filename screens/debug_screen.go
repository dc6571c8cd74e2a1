package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cave-dungeons/systems"
)

// DebugScreen shows the debug log in a modal window
type DebugScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
	lineImg      *ebiten.Image
}

const debugLineHeight = 16

// NewDebugScreen creates a new debug screen over the global debug log
func NewDebugScreen() *DebugScreen {
	return &DebugScreen{
		BaseScreen:   NewBaseScreen(),
		log:          systems.GetDebugLog(),
		scrollOffset: 0,
		width:        600,
		height:       400,
		background:   color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:    color.White,
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through debug messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	// ESC or F1 closes the debug window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2
	fx, fy := float32(x), float32(y)

	// Background and frame
	vector.DrawFilledRect(screen, fx, fy, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, fx, fy, float32(s.width), float32(s.height), 2, s.textColor, false)

	title := "DEBUG LOG"
	titleX := (s.width - len(title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(screen, title, x+titleX, y+6)

	messages := s.log.Messages
	startY := 30
	maxLines := (s.height - startY - 20) / debugLineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = max(len(messages)-maxLines, 0)
	}

	if s.lineImg == nil {
		s.lineImg = ebiten.NewImage(s.width, debugLineHeight)
	}

	// Each line is printed white, then tinted with its message colour
	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		s.lineImg.Clear()
		ebitenutil.DebugPrintAt(s.lineImg, msg.Text, 10, 0)

		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(msg.GetColor())
		op.GeoM.Translate(float64(x), float64(y+startY+i*debugLineHeight))
		screen.DrawImage(s.lineImg, op)
	}

	// Scroll indicator
	if len(messages) > maxLines {
		track := float32(s.height - startY - 20)
		barHeight := float32(maxLines) / float32(len(messages)) * track
		barY := fy + float32(startY) + float32(startIdx)/float32(len(messages))*track
		vector.DrawFilledRect(screen, fx+float32(s.width-10), barY, 5, barHeight, s.textColor, false)
	}

	ebitenutil.DebugPrintAt(screen, "Up/Down: Scroll  ESC/F1: Close", x+10, y+s.height-20)
}
