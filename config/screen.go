package config

// Screen layout configuration
const (
	// Cell size in pixels
	CellSize = 20

	// Padding around the grid in pixels
	Padding = 10

	// Height of the status line under the grid in pixels
	StatusHeight = 40

	// Portion of a cell's side an entity's circle takes
	EntityFilling = 0.8

	// Window dimensions in pixels (derived from grid dimensions)
	WindowWidth  = XSize*CellSize + 2*Padding
	WindowHeight = YSize*CellSize + 2*Padding + StatusHeight
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}

// Message lines shown under the grid
const VisibleMessages = 2
