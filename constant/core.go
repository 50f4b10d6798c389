package constant

import "time"

// Virtual screen size in simulation units
const (
	ScreenWidth  = 480.0
	ScreenHeight = 280.0
)

// MaxFrameSlice bounds a single simulation step. A slow real frame is
// subdivided into steps no larger than this before systems run
const MaxFrameSlice = time.Second / 60
