package core

// RGB is an 8-bit color triple shared between simulation constants and the renderer
type RGB struct {
	R, G, B uint8
}

// Components returns the channels as int32 for terminal color construction
func (c RGB) Components() (int32, int32, int32) {
	return int32(c.R), int32(c.G), int32(c.B)
}
