package core

// Frame holds linear RGB pixel values in row-major order, top row first
type Frame struct {
	Width  int
	Height int
	Pixels []Vec3
}

// NewFrame creates a black frame of the given size
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]Vec3, width*height),
	}
}

// At returns the color of pixel i, j
func (f *Frame) At(i, j int) Vec3 {
	return f.Pixels[j*f.Width+i]
}

// Set stores the color of pixel i, j
func (f *Frame) Set(i, j int, c Vec3) {
	f.Pixels[j*f.Width+i] = c
}
