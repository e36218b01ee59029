package main

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d/gpu"
)

// Pentagon outline split into three triangles, counter-clockwise.
var pentagonVertices = []gpu.Vertex{
	{Position: [3]float32{0, 0.625, 0}, TexCoords: [2]float32{1, 0}},
	{Position: [3]float32{-0.5, -0.5, 0}, TexCoords: [2]float32{0, 1}},
	{Position: [3]float32{0.5, -0.5, 0}, TexCoords: [2]float32{0, 0}},
	{Position: [3]float32{0, -0.5, 0}, TexCoords: [2]float32{0, 0.5}},
	{Position: [3]float32{-0.25, 0.125, 0}, TexCoords: [2]float32{0.5, 0.5}},
	{Position: [3]float32{0.25, 0.125, 0}, TexCoords: [2]float32{0, 0.5}},
}

var pentagonIndices = []uint16{0, 4, 5, 1, 3, 4, 2, 5, 3}

// grid lays size x size instances on the XZ plane, shifted by
// displacement so the grid is centered near the origin.
func grid(size int, displacement float32) []mgl32.Mat4 {
	models := make([]mgl32.Mat4, 0, size*size)
	for z := range size {
		for x := range size {
			models = append(models, mgl32.Translate3D(
				float32(x)-displacement, 0, float32(z)-displacement))
		}
	}
	return models
}

// rotate spins every model about its local Y axis by angle radians.
func rotate(models []mgl32.Mat4, angle float32) {
	r := mgl32.HomogRotate3DY(angle)
	for i := range models {
		models[i] = models[i].Mul4(r)
	}
}

// checkerboard is the texture used when no image is configured.
func checkerboard(size, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	dark := color.RGBA{R: 0x40, G: 0x80, B: 0x40, A: 0xff}
	for y := range size {
		for x := range size {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
