package main

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGrid(t *testing.T) {
	models := grid(10, 5)
	if len(models) != 100 {
		t.Fatalf("len = %d, want 100", len(models))
	}
	first := models[0].Col(3)
	last := models[99].Col(3)
	if first != (mgl32.Vec4{-5, 0, -5, 1}) {
		t.Errorf("first instance at %v, want [-5 0 -5 1]", first)
	}
	if last != (mgl32.Vec4{4, 0, 4, 1}) {
		t.Errorf("last instance at %v, want [4 0 4 1]", last)
	}
}

func TestRotateKeepsPosition(t *testing.T) {
	models := grid(2, 0)
	before := models[3].Col(3)
	rotate(models, math.Pi/3)
	if got := models[3].Col(3); got != before {
		t.Errorf("translation changed: %v -> %v", before, got)
	}
	if models[3] == mgl32.Translate3D(1, 0, 1) {
		t.Error("rotation had no effect")
	}
}

func TestPentagonIndicesInRange(t *testing.T) {
	if len(pentagonIndices)%3 != 0 {
		t.Fatalf("%d indices is not a triangle list", len(pentagonIndices))
	}
	for i, idx := range pentagonIndices {
		if int(idx) >= len(pentagonVertices) {
			t.Errorf("index %d = %d out of range", i, idx)
		}
	}
}

func TestCheckerboard(t *testing.T) {
	img := checkerboard(8, 4)
	if img.At(0, 0) == img.At(4, 0) {
		t.Error("adjacent cells have the same color")
	}
	if img.At(0, 0) != img.At(4, 4) {
		t.Error("diagonal cells differ")
	}
}
