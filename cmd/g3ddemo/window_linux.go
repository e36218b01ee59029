//go:build linux

package main

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func nativeHandles(w *glfw.Window) (display, window uintptr, err error) {
	return uintptr(unsafe.Pointer(glfw.GetX11Display())), uintptr(w.GetX11Window()), nil
}
