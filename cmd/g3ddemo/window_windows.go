//go:build windows

package main

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// The Vulkan backend looks up the module instance itself.
func nativeHandles(w *glfw.Window) (display, window uintptr, err error) {
	return 0, uintptr(unsafe.Pointer(w.GetWin32Window())), nil
}
