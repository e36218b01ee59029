//go:build !linux && !windows

package main

import (
	"errors"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func nativeHandles(*glfw.Window) (display, window uintptr, err error) {
	return 0, 0, errors.New("g3ddemo: no surface support on " + runtime.GOOS)
}
