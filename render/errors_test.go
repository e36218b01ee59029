package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/g3d/gpu"
	"github.com/gogpu/wgpu/hal"
)

func TestClassifySurfaceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		want        SurfaceErrorKind
		recoverable bool
		fatal       bool
	}{
		{"nil", nil, SurfaceOK, false, false},
		{"lost", hal.ErrSurfaceLost, SurfaceLost, true, false},
		{"outdated wrapped", fmt.Errorf("frame: %w", hal.ErrSurfaceOutdated), SurfaceOutdated, true, false},
		{"oom", hal.ErrDeviceOutOfMemory, SurfaceOutOfMemory, false, true},
		{"hal timeout", hal.ErrTimeout, SurfaceTimeout, false, false},
		{"submit timeout", gpu.ErrSubmitTimeout, SurfaceTimeout, false, false},
		{"other", errors.New("boom"), SurfaceOther, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySurfaceError(tt.err)
			if got != tt.want {
				t.Fatalf("ClassifySurfaceError = %v, want %v", got, tt.want)
			}
			if got.Recoverable() != tt.recoverable {
				t.Errorf("Recoverable() = %v, want %v", got.Recoverable(), tt.recoverable)
			}
			if got.Fatal() != tt.fatal {
				t.Errorf("Fatal() = %v, want %v", got.Fatal(), tt.fatal)
			}
		})
	}
}
