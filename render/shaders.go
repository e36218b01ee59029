package render

import _ "embed"

// DefaultShaderSource is an unlit textured WGSL shader matching the global,
// material, vertex and instance layouts. Entry points vs_main and fs_main.
//
//go:embed shaders/default.wgsl
var DefaultShaderSource string
