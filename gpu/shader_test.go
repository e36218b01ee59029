package gpu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

const testShaderSource = `
struct Globals {
    view_proj: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> globals: Globals;

@group(1) @binding(0) var t_diffuse: texture_2d<f32>;
@group(1) @binding(1) var s_diffuse: sampler;

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) tex_coords: vec2<f32>,
};

@vertex
fn vs_main(
    @location(0) position: vec3<f32>,
    @location(1) tex_coords: vec2<f32>,
    @location(5) model_0: vec4<f32>,
    @location(6) model_1: vec4<f32>,
    @location(7) model_2: vec4<f32>,
    @location(8) model_3: vec4<f32>,
) -> VertexOutput {
    let model = mat4x4<f32>(model_0, model_1, model_2, model_3);
    var out: VertexOutput;
    out.tex_coords = tex_coords;
    out.clip_position = globals.view_proj * model * vec4<f32>(position, 1.0);
    return out;
}

@fragment
fn fs_main(input: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(t_diffuse, s_diffuse, input.tex_coords);
}
`

func testGlobalLayout(t *testing.T, ctx *Context) hal.BindGroupLayout {
	t.Helper()
	layout, err := NewBindGroupLayoutBuilder("test_globals").
		Uniform(gputypes.ShaderStageVertex | gputypes.ShaderStageFragment).
		Build(ctx)
	if err != nil {
		t.Fatalf("global layout: %v", err)
	}
	return layout
}

func TestCompileWGSL(t *testing.T) {
	words, err := CompileWGSL(testShaderSource)
	if err != nil {
		t.Fatalf("CompileWGSL: %v", err)
	}
	const spirvMagic = 0x07230203
	if len(words) == 0 {
		t.Fatal("CompileWGSL returned no words")
	}
	if words[0] != spirvMagic {
		t.Errorf("first word = %#x, want SPIR-V magic %#x", words[0], spirvMagic)
	}
}

func TestCreateShaderFromSource(t *testing.T) {
	ctx, _ := newTestContext(t, 64, 64)
	global := testGlobalLayout(t, ctx)

	s, err := ctx.CreateShaderFromSource(ShaderDescriptor{
		Label:        "test",
		Source:       testShaderSource,
		GlobalLayout: global,
	})
	if err != nil {
		t.Fatalf("CreateShaderFromSource: %v", err)
	}
	defer s.Destroy()

	if s.Pipeline() == nil || s.MaterialLayout() == nil {
		t.Fatal("shader missing pipeline or material layout")
	}
	if s.GlobalLayout() != global {
		t.Error("GlobalLayout() does not return the layout it was built with")
	}

	// Same source again is served from the SPIR-V cache.
	s2, err := ctx.CreateShaderFromSource(ShaderDescriptor{Label: "again", Source: testShaderSource, GlobalLayout: global})
	if err != nil {
		t.Fatalf("second CreateShaderFromSource: %v", err)
	}
	defer s2.Destroy()
	if st := ctx.spirv.Stats(); st.Hits != 1 || st.Misses != 1 {
		t.Errorf("cache stats = %+v, want 1 hit and 1 miss", st)
	}
}

func TestCreateShaderErrors(t *testing.T) {
	ctx, _ := newTestContext(t, 64, 64)
	global := testGlobalLayout(t, ctx)

	_, err := ctx.CreateShader(filepath.Join(t.TempDir(), "missing.wgsl"), global)
	if !IsAssetKind(err, AssetIO) {
		t.Errorf("missing file error = %v, want AssetIO", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.wgsl")
	if err := os.WriteFile(bad, []byte("fn vs_main( {"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = ctx.CreateShader(bad, global)
	if !IsAssetKind(err, AssetShaderCompile) {
		t.Errorf("bad source error = %v, want AssetShaderCompile", err)
	}

	if _, err := ctx.CreateShaderFromSource(ShaderDescriptor{Label: "nolayout", Source: testShaderSource}); err == nil {
		t.Error("expected error for nil global layout")
	}
}

func TestAssetKindString(t *testing.T) {
	for kind, want := range map[AssetKind]string{
		AssetIO:            "io",
		AssetDecode:        "decode",
		AssetShaderCompile: "shader compile",
		AssetKind(9):       "AssetKind(9)",
	} {
		if got := kind.String(); got != want {
			t.Errorf("AssetKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
