package pipeline

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

func defaultSource(t *testing.T) string {
	t.Helper()
	src, err := LoadShader(Shaders, DefaultShader)
	if err != nil {
		t.Fatalf("LoadShader(default) failed: %v", err)
	}
	return src
}

func TestLoadShaderDefault(t *testing.T) {
	src := defaultSource(t)
	for _, entry := range []string{VertexEntryPoint, FragmentEntryPoint} {
		if !strings.Contains(src, "fn "+entry) {
			t.Errorf("default shader does not define %s", entry)
		}
	}
}

func TestLoadShaderByName(t *testing.T) {
	fsys := fstest.MapFS{
		"custom.wgsl": &fstest.MapFile{Data: []byte("// custom")},
	}
	src, err := LoadShader(fsys, "custom.wgsl")
	if err != nil {
		t.Fatalf("LoadShader failed: %v", err)
	}
	if src != "// custom" {
		t.Errorf("LoadShader = %q, want %q", src, "// custom")
	}

	_, err = LoadShader(fsys, "missing.wgsl")
	if !errors.Is(err, ErrShaderNotFound) {
		t.Errorf("LoadShader(missing) error = %v, want ErrShaderNotFound", err)
	}
}

func TestCompileSPIRV(t *testing.T) {
	words, err := CompileSPIRV(defaultSource(t))
	if err != nil {
		t.Fatalf("CompileSPIRV failed: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("CompileSPIRV returned no words")
	}
	const spirvMagic = 0x07230203
	if words[0] != spirvMagic {
		t.Errorf("first word = %#x, want SPIR-V magic %#x", words[0], spirvMagic)
	}
}

func TestCompileSPIRVInvalid(t *testing.T) {
	_, err := CompileSPIRV("fn vs_main( {")
	if !errors.Is(err, ErrShaderCompile) {
		t.Errorf("CompileSPIRV(invalid) error = %v, want ErrShaderCompile", err)
	}
}

func TestSource(t *testing.T) {
	src := defaultSource(t)

	wgsl, err := Source(src, LanguageWGSL)
	if err != nil {
		t.Fatalf("Source(WGSL) failed: %v", err)
	}
	if wgsl.WGSL != src || len(wgsl.SPIRV) != 0 {
		t.Error("Source(WGSL) should pass the text through unchanged")
	}

	spirv, err := Source(src, LanguageSPIRV)
	if err != nil {
		t.Fatalf("Source(SPIRV) failed: %v", err)
	}
	if len(spirv.SPIRV) == 0 || spirv.WGSL != "" {
		t.Error("Source(SPIRV) should carry only SPIR-V words")
	}

	if _, err := Source("", LanguageWGSL); !errors.Is(err, ErrEmptySource) {
		t.Errorf("Source(\"\") error = %v, want ErrEmptySource", err)
	}
}

func TestLanguageString(t *testing.T) {
	tests := []struct {
		lang Language
		want string
	}{
		{LanguageWGSL, "WGSL"},
		{LanguageSPIRV, "SPIR-V"},
		{Language(9), "Language(9)"},
	}
	for _, tt := range tests {
		if got := tt.lang.String(); got != tt.want {
			t.Errorf("Language(%d).String() = %q, want %q", int(tt.lang), got, tt.want)
		}
	}
}

func TestVertexBytes(t *testing.T) {
	data := vertexBytes(Triangle[:])
	if len(data) != 3*VertexStride {
		t.Fatalf("len = %d, want %d", len(data), 3*VertexStride)
	}
	want := [][2]float32{{0.75, 0.75}, {0.75, -0.75}, {-0.75, -0.75}}
	for i, w := range want {
		x := math.Float32frombits(binary.LittleEndian.Uint32(data[i*VertexStride:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(data[i*VertexStride+4:]))
		z := math.Float32frombits(binary.LittleEndian.Uint32(data[i*VertexStride+8:]))
		ww := math.Float32frombits(binary.LittleEndian.Uint32(data[i*VertexStride+12:]))
		if x != w[0] || y != w[1] || z != 0 || ww != 1 {
			t.Errorf("vertex %d = (%v, %v, %v, %v), want (%v, %v, 0, 1)", i, x, y, z, ww, w[0], w[1])
		}
	}
}

func TestTriangleIsClockwise(t *testing.T) {
	// Negative signed area in a y-up space means clockwise winding, which
	// must match FrontFaceCW or back-face culling would drop the triangle.
	a, b, c := Triangle[0], Triangle[1], Triangle[2]
	area := (b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())
	if area >= 0 {
		t.Errorf("signed area = %v, want < 0 (clockwise)", area)
	}
}

func TestVertexLayout(t *testing.T) {
	layout := vertexLayout()
	if len(layout) != 1 {
		t.Fatalf("len(layout) = %d, want 1", len(layout))
	}
	if layout[0].ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", layout[0].ArrayStride, VertexStride)
	}
	attrs := layout[0].Attributes
	if len(attrs) != 1 || attrs[0].Format != gputypes.VertexFormatFloat32x4 || attrs[0].ShaderLocation != 0 {
		t.Errorf("attributes = %+v, want one float32x4 at location 0", attrs)
	}
}

func TestBuild(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p, err := Build(device, queue, Descriptor{
		Label:  "triangle",
		Source: defaultSource(t),
		Format: gputypes.TextureFormatBGRA8Unorm,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer p.Destroy()

	if p.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format() = %v, want BGRA8Unorm", p.Format())
	}
	if p.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", p.VertexCount())
	}
	if p.shader == nil || p.layout == nil || p.pipeline == nil || p.vertices == nil {
		t.Error("expected all GPU objects to be created")
	}
}

func TestBuildSPIRV(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p, err := Build(device, queue, Descriptor{
		Label:    "triangle",
		Source:   defaultSource(t),
		Language: LanguageSPIRV,
		Format:   gputypes.TextureFormatRGBA8Unorm,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer p.Destroy()

	if p.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", p.Format())
	}
}

func TestBuildErrors(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	_, err := Build(device, queue, Descriptor{Source: defaultSource(t)})
	if !errors.Is(err, ErrUndefinedFormat) {
		t.Errorf("Build(undefined format) error = %v, want ErrUndefinedFormat", err)
	}

	_, err = Build(device, queue, Descriptor{Format: gputypes.TextureFormatBGRA8Unorm})
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("Build(empty source) error = %v, want ErrEmptySource", err)
	}

	_, err = Build(device, queue, Descriptor{
		Source:   "not wgsl",
		Language: LanguageSPIRV,
		Format:   gputypes.TextureFormatBGRA8Unorm,
	})
	if !errors.Is(err, ErrShaderCompile) {
		t.Errorf("Build(bad shader) error = %v, want ErrShaderCompile", err)
	}
}

func TestBuildCustomVertices(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	quad := []mgl32.Vec4{
		{-1, 1, 0, 1}, {1, 1, 0, 1}, {-1, -1, 0, 1},
		{1, 1, 0, 1}, {1, -1, 0, 1}, {-1, -1, 0, 1},
	}
	p, err := Build(device, queue, Descriptor{
		Source:   defaultSource(t),
		Format:   gputypes.TextureFormatBGRA8Unorm,
		Vertices: quad,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer p.Destroy()

	if p.VertexCount() != 6 {
		t.Errorf("VertexCount() = %d, want 6", p.VertexCount())
	}
}

func TestVertexDataStableAcrossBuilds(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	desc := Descriptor{Source: defaultSource(t), Format: gputypes.TextureFormatBGRA8Unorm}
	first, err := Build(device, queue, desc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer first.Destroy()
	second, err := Build(device, queue, desc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer second.Destroy()

	if string(first.VertexData()) != string(second.VertexData()) {
		t.Error("vertex data differs between builds")
	}
	// Mutating the returned copy must not affect the pipeline.
	data := first.VertexData()
	data[0] ^= 0xFF
	if string(first.VertexData()) == string(data) {
		t.Error("VertexData() exposes internal storage")
	}
}

func TestDestroyIdempotent(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p, err := Build(device, queue, Descriptor{Source: defaultSource(t), Format: gputypes.TextureFormatBGRA8Unorm})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p.Destroy()
	p.Destroy()

	if p.pipeline != nil || p.vertices != nil || p.device != nil {
		t.Error("expected resources released after Destroy")
	}
}

// fakeRenderPipeline and fakeBuffer are identity tokens for recorded calls.
type fakeRenderPipeline struct{ hal.RenderPipeline }

type fakeBuffer struct{ hal.Buffer }

type drawCall struct {
	vertexCount, instanceCount, firstVertex, firstInstance uint32
}

// recordingPass is a hal.RenderPassEncoder that records the draw sequence.
type recordingPass struct {
	hal.RenderPassEncoder

	calls    []string
	pipeline hal.RenderPipeline
	slot     uint32
	buffer   hal.Buffer
	offset   uint64
	draws    []drawCall
}

func (p *recordingPass) SetPipeline(pipeline hal.RenderPipeline) {
	p.calls = append(p.calls, "SetPipeline")
	p.pipeline = pipeline
}

func (p *recordingPass) SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64) {
	p.calls = append(p.calls, "SetVertexBuffer")
	p.slot, p.buffer, p.offset = slot, buffer, offset
}

func (p *recordingPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.calls = append(p.calls, "Draw")
	p.draws = append(p.draws, drawCall{vertexCount, instanceCount, firstVertex, firstInstance})
}

func TestRecordDrawSequence(t *testing.T) {
	rp := &fakeRenderPipeline{}
	buf := &fakeBuffer{}
	p := &Pipeline{
		pipeline:    rp,
		vertices:    buf,
		vertexData:  vertexBytes(Triangle[:]),
		vertexCount: uint32(len(Triangle)),
	}

	pass := &recordingPass{}
	p.Record(pass)

	if got := strings.Join(pass.calls, ","); got != "SetPipeline,SetVertexBuffer,Draw" {
		t.Fatalf("call sequence = %s, want SetPipeline,SetVertexBuffer,Draw", got)
	}
	if pass.pipeline != rp {
		t.Error("SetPipeline did not receive the pipeline")
	}
	if pass.slot != 0 || pass.buffer != buf || pass.offset != 0 {
		t.Errorf("SetVertexBuffer(slot=%d, offset=%d), want slot 0 offset 0 with the vertex buffer",
			pass.slot, pass.offset)
	}
	want := drawCall{vertexCount: 3, instanceCount: 1}
	if len(pass.draws) != 1 || pass.draws[0] != want {
		t.Errorf("draws = %+v, want [%+v]", pass.draws, want)
	}
}

func TestRecordBuiltPipeline(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p, err := Build(device, queue, Descriptor{
		Label:  "triangle",
		Source: defaultSource(t),
		Format: gputypes.TextureFormatBGRA8Unorm,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer p.Destroy()

	pass := &recordingPass{}
	for range 2 {
		p.Record(pass)
	}
	if len(pass.draws) != 2 {
		t.Fatalf("draws = %d, want 2", len(pass.draws))
	}
	for i, d := range pass.draws {
		if d.vertexCount != 3 || d.instanceCount != 1 {
			t.Errorf("draw %d = %+v, want 3 vertices, 1 instance", i, d)
		}
	}
	if pass.pipeline == nil || pass.buffer == nil {
		t.Error("Record bound a nil pipeline or vertex buffer")
	}
}
