package pipeline

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Shaders holds the built-in shader resources.
//
//go:embed shaders/*.wgsl
var Shaders embed.FS

// DefaultShader is the name of the built-in triangle shader in Shaders.
const DefaultShader = "shaders/triangle.wgsl"

// Entry points every shader resource must define.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Language selects how shader text is handed to the backend.
type Language int

const (
	// LanguageWGSL passes the WGSL source to the backend unchanged.
	LanguageWGSL Language = iota

	// LanguageSPIRV compiles WGSL to SPIR-V with naga before module
	// creation, so syntax errors surface before any GPU object is created.
	LanguageSPIRV
)

// String returns the language name.
func (l Language) String() string {
	switch l {
	case LanguageWGSL:
		return "WGSL"
	case LanguageSPIRV:
		return "SPIR-V"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// LoadShader reads the named shader resource from fsys.
func LoadShader(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrShaderNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("pipeline: read shader %s: %w", name, err)
	}
	return string(data), nil
}

// Source converts WGSL text into a shader source for the given language.
func Source(wgsl string, lang Language) (hal.ShaderSource, error) {
	if wgsl == "" {
		return hal.ShaderSource{}, ErrEmptySource
	}
	if lang != LanguageSPIRV {
		return hal.ShaderSource{WGSL: wgsl}, nil
	}
	spirv, err := CompileSPIRV(wgsl)
	if err != nil {
		return hal.ShaderSource{}, err
	}
	return hal.ShaderSource{SPIRV: spirv}, nil
}

// CompileSPIRV compiles WGSL source to little-endian SPIR-V words.
func CompileSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
