package pipeline

import "errors"

var (
	// ErrShaderNotFound is returned when a named shader resource is missing.
	ErrShaderNotFound = errors.New("pipeline: shader not found")

	// ErrShaderCompile is returned when WGSL to SPIR-V compilation fails.
	ErrShaderCompile = errors.New("pipeline: shader compilation failed")

	// ErrUndefinedFormat is returned when the color-target format is undefined.
	ErrUndefinedFormat = errors.New("pipeline: undefined color-target format")

	// ErrEmptySource is returned when the shader source is empty.
	ErrEmptySource = errors.New("pipeline: empty shader source")
)
