// Package pipeline builds the render pipeline that draws the fixed triangle.
//
// A [Pipeline] is immutable once built. It owns its shader module, an empty
// pipeline layout, the render pipeline itself and the static vertex buffer,
// all created once and reused for every frame. The color-target format is
// fixed at build time; a pipeline must be rebuilt when the surface format
// changes.
package pipeline
