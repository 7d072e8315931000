package razor

import "unsafe"

// driver is the seam between this package's resource types and the actual
// GPU driver calls they issue. glDriver (gldriver.go) is the production
// implementation, backed by github.com/go-gl/gl/v4.6-core/gl; fakeDriver
// (driver_test_helpers_test.go) records calls for the property tests in
// spec.md §8, which require asserting call elision "against a mock driver"
// without a live GPU context.
//
// Every method here corresponds to exactly one GL entry point used by
// original_source/*.cpp. No method buffers or reorders calls: issuing one
// always means one corresponding driver call happens before the method
// returns (spec.md §5's ordering guarantee).
type driver interface {
	// Capability / fixed-function state.
	Enable(cap uint32)
	Disable(cap uint32)
	CullFace(mode uint32)
	BlendFunc(sfactor, dfactor uint32)
	DepthMask(flag bool)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	// Programs and shaders.
	CreateProgram() uint32
	DeleteProgram(p uint32)
	UseProgram(p uint32)
	CreateShader(stage uint32) uint32
	DeleteShader(s uint32)
	ShaderSource(s uint32, src string)
	CompileShader(s uint32) (ok bool, log string)
	AttachShader(p, s uint32)
	DetachShader(p, s uint32)
	BindAttribLocation(p, index uint32, name string)
	LinkProgram(p uint32) (ok bool, log string)
	ValidateProgram(p uint32) (ok bool, log string)
	GetUniformLocation(p uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, v0, v1 float32)
	Uniform3f(loc int32, v0, v1, v2 float32)
	Uniform4f(loc int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(loc int32, m *[16]float32)

	// Vertex data: arrays, buffers, attributes, draw calls.
	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)
	GenBuffer() uint32
	DeleteBuffer(b uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	BufferSubData(target uint32, offset, size int, data unsafe.Pointer)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr)
	VertexAttribIPointer(index uint32, size int32, typ uint32, stride int32, offset uintptr)
	VertexAttribDivisor(index, divisor uint32)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, typ uint32, offset uintptr)
	DrawElementsBaseVertex(mode uint32, count int32, typ uint32, offset uintptr, baseVertex int32)

	// Textures.
	GenTexture() uint32
	DeleteTexture(t uint32)
	ActiveTexture(unit uint32)
	BindTexture(target, t uint32)
	TexImage2D(target uint32, level int32, internalFormat int32, w, h int32, format, xtype uint32, data unsafe.Pointer)
	TexSubImage2D(target uint32, level, x, y, w, h int32, format, xtype uint32, data unsafe.Pointer)
	TexParameteri(target, pname uint32, param int32)
	TexParameterfv(target, pname uint32, params *[4]float32)
	GenerateMipmap(target uint32)

	// Framebuffers.
	GenFramebuffer() uint32
	DeleteFramebuffer(fb uint32)
	BindFramebuffer(target, fb uint32)
	FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32)
	DrawBuffers(bufs []uint32)
	BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask, filter uint32)
	GetInteger(pname uint32) int32
}
