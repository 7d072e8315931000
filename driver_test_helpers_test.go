package razor

import "unsafe"

// call records one recorded driver invocation for assertions in the
// property tests (P1-P3, P7 and the end-to-end scenarios from spec.md §8).
type call struct {
	name string
	args []any
}

// fakeDriver records every call it receives instead of talking to a real
// GPU, giving the state-machine tests a way to assert exactly which driver
// commands a Context operation emitted.
type fakeDriver struct {
	calls []call

	nextHandle uint32

	clearColor [4]float32
	viewport   [4]int32
	boundFB    uint32
}

func (d *fakeDriver) record(name string, args ...any) {
	d.calls = append(d.calls, call{name: name, args: args})
}

func (d *fakeDriver) countCalls(name string) int {
	n := 0
	for _, c := range d.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (d *fakeDriver) gen() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *fakeDriver) Enable(cap uint32)                 { d.record("Enable", cap) }
func (d *fakeDriver) Disable(cap uint32)                { d.record("Disable", cap) }
func (d *fakeDriver) CullFace(mode uint32)              { d.record("CullFace", mode) }
func (d *fakeDriver) BlendFunc(sfactor, dfactor uint32) { d.record("BlendFunc", sfactor, dfactor) }
func (d *fakeDriver) DepthMask(flag bool)               { d.record("DepthMask", flag) }
func (d *fakeDriver) Viewport(x, y, w, h int32) {
	d.viewport = [4]int32{x, y, w, h}
	d.record("Viewport", x, y, w, h)
}
func (d *fakeDriver) ClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
	d.record("ClearColor", r, g, b, a)
}
func (d *fakeDriver) Clear(mask uint32) { d.record("Clear", mask) }

func (d *fakeDriver) CreateProgram() uint32      { return d.gen() }
func (d *fakeDriver) DeleteProgram(p uint32)     { d.record("DeleteProgram", p) }
func (d *fakeDriver) UseProgram(p uint32)        { d.record("UseProgram", p) }
func (d *fakeDriver) CreateShader(s uint32) uint32 {
	d.record("CreateShader", s)
	return d.gen()
}
func (d *fakeDriver) DeleteShader(s uint32)      { d.record("DeleteShader", s) }
func (d *fakeDriver) ShaderSource(s uint32, src string) { d.record("ShaderSource", s, src) }
func (d *fakeDriver) CompileShader(s uint32) (bool, string) {
	d.record("CompileShader", s)
	return true, ""
}
func (d *fakeDriver) AttachShader(p, s uint32) { d.record("AttachShader", p, s) }
func (d *fakeDriver) DetachShader(p, s uint32) { d.record("DetachShader", p, s) }
func (d *fakeDriver) BindAttribLocation(p, index uint32, name string) {
	d.record("BindAttribLocation", p, index, name)
}
func (d *fakeDriver) LinkProgram(p uint32) (bool, string) {
	d.record("LinkProgram", p)
	return true, ""
}
func (d *fakeDriver) ValidateProgram(p uint32) (bool, string) {
	d.record("ValidateProgram", p)
	return true, ""
}
func (d *fakeDriver) GetUniformLocation(p uint32, name string) int32 {
	d.record("GetUniformLocation", p, name)
	return 0
}
func (d *fakeDriver) Uniform1i(loc, v int32)          { d.record("Uniform1i", loc, v) }
func (d *fakeDriver) Uniform1f(loc int32, v float32)  { d.record("Uniform1f", loc, v) }
func (d *fakeDriver) Uniform2f(loc int32, v0, v1 float32) { d.record("Uniform2f", loc, v0, v1) }
func (d *fakeDriver) Uniform3f(loc int32, v0, v1, v2 float32) {
	d.record("Uniform3f", loc, v0, v1, v2)
}
func (d *fakeDriver) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	d.record("Uniform4f", loc, v0, v1, v2, v3)
}
func (d *fakeDriver) UniformMatrix4fv(loc int32, m *[16]float32) { d.record("UniformMatrix4fv", loc) }

func (d *fakeDriver) GenVertexArray() uint32        { return d.gen() }
func (d *fakeDriver) DeleteVertexArray(vao uint32)  { d.record("DeleteVertexArray", vao) }
func (d *fakeDriver) BindVertexArray(vao uint32)    { d.record("BindVertexArray", vao) }
func (d *fakeDriver) GenBuffer() uint32             { return d.gen() }
func (d *fakeDriver) DeleteBuffer(b uint32)         { d.record("DeleteBuffer", b) }
func (d *fakeDriver) BindBuffer(target, buffer uint32) { d.record("BindBuffer", target, buffer) }
func (d *fakeDriver) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	d.record("BufferData", target, size, usage)
}
func (d *fakeDriver) BufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	d.record("BufferSubData", target, offset, size)
}
func (d *fakeDriver) EnableVertexAttribArray(index uint32) { d.record("EnableVertexAttribArray", index) }
func (d *fakeDriver) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}
func (d *fakeDriver) VertexAttribIPointer(index uint32, size int32, typ uint32, stride int32, offset uintptr) {
	d.record("VertexAttribIPointer", index, size, typ, stride, offset)
}
func (d *fakeDriver) VertexAttribDivisor(index, divisor uint32) {
	d.record("VertexAttribDivisor", index, divisor)
}
func (d *fakeDriver) DrawArrays(mode uint32, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}
func (d *fakeDriver) DrawElements(mode uint32, count int32, typ uint32, offset uintptr) {
	d.record("DrawElements", mode, count, typ, offset)
}
func (d *fakeDriver) DrawElementsBaseVertex(mode uint32, count int32, typ uint32, offset uintptr, baseVertex int32) {
	d.record("DrawElementsBaseVertex", mode, count, typ, offset, baseVertex)
}

func (d *fakeDriver) GenTexture() uint32           { return d.gen() }
func (d *fakeDriver) DeleteTexture(t uint32)       { d.record("DeleteTexture", t) }
func (d *fakeDriver) ActiveTexture(unit uint32)    { d.record("ActiveTexture", unit) }
func (d *fakeDriver) BindTexture(target, t uint32) { d.record("BindTexture", target, t) }
func (d *fakeDriver) TexImage2D(target uint32, level int32, internalFormat int32, w, h int32, format, xtype uint32, data unsafe.Pointer) {
	d.record("TexImage2D", target, level, internalFormat, w, h, format, xtype)
}
func (d *fakeDriver) TexSubImage2D(target uint32, level, x, y, w, h int32, format, xtype uint32, data unsafe.Pointer) {
	d.record("TexSubImage2D", target, level, x, y, w, h, format, xtype)
}
func (d *fakeDriver) TexParameteri(target, pname uint32, param int32) {
	d.record("TexParameteri", target, pname, param)
}
func (d *fakeDriver) TexParameterfv(target, pname uint32, params *[4]float32) {
	d.record("TexParameterfv", target, pname, *params)
}
func (d *fakeDriver) GenerateMipmap(target uint32) { d.record("GenerateMipmap", target) }

func (d *fakeDriver) GenFramebuffer() uint32       { return d.gen() }
func (d *fakeDriver) DeleteFramebuffer(fb uint32)  { d.record("DeleteFramebuffer", fb) }
func (d *fakeDriver) BindFramebuffer(target, fb uint32) {
	d.boundFB = fb
	d.record("BindFramebuffer", target, fb)
}
func (d *fakeDriver) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	d.record("FramebufferTexture2D", target, attachment, textarget, texture, level)
}
func (d *fakeDriver) DrawBuffers(bufs []uint32) {
	cp := append([]uint32(nil), bufs...)
	d.record("DrawBuffers", cp)
}
func (d *fakeDriver) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask, filter uint32) {
	d.record("BlitFramebuffer", sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}
func (d *fakeDriver) GetInteger(pname uint32) int32 {
	d.record("GetInteger", pname)
	return int32(d.boundFB)
}

// newTestContext builds a Context against a fresh fakeDriver, bypassing the
// real GL constructor paths so the state-machine tests never touch cgo.
func newTestContext(w, h int) (*Context, *fakeDriver) {
	drv := &fakeDriver{}
	ctx := newContextWithDriver(drv, w, h, 0, defaultContextConfig())
	drv.calls = nil // constructor noise isn't relevant to most assertions
	return ctx, drv
}
