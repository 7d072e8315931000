package razor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// glDriver is the production driver: every method is a direct, unbuffered
// call into github.com/go-gl/gl/v4.6-core/gl. It holds no state of its own;
// all state lives in the Context/resource shadow that calls it.
type glDriver struct{}

func (glDriver) Enable(cap uint32)                     { gl.Enable(cap) }
func (glDriver) Disable(cap uint32)                    { gl.Disable(cap) }
func (glDriver) CullFace(mode uint32)                  { gl.CullFace(mode) }
func (glDriver) BlendFunc(sfactor, dfactor uint32)     { gl.BlendFunc(sfactor, dfactor) }
func (glDriver) DepthMask(flag bool)                   { gl.DepthMask(flag) }
func (glDriver) Viewport(x, y, w, h int32)             { gl.Viewport(x, y, w, h) }
func (glDriver) ClearColor(r, g, b, a float32)         { gl.ClearColor(r, g, b, a) }
func (glDriver) Clear(mask uint32)                     { gl.Clear(mask) }

func (glDriver) CreateProgram() uint32    { return gl.CreateProgram() }
func (glDriver) DeleteProgram(p uint32)   { gl.DeleteProgram(p) }
func (glDriver) UseProgram(p uint32)      { gl.UseProgram(p) }
func (glDriver) CreateShader(s uint32) uint32 { return gl.CreateShader(s) }
func (glDriver) DeleteShader(s uint32)    { gl.DeleteShader(s) }

func (glDriver) ShaderSource(s uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	length := int32(len(src))
	gl.ShaderSource(s, 1, csrc, &length)
}

func (glDriver) CompileShader(s uint32) (bool, string) {
	gl.CompileShader(s)
	return ivLogOK(s, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog)
}

func (glDriver) AttachShader(p, s uint32) { gl.AttachShader(p, s) }
func (glDriver) DetachShader(p, s uint32) { gl.DetachShader(p, s) }

func (glDriver) BindAttribLocation(p, index uint32, name string) {
	gl.BindAttribLocation(p, index, gl.Str(name+"\x00"))
}

func (glDriver) LinkProgram(p uint32) (bool, string) {
	gl.LinkProgram(p)
	return ivLogOK(p, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog)
}

func (glDriver) ValidateProgram(p uint32) (bool, string) {
	gl.ValidateProgram(p)
	return ivLogOK(p, gl.VALIDATE_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog)
}

func (glDriver) GetUniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, gl.Str(name+"\x00"))
}

func (glDriver) Uniform1i(loc, v int32)                      { gl.Uniform1i(loc, v) }
func (glDriver) Uniform1f(loc int32, v float32)              { gl.Uniform1f(loc, v) }
func (glDriver) Uniform2f(loc int32, v0, v1 float32)         { gl.Uniform2f(loc, v0, v1) }
func (glDriver) Uniform3f(loc int32, v0, v1, v2 float32)     { gl.Uniform3f(loc, v0, v1, v2) }
func (glDriver) Uniform4f(loc int32, v0, v1, v2, v3 float32) { gl.Uniform4f(loc, v0, v1, v2, v3) }
func (glDriver) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (glDriver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}
func (glDriver) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }
func (glDriver) BindVertexArray(vao uint32)   { gl.BindVertexArray(vao) }

func (glDriver) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}
func (glDriver) DeleteBuffer(b uint32)            { gl.DeleteBuffers(1, &b) }
func (glDriver) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (glDriver) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}
func (glDriver) BufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	gl.BufferSubData(target, offset, size, data)
}
func (glDriver) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }
func (glDriver) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, typ, normalized, stride, offset)
}
func (glDriver) VertexAttribIPointer(index uint32, size int32, typ uint32, stride int32, offset uintptr) {
	gl.VertexAttribIPointerWithOffset(index, size, typ, stride, offset)
}
func (glDriver) VertexAttribDivisor(index, divisor uint32) { gl.VertexAttribDivisor(index, divisor) }

func (glDriver) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }
func (glDriver) DrawElements(mode uint32, count int32, typ uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, typ, offset)
}
func (glDriver) DrawElementsBaseVertex(mode uint32, count int32, typ uint32, offset uintptr, baseVertex int32) {
	gl.DrawElementsBaseVertexWithOffset(mode, count, typ, offset, baseVertex)
}

func (glDriver) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}
func (glDriver) DeleteTexture(t uint32)            { gl.DeleteTextures(1, &t) }
func (glDriver) ActiveTexture(unit uint32)         { gl.ActiveTexture(unit) }
func (glDriver) BindTexture(target, t uint32)      { gl.BindTexture(target, t) }

func (glDriver) TexImage2D(target uint32, level int32, internalFormat int32, w, h int32, format, xtype uint32, data unsafe.Pointer) {
	gl.TexImage2D(target, level, internalFormat, w, h, 0, format, xtype, data)
}
func (glDriver) TexSubImage2D(target uint32, level, x, y, w, h int32, format, xtype uint32, data unsafe.Pointer) {
	gl.TexSubImage2D(target, level, x, y, w, h, format, xtype, data)
}
func (glDriver) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}
func (glDriver) TexParameterfv(target, pname uint32, params *[4]float32) {
	gl.TexParameterfv(target, pname, &params[0])
}
func (glDriver) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (glDriver) GenFramebuffer() uint32 {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return fb
}
func (glDriver) DeleteFramebuffer(fb uint32)        { gl.DeleteFramebuffers(1, &fb) }
func (glDriver) BindFramebuffer(target, fb uint32)  { gl.BindFramebuffer(target, fb) }
func (glDriver) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}
func (glDriver) DrawBuffers(bufs []uint32) {
	if len(bufs) == 0 {
		gl.DrawBuffers(0, nil)
		return
	}
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
}
func (glDriver) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask, filter uint32) {
	gl.BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}
func (glDriver) GetInteger(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

// ivLogOK drains the info log for a shader or program status query, the way
// soypat/glgl's ivLog/ivLogErr do, and reports whether the status flag was
// set (GL_TRUE).
func ivLogOK(id, plName uint32, getIV func(uint32, uint32, *int32), getInfo func(uint32, int32, *int32, *uint8)) (bool, string) {
	var status int32
	getIV(id, plName, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	getIV(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return false, ""
	}
	log := make([]byte, logLength)
	getInfo(id, logLength, nil, &log[0])
	return false, string(log[:len(log)-1])
}

// Err drains the GL error queue into a single joined error, or nil if the
// queue was empty. It is a diagnostic utility: nothing on the package's hot
// draw path calls it (spec.md §7 — driver errors are not checked here).
func Err() error {
	var errs []error
	for {
		if glErr := gl.GetError(); glErr != gl.NO_ERROR {
			errs = append(errs, glError(glErr))
		} else {
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

// ClearErrors drains and discards any pending GL errors, leaving the error
// queue empty for a subsequent Err() call to be meaningful.
func ClearErrors() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

type glError uint32

func (e glError) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	default:
		return fmt.Sprintf("GL error 0x%X", uint32(e))
	}
}

// EnableDebugOutput wires KHR_debug messages to log, adapted from
// soypat/glgl's EnableDebugOutput. If log is nil the default slog logger
// is used.
func EnableDebugOutput(log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		level := slog.LevelInfo
		switch gltype {
		case gl.DEBUG_TYPE_ERROR:
			level = slog.LevelError
		case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR, gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
			level = slog.LevelWarn
		}
		log.Log(context.Background(), level, message,
			slog.Uint64("source", uint64(source)),
			slog.Uint64("type", uint64(gltype)),
			slog.Uint64("severity", uint64(severity)),
			slog.Uint64("id", uint64(id)))
	}, nil)
}
