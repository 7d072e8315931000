package razor

import (
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
)

func stageNative(s Stage) uint32 {
	switch s {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return gl.GEOMETRY_SHADER
	}
}

type shaderSlot struct {
	handle uint32
	stage  Stage
}

type uniformBinding struct {
	location int32
}

// ShaderProgram is a compiled program of vertex/fragment/geometry stages
// plus a lazily-populated, cached mapping of uniform name to GPU binding.
// Grounded on original_source/ShaderProgram.
type ShaderProgram struct {
	ctx    *Context
	handle uint32

	slots    map[Stage]*shaderSlot
	uniforms map[string]*uniformBinding
	attribs  []string

	prepared bool
	log      *slog.Logger
}

func newShaderProgram(ctx *Context) *ShaderProgram {
	return &ShaderProgram{
		ctx:      ctx,
		handle:   ctx.drv.CreateProgram(),
		slots:    make(map[Stage]*shaderSlot),
		uniforms: make(map[string]*uniformBinding),
	}
}

// Prepared reports whether both a vertex and fragment stage are present
// and the last Compile() call succeeded.
func (p *ShaderProgram) Prepared() bool { return p.prepared }

// HasSlot reports whether a stage slot is currently attached.
func (p *ShaderProgram) HasSlot(stage Stage) bool {
	_, ok := p.slots[stage]
	return ok
}

// SetLogger overrides the diagnostic logger used for compile/link errors.
func (p *ShaderProgram) SetLogger(log *slog.Logger) { p.log = log }

// AddSlot compiles source for the given stage and, on success, attaches it
// to the program. A no-op if a slot for that stage already exists, or if
// compilation fails (the slot is simply never attached; the program is left
// without that stage).
func (p *ShaderProgram) AddSlot(source string, stage Stage) *ShaderProgram {
	if p.HasSlot(stage) || source == "" {
		return p
	}

	drv := p.ctx.drv
	handle := drv.CreateShader(stageNative(stage))
	drv.ShaderSource(handle, source)
	ok, errLog := drv.CompileShader(handle)
	if !ok {
		if errLog != "" {
			diagLogger(p.log).Error("shader compile failed", "stage", stage, "log", errLog)
		}
		drv.DeleteShader(handle)
		return p
	}

	p.slots[stage] = &shaderSlot{handle: handle, stage: stage}
	drv.AttachShader(p.handle, handle)
	return p
}

// ReloadSlot detaches and discards any existing slot for the stage, then
// behaves as AddSlot.
func (p *ShaderProgram) ReloadSlot(source string, stage Stage) *ShaderProgram {
	if slot, ok := p.slots[stage]; ok {
		p.ctx.drv.DetachShader(p.handle, slot.handle)
		p.ctx.drv.DeleteShader(slot.handle)
		delete(p.slots, stage)
	}
	return p.AddSlot(source, stage)
}

// SetAttributes binds vertex attribute names to slot indices 0..n-1 in the
// given order. Must be called before Compile to take effect.
func (p *ShaderProgram) SetAttributes(names []string) *ShaderProgram {
	for i, name := range names {
		p.ctx.drv.BindAttribLocation(p.handle, uint32(i), name)
	}
	p.attribs = append([]string(nil), names...)
	return p
}

// Compile requires both a VERTEX and FRAGMENT slot, links and validates the
// program. Sets Prepared() iff both steps succeed. Errors are logged, never
// returned — the public surface favors "prepared/not prepared" over a Go
// error (spec.md §7).
func (p *ShaderProgram) Compile() *ShaderProgram {
	if !p.HasSlot(StageVertex) || !p.HasSlot(StageFragment) {
		p.prepared = false
		return p
	}

	drv := p.ctx.drv
	ok, errLog := drv.LinkProgram(p.handle)
	if !ok {
		if errLog != "" {
			diagLogger(p.log).Error("shader link failed", "log", errLog)
		}
		p.prepared = false
		return p
	}

	valOK, valLog := drv.ValidateProgram(p.handle)
	if !valOK {
		if valLog != "" {
			diagLogger(p.log).Error("shader validation failed", "log", valLog)
		}
		p.prepared = false
		return p
	}
	p.prepared = true
	return p
}

func (p *ShaderProgram) uniform(name string) *uniformBinding {
	if u, ok := p.uniforms[name]; ok {
		return u
	}
	u := &uniformBinding{location: p.ctx.drv.GetUniformLocation(p.handle, name)}
	p.uniforms[name] = u
	return u
}

// SetInt sets an integer uniform. Unknown names resolve to binding -1,
// which the driver silently ignores.
func (p *ShaderProgram) SetInt(name string, v int32) *ShaderProgram {
	p.ctx.drv.Uniform1i(p.uniform(name).location, v)
	return p
}

// SetFloat sets a scalar float uniform.
func (p *ShaderProgram) SetFloat(name string, v float32) *ShaderProgram {
	p.ctx.drv.Uniform1f(p.uniform(name).location, v)
	return p
}

// SetFloat2 sets a vec2 uniform.
func (p *ShaderProgram) SetFloat2(name string, v0, v1 float32) *ShaderProgram {
	p.ctx.drv.Uniform2f(p.uniform(name).location, v0, v1)
	return p
}

// SetFloat3 sets a vec3 uniform.
func (p *ShaderProgram) SetFloat3(name string, v0, v1, v2 float32) *ShaderProgram {
	p.ctx.drv.Uniform3f(p.uniform(name).location, v0, v1, v2)
	return p
}

// SetFloat4 sets a vec4 uniform.
func (p *ShaderProgram) SetFloat4(name string, v0, v1, v2, v3 float32) *ShaderProgram {
	p.ctx.drv.Uniform4f(p.uniform(name).location, v0, v1, v2, v3)
	return p
}

// SetMatrix4x4 sets a mat4 uniform from a column-major 16-float array.
func (p *ShaderProgram) SetMatrix4x4(name string, m *[16]float32) *ShaderProgram {
	p.ctx.drv.UniformMatrix4fv(p.uniform(name).location, m)
	return p
}

// bind selects this program for subsequent draws. Internal to
// Context.SetShader.
func (p *ShaderProgram) bind() {
	p.ctx.drv.UseProgram(p.handle)
}

// Destroy releases the GPU program and any attached shader stages. The
// ShaderProgram must not be used afterward.
func (p *ShaderProgram) Destroy() {
	drv := p.ctx.drv
	for _, slot := range p.slots {
		drv.DetachShader(p.handle, slot.handle)
		drv.DeleteShader(slot.handle)
	}
	drv.DeleteProgram(p.handle)
}
