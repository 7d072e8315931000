package razor

import (
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
)

func cullFaceNative(m CullMode) uint32 {
	switch m {
	case CullFront:
		return gl.FRONT
	case CullFrontAndBack:
		return gl.FRONT_AND_BACK
	default:
		return gl.BACK
	}
}

func renderModeNative(m RenderMode) uint32 {
	switch m {
	case RenderLines:
		return gl.LINES
	case RenderLineStrip:
		return gl.LINE_STRIP
	case RenderPoints:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

// contextState is a full snapshot of the pipeline state a Context shadows,
// pushed/popped by SaveState/RestoreState.
type contextState struct {
	cull   CullMode
	blend  BlendMode
	depth  DepthMode
	shader *ShaderProgram
	target *RenderTarget
	vdata  *VertexData
}

// TextureBinding pairs a sampler slot with the texture to bind there, and
// optionally the name of the sampler uniform that should be set to that
// slot index. Used by Context.BindTextures.
type TextureBinding struct {
	Slot    int
	Texture *Texture
	Uniform string
}

// Context is the sole owner of the GPU state shadow, the sole dispatcher of
// draw calls, and the factory for every other resource. Grounded on
// original_source/Context almost line-for-line.
type Context struct {
	drv driver
	log *slog.Logger

	defaultTarget *RenderTarget
	state         contextState
	bindTable     textureBindTable
	saveStack     []contextState
}

func newContextWithDriver(drv driver, screenWidth, screenHeight, defaultFramebufferHandle int, cfg ContextConfig) *Context {
	c := &Context{drv: drv, log: cfg.DebugLog}
	c.defaultTarget = newDefaultRenderTarget(c, screenWidth, screenHeight, uint32(defaultFramebufferHandle))

	// Cold-start: shadow starts at a state deliberately inconsistent with
	// what we're about to apply (depth OFF vs the READ_WRITE we apply
	// below), forcing the depth enable and mask calls to fire. Cull and
	// blend already match the shadow (NONE), so their setters emit nothing.
	c.state = contextState{
		cull:   CullNone,
		blend:  BlendNone,
		depth:  DepthOff,
		shader: nil,
		target: c.defaultTarget,
		vdata:  nil,
	}

	if cfg.DebugLog != nil {
		c.EnableDebugOutput(cfg.DebugLog)
	}

	c.SetCullMode(CullNone)
	c.SetDepthMode(DepthReadWrite)
	c.SetBlendMode(BlendNone)
	c.SetClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3])
	return c
}

// NewContext builds the default render target around an externally-created
// framebuffer handle (the Context never deletes it), then applies the
// canonical cold-start pipeline state.
func NewContext(screenWidth, screenHeight, defaultFramebufferHandle int) *Context {
	return newContextWithDriver(glDriver{}, screenWidth, screenHeight, defaultFramebufferHandle, defaultContextConfig())
}

// NewContextWithConfig is the generalized constructor for callers that want
// a debug logger or a non-default initial clear color wired in at
// construction instead of via separate calls.
func NewContextWithConfig(screenWidth, screenHeight, defaultFramebufferHandle int, cfg ContextConfig) *Context {
	if cfg.ClearColor == ([4]float32{}) {
		cfg.ClearColor = defaultContextConfig().ClearColor
	}
	return newContextWithDriver(glDriver{}, screenWidth, screenHeight, defaultFramebufferHandle, cfg)
}

// EnableDebugOutput installs a GL_DEBUG_OUTPUT callback that forwards
// driver messages to log.
func (c *Context) EnableDebugOutput(log *slog.Logger) {
	c.log = log
	EnableDebugOutput(log)
}

// CreateRenderTarget allocates a new off-screen framebuffer sized w×h, with
// no attachments yet.
func (c *Context) CreateRenderTarget(w, h int) *RenderTarget {
	return newRenderTarget(c, w, h)
}

// CreateShaderProgram allocates a new, empty shader program.
func (c *Context) CreateShaderProgram() *ShaderProgram {
	return newShaderProgram(c)
}

// CreateVertexData allocates a new, empty vertex data set.
func (c *Context) CreateVertexData() *VertexData {
	return newVertexData(c)
}

// CreateTexture allocates a new texture of the given variant, with default
// sampling parameters applied.
func (c *Context) CreateTexture(variant TextureVariant) *Texture {
	return newTexture(c, variant)
}

func (c *Context) setCullMode(mode CullMode, force bool) {
	if !force && mode == c.state.cull {
		return
	}
	switch mode {
	case CullNone:
		c.drv.Disable(gl.CULL_FACE)
	case CullFront, CullBack, CullFrontAndBack:
		if c.state.cull == CullNone || force {
			c.drv.Enable(gl.CULL_FACE)
		}
		c.drv.CullFace(cullFaceNative(mode))
	default:
		return
	}
	c.state.cull = mode
}

// SetCullMode applies the cull mode iff it differs from the shadow.
func (c *Context) SetCullMode(mode CullMode) *Context {
	c.setCullMode(mode, false)
	return c
}

func (c *Context) setBlendMode(mode BlendMode, force bool) {
	if !force && mode == c.state.blend {
		return
	}
	switch mode {
	case BlendNone:
		c.drv.Disable(gl.BLEND)
	case BlendDefault:
		if c.state.blend == BlendNone || force {
			c.drv.Enable(gl.BLEND)
		}
		c.drv.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	default:
		return
	}
	c.state.blend = mode
}

// SetBlendMode applies the blend mode iff it differs from the shadow.
func (c *Context) SetBlendMode(mode BlendMode) *Context {
	c.setBlendMode(mode, false)
	return c
}

func (c *Context) setDepthMode(mode DepthMode, force bool) {
	if !force && mode == c.state.depth {
		return
	}
	switch mode {
	case DepthOff:
		c.drv.Disable(gl.DEPTH_TEST)
	case DepthReadOnly:
		if c.state.depth == DepthOff || force {
			c.drv.Enable(gl.DEPTH_TEST)
		}
		c.drv.DepthMask(false)
	case DepthReadWrite:
		if c.state.depth == DepthOff || force {
			c.drv.Enable(gl.DEPTH_TEST)
		}
		c.drv.DepthMask(true)
	default:
		return
	}
	c.state.depth = mode
}

// SetDepthMode applies the depth mode iff it differs from the shadow.
func (c *Context) SetDepthMode(mode DepthMode) *Context {
	c.setDepthMode(mode, false)
	return c
}

func (c *Context) setShader(s *ShaderProgram, force bool) {
	if !force && s == c.state.shader {
		return
	}
	if s != nil {
		s.bind()
	} else {
		c.drv.UseProgram(0)
	}
	c.state.shader = s
}

// SetShader applies the active program iff it differs from the shadow. A
// nil program unbinds any current program.
func (c *Context) SetShader(s *ShaderProgram) *Context {
	c.setShader(s, false)
	return c
}

func (c *Context) setRenderTarget(rt *RenderTarget, force bool) {
	if rt == nil {
		rt = c.defaultTarget
	}
	sameTarget := !force && rt == c.state.target
	sizeChanged := c.state.target == nil || rt.width != c.state.target.width || rt.height != c.state.target.height
	if sameTarget {
		return
	}
	c.drv.BindFramebuffer(gl.FRAMEBUFFER, rt.handle)
	if force || sizeChanged {
		c.drv.Viewport(0, 0, int32(rt.width), int32(rt.height))
	}
	c.state.target = rt
}

// SetRenderTarget applies the active render target iff it differs from the
// shadow. Re-issues a viewport call whenever the new target's dimensions
// differ from the previous target's. A nil argument selects the default
// render target.
func (c *Context) SetRenderTarget(rt *RenderTarget) *Context {
	c.setRenderTarget(rt, false)
	return c
}

func (c *Context) setVertexData(vd *VertexData, force bool) {
	if !force && vd == c.state.vdata {
		return
	}
	if vd != nil {
		vd.bind()
	} else {
		c.drv.BindVertexArray(0)
	}
	c.state.vdata = vd
}

// SetVertexData applies the active vertex data iff it differs from the
// shadow. A nil argument unbinds any vertex data and updates the shadow to
// none.
func (c *Context) SetVertexData(vd *VertexData) *Context {
	c.setVertexData(vd, false)
	return c
}

// BindTextures binds each entry's texture into its sampler slot, and, when
// a Uniform name is given, sets that integer uniform on the active program
// to the slot index. Out-of-range slots are ignored.
func (c *Context) BindTextures(bindings []TextureBinding) *Context {
	for _, b := range bindings {
		if b.Texture == nil {
			continue
		}
		slot := clampInt(b.Slot, 0, MaxSamplerSlots-1)
		if slot != b.Slot {
			continue
		}
		b.Texture.bindForRendering(slot)
		c.bindTable.set(slot, b.Texture.variant)
		if b.Uniform != "" && c.state.shader != nil {
			c.state.shader.SetInt(b.Uniform, int32(slot))
		}
	}
	return c
}

// UnbindAllTextures unbinds every texture recorded in the bind table and
// clears it.
func (c *Context) UnbindAllTextures() *Context {
	for variant := TextureVariant(0); variant < textureVariantCount; variant++ {
		c.unbindVariant(variant)
	}
	c.bindTable.clearAll()
	return c
}

// UnbindTexturesByVariant unbinds every texture of the given variant
// recorded in the bind table.
func (c *Context) UnbindTexturesByVariant(variant TextureVariant) *Context {
	c.unbindVariant(variant)
	c.bindTable.boundSlots(variant, func(slot int) { c.bindTable.clear(slot, variant) })
	return c
}

func (c *Context) unbindVariant(variant TextureVariant) {
	target := textureTargetNative[variant]
	c.bindTable.boundSlots(variant, func(slot int) {
		c.drv.ActiveTexture(gl.TEXTURE0 + uint32(slot))
		c.drv.BindTexture(target, 0)
	})
}

// ClearBuffer emits a single combined clear against the currently bound
// target for the requested buffer classes.
func (c *Context) ClearBuffer(color, depth, stencil bool) *Context {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if stencil {
		mask |= gl.STENCIL_BUFFER_BIT
	}
	if mask == 0 {
		return c
	}
	c.drv.Clear(mask)
	return c
}

// SetClearColor writes through to the driver immediately; it is not part
// of the shadow.
func (c *Context) SetClearColor(r, g, b, a float32) *Context {
	c.drv.ClearColor(r, g, b, a)
	return c
}

// Render issues an array draw: count vertices starting at first, with no
// index buffer involved. The active vertex data must have been set first.
func (c *Context) Render(mode RenderMode, count, first int32) *Context {
	c.drv.DrawArrays(renderModeNative(mode), first, count)
	return c
}

// RenderIndexed issues an indexed draw: count elements starting at
// byteOffset into the active vertex data's index stream.
func (c *Context) RenderIndexed(mode RenderMode, count int32, byteOffset uintptr) *Context {
	c.drv.DrawElements(renderModeNative(mode), count, gl.UNSIGNED_INT, byteOffset)
	return c
}

// RenderIndexedBaseVertex is RenderIndexed with an added base-vertex offset
// applied to every fetched index.
func (c *Context) RenderIndexedBaseVertex(mode RenderMode, count int32, byteOffset uintptr, baseVertex int32) *Context {
	c.drv.DrawElementsBaseVertex(renderModeNative(mode), count, gl.UNSIGNED_INT, byteOffset, baseVertex)
	return c
}

// SaveState pushes the full current state onto an internal stack.
func (c *Context) SaveState() *Context {
	c.saveStack = append(c.saveStack, c.state)
	return c
}

// RestoreState pops the most recently saved state and re-applies each
// field through the conditional setters, so the GPU converges to the saved
// state with the same diff discipline as any other transition. A no-op if
// the stack is empty.
func (c *Context) RestoreState() *Context {
	n := len(c.saveStack)
	if n == 0 {
		return c
	}
	saved := c.saveStack[n-1]
	c.saveStack = c.saveStack[:n-1]

	c.SetCullMode(saved.cull)
	c.SetBlendMode(saved.blend)
	c.SetDepthMode(saved.depth)
	c.SetShader(saved.shader)
	c.SetRenderTarget(saved.target)
	c.SetVertexData(saved.vdata)
	return c
}

// FrameBegin establishes a canonical baseline at the start of a frame:
// unbinds all textures, force-applies the default render target (viewport
// reset even if size is unchanged), and clears the active vertex data and
// shader bindings.
func (c *Context) FrameBegin() *Context {
	c.UnbindAllTextures()
	c.setRenderTarget(c.defaultTarget, true)
	c.setVertexData(nil, true)
	c.setShader(nil, true)
	return c
}

// FrameEnd is a semantic marker reserved for a future flush/present
// hand-off; it currently performs no work.
func (c *Context) FrameEnd() *Context {
	return c
}

// SetDefaultFramebufferHandle rewrites the default render target's
// underlying handle, used when the windowing system recreates its
// surface. Does not touch the shadow's notion of which target is active.
func (c *Context) SetDefaultFramebufferHandle(handle uint32) {
	c.defaultTarget.handle = handle
}
