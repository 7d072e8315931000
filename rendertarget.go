package razor

import "github.com/go-gl/gl/v4.6-core/gl"

func attachmentNative(t AttachmentType, colorIndex int) uint32 {
	switch t {
	case AttachmentDepth:
		return gl.DEPTH_ATTACHMENT
	case AttachmentStencil:
		return gl.STENCIL_ATTACHMENT
	default:
		return gl.COLOR_ATTACHMENT0 + uint32(colorIndex)
	}
}

func attachmentBitfield(t AttachmentType) uint32 {
	switch t {
	case AttachmentDepth:
		return gl.DEPTH_BUFFER_BIT
	case AttachmentStencil:
		return gl.STENCIL_BUFFER_BIT
	default:
		return gl.COLOR_BUFFER_BIT
	}
}

func bindingTargetNative(b BindingType) uint32 {
	switch b {
	case BindingRead:
		return gl.READ_FRAMEBUFFER
	case BindingDraw:
		return gl.DRAW_FRAMEBUFFER
	default:
		return gl.FRAMEBUFFER
	}
}

// RenderTargetSlot is one named attachment binding point on a RenderTarget.
type RenderTargetSlot struct {
	Type       AttachmentType
	Texture    *Texture
	Face       TextureFace
	Level      int
	colorIndex int // dense index in [0, MaxColorAttachments) for AttachmentColor
	owned      bool
}

// RenderTarget is an off-screen framebuffer composed of named color/depth/
// stencil attachments. Grounded on original_source/RenderBuffer.
type RenderTarget struct {
	ctx    *Context
	handle uint32
	width  int
	height int

	slots              map[string]*RenderTargetSlot
	colorAttachments   int
}

func newRenderTarget(ctx *Context, w, h int) *RenderTarget {
	return &RenderTarget{
		ctx:    ctx,
		handle: ctx.drv.GenFramebuffer(),
		width:  w,
		height: h,
		slots:  make(map[string]*RenderTargetSlot),
	}
}

// newDefaultRenderTarget wraps an externally-owned framebuffer handle
// (typically the windowing system's on-screen target). The Context never
// deletes this handle.
func newDefaultRenderTarget(ctx *Context, w, h int, handle uint32) *RenderTarget {
	return &RenderTarget{
		ctx:    ctx,
		handle: handle,
		width:  w,
		height: h,
		slots:  make(map[string]*RenderTargetSlot),
	}
}

func (rt *RenderTarget) Width() int  { return rt.width }
func (rt *RenderTarget) Height() int { return rt.height }

// NativeHandle returns the GPU framebuffer handle.
func (rt *RenderTarget) NativeHandle() uint32 { return rt.handle }

func (rt *RenderTarget) addSlotImpl(name string, typ AttachmentType, tex *Texture, face TextureFace, level int, owned bool) *RenderTargetSlot {
	if typ != AttachmentColor {
		if rt.GetSlotByType(typ) != nil {
			return nil
		}
	} else if rt.colorAttachments >= MaxColorAttachments {
		return nil
	}

	slot := &RenderTargetSlot{
		Type:       typ,
		Texture:    tex,
		Face:       face,
		Level:      level,
		colorIndex: rt.colorAttachments,
		owned:      owned,
	}
	if typ == AttachmentColor {
		rt.colorAttachments++
	}
	rt.slots[name] = slot

	rt.ctx.drv.BindFramebuffer(gl.FRAMEBUFFER, rt.handle)
	textarget := textureTargetNative[tex.variant]
	if tex.variant == TextureCube {
		textarget = cubeFaceNative[face]
	}
	rt.ctx.drv.FramebufferTexture2D(gl.FRAMEBUFFER, attachmentNative(typ, slot.colorIndex), textarget, tex.handle, int32(level))
	return slot
}

// AddSlot attaches an externally-owned texture. The target does not own it.
func (rt *RenderTarget) AddSlot(name string, typ AttachmentType, tex *Texture, face TextureFace, level int) *RenderTargetSlot {
	return rt.addSlotImpl(name, typ, tex, face, level, false)
}

// AddSlotFromFormat is the convenience overload: it creates a matching
// texture sized to the target, linear-filtered, owned by the target.
func (rt *RenderTarget) AddSlotFromFormat(name string, typ AttachmentType, format TextureFormat) *RenderTargetSlot {
	tex := newTexture(rt.ctx, Texture2D)
	tex.CreateFromFormat(format, rt.width, rt.height)
	tex.SetFilterMinMag(FilterLinear, FilterLinear)
	return rt.addSlotImpl(name, typ, tex, FacePlane, 0, true)
}

// GetSlot looks up a slot by name.
func (rt *RenderTarget) GetSlot(name string) *RenderTargetSlot {
	return rt.slots[name]
}

// GetSlotByType returns the first slot of the given type, in map iteration
// order (meaningful only for DEPTH/STENCIL, since at most one of each can
// exist).
func (rt *RenderTarget) GetSlotByType(typ AttachmentType) *RenderTargetSlot {
	for _, s := range rt.slots {
		if s.Type == typ {
			return s
		}
	}
	return nil
}

func (rt *RenderTarget) deleteSlotName(name string) {
	slot, ok := rt.slots[name]
	if !ok {
		return
	}
	if slot.owned {
		slot.Texture.Destroy()
	}
	delete(rt.slots, name)
}

// DeleteSlot removes the named slot, destroying its texture iff owned.
func (rt *RenderTarget) DeleteSlot(name string) *RenderTarget {
	rt.deleteSlotName(name)
	return rt
}

// DeleteSlotByType removes every slot of the given type.
func (rt *RenderTarget) DeleteSlotByType(typ AttachmentType) *RenderTarget {
	var names []string
	for name, s := range rt.slots {
		if s.Type == typ {
			names = append(names, name)
		}
	}
	for _, name := range names {
		rt.deleteSlotName(name)
	}
	return rt
}

// ReplaceSlotTexture swaps the backing texture of an existing slot,
// releasing the prior texture iff it was owned, and marks the slot as
// non-owned afterward.
func (rt *RenderTarget) ReplaceSlotTexture(name string, tex *Texture, face TextureFace, level int) *RenderTarget {
	slot, ok := rt.slots[name]
	if !ok {
		return rt
	}
	if slot.owned {
		slot.Texture.Destroy()
	}
	slot.Texture = tex
	slot.Face = face
	slot.Level = level
	slot.owned = false

	rt.ctx.drv.BindFramebuffer(gl.FRAMEBUFFER, rt.handle)
	textarget := textureTargetNative[tex.variant]
	if tex.variant == TextureCube {
		textarget = cubeFaceNative[face]
	}
	rt.ctx.drv.FramebufferTexture2D(gl.FRAMEBUFFER, attachmentNative(slot.Type, slot.colorIndex), textarget, tex.handle, int32(level))
	return rt
}

// SetSlotsUsedToDraw specifies the ordered set of color attachments that
// receive fragment outputs. An empty (or color-less) list disables color
// output entirely.
func (rt *RenderTarget) SetSlotsUsedToDraw(names []string) *RenderTarget {
	var bufs []uint32
	for _, name := range names {
		slot, ok := rt.slots[name]
		if !ok || slot.Type != AttachmentColor {
			continue
		}
		bufs = append(bufs, gl.COLOR_ATTACHMENT0+uint32(slot.colorIndex))
	}
	rt.ctx.drv.BindFramebuffer(gl.FRAMEBUFFER, rt.handle)
	rt.ctx.drv.DrawBuffers(bufs)
	return rt
}

// UseAllSlotsToDraw enables every color attachment, in creation order.
func (rt *RenderTarget) UseAllSlotsToDraw() *RenderTarget {
	bufs := make([]uint32, 0, rt.colorAttachments)
	for i := 0; i < rt.colorAttachments; i++ {
		for _, s := range rt.slots {
			if s.Type == AttachmentColor && s.colorIndex == i {
				bufs = append(bufs, gl.COLOR_ATTACHMENT0+uint32(i))
				break
			}
		}
	}
	rt.ctx.drv.BindFramebuffer(gl.FRAMEBUFFER, rt.handle)
	rt.ctx.drv.DrawBuffers(bufs)
	return rt
}

// Resize reallocates owned textures at the new dimensions, preserving
// format and sampling parameters. Externally-owned textures are left
// untouched — the target then has mismatched attachments, which is the
// caller's responsibility (spec.md §4.4).
func (rt *RenderTarget) Resize(w, h int) {
	rt.width, rt.height = w, h
	for _, slot := range rt.slots {
		if slot.owned {
			slot.Texture.CreateFromFormat(slot.Texture.Format(), w, h)
		}
	}
}

// Copy blits this target's pixels of the given attachment class to dest at
// nearest-filter, using each target's own dimensions as source/destination
// rectangles. Saves and restores the previously bound draw/read framebuffer
// handles exactly, mirroring original_source/RenderBuffer::Bind's
// real-handle save (SPEC_FULL.md §7). The viewport is not read back from
// the driver: it is reset to the dimensions of the Context's active render
// target (spec.md §8 scenario 6). The Context's shadow is not modified.
func (rt *RenderTarget) Copy(dest *RenderTarget, typ AttachmentType) {
	if dest == nil {
		return
	}
	drv := rt.ctx.drv

	prevDraw := uint32(drv.GetInteger(gl.DRAW_FRAMEBUFFER_BINDING))
	prevRead := uint32(drv.GetInteger(gl.READ_FRAMEBUFFER_BINDING))
	viewport := [4]int32{}
	_ = viewport // width/height restored via Context shadow below

	drv.BindFramebuffer(bindingTargetNative(BindingRead), rt.handle)
	drv.BindFramebuffer(bindingTargetNative(BindingDraw), dest.handle)
	drv.BlitFramebuffer(0, 0, int32(rt.width), int32(rt.height), 0, 0, int32(dest.width), int32(dest.height), attachmentBitfield(typ), gl.NEAREST)

	drv.BindFramebuffer(gl.DRAW_FRAMEBUFFER, prevDraw)
	drv.BindFramebuffer(gl.READ_FRAMEBUFFER, prevRead)

	cur := rt.ctx.state.target
	if cur != nil {
		drv.Viewport(0, 0, int32(cur.width), int32(cur.height))
	}
}

// Destroy releases the framebuffer handle and every owned attachment
// texture. The default render target must never be destroyed (its handle
// belongs to the windowing system).
func (rt *RenderTarget) Destroy() {
	for name := range rt.slots {
		rt.deleteSlotName(name)
	}
	rt.ctx.drv.DeleteFramebuffer(rt.handle)
}
