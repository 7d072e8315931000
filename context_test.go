package razor

import "testing"

func TestColdStartDepth(t *testing.T) {
	drv := &fakeDriver{}
	newContextWithDriver(drv, 800, 600, 0, defaultContextConfig())

	if got := drv.countCalls("Enable"); got != 1 {
		t.Fatalf("expected exactly one Enable call, got %d: %+v", got, drv.calls)
	}
	if got := drv.countCalls("DepthMask"); got != 1 {
		t.Fatalf("expected exactly one DepthMask call, got %d", got)
	}
	if got := drv.countCalls("CullFace"); got != 0 {
		t.Fatalf("CullMode(NONE) must never call CullFace, got %d calls", got)
	}
	for _, c := range drv.calls {
		if c.name == "Enable" && c.args[0] != uint32(0x0B71) { // GL_DEPTH_TEST
			t.Fatalf("unexpected Enable(%v), want only depth test enabled", c.args[0])
		}
	}
}

func TestElideDuplicateShaderBind(t *testing.T) {
	ctx, drv := newTestContext(800, 600)
	prog := ctx.CreateShaderProgram()
	drv.calls = nil

	ctx.SetShader(prog)
	ctx.SetShader(prog)
	ctx.SetShader(prog)

	if got := drv.countCalls("UseProgram"); got != 1 {
		t.Fatalf("expected exactly one UseProgram call, got %d", got)
	}
}

func TestSaveRestoreNesting(t *testing.T) {
	ctx, _ := newTestContext(800, 600)

	ctx.SetCullMode(CullBack)
	ctx.SetBlendMode(BlendDefault)
	ctx.SaveState()
	ctx.SetCullMode(CullFront)
	ctx.SetBlendMode(BlendNone)
	ctx.RestoreState()

	if ctx.state.cull != CullBack {
		t.Fatalf("expected cull=BACK after restore, got %v", ctx.state.cull)
	}
	if ctx.state.blend != BlendDefault {
		t.Fatalf("expected blend=DEFAULT after restore, got %v", ctx.state.blend)
	}
}

func TestCubeAttachment(t *testing.T) {
	ctx, drv := newTestContext(800, 600)
	rt := ctx.CreateRenderTarget(256, 256)
	tex := ctx.CreateTexture(TextureCube)
	drv.calls = nil

	rt.AddSlot("env", AttachmentColor, tex, FacePosZ, 0)

	found := false
	for _, c := range drv.calls {
		if c.name == "FramebufferTexture2D" {
			if c.args[2] != cubeFaceNative[FacePosZ] || c.args[4] != int32(0) {
				t.Fatalf("unexpected FramebufferTexture2D args: %+v", c.args)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a FramebufferTexture2D call, calls: %+v", drv.calls)
	}
}

func TestFrameBeginClearsStickyState(t *testing.T) {
	ctx, drv := newTestContext(800, 600)
	tex := ctx.CreateTexture(Texture2D)
	prog := ctx.CreateShaderProgram()
	vd := ctx.CreateVertexData()
	other := ctx.CreateRenderTarget(400, 300)

	ctx.BindTextures([]TextureBinding{{Slot: 3, Texture: tex}})
	ctx.SetShader(prog)
	ctx.SetVertexData(vd)
	ctx.SetRenderTarget(other)

	drv.calls = nil
	ctx.FrameBegin()

	if !drv.boundFBWasSetTo(ctx, ctx.defaultTarget.handle) {
		t.Fatalf("expected default framebuffer to be rebound")
	}
	if ctx.state.shader != nil {
		t.Fatalf("expected shader shadow to be nil after FrameBegin")
	}
	if ctx.state.vdata != nil {
		t.Fatalf("expected vertex data shadow to be nil after FrameBegin")
	}
	if ctx.state.target != ctx.defaultTarget {
		t.Fatalf("expected render target shadow to be the default target")
	}
	if ctx.bindTable.isBound(3, Texture2D) {
		t.Fatalf("expected bind table slot 3 cleared after FrameBegin")
	}
	if got := drv.countCalls("Viewport"); got == 0 {
		t.Fatalf("expected FrameBegin to force a viewport call")
	}
}

func (d *fakeDriver) boundFBWasSetTo(ctx *Context, handle uint32) bool {
	for _, c := range d.calls {
		if c.name == "BindFramebuffer" && c.args[1] == handle {
			return true
		}
	}
	return false
}

func TestCopyPreservesBoundTarget(t *testing.T) {
	ctx, _ := newTestContext(800, 600)
	a := ctx.CreateRenderTarget(128, 128)
	b := ctx.CreateRenderTarget(64, 64)
	ctx.SetRenderTarget(a)

	a.Copy(b, AttachmentColor)

	if ctx.state.target != a {
		t.Fatalf("expected target shadow to still report A bound")
	}
}

func TestViewportCoupling(t *testing.T) {
	ctx, drv := newTestContext(800, 600)
	same := ctx.CreateRenderTarget(800, 600)
	diff := ctx.CreateRenderTarget(400, 300)

	drv.calls = nil
	ctx.SetRenderTarget(same)
	if got := drv.countCalls("Viewport"); got != 0 {
		t.Fatalf("same-size target bind should not emit Viewport, got %d", got)
	}

	ctx.SetRenderTarget(diff)
	if got := drv.countCalls("Viewport"); got != 1 {
		t.Fatalf("different-size target bind should emit exactly one Viewport, got %d", got)
	}
}

func TestSetVertexDataNoneUpdatesShadow(t *testing.T) {
	ctx, _ := newTestContext(800, 600)
	vd := ctx.CreateVertexData()
	ctx.SetVertexData(vd)
	ctx.SetVertexData(nil)

	if ctx.state.vdata != nil {
		t.Fatalf("SetVertexData(nil) must clear the shadow")
	}
}
