package razor

import "testing"

func TestAttachmentCardinalityDepthStencilSingleton(t *testing.T) {
	ctx, _ := newTestContext(256, 256)
	rt := ctx.CreateRenderTarget(256, 256)

	t1 := ctx.CreateTexture(Texture2D)
	t2 := ctx.CreateTexture(Texture2D)

	if slot := rt.AddSlot("depth", AttachmentDepth, t1, FacePlane, 0); slot == nil {
		t.Fatalf("expected the first depth slot to succeed")
	}
	if slot := rt.AddSlot("depth2", AttachmentDepth, t2, FacePlane, 0); slot != nil {
		t.Fatalf("expected a second depth slot to be rejected")
	}
	if n := len(rt.slots); n != 1 {
		t.Fatalf("expected exactly one depth slot to have been added, have %d slots", n)
	}
}

func TestAttachmentCardinalityColorCap(t *testing.T) {
	ctx, _ := newTestContext(256, 256)
	rt := ctx.CreateRenderTarget(256, 256)

	for i := 0; i < MaxColorAttachments; i++ {
		tex := ctx.CreateTexture(Texture2D)
		name := string(rune('a' + i))
		if slot := rt.AddSlot(name, AttachmentColor, tex, FacePlane, 0); slot == nil {
			t.Fatalf("expected color slot %d to succeed", i)
		}
	}

	overflow := ctx.CreateTexture(Texture2D)
	if slot := rt.AddSlot("overflow", AttachmentColor, overflow, FacePlane, 0); slot != nil {
		t.Fatalf("expected color slot past MaxColorAttachments to be rejected")
	}
	if rt.colorAttachments != MaxColorAttachments {
		t.Fatalf("expected colorAttachments capped at %d, got %d", MaxColorAttachments, rt.colorAttachments)
	}
}

func TestOwnershipDeleteOwnedDestroysTextureOnce(t *testing.T) {
	ctx, drv := newTestContext(256, 256)
	rt := ctx.CreateRenderTarget(256, 256)
	rt.AddSlotFromFormat("color", AttachmentColor, FormatRGBA)

	slot := rt.GetSlot("color")
	texHandle := slot.Texture.handle
	drv.calls = nil

	rt.DeleteSlot("color")

	deletions := 0
	for _, c := range drv.calls {
		if c.name == "DeleteTexture" && c.args[0] == texHandle {
			deletions++
		}
	}
	if deletions != 1 {
		t.Fatalf("expected the owned texture to be destroyed exactly once, got %d", deletions)
	}
}

func TestOwnershipDeleteNonOwnedDestroysNoTexture(t *testing.T) {
	ctx, drv := newTestContext(256, 256)
	rt := ctx.CreateRenderTarget(256, 256)
	tex := ctx.CreateTexture(Texture2D)
	rt.AddSlot("color", AttachmentColor, tex, FacePlane, 0)
	drv.calls = nil

	rt.DeleteSlot("color")

	if got := drv.countCalls("DeleteTexture"); got != 0 {
		t.Fatalf("expected no texture destruction for a non-owned slot, got %d calls", got)
	}
}

func TestReplaceSlotTextureMarksNonOwned(t *testing.T) {
	ctx, drv := newTestContext(256, 256)
	rt := ctx.CreateRenderTarget(256, 256)
	rt.AddSlotFromFormat("color", AttachmentColor, FormatRGBA)
	oldHandle := rt.GetSlot("color").Texture.handle

	replacement := ctx.CreateTexture(Texture2D)
	drv.calls = nil
	rt.ReplaceSlotTexture("color", replacement, FacePlane, 0)

	deletions := 0
	for _, c := range drv.calls {
		if c.name == "DeleteTexture" && c.args[0] == oldHandle {
			deletions++
		}
	}
	if deletions != 1 {
		t.Fatalf("expected the replaced owned texture to be destroyed exactly once, got %d", deletions)
	}
	if rt.GetSlot("color").owned {
		t.Fatalf("expected slot to be marked non-owned after replacement")
	}
}

func TestSetSlotsUsedToDrawEmptyDisablesColorOutput(t *testing.T) {
	ctx, drv := newTestContext(256, 256)
	rt := ctx.CreateRenderTarget(256, 256)
	rt.AddSlotFromFormat("color", AttachmentColor, FormatRGBA)
	drv.calls = nil

	rt.SetSlotsUsedToDraw(nil)

	for _, c := range drv.calls {
		if c.name == "DrawBuffers" {
			bufs := c.args[0].([]uint32)
			if len(bufs) != 0 {
				t.Fatalf("expected an empty DrawBuffers call, got %v", bufs)
			}
			return
		}
	}
	t.Fatalf("expected a DrawBuffers call")
}
