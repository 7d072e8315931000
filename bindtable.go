package razor

// textureBindTable tracks which sampler slots currently hold a bound
// texture, and of which variant, mirroring original_source/Context.h's
// mBoundTextures[32][2] grid. It never issues driver calls itself; Context
// consults and mutates it around the actual BindTexture calls.
type textureBindTable struct {
	bound [MaxSamplerSlots][textureVariantCount]bool
}

func (t *textureBindTable) set(slot int, variant TextureVariant) {
	if slot < 0 || slot >= MaxSamplerSlots {
		return
	}
	t.bound[slot][variant] = true
}

func (t *textureBindTable) clear(slot int, variant TextureVariant) {
	if slot < 0 || slot >= MaxSamplerSlots {
		return
	}
	t.bound[slot][variant] = false
}

func (t *textureBindTable) clearSlot(slot int) {
	if slot < 0 || slot >= MaxSamplerSlots {
		return
	}
	for v := TextureVariant(0); v < textureVariantCount; v++ {
		t.bound[slot][v] = false
	}
}

func (t *textureBindTable) isBound(slot int, variant TextureVariant) bool {
	if slot < 0 || slot >= MaxSamplerSlots {
		return false
	}
	return t.bound[slot][variant]
}

// boundSlots calls fn for every slot currently holding a texture of the
// given variant, in ascending slot order.
func (t *textureBindTable) boundSlots(variant TextureVariant, fn func(slot int)) {
	for slot := 0; slot < MaxSamplerSlots; slot++ {
		if t.bound[slot][variant] {
			fn(slot)
		}
	}
}

func (t *textureBindTable) clearAll() {
	for slot := range t.bound {
		for v := range t.bound[slot] {
			t.bound[slot][v] = false
		}
	}
}
