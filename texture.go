package razor

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.6-core/gl"
)

var textureTargetNative = [2]uint32{gl.TEXTURE_2D, gl.TEXTURE_CUBE_MAP}

var textureInternalFormatNative = [...]int32{
	FormatR:        gl.RED,
	FormatR16:      gl.R16F,
	FormatRG:       gl.RG,
	FormatRG16:     gl.RG16F,
	FormatRGB:      gl.RGB,
	FormatRGB16:    gl.RGB16F,
	FormatRGBA:     gl.RGBA,
	FormatRGBA16:   gl.RGBA16F,
	FormatSRGB:     gl.SRGB,
	FormatSRGBA:    gl.SRGB_ALPHA,
	FormatDepth16:  gl.DEPTH_COMPONENT16,
	FormatDepth24:  gl.DEPTH_COMPONENT24,
	FormatDepth32:  gl.DEPTH_COMPONENT32,
	FormatStencil:  gl.STENCIL_INDEX8,
}

var textureFormatNative = [...]uint32{
	FormatR:       gl.RED,
	FormatR16:     gl.RED,
	FormatRG:      gl.RG,
	FormatRG16:    gl.RG,
	FormatRGB:     gl.RGB,
	FormatRGB16:   gl.RGB,
	FormatRGBA:    gl.RGBA,
	FormatRGBA16:  gl.RGBA,
	FormatSRGB:    gl.RGB,
	FormatSRGBA:   gl.RGBA,
	FormatDepth16: gl.DEPTH_COMPONENT,
	FormatDepth24: gl.DEPTH_COMPONENT,
	FormatDepth32: gl.DEPTH_COMPONENT,
	FormatStencil: gl.STENCIL_INDEX,
}

var cubeFaceNative = [6]uint32{
	FacePosX: gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	FaceNegX: gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	FacePosY: gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	FaceNegY: gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	FacePosZ: gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	FaceNegZ: gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

func wrapModeNative(w WrapMode) int32 {
	switch w {
	case WrapNone:
		return gl.CLAMP_TO_BORDER
	case WrapRepeat:
		return gl.REPEAT
	default:
		return gl.CLAMP_TO_EDGE
	}
}

func filterNative(f Filter, mm MipmapFilter) (int32, bool) {
	switch f {
	case FilterLinear:
		switch mm {
		case MipmapFilterLinear:
			return gl.LINEAR_MIPMAP_LINEAR, true
		case MipmapFilterNearest:
			return gl.LINEAR_MIPMAP_NEAREST, true
		case MipmapFilterNone:
			return gl.LINEAR, true
		}
	case FilterNearest:
		switch mm {
		case MipmapFilterLinear:
			return gl.NEAREST_MIPMAP_LINEAR, true
		case MipmapFilterNearest:
			return gl.NEAREST_MIPMAP_NEAREST, true
		case MipmapFilterNone:
			return gl.NEAREST, true
		}
	}
	return 0, false
}

// Texture is a GPU image resource: storage, sampling parameters, mipmaps,
// and (for TextureCube) six faces. Grounded on original_source/TextureBuffer.
type Texture struct {
	ctx    *Context
	handle uint32

	variant TextureVariant
	format  TextureFormat
	width   int
	height  int

	wrapV, wrapH           WrapMode
	minFilter, magFilter   Filter
	minMipmap, magMipmap   MipmapFilter
}

func newTexture(ctx *Context, variant TextureVariant) *Texture {
	t := &Texture{
		ctx:     ctx,
		handle:  ctx.drv.GenTexture(),
		variant: variant,
	}
	t.SetWrapVH(WrapRepeat, WrapRepeat)
	t.SetFilterMinMag(FilterNearest, FilterNearest)
	return t
}

// Variant reports whether this is a 2D or cube texture.
func (t *Texture) Variant() TextureVariant { return t.variant }

// Format reports the texture's current pixel format.
func (t *Texture) Format() TextureFormat { return t.format }

// Width and Height report the texture's current dimensions.
func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// MipLevels returns how many levels a full mip chain would have at the
// texture's current dimensions (1 when the texture has no storage yet),
// whatever its mipmap filters are. Enrichment over the original, which
// never computed this value; it is a query for callers only and is not
// consulted by GenerateMipmap or RenderTarget.Resize.
func (t *Texture) MipLevels() int {
	if t.width <= 0 || t.height <= 0 {
		return 1
	}
	largest := float32(maxInt(t.width, t.height))
	return int(math32.Floor(math32.Log2(largest))) + 1
}

func (t *Texture) bind() {
	t.ctx.drv.BindTexture(textureTargetNative[t.variant], t.handle)
}

// bindForRendering activates the sampler slot and binds this texture to it.
// Internal to Context.BindTextures.
func (t *Texture) bindForRendering(slot int) {
	t.ctx.drv.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	t.bind()
}

func (t *Texture) datatypeNative() uint32 {
	switch t.format {
	case FormatR16, FormatRG16, FormatRGB16, FormatRGBA16:
		return gl.FLOAT
	default:
		return gl.UNSIGNED_BYTE
	}
}

// CreateFromFormat allocates storage for the texture without initial pixel
// data. For TextureCube, all six faces are allocated.
func (t *Texture) CreateFromFormat(format TextureFormat, width, height int) *Texture {
	t.format = format
	t.width, t.height = width, height
	t.bind()

	internal := textureInternalFormatNative[format]
	native := textureFormatNative[format]
	dtype := t.datatypeNative()

	if t.variant == Texture2D {
		t.ctx.drv.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), native, dtype, nil)
	} else {
		for _, face := range cubeFaceNative {
			t.ctx.drv.TexImage2D(face, 0, internal, int32(width), int32(height), native, dtype, nil)
		}
	}
	return t
}

// UploadData replaces the full storage of the texture (or, for a cube
// texture, one face) with dataPtr. numComponents always selects the format,
// replacing any previous one (1..4 → R/RG/RGB/RGBA, srgb for 3/4).
func (t *Texture) UploadData(dataPtr unsafe.Pointer, width, height, numComponents int, srgb bool, face TextureFace, level int) *Texture {
	t.bind()
	switch numComponents {
	case 4:
		t.format = pick(srgb, FormatSRGBA, FormatRGBA)
	case 3:
		t.format = pick(srgb, FormatSRGB, FormatRGB)
	case 2:
		t.format = FormatRG
	default:
		t.format = FormatR
	}
	return t.uploadImpl(dataPtr, width, height, t.format, face, level)
}

// UploadDataFormat is the explicit-format sibling of UploadData.
func (t *Texture) UploadDataFormat(dataPtr unsafe.Pointer, width, height int, format TextureFormat, face TextureFace, level int) *Texture {
	t.bind()
	return t.uploadImpl(dataPtr, width, height, format, face, level)
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

func (t *Texture) uploadImpl(dataPtr unsafe.Pointer, width, height int, format TextureFormat, face TextureFace, level int) *Texture {
	t.format = format
	t.width, t.height = width, height

	internal := textureInternalFormatNative[format]
	native := textureFormatNative[format]
	dtype := t.datatypeNative()

	if t.variant == Texture2D {
		t.ctx.drv.TexImage2D(gl.TEXTURE_2D, int32(level), internal, int32(width), int32(height), native, dtype, dataPtr)
	} else {
		if face == FacePlane {
			return t
		}
		t.ctx.drv.TexImage2D(cubeFaceNative[face], int32(level), internal, int32(width), int32(height), native, dtype, dataPtr)
	}

	if t.minMipmap != MipmapFilterNone || t.magMipmap != MipmapFilterNone {
		t.GenerateMipmap()
	}
	return t
}

// UploadSubData replaces a sub-rectangle of existing storage.
func (t *Texture) UploadSubData(dataPtr unsafe.Pointer, width, height, xOffset, yOffset int, face TextureFace, level int) *Texture {
	t.bind()
	native := textureFormatNative[t.format]
	dtype := t.datatypeNative()

	if t.variant == Texture2D {
		t.ctx.drv.TexSubImage2D(gl.TEXTURE_2D, int32(level), int32(xOffset), int32(yOffset), int32(width), int32(height), native, dtype, dataPtr)
	} else {
		if face == FacePlane {
			return t
		}
		t.ctx.drv.TexSubImage2D(cubeFaceNative[face], int32(level), int32(xOffset), int32(yOffset), int32(width), int32(height), native, dtype, dataPtr)
	}
	return t
}

// GenerateMipmap requests a full mip chain for the texture.
func (t *Texture) GenerateMipmap() *Texture {
	t.bind()
	t.ctx.drv.GenerateMipmap(textureTargetNative[t.variant])
	return t
}

func (t *Texture) setWrapImpl(pname uint32, w WrapMode) {
	t.ctx.drv.TexParameteri(textureTargetNative[t.variant], pname, wrapModeNative(w))
	if w == WrapNone {
		t.setBorderColorImpl(0, 0, 0, 1)
	}
}

// SetWrapV sets the vertical (S) wrap mode.
func (t *Texture) SetWrapV(w WrapMode) *Texture {
	t.bind()
	t.wrapV = w
	t.setWrapImpl(gl.TEXTURE_WRAP_S, w)
	return t
}

// SetWrapH sets the horizontal (T) wrap mode.
func (t *Texture) SetWrapH(w WrapMode) *Texture {
	t.bind()
	t.wrapH = w
	t.setWrapImpl(gl.TEXTURE_WRAP_T, w)
	return t
}

// SetWrapVH sets both wrap modes in one call.
func (t *Texture) SetWrapVH(v, h WrapMode) *Texture {
	t.bind()
	t.wrapV, t.wrapH = v, h
	t.setWrapImpl(gl.TEXTURE_WRAP_S, v)
	t.setWrapImpl(gl.TEXTURE_WRAP_T, h)
	return t
}

func (t *Texture) setFilterImpl(pname uint32, f Filter, mm MipmapFilter) {
	native, ok := filterNative(f, mm)
	if !ok {
		return
	}
	t.ctx.drv.TexParameteri(textureTargetNative[t.variant], pname, native)
}

// SetFilterMin sets the minification filter and, optionally, mip filtering.
func (t *Texture) SetFilterMin(f Filter, mm MipmapFilter) *Texture {
	t.bind()
	t.minFilter, t.minMipmap = f, mm
	t.setFilterImpl(gl.TEXTURE_MIN_FILTER, f, mm)
	return t
}

// SetFilterMag sets the magnification filter and, optionally, mip filtering.
func (t *Texture) SetFilterMag(f Filter, mm MipmapFilter) *Texture {
	t.bind()
	t.magFilter, t.magMipmap = f, mm
	t.setFilterImpl(gl.TEXTURE_MAG_FILTER, f, mm)
	return t
}

// SetFilterMinMag sets both filters in one call.
func (t *Texture) SetFilterMinMag(minF, magF Filter, mipFilters ...MipmapFilter) *Texture {
	var minMM, magMM MipmapFilter
	if len(mipFilters) > 0 {
		minMM = mipFilters[0]
	}
	if len(mipFilters) > 1 {
		magMM = mipFilters[1]
	}
	t.bind()
	t.minFilter, t.minMipmap = minF, minMM
	t.magFilter, t.magMipmap = magF, magMM
	t.setFilterImpl(gl.TEXTURE_MIN_FILTER, minF, minMM)
	t.setFilterImpl(gl.TEXTURE_MAG_FILTER, magF, magMM)
	return t
}

func (t *Texture) setBorderColorImpl(r, g, b, a float32) {
	color := [4]float32{r, g, b, a}
	t.ctx.drv.TexParameterfv(textureTargetNative[t.variant], gl.TEXTURE_BORDER_COLOR, &color)
}

// SetBorderColor sets the border color used by WrapNone.
func (t *Texture) SetBorderColor(r, g, b, a float32) *Texture {
	t.bind()
	t.setBorderColorImpl(r, g, b, a)
	return t
}

// Destroy releases the GPU texture handle. The Texture must not be used
// afterward.
func (t *Texture) Destroy() {
	t.ctx.drv.DeleteTexture(t.handle)
}
