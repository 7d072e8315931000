package razor

// Pipeline-wide limits (spec.md §6).
const (
	MaxColorAttachments = 8
	MaxAttributeSlots   = 16
	MaxSamplerSlots     = 32
)

// CullMode selects which triangle winding the rasterizer discards.
type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// BlendMode selects the fragment blending equation.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendDefault
)

// DepthMode selects depth testing and masking behavior.
type DepthMode int

const (
	DepthOff DepthMode = iota
	DepthReadOnly
	DepthReadWrite
)

// RenderMode is the primitive topology passed to a draw call.
type RenderMode int

const (
	RenderTriangles RenderMode = iota
	RenderLines
	RenderLineStrip
	RenderPoints
)

// Stage identifies one programmable pipeline stage of a ShaderProgram.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageGeometry
)

// TextureVariant distinguishes a plain 2D image from a six-face cube map.
type TextureVariant int

const (
	Texture2D TextureVariant = iota
	TextureCube
	textureVariantCount // internal sentinel, sizes textureBindTable
)

// TextureFace selects one face of a cube texture, or the single plane of a
// 2D texture.
type TextureFace int

const (
	FacePosX TextureFace = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	FacePlane
)

// TextureFormat is the pixel format of a texture's backing storage.
type TextureFormat int

const (
	FormatR TextureFormat = iota
	FormatR16
	FormatRG
	FormatRG16
	FormatRGB
	FormatRGB16
	FormatRGBA
	FormatRGBA16
	FormatSRGB
	FormatSRGBA
	FormatDepth16
	FormatDepth24
	FormatDepth32
	// FormatStencil is reserved: present in the enumeration for parity with
	// the original format table but never selected by any upload or
	// allocation path (spec.md §9, third Open Question).
	FormatStencil
	textureFormatCount
)

// WrapMode controls texture coordinate wrapping outside [0,1].
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapRepeat
	WrapClamp
)

// Filter selects nearest or linear texel sampling.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// MipmapFilter selects how samples blend across mip levels.
type MipmapFilter int

const (
	MipmapFilterNone MipmapFilter = iota
	MipmapFilterNearest
	MipmapFilterLinear
)

// AttachmentType identifies the role a RenderTarget slot plays.
type AttachmentType int

const (
	AttachmentColor AttachmentType = iota
	AttachmentDepth
	AttachmentStencil
)

// BindingType selects a framebuffer binding point; Copy binds its source to
// BindingRead and its destination to BindingDraw.
type BindingType int

const (
	BindingRead BindingType = iota
	BindingDraw
	BindingReadWrite
)

// DataScalar is the element type of a vertex attribute.
type DataScalar int

const (
	ScalarInt DataScalar = iota
	ScalarFloat
)
