package razor

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// AttributeDescriptor describes how to interpret bytes within an
// AttributeStream for one vertex attribute slot.
type AttributeDescriptor struct {
	Slot             int
	Components       int
	Type             DataScalar
	Stride           int
	Offset           int
	InstanceDivisor  int
}

// AttributeStream is one contiguous GPU buffer backing one role (position,
// normal, UV, ...) inside a VertexData.
type AttributeStream struct {
	vd      *VertexData
	handle  uint32
	dynamic bool

	descriptors []AttributeDescriptor
}

func newAttributeStream(vd *VertexData, dynamic bool) *AttributeStream {
	return &AttributeStream{
		vd:      vd,
		handle:  vd.ctx.drv.GenBuffer(),
		dynamic: dynamic,
	}
}

// UploadData uploads dataPtr (dataSize bytes) into the stream's buffer.
// Static streams replace the whole buffer; dynamic streams update the
// sub-range starting at offset.
func (s *AttributeStream) UploadData(dataPtr unsafe.Pointer, dataSize, offset int) *AttributeStream {
	drv := s.vd.ctx.drv
	drv.BindBuffer(gl.ARRAY_BUFFER, s.handle)
	if s.dynamic {
		drv.BufferSubData(gl.ARRAY_BUFFER, offset, dataSize, dataPtr)
	} else {
		drv.BufferData(gl.ARRAY_BUFFER, dataSize, dataPtr, gl.STATIC_DRAW)
	}
	return s
}

// ReserveSpace pre-allocates dataSize bytes of GPU storage. Only meaningful
// for dynamic streams; a no-op on static streams or a zero size.
func (s *AttributeStream) ReserveSpace(dataSize int) *AttributeStream {
	if dataSize == 0 || !s.dynamic {
		return s
	}
	drv := s.vd.ctx.drv
	drv.BindBuffer(gl.ARRAY_BUFFER, s.handle)
	drv.BufferData(gl.ARRAY_BUFFER, dataSize, nil, gl.DYNAMIC_DRAW)
	return s
}

// AddDescriptor appends one attribute descriptor to this stream, assigning
// it the next global slot id across the owning VertexData (spec.md §4.2's
// 16-slot hard cap; calls past the cap are silently dropped). The
// descriptor is applied immediately against this stream's buffer and
// enabled on the VertexData's vertex array.
func (s *AttributeStream) AddDescriptor(components int, typ DataScalar, stride, startOffset, instanceDivisor int) *AttributeStream {
	if s.vd.attributeCount >= MaxAttributeSlots {
		return s
	}

	desc := AttributeDescriptor{
		Slot:            s.vd.attributeCount,
		Components:      components,
		Type:            typ,
		Stride:          stride,
		Offset:          startOffset,
		InstanceDivisor: instanceDivisor,
	}
	s.vd.attributeCount++

	drv := s.vd.ctx.drv
	drv.BindVertexArray(s.vd.handle)
	drv.EnableVertexAttribArray(uint32(desc.Slot))
	drv.BindBuffer(gl.ARRAY_BUFFER, s.handle)

	if typ == ScalarInt {
		drv.VertexAttribIPointer(uint32(desc.Slot), int32(components), gl.INT, int32(stride), uintptr(startOffset))
	} else {
		drv.VertexAttribPointer(uint32(desc.Slot), int32(components), gl.FLOAT, false, int32(stride), uintptr(startOffset))
	}
	if instanceDivisor != 0 {
		drv.VertexAttribDivisor(uint32(desc.Slot), uint32(instanceDivisor))
	}

	s.descriptors = append(s.descriptors, desc)
	return s
}

// Descriptors returns the attribute descriptors added to this stream, in
// the order AddDescriptor was called.
func (s *AttributeStream) Descriptors() []AttributeDescriptor { return s.descriptors }

// NativeHandle returns the GPU buffer handle backing this stream.
func (s *AttributeStream) NativeHandle() uint32 { return s.handle }

// IndexStream is the optional 32-bit-unsigned-integer element buffer of a
// VertexData.
type IndexStream struct {
	vd      *VertexData
	handle  uint32
	dynamic bool
}

// NativeHandle returns the GPU buffer handle backing the index stream.
func (s *IndexStream) NativeHandle() uint32 { return s.handle }

// VertexData groups named attribute streams and an optional index stream
// into one drawable unit. Grounded on original_source/DataBuffer.
type VertexData struct {
	ctx    *Context
	handle uint32 // vertex array object

	streams map[string]*AttributeStream
	indices *IndexStream

	attributeCount int
}

func newVertexData(ctx *Context) *VertexData {
	vd := &VertexData{
		ctx:     ctx,
		handle:  ctx.drv.GenVertexArray(),
		streams: make(map[string]*AttributeStream),
	}
	return vd
}

// AddStream creates a new named attribute stream. Returns nil if name is
// empty or already in use.
func (vd *VertexData) AddStream(name string, dynamic bool) *AttributeStream {
	if name == "" {
		return nil
	}
	if _, exists := vd.streams[name]; exists {
		return nil
	}
	vd.ctx.drv.BindVertexArray(vd.handle)
	s := newAttributeStream(vd, dynamic)
	vd.streams[name] = s
	return s
}

// GetStream looks up a previously added stream by name.
func (vd *VertexData) GetStream(name string) *AttributeStream {
	return vd.streams[name]
}

// ReserveIndices marks the index stream dynamic and allocates dataSize
// bytes of storage.
func (vd *VertexData) ReserveIndices(dataSize int) {
	idx := vd.ensureIndexStream(true)
	drv := vd.ctx.drv
	drv.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, idx.handle)
	drv.BufferData(gl.ELEMENT_ARRAY_BUFFER, dataSize, nil, gl.DYNAMIC_DRAW)
}

// UploadIndices uploads dataSize bytes starting at offset into the index
// stream. A static stream replaces the whole buffer (offset is ignored); a
// dynamic one (created via ReserveIndices) updates the sub-range.
func (vd *VertexData) UploadIndices(dataPtr unsafe.Pointer, dataSize, offset int) {
	if dataSize == 0 {
		return
	}
	idx := vd.ensureIndexStream(false)
	drv := vd.ctx.drv
	drv.BindVertexArray(vd.handle)
	drv.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, idx.handle)
	if idx.dynamic {
		drv.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, offset, dataSize, dataPtr)
	} else {
		drv.BufferData(gl.ELEMENT_ARRAY_BUFFER, dataSize, dataPtr, gl.STATIC_DRAW)
	}
}

func (vd *VertexData) ensureIndexStream(dynamic bool) *IndexStream {
	if vd.indices == nil {
		vd.ctx.drv.BindVertexArray(vd.handle)
		vd.indices = &IndexStream{vd: vd, handle: vd.ctx.drv.GenBuffer(), dynamic: dynamic}
	}
	if dynamic {
		vd.indices.dynamic = true
	}
	return vd.indices
}

// IndexStream returns the index stream, or nil if none was created.
func (vd *VertexData) IndexStream() *IndexStream { return vd.indices }

// bind selects this VertexData for subsequent draws. Internal to
// Context.SetVertexData.
func (vd *VertexData) bind() {
	drv := vd.ctx.drv
	drv.BindVertexArray(vd.handle)
	if vd.indices != nil {
		drv.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, vd.indices.handle)
	}
}

// Destroy releases the vertex array object and every stream buffer it owns.
// The VertexData must not be used afterward.
func (vd *VertexData) Destroy() {
	drv := vd.ctx.drv
	for _, s := range vd.streams {
		drv.DeleteBuffer(s.handle)
	}
	if vd.indices != nil {
		drv.DeleteBuffer(vd.indices.handle)
	}
	drv.DeleteVertexArray(vd.handle)
}
