package mmap

// Region is a view of part of a Mapping. It does not own the memory.
type Region struct {
	parent *Mapping
	offset int
	size   int
}

// Region returns the view [offset, offset+size) of the mapping.
func (m *Mapping) Region(offset, size int) (*Region, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	if offset < 0 || size < 0 || offset > m.size-size {
		return nil, ErrOutOfBounds
	}
	return &Region{
		parent: m,
		offset: offset,
		size:   size,
	}, nil
}

// Bytes returns the region's memory, or nil once the parent is closed.
func (r *Region) Bytes() []byte {
	if r.parent.closed.Load() {
		return nil
	}
	return r.parent.data[r.offset : r.offset+r.size]
}

// Address returns the native address of the region's first byte, or 0 once
// the parent is closed.
func (r *Region) Address() int64 {
	base := r.parent.Address()
	if base == 0 {
		return 0
	}
	return base + int64(r.offset)
}

// Offset returns the region's offset in the parent mapping.
func (r *Region) Offset() int { return r.offset }

// Size returns the region's size in bytes.
func (r *Region) Size() int { return r.size }

// Advise provides hints to the kernel about how this region will be accessed.
func (r *Region) Advise(pattern AccessPattern) error {
	if r.parent.closed.Load() {
		return ErrClosed
	}
	return osAdvise(r.parent.data[r.offset:r.offset+r.size], pattern)
}
