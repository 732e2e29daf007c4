package tensor

// Axis identifies one dimension of a tensor.
type Axis int

// Tensor axes in BHWC order.
const (
	Batch Axis = iota
	Height
	Width
	Channels
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case Batch:
		return "batch"
	case Height:
		return "height"
	case Width:
		return "width"
	case Channels:
		return "channels"
	default:
		return "unknown"
	}
}

// Layout describes which axes a tensor descriptor carries. A layout without
// the batch axis implies an implicit batch of 1.
type Layout int

// Supported layouts.
const (
	LayoutHWC Layout = iota
	LayoutBHWC
)

// HasAxis reports whether the layout carries the given axis.
func (l Layout) HasAxis(a Axis) bool {
	if a == Batch {
		return l == LayoutBHWC
	}
	return a == Height || a == Width || a == Channels
}

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutHWC:
		return "HWC"
	case LayoutBHWC:
		return "BHWC"
	default:
		return "unknown"
	}
}

// Descriptor describes one tensor of an operation definition: its storage
// element type and which axes it carries.
type Descriptor struct {
	DataType DataType
	Layout   Layout
}

// HasAxis reports whether the described tensor carries the given axis.
func (d Descriptor) HasAxis(a Axis) bool {
	return d.Layout.HasAxis(a)
}
