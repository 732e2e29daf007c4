package cl

import "github.com/flint-ml/flint/internal/tensor"

// Operation is the shared state of a generated GPU operation: the immutable
// kernel source and workgroup chosen at construction, the argument table, and
// the tensor shapes bound by the host before dispatch.
type Operation struct {
	def           OperationDef
	code          string
	workGroupSize Int3
	args          *Arguments

	srcShape tensor.Shape
	dstShape tensor.Shape
}

func newOperation(def OperationDef) Operation {
	return Operation{def: def, args: NewArguments()}
}

// Def returns the operation definition.
func (o *Operation) Def() OperationDef {
	return o.def
}

// Code returns the generated kernel source.
func (o *Operation) Code() string {
	return o.code
}

// WorkGroupSize returns the workgroup shape chosen at construction.
func (o *Operation) WorkGroupSize() Int3 {
	return o.workGroupSize
}

// Args returns the operation's argument table.
func (o *Operation) Args() *Arguments {
	return o.args
}

// SetSrcShape binds the runtime shape of the source tensor.
func (o *Operation) SetSrcShape(s tensor.Shape) {
	o.srcShape = s
}

// SetDstShape binds the runtime shape of the destination tensor.
func (o *Operation) SetDstShape(s tensor.Shape) {
	o.dstShape = s
}

// SrcShape returns the bound source shape.
func (o *Operation) SrcShape() tensor.Shape {
	return o.srcShape
}

// DstShape returns the bound destination shape.
func (o *Operation) DstShape() tensor.Shape {
	return o.dstShape
}
