// Package ref executes generated reduction kernels on the host. It replays
// the exact arithmetic of the emitted OpenCL source, lane by lane and phase by
// phase in float32, using the same reduction schedule the emitter baked into
// the kernel. Results therefore match a conforming device bit for bit, which
// makes it the verification vehicle for generated kernels.
package ref

import (
	"github.com/pkg/errors"

	"github.com/flint-ml/flint/internal/cl"
	"github.com/flint-ml/flint/internal/parallel"
	"github.com/flint-ml/flint/internal/tensor"
)

// Run executes the mean operation against src and returns the destination
// tensor. The operation must have its shapes bound and its arguments set, as
// the host runtime would before a dispatch.
func Run(op *cl.Mean, src *tensor.Tensor) (*tensor.Tensor, error) {
	shape := src.Shape()
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "ref: source shape")
	}
	if !shape.Equal(op.SrcShape()) {
		return nil, errors.Errorf("ref: source shape %v does not match bound shape %v", shape, op.SrcShape())
	}
	def := op.Def()
	hasBatch := def.Dst[0].HasAxis(tensor.Batch)
	if !hasBatch && shape.B != 1 {
		return nil, errors.Errorf("ref: batch %d without a batch axis", shape.B)
	}
	want := tensor.Shape{B: shape.B, H: 1, W: 1, C: shape.C}
	if !op.DstShape().Equal(want) {
		return nil, errors.Errorf("ref: destination shape %v, want %v", op.DstShape(), want)
	}

	inv1, err := op.Args().Float("inv_multiplier_1")
	if err != nil {
		return nil, errors.Wrap(err, "ref: arguments not bound")
	}
	inv2, err := op.Args().Float("inv_multiplier_2")
	if err != nil {
		return nil, errors.Wrap(err, "ref: arguments not bound")
	}

	dstType := tensor.Float32
	if def.Precision == cl.PrecisionF16 {
		dstType = tensor.Float16
	}
	dst, err := tensor.New(tensor.Shape{B: shape.B, H: 1, W: 1, C: shape.C}, dstType)
	if err != nil {
		return nil, err
	}

	wg := op.WorkGroupSize()
	lanes := wg.X * wg.Y
	sched := cl.ReductionSchedule(lanes)
	slices := shape.Slices()

	// Grid columns write disjoint destination cells, so they replay
	// concurrently. Each column still runs its lanes in the emitted order.
	grid := op.GridSize()
	parallel.For(grid.Z, func(g int) {
		s, b := g, 0
		if hasBatch {
			s = g / shape.B
			b = g % shape.B
		}
		if s >= slices {
			return
		}
		runWorkGroup(src, dst, b, s, wg, sched, inv1, inv2)
	}, parallel.DefaultConfig())
	return dst, nil
}

// runWorkGroup reduces the (H, W) plane of one slice-batch pair the way one
// workgroup of the generated kernel does.
func runWorkGroup(src, dst *tensor.Tensor, b, s int, wg cl.Int3, sched cl.Schedule, inv1, inv2 float32) {
	shape := src.Shape()
	accum := make([][4]float32, wg.X*wg.Y)

	// Per-lane partial sums in the emitted loop order, pre-scaled by the
	// first normalizer before the tree.
	for ly := 0; ly < wg.Y; ly++ {
		for lx := 0; lx < wg.X; lx++ {
			var acc [4]float32
			for sy := ly; sy < shape.H; sy += wg.Y {
				for sx := lx; sx < shape.W; sx += wg.X {
					v := src.ReadSlice4(b, sy, sx, s)
					for c := 0; c < 4; c++ {
						acc[c] += v[c]
					}
				}
			}
			for c := 0; c < 4; c++ {
				acc[c] *= inv1
			}
			accum[ly*wg.X+lx] = acc
		}
	}

	// Radix-4 tree. Within a phase no lane reads a slot another lane writes,
	// so replaying lanes sequentially between barriers is faithful.
	for _, st := range sched.Steps {
		for id := 0; id < st.Rem; id++ {
			base := id * st.Offset * 4
			for c := 0; c < 4; c++ {
				sum := accum[base+st.Offset][c]
				sum += accum[base+2*st.Offset][c]
				sum += accum[base+3*st.Offset][c]
				accum[base][c] += sum
			}
		}
	}

	// Serial tail on lane 0, then the second normalizer and the store.
	sum := accum[0]
	for i := 1; i < sched.TailCount; i++ {
		for c := 0; c < 4; c++ {
			sum[c] += accum[i*sched.TailStride][c]
		}
	}
	var out [4]float32
	for c := 0; c < 4; c++ {
		out[c] = sum[c] * inv2
	}
	dst.WriteSlice4(b, 0, 0, s, out)
}
