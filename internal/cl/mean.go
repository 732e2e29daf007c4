package cl

import (
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/flint-ml/flint/internal/device"
	"github.com/flint-ml/flint/internal/tensor"
)

// Mean reduces the spatial axes of a BHWC tensor to 1x1, producing the
// arithmetic mean per channel: (B, H, W, C) -> (B, 1, 1, C).
//
// One workgroup covers the whole (H, W) plane of one slice-batch pair. Each
// lane accumulates a strided subset of the spatial positions, pre-scaled by
// inv_multiplier_1; a radix-4 tree in local memory then folds the lanes
// together, and inv_multiplier_2 finishes the average. The product of the two
// multipliers is exactly 1/(H*W), so the two-stage normalization yields a true
// mean while keeping partial sums near the magnitude of the result.
type Mean struct {
	Operation
}

// NewMean builds the mean operation for the given definition and device. The
// kernel source and workgroup are fixed here; only the scalar arguments are
// recomputed per dispatch.
func NewMean(def OperationDef, dev device.DeviceInfo) *Mean {
	m := &Mean{Operation: newOperation(def)}
	m.workGroupSize = meanWorkGroup(dev)
	m.args.AddFloat("inv_multiplier_1", 0)
	m.args.AddFloat("inv_multiplier_2", 0)
	m.code = meanKernel(def, m.workGroupSize)
	klog.V(2).Infof("cl: mean for %s uses work group %v", dev.Vendor, m.workGroupSize)
	return m
}

// meanWorkGroup picks the workgroup shape for the device family.
//
// Constraints: z must be 1 (the slice axis is the grid z axis and is never
// reduced by the workgroup) and x*y must be a multiple of 4, at least 16, so
// the radix-4 tree has a valid first step.
func meanWorkGroup(dev device.DeviceInfo) Int3 {
	wg := Int3{X: 16, Y: 16, Z: 1}
	if dev.IsAdreno() {
		if dev.Adreno.IsAdreno3xx() {
			wg = Int3{X: 16, Y: 8, Z: 1}
		}
	}
	if dev.IsMali() {
		if dev.Mali.IsMaliT6xx() || dev.Mali.IsMaliT7xx() || dev.Mali.IsMaliT8xx() {
			wg = Int3{X: 8, Y: 4, Z: 1}
		} else {
			wg = Int3{X: 8, Y: 8, Z: 1}
		}
	}
	return wg
}

// meanKernel emits the reduction kernel for the given workgroup. All loop
// bounds and tree offsets are baked in as constants.
func meanKernel(def OperationDef, wg Int3) string {
	lanes := wg.X * wg.Y

	var b strings.Builder
	b.WriteString(CommonDefines(def.Precision))
	b.WriteString("__kernel void main_function(\n$0) {\n")
	fmt.Fprintf(&b, "  __local float4 accum[%d];\n", lanes)
	b.WriteString("  int local_x = get_local_id(0);\n")
	b.WriteString("  int local_y = get_local_id(1);\n")
	fmt.Fprintf(&b, "  int local_id = local_y * %d + local_x;\n", wg.X)
	if def.Dst[0].HasAxis(tensor.Batch) {
		b.WriteString("  int linear_id_2 = get_global_id(2);\n")
		b.WriteString("  int S = linear_id_2 / args.dst_tensor.Batch();\n")
		b.WriteString("  int B = linear_id_2 % args.dst_tensor.Batch();\n")
		b.WriteString("  args.dst_tensor.SetBatchRef(B);\n")
		b.WriteString("  args.src_tensor.SetBatchRef(B);\n")
	} else {
		b.WriteString("  int S = get_global_id(2);\n")
	}
	b.WriteString("  if (S >= args.dst_tensor.Slices()) return;\n")
	b.WriteString("  accum[local_id] = (float4)(0.0f);\n")
	fmt.Fprintf(&b, "  for (int s_y = local_y; s_y < args.src_tensor.Height(); s_y += %d) {\n", wg.Y)
	fmt.Fprintf(&b, "    for (int s_x = local_x; s_x < args.src_tensor.Width(); s_x += %d) {\n", wg.X)
	b.WriteString("      accum[local_id] += args.src_tensor.Read<float>(s_x, s_y, S);\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("  accum[local_id] *= args.inv_multiplier_1;\n")
	b.WriteString("  barrier(CLK_LOCAL_MEM_FENCE);\n")
	sched := ReductionSchedule(lanes)
	for _, st := range sched.Steps {
		fmt.Fprintf(&b, "  if (local_id < %d) {\n", st.Rem)
		fmt.Fprintf(&b, "    int t = local_id * %d;\n", st.Offset*4)
		fmt.Fprintf(&b, "    float4 sum = accum[t + %d];\n", st.Offset)
		fmt.Fprintf(&b, "    sum += accum[t + %d];\n", st.Offset*2)
		fmt.Fprintf(&b, "    sum += accum[t + %d];\n", st.Offset*3)
		b.WriteString("    accum[t] += sum;\n")
		b.WriteString("  }\n")
		b.WriteString("  barrier(CLK_LOCAL_MEM_FENCE);\n")
	}
	b.WriteString("  if (local_id != 0) return;\n")
	b.WriteString("  float4 sum = accum[0];\n")
	for i := 1; i < sched.TailCount; i++ {
		fmt.Fprintf(&b, "  sum += accum[%d];\n", i*sched.TailStride)
	}
	b.WriteString("  FLT4 result = TO_FLT4(sum * args.inv_multiplier_2);\n")
	b.WriteString("  args.dst_tensor.Write(result, 0, 0, S);\n")
	b.WriteString("}\n")
	return b.String()
}

// BindArguments computes the two normalizers for the bound source shape and
// writes them into args. Computed in float64 before the final float cast;
// size_1 is a floating ratio, not a truncated one, so the product of the two
// multipliers is exactly 1/(W*H).
func (m *Mean) BindArguments(args *Arguments) error {
	total := float64(m.srcShape.W) * float64(m.srcShape.H)
	size0 := float64(m.workGroupSize.X) * float64(m.workGroupSize.Y)
	size1 := total / size0
	if err := args.SetFloat("inv_multiplier_1", float32(1.0/size1)); err != nil {
		return err
	}
	if err := args.SetFloat("inv_multiplier_2", float32(1.0/size0)); err != nil {
		return err
	}
	return nil
}

// GridSize returns the global NDRange. x and y equal the local size, so
// exactly one workgroup runs per (slice, batch) pair of the destination.
func (m *Mean) GridSize() Int3 {
	return Int3{
		X: m.workGroupSize.X,
		Y: m.workGroupSize.Y,
		Z: m.dstShape.Slices() * m.dstShape.B,
	}
}
