package cl

// TreeStep is one barrier-delimited radix-4 phase of a local-memory reduction.
// Lanes with local_id < Rem each fold the three slots at Offset, 2*Offset and
// 3*Offset past their base slot (local_id * 4 * Offset) into the base.
type TreeStep struct {
	Rem    int
	Offset int
}

// Schedule is the complete reduction plan for one workgroup: the radix-4 tree
// steps, then a serial tail on lane 0 that sums TailCount slots at TailStride.
// All values are compile-time constants of the generated kernel.
type Schedule struct {
	Steps      []TreeStep
	TailStride int
	TailCount  int
}

// ReductionSchedule plans the local-memory reduction over n lanes. n must be a
// multiple of 4. The tree stops while at least 8 lanes would stay active:
// below that, another barrier costs more than a serial tail.
func ReductionSchedule(n int) Schedule {
	var steps []TreeStep
	offset := 1
	rem := n / 4
	for ; rem >= 8; rem, offset = rem/4, offset*4 {
		steps = append(steps, TreeStep{Rem: rem, Offset: offset})
	}
	return Schedule{Steps: steps, TailStride: offset, TailCount: rem * 4}
}
