package cl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReductionSchedule(t *testing.T) {
	tests := []struct {
		lanes      int
		steps      []TreeStep
		tailStride int
		tailCount  int
	}{
		// 8x4: one tree step, tail sums 8 slots at stride 4.
		{32, []TreeStep{{Rem: 8, Offset: 1}}, 4, 8},
		// 8x8: one tree step, tail sums 16 slots at stride 4.
		{64, []TreeStep{{Rem: 16, Offset: 1}}, 4, 16},
		// 16x8: two tree steps, tail sums 8 slots at stride 16.
		{128, []TreeStep{{Rem: 32, Offset: 1}, {Rem: 8, Offset: 4}}, 16, 8},
		// 16x16: two tree steps, tail sums 16 slots at stride 16.
		{256, []TreeStep{{Rem: 64, Offset: 1}, {Rem: 16, Offset: 4}}, 16, 16},
	}
	for _, tt := range tests {
		sched := ReductionSchedule(tt.lanes)
		assert.Equal(t, tt.steps, sched.Steps, "steps for %d lanes", tt.lanes)
		assert.Equal(t, tt.tailStride, sched.TailStride, "tail stride for %d lanes", tt.lanes)
		assert.Equal(t, tt.tailCount, sched.TailCount, "tail count for %d lanes", tt.lanes)
	}
}

// TestScheduleCoversAllLanes replays a schedule symbolically and checks that
// the tree plus tail folds every lane's slot into the result exactly once.
func TestScheduleCoversAllLanes(t *testing.T) {
	for _, lanes := range []int{32, 64, 128, 256} {
		counts := make([]int, lanes)
		for i := range counts {
			counts[i] = 1
		}
		sched := ReductionSchedule(lanes)
		for _, st := range sched.Steps {
			for id := 0; id < st.Rem; id++ {
				base := id * st.Offset * 4
				counts[base] += counts[base+st.Offset] + counts[base+2*st.Offset] + counts[base+3*st.Offset]
			}
		}
		total := 0
		for i := 0; i < sched.TailCount; i++ {
			total += counts[i*sched.TailStride]
		}
		assert.Equal(t, lanes, total, "lanes folded for %d", lanes)
	}
}
