package debounce_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/nxpad/nxpad/input/debounce"
)

func run(d *debounce.Debouncer, samples []bool) []bool {
	out := make([]bool, len(samples))
	for i, s := range samples {
		out[i] = d.Update(s)
	}
	return out
}

func TestDebounceScenarios(t *testing.T) {
	const F, T = false, true
	cases := []struct {
		name      string
		threshold uint8
		samples   []bool
		want      []bool
	}{
		{"basic press", 3, []bool{F, T, T, T, T}, []bool{F, F, F, T, T}},
		{"glitch is ignored", 3, []bool{T, T, F, T, T, T}, []bool{F, F, F, F, F, T}},
		{"release needs a full run", 2, []bool{T, T, F, T, F, F, F}, []bool{F, T, T, T, T, F, F}},
		{"threshold one follows input", 1, []bool{T, F, T, F}, []bool{T, F, T, F}},
		{"threshold zero acts as one", 0, []bool{T, F}, []bool{T, F}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := debounce.NewWithThreshold(tc.threshold)
			got := run(&d, tc.samples)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Update sequence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDebounceConvergesAndStays(t *testing.T) {
	for _, level := range []bool{true, false} {
		d := debounce.New()
		// start from the opposite state
		for range 5 {
			d.Update(!level)
		}
		converged := -1
		for i := range 50 {
			if d.Update(level) == level && converged < 0 {
				converged = i
			}
			if converged >= 0 {
				assert.Equal(t, level, d.State(), "oscillated after convergence at tick %d", i)
			}
		}
		assert.Less(t, converged, int(debounce.DefaultThreshold))
	}
}

func TestDebounceReset(t *testing.T) {
	d := debounce.NewWithThreshold(1)
	assert.True(t, d.Update(true))
	d.Reset()
	assert.False(t, d.State())
	assert.Equal(t, uint8(1), d.Threshold())
}
