package input_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nxpad/nxpad/device/switchpro"
	"github.com/nxpad/nxpad/input"
)

var allMethods = []input.Method{
	input.MethodNeutral,
	input.MethodLastWin,
	input.MethodFirstWin,
	input.MethodUpPriority,
	input.MethodSecondInputPriority,
}

func TestSOCDNoConflict(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, lr := range allMethods {
		for _, ud := range allMethods {
			r := input.NewSOCDResolverWith(lr, ud)
			for i := 0; i < 2000; i++ {
				in := input.Directions{
					Up:    rng.IntN(2) == 1,
					Down:  rng.IntN(2) == 1,
					Left:  rng.IntN(2) == 1,
					Right: rng.IntN(2) == 1,
				}
				out := r.Resolve(in)
				if out.Left && out.Right || out.Up && out.Down {
					t.Fatalf("%s/%s: conflict in output %+v for input %+v", lr, ud, out, in)
				}
				// resolution only ever releases
				assert.False(t, out.Up && !in.Up || out.Down && !in.Down || out.Left && !in.Left || out.Right && !in.Right)
			}
		}
	}
}

func TestSOCDNeutral(t *testing.T) {
	r := input.NewSOCDResolverWith(input.MethodNeutral, input.MethodNeutral)
	out := r.Resolve(input.Directions{Left: true, Right: true})
	assert.Equal(t, input.Directions{}, out)
	assert.Equal(t, uint8(switchpro.HatNeutral), input.HatValue(out))

	out = r.Resolve(input.Directions{Up: true, Down: true, Left: true})
	assert.Equal(t, input.Directions{Left: true}, out)
}

func TestSOCDUpPriority(t *testing.T) {
	r := input.NewSOCDResolver()
	histories := []input.Directions{
		{Down: true},
		{Up: true},
		{},
		{Down: true, Left: true},
	}
	for _, prev := range histories {
		r.Resolve(prev)
		for range 3 {
			out := r.Resolve(input.Directions{Up: true, Down: true})
			assert.Equal(t, input.Directions{Up: true}, out)
			assert.Equal(t, uint8(switchpro.HatUp), input.HatValue(out))
		}
	}

	// left/right falls back to neutral
	r = input.NewSOCDResolverWith(input.MethodUpPriority, input.MethodUpPriority)
	assert.Equal(t, input.Directions{}, r.Resolve(input.Directions{Left: true, Right: true}))
}

func TestSOCDLastWin(t *testing.T) {
	r := input.NewSOCDResolverWith(input.MethodLastWin, input.MethodLastWin)

	steps := []struct {
		in, want input.Directions
	}{
		{input.Directions{Left: true}, input.Directions{Left: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Right: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Right: true}},
		{input.Directions{Left: true}, input.Directions{Left: true}},
		// right pressed again, still latest
		{input.Directions{Left: true, Right: true}, input.Directions{Right: true}},
		{input.Directions{Right: true}, input.Directions{Right: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Left: true}},
		{input.Directions{}, input.Directions{}},
		// same tick goes to the second direction
		{input.Directions{Left: true, Right: true}, input.Directions{Right: true}},
		{input.Directions{}, input.Directions{}},
		{input.Directions{Up: true, Down: true}, input.Directions{Down: true}},
	}
	for i, s := range steps {
		assert.Equal(t, s.want, r.Resolve(s.in), "step %d", i)
	}
}

func TestSOCDFirstWin(t *testing.T) {
	r := input.NewSOCDResolverWith(input.MethodFirstWin, input.MethodFirstWin)

	steps := []struct {
		in, want input.Directions
	}{
		{input.Directions{Right: true}, input.Directions{Right: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Right: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Right: true}},
		// right released, left now owns the pair
		{input.Directions{Left: true}, input.Directions{Left: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Left: true}},
		{input.Directions{}, input.Directions{}},
		{input.Directions{Down: true}, input.Directions{Down: true}},
		{input.Directions{Up: true, Down: true}, input.Directions{Down: true}},
	}
	for i, s := range steps {
		assert.Equal(t, s.want, r.Resolve(s.in), "step %d", i)
	}
}

func TestSOCDSecondInputPriority(t *testing.T) {
	r := input.NewSOCDResolverWith(input.MethodSecondInputPriority, input.MethodSecondInputPriority)

	steps := []struct {
		in, want input.Directions
	}{
		{input.Directions{Left: true}, input.Directions{Left: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Right: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Right: true}},
		{input.Directions{Right: true}, input.Directions{Right: true}},
		{input.Directions{Left: true, Right: true}, input.Directions{Left: true}},
		{input.Directions{}, input.Directions{}},
		// same tick is neutral
		{input.Directions{Left: true, Right: true}, input.Directions{}},
		{input.Directions{Left: true, Right: true}, input.Directions{}},
	}
	for i, s := range steps {
		assert.Equal(t, s.want, r.Resolve(s.in), "step %d", i)
	}
}

func TestSOCDReset(t *testing.T) {
	r := input.NewSOCDResolverWith(input.MethodFirstWin, input.MethodNeutral)
	r.Resolve(input.Directions{Right: true})
	r.Reset()
	// history forgotten: a same-tick press goes to the first direction
	assert.Equal(t, input.Directions{Left: true}, r.Resolve(input.Directions{Left: true, Right: true}))

	lr, ud := r.Methods()
	assert.Equal(t, input.MethodFirstWin, lr)
	assert.Equal(t, input.MethodNeutral, ud)
}

func TestParseMethod(t *testing.T) {
	for _, m := range allMethods {
		got, ok := input.LookupMethod(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, input.MethodLastWin, input.ParseMethod("LAST_WIN"))
	assert.Equal(t, input.MethodNeutral, input.ParseMethod("bogus"))
	_, ok := input.LookupMethod("bogus")
	assert.False(t, ok)

	r := input.NewSOCDResolverFromStrings("first-win", "nope")
	lr, ud := r.Methods()
	assert.Equal(t, input.MethodFirstWin, lr)
	assert.Equal(t, input.MethodNeutral, ud)
}

func TestHatValue(t *testing.T) {
	cases := []struct {
		d    input.Directions
		want uint8
	}{
		{input.Directions{Up: true}, 0},
		{input.Directions{Up: true, Right: true}, 1},
		{input.Directions{Right: true}, 2},
		{input.Directions{Down: true, Right: true}, 3},
		{input.Directions{Down: true}, 4},
		{input.Directions{Down: true, Left: true}, 5},
		{input.Directions{Left: true}, 6},
		{input.Directions{Up: true, Left: true}, 7},
		{input.Directions{}, 8},
		// conflicts that slipped through
		{input.Directions{Up: true, Down: true}, 8},
		{input.Directions{Left: true, Right: true, Up: true}, 8},
		{input.Directions{Up: true, Down: true, Left: true, Right: true}, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, input.HatValue(tc.d), "%+v", tc.d)
	}
}
