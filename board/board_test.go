package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nxpad/nxpad/board"
	"github.com/nxpad/nxpad/input"
	btest "github.com/nxpad/nxpad/internal/testing"
	"github.com/nxpad/nxpad/pinout"
)

func TestSampleActiveLow(t *testing.T) {
	mb := btest.NewMockBoard(t, pinout.Standard)
	mb.Press(input.ButtonA)
	mb.SetAxis("lx", 1)
	mb.SetAxis("ly", 2)
	mb.SetAxis("rx", 3)
	mb.SetAxis("ry", 4)
	mb.SetLevel(pinout.Standard.Lock, true)

	s := board.NewSampler(mb, pinout.Standard, 512)
	digital, analog, lock := s.Sample()

	assert.Len(t, digital, 21)
	for i, p := range pinout.Standard.Digital {
		assert.Equal(t, input.Button(i) == input.ButtonA, digital[p], input.Button(i).String())
	}
	assert.Equal(t, []uint16{1, 2, 3, 4}, analog)
	assert.True(t, lock, "lock level is raw")
	assert.Equal(t, int(input.NumInputs)+1, mb.Reads)
}

func TestSampleActiveHighUnwired(t *testing.T) {
	l := pinout.Alternate
	l.ActiveLow = false
	mb := btest.NewMockBoard(t, l)
	mb.Press(input.ButtonA)
	mb.SetLevel(0, true)

	s := board.NewSampler(mb, l, 512)
	digital, analog, lock := s.Sample()

	assert.True(t, digital[11])
	assert.False(t, digital[14])
	assert.Equal(t, []uint16{512, 512, 512, 512}, analog)
	assert.False(t, lock, "no lock pin wired")
	assert.Equal(t, l, s.Layout())

	// buffers are reused and cleared
	mb.Release(input.ButtonA)
	digital2, _, _ := s.Sample()
	assert.False(t, digital2[11])
	assert.Same(t, &digital[0], &digital2[0])
}

func TestSamplerFeedsManager(t *testing.T) {
	mb := btest.NewMockBoard(t, pinout.Standard)
	mb.Press(input.ButtonDpadLeft)

	s := board.NewSampler(mb, pinout.Standard, 512)
	m := input.NewManagerWithHandlers(input.NewDigitalHandlerWith(pinout.Standard.Bindings(), 1), nil, nil, nil)
	st := m.Poll(s.Sample())

	assert.Equal(t, input.Directions{Left: true}, st.DPad)
	assert.Equal(t, input.CenteredStick, st.LeftStick)
	assert.False(t, st.Buttons.Pressed(input.ButtonA))
}
