package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxpad/nxpad/diag"
	"github.com/nxpad/nxpad/input"
	"github.com/nxpad/nxpad/internal/config"
	"github.com/nxpad/nxpad/pinout"
)

type cli struct {
	Pipeline config.Pipeline `embed:"" prefix:"pipeline."`
}

func parse(t *testing.T, args ...string) config.Pipeline {
	t.Helper()
	var c cli
	parser, err := kong.New(&c, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return c.Pipeline
}

func TestDefaults(t *testing.T) {
	p := parse(t)
	assert.Equal(t, "standard", p.Pinout)
	assert.Equal(t, uint8(3), p.DebounceThreshold)
	assert.Equal(t, time.Millisecond, p.PollInterval)
	assert.Equal(t, "neutral", p.SOCD.LeftRight)
	assert.Equal(t, "up-priority", p.SOCD.UpDown)
	assert.Equal(t, uint16(50), p.Analog.Deadzone)
	assert.InDelta(t, 0.3, p.Analog.FilterStrength, 1e-6)
	assert.Equal(t, config.Stick{Center: 512, Min: 0, Max: 1023}, p.Analog.Left)
	assert.Equal(t, []string{"home", "plus", "minus"}, p.Lock.Buttons)
	assert.False(t, p.Lock.ActiveLow)

	m, layout, err := p.Build(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, pinout.Standard, layout)

	lr, ud := m.SOCD().Methods()
	assert.Equal(t, input.MethodNeutral, lr)
	assert.Equal(t, input.MethodUpPriority, ud)
	assert.Equal(t, []input.Button{input.ButtonHome, input.ButtonPlus, input.ButtonMinus}, m.Lock().Buttons())
	assert.True(t, m.Lock().ActiveHigh())
	assert.Equal(t, input.DefaultCalibration, m.Analog().Calibration(input.StickRight))
	assert.Equal(t, pinout.Standard.Bindings(), m.Digital().Bindings())
}

func TestFlags(t *testing.T) {
	p := parse(t,
		"--pipeline.pinout=alternate",
		"--pipeline.socd.left-right=last-win",
		"--pipeline.analog.deadzone=10",
		"--pipeline.analog.right.invert-y",
		"--pipeline.analog.left.center=2048",
		"--pipeline.analog.left.max=4095",
		"--pipeline.lock.buttons=capture",
	)
	m, layout, err := p.Build(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, "alternate", layout.Name)

	lr, _ := m.SOCD().Methods()
	assert.Equal(t, input.MethodLastWin, lr)
	assert.Equal(t, uint16(10), m.Analog().Deadzone())
	assert.True(t, m.Analog().InvertY(input.StickRight))
	assert.False(t, m.Analog().InvertY(input.StickLeft))
	assert.Equal(t, uint16(2048), m.Analog().Calibration(input.StickLeft).CenterX)
	assert.Empty(t, m.Lock().Buttons(), "alternate has no lock pin")
}

func TestBuildWarnings(t *testing.T) {
	var logs bytes.Buffer
	p := parse(t, "--pipeline.socd.up-down=diagonal", "--pipeline.analog.filter-strength=3")
	m, _, err := p.Build(slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	_, ud := m.SOCD().Methods()
	assert.Equal(t, input.MethodNeutral, ud)
	assert.Equal(t, float32(1), m.Analog().FilterStrength())
	assert.Contains(t, logs.String(), "Unknown SOCD method")
	assert.Contains(t, logs.String(), "Filter strength out of range")
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		is   error
	}{
		{"unknown pinout", []string{"--pipeline.pinout=nope"}, pinout.ErrUnknownLayout},
		{"unknown lock button", []string{"--pipeline.lock.buttons=turbo"}, pinout.ErrUnknownButton},
		{"non-menu lock button", []string{"--pipeline.lock.buttons=a"}, nil},
		{"zero threshold", []string{"--pipeline.debounce-threshold=0"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parse(t, tc.args...)
			_, _, err := p.Build(slog.New(slog.DiscardHandler))
			require.Error(t, err)
			assert.Equal(t, diag.ConfigError, diag.Classify(err))
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestPinoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"mine\"\n[digital]\na = 30\n"), 0o644))

	p := parse(t, "--pipeline.pinout="+path)
	m, layout, err := p.Build(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, "mine", layout.Name)
	assert.Equal(t, uint8(30), m.Digital().Bindings()[input.ButtonA].Pin)
}
