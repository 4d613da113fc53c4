package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-faster/jx"
	"golang.org/x/term"

	"github.com/nxpad/nxpad/device/switchpro"
	"github.com/nxpad/nxpad/input"
	"github.com/nxpad/nxpad/internal/log"
)

// reportWriter prints reports as they come out of the transport.
type reportWriter interface {
	WriteReport(tick uint64, data []byte) error
}

// newReportWriter picks a writer for format. "auto" prints a table on a
// terminal and hex otherwise.
func newReportWriter(format string, w io.Writer) (reportWriter, error) {
	if format == "auto" {
		format = "hex"
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			format = "table"
		}
	}
	switch format {
	case "hex":
		return hexWriter{w: w}, nil
	case "json":
		return &jsonWriter{w: w}, nil
	case "table":
		return &tableWriter{w: w}, nil
	}
	return nil, fmt.Errorf("unsupported output format: %s", format)
}

type hexWriter struct {
	w io.Writer
}

func (h hexWriter) WriteReport(tick uint64, data []byte) error {
	_, err := fmt.Fprintf(h.w, "%06d  %s\n", tick, log.HexString(data))
	return err
}

type jsonWriter struct {
	w io.Writer
	e jx.Encoder
}

// WriteReport emits one JSON object per line.
func (j *jsonWriter) WriteReport(tick uint64, data []byte) error {
	var r switchpro.Report
	if err := r.UnmarshalBinary(data); err != nil {
		return err
	}
	j.e.Reset()
	j.e.Obj(func(e *jx.Encoder) {
		e.Field("tick", func(e *jx.Encoder) { e.UInt64(tick) })
		e.Field("buttons", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, name := range buttonNames(r.Buttons) {
					e.Str(name)
				}
			})
		})
		e.Field("hat", func(e *jx.Encoder) { e.UInt8(r.Hat) })
		e.Field("lx", func(e *jx.Encoder) { e.UInt8(r.LX) })
		e.Field("ly", func(e *jx.Encoder) { e.UInt8(r.LY) })
		e.Field("rx", func(e *jx.Encoder) { e.UInt8(r.RX) })
		e.Field("ry", func(e *jx.Encoder) { e.UInt8(r.RY) })
		e.Field("raw", func(e *jx.Encoder) { e.Str(fmt.Sprintf("%x", data)) })
	})
	_, err := j.w.Write(append(j.e.Bytes(), '\n'))
	return err
}

const tableHeader = "  TICK  HAT  LX  LY  RX  RY  BUTTONS\n"

type tableWriter struct {
	w       io.Writer
	started bool
}

func (t *tableWriter) WriteReport(tick uint64, data []byte) error {
	var r switchpro.Report
	if err := r.UnmarshalBinary(data); err != nil {
		return err
	}
	var buf bytes.Buffer
	if !t.started {
		buf.WriteString(tableHeader)
		t.started = true
	}
	names := strings.Join(buttonNames(r.Buttons), ",")
	if names == "" {
		names = "-"
	}
	fmt.Fprintf(&buf, "%6d  %-3s %3d %3d %3d %3d  %s\n", tick, hatName(r.Hat), r.LX, r.LY, r.RX, r.RY, names)
	_, err := t.w.Write(buf.Bytes())
	return err
}

// buttonNames lists the buttons set in a report's button field, in bit order.
func buttonNames(mask uint16) []string {
	var names [input.NumButtons]string
	for b := input.Button(0); b < input.NumButtons; b++ {
		if idx, ok := b.ReportIndex(); ok && mask&(1<<idx) != 0 {
			names[idx] = b.String()
		}
	}
	out := make([]string, 0, input.NumButtons)
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

var hatNames = [...]string{
	switchpro.HatUp:        "N",
	switchpro.HatUpRight:   "NE",
	switchpro.HatRight:     "E",
	switchpro.HatDownRight: "SE",
	switchpro.HatDown:      "S",
	switchpro.HatDownLeft:  "SW",
	switchpro.HatLeft:      "W",
	switchpro.HatUpLeft:    "NW",
	switchpro.HatNeutral:   "-",
}

func hatName(h uint8) string {
	if int(h) < len(hatNames) {
		return hatNames[h]
	}
	return "?"
}
