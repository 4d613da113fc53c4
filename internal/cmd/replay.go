package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nxpad/nxpad/board"
	"github.com/nxpad/nxpad/device/switchpro"
	"github.com/nxpad/nxpad/diag"
	"github.com/nxpad/nxpad/internal/config"
	"github.com/nxpad/nxpad/internal/log"
	"github.com/nxpad/nxpad/trace"
	"github.com/nxpad/nxpad/usb"
)

// Replay plays a recorded input trace through the pipeline and prints every
// report the host would receive.
type Replay struct {
	Trace    string          `arg:"" name:"trace" help:"YAML input trace" type:"existingfile"`
	Pipeline config.Pipeline `embed:"" prefix:"pipeline."`
	Format   string          `help:"Report output format" enum:"auto,hex,json,table" default:"auto" env:"NXPAD_FORMAT"`
	Loop     bool            `help:"Restart the trace when it ends, until interrupted"`
	Changes  bool            `help:"Only print reports that differ from the previous one"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Start(ctx, logger, rawLogger, os.Stdout)
}

// Start runs the replay until the trace ends or ctx is cancelled.
func (r *Replay) Start(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger, w io.Writer) error {
	tr, err := trace.Load(r.Trace)
	if err != nil {
		return diag.Wrap(diag.ConfigError, err)
	}
	m, layout, err := r.Pipeline.Build(logger)
	if err != nil {
		return err
	}
	out, err := newReportWriter(r.Format, w)
	if err != nil {
		return diag.Wrap(diag.ConfigError, err)
	}

	player := trace.NewPlayer(tr, layout)
	sampler := board.NewSampler(player, layout, tr.Center)
	dev := switchpro.New(nil)

	logger.Info("Starting replay",
		"trace", r.Trace,
		"frames", len(tr.Frames),
		"ticks", tr.Ticks(),
		"pinout", layout.Name,
		"interval", r.Pipeline.PollInterval,
		"loop", r.Loop,
	)

	// pending carries a tick number from the poll side once its report is
	// stored in dev; consumed hands control back after the transport side
	// has read it.
	pending := make(chan uint64)
	consumed := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(pending)

		var ticker *time.Ticker
		if r.Pipeline.PollInterval > 0 {
			ticker = time.NewTicker(r.Pipeline.PollInterval)
			defer ticker.Stop()
		}
		for {
			if !player.Next() {
				if !r.Loop {
					return nil
				}
				logger.Debug("Trace ended, restarting", "ticks", m.Ticks())
				player.Rewind()
				if !player.Next() {
					return nil
				}
			}
			if ticker != nil {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
				}
			}

			st := m.Poll(sampler.Sample())
			dev.UpdateReport(st.ToReport())

			select {
			case <-gctx.Done():
				return nil
			case pending <- m.Ticks():
			}
			select {
			case <-gctx.Done():
				return nil
			case <-consumed:
			}
		}
	})

	g.Go(func() error {
		var last []byte
		for {
			var tick uint64
			var ok bool
			select {
			case <-gctx.Done():
				return nil
			case tick, ok = <-pending:
				if !ok {
					return nil
				}
			}

			data := dev.HandleTransfer(usb.EndpointNumber(switchpro.EndpointIn), usb.DirIn, nil)
			select {
			case <-gctx.Done():
				return nil
			case consumed <- struct{}{}:
			}

			rawLogger.Log(tick, data)
			if r.Changes && bytes.Equal(data, last) {
				continue
			}
			last = data
			if err := out.WriteReport(tick, data); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}

	in, _ := dev.Stats()
	logger.Info("Replay finished", "ticks", m.Ticks(), "reports", in)
	return nil
}
