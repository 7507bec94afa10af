package sim

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"gnss-sim/internal/geo"
	"gnss-sim/internal/nmea"
)

// Emitter advances a receiver fix along a fixed heading and writes one
// GGA sentence per tick. The Fix is owned by the Emitter for the
// lifetime of Run; nothing else may mutate it.
type Emitter struct {
	Fix *nmea.Fix

	// StepEastM / StepNorthM are the meters traveled per tick. They are
	// fixed for the whole run, so motion is a straight line.
	StepEastM  float64
	StepNorthM float64

	Interval time.Duration
	Out      io.Writer
}

// Run emits sentences until ctx is canceled. The first sentence is
// written immediately; each subsequent tick waits out Interval with no
// overlap between ticks. A write or geodesy failure stops the run.
func (e *Emitter) Run(ctx context.Context) error {
	interval := e.Interval
	if interval <= 0 {
		interval = 1 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := e.Tick(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Tick advances the fix by one step and writes the rendered sentence,
// CRLF-terminated, flushing if the writer supports it.
func (e *Emitter) Tick() error {
	if e.Fix.Lat == nil || e.Fix.Lon == nil {
		return fmt.Errorf("emitter: fix has no position")
	}

	lon, lat, err := geo.Displace(*e.Fix.Lon, *e.Fix.Lat, e.StepEastM, e.StepNorthM)
	if err != nil {
		return err
	}
	e.Fix.MoveTo(lat, lon)

	line := e.Fix.Sentence()
	if err := nmea.ValidateGGA(line); err != nil {
		// Not expected for encoder output; keep the sentence out of the
		// stream and carry on.
		log.Printf("emitter: produced invalid sentence: %v", err)
		return nil
	}

	if _, err := io.WriteString(e.Out, line+"\r\n"); err != nil {
		return fmt.Errorf("emitter: write: %w", err)
	}
	if f, ok := e.Out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("emitter: flush: %w", err)
		}
	}
	return nil
}
