package sim

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gnss-sim/internal/geo"
	"gnss-sim/internal/nmea"
)

func parisFix() *nmea.Fix {
	fix := nmea.NewFix()
	fix.MoveTo(48.8584, 2.2945)
	fix.Quality = 1
	fix.NumSats = 8
	return fix
}

func TestEmitter_TickAdvancesAndEmits(t *testing.T) {
	var buf bytes.Buffer
	em := &Emitter{
		Fix:        parisFix(),
		StepEastM:  30,
		StepNorthM: 40,
		Out:        &buf,
	}

	prevLat, prevLon := *em.Fix.Lat, *em.Fix.Lon
	for i := 0; i < 3; i++ {
		if err := em.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if *em.Fix.Lat <= prevLat || *em.Fix.Lon <= prevLon {
			t.Fatalf("tick %d: position did not advance northeast", i)
		}
		prevLat, prevLon = *em.Fix.Lat, *em.Fix.Lon
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\r\n") {
		t.Fatalf("output not CRLF-terminated: %q", out)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("line count=%d want 3", len(lines))
	}
	for i, line := range lines {
		if err := nmea.ValidateGGA(line); err != nil {
			t.Fatalf("line %d invalid: %v (%q)", i, err, line)
		}
	}
}

func TestEmitter_RunEmitsOnceBeforeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	em := &Emitter{
		Fix:        parisFix(),
		StepEastM:  1,
		StepNorthM: 1,
		Interval:   time.Hour,
		Out:        &buf,
	}
	if err := em.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if n := strings.Count(buf.String(), "\r\n"); n != 1 {
		t.Fatalf("sentence count=%d want 1", n)
	}
}

func TestEmitter_TickRequiresPosition(t *testing.T) {
	em := &Emitter{Fix: nmea.NewFix(), Out: &bytes.Buffer{}}
	if err := em.Tick(); err == nil {
		t.Fatalf("expected error for fix without position")
	}
}

func TestEmitter_PoleIsFatal(t *testing.T) {
	fix := nmea.NewFix()
	fix.MoveTo(90, 0)
	em := &Emitter{Fix: fix, StepEastM: 1, Out: &bytes.Buffer{}}

	err := em.Tick()
	if !errors.Is(err, geo.ErrPoleLatitude) {
		t.Fatalf("err=%v want ErrPoleLatitude", err)
	}
}

func TestEmitter_FlushesBufferedWriter(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriterSize(&buf, 1<<16)
	em := &Emitter{Fix: parisFix(), StepEastM: 1, StepNorthM: 1, Out: w}

	if err := em.Tick(); err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected flushed output in underlying buffer")
	}
}
