package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gnss-sim/internal/config"
	"gnss-sim/internal/geo"
	"gnss-sim/internal/nmea"
	"gnss-sim/internal/sim"
)

func main() {
	var (
		list        bool
		configPath  string
		intervalSec float64
		speed       float64
	)
	flag.BoolVar(&list, "l", false, "list catalog locations and exit")
	flag.BoolVar(&list, "list", false, "list catalog locations and exit")
	flag.StringVar(&configPath, "c", "./locations.yml", "path to YAML location catalog")
	flag.StringVar(&configPath, "config", "./locations.yml", "path to YAML location catalog")
	flag.Float64Var(&intervalSec, "t", 1.0, "seconds between sentences")
	flag.Float64Var(&intervalSec, "interval", 1.0, "seconds between sentences")
	flag.Float64Var(&speed, "s", 1.0, "ground speed in meters per second")
	flag.Float64Var(&speed, "speed", 1.0, "ground speed in meters per second")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] LOCATION\n\nEmits one NMEA GGA sentence per tick for a receiver moving away\nfrom LOCATION on a fixed random heading.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if list {
		// Listing never fails: an unreadable catalog lists nothing.
		if cat, err := config.LoadCatalog(configPath); err == nil {
			for _, name := range cat.Names() {
				fmt.Println(name)
			}
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)

	if intervalSec <= 0 {
		log.Fatalf("interval must be positive, got %v", intervalSec)
	}
	if speed < 0 {
		log.Fatalf("speed must not be negative, got %v", speed)
	}

	cat, err := config.LoadCatalog(configPath)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}
	loc, ok := cat.Lookup(name)
	if !ok {
		log.Fatalf("unknown location %q (run with -l to list)", name)
	}

	// One random bearing per run: the receiver travels a straight line
	// at the configured speed.
	dx, dy, err := geo.RandomDisplacement(speed * intervalSec)
	if err != nil {
		log.Fatalf("heading setup failed: %v", err)
	}

	fix := startFix(loc)
	interval := time.Duration(intervalSec * float64(time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Best-effort stdin drain so an upstream writer never blocks.
	go sim.DrainReader(os.Stdin)

	log.Printf("gnss-sim starting at %s (lat=%.4f lon=%.4f alt=%.1fm)",
		loc.Name, loc.Latitude, loc.Longitude, loc.Height)
	log.Printf("step east=%.2fm north=%.2fm interval=%s", dx, dy, interval)

	em := &sim.Emitter{
		Fix:        fix,
		StepEastM:  dx,
		StepNorthM: dy,
		Interval:   interval,
		Out:        os.Stdout,
	}
	if err := em.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("emitter stopped: %v", err)
	}
	log.Printf("gnss-sim stopping")
}

// startFix seeds a locked receiver at the catalog location.
func startFix(loc config.Location) *nmea.Fix {
	fix := nmea.NewFix()
	fix.MoveTo(loc.Latitude, loc.Longitude)
	fix.Quality = 1
	fix.NumSats = 8
	alt := loc.Height
	fix.AltM = &alt
	return fix
}
