package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/milk9111/hexfollow/scenario"
	"github.com/milk9111/hexfollow/sim"
	"gopkg.in/yaml.v3"
)

func main() {
	name := flag.String("scenario", "corridor", "scenario name ("+strings.Join(scenario.Names(), ", ")+")")
	ticks := flag.Int("ticks", 0, "override the scenario tick count")
	format := flag.String("format", "text", "output format: text or yaml")
	every := flag.Int("every", 1, "record every n-th tick")
	watch := flag.Bool("watch", false, "re-run when the scenario or its scripts change on disk")
	dir := flag.String("dir", scenario.Dir, "directory checked for scenarios before the embedded ones")
	flag.Parse()

	scenario.Dir = *dir

	if *format != "text" && *format != "yaml" {
		log.Fatalf("unknown format %q", *format)
	}

	run := func() {
		if err := runOnce(os.Stdout, *name, *ticks, *every, *format); err != nil {
			log.Printf("followsim: %v", err)
		}
	}
	run()

	if !*watch {
		return
	}

	w, err := scenario.NewWatcher(*dir, filepath.Join(*dir, "scripts"))
	if err != nil {
		log.Fatalf("watch %s: %v", *dir, err)
	}
	defer w.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	log.Printf("watching %s", *dir)
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			log.Printf("scenario changed: %s", path)
			run()
		case err, ok := <-w.Errors:
			if ok && err != nil {
				log.Printf("scenario watch error: %v", err)
			}
		case <-stop:
			return
		}
	}
}

func runOnce(out io.Writer, name string, ticks, every int, format string) error {
	spec, err := scenario.Load(name)
	if err != nil {
		return err
	}
	if ticks > 0 {
		spec.Ticks = ticks
	}

	runner, err := sim.NewRunner(spec)
	if err != nil {
		return err
	}
	runner.SetRecordEvery(every)

	trace, err := runner.Run()
	if err != nil {
		return err
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(trace)
	}
	return writeText(out, trace)
}

func writeText(out io.Writer, trace *sim.Trace) error {
	fmt.Fprintf(out, "run %s scenario %s dt %g\n", trace.RunID, trace.Scenario, trace.DT)
	for _, f := range trace.Frames {
		target := "-"
		if f.Present {
			target = fmt.Sprintf("(%.3f, %.3f)", f.Target.X(), f.Target.Y())
		}
		fmt.Fprintf(out, "%6d %8.3f %-8s target %-22s camera (%.3f, %.3f, %.3f) vel (%.3f, %.3f, %.3f)\n",
			f.Tick, f.Time, f.Mode, target,
			f.Camera.X(), f.Camera.Y(), f.Camera.Z(),
			f.Velocity.X(), f.Velocity.Y(), f.Velocity.Z())
	}
	stats := trace.Stats()
	_, err := fmt.Fprintf(out, "frames %d idle %d max step %.3f final (%.3f, %.3f, %.3f)\n",
		stats.Frames, stats.IdleTicks, stats.MaxStep, stats.Final.X(), stats.Final.Y(), stats.Final.Z())
	return err
}
