package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 10, "generations to simulate")
	every := flag.Int("print-every", 1, "print the board every n generations (0 prints only the last)")
	tps := flag.Int("tps", 0, "generations per second; 0 runs as fast as possible")
	seed := flag.Int64("seed", 0, "reset seed; 0 uses the configured one")
	params := flag.Bool("params", false, "print the effective parameters and exit")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q: want key=value", kv)
			continue
		}
		opts[parts[0]] = parts[1]
	}

	cfg, rejected := life.FromMapChecked(opts)
	for _, key := range rejected {
		log.Printf("ignoring override %s=%q: invalid value or unknown key", key, opts[key])
	}
	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("create life: %v", err)
	}

	if *params {
		printParams(sim)
		return
	}
	if !sim.PatternFits() {
		log.Printf("pattern %s does not fit a %dx%d board; starting empty", cfg.Pattern, cfg.Width, cfg.Height)
	}

	sim.Reset(*seed)
	var pacer core.Pacer
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	printBoard(sim)
	for i := 1; i <= *steps; i++ {
		if pacer != nil {
			for !pacer.ShouldStep() {
				time.Sleep(time.Millisecond)
			}
		}
		sim.Step()
		if (*every > 0 && i%*every == 0) || i == *steps {
			printBoard(sim)
		}
	}
}

func printBoard(sim *life.Simulation) {
	fmt.Fprintf(os.Stdout, "generation %d, population %d\n", sim.Generation(), sim.Population())
	fmt.Fprint(os.Stdout, render.ASCII(sim.Current(), '#', '.'))
}

func printParams(p core.ParametersProvider) {
	for _, g := range p.Parameters().Groups {
		fmt.Printf("%s:\n", g.Name)
		for _, p := range g.Params {
			fmt.Printf("  %-8s %-8s %s\n", p.Key, p.Value, p.Label)
		}
	}
}
