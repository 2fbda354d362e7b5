// SPDX-License-Identifier: MIT

// Command disasteraid ranks flood-affected people by need and plans supply
// routes to them from one source city.
//
// Usage:
//
//	disasteraid -config disasteraid.toml [-scenario file] [-algorithm name] [-log-level lvl]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/disasteraid/routing"
	"github.com/katalvlaran/disasteraid/scenario"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("disasteraid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to the TOML configuration file")
	scenarioPath := fs.String("scenario", "", "scenario file (overrides config)")
	algorithm := fs.String("algorithm", "", "routing algorithm: dijkstra, bellman-ford, floyd-warshall (overrides config)")
	logLevel := fs.String("log-level", "", "log level (overrides config)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *scenarioPath != "" {
		cfg.Scenario = *scenarioPath
	}
	if *algorithm != "" {
		cfg.Algorithm = *algorithm
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if cfg.Scenario == "" {
		fmt.Fprintln(stderr, "Error: no scenario file given (set scenario in the config or pass -scenario)")
		return 1
	}

	logger, closer, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	algo, _ := routing.ParseAlgorithm(cfg.Algorithm) // validated above
	log := logger.WithField("scenario", cfg.Scenario)

	sc, err := scenario.Load(cfg.Scenario)
	if err != nil {
		log.WithError(err).Error("failed to load scenario")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	g, err := sc.BuildGraph()
	if err != nil {
		log.WithError(err).Error("failed to build city graph")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	stats := g.Stats()
	log.Infof("loaded %d cities, %d roads, %d beneficiaries",
		stats.VertexCount, stats.EdgeCount, len(sc.People))

	planner, err := routing.NewPlanner(g,
		routing.WithAlgorithm(algo),
		routing.WithPolicy(sc.EffectivePolicy()),
		routing.WithLogger(log))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	plan, err := planner.Dispatch(sc.People, sc.Source)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := printRanked(stdout, plan.Ranked); err != nil {
		log.WithError(err).Error("write report")
		return 1
	}

	if sc.Destination != "" {
		routes, err := planner.Compare(sc.Source, sc.Destination)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if err := printComparison(stdout, sc.Source, sc.Destination, routes); err != nil {
			log.WithError(err).Error("write report")
			return 1
		}
	}

	if err := printRoutes(stdout, plan); err != nil {
		log.WithError(err).Error("write report")
		return 1
	}

	return 0
}
