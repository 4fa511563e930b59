// SPDX-License-Identifier: MIT

// Command matcalc loads four matrices A, B, C and D, prints them, and
// evaluates A - (B + C*D)^T step by step.
//
// Usage:
//
//	matcalc [-config matcalc.yaml] [-data dir] [-precision n] [-format verb]
//	        [-out result.txt] [-mapped]
//
// Settings come from matcalc.yaml, then .env / MATCALC_* variables, then flags.
// Any load or shape error terminates the process with exit status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/matrixio"
	"github.com/katalvlaran/matcalc/pipeline"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("matcalc: ")

	if wd, err := os.Getwd(); err == nil {
		if _, err := config.LoadDotEnv(wd); err != nil {
			log.Fatal(err)
		}
	}

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.FileName, "path to the optional YAML config")
	dataDir := fs.String("data", "", "directory holding the input matrices")
	precision := fs.Int("precision", -1, "fractional digits when printing")
	format := fs.String("format", "", "fmt verb per element, overrides -precision (e.g. \"%10.3e \")")
	out := fs.String("out", "", "save the final result to this file")
	mapped := fs.Bool("mapped", false, "load inputs through a read-only memory mapping")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataDir = *dataDir
		case "precision":
			cfg.Precision = *precision
		case "format":
			cfg.Format = *format
		case "out":
			cfg.Output = *out
		case "mapped":
			if *mapped {
				cfg.Loader = config.LoaderMapped
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	return calculate(cfg, stdout, log.New(stderr, "matcalc: ", 0))
}

// calculate runs the pipeline described by cfg and prints every stage.
// Non-fatal diagnostics go to logger.
func calculate(cfg *config.Config, stdout io.Writer, logger *log.Logger) error {
	load := pipeline.Loader(matrixio.Load)
	if cfg.Loader == config.LoaderMapped {
		load = matrixio.LoadMapped
	}

	in, err := pipeline.LoadInputs(load, cfg.DataDir, pipeline.Files{
		A: cfg.Inputs.A, B: cfg.Inputs.B, C: cfg.Inputs.C, D: cfg.Inputs.D,
	})
	if err != nil {
		return err
	}
	defer func() {
		if rerr := in.Release(); rerr != nil {
			logger.Printf("release inputs: %v", rerr)
		}
	}()

	p := matrixio.NewPrinter(stdout, logger.Writer())
	show := func(title string, m *matrix.Dense) error {
		if _, err := fmt.Fprintf(stdout, "%s:\n", title); err != nil {
			return err
		}
		if cfg.Format != "" {
			return p.PrintFormatted(m, cfg.Format)
		}
		return p.Print(m, cfg.Precision)
	}

	for _, op := range []struct {
		name string
		m    *matrix.Dense
	}{{"A", in.A}, {"B", in.B}, {"C", in.C}, {"D", in.D}} {
		if err := show("Matrix "+op.name, op.m); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}

	res, err := pipeline.Run(in, func(step pipeline.Step, m *matrix.Dense) error {
		if err := show(fmt.Sprintf("%d) %s", int(step), step), m); err != nil {
			return err
		}
		_, err := fmt.Fprintln(stdout)
		return err
	})
	if err != nil {
		return err
	}
	defer func() { _ = res.Release() }()

	if cfg.Output != "" {
		if err := matrixio.Save(res, cfg.Output); err != nil {
			// Save failures are reported but do not fail the run.
			logger.Printf("%v", err)
			return nil
		}
		fmt.Fprintf(stdout, "result saved to %s\n", cfg.Output)
	}

	return nil
}
