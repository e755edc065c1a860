// Command bimatch reads a dense n×n integer weight matrix and prints a
// maximum-weight bipartite matching as "u v" pairs, one per line.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/matching"
	"github.com/katalvlaran/bimatch/present"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin *os.File, stdout *os.File) int {
	fs := flag.NewFlagSet("bimatch", flag.ContinueOnError)
	perfect := fs.Bool("perfect", false, "find a maximum-weight perfect matching instead of an unconstrained maximum-weight matching")
	arity := fs.Int("arity", 4, "heap arity used for each augmenting-path sweep")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var in *os.File = stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			logger.Error("bimatch: opening input", zap.Error(err))
			return 1
		}
		defer f.Close()
		in = f
	}

	inst, err := bipartite.FromMatrix(in)
	if err != nil {
		logger.Error("bimatch: reading matrix", zap.Error(err))
		return 1
	}

	sv, err := matching.NewSolver(inst, matching.WithLogger(logger), matching.WithArity(*arity))
	if err != nil {
		logger.Error("bimatch: configuring solver", zap.Error(err))
		return 1
	}

	var m []int
	if *perfect {
		m, err = sv.MaximumPerfectMatching()
	} else {
		m, err = sv.MaximumMatching()
	}
	if err != nil {
		logger.Error("bimatch: solving", zap.Error(err))
		return 1
	}

	if err := present.Matching(stdout, inst, m); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
