package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gs-coelho/cifra-carmesim/grid"
	"github.com/gs-coelho/cifra-carmesim/puzzleio"
	"github.com/gs-coelho/cifra-carmesim/solver"
)

// options holds the flags shared by every command.
type options struct {
	strict     bool
	verbose    bool
	dump       bool
	maxEntries int
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "cifra",
		Short: "Solve a Cifra Carmesim crystal box",
		Long: `Read a crystal box from standard input and print the brightest admissible
selection of crystals.

Input is whitespace-separated integers: "L C N" followed by N records
"x y v d c e b" (1-based row and column, brightness, then 0/1 flags for the
right, up, left and down connections).

Output is "count brightness" followed by one "row col" line per used crystal.

Examples:
  cifra < box.txt
  cifra --strict --verbose < box.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(logrus.WarnLevel)
			if o.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sol, err := o.solve(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return puzzleio.Write(cmd.OutOrStdout(), sol)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&o.strict, "strict", false, "Reject connection flags other than 0/1 and negative brightness")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "Log solver progress to stderr")
	pf.BoolVar(&o.dump, "dump", false, "Write the grid and memo table to stderr after solving")
	pf.IntVar(&o.maxEntries, "max-entries", solver.DefaultMaxTableEntries, "Maximum memo table entries (L × 2^C × 2^C)")

	root.AddCommand(newRenderCmd(o))

	return root
}

// solve reads a box from in, solves it and optionally dumps the tables to diag.
func (o *options) solve(in io.Reader, diag io.Writer) (*grid.Grid, solver.Solution, error) {
	g, h, err := puzzleio.Read(in, o.strict)
	if err != nil {
		return nil, solver.Solution{}, fmt.Errorf("failed to read box: %w", err)
	}
	fields := logrus.Fields{"rows": h.Rows, "cols": h.Cols, "crystals": h.Crystals}
	log.WithFields(fields).Debug("box loaded")

	s, err := solver.New(g, &solver.Options{MaxTableEntries: o.maxEntries})
	if err != nil {
		return nil, solver.Solution{}, fmt.Errorf("failed to prepare solver: %w", err)
	}

	start := time.Now()
	sol := s.Solve()
	log.WithFields(fields).WithFields(logrus.Fields{
		"configs":      s.NumConfigs(),
		"memo_entries": s.ComputedEntries(),
		"value":        sol.Brightness,
		"used":         sol.Crystals,
		"elapsed":      time.Since(start),
	}).Debug("box solved")
	if !sol.Feasible() {
		log.WithFields(fields).Warn("no feasible selection")
	}

	if o.dump {
		if err := g.Dump(diag); err != nil {
			return nil, solver.Solution{}, err
		}
		if err := s.DumpMemo(diag); err != nil {
			return nil, solver.Solution{}, err
		}
	}

	return g, sol, nil
}
