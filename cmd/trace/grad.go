package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/born-ml/trace/autodiff"
	"github.com/born-ml/trace/backend/cpu"
)

func newGradCmd() *cobra.Command {
	var (
		name string
		xs   []float64
		eps  float64
	)

	cmd := &cobra.Command{
		Use:   "grad",
		Short: "Compare analytic and numerical gradients of a reference function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, ok := functions[name]
			if !ok {
				return fmt.Errorf("unknown function %q (available: %s)", name, functionNames())
			}
			return runGrad(cmd, name, f, xs, eps)
		},
	}

	cmd.Flags().StringVar(&name, "func", "square-exp-square", "reference function: "+functionNames())
	cmd.Flags().Float64SliceVar(&xs, "x", []float64{0.5}, "comma-separated input values")
	cmd.Flags().Float64Var(&eps, "eps", 1e-4, "central-difference step")
	return cmd
}

func runGrad(cmd *cobra.Command, name string, f function, xs []float64, eps float64) error {
	logger := newLogger(cmd)
	tr := autodiff.New(cpu.New(), autodiff.WithLogger(logger))

	x, err := tr.Wrap(xs)
	if err != nil {
		return err
	}
	x.SetName("x")

	y, err := f(tr, x)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	if err := y.Backward(); err != nil {
		return err
	}

	numeric, err := autodiff.NumericalDiff(func(v *autodiff.Value) (*autodiff.Value, error) {
		return f(tr, v)
	}, x, eps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	values := y.Data().Float64s()
	analytic := x.Grad().Float64s()
	estimate := numeric.Float64s()

	fmt.Fprintf(out, "f = %s\n", name)
	fmt.Fprintf(out, "%-12s %-14s %-14s %-14s %s\n", "x", "f(x)", "analytic", "numerical", "abs diff")
	var maxDiff float64
	for i, xv := range xs {
		diff := math.Abs(analytic[i] - estimate[i])
		maxDiff = max(maxDiff, diff)
		fmt.Fprintf(out, "%-12g %-14.8g %-14.8g %-14.8g %.3g\n", xv, values[i], analytic[i], estimate[i], diff)
	}

	logger.Info("gradient check finished", "func", name, "points", len(xs), "max_abs_diff", maxDiff)
	return nil
}
