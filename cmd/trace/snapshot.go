package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/trace/autodiff"
	"github.com/born-ml/trace/backend/cpu"
	"github.com/born-ml/trace/serialization"
)

func newSnapshotCmd() *cobra.Command {
	var (
		path string
		xs   []float64
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save parameters and gradients, then load them back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, path, xs)
		},
	}

	cmd.Flags().StringVar(&path, "out", "", "snapshot file path")
	cmd.Flags().Float64SliceVar(&xs, "x", []float64{1, 2, 3}, "comma-separated parameter values")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runSnapshot(cmd *cobra.Command, path string, xs []float64) error {
	logger := newLogger(cmd)
	tr := autodiff.New(cpu.New(), autodiff.WithLogger(logger))

	// loss = sum(w² · scale)
	w, err := tr.Wrap(xs)
	if err != nil {
		return err
	}
	w.SetName("w")
	scale, err := tr.Wrap(0.5)
	if err != nil {
		return err
	}
	scale.SetName("scale")

	sq, err := tr.Square(w)
	if err != nil {
		return err
	}
	loss, err := tr.Mul(sq, scale)
	if err != nil {
		return err
	}
	if err := loss.Backward(); err != nil {
		return err
	}

	entries := autodiff.Snapshot(w, scale)
	if err := serialization.WriteFile(path, entries); err != nil {
		return err
	}
	logger.Info("snapshot written", "path", path, "entries", len(entries))

	loaded, err := serialization.ReadFile(path)
	if err != nil {
		return err
	}
	restored, err := tr.Restore(loaded)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, v := range restored {
		grad := "nil"
		if v.Grad() != nil {
			grad = v.Grad().String()
		}
		fmt.Fprintf(out, "%-8s data=%s grad=%s\n", v.Name(), v.Data(), grad)
	}
	return nil
}
