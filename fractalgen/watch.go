package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/scottkirkwood/lgart/config"
	"github.com/scottkirkwood/lgart/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <params.yaml>",
	Short: "Redraw every time the params file is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		r, err := newRenderer(slog.Default(), outDir, format, backend)
		if err != nil {
			return err
		}
		regenerate := func() error {
			p, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			_, err = r.Pass(p, 1)
			return err
		}
		if err := regenerate(); err != nil {
			slog.Error("first pass", "file", path, "err", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		err = watch.New(slog.Default()).Run(ctx, path, regenerate)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	addOutputFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}
