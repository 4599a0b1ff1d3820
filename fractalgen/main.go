// fractalgen draws a fractal tree or an L-system plus a small platformer
// preview built from the same parameters.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/scottkirkwood/lgart/config"
	"github.com/scottkirkwood/lgart/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configFile string
	preset     string
	modeFlag   string
	flagParams = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "fractalgen",
	Short: "Fractal tree and L-system generator with a game preview",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(logging.New(level))
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
}

// addParamFlags registers the generation parameters on cmd.
func addParamFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "params file (yaml)")
	f.StringVar(&preset, "preset", "", "start from a named preset")
	f.StringVar(&modeFlag, "mode", string(config.Fractal), "fractal or lsystem")
	f.IntVar(&flagParams.Depth, "depth", config.DefaultDepth, "recursion depth or rewrite passes")
	f.Float64Var(&flagParams.Angle, "angle", config.DefaultAngle, "branch or turn angle in degrees")
	f.Float64Var(&flagParams.Length, "length", config.DefaultLength, "trunk or step length in pixels")
	f.StringVar(&flagParams.Axiom, "axiom", config.DefaultAxiom, "L-system axiom")
	f.StringVar(&flagParams.Rule, "rule", flagParams.Rule, "L-system replacement for F, e.g. F[+F]F (an arrow glyph is removed)")
	f.Float64Var(&flagParams.Width, "width", config.DefaultWidth, "surface width in pixels")
	f.Float64Var(&flagParams.Height, "height", config.DefaultHeight, "surface height in pixels")
	f.BoolVar(&flagParams.Fit, "fit", false, "scale L-system drawings to the surface")
}

// resolveParams layers defaults, the preset, the params file and finally any
// flag set on the command line.
func resolveParams(cmd *cobra.Command) (config.Params, error) {
	p := config.Default()
	if preset != "" {
		var ok bool
		if p, ok = config.GetPreset(preset); !ok {
			return config.Params{}, fmt.Errorf("unknown preset %q", preset)
		}
	}
	if configFile != "" {
		var err error
		if p, err = config.Load(configFile); err != nil {
			return config.Params{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("mode") {
		mode, err := config.ParseMode(modeFlag)
		if err != nil {
			return config.Params{}, err
		}
		p.Mode = mode
	}
	if f.Changed("depth") {
		p.Depth = flagParams.Depth
	}
	if f.Changed("angle") {
		p.Angle = flagParams.Angle
	}
	if f.Changed("length") {
		p.Length = flagParams.Length
	}
	if f.Changed("axiom") {
		p.Axiom = flagParams.Axiom
	}
	if f.Changed("rule") {
		p.Rule = flagParams.Rule
	}
	if f.Changed("width") {
		p.Width = flagParams.Width
	}
	if f.Changed("height") {
		p.Height = flagParams.Height
	}
	if f.Changed("fit") {
		p.Fit = flagParams.Fit
	}
	return p, p.Validate()
}
