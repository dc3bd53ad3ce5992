// Package cli implements the vecview command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"vecview/app"
	"vecview/hal"
	"vecview/internal/buildinfo"
	"vecview/internal/config"
	"vecview/internal/script"
	"vecview/viewer/render"
)

// Options holds flag values shared by the commands.
type Options struct {
	ConfigPath    string
	Debug         bool
	Width         int
	Height        int
	Preset        string
	Seed          int64
	Headless      bool
	Hz            int
	Ticks         uint64
	Script        string
	Snapshot      string
	SnapshotScale int
}

// NewRootCommand creates the root cobra command. Without a subcommand it
// opens the viewer.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "vecview",
		Short: "Interactive 2D vector viewer",
		Long: `vecview draws vectors from the origin over an adaptive grid.

Left click adds a vector, right drag pans, the wheel zooms around the cursor.
Keys: 1/2 previous/next preset, R reset camera, Delete clear, Esc quit.

Examples:
  vecview
  vecview --preset "Spokes Circle" --config viewer.yaml
  vecview --headless --script clicks.yaml --snapshot out.png`,
		Version:       buildinfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			} else {
				log.SetOutput(io.Discard)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	pf.StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")

	f := cmd.Flags()
	f.IntVar(&opts.Width, "width", 0, "Window width in pixels (overrides config)")
	f.IntVar(&opts.Height, "height", 0, "Window height in pixels (overrides config)")
	f.StringVar(&opts.Preset, "preset", "", "Start preset, by name or index")
	f.Int64Var(&opts.Seed, "seed", 0, "Seed for the random preset (default: clock)")
	f.BoolVar(&opts.Headless, "headless", false, "Run without a window")
	f.IntVar(&opts.Hz, "hz", 60, "Tick rate in headless mode")
	f.Uint64Var(&opts.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever, or until the script ends)")
	f.StringVar(&opts.Script, "script", "", "YAML input script replayed in headless mode")
	f.StringVar(&opts.Snapshot, "snapshot", "", "Write the final frame to this PNG file (implies --headless)")
	f.IntVar(&opts.SnapshotScale, "snapshot-scale", 1, "Integer upscale factor for --snapshot")

	cmd.AddCommand(newPresetsCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = opts.Width
	}
	if flags.Changed("height") {
		cfg.Window.Height = opts.Height
	}
	if flags.Changed("preset") {
		cfg.StartPreset = opts.Preset
	}
	if flags.Changed("seed") {
		seed := opts.Seed
		cfg.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	log.Printf("config: %dx%d scale=%g start=%q custom presets=%d",
		cfg.Window.Width, cfg.Window.Height, cfg.Camera.Scale, cfg.StartPreset, len(cfg.Presets))
	return cfg, nil
}

func run(cmd *cobra.Command, opts *Options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	gens, err := cfg.Generators()
	if err != nil {
		return err
	}
	start, err := cfg.StartIndex(gens)
	if err != nil {
		return err
	}

	appCfg := app.Config{
		Generators:  gens,
		StartPreset: start,
		Scale:       cfg.Camera.Scale,
		Grid:        cfg.GridConfig(),
		Debug:       opts.Debug,
	}
	newApp := func(h hal.HAL) func() error { return app.New(h, appCfg) }

	if !opts.Headless && opts.Snapshot == "" && opts.Script == "" {
		err := hal.RunWindow(hal.WindowConfig{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		}, newApp)
		return ignoreQuit(err)
	}

	hcfg := hal.HeadlessConfig{
		Enabled: true,
		Hz:      opts.Hz,
		Ticks:   opts.Ticks,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
	}
	if opts.Script != "" {
		events, err := script.Load(opts.Script)
		if err != nil {
			return err
		}
		hcfg.Events = events
		log.Printf("script: %d events from %s", len(events), opts.Script)
	}
	if hcfg.Ticks == 0 && (opts.Snapshot != "" || opts.Script != "") {
		// One tick per event plus one to draw the result.
		hcfg.Ticks = uint64(len(hcfg.Events)) + 1
	}
	if opts.Snapshot != "" {
		path, scale := opts.Snapshot, opts.SnapshotScale
		hcfg.Done = func(h hal.HAL) error {
			return writeSnapshot(path, h.Display().Framebuffer(), scale)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	err = hal.RunHeadless(ctx, newApp, hcfg)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return ignoreQuit(err)
}

func ignoreQuit(err error) error {
	if errors.Is(err, app.ErrQuit) {
		return nil
	}
	return err
}

func writeSnapshot(path string, fb hal.Framebuffer, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := render.WritePNG(f, fb, scale); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	log.Printf("snapshot: wrote %s", path)
	return nil
}
