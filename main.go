package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wirecube/internal/config"
	"wirecube/internal/frame"
	"wirecube/internal/record"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wirecube",
		Short: "Rotating wireframe cube",
		Long: `Renders a rotating wireframe cube with hand written 3D to 2D projection,
either in an OpenGL window or headlessly to a GIF or PNG file.`,
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wirecube/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.Int("width", 800, "surface width")
	flags.Int("height", 600, "surface height")
	flags.String("rotation-x", config.RotationXDuplicateZ, "x rotation: duplicate-z or x-axis")
	flags.Bool("antialias", false, "anti-aliased edges (render only)")
	bindFlags(flags, map[string]string{
		"width":      "width",
		"height":     "height",
		"rotation_x": "rotation-x",
		"antialias":  "antialias",
	})

	rootCmd.AddCommand(
		runCmd(),
		renderCmd(),
	)

	cobra.OnInitialize(initConfig)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// bindFlags maps config keys to flag names
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			log.Fatalln("failed to bind flag:", err)
		}
	}
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal(err)
		}

		viper.AddConfigPath(filepath.Join(home, ".wirecube"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func loadConfig() (config.Config, frame.Options, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, frame.Options{}, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return config.Config{}, frame.Options{}, err
	}
	if verbose {
		log.Printf("surface %dx%d, step %v, scale %v, rotation_x %s", cfg.Width, cfg.Height, cfg.AngleStep, cfg.Scale, cfg.RotationX)
	}
	return cfg, opts, nil
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and spin the cube",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWindow(ctx, cfg, opts)
		},
	}
	cmd.Flags().Bool("vsync", true, "sync buffer swaps to the display refresh")
	bindFlags(cmd.Flags(), map[string]string{"vsync": "vsync"})
	return cmd
}

func renderCmd() *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames headlessly to a GIF or PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateRender(); err != nil {
				return err
			}
			if format == "" {
				format = record.FormatFromPath(out)
			}
			format = strings.ToLower(format)
			if format != record.FormatGIF && format != record.FormatPNG {
				return errorsmod.Wrapf(record.ErrUnknownFormat, "%q", format)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err = record.Record(ctx, f, record.Options{
				Frame:     opts,
				Frames:    cfg.Frames,
				Delay:     cfg.FrameDelay,
				Antialias: cfg.Antialias,
				Format:    format,
			})
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			if verbose {
				log.Printf("wrote %d frames to %s", cfg.Frames, out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "cube.gif", "output file")
	cmd.Flags().StringVar(&format, "format", "", "gif or png (default from the file extension)")
	cmd.Flags().Int("frames", 360, "number of frames to render")
	cmd.Flags().Int("frame-delay", 2, "delay between GIF frames in 1/100 s")
	bindFlags(cmd.Flags(), map[string]string{
		"frames":      "frames",
		"frame_delay": "frame-delay",
	})
	return cmd
}
