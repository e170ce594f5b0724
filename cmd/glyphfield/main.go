package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phanxgames/glyphfield"
	"github.com/spf13/cobra"
)

var (
	configFile string
	fontFile   string
	initText   string
	effect     int
	noiseKind  string
	scriptFile string
	exitAfter  bool
	debug      bool
	showFPS    bool
	logLevel   string
	logFormat  string
)

// main registers the commands and flags and executes the root command. It
// exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "glyphfield",
		Short:         "interactive point-cloud text with field effects",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")

	f := rootCmd.Flags()
	f.StringVar(&fontFile, "font", "", "TrueType/OpenType font for the point cloud (default: Go Regular)")
	f.StringVar(&initText, "text", "", "initial text")
	f.IntVar(&effect, "effect", 0, "initial effect index")
	f.StringVar(&noiseKind, "noise", "", "noise source for the Perlin Noise effect: perlin, simplex")
	f.StringVar(&scriptFile, "script", "", "JSON input script to play back")
	f.BoolVar(&exitAfter, "exit", false, "exit once the input script has finished")
	f.BoolVar(&debug, "debug", false, "log per-frame stats")
	f.BoolVar(&showFPS, "fps", false, "show the FPS/TPS widget")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE:  printConfig,
	}

	effectsCmd := &cobra.Command{
		Use:   "effects",
		Short: "list the available effects",
		Run: func(cmd *cobra.Command, args []string) {
			for i, e := range glyphfield.Effects {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n", i, e.Name)
			}
		},
	}

	rootCmd.AddCommand(configCmd, effectsCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("glyphfield failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging installs the process-wide slog logger and hands it to the
// library.
func setupLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(logFormat) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text", "":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid --log-format %q", logFormat)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	glyphfield.SetLogger(logger)
	return nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*glyphfield.Config, error) {
	cfg, err := glyphfield.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("font") {
		cfg.Text.FontPath = fontFile
	}
	if flags.Changed("text") {
		cfg.Text.Initial = initText
	}
	if flags.Changed("effect") {
		cfg.Effects.Initial = effect
	}
	if flags.Changed("noise") {
		cfg.Effects.Noise = glyphfield.NoiseKind(noiseKind)
	}
	if flags.Changed("debug") {
		cfg.Debug.Enabled = debug
	}
	if flags.Changed("fps") {
		cfg.Window.ShowFPS = showFPS
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFont(path string) (*glyphfield.Font, error) {
	if path == "" {
		return glyphfield.DefaultFont()
	}
	return glyphfield.LoadFontFile(path)
}

func runWindow(cmd *cobra.Command, args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	font, err := loadFont(cfg.Text.FontPath)
	if err != nil {
		return err
	}
	slog.Info("font loaded", "name", font.Name(), "path", cfg.Text.FontPath)

	game, err := glyphfield.NewGame(cfg, font)
	if err != nil {
		return err
	}

	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		runner, err := glyphfield.LoadTestScript(data)
		if err != nil {
			return err
		}
		game.SetTestRunner(runner, exitAfter)
		slog.Info("input script loaded", "path", scriptFile)
	}

	return glyphfield.Run(game, cfg.Window)
}

func printConfig(cmd *cobra.Command, args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}
	cfg, err := glyphfield.LoadConfig(configFile)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
