package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/nova/internal/config"
	"github.com/san-kum/nova/internal/logging"
	"github.com/san-kum/nova/internal/player"
	"github.com/san-kum/nova/internal/responder"
	"github.com/san-kum/nova/internal/site"
	"github.com/san-kum/nova/internal/storage"
	"github.com/san-kum/nova/internal/transcript"
	"github.com/san-kum/nova/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	verbose    bool
	// demo
	speed  float64
	record bool
	plain  bool
	// serve
	addr string
)

// main registers the commands and runs the landing page when no subcommand
// is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "nova",
		Short:         "the Nova landing page in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPage,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nova", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	demoCmd := &cobra.Command{
		Use:   "demo [script]",
		Short: "play a transcript to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDemo,
	}
	demoCmd.Flags().Float64Var(&speed, "speed", 1.0, "playback speed multiplier")
	demoCmd.Flags().BoolVar(&record, "record", false, "record the playback timing")
	demoCmd.Flags().BoolVar(&plain, "plain", false, "disable colors")

	scriptsCmd := &cobra.Command{
		Use:   "scripts",
		Short: "list built-in scripts",
		RunE:  listScripts,
	}

	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "manage transcript scripts",
	}
	scriptCmd.AddCommand(&cobra.Command{
		Use:   "export [name] [file]",
		Short: "write a built-in script as yaml",
		Args:  cobra.ExactArgs(2),
		RunE:  exportScript,
	})

	timelineCmd := &cobra.Command{
		Use:   "timeline [script]",
		Short: "plot when each line is appended",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotTimeline,
	}

	serveCmd := &cobra.Command{
		Use:   "serve [profile]",
		Short: "run an example responder",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default: the profile's port)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded playbacks",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot scheduled and actual gaps of a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recording as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list page presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(demoCmd, scriptsCmd, scriptCmd, timelineCmd, serveCmd,
		listCmd, plotCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, file, preset, env and finally explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if preset != "" && !config.ApplyPreset(cfg, preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if !ui.HasTheme(cfg.Theme) {
		return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, ui.ThemeNames())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveScript picks a script by argument, then script_file, then script.
// An argument naming an existing yaml file is loaded from disk.
func resolveScript(cfg *config.Config, args []string) (*transcript.Script, error) {
	if len(args) > 0 {
		name := args[0]
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".yaml" || ext == ".yml" {
			return transcript.Load(name)
		}
		return transcript.Builtin(name)
	}
	if cfg.ScriptFile != "" {
		return transcript.Load(cfg.ScriptFile)
	}
	return transcript.Builtin(cfg.Script)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.ForTUI(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	script, err := resolveScript(cfg, args)
	if err != nil {
		return err
	}
	styles := ui.NewStyles(ui.GetTheme(cfg.Theme))

	log.Info("starting page", zap.String("script", script.Name), zap.String("theme", cfg.Theme))
	return site.Run(site.Options{
		Styles:            styles,
		Script:            script.Render(styles.Line),
		TerminalThreshold: cfg.Terminal.Threshold,
		CounterThreshold:  cfg.Counters.Threshold,
		CounterDuration:   ms(cfg.Counters.DurationMs),
		CounterFrame:      ms(cfg.Counters.FrameMs),
		NavbarOffset:      cfg.Navbar.SolidOffset,
		CompileDelay:      ms(cfg.Playground.CompileMs),
		CopyFeedback:      ms(cfg.Playground.CopyMs),
		Log:               log,
	})
}

func runDemo(cmd *cobra.Command, args []string) error {
	if speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", speed)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	script, err := resolveScript(cfg, args)
	if err != nil {
		return err
	}

	var styler transcript.Styler = ui.NewStyles(ui.GetTheme(cfg.Theme)).Line
	if plain {
		styler = transcript.PlainStyler
	}
	scaled := script.Scaled(1 / speed)
	if err := scaled.Validate(); err != nil {
		return fmt.Errorf("script %s at speed %v: %w", script.Name, speed, err)
	}
	seq := scaled.Render(styler)

	region := player.NewWriterRegion(os.Stdout)
	opts := []player.Option{player.WithLogger(log)}
	var rec *storage.Recorder
	if record {
		rec = storage.NewRecorder(time.Now())
		opts = append(opts, player.WithOnAppend(rec.Observe))
	}

	p, err := player.New(seq, region, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	playErr := p.Play(ctx)
	if err := region.Err(); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	if playErr != nil && !errors.Is(playErr, context.Canceled) {
		return playErr
	}

	if rec == nil {
		return nil
	}
	if playErr != nil {
		log.Warn("playback interrupted, recording partial run", zap.Int("lines", p.Cursor()))
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(script.Name, speed, rec.Appends())
	if err != nil {
		return fmt.Errorf("save recording: %w", err)
	}
	fmt.Fprintf(os.Stderr, "recorded: %s\n", runID)
	return nil
}

func listScripts(cmd *cobra.Command, args []string) error {
	for _, name := range transcript.ListBuiltin() {
		s, _ := transcript.Builtin(name)
		fmt.Printf("  %-10s %-40s %d lines, %v\n",
			name, s.Description, len(s.Lines), s.Render(nil).Total())
	}
	return nil
}

func exportScript(cmd *cobra.Command, args []string) error {
	s, err := transcript.Builtin(args[0])
	if err != nil {
		return err
	}
	if err := transcript.Save(args[1], s); err != nil {
		return err
	}
	fmt.Printf("wrote %s to %s\n", s.Name, args[1])
	return nil
}

func plotTimeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	script, err := resolveScript(cfg, args)
	if err != nil {
		return err
	}

	seq := script.Render(nil)
	offsets := seq.Schedule()
	data := make([]float64, len(offsets))
	for i, d := range offsets {
		data[i] = float64(d) / float64(time.Millisecond)
	}

	fmt.Printf("script: %s\n", script.Name)
	fmt.Printf("lines: %d\n", len(seq))
	fmt.Printf("total: %v\n\n", seq.Total())
	if len(data) < 2 {
		return nil
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("append offset (ms) by line"),
	)
	fmt.Println(graph)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Serve.Profile = args[0]
	}
	if cmd.Flags().Changed("addr") {
		cfg.Serve.Addr = addr
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	profile, err := responder.GetProfile(cfg.Serve.Profile)
	if err != nil {
		return err
	}
	srv, err := responder.New(profile, cfg.Serve.Addr, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%s responder on %s\n", profile.Runtime, srv.Addr())
	return srv.Run(ctx)
}
