package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/gadgets/internal/advisor"
	"github.com/npratt/gadgets/internal/config"
	"github.com/npratt/gadgets/internal/tui"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := NewJSONLogger(os.Stderr, logLevel)
	slog.SetDefault(logger)

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	rootCmd := newRootCmd(v, logLevel)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags are bound into v for the
// command that actually runs.
func newRootCmd(v *viper.Viper, logLevel *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gadgets",
		Short: "Two small terminal widgets: a bounded counter and a tech skill advisor",
		Long: `gadgets hosts two independent example widgets.

  counter   a counter that never drops below zero and warns at a limit
  advisor   describe what you know and get learning-path suggestions

Both run full-screen in a terminal and fall back to a line-oriented mode
when input or output is not a TTY.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind all flags of the running command (including inherited ones)
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				_ = v.BindPFlag(f.Name, f)
			})
			if v.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				slog.Debug("verbose logging enabled")
			}
			return nil
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .gadgets/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Debug log file used while a full-screen widget runs")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gadgets %s\n", version)
		},
	}

	counterCmd := &cobra.Command{
		Use:   "counter",
		Short: "Run the bounded counter",
		Long: `Run the bounded counter.

Press + or up to increase and - or down to decrease. The value never goes
below zero. Once it reaches the limit a notice is shown; counting can continue.

In line mode, each input line is a command: +, - or q.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			return runWidget(cmd, v, cfg, tui.WidgetCounter, nil, logLevel)
		},
	}
	counterCmd.Flags().Int(FlagLimit, config.Default().Counter.Limit, "Value at which the limit notice appears")
	counterCmd.Flags().Bool(FlagTUI, false, "Force the full-screen UI on or off (default: auto-detect)")

	advisorCmd := &cobra.Command{
		Use:   "advisor",
		Short: "Run the interactive tech skill advisor",
		Long: `Run the interactive tech skill advisor.

Describe your current skills or interests and press enter to get
learning-path suggestions. Tab moves to the example prompts, ctrl+r clears
everything and starts again.

In line mode, every line is analyzed. Lines starting with ':' are commands
(:examples, :example N, :reset, :quit).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			return runWidget(cmd, v, cfg, tui.WidgetAdvisor, catalog, logLevel)
		},
	}
	advisorCmd.Flags().String(FlagCatalog, "", "Suggestion catalog YAML file (default: built-in)")
	advisorCmd.Flags().Bool(FlagTUI, false, "Force the full-screen UI on or off (default: auto-detect)")

	adviseCmd := &cobra.Command{
		Use:   "advise TEXT...",
		Short: "Print suggestions for a description and exit",
		Long: `Analyze a description once and print the matching suggestions.

All arguments are joined with spaces. Use "-" to read the description from
standard input.`,
		Example: `  gadgets advise "I know HTML and CSS, but not much JavaScript."
  echo "I like Android apps" | gadgets advise - --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			text, err := adviseInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runAdvise(cmd.OutOrStdout(), catalog, text, v.GetBool(FlagJSON))
		},
	}
	adviseCmd.Flags().String(FlagCatalog, "", "Suggestion catalog YAML file (default: built-in)")
	adviseCmd.Flags().Bool(FlagJSON, false, "Output as JSON")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the suggestion catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), catalog, v.GetBool(FlagJSON))
		},
	}
	catalogCmd.Flags().String(FlagCatalog, "", "Suggestion catalog YAML file (default: built-in)")
	catalogCmd.Flags().Bool(FlagJSON, false, "Output as JSON")

	// Register all commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(advisorCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(catalogCmd)

	return rootCmd
}

// loadConfig loads config files and applies explicitly set CLI flags on top.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	cfg, err := config.LoadConfig(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Apply CLI flag overrides (only if explicitly set)
	if cmd.Flags().Changed(FlagLogFile) {
		cfg.Paths.Log = v.GetString(FlagLogFile)
	}
	if cmd.Flags().Changed(FlagLimit) {
		cfg.Counter.Limit = v.GetInt(FlagLimit)
	}
	if cmd.Flags().Changed(FlagCatalog) {
		cfg.Advisor.CatalogFile = v.GetString(FlagCatalog)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(cfg *config.Config) (*advisor.Catalog, error) {
	if cfg.Advisor.CatalogFile == "" {
		return advisor.DefaultCatalog(), nil
	}
	catalog, err := advisor.LoadCatalog(cfg.Advisor.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	slog.Debug("loaded catalog", "path", cfg.Advisor.CatalogFile, "entries", catalog.Len())
	return catalog, nil
}

// runWidget runs a widget full-screen or in line mode.
// Full-screen mode moves logging to a rotating file so stderr output does not
// corrupt the display.
func runWidget(cmd *cobra.Command, v *viper.Viper, cfg *config.Config, widget tui.Widget, catalog *advisor.Catalog, logLevel *slog.LevelVar) error {
	// Explicit flag > auto-detect from TTY
	tuiEnabled := v.GetBool(FlagTUI)
	if !cmd.Flags().Changed(FlagTUI) {
		tuiEnabled = term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	}

	if tuiEnabled {
		fileLog, err := OpenFileLogger(cfg.Paths.Log, logLevel, cfg.LogRotation)
		if err != nil {
			return err
		}
		defer func() { _ = fileLog.Close() }()

		prev := slog.Default()
		slog.SetDefault(fileLog.Logger)
		defer slog.SetDefault(prev)
	}

	slog.Debug("starting widget", "widget", widget, "version", version, "tui", tuiEnabled)

	opts := []tui.Option{
		tui.WithLimit(cfg.Counter.Limit),
		tui.WithExamples(cfg.Advisor.Examples),
		tui.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
		tui.WithLineMode(!tuiEnabled),
	}
	if catalog != nil {
		opts = append(opts, tui.WithCatalog(catalog))
	}

	return tui.New(widget, opts...).Run(cmd.Context())
}
