package cmd

import (
	"errors"
	"fmt"
	"log"

	"pacecalc/internal/config"
	"pacecalc/internal/service"
	"pacecalc/internal/store"
	"pacecalc/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pacecalc",
		Short: "pacecalc converts running pace and speed",
		Long: `pacecalc converts a running pace (min/km) or speed (km/h) into
the time needed for common race distances and the distance covered in
common durations. Without a subcommand it starts the interactive calculator.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.pacecalc/config.json)")
	rootCmd.PersistentFlags().String("db", "", "history database (default ~/.pacecalc/history.db)")

	rootCmd.AddCommand(newCalcCmd(), newHistoryCmd(), newConfigCmd())
	return rootCmd
}

// loadConfig reads and validates the config named by --config
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath(cmd), err)
	}
	return cfg, nil
}

// readConfig reads the config named by --config, or ~/.pacecalc/config.json.
// A missing file is replaced by an example one and the defaults are used.
func readConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(path)
	}
	if errors.Is(err, config.ErrNoConfig) {
		if path == "" {
			err = config.CreateExample()
		} else {
			err = config.CreateExampleFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("creating example config: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "No config file found. Wrote defaults to %s\n", configPath(cmd))
		defaults := config.DefaultConfig()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// saveConfig writes cfg back to where readConfig found it
func saveConfig(cmd *cobra.Command, cfg *config.Config) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.SaveFile(path, cfg)
	}
	return config.Save(cfg)
}

// configPath names the config file for messages
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "config.json"
	}
	return path
}

// openService builds the calculator service. The returned close func is never nil.
func openService(cmd *cobra.Command, cfg *config.Config) (*service.CalculatorService, func(), error) {
	calc := cfg.NewCalculator()
	if !cfg.HistoryEnabled() {
		return service.NewCalculatorService(calc, nil, cfg.History.Limit), func() {}, nil
	}

	dbPath, _ := cmd.Flags().GetString("db")
	var db *store.Store
	var err error
	if dbPath == "" {
		db, err = store.Open()
	} else {
		db, err = store.OpenPath(dbPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("closing database: %v", err)
		}
	}
	return service.NewCalculatorService(calc, db, cfg.History.Limit), closeDB, nil
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Display.DebugLog != "" {
		f, err := tea.LogToFile(cfg.Display.DebugLog, "pacecalc")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		log.Printf("mode=%s rounding=%s history=%t", cfg.Calculator.Mode, cfg.Calculator.Rounding, cfg.HistoryEnabled())
	}

	calcService, closeDB, err := openService(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	app := tui.NewApp(calcService, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
