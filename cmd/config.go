package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config shows or updates the settings",
		Long: `config prints the current settings. Any flag given is written
back to the config file first.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	configCmd.Flags().String("mode", "", "calculator.mode (exclusive or autofill)")
	configCmd.Flags().String("rounding", "", "calculator.rounding (half_even or half_away)")
	configCmd.Flags().Bool("history", true, "history.enabled")
	configCmd.Flags().Int("history-limit", 0, "history.limit")
	configCmd.Flags().Bool("chart", true, "display.show_chart")
	configCmd.Flags().String("debug-log", "", "display.debug_log")
	return configCmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("mode") {
		cfg.Calculator.Mode, _ = flags.GetString("mode")
		changed = true
	}
	if flags.Changed("rounding") {
		cfg.Calculator.Rounding, _ = flags.GetString("rounding")
		changed = true
	}
	if flags.Changed("history") {
		enabled, _ := flags.GetBool("history")
		cfg.History.Enabled = &enabled
		changed = true
	}
	if flags.Changed("history-limit") {
		cfg.History.Limit, _ = flags.GetInt("history-limit")
		changed = true
	}
	if flags.Changed("chart") {
		show, _ := flags.GetBool("chart")
		cfg.Display.ShowChart = &show
		changed = true
	}
	if flags.Changed("debug-log") {
		cfg.Display.DebugLog, _ = flags.GetString("debug-log")
		changed = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", configPath(cmd), err)
	}

	w := cmd.OutOrStdout()
	if changed {
		if err := saveConfig(cmd, cfg); err != nil {
			return err
		}
		fmt.Fprintf(w, "Saved %s\n", configPath(cmd))
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
