package cmd

import (
	"fmt"

	"pacecalc/internal/tui"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "history lists recent calculations",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	historyCmd.Flags().Bool("clear", false, "delete all recorded calculations")
	historyCmd.Flags().IntP("limit", "n", 0, "number of rows to show (default history.limit)")
	return historyCmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if !cfg.HistoryEnabled() {
		fmt.Fprintln(w, "History is disabled (history.enabled = false).")
		return nil
	}

	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		cfg.History.Limit = limit
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	calcService, closeDB, err := openService(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	if clearAll, _ := cmd.Flags().GetBool("clear"); clearAll {
		if err := calcService.ClearHistory(); err != nil {
			return err
		}
		fmt.Fprintln(w, "History cleared.")
		return nil
	}

	entries, err := calcService.History()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No calculations yet.")
		return nil
	}
	total, err := calcService.HistoryCount()
	if err != nil {
		return err
	}

	rows := make([][2]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, [2]string{e.Input, fmt.Sprintf("%s /km  %s km/h  %s", e.Pace, e.Speed, e.Ago)})
	}
	fmt.Fprintln(w, tui.RenderTable([2]string{"输入", "配速 · 时速 · 时间"}, rows, [2]int{14, 40}))
	fmt.Fprintf(w, "Showing %d of %d calculations.\n", len(entries), total)
	return nil
}
