package cmd

import (
	"fmt"

	"pacecalc/internal/pace"
	"pacecalc/internal/tui"

	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "calc prints the tables for a pace or speed",
		Long: `calc converts a single pace or speed and prints both tables.
--pace takes minutes and seconds as digits (630 = 6:30 /km), --speed
takes km/h. In autofill mode --pace wins when both are given.`,
		Args: cobra.NoArgs,
		RunE: runCalc,
	}

	calcCmd.Flags().StringP("pace", "p", "", "pace as digits, e.g. 630 for 6:30 /km")
	calcCmd.Flags().StringP("speed", "s", "", "speed in km/h, e.g. 12.5")
	calcCmd.Flags().String("mode", "", "override calculator.mode (exclusive or autofill)")
	calcCmd.Flags().String("rounding", "", "override calculator.rounding (half_even or half_away)")
	return calcCmd
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		cfg.Calculator.Mode = mode
	}
	if rounding, _ := cmd.Flags().GetString("rounding"); rounding != "" {
		cfg.Calculator.Rounding = rounding
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	calcService, closeDB, err := openService(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	paceText, _ := cmd.Flags().GetString("pace")
	speedText, _ := cmd.Flags().GetString("speed")
	edited := pace.FieldPace
	if paceText == "" {
		edited = pace.FieldSpeed
	}

	out, err := calcService.Submit(pace.Input{PaceText: paceText, SpeedText: speedText, Edited: edited})
	if err != nil {
		return fmt.Errorf("%s: %w", pace.ErrorTitle, err)
	}
	if out.HistoryErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", out.HistoryErr)
	}

	units := tui.NewUnits(calcService.Session().Calculator().Rounding)
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, units.Summary(out.Result))
	fmt.Fprintln(w, tui.RenderResultTables(out.Result))
	return nil
}
