package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/engine"
	"github.com/talgya/dojo-idle/internal/ui"
)

func newSimulateCmd() *cobra.Command {
	var hours, step float64
	var moving, spend bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Fast-forward offline progress and save",
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours <= 0 || step <= 0 {
				return fmt.Errorf("--hours and --step must be positive")
			}
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := a.loadState(flagSave)
			if err != nil {
				return err
			}

			eng := engine.NewEngine()
			eng.OnTick = func(tick uint64, elapsed float64) {
				st.Tick(elapsed, moving)
				st.AutoHire()
			}
			steps := eng.FastForward(hours*3600, step)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Simulated "+engine.PlayTime(hours*3600)))
			fmt.Fprintln(out, ui.LabelValue("Ticks", ui.Number(float64(steps))))
			fmt.Fprintln(out, ui.LabelValue("Steps walked", ui.Number(st.Pedometer.Count)))

			if spend {
				res := st.SpendPedometer()
				fmt.Fprintln(out, ui.LabelValue("Pedometer spent", fmt.Sprintf("%s steps → +%s speed, +%s PL",
					ui.Number(res.StepsSpent), ui.Percent(res.SpeedBonusApplied), ui.Number(res.PowerLevelGranted))))
			}

			if err := a.save(flagSave, st); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Status(st))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 8, "hours of game time to simulate")
	cmd.Flags().Float64Var(&step, "step", 60, "seconds per simulated tick")
	cmd.Flags().BoolVar(&moving, "moving", false, "player walks the whole time")
	cmd.Flags().BoolVar(&spend, "spend", false, "spend the pedometer afterwards")
	return cmd
}
