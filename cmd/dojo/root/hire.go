package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/game"
	"github.com/talgya/dojo-idle/internal/managers"
	"github.com/talgya/dojo-idle/internal/ui"
)

func newHireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hire",
		Short: "Buy managers that train while you are away",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "task TYPE",
			Short: "Hire a task manager (mining_foreman, course_instructor, meditation_guide, running_coach)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, ok := managers.ParseType(args[0])
				if !ok {
					return fmt.Errorf("unknown manager type %q", args[0])
				}
				return hire(cmd, t.String(), func(st *game.State) bool { return st.HireTaskManager(t) })
			},
		},
		&cobra.Command{
			Use:   "department CATEGORY",
			Short: "Hire the physical or mental department manager",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, ok := managers.ParseCategory(args[0])
				if !ok {
					return fmt.Errorf("unknown department %q", args[0])
				}
				return hire(cmd, c.String()+" department manager", func(st *game.State) bool { return st.HireDepartment(c) })
			},
		},
		&cobra.Command{
			Use:   "vp",
			Short: "Hire the VP of training (enables auto-hire)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return hire(cmd, "VP of training", (*game.State).HireVP)
			},
		},
		&cobra.Command{
			Use:   "ceo",
			Short: "Hire the CEO (needs a completed theme cycle)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return hire(cmd, "CEO", (*game.State).HireCEO)
			},
		},
	)
	return cmd
}

// hire runs buy against the save slot and reports the result.
func hire(cmd *cobra.Command, what string, buy func(*game.State) bool) error {
	return withSave(func(a *app, st *game.State) error {
		if !buy(st) {
			return fmt.Errorf("cannot hire %s: locked or not enough gold (%s)", what, ui.Number(st.Gold.Amount))
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Good.Render("hired "+what))
		fmt.Fprintln(out, ui.LabelValue("Gold left", ui.Gold.Render(ui.Number(st.Gold.Amount))))
		return nil
	})
}

func newPrestigeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "prestige",
		Short: "Restructure: wipe every manager for a permanent efficiency multiplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSave(func(a *app, st *game.State) error {
				if !st.Managers.CEO && !force {
					return fmt.Errorf("prestige needs the CEO (use --force to restructure anyway)")
				}
				res := st.Prestige()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Corporate restructuring"))
				fmt.Fprintln(out, ui.LabelValue("Prestige level", res.Level))
				fmt.Fprintln(out, ui.LabelValue("Efficiency multiplier", fmt.Sprintf("×%.1f", res.Multiplier)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "prestige without owning the CEO")
	return cmd
}
