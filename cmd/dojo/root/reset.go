package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/ui"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Master reset: trade working power level for the next environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := a.loadState(flagSave)
			if err != nil {
				return err
			}

			res := st.MasterReset()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconReset, "Master reset"))
			fmt.Fprintln(out, ui.LabelValue("Power level lost", ui.Number(res.PowerLevelLost)))
			if res.Advanced {
				fmt.Fprintln(out, ui.LabelValue("Now training at", ui.Good.Render(res.Environment.Name)))
				fmt.Fprintln(out, ui.LabelValue("Master", res.Environment.MasterName))
				fmt.Fprintln(out, ui.LabelValue("Theme", res.Environment.Theme))
			} else {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" no further environment; staying at "+st.Progression.Current().Name))
			}
			if st.Progression.HasCompletedThemeCycle() {
				fmt.Fprintln(out, ui.Muted.Render("every combat theme has been mastered once"))
			}

			return a.save(flagSave, st)
		},
	}
}
