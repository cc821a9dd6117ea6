package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/engine"
	"github.com/talgya/dojo-idle/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var events int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current save",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Status(st))

			if events <= 0 || len(st.Events) == 0 {
				return nil
			}
			fmt.Fprintln(out, ui.H2.Render("Recent events"))
			from := max(len(st.Events)-events, 0)
			for _, e := range st.Events[from:] {
				fmt.Fprintf(out, "  %s %s %s\n",
					ui.Muted.Render(engine.PlayTime(e.PlayTime)), ui.Key.Render(e.Category), e.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&events, "events", 5, "number of recent events to show")
	return cmd
}
