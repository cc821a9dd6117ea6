package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/engine"
	"github.com/talgya/dojo-idle/internal/ui"
)

func newSavesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "List save slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			saves, err := a.db.ListSaves()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSave, fmt.Sprintf("%d saves", len(saves))))
			for _, s := range saves {
				name := s.Name
				if name == flagSave {
					name = ui.Good.Render(name)
				}
				fmt.Fprintf(out, "  %s  %s  PL %s  %s  %s\n",
					name,
					s.Environment,
					ui.Number(s.PowerLevel),
					engine.PlayTime(s.PlayTime),
					ui.Muted.Render(s.UpdatedAt),
				)
			}
			return nil
		},
	}

	cmd.AddCommand(newSavesDeleteCmd())
	return cmd
}

func newSavesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			saves, err := a.db.ListSaves()
			if err != nil {
				return err
			}
			for _, s := range saves {
				if s.Name == args[0] {
					if err := a.db.DeleteSave(s.ID); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("deleted "+s.Name))
					return nil
				}
			}
			return fmt.Errorf("no save named %q", args[0])
		},
	}
}
