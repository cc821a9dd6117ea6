package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/dungeon"
	"github.com/talgya/dojo-idle/internal/ui"
)

func newDungeonCmd() *cobra.Command {
	var pieces, tier, entrances int
	var seed int64

	cmd := &cobra.Command{
		Use:   "dungeon",
		Short: "Generate a cave and print its map",
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

			cfg := st.DungeonConfig(a.rng(seed))
			cfg.TargetPieceCount = a.cfg.Dungeon.TargetPieceCount
			cfg.MinEntrances = a.cfg.Dungeon.MinEntrances
			if cmd.Flags().Changed("pieces") {
				cfg.TargetPieceCount = pieces
			}
			if cmd.Flags().Changed("tier") {
				cfg.MaxToolTier = tier
			}
			if cmd.Flags().Changed("entrances") {
				cfg.MinEntrances = entrances
			}

			d := dungeon.Generate(cfg)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCave, "Cave"))
			fmt.Fprintln(out, ui.LabelValue("Pieces", fmt.Sprintf("%d of %d", len(d.Pieces), cfg.TargetPieceCount)))
			fmt.Fprintln(out, ui.LabelValue("Entrances", len(d.Entrances)))
			fmt.Fprintln(out, ui.LabelValue("Tool tier", cfg.MaxToolTier))
			fmt.Fprintln(out, ui.Panel.Render(strings.TrimRight(ui.DungeonMap(d), "\n")))
			fmt.Fprintln(out, ui.Muted.Render(ui.ContentSummary(d)))
			return nil
		},
	}

	cmd.Flags().IntVar(&pieces, "pieces", 12, "target piece count")
	cmd.Flags().IntVar(&tier, "tier", 0, "max tool tier (default: equipped mining tool)")
	cmd.Flags().IntVar(&entrances, "entrances", 2, "minimum entrances")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = config seed or random)")
	return cmd
}
