package root

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/encounter"
	"github.com/talgya/dojo-idle/internal/environment"
	"github.com/talgya/dojo-idle/internal/ui"
)

const (
	fightStep  = 0.1 // Seconds per battle step
	fightLimit = 300 // Seconds before a battle counts as lost
)

func newFightCmd() *cobra.Command {
	var opponentID string
	var tournament bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "fight",
		Short: "Auto-battle an opponent from the current environment",
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

			opp, err := pickOpponent(a, st.Progression.Current().ID, opponentID, tournament)
			if err != nil {
				return err
			}
			if tournament {
				opp = st.TournamentOpponent(opp)
				st.Progression.SetPhase(environment.Tournament)
			}
			if combat.ExpectedLoss(opp.BasePower, st.PowerLevel.Effective()) {
				slog.Warn("opponent outclasses player", "opponent", opp.ID,
					"opponent_power", opp.BasePower, "power_level", st.PowerLevel.Effective())
			}

			enc := st.AutoBattle(opp, a.rng(seed), fightStep, fightLimit)
			levels := st.ApplyEncounterRewards(enc)
			victory := enc.Phase == encounter.Victory
			if opp.Boss && victory {
				st.Progression.RecordBossDefeated()
			}
			if tournament {
				st.RecordTournamentResult(victory)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSword, opp.Name))
			fmt.Fprintln(out, ui.LabelValue("Duration", fmt.Sprintf("%.1fs", enc.Elapsed)))
			fmt.Fprintln(out, ui.LabelValue("Damage dealt", ui.Number(enc.PlayerDamageDealt)))
			fmt.Fprintln(out, ui.LabelValue("Damage taken", ui.Number(enc.OpponentDamageDealt)))
			if victory {
				r := enc.Rewards()
				fmt.Fprintln(out, ui.Good.Render(ui.IconTrophy+" victory"))
				fmt.Fprintln(out, ui.LabelValue("Gold", ui.Gold.Render("+"+ui.Number(r.Gold))))
				fmt.Fprintln(out, ui.LabelValue("Power level", "+"+ui.Number(r.PowerLevel)))
				for _, d := range r.Loot {
					fmt.Fprintln(out, ui.LabelValue("Loot", fmt.Sprintf("%s ×%d", d.ItemID, d.Quantity)))
				}
				if levels > 0 {
					fmt.Fprintln(out, ui.LabelValue("Mastery", fmt.Sprintf("+%d %s", levels, enc.Theme)))
				}
			} else {
				fmt.Fprintln(out, ui.Bad.Render("defeat"))
				if tournament {
					fmt.Fprintln(out, ui.Muted.Render("a master reset may be due: dojo reset"))
				}
			}

			return a.save(flagSave, st)
		},
	}

	cmd.Flags().StringVar(&opponentID, "opponent", "", "opponent id (default: first in the current environment)")
	cmd.Flags().BoolVar(&tournament, "tournament", false, "fight the environment boss at tournament strength")
	cmd.Flags().Int64Var(&seed, "seed", 0, "loot seed (0 uses config or crypto)")
	return cmd
}

// pickOpponent resolves an explicit id, the environment boss for tournaments,
// or the first opponent of the environment.
func pickOpponent(a *app, envID, id string, tournament bool) (encounter.Opponent, error) {
	if id != "" {
		opp, ok := a.pack.Opponent(id)
		if !ok {
			return encounter.Opponent{}, fmt.Errorf("unknown opponent %q", id)
		}
		return opp, nil
	}
	opps := a.pack.OpponentsFor(envID)
	if len(opps) == 0 {
		return encounter.Opponent{}, fmt.Errorf("no opponents in %s", envID)
	}
	if tournament {
		for _, o := range opps {
			if o.Boss {
				return o, nil
			}
		}
	}
	return opps[0], nil
}
