package root

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/engine"
)

// autoHireEvery is how often, in ticks, the VP gets to hire.
const autoHireEvery = 60

func newRunCmd() *cobra.Command {
	var moving bool
	var speedMult float64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the live game loop with autosave until interrupted",
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

			eng := engine.NewEngine()
			eng.Interval = a.cfg.TickInterval
			eng.Speed = speedMult
			eng.AutosaveEvery = a.cfg.AutosaveEveryTicks

			eng.OnTick = func(tick uint64, elapsed float64) {
				st.Tick(elapsed, moving)
				if tick%autoHireEvery == 0 {
					if t, ok := st.AutoHire(); ok {
						slog.Info("vp hired task manager", "type", t.String(), "gold", st.Gold.Amount)
					}
				}
			}
			eng.OnAutosave = func(tick uint64) {
				if err := a.save(flagSave, st); err != nil {
					slog.Error("autosave failed", "tick", tick, "error", err)
					return
				}
				slog.Debug("autosaved", "tick", tick, "play_time", engine.PlayTime(st.PlayTime))
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("game loop running",
				"save", flagSave,
				"environment", st.Progression.Current().Name,
				"play_time", engine.PlayTime(st.PlayTime),
			)
			eng.Run(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&moving, "moving", false, "player walks continuously, filling the pedometer")
	cmd.Flags().Float64Var(&speedMult, "speed", 1.0, "game seconds per real second")
	return cmd
}
