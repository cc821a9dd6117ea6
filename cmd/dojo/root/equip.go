package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/game"
	"github.com/talgya/dojo-idle/internal/speed"
	"github.com/talgya/dojo-idle/internal/ui"
)

// withSave loads the save slot, runs fn, and saves when fn succeeds.
func withSave(fn func(a *app, st *game.State) error) error {
	a, cleanup, err := openApp()
	if err != nil {
		return err
	}
	defer cleanup()

	st, err := a.loadState(flagSave)
	if err != nil {
		return err
	}
	if err := fn(a, st); err != nil {
		return err
	}
	return a.save(flagSave, st)
}

func newEquipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equip",
		Short: "Equip tools and gadgets from the content pack",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "tool ID",
			Short: "Put a tool in its activity slot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSave(func(a *app, st *game.State) error {
					tool, ok := a.pack.Tool(args[0])
					if !ok {
						return fmt.Errorf("unknown tool %q", args[0])
					}
					out := cmd.OutOrStdout()
					if prev := st.EquipTool(tool); prev != nil {
						fmt.Fprintln(out, ui.Muted.Render("unequipped "+prev.Name))
					}
					fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("equipped %s (%s, %s tier)", tool.Name, tool.Activity, tool.Tier)))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "gadget ID",
			Short: "Put a gadget in a free slot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSave(func(a *app, st *game.State) error {
					g, ok := a.pack.Gadget(args[0])
					if !ok {
						return fmt.Errorf("unknown gadget %q", args[0])
					}
					if !st.EquipGadget(g) {
						return fmt.Errorf("every gadget slot is taken (%d/%d)", len(st.Equipment.Gadgets), st.Equipment.MaxGadgets)
					}
					fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("equipped "+g.Name))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove-gadget INDEX",
			Short: "Free a gadget slot (0-based)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("gadget index: %w", err)
				}
				return withSave(func(a *app, st *game.State) error {
					g := st.UnequipGadget(index)
					if g == nil {
						return fmt.Errorf("no gadget in slot %d", index)
					}
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("removed "+g.Name))
					return nil
				})
			},
		},
	)
	return cmd
}

func newTileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tile NAME",
		Short: "Buy a speed tile (dirt_path, cobblestone, paved_road, speed_rail, teleport_pad) and stand on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tile, ok := speed.ParseTile(args[0])
			if !ok {
				return fmt.Errorf("unknown tile %q", args[0])
			}
			return withSave(func(a *app, st *game.State) error {
				if !st.BuyTile(tile) {
					return fmt.Errorf("%s costs %s gold, you have %s",
						tile, ui.Number(speed.Tiles[tile].GoldCost), ui.Number(st.Gold.Amount))
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Good.Render("placed "+tile.String()))
				fmt.Fprintln(out, ui.LabelValue("Speed", ui.Number(st.Speed.Effective())+" u/s"))
				return nil
			})
		},
	}
}
