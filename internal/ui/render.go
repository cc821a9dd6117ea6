package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talgya/dojo-idle/internal/combat"
	"github.com/talgya/dojo-idle/internal/dungeon"
	"github.com/talgya/dojo-idle/internal/game"
	"github.com/talgya/dojo-idle/internal/managers"
	"github.com/talgya/dojo-idle/internal/speed"
	"github.com/talgya/dojo-idle/internal/variables"
)

// contentGlyph is the map symbol for each content tag.
var contentGlyph = [dungeon.NumContents]byte{
	dungeon.ContentEmpty:      '.',
	dungeon.ContentMiningNode: 'M',
	dungeon.ContentOpponent:   'O',
	dungeon.ContentTreasure:   'T',
	dungeon.ContentToolGate:   'G',
	dungeon.ContentHazard:     'H',
}

// DungeonMap draws one character per grid cell. Entrances are lower-case,
// the origin piece is '@' and empty cells are blank.
func DungeonMap(d *dungeon.Dungeon) string {
	if len(d.Pieces) == 0 {
		return ""
	}
	lo, hi := d.Bounds()
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1

	grid := make([][]byte, h)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", w))
	}
	for _, pl := range d.Pieces {
		g := contentGlyph[pl.Content]
		if pl.Entrance && g >= 'A' && g <= 'Z' {
			g += 'a' - 'A'
		}
		if pl.Pos == (dungeon.Pos{}) {
			g = '@'
		}
		grid[pl.Pos.Y-lo.Y][pl.Pos.X-lo.X] = g
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// ContentSummary lists content counts in tag order.
func ContentSummary(d *dungeon.Dungeon) string {
	counts := d.ContentSummary()
	keys := make([]dungeon.Content, 0, len(counts))
	for c := range counts {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var parts []string
	for _, c := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", c, counts[c]))
	}
	return strings.Join(parts, " ")
}

// Status renders the full player panel.
func Status(st *game.State) string {
	env := st.Progression.Current()
	rec := st.Progression.CurrentProgress()

	var b strings.Builder
	fmt.Fprintln(&b, Heading(IconDojo, env.Name))
	fmt.Fprintln(&b, LabelValue("Master", env.MasterName))
	fmt.Fprintln(&b, LabelValue("Tier", env.Tier))
	fmt.Fprintln(&b, LabelValue("Phase", rec.Phase))
	fmt.Fprintln(&b, LabelValue("Tournament", fmt.Sprintf("%d wins, defeated=%t", rec.TournamentVictories, rec.TournamentDefeated)))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, H2.Render(IconSparkle+" Power Level"))
	fmt.Fprintln(&b, LabelValue("Effective", Gold.Render(Number(st.PowerLevel.Effective()))))
	fmt.Fprintln(&b, LabelValue("Current", Number(st.PowerLevel.Current)))
	fmt.Fprintln(&b, LabelValue("Permanent", Number(st.PowerLevel.Permanent)))
	fmt.Fprintln(&b, LabelValue("Resets", st.PowerLevel.TimesReset))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, H2.Render(IconCoin+" Economy"))
	fmt.Fprintln(&b, LabelValue("Gold", Gold.Render(Number(st.Gold.Amount))))
	fmt.Fprintln(&b, LabelValue("Steps", Number(st.Pedometer.Count)))
	eff := st.Speed.Effective()
	fmt.Fprintln(&b, LabelValue("Speed", fmt.Sprintf("%s (%s)", Number(eff), speedStatus(eff, env.Tier))))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, H2.Render(IconSword+" Combat"))
	fmt.Fprintln(&b, LabelValue("Theme", st.ActiveTheme))
	for _, th := range combat.Order {
		m := st.Mastery[th.Index()]
		lock := ""
		if !st.Mastery.Unlocked(th) {
			lock = Muted.Render(" locked")
		}
		fmt.Fprintf(&b, "- %s lvl %d (%s xp)%s\n", th, m.Level, Number(m.XP), lock)
	}
	fmt.Fprintln(&b, LabelValue("Cross-theme bonus", Ratio(st.Mastery.CrossThemeBonus())))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, H2.Render("Variables"))
	for _, k := range variables.AllKinds {
		fmt.Fprintf(&b, "- %s: %s\n", k, Number(st.Variables.Get(k)))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, H2.Render("Managers"))
	for _, t := range managers.AllTypes {
		n := st.Managers.TaskManagers[t]
		if n == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s ×%d at %s\n", t, n, Ratio(st.Managers.Efficiency(t)))
	}
	fmt.Fprintln(&b, LabelValue("Prestige", st.Managers.PrestigeLevel))

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func speedStatus(current float64, tier int) string {
	switch speed.StatusForTier(current, tier) {
	case speed.BelowMinimum:
		return Bad.Render("below minimum")
	case speed.Advantaged:
		return Good.Render("advantaged")
	default:
		return "normal"
	}
}
