package dungeon

import (
	"log/slog"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/dojo-idle/internal/entropy"
)

// Config holds dungeon generation parameters.
type Config struct {
	TargetPieceCount int // Soft target; generation may stop short
	MaxToolTier      int // Pieces above this tier are excluded
	MinEntrances     int
	Rng              entropy.Source // nil falls back to entropy.OrDefault
	Catalogue        *Catalogue     // nil uses Registry
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		TargetPieceCount: 12,
		MaxToolTier:      0,
		MinEntrances:     2,
	}
}

// branchingPhase is the growth fraction below which multi-connector pieces are preferred.
const branchingPhase = 0.7

// Placed is a piece instance in a generated dungeon.
type Placed struct {
	Piece    *Piece  `json:"piece"`
	Pos      Pos     `json:"pos"`
	Content  Content `json:"content"`
	Visited  bool    `json:"visited"`
	Entrance bool    `json:"entrance"`
	Richness float64 `json:"richness"` // Ore quality 0.0–1.0
}

// Dungeon is a generated layout. The caller owns it and flips Visited as the
// player explores.
type Dungeon struct {
	Pieces    []*Placed
	Entrances []*Placed
	Occupied  mapset.Set[Pos]
}

type frontierEntry struct {
	dir    Direction
	target Pos
}

// Generate grows a dungeon outward from a seed piece at the origin.
// It always succeeds; dead branches are dropped silently.
func Generate(cfg Config) *Dungeon {
	rng := entropy.OrDefault(cfg.Rng)
	cat := cfg.Catalogue
	if cat == nil {
		var err error
		if cat, err = NewCatalogue(nil); err != nil {
			slog.Error("dungeon catalogue unavailable", "error", err)
			return &Dungeon{Occupied: mapset.New[Pos]()}
		}
	}

	d := &Dungeon{Occupied: mapset.New[Pos]()}
	var frontier []frontierEntry

	// Seed piece.
	seeds := cat.seedCandidates(cfg.MaxToolTier)
	var seed *Piece
	if len(seeds) > 0 {
		seed = seeds[entropy.Intn(rng, len(seeds))]
	} else {
		seed = &cat.pieces[0]
	}
	origin := Pos{}
	d.place(seed, origin, rng)
	for _, c := range seed.Connectors {
		frontier = append(frontier, frontierEntry{dir: c.Dir, target: origin.Step(c.Dir)})
	}

	// Growth.
	for len(d.Pieces) < cfg.TargetPieceCount && len(frontier) > 0 {
		idx := entropy.Intn(rng, len(frontier))
		entry := frontier[idx]
		frontier = append(frontier[:idx], frontier[idx+1:]...)

		if d.Occupied.Has(entry.target) {
			continue
		}

		compatible := cat.FindCompatible(entry.dir, cfg.MaxToolTier)
		if len(compatible) == 0 {
			continue
		}

		candidates := compatible
		if float64(len(d.Pieces))/float64(cfg.TargetPieceCount) < branchingPhase {
			var branching []*Piece
			for _, p := range compatible {
				if len(p.Connectors) >= 2 {
					branching = append(branching, p)
				}
			}
			if len(branching) > 0 {
				candidates = branching
			}
		}

		chosen := candidates[entropy.Intn(rng, len(candidates))]
		d.place(chosen, entry.target, rng)

		back := entry.dir.Opposite()
		for _, c := range chosen.Connectors {
			if c.Dir == back {
				continue
			}
			frontier = append(frontier, frontierEntry{dir: c.Dir, target: entry.target.Step(c.Dir)})
		}
	}

	d.markEntrances(cfg.MinEntrances)
	d.assignRichness(entropy.Seed(rng))
	slog.Debug("dungeon generated", "pieces", len(d.Pieces), "entrances", len(d.Entrances), "max_tool_tier", cfg.MaxToolTier)
	return d
}

func (d *Dungeon) place(p *Piece, pos Pos, rng entropy.Source) {
	content := ContentEmpty
	if len(p.Contents) > 0 {
		content = p.Contents[entropy.Intn(rng, len(p.Contents))]
	}
	d.Pieces = append(d.Pieces, &Placed{Piece: p, Pos: pos, Content: content})
	d.Occupied.Put(pos)
}

// openSided reports whether any connector of pl faces an empty cell.
func (d *Dungeon) openSided(pl *Placed) bool {
	for _, c := range pl.Piece.Connectors {
		if !d.Occupied.Has(pl.Pos.Step(c.Dir)) {
			return true
		}
	}
	return false
}

func (d *Dungeon) markEntrances(minEntrances int) {
	for _, pl := range d.Pieces {
		if d.openSided(pl) {
			pl.Entrance = true
			d.Entrances = append(d.Entrances, pl)
		}
	}

	if len(d.Entrances) >= minEntrances {
		return
	}
	// Top up in placement order.
	for _, pl := range d.Pieces {
		if len(d.Entrances) >= minEntrances {
			break
		}
		if pl.Entrance || !d.openSided(pl) {
			continue
		}
		pl.Entrance = true
		d.Entrances = append(d.Entrances, pl)
	}
}

// assignRichness samples ore quality from fractal noise over the piece grid.
func (d *Dungeon) assignRichness(seed int64) {
	noise := opensimplex.NewNormalized(seed)
	for _, pl := range d.Pieces {
		pl.Richness = octaveNoise(noise, float64(pl.Pos.X), float64(pl.Pos.Y), 3, 0.35, 0.5)
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// ContentSummary counts placed pieces per content tag. Every tag is present.
func (d *Dungeon) ContentSummary() map[Content]int {
	counts := make(map[Content]int, NumContents)
	for c := Content(0); c < NumContents; c++ {
		counts[c] = 0
	}
	for _, pl := range d.Pieces {
		counts[pl.Content]++
	}
	return counts
}

// At returns the piece at pos, or nil.
func (d *Dungeon) At(pos Pos) *Placed {
	if !d.Occupied.Has(pos) {
		return nil
	}
	for _, pl := range d.Pieces {
		if pl.Pos == pos {
			return pl
		}
	}
	return nil
}

// Visit marks the piece at pos visited. Returns false if no piece is there
// or it was already visited.
func (d *Dungeon) Visit(pos Pos) bool {
	pl := d.At(pos)
	if pl == nil || pl.Visited {
		return false
	}
	pl.Visited = true
	return true
}

// Bounds returns the inclusive min and max grid cells.
func (d *Dungeon) Bounds() (lo, hi Pos) {
	for i, pl := range d.Pieces {
		if i == 0 {
			lo, hi = pl.Pos, pl.Pos
			continue
		}
		lo.X, lo.Y = min(lo.X, pl.Pos.X), min(lo.Y, pl.Pos.Y)
		hi.X, hi.Y = max(hi.X, pl.Pos.X), max(hi.Y, pl.Pos.Y)
	}
	return lo, hi
}
