package dungeon

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Content that can spawn inside a placed piece.
type Content uint8

const (
	ContentEmpty Content = iota
	ContentMiningNode
	ContentOpponent
	ContentTreasure
	ContentToolGate
	ContentHazard
)

// NumContents is the number of content tags.
const NumContents = 6

var contentNames = [NumContents]string{"empty", "mining_node", "opponent", "treasure", "tool_gate", "hazard"}

func (c Content) String() string {
	if int(c) < NumContents {
		return contentNames[c]
	}
	return fmt.Sprintf("content(%d)", uint8(c))
}

// MarshalText encodes content by name.
func (c Content) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a content name.
func (c *Content) UnmarshalText(b []byte) error {
	for i, n := range contentNames {
		if n == string(b) {
			*c = Content(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece content %q", string(b))
}

// Connector is an opening on a piece edge.
type Connector struct {
	Dir    Direction `json:"direction"`
	Offset int       `json:"offset"` // Tile offset along the edge
}

// Piece is a catalogue template.
type Piece struct {
	Shape      string      `json:"shape"`
	Width      int         `json:"width"`  // Tiles
	Height     int         `json:"height"` // Tiles
	Connectors []Connector `json:"connectors"`
	Contents   []Content   `json:"contents"`
	ToolTier   int         `json:"tool_tier"` // 0 = no tool needed
}

// HasConnector reports whether the piece opens toward d.
func (p *Piece) HasConnector(d Direction) bool {
	for _, c := range p.Connectors {
		if c.Dir == d {
			return true
		}
	}
	return false
}

func conn(d Direction, offset int) Connector { return Connector{Dir: d, Offset: offset} }

// Registry is the built-in piece catalogue.
var Registry = []Piece{
	// Corridors
	{Shape: "straight_ns", Width: 3, Height: 5, Connectors: []Connector{conn(North, 1), conn(South, 1)},
		Contents: []Content{ContentEmpty, ContentOpponent}},
	{Shape: "straight_ew", Width: 5, Height: 3, Connectors: []Connector{conn(East, 1), conn(West, 1)},
		Contents: []Content{ContentEmpty, ContentOpponent}},
	{Shape: "i_shape", Width: 5, Height: 7, Connectors: []Connector{conn(North, 2), conn(South, 2)},
		Contents: []Content{ContentMiningNode, ContentOpponent, ContentTreasure}},

	// Bends
	{Shape: "l_ne", Width: 5, Height: 5, Connectors: []Connector{conn(North, 1), conn(East, 1)},
		Contents: []Content{ContentEmpty, ContentMiningNode}},
	{Shape: "l_nw", Width: 5, Height: 5, Connectors: []Connector{conn(North, 3), conn(West, 1)},
		Contents: []Content{ContentEmpty, ContentMiningNode}},
	{Shape: "l_se", Width: 5, Height: 5, Connectors: []Connector{conn(South, 1), conn(East, 3)},
		Contents: []Content{ContentEmpty, ContentOpponent}},
	{Shape: "l_sw", Width: 5, Height: 5, Connectors: []Connector{conn(South, 3), conn(West, 3)},
		Contents: []Content{ContentEmpty, ContentOpponent}},

	// Junctions
	{Shape: "t_north", Width: 5, Height: 5, Connectors: []Connector{conn(North, 2), conn(East, 2), conn(West, 2)},
		Contents: []Content{ContentOpponent, ContentMiningNode}},
	{Shape: "t_south", Width: 5, Height: 5, Connectors: []Connector{conn(South, 2), conn(East, 2), conn(West, 2)},
		Contents: []Content{ContentOpponent, ContentMiningNode}},
	{Shape: "t_east", Width: 5, Height: 5, Connectors: []Connector{conn(North, 2), conn(South, 2), conn(East, 2)},
		Contents: []Content{ContentOpponent, ContentTreasure}},
	{Shape: "t_west", Width: 5, Height: 5, Connectors: []Connector{conn(North, 2), conn(South, 2), conn(West, 2)},
		Contents: []Content{ContentOpponent, ContentTreasure}},
	{Shape: "h_shape", Width: 7, Height: 7, Connectors: []Connector{conn(North, 1), conn(North, 5), conn(South, 1), conn(South, 5)},
		Contents: []Content{ContentMiningNode, ContentOpponent, ContentTreasure}},
	{Shape: "c_east", Width: 5, Height: 7, Connectors: []Connector{conn(North, 4), conn(South, 4), conn(West, 3)},
		Contents: []Content{ContentMiningNode, ContentHazard}},
	{Shape: "c_west", Width: 5, Height: 7, Connectors: []Connector{conn(North, 0), conn(South, 0), conn(East, 3)},
		Contents: []Content{ContentMiningNode, ContentHazard}},
	{Shape: "cross", Width: 5, Height: 5, Connectors: []Connector{conn(North, 2), conn(South, 2), conn(East, 2), conn(West, 2)},
		Contents: []Content{ContentOpponent, ContentTreasure, ContentMiningNode}},

	// Dead ends
	{Shape: "dead_end_n", Width: 3, Height: 4, Connectors: []Connector{conn(North, 1)},
		Contents: []Content{ContentTreasure, ContentMiningNode}},
	{Shape: "dead_end_s", Width: 3, Height: 4, Connectors: []Connector{conn(South, 1)},
		Contents: []Content{ContentTreasure, ContentMiningNode}},
	{Shape: "dead_end_e", Width: 4, Height: 3, Connectors: []Connector{conn(East, 1)},
		Contents: []Content{ContentTreasure, ContentMiningNode}},
	{Shape: "dead_end_w", Width: 4, Height: 3, Connectors: []Connector{conn(West, 1)},
		Contents: []Content{ContentTreasure, ContentMiningNode}},

	// Tool-gated
	{Shape: "shaft", Width: 3, Height: 6, Connectors: []Connector{conn(North, 1), conn(South, 1)},
		Contents: []Content{ContentToolGate, ContentMiningNode}, ToolTier: 1},
	{Shape: "crystal_cavern", Width: 7, Height: 7, Connectors: []Connector{conn(North, 3), conn(South, 3), conn(East, 3), conn(West, 3)},
		Contents: []Content{ContentTreasure, ContentMiningNode, ContentHazard}, ToolTier: 3},
}

// FindCompatible returns every registry piece at or below maxTier that can
// accept a passage travelling in direction dir.
func FindCompatible(dir Direction, maxTier int) []*Piece {
	return findCompatible(Registry, dir, maxTier)
}

func findCompatible(pieces []Piece, dir Direction, maxTier int) []*Piece {
	needed := dir.Opposite()
	var out []*Piece
	for i := range pieces {
		p := &pieces[i]
		if p.ToolTier <= maxTier && p.HasConnector(needed) {
			out = append(out, p)
		}
	}
	return out
}

type compatKey struct {
	dir     Direction
	maxTier int
}

// compatCacheSize covers four directions across every tool tier.
const compatCacheSize = 64

// Catalogue is a piece set with memoised compatibility queries.
type Catalogue struct {
	pieces []Piece
	compat *lru.Cache[compatKey, []*Piece]
}

// NewCatalogue wraps pieces. An empty set falls back to Registry.
func NewCatalogue(pieces []Piece) (*Catalogue, error) {
	if len(pieces) == 0 {
		pieces = Registry
	}
	cache, err := lru.New[compatKey, []*Piece](compatCacheSize)
	if err != nil {
		return nil, fmt.Errorf("compat cache: %w", err)
	}
	return &Catalogue{pieces: pieces, compat: cache}, nil
}

// Pieces returns the templates in catalogue order.
func (c *Catalogue) Pieces() []Piece {
	return c.pieces
}

// FindCompatible is the memoised form of the package-level query. The
// returned slice is shared and must not be modified.
func (c *Catalogue) FindCompatible(dir Direction, maxTier int) []*Piece {
	key := compatKey{dir: dir, maxTier: maxTier}
	if found, ok := c.compat.Get(key); ok {
		return found
	}
	found := findCompatible(c.pieces, dir, maxTier)
	c.compat.Add(key, found)
	return found
}

// seedCandidates are pieces with three or more connectors at or below maxTier.
func (c *Catalogue) seedCandidates(maxTier int) []*Piece {
	var out []*Piece
	for i := range c.pieces {
		p := &c.pieces[i]
		if len(p.Connectors) >= 3 && p.ToolTier <= maxTier {
			out = append(out, p)
		}
	}
	return out
}
