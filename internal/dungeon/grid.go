// Package dungeon assembles cave maps by stitching catalogue pieces together
// on a square piece grid, matching connectors as it grows outward.
package dungeon

import "fmt"

// Direction a connector faces.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [...]string{"north", "south", "east", "west"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// MarshalText encodes a direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	for i, n := range directionNames {
		if n == string(b) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", string(b))
}

var opposite = [...]Direction{North: South, South: North, East: West, West: East}

// Opposite returns the facing direction.
func (d Direction) Opposite() Direction {
	return opposite[d]
}

// Pos is a cell on the piece grid. North is -Y.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// offsets per Direction.
var offsets = [...]Pos{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

// Offset returns the unit step for d.
func (d Direction) Offset() Pos {
	return offsets[d]
}

// Step returns the neighbouring cell in direction d.
func (p Pos) Step(d Direction) Pos {
	o := offsets[d]
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
