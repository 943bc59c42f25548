package core

import "math"

// Position is a 2D canvas coordinate. Layout data belongs to whatever
// renders the graph; engines never read it.
type Position struct {
	X float64
	Y float64
}

// CircleLayout places ids evenly on a circle, first id at twelve o'clock,
// proceeding clockwise. The classic default for small graphs: every
// vertex visible, no overlaps, stable across runs because the input
// order is the vertex insertion order.
func CircleLayout(ids []string, cx, cy, radius float64) map[string]Position {
	out := make(map[string]Position, len(ids))
	n := float64(len(ids))
	for i, id := range ids {
		angle := 2*math.Pi*float64(i)/n - math.Pi/2
		out[id] = Position{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return out
}
