package reel

// Vec2 is a 2D vector used for positions, offsets, and sizes. It exists so
// point-valued targets can be tweened as a single scene via [LerpVec2]
// rather than one scene per axis.
type Vec2 struct {
	X, Y float64
}
