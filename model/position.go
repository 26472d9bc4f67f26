package model

import "fmt"

// Position identifies a coordinate of the world. It is comparable and used as a map key.
type Position struct {
	X, Y int
}

func (p Position) Right() Position       { return Position{p.X + 1, p.Y} }
func (p Position) Left() Position        { return Position{p.X - 1, p.Y} }
func (p Position) Top() Position         { return Position{p.X, p.Y + 1} }
func (p Position) Bottom() Position      { return Position{p.X, p.Y - 1} }
func (p Position) RightTop() Position    { return Position{p.X + 1, p.Y + 1} }
func (p Position) RightBottom() Position { return Position{p.X + 1, p.Y - 1} }
func (p Position) LeftTop() Position     { return Position{p.X - 1, p.Y + 1} }
func (p Position) LeftBottom() Position  { return Position{p.X - 1, p.Y - 1} }

// Neighbours returns the 8 adjacent positions. No bounds checking is done.
func (p Position) Neighbours() [8]Position {
	return [8]Position{
		p.Right(),
		p.RightTop(),
		p.RightBottom(),
		p.Left(),
		p.LeftTop(),
		p.LeftBottom(),
		p.Top(),
		p.Bottom(),
	}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// less orders positions by X then Y
func (p Position) less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}
