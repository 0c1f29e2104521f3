package entity

import (
	"grid-snake/game/types"
)

// Snake is an ordered body, head first: Body[0] is the head, the last
// element is the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Point
}

// NewSnake lays out length segments horizontally with the head at head and
// the body trailing to the left, facing right.
func NewSnake(head types.Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: head.X - i, Y: head.Y}
	}
	return &Snake{
		Body:      body,
		Direction: types.Right,
	}
}

// Move prepends newHead to the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head enters on the next move.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction)
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
