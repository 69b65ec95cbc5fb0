package entity

// Direction names an edge of a rectangle. Groups also use it as their orientation:
// Left/Right mean horizontal, Top/Bottom mean vertical.
type Direction int

const (
	DirectionNone   Direction = -1
	DirectionLeft   Direction = 0
	DirectionTop    Direction = 1
	DirectionRight  Direction = 2
	DirectionBottom Direction = 3
)

// Directions lists the four real directions in index order.
var Directions = [4]Direction{DirectionLeft, DirectionTop, DirectionRight, DirectionBottom}

// Opposite maps Left<->Right and Top<->Bottom. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionTop:
		return DirectionBottom
	case DirectionBottom:
		return DirectionTop
	default:
		return DirectionNone
	}
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// IsVertical reports whether d is Top or Bottom.
func (d Direction) IsVertical() bool {
	return d == DirectionTop || d == DirectionBottom
}

// Valid reports whether d is one of the four edges.
func (d Direction) Valid() bool {
	return d >= DirectionLeft && d <= DirectionBottom
}

// SameAxis reports whether both directions lie on the same axis.
// None is never on an axis.
func (d Direction) SameAxis(o Direction) bool {
	if !d.Valid() || !o.Valid() {
		return false
	}
	return d.IsHorizontal() == o.IsHorizontal()
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionTop:
		return "top"
	case DirectionRight:
		return "right"
	case DirectionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ParseDirection is the inverse of String. Unknown names yield DirectionNone.
func ParseDirection(s string) Direction {
	switch s {
	case "left":
		return DirectionLeft
	case "top":
		return DirectionTop
	case "right":
		return DirectionRight
	case "bottom":
		return DirectionBottom
	default:
		return DirectionNone
	}
}
