package domain

// Side direction of a fill.
type Side int

const (
	SideBuy Side = iota
	SideSell
)

const (
	sideStringBuy  = "buy"
	sideStringSell = "sell"
)

// ParseSide parses "buy" or "sell".
func ParseSide(s string) (Side, bool) {
	switch s {
	case sideStringBuy:
		return SideBuy, true
	case sideStringSell:
		return SideSell, true
	}
	return 0, false
}

// String returns the string representation of the side.
func (s Side) String() string {
	switch s {
	case SideBuy:
		return sideStringBuy
	case SideSell:
		return sideStringSell
	default:
		return "unknown"
	}
}
