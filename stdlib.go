// This file mirrors types and helpers from math/big.

package bigfix

import "strconv"

// RoundingMode determines how a Fixed value is rounded when bits are dropped.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	HalfUp RoundingMode = iota // round to nearest, ties away from zero
	Down                       // truncate toward zero
)

func (m RoundingMode) String() string {
	switch m {
	case HalfUp:
		return "HalfUp"
	case Down:
		return "Down"
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseRoundingMode returns the RoundingMode named s, as returned by
// RoundingMode.String.
func ParseRoundingMode(s string) (RoundingMode, bool) {
	switch s {
	case "HalfUp", "halfup", "half-up":
		return HalfUp, true
	case "Down", "down":
		return Down, true
	}
	return 0, false
}

// scan errors
var (
	errNoDigits     = Error.New("number has no digits")
	errInvalidDigit = Error.New("invalid digit")
)
