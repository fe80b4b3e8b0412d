package channels

import (
	"fmt"
	"strings"
)

// Channel identifies one of the four 8-bit planes of an RGBA image.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

// NumChannels is the number of planes in every image handled by the remapper.
const NumChannels = 4

// DefaultOrder swaps red with green and blue with alpha.
const DefaultOrder = "GRAB"

var letters = [NumChannels]byte{'R', 'G', 'B', 'A'}

func (c Channel) String() string {
	if int(c) < NumChannels {
		return string(letters[c])
	}
	return fmt.Sprintf("Channel(%d)", uint8(c))
}

// ParseChannel maps a letter from {R, G, B, A} to its channel.
func ParseChannel(r rune) (Channel, bool) {
	for i, l := range letters {
		if rune(l) == r {
			return Channel(i), true
		}
	}
	return 0, false
}

// Order lists, for each destination plane, the source plane that fills it.
// Repeated channels are allowed: "RRRR" copies red into all four planes.
type Order [NumChannels]Channel

// Identity leaves every plane where it is.
var Identity = Order{Red, Green, Blue, Alpha}

// ValidationError reports a malformed channel order string.
type ValidationError struct {
	Order  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid channel order %q: %s", e.Order, e.Reason)
}

// ParseOrder validates s and converts it to an Order. Every character must be
// one of R, G, B or A, and there must be exactly four of them.
func ParseOrder(s string) (Order, error) {
	var o Order
	n := 0
	for _, r := range s {
		c, ok := ParseChannel(r)
		if !ok {
			return o, &ValidationError{Order: s, Reason: fmt.Sprintf("%q is not one of R, G, B, A", r)}
		}
		if n < NumChannels {
			o[n] = c
		}
		n++
	}
	if n != NumChannels {
		return o, &ValidationError{Order: s, Reason: fmt.Sprintf("must be exactly %d characters long, got %d", NumChannels, n)}
	}
	return o, nil
}

func (o Order) String() string {
	var b strings.Builder
	for _, c := range o {
		b.WriteString(c.String())
	}
	return b.String()
}

// IsPermutation reports whether every channel appears exactly once.
func (o Order) IsPermutation() bool {
	var seen [NumChannels]bool
	for _, c := range o {
		if int(c) >= NumChannels || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// Inverse returns the order that undoes o. It fails when o repeats a channel,
// since the dropped planes cannot be recovered.
func (o Order) Inverse() (Order, error) {
	if !o.IsPermutation() {
		return Order{}, fmt.Errorf("channel order %s is not a permutation", o)
	}
	var inv Order
	for dst, src := range o {
		inv[src] = Channel(dst)
	}
	return inv, nil
}

// Mapping describes where each destination plane comes from,
// e.g. "R <- G, G <- R, B <- A, A <- B".
func (o Order) Mapping() string {
	parts := make([]string, NumChannels)
	for dst, src := range o {
		parts[dst] = fmt.Sprintf("%s <- %s", Channel(dst), src)
	}
	return strings.Join(parts, ", ")
}
