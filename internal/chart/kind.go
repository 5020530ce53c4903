package chart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedKind is returned for chart kinds without a builder.
var ErrUnsupportedKind = errors.New("unsupported chart kind")

// Kind selects how a table is drawn. The zero value is not a valid kind.
type Kind int

const (
	KindLine Kind = iota + 1
)

// ParseKind maps a kind name such as "line" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return KindLine, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnsupportedKind, s)
	}
}

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
