// Package policy parses quality-policy strings and selects one variant
// from an ordered collection.
package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/famomatic/twitchlink/internal/variant"
)

// ErrStreamOffline indicates an empty variant collection.
var ErrStreamOffline = errors.New("stream is offline")

// UnavailableError reports a requested quality label that is not
// present in the variant collection.
type UnavailableError struct {
	Label string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("quality %q is not available", e.Label)
}

// Kind enumerates the selection policies.
type Kind int

const (
	// Best selects the highest-ranked variant.
	Best Kind = iota
	// Lowest selects the variant with the minimum numeric rank.
	Lowest
	// Custom selects the variant whose label equals Policy.Label.
	Custom
)

// Policy is a parsed quality-selection policy.
type Policy struct {
	Kind  Kind
	Label string // normalized custom label, e.g. "720p"
}

// Parse maps a user-supplied quality string to a Policy. Input is
// case-insensitive: "best" and "highest" (or empty) mean Best, "worst"
// and "lowest" mean Lowest, anything else is a Custom label with a
// trailing "p" appended when absent.
func Parse(s string) Policy {
	in := strings.ToLower(strings.TrimSpace(s))
	switch in {
	case "", "best", "highest":
		return Policy{Kind: Best}
	case "worst", "lowest":
		return Policy{Kind: Lowest}
	}
	if !strings.HasSuffix(in, "p") {
		in += "p"
	}
	return Policy{Kind: Custom, Label: in}
}

// Select applies p to a best-first ordered variant list as produced by
// variant.Order.
func Select(ordered []variant.Variant, p Policy) (variant.Variant, error) {
	if len(ordered) == 0 {
		return variant.Variant{}, ErrStreamOffline
	}
	switch p.Kind {
	case Lowest:
		return ordered[len(ordered)-1], nil
	case Custom:
		for _, v := range ordered {
			if v.Label() == p.Label {
				return v, nil
			}
		}
		return variant.Variant{}, &UnavailableError{Label: p.Label}
	default:
		return ordered[0], nil
	}
}
