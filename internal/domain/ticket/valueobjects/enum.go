// Package valueobjects holds the closed vocabularies of a ticket.
package valueobjects

import (
	"fmt"
	"slices"
	"strings"
)

// parseEnum accepts s only when it is exactly one of allowed.
func parseEnum[E ~string](kind, s string, allowed []E) (E, error) {
	if slices.Contains(allowed, E(s)) {
		return E(s), nil
	}
	return "", fmt.Errorf("invalid %s %q: expected one of %s", kind, s, strings.Join(strs(allowed), ", "))
}

func strs[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
