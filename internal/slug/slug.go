// Package slug derives URL-safe identifiers from event titles and resolves
// them to globally unique values against the store.
package slug

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Pattern is the format every produced slug satisfies.
var Pattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// MaxAttempts bounds the uniqueness-resolution loop. Exceeding it signals a
// pathological title or a systemic store problem and is a hard failure.
const MaxAttempts = 100

// ErrExhausted is returned when no unique slug variant was found within
// MaxAttempts.
var ErrExhausted = errors.New("slug: no unique candidate found")

// ExistsFunc reports whether a slug candidate is already taken by any record
// other than excludeID. excludeID is empty on creation.
type ExistsFunc func(ctx context.Context, candidate, excludeID string) (bool, error)

// Make converts a title into its base slug: lowercase, runs of characters
// outside [a-z0-9] become a single hyphen, leading and trailing hyphens are
// trimmed. It is pure and deterministic; identical titles always produce
// identical base slugs. An entirely non-alphanumeric title yields "event".
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasDash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			if !lastWasDash {
				b.WriteRune('-')
				lastWasDash = true
			}
		}
	}

	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "event"
	}
	return s
}

// Resolve finds the first available variant of base: base itself, then
// base-1, base-2, and so on, querying exists for each candidate. The record
// identified by excludeID is ignored in the collision check so updates do not
// collide with themselves.
//
// The existence check and the eventual write are not atomic, so the store's
// unique constraint remains the final authority; a duplicate rejection at
// write time is an expected race for the caller to retry.
func Resolve(ctx context.Context, base, excludeID string, exists ExistsFunc) (string, error) {
	candidate := base
	for counter := 1; counter <= MaxAttempts; counter++ {
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(counter)
	}
	return "", ErrExhausted
}
