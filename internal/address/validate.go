package address

import (
	"context"
)

// SuggestFunc runs an autosuggest request for input capped at nResults and
// returns the suggested addresses in rank order.
type SuggestFunc func(ctx context.Context, input string, nResults int) ([]string, error)

// IsValid3wa reports whether text is a real three word address. Text that is
// not IsPossible3wa is rejected without calling suggest. Otherwise suggest is
// called exactly once and text is valid only if it comes back as the single,
// exactly equal suggestion. Errors from suggest are returned as they are.
func IsValid3wa(ctx context.Context, text string, suggest SuggestFunc) (bool, error) {
	if !IsPossible3wa(text) {
		return false, nil
	}

	words, err := suggest(ctx, text, 1)
	if err != nil {
		return false, err
	}

	return len(words) == 1 && words[0] == text, nil
}
