package buildkit

import (
	"fmt"
	"strings"
)

// Placeholders rendered for unconfigured values.
const (
	PlaceholderNone   = "none"
	PlaceholderNotSet = "not set"
)

// JoinOrNone joins items with sep, rendering PlaceholderNone for an empty
// sequence so "configured with nothing" never renders as "".
func JoinOrNone(items []string, sep string) string {
	return JoinOr(items, sep, PlaceholderNone)
}

// JoinOr joins items with sep, rendering marker when items is empty.
func JoinOr(items []string, sep, marker string) string {
	if len(items) == 0 {
		return marker
	}
	return strings.Join(items, sep)
}

// ValueOr formats the value of o, or returns placeholder when unset.
func ValueOr[T any](o Optional[T], placeholder string) string {
	v, ok := o.Get()
	if !ok {
		return placeholder
	}
	return fmt.Sprint(v)
}

// CloneStrings returns a copy of s that shares no backing array with it.
func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
