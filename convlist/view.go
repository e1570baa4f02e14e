package convlist

import (
	"slices"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Filter keeps conversations with at least one name containing substr.
// Matching is case-sensitive. An empty substr returns convs as is.
func Filter(convs []Conversation, substr string) []Conversation {
	if substr == "" {
		return convs
	}
	return filterNames(convs, func(name string) bool {
		return strings.Contains(name, substr)
	})
}

// FilterGlob keeps conversations with at least one name matching pattern.
func FilterGlob(convs []Conversation, pattern glob.Glob) []Conversation {
	if pattern == nil {
		return convs
	}
	return filterNames(convs, pattern.Match)
}

func filterNames(convs []Conversation, match func(string) bool) []Conversation {
	var kept []Conversation
	for _, c := range convs {
		for _, name := range c.Names {
			if match(name) {
				kept = append(kept, c)
				break
			}
		}
	}
	return kept
}

// SortNames sorts the names inside every conversation, in place.
func SortNames(convs []Conversation) {
	for i := range convs {
		sort.Strings(convs[i].Names)
	}
}

// Compare orders by marker, then by name list.
func Compare(a, b Conversation) int {
	if c := strings.Compare(string(a.Marker), string(b.Marker)); c != 0 {
		return c
	}
	return slices.Compare(a.Names, b.Names)
}

// Sort stable-sorts convs by Compare. Call SortNames first so multi-person
// DMs compare by their alphabetically first member.
func Sort(convs []Conversation) {
	sort.SliceStable(convs, func(i, j int) bool {
		return Compare(convs[i], convs[j]) < 0
	})
}
