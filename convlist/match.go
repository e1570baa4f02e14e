package convlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrNoMatch is returned by Find when nothing resembles the query.
var ErrNoMatch = errors.New("no conversation matches")

// AmbiguousError lists the best candidates when several match equally well.
type AmbiguousError struct {
	Query      string
	Candidates []Conversation
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "ambiguous match for %q, candidates:", e.Query)
	for _, c := range e.Candidates {
		_, _ = fmt.Fprintf(&b, "\n  %s: %s", c.ID, c.Label())
	}
	return b.String()
}

type labelSource []Conversation

func (s labelSource) String(i int) string { return strings.ToLower(s[i].Label()) }
func (s labelSource) Len() int            { return len(s) }

// Find picks one conversation for query: an exact (case-insensitive) name
// wins, then a lone substring hit, then the best fuzzy score.
func Find(convs []Conversation, query string) (Conversation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Conversation{}, errors.New("empty query")
	}

	for _, c := range convs {
		for _, name := range c.Names {
			if strings.EqualFold(name, query) {
				return c, nil
			}
		}
	}

	if hits := Filter(convs, query); len(hits) == 1 {
		return hits[0], nil
	}

	results := fuzzy.FindFrom(strings.ToLower(query), labelSource(convs))
	if len(results) == 0 {
		return Conversation{}, fmt.Errorf("%w %q", ErrNoMatch, query)
	}
	if len(results) > 1 && results[0].Score == results[1].Score {
		const maxCandidates = 5
		if len(results) > maxCandidates {
			results = results[:maxCandidates]
		}
		amb := &AmbiguousError{Query: query}
		for _, r := range results {
			amb.Candidates = append(amb.Candidates, convs[r.Index])
		}
		return Conversation{}, amb
	}
	return convs[results[0].Index], nil
}
