package convlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Marker is the one-symbol type tag of a normalized conversation.
type Marker string

const (
	MarkerPrivate Marker = "!"
	MarkerPublic  Marker = "#"
	MarkerGroupDM Marker = "&"
	MarkerDirect  Marker = "@"
)

const (
	groupDMPrefix    = "mpdm-"
	groupDMSeparator = "--"
)

// Conversation is the normalized record. Names is never empty.
type Conversation struct {
	ID         string   `json:"id"`
	Marker     Marker   `json:"type"`
	Names      []string `json:"names"`
	IsArchived bool     `json:"is_archived"`
	IsDeleted  bool     `json:"is_deleted"`
}

// Label is the marker-prefixed name list, e.g. "&amy, &bob".
func (c Conversation) Label() string {
	m := string(c.Marker)
	return m + strings.Join(c.Names, ", "+m)
}

// DecodeGroupDMName splits an "mpdm-a--b--c-1" channel name into its
// members. ok is false when name does not carry the multi-person prefix.
func DecodeGroupDMName(name string) (members []string, ok bool) {
	if !strings.HasPrefix(name, groupDMPrefix) {
		return nil, false
	}

	rest := name[len(groupDMPrefix):]
	// trailing "-N" disambiguation suffix
	if i := strings.LastIndex(rest, "-"); i >= 0 {
		rest = rest[:i]
	}

	for _, m := range strings.Split(rest, groupDMSeparator) {
		if m != "" {
			members = append(members, m)
		}
	}
	return members, true
}

// LookupPolicy decides what a failed user lookup does to the listing.
type LookupPolicy int

const (
	// LookupAbort fails the whole normalization.
	LookupAbort LookupPolicy = iota
	// LookupPlaceholder logs the failure and names the DM by its user id.
	LookupPlaceholder
)

// ParseLookupPolicy accepts "abort" (or "") and "placeholder".
func ParseLookupPolicy(s string) (LookupPolicy, error) {
	switch strings.ToLower(s) {
	case "", "abort":
		return LookupAbort, nil
	case "placeholder":
		return LookupPlaceholder, nil
	default:
		return LookupAbort, fmt.Errorf("unknown lookup policy %q (want abort or placeholder)", s)
	}
}

func (p LookupPolicy) String() string {
	if p == LookupPlaceholder {
		return "placeholder"
	}
	return "abort"
}

// Normalizer turns raw records into Conversations, resolving DM user names.
type Normalizer struct {
	Resolver UserNameResolver
	Logger   *slog.Logger

	// Concurrency bounds parallel user lookups; <= 1 looks users up one at
	// a time in record order.
	Concurrency int

	OnLookupError LookupPolicy
}

// Normalize keeps the input order. With LookupAbort, any lookup failure
// returns no conversations at all.
func (n *Normalizer) Normalize(ctx context.Context, raws []RawConversation) ([]Conversation, error) {
	out := make([]Conversation, len(raws))

	var dms []int
	for i, r := range raws {
		if r.Kind == DirectMessage {
			dms = append(dms, i)
			continue
		}
		c, err := normalizeChannel(r)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	if len(dms) > 0 && n.Resolver == nil {
		return nil, errors.New("direct messages present but no user name resolver configured")
	}

	if err := n.resolveDirect(ctx, raws, dms, out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeChannel(r RawConversation) (Conversation, error) {
	c := Conversation{
		ID:         r.ID,
		Names:      []string{r.Name},
		IsArchived: r.IsArchived,
	}

	switch r.Kind {
	case PublicChannel:
		c.Marker = MarkerPublic
	case PrivateChannel:
		c.Marker = MarkerPrivate
		if members, ok := DecodeGroupDMName(r.Name); ok {
			c.Marker = MarkerGroupDM
			if len(members) > 0 {
				c.Names = members
			}
		}
	default:
		return Conversation{}, fmt.Errorf("conversation %q: unexpected kind %s", r.ID, r.Kind)
	}
	return c, nil
}

func (n *Normalizer) resolveDirect(ctx context.Context, raws []RawConversation, dms []int, out []Conversation) error {
	if n.Concurrency <= 1 {
		for _, i := range dms {
			c, err := n.direct(ctx, raws[i])
			if err != nil {
				return err
			}
			out[i] = c
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n.Concurrency)
	for _, i := range dms {
		i := i
		g.Go(func() error {
			c, err := n.direct(ctx, raws[i])
			if err != nil {
				return err
			}
			out[i] = c
			return nil
		})
	}
	return g.Wait()
}

func (n *Normalizer) direct(ctx context.Context, r RawConversation) (Conversation, error) {
	name, err := n.Resolver.UserName(ctx, r.User)
	if err != nil {
		if n.OnLookupError != LookupPlaceholder || ctx.Err() != nil {
			return Conversation{}, fmt.Errorf("direct message %s: lookup user %s: %w", r.ID, r.User, err)
		}
		n.logger().WarnContext(ctx, "user lookup failed, using id as name", "conversation", r.ID, "user", r.User, "err", err)
		name = r.User
	}

	return Conversation{
		ID:         r.ID,
		Marker:     MarkerDirect,
		Names:      []string{name},
		IsArchived: r.IsArchived,
		IsDeleted:  r.IsUserDeleted,
	}, nil
}

func (n *Normalizer) logger() *slog.Logger {
	if n.Logger == nil {
		return discardLogger()
	}
	return n.Logger
}
