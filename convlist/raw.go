package convlist

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// Kind is the variant of a conversation as conversations.list reports it.
type Kind int

const (
	PublicChannel Kind = iota + 1
	PrivateChannel
	DirectMessage
)

func (k Kind) String() string {
	switch k {
	case PublicChannel:
		return "public_channel"
	case PrivateChannel:
		return "private_channel"
	case DirectMessage:
		return "im"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// RawConversation is one element of the channels array. Multi-person DMs
// arrive as private channels; their members are encoded in Name.
type RawConversation struct {
	Kind       Kind
	ID         string
	Created    slack.JSONTime
	IsArchived bool

	// channels
	Name string

	// direct messages
	User          string
	IsUserDeleted bool
}

// UnmarshalJSON classifies the record by its is_* flags. Private is checked
// before public because newer workspaces set is_channel on private channels.
func (r *RawConversation) UnmarshalJSON(data []byte) error {
	var ch slack.Channel
	if err := json.Unmarshal(data, &ch); err != nil {
		return err
	}

	switch {
	case ch.IsIM:
		var im slack.IM
		if err := json.Unmarshal(data, &im); err != nil {
			return err
		}
		if im.User == "" {
			return fmt.Errorf("direct message %q has no user", im.ID)
		}
		*r = RawConversation{
			Kind:          DirectMessage,
			ID:            im.ID,
			Created:       im.Created,
			IsArchived:    ch.IsArchived,
			User:          im.User,
			IsUserDeleted: im.IsUserDeleted,
		}
		return nil
	case ch.IsPrivate || ch.IsGroup || ch.IsMpIM:
		r.Kind = PrivateChannel
	case ch.IsChannel:
		r.Kind = PublicChannel
	default:
		return fmt.Errorf("conversation %q is neither a channel nor a direct message", ch.ID)
	}

	if ch.Name == "" {
		return fmt.Errorf("%s %q has no name", r.Kind, ch.ID)
	}
	r.ID = ch.ID
	r.Created = ch.Created
	r.IsArchived = ch.IsArchived
	r.Name = ch.Name
	r.User = ""
	r.IsUserDeleted = false
	return nil
}
