package model

import (
	"time"
)

type Channel struct {
	ID int64 `bun:",pk,autoincrement"`

	// Creator/Target are the two original 1:1 parties. Target is kept
	// even after the channel grows into a group.
	Creator string `bun:",notnull"`
	Target  string `bun:",notnull"`

	// Participant emails; mutated only through atomic array updates
	Participants []string `bun:",array,notnull"`

	// false = exactly the original pair, true = group
	Multichat bool `bun:",notnull,default:false"`

	Name string `bun:",notnull"`

	// Empty, an uploaded image name, or the literal sentinel "group"
	Image string `bun:",notnull,default:''"`

	// Once a user renames the channel manually, automatic name
	// derivation on invite/leave stops.
	NameUpdated bool `bun:",notnull,default:false"`

	// Cached summary of the most recent message
	LastMessageID       int64     `bun:",nullzero"`
	LastMessageEmail    string    `bun:",nullzero"`
	LastMessageNickname string    `bun:",nullzero"`
	LastMessageImage    string    `bun:",nullzero"`
	LastMessageBody     string    `bun:",nullzero"`
	LastMessageAt       time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
