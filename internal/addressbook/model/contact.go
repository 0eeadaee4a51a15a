package model

import (
	"time"
)

// Contact is a directed address-book entry: owner added target. At
// most one row per (owner, target); unique index in migration.
type Contact struct {
	ID int64 `bun:",pk,autoincrement"`

	OwnerEmail  string `bun:",notnull"`
	TargetEmail string `bun:",notnull"`

	// ChannelID links the pair to an established channel; 0 = none yet
	ChannelID int64 `bun:",notnull,default:0"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
