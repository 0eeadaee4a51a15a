package model

import (
	"time"
)

type MessageType int

const (
	MessageNormal MessageType = 1
	MessageSystem MessageType = 2
	// MessageMemberNotice is wire-only: invite/leave broadcasts carry
	// it while the stored row stays MessageSystem.
	MessageMemberNotice MessageType = 3
	MessageFile         MessageType = 4
)

type Message struct {
	// Auto-incrementing ID doubles as the insertion-order tie-break
	// for pagination when two rows share a sent_at.
	ID int64 `bun:",pk,autoincrement"`

	ChannelID int64 `bun:",notnull"`

	Email string `bun:",notnull"`

	// Sender nickname/image snapshotted at send time; messages stay
	// immutable when the user later renames.
	Nickname string `bun:",notnull"`
	Image    string `bun:",nullzero"`

	Body string `bun:",notnull"`

	Type MessageType `bun:",notnull,default:1"`

	SentAt time.Time `bun:",notnull"`

	FileID int64 `bun:",nullzero"`
	File   *File `bun:"rel:belongs-to,join:file_id=id"`
}
