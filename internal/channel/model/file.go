package model

import (
	"time"
)

type File struct {
	ID int64 `bun:",pk,autoincrement"`

	ChannelID int64  `bun:",notnull"`
	Uploader  string `bun:",notnull"`

	// Name is the stored (renamed) file on disk, OriginalName what the
	// uploader called it.
	Name         string `bun:",notnull"`
	OriginalName string `bun:",notnull"`

	Mime string `bun:",notnull"`
	Size int64  `bun:",notnull"`

	Downloaded int64 `bun:",notnull,default:0"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
