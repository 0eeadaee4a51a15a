package models

// ChannelRead marks the last message a user has read in a channel.
// One row per (user, channel); unique index in migration.
type ChannelRead struct {
	ID            int64  `bun:",pk,autoincrement"`
	UserEmail     string `bun:",notnull"`
	ChannelID     int64  `bun:",notnull"`
	ReadMessageID int64  `bun:",notnull"`
}

// ChannelMute records a channel the user muted notifications for.
// Presence of a row means "do not notify".
type ChannelMute struct {
	ID        int64  `bun:",pk,autoincrement"`
	UserEmail string `bun:",notnull"`
	ChannelID int64  `bun:",notnull"`
}
