package channel

import (
	"context"
	"time"

	model "kurz/internal/channel/model"
)

type ChannelRepository interface {
	Create(ctx context.Context, ch *model.Channel) error
	// Delete exists for rollback compensation when address-book
	// linking fails right after creation
	Delete(ctx context.Context, channelID int64) error

	Exists(ctx context.Context, channelID int64) (bool, error)
	// GetRaw returns the undecorated document, for membership checks
	// where the user join is unnecessary
	GetRaw(ctx context.Context, channelID int64) (*model.Channel, error)
	Get(ctx context.Context, channelID int64) (*ChannelView, error)
	// ListForUser returns decorated channels the user participates in,
	// most recently active first
	ListForUser(ctx context.Context, email string) ([]ChannelView, error)

	// UpdateLastMessage refreshes the cached summary + updatedAt
	UpdateLastMessage(ctx context.Context, channelID int64, last LastMessage) error

	// AddParticipant appends the invitee, flips multichat and applies
	// name/image in one conditional update; returns false when the
	// invitee is already a participant
	AddParticipant(ctx context.Context, channelID int64, add ParticipantAdd) (bool, error)
	// RemoveParticipant pulls the member (optionally renaming in the
	// same update); returns false when the member was not present
	RemoveParticipant(ctx context.Context, channelID int64, email string, newName *string) (bool, error)

	// SetName also marks the name as manually chosen
	SetName(ctx context.Context, channelID int64, name string) error
	SetImage(ctx context.Context, channelID int64, image string) error
}

type MessageRepository interface {
	// Append inserts the message; the generated id records insertion
	// order and fills msg.ID
	Append(ctx context.Context, msg *model.Message) error

	GetByID(ctx context.Context, channelID, messageID int64) (*model.Message, error)

	// Latest returns up to limit newest messages, newest first
	Latest(ctx context.Context, channelID int64, limit int) ([]model.Message, error)
	// Before returns up to limit messages sent strictly before the
	// given instant, newest first
	Before(ctx context.Context, channelID int64, before time.Time, limit int) ([]model.Message, error)
}

type FileRepository interface {
	Save(ctx context.Context, f *model.File) error
	Get(ctx context.Context, channelID, fileID int64) (*model.File, error)
	IncrementDownloaded(ctx context.Context, fileID int64) error
}
