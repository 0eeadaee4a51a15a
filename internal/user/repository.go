package user

import (
	"context"

	models "kurz/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByEmails(ctx context.Context, emails []string) ([]models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	NicknameExists(ctx context.Context, nickname string) (bool, error)
	UpdateUser(ctx context.Context, email string, patch UserPatch) error

	GetChannelReads(ctx context.Context, email string) ([]models.ChannelRead, error)
	// Upsert: one read marker per (user, channel)
	UpsertChannelRead(ctx context.Context, email string, channelID, messageID int64) error

	GetMutedChannels(ctx context.Context, email string) ([]int64, error)
	SetChannelMuted(ctx context.Context, email string, channelID int64, muted bool) error
}
