package user

import (
	"context"
)

type UserUsecase interface {
	// Signup creates a new user; email and nickname must be unique
	Signup(ctx context.Context, cmd SignupCommand) error

	// Signin verifies credentials and returns the profile on success
	Signin(ctx context.Context, email, password string) (*ProfileDTO, error)

	Profile(ctx context.Context, email string) (*ProfileDTO, error)
	Profiles(ctx context.Context, emails []string) ([]SummaryDTO, error)

	// Update re-checks the current password before applying changes
	Update(ctx context.Context, cmd UpdateCommand) (*ProfileDTO, error)

	ChannelReads(ctx context.Context, email string) ([]ChannelReadDTO, error)
	UpdateChannelRead(ctx context.Context, email string, channelID, messageID int64) error

	// SetNotification(enabled=false) mutes the channel for the user
	SetNotification(ctx context.Context, email string, channelID int64, enabled bool) error
}

// ChannelChecker is the slice of the channel store the user usecase
// needs for mute toggles.
type ChannelChecker interface {
	Exists(ctx context.Context, channelID int64) (bool, error)
}
