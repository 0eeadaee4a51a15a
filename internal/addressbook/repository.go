package addressbook

import (
	"context"

	model "kurz/internal/addressbook/model"
)

type ContactRepository interface {
	// ListWithProfiles joins each contact's target against the user
	// table, mirroring the decorated address-book read view
	ListWithProfiles(ctx context.Context, owner string) ([]ContactDTO, error)

	// GetChannelID returns the linked channel id; 0 = no channel yet
	GetChannelID(ctx context.Context, owner, target string) (int64, error)

	// SetChannelID fails with ErrContactNotFound when no contact row
	// exists for (owner, target) — callers rely on this to detect a
	// missing address-book entry
	SetChannelID(ctx context.Context, owner, target string, channelID int64) error

	Exists(ctx context.Context, owner, target string) (bool, error)
	Create(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, owner, target string) error
	Update(ctx context.Context, owner, target string, patch ContactPatch) error
}
