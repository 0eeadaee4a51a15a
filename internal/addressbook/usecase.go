package addressbook

import (
	"context"
)

type AddressBookUsecase interface {
	// List returns the owner's contacts with target profiles embedded
	List(ctx context.Context, owner string) ([]ContactDTO, error)

	// Create adds target to owner's address book with no channel link
	Create(ctx context.Context, owner, target string) error

	Remove(ctx context.Context, owner, target string) error

	// Update applies a partial change; fails NotFound when the owner
	// user does not exist
	Update(ctx context.Context, owner, target string, patch ContactPatch) error

	// LinkedChannel returns the channel id joining the pair, 0 if none
	LinkedChannel(ctx context.Context, owner, target string) (int64, error)

	// Link points the owner's contact row at the channel; fails
	// NotFound when the contact row does not exist
	Link(ctx context.Context, owner, target string, channelID int64) error
}
