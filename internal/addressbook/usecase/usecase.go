package usecase

import (
	"context"
	stderrors "errors"

	"kurz/internal/addressbook"
	model "kurz/internal/addressbook/model"
	"kurz/internal/addressbook/repository"
	"kurz/internal/user"
	"kurz/pkg/errors"
	"kurz/pkg/logger"
)

type AddressBookUsecase struct {
	contacts addressbook.ContactRepository
	users    user.UserRepository
	logger   *logger.Logger
}

func NewAddressBookUsecase(contacts addressbook.ContactRepository, users user.UserRepository, logger *logger.Logger) *AddressBookUsecase {
	return &AddressBookUsecase{contacts: contacts, users: users, logger: logger}
}

func (uc *AddressBookUsecase) List(ctx context.Context, owner string) ([]addressbook.ContactDTO, error) {
	if owner == "" {
		return nil, errors.InvalidArg("Email must be specified.")
	}

	list, err := uc.contacts.ListWithProfiles(ctx, owner)
	if err != nil {
		uc.logger.Error("database error listing contacts", "owner", owner, "err", err)
		return nil, errors.Internal("database error")
	}
	if list == nil {
		list = []addressbook.ContactDTO{}
	}
	return list, nil
}

func (uc *AddressBookUsecase) Create(ctx context.Context, owner, target string) error {
	if owner == "" {
		return errors.InvalidArg("Email must be specified.")
	}
	if target == "" {
		return errors.InvalidArg("Target must be specified.")
	}
	if owner == target {
		return errors.ErrSelfContact
	}

	exists, err := uc.users.EmailExists(ctx, target)
	if err != nil {
		uc.logger.Error("database error checking target user", "target", target, "err", err)
		return errors.Internal("database error")
	}
	if !exists {
		return errors.ErrUserNotFound
	}

	dup, err := uc.contacts.Exists(ctx, owner, target)
	if err != nil {
		uc.logger.Error("database error checking contact", "owner", owner, "err", err)
		return errors.Internal("database error")
	}
	if dup {
		return errors.ErrContactExists
	}

	contact := &model.Contact{
		OwnerEmail:  owner,
		TargetEmail: target,
		ChannelID:   0,
	}
	if err := uc.contacts.Create(ctx, contact); err != nil {
		uc.logger.Error("database error creating contact", "owner", owner, "target", target, "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func (uc *AddressBookUsecase) Remove(ctx context.Context, owner, target string) error {
	if owner == "" {
		return errors.InvalidArg("Email must be specified.")
	}
	if target == "" {
		return errors.InvalidArg("Target must be specified.")
	}

	if err := uc.contacts.Delete(ctx, owner, target); err != nil {
		uc.logger.Error("database error deleting contact", "owner", owner, "target", target, "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func (uc *AddressBookUsecase) Update(ctx context.Context, owner, target string, patch addressbook.ContactPatch) error {
	if owner == "" {
		return errors.InvalidArg("Email must be specified.")
	}
	if target == "" {
		return errors.InvalidArg("Target must be specified.")
	}

	exists, err := uc.users.EmailExists(ctx, owner)
	if err != nil {
		uc.logger.Error("database error checking owner user", "owner", owner, "err", err)
		return errors.Internal("database error")
	}
	if !exists {
		return errors.ErrUserNotFound
	}

	if err := uc.contacts.Update(ctx, owner, target, patch); err != nil {
		uc.logger.Error("database error updating contact", "owner", owner, "target", target, "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func (uc *AddressBookUsecase) Link(ctx context.Context, owner, target string, channelID int64) error {
	if owner == "" {
		return errors.InvalidArg("Email must be specified.")
	}
	if target == "" {
		return errors.InvalidArg("Target must be specified.")
	}

	if err := uc.contacts.SetChannelID(ctx, owner, target, channelID); err != nil {
		if stderrors.Is(err, repository.ErrContactNotFound) {
			return errors.ErrContactNotFound
		}
		uc.logger.Error("database error linking contact", "owner", owner, "target", target, "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func (uc *AddressBookUsecase) LinkedChannel(ctx context.Context, owner, target string) (int64, error) {
	if owner == "" {
		return 0, errors.InvalidArg("Email must be specified.")
	}
	if target == "" {
		return 0, errors.InvalidArg("Target must be specified.")
	}

	channelID, err := uc.contacts.GetChannelID(ctx, owner, target)
	if err != nil {
		uc.logger.Error("database error reading channel link", "owner", owner, "err", err)
		return 0, errors.Internal("database error")
	}
	return channelID, nil
}
