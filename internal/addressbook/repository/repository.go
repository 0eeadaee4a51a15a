package repository

import (
	"context"
	"database/sql"

	"kurz/internal/addressbook"
	model "kurz/internal/addressbook/model"
	"kurz/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ContactRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrContactNotFound = errors.New("contact not found")

func NewContactRepository(db *bun.DB, logger *logger.Logger) *ContactRepository {
	return &ContactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ContactRepository) ListWithProfiles(ctx context.Context, owner string) ([]addressbook.ContactDTO, error) {
	var list []addressbook.ContactDTO

	err := r.db.NewSelect().
		Model((*model.Contact)(nil)).
		ColumnExpr("u.email AS email").
		ColumnExpr("u.nickname AS nickname").
		ColumnExpr("u.image AS image").
		Join("JOIN users AS u ON u.email = contact.target_email").
		Where("contact.owner_email = ?", owner).
		Scan(ctx, &list)
	if err != nil {
		return nil, errors.Wrap(err, "contactRepo.ListWithProfiles.Scan: ")
	}
	return list, nil
}

func (r *ContactRepository) GetChannelID(ctx context.Context, owner, target string) (int64, error) {
	var channelID int64
	err := r.db.NewSelect().
		Model((*model.Contact)(nil)).
		Column("channel_id").
		Where("owner_email = ? AND target_email = ?", owner, target).
		Scan(ctx, &channelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "contactRepo.GetChannelID.Scan: ")
	}
	return channelID, nil
}

func (r *ContactRepository) SetChannelID(ctx context.Context, owner, target string, channelID int64) error {
	res, err := r.db.NewUpdate().
		Model((*model.Contact)(nil)).
		Set("channel_id = ?", channelID).
		Where("owner_email = ? AND target_email = ?", owner, target).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "contactRepo.SetChannelID.Update: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) Exists(ctx context.Context, owner, target string) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*model.Contact)(nil)).
		Where("owner_email = ? AND target_email = ?", owner, target).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "contactRepo.Exists.Count: ")
	}
	return count > 0, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	_, err := r.db.NewInsert().Model(contact).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "contactRepo.Create.Insert: ")
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, owner, target string) error {
	_, err := r.db.NewDelete().
		Model((*model.Contact)(nil)).
		Where("owner_email = ? AND target_email = ?", owner, target).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "contactRepo.Delete.Exec: ")
	}
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, owner, target string, patch addressbook.ContactPatch) error {
	if patch.ChannelID == nil {
		return nil
	}

	q := r.db.NewUpdate().
		Model((*model.Contact)(nil)).
		Where("owner_email = ? AND target_email = ?", owner, target)

	if patch.ChannelID != nil {
		q = q.Set("channel_id = ?", *patch.ChannelID)
	}

	if _, err := q.Exec(ctx); err != nil {
		return errors.Wrap(err, "contactRepo.Update.Exec: ")
	}
	return nil
}
