package repository

import (
	"context"
	"database/sql"
	"time"

	"kurz/internal/user"
	models "kurz/internal/user/model"
	"kurz/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrUserNotFound = errors.New("user not found")

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) error {
	_, err := r.db.NewInsert().Model(u).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateUser.Insert: ")
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u := new(models.User)
	err := r.db.NewSelect().Model(u).Where("email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByEmail.Scan: ")
	}
	return u, nil
}

func (r *UserRepository) GetUsersByEmails(ctx context.Context, emails []string) ([]models.User, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	var users []models.User
	err := r.db.NewSelect().
		Model(&users).
		Where("email IN (?)", bun.In(emails)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetUsersByEmails.Scan: ")
	}
	return users, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.db.NewSelect().Model((*models.User)(nil)).Where("email = ?", email).Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.EmailExists.Count: ")
	}
	return count > 0, nil
}

func (r *UserRepository) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	count, err := r.db.NewSelect().Model((*models.User)(nil)).Where("nickname = ?", nickname).Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.NicknameExists.Count: ")
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, email string, patch user.UserPatch) error {
	q := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("updated_at = ?", time.Now()).
		Where("email = ?", email)

	if patch.Password != nil {
		q = q.Set("password = ?", *patch.Password)
	}
	if patch.Nickname != nil {
		q = q.Set("nickname = ?", *patch.Nickname)
	}
	if patch.Image != nil {
		q = q.Set("image = ?", *patch.Image)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUser.Update: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetChannelReads(ctx context.Context, email string) ([]models.ChannelRead, error) {
	var reads []models.ChannelRead
	err := r.db.NewSelect().Model(&reads).Where("user_email = ?", email).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetChannelReads.Scan: ")
	}
	return reads, nil
}

func (r *UserRepository) UpsertChannelRead(ctx context.Context, email string, channelID, messageID int64) error {
	read := &models.ChannelRead{
		UserEmail:     email,
		ChannelID:     channelID,
		ReadMessageID: messageID,
	}

	_, err := r.db.NewInsert().
		Model(read).
		On("CONFLICT (user_email, channel_id) DO UPDATE").
		Set("read_message_id = EXCLUDED.read_message_id").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpsertChannelRead.Exec: ")
	}
	return nil
}

func (r *UserRepository) GetMutedChannels(ctx context.Context, email string) ([]int64, error) {
	var ids []int64
	err := r.db.NewSelect().
		Model((*models.ChannelMute)(nil)).
		Column("channel_id").
		Where("user_email = ?", email).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetMutedChannels.Scan: ")
	}
	return ids, nil
}

func (r *UserRepository) SetChannelMuted(ctx context.Context, email string, channelID int64, muted bool) error {
	if muted {
		mute := &models.ChannelMute{UserEmail: email, ChannelID: channelID}
		_, err := r.db.NewInsert().
			Model(mute).
			On("CONFLICT (user_email, channel_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "userRepo.SetChannelMuted.Insert: ")
		}
		return nil
	}

	_, err := r.db.NewDelete().
		Model((*models.ChannelMute)(nil)).
		Where("user_email = ? AND channel_id = ?", email, channelID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.SetChannelMuted.Delete: ")
	}
	return nil
}
