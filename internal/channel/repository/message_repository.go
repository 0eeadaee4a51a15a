package repository

import (
	"context"
	"database/sql"
	"time"

	model "kurz/internal/channel/model"
	"kurz/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrMessageNotFound = errors.New("message not found")

func NewMessageRepository(db *bun.DB, logger *logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MessageRepository) Append(ctx context.Context, msg *model.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.Append.Insert: ")
	}
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, channelID, messageID int64) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().
		Model(msg).
		Where("id = ? AND channel_id = ?", messageID, channelID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "messageRepo.GetByID.Scan: ")
	}
	return msg, nil
}

// Latest scans newest-first by insertion id; the id ordering makes
// same-timestamp system messages come back in insertion order.
func (r *MessageRepository) Latest(ctx context.Context, channelID int64, limit int) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Relation("File").
		Where("message.channel_id = ?", channelID).
		Order("message.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.Latest.Scan: ")
	}
	return msgs, nil
}

func (r *MessageRepository) Before(ctx context.Context, channelID int64, before time.Time, limit int) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Relation("File").
		Where("message.channel_id = ?", channelID).
		Where("message.sent_at < ?", before).
		Order("message.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.Before.Scan: ")
	}
	return msgs, nil
}
