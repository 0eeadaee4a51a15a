package repository

import (
	"context"
	"database/sql"
	"time"

	"kurz/internal/channel"
	model "kurz/internal/channel/model"
	userModels "kurz/internal/user/model"
	"kurz/pkg/logger"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/uptrace/bun"
)

type ChannelRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrChannelNotFound = errors.New("channel not found")

func NewChannelRepository(db *bun.DB, logger *logger.Logger) *ChannelRepository {
	return &ChannelRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChannelRepository) Create(ctx context.Context, ch *model.Channel) error {
	_, err := r.db.NewInsert().Model(ch).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.Create.Insert: ")
	}
	return nil
}

func (r *ChannelRepository) Delete(ctx context.Context, channelID int64) error {
	_, err := r.db.NewDelete().
		Model((*model.Channel)(nil)).
		Where("id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.Delete.Exec: ")
	}
	return nil
}

func (r *ChannelRepository) Exists(ctx context.Context, channelID int64) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*model.Channel)(nil)).
		Where("id = ?", channelID).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "channelRepo.Exists.Count: ")
	}
	return count > 0, nil
}

func (r *ChannelRepository) GetRaw(ctx context.Context, channelID int64) (*model.Channel, error) {
	ch := new(model.Channel)
	err := r.db.NewSelect().Model(ch).Where("id = ?", channelID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChannelNotFound
		}
		return nil, errors.Wrap(err, "channelRepo.GetRaw.Scan: ")
	}
	return ch, nil
}

func (r *ChannelRepository) Get(ctx context.Context, channelID int64) (*channel.ChannelView, error) {
	ch, err := r.GetRaw(ctx, channelID)
	if err != nil {
		return nil, err
	}

	views, err := r.decorate(ctx, []model.Channel{*ch})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (r *ChannelRepository) ListForUser(ctx context.Context, email string) ([]channel.ChannelView, error) {
	var chans []model.Channel
	err := r.db.NewSelect().
		Model(&chans).
		Where("? = ANY(participants)", email).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "channelRepo.ListForUser.Scan: ")
	}
	if len(chans) == 0 {
		return []channel.ChannelView{}, nil
	}
	return r.decorate(ctx, chans)
}

// decorate resolves creator/target emails into embedded user
// summaries with a single bulk user fetch.
func (r *ChannelRepository) decorate(ctx context.Context, chans []model.Channel) ([]channel.ChannelView, error) {
	emails := make([]string, 0, len(chans)*2)
	for _, ch := range chans {
		emails = append(emails, ch.Creator, ch.Target)
	}
	emails = lo.Uniq(emails)

	var users []userModels.User
	err := r.db.NewSelect().
		Model(&users).
		Where("email IN (?)", bun.In(emails)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "channelRepo.decorate.Scan: ")
	}

	byEmail := make(map[string]userModels.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}

	views := make([]channel.ChannelView, 0, len(chans))
	for _, ch := range chans {
		views = append(views, channel.ChannelView{
			ID:           ch.ID,
			Creator:      summary(byEmail, ch.Creator),
			Target:       summary(byEmail, ch.Target),
			Multichat:    ch.Multichat,
			Name:         ch.Name,
			Image:        ch.Image,
			NameUpdated:  ch.NameUpdated,
			Participants: ch.Participants,
			LastMessage:  lastMessage(ch),
			CreatedAt:    ch.CreatedAt,
			UpdatedAt:    ch.UpdatedAt,
		})
	}
	return views, nil
}

func summary(byEmail map[string]userModels.User, email string) channel.UserSummary {
	u, ok := byEmail[email]
	if !ok {
		// user rows are never hard-deleted, but keep the view usable
		return channel.UserSummary{Email: email}
	}
	return channel.UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		Nickname: u.Nickname,
		Image:    u.Image,
	}
}

func lastMessage(ch model.Channel) *channel.LastMessage {
	if ch.LastMessageID == 0 {
		return nil
	}
	return &channel.LastMessage{
		MessageID: ch.LastMessageID,
		Email:     ch.LastMessageEmail,
		Nickname:  ch.LastMessageNickname,
		Image:     ch.LastMessageImage,
		Body:      ch.LastMessageBody,
		SentAt:    ch.LastMessageAt,
	}
}

func (r *ChannelRepository) UpdateLastMessage(ctx context.Context, channelID int64, last channel.LastMessage) error {
	_, err := r.db.NewUpdate().
		Model((*model.Channel)(nil)).
		Set("last_message_id = ?", last.MessageID).
		Set("last_message_email = ?", last.Email).
		Set("last_message_nickname = ?", last.Nickname).
		Set("last_message_image = ?", last.Image).
		Set("last_message_body = ?", last.Body).
		Set("last_message_at = ?", last.SentAt).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.UpdateLastMessage.Exec: ")
	}
	return nil
}

// AddParticipant is a single conditional update so that concurrent
// invites against the same channel cannot duplicate a member.
func (r *ChannelRepository) AddParticipant(ctx context.Context, channelID int64, add channel.ParticipantAdd) (bool, error) {
	q := r.db.NewUpdate().
		Model((*model.Channel)(nil)).
		Set("participants = array_append(participants, ?)", add.Invitee).
		Set("multichat = TRUE").
		Set("name = ?", add.Name).
		Set("updated_at = ?", time.Now())

	if add.SetGroupImage {
		q = q.Set("image = CASE WHEN image = '' THEN 'group' ELSE image END")
	}

	res, err := q.
		Where("id = ?", channelID).
		Where("NOT (? = ANY(participants))", add.Invitee).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "channelRepo.AddParticipant.Exec: ")
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *ChannelRepository) RemoveParticipant(ctx context.Context, channelID int64, email string, newName *string) (bool, error) {
	q := r.db.NewUpdate().
		Model((*model.Channel)(nil)).
		Set("participants = array_remove(participants, ?)", email).
		Set("updated_at = ?", time.Now())

	if newName != nil {
		q = q.Set("name = ?", *newName)
	}

	res, err := q.
		Where("id = ?", channelID).
		Where("? = ANY(participants)", email).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "channelRepo.RemoveParticipant.Exec: ")
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *ChannelRepository) SetName(ctx context.Context, channelID int64, name string) error {
	res, err := r.db.NewUpdate().
		Model((*model.Channel)(nil)).
		Set("name = ?", name).
		Set("name_updated = TRUE").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.SetName.Exec: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrChannelNotFound
	}
	return nil
}

func (r *ChannelRepository) SetImage(ctx context.Context, channelID int64, image string) error {
	res, err := r.db.NewUpdate().
		Model((*model.Channel)(nil)).
		Set("image = ?", image).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "channelRepo.SetImage.Exec: ")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrChannelNotFound
	}
	return nil
}
