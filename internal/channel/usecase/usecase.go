package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"kurz/internal/addressbook"
	abRepo "kurz/internal/addressbook/repository"
	"kurz/internal/channel"
	model "kurz/internal/channel/model"
	channelRepo "kurz/internal/channel/repository"
	"kurz/internal/metrics"
	"kurz/internal/user"
	userModels "kurz/internal/user/model"
	userRepo "kurz/internal/user/repository"
	"kurz/pkg/errors"
	"kurz/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const defaultPageSize = 10

type ChannelUsecase struct {
	channels channel.ChannelRepository
	messages channel.MessageRepository
	files    channel.FileRepository
	contacts addressbook.ContactRepository
	users    user.UserRepository
	mcast    channel.Multicaster
	logger   *logger.Logger
	validate *validator.Validate

	// Serializes appends per channel so sent_at order always agrees
	// with insertion-id order inside one channel.
	appendLocks [64]sync.Mutex
}

func NewChannelUsecase(
	channels channel.ChannelRepository,
	messages channel.MessageRepository,
	files channel.FileRepository,
	contacts addressbook.ContactRepository,
	users user.UserRepository,
	mcast channel.Multicaster,
	logger *logger.Logger,
) *ChannelUsecase {
	return &ChannelUsecase{
		channels: channels,
		messages: messages,
		files:    files,
		contacts: contacts,
		users:    users,
		mcast:    mcast,
		logger:   logger,
		validate: validator.New(),
	}
}

func (uc *ChannelUsecase) appendLock(channelID int64) *sync.Mutex {
	return &uc.appendLocks[uint64(channelID)%uint64(len(uc.appendLocks))]
}

func (uc *ChannelUsecase) Connect(ctx context.Context, email, target string) (*channel.ChannelView, error) {
	if email == "" {
		return nil, errors.InvalidArg("Email must be specified.")
	}
	if target == "" {
		return nil, errors.InvalidArg("Target must be specified.")
	}

	channelID, err := uc.contacts.GetChannelID(ctx, email, target)
	if err != nil {
		uc.logger.Error("database error reading channel link", "email", email, "err", err)
		return nil, errors.Internal("database error")
	}
	if channelID != 0 {
		return uc.Get(ctx, channelID)
	}

	targetUser, err := uc.users.GetUserByEmail(ctx, target)
	if err != nil {
		if stderrors.Is(err, userRepo.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error fetching target user", "target", target, "err", err)
		return nil, errors.Internal("database error")
	}

	ch := &model.Channel{
		Creator:      email,
		Target:       target,
		Participants: []string{email, target},
		Multichat:    false,
		Name:         targetUser.Nickname + " and 1 more",
		Image:        "",
		NameUpdated:  false,
	}
	if err := uc.channels.Create(ctx, ch); err != nil {
		uc.logger.Error("database error creating channel", "creator", email, "err", err)
		return nil, errors.ErrChannelCreateFailed(err)
	}

	// Only the initiator's contact row gets the link; the target keeps
	// channel=0 until they connect themselves.
	if err := uc.contacts.SetChannelID(ctx, email, target, ch.ID); err != nil {
		// compensation: the channel must not outlive a failed link
		if delErr := uc.channels.Delete(ctx, ch.ID); delErr != nil {
			uc.logger.Error("rollback delete failed", "channelID", ch.ID, "err", delErr)
		}
		if stderrors.Is(err, abRepo.ErrContactNotFound) {
			return nil, errors.ErrContactNotFound
		}
		uc.logger.Error("database error linking channel", "email", email, "err", err)
		return nil, errors.Internal("database error")
	}

	return uc.Get(ctx, ch.ID)
}

func (uc *ChannelUsecase) ConnectByID(ctx context.Context, channelID int64) (*channel.ChannelView, error) {
	if channelID == 0 {
		return nil, errors.InvalidArg("Channel ID must be specified.")
	}
	return uc.Get(ctx, channelID)
}

func (uc *ChannelUsecase) Get(ctx context.Context, channelID int64) (*channel.ChannelView, error) {
	view, err := uc.channels.Get(ctx, channelID)
	if err != nil {
		if stderrors.Is(err, channelRepo.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error fetching channel", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}
	return view, nil
}

func (uc *ChannelUsecase) List(ctx context.Context, email string) ([]channel.ChannelView, error) {
	if email == "" {
		return nil, errors.InvalidArg("Email must be specified.")
	}

	views, err := uc.channels.ListForUser(ctx, email)
	if err != nil {
		uc.logger.Error("database error listing channels", "email", email, "err", err)
		return nil, errors.Internal("database error")
	}
	return views, nil
}

func (uc *ChannelUsecase) Invite(ctx context.Context, channelID int64, inviter, invitee string) (*channel.MessageDTO, error) {
	if channelID == 0 {
		return nil, errors.InvalidArg("Channel ID must be specified.")
	}
	if inviter == "" {
		return nil, errors.InvalidArg("Inviter must be specified.")
	}
	if invitee == "" {
		return nil, errors.InvalidArg("Invitee must be specified.")
	}

	view, err := uc.Get(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if lo.Contains(view.Participants, invitee) {
		return nil, errors.ErrAlreadyInChannel
	}

	name := view.Name
	if !view.NameUpdated {
		name = fmt.Sprintf("%s and %d more", view.Target.Nickname, len(view.Participants))
	}

	added, err := uc.channels.AddParticipant(ctx, channelID, channel.ParticipantAdd{
		Invitee:       invitee,
		Name:          name,
		SetGroupImage: view.Image == "",
	})
	if err != nil {
		uc.logger.Error("database error adding participant", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}
	if !added {
		// lost a race with a concurrent invite of the same user
		return nil, errors.ErrAlreadyInChannel
	}

	// The pair's 1:1 shortcut stops pointing here now that this is a
	// group; a later connect between them creates a fresh channel. Reset
	// only after the membership update lands, so a lost race above
	// leaves the link intact.
	zero := int64(0)
	if err := uc.contacts.Update(ctx, inviter, view.Target.Email, addressbook.ContactPatch{ChannelID: &zero}); err != nil {
		uc.logger.Error("database error resetting contact link", "inviter", inviter, "err", err)
		return nil, errors.Internal("database error")
	}

	inviterUser, err := uc.users.GetUserByEmail(ctx, inviter)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	inviteeUser, err := uc.users.GetUserByEmail(ctx, invitee)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	text := fmt.Sprintf("%s invites %s.", inviterUser.Nickname, inviteeUser.Nickname)
	dto, err := uc.appendMessage(ctx, channelID, inviterUser, text, model.MessageSystem, nil)
	if err != nil {
		return nil, err
	}

	uc.broadcast(append(view.Participants, invitee), *dto, model.MessageMemberNotice)
	return dto, nil
}

func (uc *ChannelUsecase) Leave(ctx context.Context, channelID int64, email string) (*channel.MessageDTO, error) {
	if channelID == 0 {
		return nil, errors.InvalidArg("Channel ID must be specified.")
	}
	if email == "" {
		return nil, errors.InvalidArg("Email must be specified.")
	}

	ch, err := uc.channels.GetRaw(ctx, channelID)
	if err != nil {
		if stderrors.Is(err, channelRepo.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error fetching channel", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}

	// membership is verified before any mutation
	if !lo.Contains(ch.Participants, email) {
		return nil, errors.ErrNotParticipant(email)
	}

	var newName *string
	if ch.Multichat && !ch.NameUpdated {
		// auto-derived name tracks the shrinking member count;
		// count taken before removal
		targetUser, err := uc.users.GetUserByEmail(ctx, ch.Target)
		if err != nil {
			return nil, errors.ErrUserNotFound
		}
		name := fmt.Sprintf("%s and %d more.", targetUser.Nickname, len(ch.Participants)-2)
		newName = &name
	} else {
		// sever the 1:1 shortcut on both sides so a future connect
		// between the pair starts a fresh channel
		other := ch.Target
		if email != ch.Creator {
			other = ch.Creator
		}
		zero := int64(0)
		if err := uc.contacts.Update(ctx, email, other, addressbook.ContactPatch{ChannelID: &zero}); err != nil {
			uc.logger.Error("database error resetting contact link", "email", email, "err", err)
			return nil, errors.Internal("database error")
		}
		if err := uc.contacts.Update(ctx, other, email, addressbook.ContactPatch{ChannelID: &zero}); err != nil {
			uc.logger.Error("database error resetting opposite contact link", "email", other, "err", err)
			return nil, errors.Internal("database error")
		}
	}

	removed, err := uc.channels.RemoveParticipant(ctx, channelID, email, newName)
	if err != nil {
		uc.logger.Error("database error removing participant", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}
	if !removed {
		return nil, errors.ErrNotParticipant(email)
	}

	leaver, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	text := fmt.Sprintf("%s leaved channel.", leaver.Nickname)
	dto, err := uc.appendMessage(ctx, channelID, leaver, text, model.MessageSystem, nil)
	if err != nil {
		return nil, err
	}

	remaining := lo.Without(ch.Participants, email)
	uc.broadcast(remaining, *dto, model.MessageMemberNotice)
	return dto, nil
}

func (uc *ChannelUsecase) Rename(ctx context.Context, channelID int64, email, name string) (*channel.MessageDTO, error) {
	if name == "" {
		return nil, errors.InvalidArg("Name must be specified.")
	}

	ch, err := uc.requireMultichat(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if err := uc.channels.SetName(ctx, channelID, name); err != nil {
		uc.logger.Error("database error renaming channel", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}

	sender, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	text := fmt.Sprintf("%s changed channel name to %s.", sender.Nickname, name)
	dto, err := uc.appendMessage(ctx, channelID, sender, text, model.MessageSystem, nil)
	if err != nil {
		return nil, err
	}

	uc.broadcast(ch.Participants, *dto, model.MessageSystem)
	return dto, nil
}

func (uc *ChannelUsecase) UpdateImage(ctx context.Context, channelID int64, email, image string) (*channel.MessageDTO, error) {
	if image == "" {
		return nil, errors.InvalidArg("Image must be specified.")
	}

	ch, err := uc.requireMultichat(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if err := uc.channels.SetImage(ctx, channelID, image); err != nil {
		uc.logger.Error("database error updating channel image", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}

	sender, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	text := fmt.Sprintf("%s changed channel image.", sender.Nickname)
	dto, err := uc.appendMessage(ctx, channelID, sender, text, model.MessageSystem, nil)
	if err != nil {
		return nil, err
	}

	uc.broadcast(ch.Participants, *dto, model.MessageSystem)
	return dto, nil
}

func (uc *ChannelUsecase) requireMultichat(ctx context.Context, channelID int64) (*model.Channel, error) {
	if channelID == 0 {
		return nil, errors.InvalidArg("Channel ID must be specified.")
	}

	ch, err := uc.channels.GetRaw(ctx, channelID)
	if err != nil {
		if stderrors.Is(err, channelRepo.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error fetching channel", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}
	if !ch.Multichat {
		return nil, errors.ErrNotMultichat
	}
	return ch, nil
}

func (uc *ChannelUsecase) SendMessage(ctx context.Context, channelID int64, email, body string) (*channel.MessageDTO, error) {
	if channelID == 0 {
		return nil, errors.InvalidArg("Channel ID must be specified.")
	}
	if email == "" {
		return nil, errors.InvalidArg("Email must be specified.")
	}
	if body == "" {
		return nil, errors.InvalidArg("Message must be specified.")
	}

	ch, err := uc.channels.GetRaw(ctx, channelID)
	if err != nil {
		if stderrors.Is(err, channelRepo.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error fetching channel", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}

	if !lo.Contains(ch.Participants, email) {
		return nil, errors.ErrNotInChannel
	}

	sender, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	dto, err := uc.appendMessage(ctx, channelID, sender, body, model.MessageNormal, nil)
	if err != nil {
		return nil, err
	}

	uc.broadcast(ch.Participants, *dto, model.MessageNormal)
	return dto, nil
}

func (uc *ChannelUsecase) AttachFile(ctx context.Context, channelID int64, cmd channel.AttachFileCommand) (*channel.MessageDTO, error) {
	if channelID == 0 {
		return nil, errors.InvalidArg("Channel ID must be specified.")
	}
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, errors.InvalidArg(err.Error())
	}

	ch, err := uc.channels.GetRaw(ctx, channelID)
	if err != nil {
		if stderrors.Is(err, channelRepo.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("database error fetching channel", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}

	f := &model.File{
		ChannelID:    channelID,
		Uploader:     cmd.Uploader,
		Name:         cmd.StoredName,
		OriginalName: cmd.OriginalName,
		Mime:         cmd.Mime,
		Size:         cmd.Size,
	}
	if err := uc.files.Save(ctx, f); err != nil {
		uc.logger.Error("database error saving file", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}

	uploader, err := uc.users.GetUserByEmail(ctx, cmd.Uploader)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	text := fmt.Sprintf("%s upload a file.", uploader.Nickname)
	dto, err := uc.appendMessage(ctx, channelID, uploader, text, model.MessageFile, f)
	if err != nil {
		return nil, err
	}

	uc.broadcast(ch.Participants, *dto, model.MessageFile)
	return dto, nil
}

func (uc *ChannelUsecase) Messages(ctx context.Context, channelID int64, per int, fromID int64) ([]channel.MessageDTO, error) {
	if channelID == 0 {
		return nil, errors.InvalidArg("Channel ID must be specified.")
	}
	if per <= 0 {
		per = defaultPageSize
	}

	exists, err := uc.channels.Exists(ctx, channelID)
	if err != nil {
		uc.logger.Error("database error checking channel", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}
	if !exists {
		return nil, errors.ErrChannelNotFound
	}

	var msgs []model.Message
	if fromID == 0 {
		msgs, err = uc.messages.Latest(ctx, channelID, per)
	} else {
		from, ferr := uc.messages.GetByID(ctx, channelID, fromID)
		if ferr != nil {
			if stderrors.Is(ferr, channelRepo.ErrMessageNotFound) {
				return nil, errors.ErrMessageNotFound
			}
			uc.logger.Error("database error resolving cursor", "fromID", fromID, "err", ferr)
			return nil, errors.Internal("database error")
		}
		msgs, err = uc.messages.Before(ctx, channelID, from.SentAt, per)
	}
	if err != nil {
		uc.logger.Error("database error paging messages", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}

	// the scan runs newest-first for the limit; callers get the page
	// back in natural (ascending) order
	dtos := make([]channel.MessageDTO, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		dtos = append(dtos, toMessageDTO(msgs[i]))
	}
	return dtos, nil
}

func (uc *ChannelUsecase) FileData(ctx context.Context, channelID, fileID int64) (*channel.FileDataDTO, error) {
	f, err := uc.files.Get(ctx, channelID, fileID)
	if err != nil {
		if stderrors.Is(err, channelRepo.ErrFileNotFound) {
			return nil, errors.ErrFileNotFound
		}
		uc.logger.Error("database error fetching file", "fileID", fileID, "err", err)
		return nil, errors.Internal("database error")
	}
	return toFileDataDTO(f), nil
}

func (uc *ChannelUsecase) Download(ctx context.Context, channelID, fileID int64) (*channel.FileDataDTO, error) {
	data, err := uc.FileData(ctx, channelID, fileID)
	if err != nil {
		return nil, err
	}

	// counter bump is best-effort
	if err := uc.files.IncrementDownloaded(ctx, fileID); err != nil {
		uc.logger.Error("failed to bump download counter", "fileID", fileID, "err", err)
	} else {
		data.Downloaded++
	}
	return data, nil
}

// appendMessage writes one message with the sender's nickname/image
// snapshotted now, then refreshes the channel's last-message cache in
// the background. Appends for a channel are serialized so sent_at
// never disagrees with insertion order.
func (uc *ChannelUsecase) appendMessage(ctx context.Context, channelID int64, sender *userModels.User, body string, msgType model.MessageType, file *model.File) (*channel.MessageDTO, error) {
	lock := uc.appendLock(channelID)
	lock.Lock()

	msg := &model.Message{
		ChannelID: channelID,
		Email:     sender.Email,
		Nickname:  sender.Nickname,
		Image:     sender.Image,
		Body:      body,
		Type:      msgType,
		SentAt:    time.Now(),
	}
	if file != nil {
		msg.FileID = file.ID
		msg.File = file
	}

	err := uc.messages.Append(ctx, msg)
	lock.Unlock()
	if err != nil {
		uc.logger.Error("database error appending message", "channelID", channelID, "err", err)
		return nil, errors.Internal("database error")
	}

	metrics.MessagesAppended.WithLabelValues(strconv.Itoa(int(msgType))).Inc()

	// cache refresh must never fail the append
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		err := uc.channels.UpdateLastMessage(bgCtx, channelID, channel.LastMessage{
			MessageID: msg.ID,
			Email:     msg.Email,
			Nickname:  msg.Nickname,
			Image:     msg.Image,
			Body:      msg.Body,
			SentAt:    msg.SentAt,
		})
		if err != nil {
			uc.logger.Error("failed to update last message cache", "channelID", channelID, "err", err)
		}
	}()

	dto := toMessageDTO(*msg)
	return &dto, nil
}

// broadcast multicasts the message on the receive event, overriding
// the wire type (invite/leave rows are stored as system messages but
// broadcast as member notices).
func (uc *ChannelUsecase) broadcast(participants []string, dto channel.MessageDTO, wireType model.MessageType) {
	dto.Type = wireType
	uc.mcast.Multicast(participants, channel.EventMessageReceive, dto)
}

func toMessageDTO(msg model.Message) channel.MessageDTO {
	dto := channel.MessageDTO{
		ID:        msg.ID,
		ChannelID: msg.ChannelID,
		Email:     msg.Email,
		Nickname:  msg.Nickname,
		Image:     msg.Image,
		Body:      msg.Body,
		Type:      msg.Type,
		SentAt:    msg.SentAt,
	}
	if msg.File != nil {
		dto.File = &channel.FileDTO{
			ID:        msg.File.ID,
			Name:      msg.File.OriginalName,
			Uploader:  msg.File.Uploader,
			Mime:      msg.File.Mime,
			Size:      msg.File.Size,
			CreatedAt: msg.File.CreatedAt,
		}
	}
	return dto
}

func toFileDataDTO(f *model.File) *channel.FileDataDTO {
	return &channel.FileDataDTO{
		ID:           f.ID,
		ChannelID:    f.ChannelID,
		Uploader:     f.Uploader,
		StoredName:   f.Name,
		OriginalName: f.OriginalName,
		Mime:         f.Mime,
		Size:         f.Size,
		Downloaded:   f.Downloaded,
		CreatedAt:    f.CreatedAt,
	}
}
