package ws

import (
	"context"
	"encoding/json"
	"net/http"

	"kurz/internal/addressbook"
	"kurz/internal/channel"
	"kurz/internal/presence"
	"kurz/internal/user"
	"kurz/pkg/errors"
	"kurz/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
)

// Client event names. Every request is answered on its own event;
// pushes arrive on channel.EventMessageReceive.
const (
	EventSignup            = "/user/signup"
	EventSignin            = "/user/signin"
	EventSignout           = "/user/signout"
	EventUserGet           = "/user/get"
	EventUserUpdate        = "/user/update"
	EventChannelReadsGet   = "/user/get/channelReads"
	EventChannelReadUpdate = "/user/update/channelReads"
	EventNotification      = "/user/update/notification"

	EventContactsGet   = "/addressbook/get"
	EventContactCreate = "/addressbook/create"
	EventContactDelete = "/addressbook/delete"

	EventChannelGet          = "/channel/get"
	EventChannelList         = "/channel/get/list"
	EventChannelParticipants = "/channel/get/participants"
	EventChannelConnect      = "/channel/connect"
	EventChannelConnectByID  = "/channel/connect/id"
	EventMessagesGet         = "/channel/message/get"
	EventMessageSend         = "/channel/message/send"
	EventChannelInvite       = "/channel/invite"
	EventChannelName         = "/channel/update/name"
	EventChannelImage        = "/channel/update/image"
	EventChannelLeave        = "/channel/leave"
)

type Handler struct {
	users    user.UserUsecase
	contacts addressbook.AddressBookUsecase
	channels channel.ChannelUsecase
	registry *presence.Registry

	upgrader websocket.Upgrader
	validate *validator.Validate
	logger   *logger.Logger
}

func NewHandler(
	users user.UserUsecase,
	contacts addressbook.AddressBookUsecase,
	channels channel.ChannelUsecase,
	registry *presence.Registry,
	logger *logger.Logger,
) *Handler {
	return &Handler{
		users:    users,
		contacts: contacts,
		channels: channels,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	s := newSession(conn)
	defer h.teardown(s)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", "remote", r.RemoteAddr, "err", err)
			}
			return
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			_ = s.sendError("", string(errors.CodeInvalidArgument), "malformed envelope")
			continue
		}

		h.dispatch(r.Context(), s, env)
	}
}

// teardown drops presence only if this socket still owns the entry; a
// reconnect that signed in before the old socket died must survive.
func (h *Handler) teardown(s *session) {
	if s.email != "" {
		h.registry.Remove(s.email, s)
	}
	_ = s.conn.Close()
}

func (h *Handler) dispatch(ctx context.Context, s *session, env envelope) {
	var (
		data any
		err  error
	)

	switch env.Event {
	case EventSignup:
		data, err = h.signup(ctx, env.Data)
	case EventSignin:
		data, err = h.signin(ctx, s, env.Data)
	case EventSignout:
		h.signout(s)
	case EventUserGet:
		data, err = h.userGet(ctx, s, env.Data)
	case EventUserUpdate:
		data, err = h.userUpdate(ctx, s, env.Data)
	case EventChannelReadsGet:
		data, err = h.channelReads(ctx, s)
	case EventChannelReadUpdate:
		err = h.channelReadUpdate(ctx, s, env.Data)
	case EventNotification:
		err = h.notification(ctx, s, env.Data)

	case EventContactsGet:
		data, err = h.contactsGet(ctx, s)
	case EventContactCreate:
		data, err = h.contactCreate(ctx, s, env.Data)
	case EventContactDelete:
		data, err = h.contactDelete(ctx, s, env.Data)

	case EventChannelGet:
		data, err = h.channelGet(ctx, s, env.Data)
	case EventChannelList:
		data, err = h.channelList(ctx, s)
	case EventChannelParticipants:
		data, err = h.channelParticipants(ctx, s, env.Data)
	case EventChannelConnect:
		data, err = h.channelConnect(ctx, s, env.Data)
	case EventChannelConnectByID:
		data, err = h.channelConnectByID(ctx, s, env.Data)
	case EventMessagesGet:
		data, err = h.messagesGet(ctx, s, env.Data)
	case EventMessageSend:
		data, err = h.messageSend(ctx, s, env.Data)
	case EventChannelInvite:
		data, err = h.invite(ctx, s, env.Data)
	case EventChannelName:
		data, err = h.channelName(ctx, s, env.Data)
	case EventChannelImage:
		data, err = h.channelImage(ctx, s, env.Data)
	case EventChannelLeave:
		data, err = h.leave(ctx, s, env.Data)

	default:
		err = errors.InvalidArg("unknown event: " + env.Event)
	}

	if err != nil {
		if sendErr := s.sendError(env.Event, string(errors.CodeOf(err)), err.Error()); sendErr != nil {
			h.logger.Warn("failed to write error reply", "event", env.Event, "err", sendErr)
		}
		return
	}
	if err := s.Send(env.Event, data); err != nil {
		h.logger.Warn("failed to write reply", "event", env.Event, "err", err)
	}
}

func (h *Handler) decode(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return errors.InvalidArg("missing payload")
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return errors.InvalidArg("malformed payload")
	}
	if err := h.validate.Struct(into); err != nil {
		return errors.InvalidArg(err.Error())
	}
	return nil
}

// requireAuth returns the email the session signed in as.
func (h *Handler) requireAuth(s *session) (string, error) {
	if s.email == "" {
		return "", errors.Unauthorized("signin required")
	}
	return s.email, nil
}

func (h *Handler) signup(ctx context.Context, raw json.RawMessage) (any, error) {
	var req signupRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	if err := h.users.Signup(ctx, user.SignupCommand{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
	}); err != nil {
		return nil, err
	}
	return map[string]bool{"created": true}, nil
}

func (h *Handler) signin(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	var req signinRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	profile, err := h.users.Signin(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	s.email = profile.Email
	h.registry.Set(profile.Email, s, *profile)
	return profile, nil
}

func (h *Handler) signout(s *session) {
	if s.email == "" {
		return
	}
	h.registry.Remove(s.email, s)
	s.email = ""
}

func (h *Handler) userGet(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	self, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}

	var req userGetRequest
	if len(raw) > 0 {
		if err := h.decode(raw, &req); err != nil {
			return nil, err
		}
	}

	if len(req.Emails) > 0 {
		return h.users.Profiles(ctx, req.Emails)
	}
	email := req.Email
	if email == "" {
		email = self
	}
	return h.users.Profile(ctx, email)
}

func (h *Handler) userUpdate(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req userUpdateRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	profile, err := h.users.Update(ctx, user.UpdateCommand{
		Email:       email,
		Password:    req.Password,
		NewPassword: req.NewPassword,
		Nickname:    req.Nickname,
		Image:       req.Image,
	})
	if err != nil {
		return nil, err
	}
	h.registry.Set(email, s, *profile)
	return profile, nil
}

func (h *Handler) channelReads(ctx context.Context, s *session) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	return h.users.ChannelReads(ctx, email)
}

func (h *Handler) channelReadUpdate(ctx context.Context, s *session, raw json.RawMessage) error {
	email, err := h.requireAuth(s)
	if err != nil {
		return err
	}
	var req channelReadUpdateRequest
	if err := h.decode(raw, &req); err != nil {
		return err
	}
	return h.users.UpdateChannelRead(ctx, email, req.ChannelID, req.MessageID)
}

func (h *Handler) notification(ctx context.Context, s *session, raw json.RawMessage) error {
	email, err := h.requireAuth(s)
	if err != nil {
		return err
	}
	var req notificationRequest
	if err := h.decode(raw, &req); err != nil {
		return err
	}
	return h.users.SetNotification(ctx, email, req.ChannelID, req.Enabled)
}

func (h *Handler) contactsGet(ctx context.Context, s *session) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	return h.contacts.List(ctx, email)
}

func (h *Handler) contactCreate(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req contactRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	if err := h.contacts.Create(ctx, email, req.Email); err != nil {
		return nil, err
	}
	return h.contacts.List(ctx, email)
}

func (h *Handler) contactDelete(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req contactRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	if err := h.contacts.Remove(ctx, email, req.Email); err != nil {
		return nil, err
	}
	return h.contacts.List(ctx, email)
}

func (h *Handler) channelGet(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	if _, err := h.requireAuth(s); err != nil {
		return nil, err
	}
	var req channelGetRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.Get(ctx, req.ChannelID)
}

func (h *Handler) channelList(ctx context.Context, s *session) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	return h.channels.List(ctx, email)
}

func (h *Handler) channelParticipants(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	if _, err := h.requireAuth(s); err != nil {
		return nil, err
	}
	var req channelGetRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	view, err := h.channels.Get(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	return h.users.Profiles(ctx, view.Participants)
}

func (h *Handler) channelConnect(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req channelConnectRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.Connect(ctx, email, req.Email)
}

func (h *Handler) channelConnectByID(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	if _, err := h.requireAuth(s); err != nil {
		return nil, err
	}
	var req channelGetRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.ConnectByID(ctx, req.ChannelID)
}

func (h *Handler) messagesGet(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	if _, err := h.requireAuth(s); err != nil {
		return nil, err
	}
	var req messagesGetRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.Messages(ctx, req.ChannelID, req.Per, req.FromID)
}

func (h *Handler) messageSend(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req messageSendRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.SendMessage(ctx, req.ChannelID, email, req.Message)
}

func (h *Handler) invite(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req inviteRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.Invite(ctx, req.ChannelID, email, req.Email)
}

func (h *Handler) channelName(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req channelNameRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.Rename(ctx, req.ChannelID, email, req.Name)
}

func (h *Handler) channelImage(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req channelImageRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.UpdateImage(ctx, req.ChannelID, email, req.Image)
}

func (h *Handler) leave(ctx context.Context, s *session, raw json.RawMessage) (any, error) {
	email, err := h.requireAuth(s)
	if err != nil {
		return nil, err
	}
	var req channelGetRequest
	if err := h.decode(raw, &req); err != nil {
		return nil, err
	}
	return h.channels.Leave(ctx, req.ChannelID, email)
}
