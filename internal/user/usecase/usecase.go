package usecase

import (
	"context"
	stderrors "errors"
	"regexp"

	"kurz/internal/user"
	models "kurz/internal/user/model"
	"kurz/internal/user/repository"
	"kurz/pkg/errors"
	"kurz/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo     user.UserRepository
	channels user.ChannelChecker
	logger   *logger.Logger
}

func NewUserUsecase(repo user.UserRepository, channels user.ChannelChecker, logger *logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, channels: channels, logger: logger}
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateEmail(email string) error {
	if email == "" {
		return errors.InvalidArg("Email must be specified.")
	}
	if !emailRegex.MatchString(email) {
		return errors.InvalidArg("Email is invalid.")
	}
	return nil
}

func (uc *UserUsecase) Signup(ctx context.Context, cmd user.SignupCommand) error {
	if err := validateEmail(cmd.Email); err != nil {
		return err
	}
	if cmd.Password == "" {
		return errors.InvalidArg("Password must be specified.")
	}
	if cmd.Nickname == "" {
		return errors.InvalidArg("Nickname must be specified.")
	}

	if exists, err := uc.repo.EmailExists(ctx, cmd.Email); err != nil {
		uc.logger.Error("database error checking email", "err", err)
		return errors.Internal("internal server error")
	} else if exists {
		return errors.ErrEmailTaken
	}

	if exists, err := uc.repo.NicknameExists(ctx, cmd.Nickname); err != nil {
		uc.logger.Error("database error checking nickname", "err", err)
		return errors.Internal("internal server error")
	} else if exists {
		return errors.ErrNicknameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return errors.Internal("internal server error")
	}

	u := &models.User{
		Email:    cmd.Email,
		Nickname: cmd.Nickname,
		Password: string(hashed),
		Image:    "default",
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		uc.logger.Errorf("error while saving user in db: %v", err)
		return errors.Internal("database error")
	}
	return nil
}

func (uc *UserUsecase) Signin(ctx context.Context, email, password string) (*user.ProfileDTO, error) {
	if email == "" || password == "" {
		return nil, errors.ErrInvalidCredentials
	}

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		// unknown email reports the same as a bad password
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return toProfile(u), nil
}

func (uc *UserUsecase) Profile(ctx context.Context, email string) (*user.ProfileDTO, error) {
	if email == "" {
		return nil, errors.InvalidArg("Email must be specified.")
	}

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error fetching user", "email", email, "err", err)
		return nil, errors.Internal("database error")
	}

	muted, err := uc.repo.GetMutedChannels(ctx, email)
	if err != nil {
		uc.logger.Error("database error fetching muted channels", "email", email, "err", err)
		return nil, errors.Internal("database error")
	}

	profile := toProfile(u)
	profile.MutedChannels = muted
	if profile.MutedChannels == nil {
		profile.MutedChannels = []int64{}
	}
	return profile, nil
}

func (uc *UserUsecase) Profiles(ctx context.Context, emails []string) ([]user.SummaryDTO, error) {
	if len(emails) == 0 {
		return nil, errors.InvalidArg("Users must be specified.")
	}

	users, err := uc.repo.GetUsersByEmails(ctx, emails)
	if err != nil {
		uc.logger.Error("database error fetching users", "err", err)
		return nil, errors.Internal("database error")
	}

	summaries := make([]user.SummaryDTO, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, user.SummaryDTO{
			Email:    u.Email,
			Nickname: u.Nickname,
			Image:    u.Image,
		})
	}
	return summaries, nil
}

func (uc *UserUsecase) Update(ctx context.Context, cmd user.UpdateCommand) (*user.ProfileDTO, error) {
	if err := validateEmail(cmd.Email); err != nil {
		return nil, err
	}
	if cmd.Password == "" {
		return nil, errors.InvalidArg("Password must be specified.")
	}

	// any profile change re-verifies the current password first
	if _, err := uc.Signin(ctx, cmd.Email, cmd.Password); err != nil {
		return nil, err
	}

	patch := user.UserPatch{}

	if cmd.NewPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("failed to hash password", "err", err)
			return nil, errors.Internal("internal server error")
		}
		hashedStr := string(hashed)
		patch.Password = &hashedStr
	}

	if cmd.Nickname != "" {
		exists, err := uc.repo.NicknameExists(ctx, cmd.Nickname)
		if err != nil {
			uc.logger.Error("database error checking nickname", "err", err)
			return nil, errors.Internal("database error")
		}
		if exists {
			return nil, errors.AlreadyExists("Someone already using same nickname.")
		}
		patch.Nickname = &cmd.Nickname
	}

	if cmd.Image != "" {
		patch.Image = &cmd.Image
	}

	if err := uc.repo.UpdateUser(ctx, cmd.Email, patch); err != nil {
		if stderrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error updating user", "email", cmd.Email, "err", err)
		return nil, errors.Internal("database error")
	}

	return uc.Profile(ctx, cmd.Email)
}

func (uc *UserUsecase) ChannelReads(ctx context.Context, email string) ([]user.ChannelReadDTO, error) {
	if email == "" {
		return nil, errors.InvalidArg("Email must be specified.")
	}

	reads, err := uc.repo.GetChannelReads(ctx, email)
	if err != nil {
		uc.logger.Error("database error fetching channel reads", "email", email, "err", err)
		return nil, errors.Internal("database error")
	}

	list := make([]user.ChannelReadDTO, 0, len(reads))
	for _, r := range reads {
		list = append(list, user.ChannelReadDTO{
			ChannelID:     r.ChannelID,
			ReadMessageID: r.ReadMessageID,
		})
	}
	return list, nil
}

func (uc *UserUsecase) UpdateChannelRead(ctx context.Context, email string, channelID, messageID int64) error {
	if email == "" {
		return errors.InvalidArg("Email must be specified.")
	}
	if channelID == 0 {
		return errors.InvalidArg("Channel ID must be specified.")
	}
	if messageID == 0 {
		return errors.InvalidArg("Message ID must be specified.")
	}

	if err := uc.repo.UpsertChannelRead(ctx, email, channelID, messageID); err != nil {
		uc.logger.Error("database error updating channel read", "email", email, "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func (uc *UserUsecase) SetNotification(ctx context.Context, email string, channelID int64, enabled bool) error {
	if email == "" {
		return errors.InvalidArg("Email must be specified.")
	}
	if channelID == 0 {
		return errors.InvalidArg("Channel ID must be specified.")
	}

	exists, err := uc.channels.Exists(ctx, channelID)
	if err != nil {
		uc.logger.Error("database error checking channel", "channelID", channelID, "err", err)
		return errors.Internal("database error")
	}
	if !exists {
		return errors.ErrChannelNotFound
	}

	// muted = notifications disabled
	if err := uc.repo.SetChannelMuted(ctx, email, channelID, !enabled); err != nil {
		uc.logger.Error("database error toggling mute", "email", email, "err", err)
		return errors.Internal("database error")
	}
	return nil
}

func toProfile(u *models.User) *user.ProfileDTO {
	return &user.ProfileDTO{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
