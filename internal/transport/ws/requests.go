package ws

// Request payloads, one struct per client event.

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Nickname string `json:"nickname" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userGetRequest struct {
	Email  string   `json:"email" validate:"omitempty,email"`
	Emails []string `json:"emails" validate:"omitempty,dive,email"`
}

type userUpdateRequest struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"newPassword"`
	Nickname    string `json:"nickname"`
	Image       string `json:"image"`
}

type channelReadUpdateRequest struct {
	ChannelID int64 `json:"channelID" validate:"required,gt=0"`
	MessageID int64 `json:"messageID" validate:"required,gt=0"`
}

type notificationRequest struct {
	ChannelID int64 `json:"channelID" validate:"required,gt=0"`
	Enabled   bool  `json:"notification"`
}

type contactRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type channelGetRequest struct {
	ChannelID int64 `json:"channelID" validate:"required,gt=0"`
}

type channelConnectRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type messagesGetRequest struct {
	ChannelID int64 `json:"channelID" validate:"required,gt=0"`
	Per       int   `json:"per" validate:"omitempty,gt=0"`
	FromID    int64 `json:"messageID" validate:"omitempty,gt=0"`
}

type messageSendRequest struct {
	ChannelID int64  `json:"channelID" validate:"required,gt=0"`
	Message   string `json:"message" validate:"required"`
}

type inviteRequest struct {
	ChannelID int64  `json:"channelID" validate:"required,gt=0"`
	Email     string `json:"email" validate:"required,email"`
}

type channelNameRequest struct {
	ChannelID int64  `json:"channelID" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
}

type channelImageRequest struct {
	ChannelID int64  `json:"channelID" validate:"required,gt=0"`
	Image     string `json:"image" validate:"required"`
}
