package user

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type SignupCommand struct {
	Email    string
	Password string
	Nickname string
}

type UpdateCommand struct {
	Email    string
	Password string // current password, re-checked before any change

	NewPassword string // optional
	Nickname    string // optional, uniqueness enforced
	Image       string // optional
}

// UserPatch is the repository-level partial update; nil fields are
// left untouched.
type UserPatch struct {
	Password *string
	Nickname *string
	Image    *string
}

// Output DTOs
type ProfileDTO struct {
	ID        uuid.UUID `json:"_id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// channels the user silenced via /user/update/notification
	MutedChannels []int64 `json:"noNotification"`
}

type SummaryDTO struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Image    string `json:"image"`
}

type ChannelReadDTO struct {
	ChannelID     int64 `json:"channelID"`
	ReadMessageID int64 `json:"reads"`
}
