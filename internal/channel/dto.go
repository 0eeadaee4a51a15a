package channel

import (
	"time"

	model "kurz/internal/channel/model"

	"github.com/google/uuid"
)

// Output DTOs
type UserSummary struct {
	ID       uuid.UUID `json:"_id"`
	Email    string    `json:"email"`
	Nickname string    `json:"nickname"`
	Image    string    `json:"image"`
}

type LastMessage struct {
	MessageID int64     `json:"messageID"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Image     string    `json:"image"`
	Body      string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}

// ChannelView is the decorated read view: creator/target emails
// resolved into user summaries.
type ChannelView struct {
	ID           int64        `json:"_id"`
	Creator      UserSummary  `json:"creator"`
	Target       UserSummary  `json:"target"`
	Multichat    bool         `json:"multichat"`
	Name         string       `json:"name"`
	Image        string       `json:"image"`
	NameUpdated  bool         `json:"nameUpdated"`
	Participants []string     `json:"participants"`
	LastMessage  *LastMessage `json:"lastMessage,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type MessageDTO struct {
	ID        int64             `json:"_id"`
	ChannelID int64             `json:"channelID"`
	Email     string            `json:"email"`
	Nickname  string            `json:"nickname"`
	Image     string            `json:"image"`
	Body      string            `json:"message"`
	Type      model.MessageType `json:"type"`
	SentAt    time.Time         `json:"sentAt"`
	File      *FileDTO          `json:"file,omitempty"`
}

// FileDTO is the descriptor embedded in a file message.
type FileDTO struct {
	ID        int64     `json:"_id"`
	Name      string    `json:"name"` // original name as uploaded
	Uploader  string    `json:"uploader"`
	Mime      string    `json:"mime"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// FileDataDTO is the full stored-file record, used by the download
// endpoints to locate the blob on disk.
type FileDataDTO struct {
	ID           int64     `json:"_id"`
	ChannelID    int64     `json:"channel"`
	Uploader     string    `json:"uploader"`
	StoredName   string    `json:"name"`
	OriginalName string    `json:"originalName"`
	Mime         string    `json:"mime"`
	Size         int64     `json:"size"`
	Downloaded   int64     `json:"downloaded"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Input commands
type AttachFileCommand struct {
	Uploader     string `validate:"required,email"`
	OriginalName string `validate:"required"`
	StoredName   string `validate:"required"`
	Mime         string `validate:"required"`
	Size         int64  `validate:"required,gt=0"`
}

// ParticipantAdd carries the fields of the single atomic update that
// turns an invite into membership.
type ParticipantAdd struct {
	Invitee string
	// New display name; applied unconditionally (callers pass the old
	// name when no derivation happened)
	Name string
	// Set image to the "group" sentinel when it is still empty
	SetGroupImage bool
}
