package channel

import (
	"context"
)

// EventMessageReceive is the broadcast event every new channel event
// is multicast on; distinct from any request/response event name.
const EventMessageReceive = "/channel/message/receive"

// Multicaster delivers an event to every currently-connected
// participant, best-effort. Implemented by the fan-out dispatcher.
type Multicaster interface {
	Multicast(participants []string, event string, payload any)
}

type ChannelUsecase interface {
	// Connect locates the channel linking the pair or creates it; the
	// second call returns the same channel (idempotent)
	Connect(ctx context.Context, email, target string) (*ChannelView, error)
	ConnectByID(ctx context.Context, channelID int64) (*ChannelView, error)

	Get(ctx context.Context, channelID int64) (*ChannelView, error)
	List(ctx context.Context, email string) ([]ChannelView, error)

	// Invite adds invitee, severing the inviter's 1:1 shortcut and
	// deriving a group name unless one was set manually
	Invite(ctx context.Context, channelID int64, inviter, invitee string) (*MessageDTO, error)

	// Leave removes the member and notifies the remaining participants
	Leave(ctx context.Context, channelID int64, email string) (*MessageDTO, error)

	// Rename/UpdateImage are group-only operations
	Rename(ctx context.Context, channelID int64, email, name string) (*MessageDTO, error)
	UpdateImage(ctx context.Context, channelID int64, email, image string) (*MessageDTO, error)

	SendMessage(ctx context.Context, channelID int64, email, body string) (*MessageDTO, error)

	// AttachFile records a finalized upload and posts its file message
	AttachFile(ctx context.Context, channelID int64, cmd AttachFileCommand) (*MessageDTO, error)

	// Messages pages backwards through history; fromID=0 starts at the
	// newest message. Pages come back in ascending chronological order.
	Messages(ctx context.Context, channelID int64, per int, fromID int64) ([]MessageDTO, error)

	FileData(ctx context.Context, channelID, fileID int64) (*FileDataDTO, error)
	// Download is FileData plus the download counter bump
	Download(ctx context.Context, channelID, fileID int64) (*FileDataDTO, error)
}
