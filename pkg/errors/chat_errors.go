package errors

var (
	// Domain errors — used in usecase/repository
	ErrEmailTaken         = AlreadyExists("Email already exists")
	ErrNicknameTaken      = AlreadyExists("Nickname already exists")
	ErrInvalidCredentials = Unauthorized("Email or Password is invalid.")
	ErrUserNotFound       = NotFound("user does not exists.")

	ErrSelfContact     = InvalidArg("Cannot add friend yourself.")
	ErrContactExists   = AlreadyExists("user already added as your friend.")
	ErrContactNotFound = NotFound("contact does not exists.")

	ErrChannelNotFound  = NotFound("Channel does not exists.")
	ErrMessageNotFound  = NotFound("Message Not Found")
	ErrFileNotFound     = NotFound("File Not Found")
	ErrAlreadyInChannel = AlreadyExists("User already in channel")
	ErrNotInChannel     = FailedPrecondition("User does not belong to the channel.")
	ErrNotMultichat     = FailedPrecondition("Update channel name is only available on Multichat")
)

func ErrNotParticipant(email string) error {
	return InvalidArg(email + " is not belong to this channel.")
}

func ErrChannelCreateFailed(cause error) error {
	return Wrap(CodeInternal, "failed to create channel", cause)
}
