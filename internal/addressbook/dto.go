package addressbook

// ContactDTO is a contact entry joined with the target's profile.
type ContactDTO struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Image    string `json:"image"`
}

// ContactPatch is the repository-level partial update for a contact
// row; nil fields are left untouched.
type ContactPatch struct {
	ChannelID *int64
}
