package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Email = unique identity (used for login and addressing)
	Email string `bun:",unique,notnull"`

	// Nickname = display name shown in chats (unique across users)
	Nickname string `bun:",unique,notnull"`

	// bcrypt hash; never leaves the repository layer
	Password string `bun:",notnull"`

	// Avatar image reference; 'default' until a profile upload replaces it
	Image string `bun:",notnull,default:'default'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
