// ABOUTME: User identity model referenced by every other entity.
// ABOUTME: Identity is owned by the auth subsystem; this is the client copy.
package models

import "github.com/google/uuid"

// User is the signed-in identity. All other entities reference it by ID.
type User struct {
	ID    uuid.UUID
	Email string
}
