package domain

import "time"

// UserStatus represents lifecycle states for a user record.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusBlocked  UserStatus = "BLOCKED"
)

// User is the stored document for one managed user. The external "dni"
// field is persisted as DocumentNumber.
type User struct {
	ID             string     `bson:"_id,omitempty"`
	DocumentNumber string     `bson:"documentNumber"`
	FirstName      string     `bson:"firstName"`
	LastName       string     `bson:"lastName"`
	Email          string     `bson:"email"`
	PhoneNumber    string     `bson:"phoneNumber"`
	Status         UserStatus `bson:"status"`
	CreatedAt      time.Time  `bson:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt"`
}
