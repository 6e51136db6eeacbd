package identity

import (
	"github.com/google/uuid"
)

// User is an account in the identity context. Username and mail are unique
// among non-deleted users; deletion is logical.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(100);not null;index"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Mail      string    `gorm:"type:varchar(255);not null;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	IsDeleted bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates an active user with a generated identity
func NewUser(username, password, mail string) *User {
	return &User{
		ID:       uuid.New(),
		Username: username,
		Password: password,
		Mail:     mail,
		IsActive: true,
	}
}

// MarkDeleted flags the user as logically deleted
func (u *User) MarkDeleted() {
	u.IsDeleted = true
}
