package models

import "time"

// User represents an account that owns a set of contacts.
// Token is the opaque bearer credential: set on login, cleared on logout.
type User struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username  string `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Password  string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Name      string `json:"name" gorm:"type:varchar(100)"`
	Token     string `json:"-" gorm:"index;type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
