package models

import "time"

// Contact belongs to exactly one User. Every lookup is scoped by UserID,
// so a contact owned by someone else is indistinguishable from a missing one.
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FirstName string    `json:"first_name" gorm:"type:varchar(100)"`
	LastName  string    `json:"last_name" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"type:varchar(200)"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)"`
	UserID    string    `json:"-" gorm:"index;type:varchar(36)"`
	Addresses []Address `json:"-" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
