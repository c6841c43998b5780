package models

import "time"

// Address belongs to exactly one Contact.
type Address struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Street     string `json:"street" gorm:"type:varchar(200)"`
	City       string `json:"city" gorm:"type:varchar(100)"`
	Province   string `json:"province" gorm:"type:varchar(100)"`
	Country    string `json:"country" gorm:"type:varchar(100)"`
	PostalCode string `json:"postal_code" gorm:"type:varchar(10)"`
	ContactID  string `json:"-" gorm:"index;type:varchar(36)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
