package models

import "gorm.io/gorm"

// User is the identity record referenced by every log table. Accounts are
// created and authenticated by the external identity provider; this service
// only stores the reference row.
type User struct {
	gorm.Model
	Name  string
	Email string `gorm:"unique"`
}
