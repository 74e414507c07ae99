// Package model holds the GORM persistence models mirroring the database
// tables. Mapping to and from domain entities happens in the repositories.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(180);unique;not null"`
	Name         string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(25)"`
	Address      string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(20);not null"`
	Status       string `gorm:"type:varchar(20);not null;default:active"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
