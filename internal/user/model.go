package user

import "time"

type User struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	ExternalID string    `gorm:"uniqueIndex;size:64" json:"-"`
	Handle     string    `gorm:"uniqueIndex;size:32" json:"handle"`
	Name       string    `gorm:"size:64" json:"name"`
	Image      string    `gorm:"size:512" json:"image,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	Location   string    `gorm:"size:64" json:"location,omitempty"`
	Website    string    `gorm:"size:256" json:"website,omitempty"`
	Role       string    `gorm:"size:16;default:user" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}
