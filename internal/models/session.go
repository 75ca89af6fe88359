package models

import "time"

// Session is a server-side login session, referenced by the session cookie.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Username  string    `json:"username" gorm:"index;size:40"`
	ExpiresAt time.Time `json:"expires_at"`
	Created   time.Time `json:"created" gorm:"autoCreateTime"`
}
