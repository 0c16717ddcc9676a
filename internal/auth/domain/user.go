package domain

import "time"

// User is the internal record for an externally authenticated person. One is
// created on the first successful token exchange for a never-seen identity
// and is immutable afterwards except for timestamps.
type User struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	ExternalID string    `json:"external_id" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
