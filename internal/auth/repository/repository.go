package repository

import authdomain "chores-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetOrCreate returns the user for an external identity, creating the
	// record on first sight. Safe to call concurrently for the same
	// identity: a lost insert race against the unique indexes falls back
	// to re-reading the winning row.
	GetOrCreate(externalID, email string) (*authdomain.User, error)

	// FindByID finds a user by internal id, returning (nil, nil) on a miss
	FindByID(id string) (*authdomain.User, error)
}
