package usecase

import (
	"chores-backend/internal/chore/domain"
)

// ChoreUsecase defines the business logic over chore definitions and their
// due instances
type ChoreUsecase interface {
	// CreateChore validates and persists a new recurring chore together
	// with its first due instance
	CreateChore(userID string, req CreateChoreInput) (*domain.ChoreDefinition, error)

	// GetChoreByID retrieves a definition owned by userID
	GetChoreByID(userID, choreID string) (*domain.ChoreDefinition, error)

	// GetUserChores lists the definitions owned by userID
	GetUserChores(userID string) ([]*domain.ChoreDefinition, error)

	// UpdateChore applies partial edits to a definition owned by userID
	UpdateChore(userID, choreID string, updates ChoreUpdateInput) (*domain.ChoreDefinition, error)

	// DeleteChore removes a definition and all of its instances. Unknown
	// IDs and definitions owned by somebody else are a no-op.
	DeleteChore(userID, choreID string) error

	// GetUpcoming lists incomplete instances due within the lookahead
	// window, soonest first. Overdue instances are always included.
	GetUpcoming(userID string) ([]*domain.ChoreInstance, error)

	// CompleteInstance marks an instance done and schedules the next
	// occurrence. Unknown, foreign and already-completed instances are a
	// no-op.
	CompleteInstance(userID, instanceID string) error
}

// CreateChoreInput carries the validated-to-be fields of a new chore.
// StartDate is an RFC 3339 timestamp or a bare YYYY-MM-DD date.
type CreateChoreInput struct {
	Name            string
	Details         string
	FrequencyAmount int
	FrequencyType   string
	StartDate       string
}

// ChoreUpdateInput represents the fields that can be updated
type ChoreUpdateInput struct {
	Name            *string
	Details         *string
	FrequencyAmount *int
	FrequencyType   *string
}
