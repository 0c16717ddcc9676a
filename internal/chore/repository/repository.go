package repository

import (
	"errors"
	"time"

	"chores-backend/internal/chore/domain"
)

// ErrDefinitionMissing reports a chore instance whose parent definition no
// longer exists. Instances are only ever deleted together with their
// definition, so hitting this means the data is corrupt.
var ErrDefinitionMissing = errors.New("chore instance references a missing definition")

// DefinitionRepository defines data access for chore definitions
type DefinitionRepository interface {
	// Create persists a definition together with its first instance in a
	// single transaction
	Create(def *domain.ChoreDefinition, first *domain.ChoreInstance) error

	// FindByID finds a definition by ID, returning (nil, nil) on a miss
	FindByID(id string) (*domain.ChoreDefinition, error)

	// FindByUserID lists all definitions owned by a user
	FindByUserID(userID string) ([]*domain.ChoreDefinition, error)

	// Update updates an existing definition
	Update(def *domain.ChoreDefinition) error

	// Delete removes a definition and all of its instances, completed or
	// not, in a single transaction. Unknown IDs are a no-op.
	Delete(id string) error
}

// InstanceRepository defines data access for chore instances
type InstanceRepository interface {
	// FindByID finds an instance by ID, returning (nil, nil) on a miss
	FindByID(id string) (*domain.ChoreInstance, error)

	// FindByDefinitionID lists every instance of a definition
	FindByDefinitionID(defID string) ([]*domain.ChoreInstance, error)

	// FindUpcoming lists incomplete instances owned by userID that are due
	// at or before `until`, soonest first. Overdue instances stay in the
	// result until completed.
	FindUpcoming(userID string, until time.Time) ([]*domain.ChoreInstance, error)

	// Complete marks an instance completed and creates its successor in one
	// transaction. The successor's due date is derived from `now` and the
	// parent definition's frequency; its name and details are snapshotted
	// from the definition as it is at completion time. Returns the successor,
	// or nil when the ID is unknown or the instance was already completed
	// (both are no-ops). A missing parent definition fails the transaction
	// with ErrDefinitionMissing.
	Complete(id string, now time.Time) (*domain.ChoreInstance, error)
}
