package repository

import (
	"errors"
	"fmt"
	"time"

	"chores-backend/internal/chore/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormDefinitionRepository implements DefinitionRepository using GORM
type gormDefinitionRepository struct {
	db *gorm.DB
}

// NewGormDefinitionRepository creates a new GORM-based DefinitionRepository
func NewGormDefinitionRepository(db *gorm.DB) DefinitionRepository {
	return &gormDefinitionRepository{db: db}
}

func (r *gormDefinitionRepository) Create(def *domain.ChoreDefinition, first *domain.ChoreInstance) error {
	now := time.Now()
	if def.ID == "" {
		def.ID = uuid.New().String()
	}
	def.CreatedAt = now
	def.UpdatedAt = now

	if first.ID == "" {
		first.ID = uuid.New().String()
	}
	first.ChoreDefinitionID = def.ID
	first.UserID = def.UserID
	first.CreatedAt = now
	first.UpdatedAt = now

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(def).Error; err != nil {
			return err
		}
		return tx.Create(first).Error
	})
}

func (r *gormDefinitionRepository) FindByID(id string) (*domain.ChoreDefinition, error) {
	var def domain.ChoreDefinition
	err := r.db.Where("id = ?", id).First(&def).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

func (r *gormDefinitionRepository) FindByUserID(userID string) ([]*domain.ChoreDefinition, error) {
	var defs []*domain.ChoreDefinition
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&defs).Error
	return defs, err
}

func (r *gormDefinitionRepository) Update(def *domain.ChoreDefinition) error {
	def.UpdatedAt = time.Now()
	return r.db.Save(def).Error
}

func (r *gormDefinitionRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chore_definition_id = ?", id).Delete(&domain.ChoreInstance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.ChoreDefinition{}, "id = ?", id).Error
	})
}

// gormInstanceRepository implements InstanceRepository using GORM
type gormInstanceRepository struct {
	db *gorm.DB
}

// NewGormInstanceRepository creates a new GORM-based InstanceRepository
func NewGormInstanceRepository(db *gorm.DB) InstanceRepository {
	return &gormInstanceRepository{db: db}
}

func (r *gormInstanceRepository) FindByID(id string) (*domain.ChoreInstance, error) {
	var inst domain.ChoreInstance
	err := r.db.Where("id = ?", id).First(&inst).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inst, nil
}

func (r *gormInstanceRepository) FindByDefinitionID(defID string) ([]*domain.ChoreInstance, error) {
	var insts []*domain.ChoreInstance
	err := r.db.Where("chore_definition_id = ?", defID).Order("due_date ASC").Find(&insts).Error
	return insts, err
}

func (r *gormInstanceRepository) FindUpcoming(userID string, until time.Time) ([]*domain.ChoreInstance, error) {
	var insts []*domain.ChoreInstance
	err := r.db.Where("user_id = ? AND completed = ? AND due_date <= ?", userID, false, until).
		Order("due_date ASC").Find(&insts).Error
	return insts, err
}

func (r *gormInstanceRepository) Complete(id string, now time.Time) (*domain.ChoreInstance, error) {
	var successor *domain.ChoreInstance
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Conditional update serializes concurrent completers: the loser
		// affects zero rows and must not create a second successor.
		res := tx.Model(&domain.ChoreInstance{}).
			Where("id = ? AND completed = ?", id, false).
			Updates(map[string]interface{}{"completed": true, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var inst domain.ChoreInstance
		if err := tx.Where("id = ?", id).First(&inst).Error; err != nil {
			return err
		}

		var def domain.ChoreDefinition
		if err := tx.Where("id = ?", inst.ChoreDefinitionID).First(&def).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: instance %s, definition %s", ErrDefinitionMissing, inst.ID, inst.ChoreDefinitionID)
			}
			return err
		}

		successor = &domain.ChoreInstance{
			ID:                uuid.New().String(),
			UserID:            def.UserID,
			ChoreDefinitionID: def.ID,
			Name:              def.Name,
			Details:           def.Details,
			DueDate:           def.NextDue(now),
			Completed:         false,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return tx.Create(successor).Error
	})
	if err != nil {
		return nil, err
	}
	return successor, nil
}
