package repository

import (
	"errors"
	"time"

	authdomain "chores-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) GetOrCreate(externalID, email string) (*authdomain.User, error) {
	user, err := r.findByExternal(externalID, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	now := time.Now()
	user = &authdomain.User{
		ID:         uuid.New().String(),
		ExternalID: externalID,
		Email:      email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.db.Create(user).Error; err != nil {
		// A concurrent first login for the same identity can win the
		// insert race; the unique indexes reject ours, and the row we
		// wanted now exists.
		if existing, lookupErr := r.findByExternal(externalID, email); lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) findByExternal(externalID, email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("external_id = ? AND email = ?", externalID, email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
