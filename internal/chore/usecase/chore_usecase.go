package usecase

import (
	"errors"
	"fmt"
	"time"

	"chores-backend/internal/chore/domain"
	"chores-backend/internal/chore/repository"
)

var (
	ErrChoreNotFound = errors.New("chore not found")
	ErrValidation    = errors.New("validation failed")
)

// UpcomingWindow is how far ahead of now GetUpcoming looks.
const UpcomingWindow = 14 * 24 * time.Hour

// choreUsecase implements ChoreUsecase
type choreUsecase struct {
	defRepo  repository.DefinitionRepository
	instRepo repository.InstanceRepository
}

// NewChoreUsecase creates a new instance of choreUsecase
func NewChoreUsecase(defRepo repository.DefinitionRepository, instRepo repository.InstanceRepository) ChoreUsecase {
	return &choreUsecase{
		defRepo:  defRepo,
		instRepo: instRepo,
	}
}

func (u *choreUsecase) CreateChore(userID string, req CreateChoreInput) (*domain.ChoreDefinition, error) {
	freq, amount, err := validateFrequency(req.FrequencyType, req.FrequencyAmount)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	def := &domain.ChoreDefinition{
		UserID:          userID,
		Name:            req.Name,
		Details:         req.Details,
		FrequencyAmount: amount,
		FrequencyType:   freq,
	}
	first := &domain.ChoreInstance{
		Name:    def.Name,
		Details: def.Details,
		DueDate: startDate,
	}

	if err := u.defRepo.Create(def, first); err != nil {
		return nil, err
	}
	return def, nil
}

func (u *choreUsecase) GetChoreByID(userID, choreID string) (*domain.ChoreDefinition, error) {
	def, err := u.defRepo.FindByID(choreID)
	if err != nil {
		return nil, err
	}
	// Another user's chore reads as absent rather than forbidden, so IDs
	// cannot be probed across accounts.
	if def == nil || def.UserID != userID {
		return nil, ErrChoreNotFound
	}
	return def, nil
}

func (u *choreUsecase) GetUserChores(userID string) ([]*domain.ChoreDefinition, error) {
	return u.defRepo.FindByUserID(userID)
}

func (u *choreUsecase) UpdateChore(userID, choreID string, updates ChoreUpdateInput) (*domain.ChoreDefinition, error) {
	def, err := u.GetChoreByID(userID, choreID)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		def.Name = *updates.Name
	}
	if updates.Details != nil {
		def.Details = *updates.Details
	}
	freqType := string(def.FrequencyType)
	if updates.FrequencyType != nil {
		freqType = *updates.FrequencyType
	}
	amount := def.FrequencyAmount
	if updates.FrequencyAmount != nil {
		amount = *updates.FrequencyAmount
	}
	freq, amount, err := validateFrequency(freqType, amount)
	if err != nil {
		return nil, err
	}
	def.FrequencyType = freq
	def.FrequencyAmount = amount

	if err := u.defRepo.Update(def); err != nil {
		return nil, err
	}
	return def, nil
}

func (u *choreUsecase) DeleteChore(userID, choreID string) error {
	def, err := u.defRepo.FindByID(choreID)
	if err != nil {
		return err
	}
	if def == nil || def.UserID != userID {
		return nil
	}
	return u.defRepo.Delete(def.ID)
}

func (u *choreUsecase) GetUpcoming(userID string) ([]*domain.ChoreInstance, error) {
	until := time.Now().Add(UpcomingWindow)
	return u.instRepo.FindUpcoming(userID, until)
}

func (u *choreUsecase) CompleteInstance(userID, instanceID string) error {
	inst, err := u.instRepo.FindByID(instanceID)
	if err != nil {
		return err
	}
	if inst == nil || inst.UserID != userID {
		return nil
	}
	_, err = u.instRepo.Complete(inst.ID, time.Now())
	return err
}

func validateFrequency(freqType string, amount int) (domain.FrequencyType, int, error) {
	freq, ok := domain.ParseFrequencyType(freqType)
	if !ok {
		return "", 0, fmt.Errorf("%w: frequencyType must be one of days, weeks, months, years", ErrValidation)
	}
	if amount < 1 {
		return "", 0, fmt.Errorf("%w: frequencyAmount must be at least 1", ErrValidation)
	}
	return freq, amount, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: startDate must be RFC 3339 or YYYY-MM-DD", ErrValidation)
}
