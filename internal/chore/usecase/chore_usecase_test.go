package usecase

import (
	"path/filepath"
	"testing"
	"time"

	"chores-backend/internal/chore/domain"
	"chores-backend/internal/chore/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupUsecase(t *testing.T) (ChoreUsecase, repository.InstanceRepository, *gorm.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ChoreDefinition{}, &domain.ChoreInstance{}))

	defRepo := repository.NewGormDefinitionRepository(db)
	instRepo := repository.NewGormInstanceRepository(db)
	return NewChoreUsecase(defRepo, instRepo), instRepo, db
}

func validInput() CreateChoreInput {
	return CreateChoreInput{
		Name:            "Water plants",
		Details:         "balcony first",
		FrequencyAmount: 3,
		FrequencyType:   "days",
		StartDate:       "2025-06-10",
	}
}

func TestCreateChore(t *testing.T) {
	uc, instRepo, _ := setupUsecase(t)

	def, err := uc.CreateChore("user-1", validInput())
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyDays, def.FrequencyType)
	assert.Equal(t, 3, def.FrequencyAmount)

	insts, err := instRepo.FindByDefinitionID(def.ID)
	require.NoError(t, err)
	require.Len(t, insts, 1)
	assert.True(t, insts[0].DueDate.Equal(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)))
}

func TestCreateChoreAcceptsRFC3339StartDate(t *testing.T) {
	uc, instRepo, _ := setupUsecase(t)

	input := validInput()
	input.StartDate = "2025-06-10T08:30:00Z"
	def, err := uc.CreateChore("user-1", input)
	require.NoError(t, err)

	insts, err := instRepo.FindByDefinitionID(def.ID)
	require.NoError(t, err)
	require.Len(t, insts, 1)
	assert.True(t, insts[0].DueDate.Equal(time.Date(2025, time.June, 10, 8, 30, 0, 0, time.UTC)))
}

func TestCreateChoreValidation(t *testing.T) {
	uc, _, db := setupUsecase(t)

	tests := []struct {
		name   string
		mutate func(*CreateChoreInput)
	}{
		{"zero amount", func(in *CreateChoreInput) { in.FrequencyAmount = 0 }},
		{"negative amount", func(in *CreateChoreInput) { in.FrequencyAmount = -2 }},
		{"unknown frequency type", func(in *CreateChoreInput) { in.FrequencyType = "fortnights" }},
		{"unparseable start date", func(in *CreateChoreInput) { in.StartDate = "next tuesday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := uc.CreateChore("user-1", input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// validation failures must not leave partial state behind
	var defCount, instCount int64
	require.NoError(t, db.Model(&domain.ChoreDefinition{}).Count(&defCount).Error)
	require.NoError(t, db.Model(&domain.ChoreInstance{}).Count(&instCount).Error)
	assert.Zero(t, defCount)
	assert.Zero(t, instCount)
}

func TestGetChoreByIDScoping(t *testing.T) {
	uc, _, _ := setupUsecase(t)

	def, err := uc.CreateChore("user-1", validInput())
	require.NoError(t, err)

	got, err := uc.GetChoreByID("user-1", def.ID)
	require.NoError(t, err)
	assert.Equal(t, def.ID, got.ID)

	_, err = uc.GetChoreByID("user-2", def.ID)
	assert.ErrorIs(t, err, ErrChoreNotFound)

	_, err = uc.GetChoreByID("user-1", "no-such-id")
	assert.ErrorIs(t, err, ErrChoreNotFound)
}

func TestGetUserChoresScopedToOwner(t *testing.T) {
	uc, _, _ := setupUsecase(t)

	_, err := uc.CreateChore("user-1", validInput())
	require.NoError(t, err)
	other := validInput()
	other.Name = "Take out trash"
	_, err = uc.CreateChore("user-2", other)
	require.NoError(t, err)

	mine, err := uc.GetUserChores("user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Water plants", mine[0].Name)
}

func TestUpdateChore(t *testing.T) {
	uc, _, _ := setupUsecase(t)

	def, err := uc.CreateChore("user-1", validInput())
	require.NoError(t, err)

	name := "Water everything"
	amount := 5
	updated, err := uc.UpdateChore("user-1", def.ID, ChoreUpdateInput{Name: &name, FrequencyAmount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "Water everything", updated.Name)
	assert.Equal(t, 5, updated.FrequencyAmount)

	bad := 0
	_, err = uc.UpdateChore("user-1", def.ID, ChoreUpdateInput{FrequencyAmount: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.UpdateChore("user-2", def.ID, ChoreUpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrChoreNotFound)
}

func TestDeleteChoreScoping(t *testing.T) {
	uc, _, _ := setupUsecase(t)

	def, err := uc.CreateChore("user-1", validInput())
	require.NoError(t, err)

	// deleting somebody else's chore is a silent no-op
	require.NoError(t, uc.DeleteChore("user-2", def.ID))
	_, err = uc.GetChoreByID("user-1", def.ID)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteChore("user-1", def.ID))
	_, err = uc.GetChoreByID("user-1", def.ID)
	assert.ErrorIs(t, err, ErrChoreNotFound)

	// and deleting it again stays a no-op
	require.NoError(t, uc.DeleteChore("user-1", def.ID))
}

func TestGetUpcomingWindow(t *testing.T) {
	uc, _, _ := setupUsecase(t)

	overdue := validInput()
	overdue.Name = "long overdue"
	overdue.StartDate = time.Now().AddDate(0, 0, -40).Format(time.RFC3339)
	_, err := uc.CreateChore("user-1", overdue)
	require.NoError(t, err)

	soon := validInput()
	soon.Name = "due soon"
	soon.StartDate = time.Now().AddDate(0, 0, 2).Format(time.RFC3339)
	_, err = uc.CreateChore("user-1", soon)
	require.NoError(t, err)

	distant := validInput()
	distant.Name = "due next month"
	distant.StartDate = time.Now().AddDate(0, 0, 20).Format(time.RFC3339)
	_, err = uc.CreateChore("user-1", distant)
	require.NoError(t, err)

	upcoming, err := uc.GetUpcoming("user-1")
	require.NoError(t, err)

	names := make([]string, 0, len(upcoming))
	for _, inst := range upcoming {
		names = append(names, inst.Name)
	}
	assert.Equal(t, []string{"long overdue", "due soon"}, names)
}

func TestCompleteInstanceScoping(t *testing.T) {
	uc, instRepo, _ := setupUsecase(t)

	def, err := uc.CreateChore("user-1", validInput())
	require.NoError(t, err)
	insts, err := instRepo.FindByDefinitionID(def.ID)
	require.NoError(t, err)
	require.Len(t, insts, 1)

	// a foreign user completing my instance is a no-op
	require.NoError(t, uc.CompleteInstance("user-2", insts[0].ID))
	inst, err := instRepo.FindByID(insts[0].ID)
	require.NoError(t, err)
	assert.False(t, inst.Completed)

	// unknown ids are a no-op as well
	require.NoError(t, uc.CompleteInstance("user-1", "no-such-id"))

	require.NoError(t, uc.CompleteInstance("user-1", insts[0].ID))
	all, err := instRepo.FindByDefinitionID(def.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
