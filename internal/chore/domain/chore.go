package domain

import "time"

// FrequencyType is the calendar unit of a chore's recurrence interval
type FrequencyType string

const (
	FrequencyDays   FrequencyType = "days"
	FrequencyWeeks  FrequencyType = "weeks"
	FrequencyMonths FrequencyType = "months"
	FrequencyYears  FrequencyType = "years"
)

// ParseFrequencyType maps a wire string onto a FrequencyType.
// The second return value is false for anything outside the enum.
func ParseFrequencyType(s string) (FrequencyType, bool) {
	switch FrequencyType(s) {
	case FrequencyDays, FrequencyWeeks, FrequencyMonths, FrequencyYears:
		return FrequencyType(s), true
	}
	return "", false
}

// ChoreDefinition is a recurring chore template owned by a single user
type ChoreDefinition struct {
	ID              string        `json:"id" gorm:"primaryKey"`
	UserID          string        `json:"user_id" gorm:"index;not null"`
	Name            string        `json:"name" gorm:"not null"`
	Details         string        `json:"details"`
	FrequencyAmount int           `json:"frequency_amount" gorm:"not null"`
	FrequencyType   FrequencyType `json:"frequency_type" gorm:"not null"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NextDue returns the due date of the occurrence that follows a completion
// at time `from`. Month and year arithmetic uses time.AddDate, which
// normalizes month-end overflow (Jan 31 + 1 month lands in early March).
func (d *ChoreDefinition) NextDue(from time.Time) time.Time {
	switch d.FrequencyType {
	case FrequencyWeeks:
		return from.AddDate(0, 0, 7*d.FrequencyAmount)
	case FrequencyMonths:
		return from.AddDate(0, d.FrequencyAmount, 0)
	case FrequencyYears:
		return from.AddDate(d.FrequencyAmount, 0, 0)
	default:
		return from.AddDate(0, 0, d.FrequencyAmount)
	}
}

// ChoreInstance is one concrete due occurrence of a ChoreDefinition.
// Name and Details are snapshotted from the definition at creation time,
// not live-linked.
type ChoreInstance struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	UserID            string    `json:"user_id" gorm:"index;not null"`
	ChoreDefinitionID string    `json:"chore_definition_id" gorm:"index;not null"`
	Name              string    `json:"name" gorm:"not null"`
	Details           string    `json:"details"`
	DueDate           time.Time `json:"due_date" gorm:"not null"`
	Completed         bool      `json:"completed" gorm:"default:false"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
