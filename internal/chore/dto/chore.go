package dto

import (
	"time"

	"chores-backend/internal/chore/domain"
)

// CreateChoreRequest is the POST /chores body. Field names are the client's
// camelCase aliases; startDate is accepted here and never echoed back.
type CreateChoreRequest struct {
	Name            string `json:"name" binding:"required"`
	Details         string `json:"details"`
	FrequencyAmount int    `json:"frequencyAmount" binding:"required"`
	FrequencyType   string `json:"frequencyType" binding:"required"`
	StartDate       string `json:"startDate" binding:"required"`
}

// UpdateChoreRequest is the PUT /chores/:id body; every field is optional.
type UpdateChoreRequest struct {
	Name            *string `json:"name"`
	Details         *string `json:"details"`
	FrequencyAmount *int    `json:"frequencyAmount"`
	FrequencyType   *string `json:"frequencyType"`
}

// ChoreResponse is the wire shape of a ChoreDefinition. The id is
// response-only; clients never supply one on create.
type ChoreResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Details         string `json:"details"`
	FrequencyAmount int    `json:"frequencyAmount"`
	FrequencyType   string `json:"frequencyType"`
}

func NewChoreResponse(def *domain.ChoreDefinition) *ChoreResponse {
	return &ChoreResponse{
		ID:              def.ID,
		Name:            def.Name,
		Details:         def.Details,
		FrequencyAmount: def.FrequencyAmount,
		FrequencyType:   string(def.FrequencyType),
	}
}

// UpcomingResponse is one element of the GET /upcoming listing.
type UpcomingResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
	Details string `json:"details"`
}

func NewUpcomingResponse(inst *domain.ChoreInstance) *UpcomingResponse {
	return &UpcomingResponse{
		ID:      inst.ID,
		Name:    inst.Name,
		DueDate: inst.DueDate.Format(time.RFC3339),
		Details: inst.Details,
	}
}
