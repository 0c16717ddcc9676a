package delivery

import (
	"errors"
	"log"
	"net/http"

	"chores-backend/internal/chore/dto"
	"chores-backend/internal/chore/repository"
	"chores-backend/internal/chore/usecase"

	"github.com/gin-gonic/gin"
)

// ChoreHandler handles chore-related HTTP requests
type ChoreHandler struct {
	choreUsecase usecase.ChoreUsecase
}

// NewChoreHandler creates a new ChoreHandler
func NewChoreHandler(choreUsecase usecase.ChoreUsecase) *ChoreHandler {
	return &ChoreHandler{
		choreUsecase: choreUsecase,
	}
}

// GetUpcoming returns the authenticated user's due instances, soonest first
// GET /upcoming
func (h *ChoreHandler) GetUpcoming(c *gin.Context) {
	userID := c.GetString("userID")

	insts, err := h.choreUsecase.GetUpcoming(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]*dto.UpcomingResponse, 0, len(insts))
	for _, inst := range insts {
		resp = append(resp, dto.NewUpcomingResponse(inst))
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteUpcoming completes one instance and schedules the next occurrence.
// The response is an empty object whether or not the id existed.
// POST /upcoming/:id
func (h *ChoreHandler) CompleteUpcoming(c *gin.Context) {
	userID := c.GetString("userID")
	instanceID := c.Param("id")

	if err := h.choreUsecase.CompleteInstance(userID, instanceID); err != nil {
		if errors.Is(err, repository.ErrDefinitionMissing) {
			log.Printf("[ERROR] completing instance %s: %v", instanceID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// GetChores returns all chore definitions owned by the authenticated user
// GET /chores
func (h *ChoreHandler) GetChores(c *gin.Context) {
	userID := c.GetString("userID")

	defs, err := h.choreUsecase.GetUserChores(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]*dto.ChoreResponse, 0, len(defs))
	for _, def := range defs {
		resp = append(resp, dto.NewChoreResponse(def))
	}
	c.JSON(http.StatusOK, resp)
}

// GetChoreByID returns a specific chore definition
// GET /chores/:id
func (h *ChoreHandler) GetChoreByID(c *gin.Context) {
	userID := c.GetString("userID")
	choreID := c.Param("id")

	def, err := h.choreUsecase.GetChoreByID(userID, choreID)
	if err != nil {
		if errors.Is(err, usecase.ErrChoreNotFound) {
			c.String(http.StatusNotFound, "chore not found")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewChoreResponse(def))
}

// CreateChore creates a new recurring chore and its first due instance
// POST /chores
func (h *ChoreHandler) CreateChore(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	def, err := h.choreUsecase.CreateChore(userID, usecase.CreateChoreInput{
		Name:            req.Name,
		Details:         req.Details,
		FrequencyAmount: req.FrequencyAmount,
		FrequencyType:   req.FrequencyType,
		StartDate:       req.StartDate,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.NewChoreResponse(def))
}

// UpdateChore updates an existing chore definition. Instances already on the
// books keep their snapshot; the next successor picks up the edits.
// PUT /chores/:id
func (h *ChoreHandler) UpdateChore(c *gin.Context) {
	userID := c.GetString("userID")
	choreID := c.Param("id")

	var req dto.UpdateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	def, err := h.choreUsecase.UpdateChore(userID, choreID, usecase.ChoreUpdateInput{
		Name:            req.Name,
		Details:         req.Details,
		FrequencyAmount: req.FrequencyAmount,
		FrequencyType:   req.FrequencyType,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrChoreNotFound) {
			c.String(http.StatusNotFound, "chore not found")
			return
		}
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewChoreResponse(def))
}

// DeleteChore deletes a chore definition and every one of its instances.
// Deleting an unknown id is a no-op.
// DELETE /chores/:id
func (h *ChoreHandler) DeleteChore(c *gin.Context) {
	userID := c.GetString("userID")
	choreID := c.Param("id")

	if err := h.choreUsecase.DeleteChore(userID, choreID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
