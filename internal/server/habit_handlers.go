package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nhle/smarttask/internal/auth"
	"github.com/nhle/smarttask/internal/model"
)

// createHabitRequest accepts "title" as an alias for "name".
type createHabitRequest struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Frequency []string `json:"frequency"`
	Streak    int      `json:"streak"`
}

func (s *Server) handleCreateHabit(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.Title)
	}
	if name == "" {
		badRequest(c, "Habit name is required.")
		return
	}

	habit, err := s.store.CreateHabit(c.Request.Context(), model.Habit{
		Name:      name,
		Frequency: req.Frequency,
		Streak:    req.Streak,
		UserID:    auth.UserID(c),
	})
	if err != nil {
		s.respondError(c, err, "Failed to create habit.")
		return
	}
	c.JSON(http.StatusCreated, habit)
}

func (s *Server) handleListHabits(c *gin.Context) {
	habits, err := s.store.ListHabits(c.Request.Context(), auth.UserID(c))
	if err != nil {
		s.respondError(c, err, "Failed to fetch habits.")
		return
	}
	c.JSON(http.StatusOK, habits)
}

func (s *Server) handleUpdateHabit(c *gin.Context) {
	var patch model.HabitPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	habit, err := s.store.UpdateHabit(c.Request.Context(), auth.UserID(c), c.Param("id"), patch)
	if err != nil {
		s.respondError(c, err, "Failed to update habit.")
		return
	}
	c.JSON(http.StatusOK, habit)
}

func (s *Server) handleDeleteHabit(c *gin.Context) {
	if err := s.store.DeleteHabit(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		s.respondError(c, err, "Failed to delete habit.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted"})
}
