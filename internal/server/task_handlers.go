package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhle/smarttask/internal/auth"
	"github.com/nhle/smarttask/internal/model"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	task, err := s.store.CreateTask(c.Request.Context(), model.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		UserID:      auth.UserID(c),
	})
	if err != nil {
		s.respondError(c, err, "Failed to create task.")
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.store.ListTasks(c.Request.Context(), auth.UserID(c))
	if err != nil {
		s.respondError(c, err, "Failed to fetch tasks.")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	task, err := s.store.UpdateTask(c.Request.Context(), auth.UserID(c), c.Param("id"), patch)
	if err != nil {
		s.respondError(c, err, "Failed to update task.")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.store.DeleteTask(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		s.respondError(c, err, "Failed to delete task.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
