package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nhle/smarttask/internal/auth"
	"github.com/nhle/smarttask/internal/model"
)

type createJournalRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

func (s *Server) handleCreateJournalEntry(c *gin.Context) {
	var req createJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		badRequest(c, "Content is required.")
		return
	}

	title := req.Title
	if title == "" {
		title = time.Now().UTC().Format(time.RFC3339)
	}

	entry, err := s.store.CreateJournalEntry(c.Request.Context(), model.JournalEntry{
		Title:   title,
		Content: req.Content,
		Mood:    req.Mood,
		UserID:  auth.UserID(c),
	})
	if err != nil {
		s.respondError(c, err, "Failed to create journal entry.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleListJournalEntries(c *gin.Context) {
	entries, err := s.store.ListJournalEntries(c.Request.Context(), auth.UserID(c))
	if err != nil {
		s.respondError(c, err, "Failed to fetch journal entries.")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleGetJournalEntry(c *gin.Context) {
	entry, err := s.store.GetJournalEntry(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		s.respondError(c, err, "Failed to fetch journal entry.")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleDeleteJournalEntry(c *gin.Context) {
	if err := s.store.DeleteJournalEntry(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		s.respondError(c, err, "Failed to delete journal entry.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
