package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nhle/smarttask/internal/model"
)

type suggestReply struct {
	Reply      string `json:"reply"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

func (s *Server) handleSuggest(c *gin.Context) {
	var req model.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	result, err := s.assistant.Suggest(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		s.logger.Error("suggestion failed", zap.String("mode", string(req.Mode)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI processing failed."})
		return
	}

	if result.Reorder != nil {
		c.JSON(http.StatusOK, result.Reorder)
		return
	}

	c.JSON(http.StatusOK, suggestReply{
		Reply:      result.Reply,
		Message:    result.Reply,
		Suggestion: result.Reply,
	})
}
