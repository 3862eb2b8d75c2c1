package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhle/smarttask/internal/auth"
	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/store"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	session, err := s.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered."})
		return
	case errors.Is(err, auth.ErrMissingFields):
		badRequest(c, "Email and password are required.")
		return
	case err != nil:
		s.respondError(c, err, "Signup failed.")
		return
	}

	s.setAuthCookie(c, session.Token)
	c.JSON(http.StatusCreated, gin.H{"user": session.User})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	session, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}
	if err != nil {
		s.respondError(c, err, "Login failed.")
		return
	}

	s.setAuthCookie(c, session.Token)
	c.JSON(http.StatusOK, gin.H{"user": session.User})
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", s.cfg.SecureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (s *Server) handleGetMe(c *gin.Context) {
	user, err := s.store.GetUserByID(c.Request.Context(), auth.UserID(c))
	if err != nil {
		s.respondError(c, err, "Could not fetch profile.")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleUpdateMe(c *gin.Context) {
	var update model.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	user, err := s.store.UpdateUserProfile(c.Request.Context(), auth.UserID(c), update)
	if err != nil {
		s.respondError(c, err, "Could not update profile.")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleForgotPassword(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	token, err := s.auth.ForgotPassword(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Email not found."})
		return
	}
	if err != nil {
		s.respondError(c, err, "Failed to generate reset token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reset token (dev mode)", "resetToken": token})
}

func (s *Server) handleResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	err := s.auth.ResetPassword(c.Request.Context(), req.Token, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		badRequest(c, "Invalid or expired token.")
		return
	case errors.Is(err, auth.ErrMissingFields):
		badRequest(c, "Password is required.")
		return
	case err != nil:
		s.respondError(c, err, "Could not reset password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful."})
}

func (s *Server) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, int(s.auth.TTL().Seconds()), "/", "", s.cfg.SecureCookies, true)
}
