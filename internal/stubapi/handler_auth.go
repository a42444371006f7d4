package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func (s *Server) login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	user, found := s.userByEmail(req.Email)
	if !found {
		unauthorized(c, "invalid credentials")
		return
	}
	hash, ok := s.passwordHash(user.ID)
	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		unauthorized(c, "invalid credentials")
		return
	}
	if user.Status != model.UserStatusActive {
		unauthorized(c, "account is not active")
		return
	}

	token, err := s.mintToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httputil.Response{Success: false, Message: "failed to issue token"})
		return
	}

	httputil.RespondWithSuccess(c, model.LoginResponse{Token: token, User: user})
}

func (s *Server) logout(c *gin.Context) {
	// Tokens are stateless; logout is an acknowledgment.
	httputil.RespondWithMessage(c, nil, "logged out")
}

func (s *Server) me(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		unauthorized(c, "invalid token")
		return
	}
	user, found := s.users.Get(userID)
	if !found {
		notFound(c, "user")
		return
	}
	httputil.RespondWithSuccess(c, user)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Message: message, Error: message})
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, httputil.Response{Success: false, Message: message, Error: message})
}

func notFound(c *gin.Context, resource string) {
	message := resource + " not found"
	c.JSON(http.StatusNotFound, httputil.Response{Success: false, Message: message, Error: message})
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
