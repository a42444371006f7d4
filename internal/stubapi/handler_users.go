package stubapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func (s *Server) listUsers(c *gin.Context) {
	status := c.Query("status")
	users := s.users.Find(func(u model.User) bool {
		return status == "" || u.Status == status
	})
	if users == nil {
		users = []model.User{}
	}
	httputil.RespondWithSuccess(c, users)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, found := s.users.Get(id)
	if !found {
		notFound(c, "user")
		return
	}
	httputil.RespondWithSuccess(c, user)
}

func (s *Server) createUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if _, exists := s.userByEmail(req.Email); exists {
		badRequest(c, "email already registered")
		return
	}

	status := req.Status
	if status == "" {
		status = model.UserStatusActive
	}
	user, err := s.addUser(model.User{
		Email:  req.Email,
		Role:   req.Role,
		Status: status,
	}, req.Password)
	if err != nil {
		badRequest(c, "failed to create user")
		return
	}
	httputil.RespondWithMessage(c, user, "user created")
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, found := s.users.Get(id)
	if !found {
		notFound(c, "user")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Profile != nil {
		profile := *req.Profile
		profile.UserID = user.ID
		user.Profile = &profile
	}
	user.UpdatedAt = time.Now()
	s.users.Put(user)

	httputil.RespondWithMessage(c, user, "user updated")
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.users.Delete(id) {
		notFound(c, "user")
		return
	}
	s.mu.Lock()
	delete(s.passwords, id)
	s.mu.Unlock()
	httputil.RespondWithMessage(c, nil, "user deleted")
}
