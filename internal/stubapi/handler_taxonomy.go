package stubapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func (s *Server) listGoals(c *gin.Context) {
	httputil.RespondWithSuccess(c, s.goals.List())
}

func (s *Server) getGoal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	goal, found := s.goals.Get(id)
	if !found {
		notFound(c, "goal")
		return
	}
	httputil.RespondWithSuccess(c, goal)
}

func (s *Server) createGoal(c *gin.Context) {
	var req model.UpsertGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	now := time.Now()
	goal := model.Goal{
		Base:        model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:        req.Name,
		Description: req.Description,
	}
	s.goals.Put(goal)
	httputil.RespondWithMessage(c, goal, "goal created")
}

func (s *Server) updateGoal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	goal, found := s.goals.Get(id)
	if !found {
		notFound(c, "goal")
		return
	}
	var req model.UpsertGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	goal.Name = req.Name
	goal.Description = req.Description
	goal.UpdatedAt = time.Now()
	s.goals.Put(goal)
	httputil.RespondWithMessage(c, goal, "goal updated")
}

func (s *Server) deleteGoal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.goals.Delete(id) {
		notFound(c, "goal")
		return
	}
	httputil.RespondWithMessage(c, nil, "goal deleted")
}

func (s *Server) listInterests(c *gin.Context) {
	httputil.RespondWithSuccess(c, s.interests.List())
}

func (s *Server) getInterest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	interest, found := s.interests.Get(id)
	if !found {
		notFound(c, "interest")
		return
	}
	httputil.RespondWithSuccess(c, interest)
}

func (s *Server) createInterest(c *gin.Context) {
	var req model.UpsertInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	now := time.Now()
	interest := model.Interest{
		Base:     model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:     req.Name,
		Category: req.Category,
	}
	s.interests.Put(interest)
	httputil.RespondWithMessage(c, interest, "interest created")
}

func (s *Server) updateInterest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	interest, found := s.interests.Get(id)
	if !found {
		notFound(c, "interest")
		return
	}
	var req model.UpsertInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	interest.Name = req.Name
	interest.Category = req.Category
	interest.UpdatedAt = time.Now()
	s.interests.Put(interest)
	httputil.RespondWithMessage(c, interest, "interest updated")
}

func (s *Server) deleteInterest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.interests.Delete(id) {
		notFound(c, "interest")
		return
	}
	httputil.RespondWithMessage(c, nil, "interest deleted")
}
