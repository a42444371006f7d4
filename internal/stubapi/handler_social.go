package stubapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
)

func (s *Server) listMatches(c *gin.Context) {
	userID := c.Query("user_id")
	matches := s.matches.Find(func(m model.Match) bool {
		if userID == "" {
			return true
		}
		return m.UserAID.String() == userID || m.UserBID.String() == userID
	})
	if matches == nil {
		matches = []model.Match{}
	}
	httputil.RespondWithSuccess(c, matches)
}

// potentialMatches returns active users the subject has not swiped on yet,
// with a deterministic placeholder score. Real ranking lives in the
// production backend.
func (s *Server) potentialMatches(c *gin.Context) {
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}
	if _, found := s.users.Get(userID); !found {
		notFound(c, "user")
		return
	}

	swiped := make(map[uuid.UUID]bool)
	for _, sw := range s.swipes.Find(func(sw model.Swipe) bool { return sw.SwiperID == userID }) {
		swiped[sw.TargetID] = true
	}

	var candidates []model.PotentialMatch
	for _, u := range s.users.List() {
		if u.ID == userID || u.Status != model.UserStatusActive || swiped[u.ID] {
			continue
		}
		score := 0.5
		if u.Profile != nil && len(u.Profile.InterestIDs) > 0 {
			score = 0.8
		}
		candidates = append(candidates, model.PotentialMatch{User: u, Score: score})
	}
	if candidates == nil {
		candidates = []model.PotentialMatch{}
	}
	httputil.RespondWithSuccess(c, candidates)
}

func (s *Server) unmatch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	match, found := s.matches.Get(id)
	if !found {
		notFound(c, "match")
		return
	}
	now := time.Now()
	match.Status = model.MatchStatusUnmatched
	match.EndedAt = &now
	match.UpdatedAt = now
	s.matches.Put(match)
	httputil.RespondWithMessage(c, match, "unmatched")
}

func (s *Server) listMessages(c *gin.Context) {
	matchID := c.Query("match_id")
	messages := s.messages.Find(func(m model.Message) bool {
		return matchID == "" || m.MatchID.String() == matchID
	})
	if messages == nil {
		messages = []model.Message{}
	}
	httputil.RespondWithSuccess(c, messages)
}

func (s *Server) createMessage(c *gin.Context) {
	var req model.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	matchID, _ := uuid.Parse(req.MatchID)
	senderID, _ := uuid.Parse(req.SenderID)
	if _, found := s.matches.Get(matchID); !found {
		notFound(c, "match")
		return
	}

	now := time.Now()
	msg := model.Message{
		Base:     model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		MatchID:  matchID,
		SenderID: senderID,
		Body:     req.Body,
		SentAt:   now,
	}
	s.messages.Put(msg)
	httputil.RespondWithMessage(c, msg, "message sent")
}

func (s *Server) deleteMessage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.messages.Delete(id) {
		notFound(c, "message")
		return
	}
	httputil.RespondWithMessage(c, nil, "message deleted")
}

func (s *Server) listSwipes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	swiperID := c.Query("swiper_id")

	items, total := s.swipes.Page(page, limit, func(sw model.Swipe) bool {
		return swiperID == "" || sw.SwiperID.String() == swiperID
	})
	httputil.RespondWithPagination(c, items, page, limit, total)
}

func (s *Server) createSwipe(c *gin.Context) {
	var req model.CreateSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	swiperID, _ := uuid.Parse(req.SwiperID)
	targetID, _ := uuid.Parse(req.TargetID)
	if swiperID == targetID {
		badRequest(c, "swiper and target must be different users")
		return
	}

	now := time.Now()
	swipe := model.Swipe{
		Base:      model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		SwiperID:  swiperID,
		TargetID:  targetID,
		Direction: req.Direction,
	}

	// A like that meets an earlier reverse like becomes a match.
	if req.Direction == model.SwipeDirectionLike || req.Direction == model.SwipeDirectionSuperlike {
		reverse := s.swipes.Find(func(sw model.Swipe) bool {
			return sw.SwiperID == targetID && sw.TargetID == swiperID &&
				sw.Direction != model.SwipeDirectionPass
		})
		if len(reverse) > 0 {
			swipe.IsMatch = true
			s.matches.Put(model.Match{
				Base:      model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
				UserAID:   targetID,
				UserBID:   swiperID,
				Status:    model.MatchStatusActive,
				MatchedAt: now,
			})
		}
	}

	s.swipes.Put(swipe)
	httputil.RespondWithMessage(c, swipe, "swipe recorded")
}
