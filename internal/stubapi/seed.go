package stubapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/model"
)

func (s *Server) seedAdmin() error {
	_, err := s.addUser(model.User{
		Email:         s.cfg.Seed.AdminEmail,
		Role:          model.UserRoleAdmin,
		Status:        model.UserStatusActive,
		EmailVerified: true,
	}, s.cfg.Seed.AdminPassword)
	return err
}

// seedDemo fills the stores with enough connected data to exercise every
// console screen: members with profiles and photos, mutual swipes producing
// a match with a conversation, an open report, plans and balances.
func (s *Server) seedDemo() {
	now := time.Now()

	goalNames := []string{"Long-term partner", "Something casual", "New friends", "Still figuring it out"}
	goalIDs := make([]uuid.UUID, 0, len(goalNames))
	for _, name := range goalNames {
		g := model.Goal{
			Base: model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name: name,
		}
		s.goals.Put(g)
		goalIDs = append(goalIDs, g.ID)
	}

	interests := map[string]string{
		"Hiking": "outdoors", "Jazz": "music", "Sushi": "food",
		"Climbing": "outdoors", "Cinema": "culture", "Running": "sports",
	}
	interestIDs := make([]uuid.UUID, 0, len(interests))
	for name, category := range interests {
		i := model.Interest{
			Base:     model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:     name,
			Category: category,
		}
		s.interests.Put(i)
		interestIDs = append(interestIDs, i.ID)
	}

	type demoMember struct {
		name   string
		city   string
		gender string
		years  int
	}
	members := []demoMember{
		{"Ava", "Berlin", "female", 28},
		{"Noah", "Berlin", "male", 31},
		{"Mia", "Hamburg", "female", 26},
		{"Liam", "Munich", "male", 34},
		{"Zoe", "Berlin", "nonbinary", 29},
	}

	users := make([]model.User, 0, len(members))
	for i, m := range members {
		birth := now.AddDate(-m.years, 0, 0)
		user, err := s.addUser(model.User{
			Email:         fmt.Sprintf("%s@example.com", m.name),
			Role:          model.UserRoleMember,
			Status:        model.UserStatusActive,
			EmailVerified: true,
			Profile: &model.Profile{
				DisplayName: m.name,
				Bio:         fmt.Sprintf("Hi, I'm %s from %s.", m.name, m.city),
				Gender:      m.gender,
				BirthDate:   &birth,
				City:        m.city,
				GoalIDs:     []uuid.UUID{goalIDs[i%len(goalIDs)]},
				InterestIDs: interestIDs[i%3 : i%3+2],
			},
		}, "demopass123")
		if err != nil {
			s.log.Warn("demo seed skipped user", "email", m.name)
			continue
		}
		user.Profile.UserID = user.ID
		s.users.Put(user)
		users = append(users, user)

		s.photos.Put(model.Photo{
			Base:      model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID:    user.ID,
			Path:      fmt.Sprintf("profiles/%s-1.jpg", m.name),
			IsPrimary: true,
		})
	}
	if len(users) < 4 {
		return
	}

	// Mutual likes between the first two members.
	s.swipes.Put(model.Swipe{
		Base:      model.Base{ID: uuid.New(), CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now},
		SwiperID:  users[0].ID,
		TargetID:  users[1].ID,
		Direction: model.SwipeDirectionLike,
	})
	s.swipes.Put(model.Swipe{
		Base:      model.Base{ID: uuid.New(), CreatedAt: now.Add(-47 * time.Hour), UpdatedAt: now},
		SwiperID:  users[1].ID,
		TargetID:  users[0].ID,
		Direction: model.SwipeDirectionLike,
		IsMatch:   true,
	})
	s.swipes.Put(model.Swipe{
		Base:      model.Base{ID: uuid.New(), CreatedAt: now.Add(-24 * time.Hour), UpdatedAt: now},
		SwiperID:  users[2].ID,
		TargetID:  users[3].ID,
		Direction: model.SwipeDirectionPass,
	})

	match := model.Match{
		Base:      model.Base{ID: uuid.New(), CreatedAt: now.Add(-47 * time.Hour), UpdatedAt: now},
		UserAID:   users[0].ID,
		UserBID:   users[1].ID,
		Status:    model.MatchStatusActive,
		MatchedAt: now.Add(-47 * time.Hour),
	}
	s.matches.Put(match)

	s.messages.Put(model.Message{
		Base:     model.Base{ID: uuid.New(), CreatedAt: now.Add(-46 * time.Hour), UpdatedAt: now},
		MatchID:  match.ID,
		SenderID: users[0].ID,
		Body:     "Hey! Nice to match with you.",
		SentAt:   now.Add(-46 * time.Hour),
	})
	s.messages.Put(model.Message{
		Base:     model.Base{ID: uuid.New(), CreatedAt: now.Add(-45 * time.Hour), UpdatedAt: now},
		MatchID:  match.ID,
		SenderID: users[1].ID,
		Body:     "Likewise! How's your week going?",
		SentAt:   now.Add(-45 * time.Hour),
	})

	s.reports.Put(model.Report{
		Base:       model.Base{ID: uuid.New(), CreatedAt: now.Add(-12 * time.Hour), UpdatedAt: now},
		ReporterID: users[2].ID,
		ReportedID: users[3].ID,
		Reason:     model.ReportReasonSpam,
		Details:    "Keeps sending the same link.",
		Status:     model.ReportStatusOpen,
	})

	s.subscriptions.Put(model.Subscription{
		Base:        model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      users[0].ID,
		Plan:        model.PlanPremium,
		Status:      model.SubscriptionStatusActive,
		PeriodStart: now.AddDate(0, -1, 0),
		PeriodEnd:   now.AddDate(0, 1, 0),
	})

	s.notifications.Put(model.Notification{
		Base:   model.Base{ID: uuid.New(), CreatedAt: now.Add(-47 * time.Hour), UpdatedAt: now},
		UserID: users[0].ID,
		Kind:   model.NotificationNewMatch,
		Title:  "You have a new match",
		Body:   "Say hello!",
	})
}
