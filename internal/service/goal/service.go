package goal

import (
	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/crud"
)

// Service manages the relationship-goal taxonomy through /goals.
type Service struct {
	crud.Service[model.Goal, model.UpsertGoalRequest, model.UpsertGoalRequest]
}

func NewService(client *apiclient.Client) *Service {
	return &Service{Service: crud.New[model.Goal, model.UpsertGoalRequest, model.UpsertGoalRequest](client, "/goals")}
}

func SearchText(g model.Goal) []string {
	return []string{g.Name, g.Description}
}

func ValidateGoalData(req model.UpsertGoalRequest) []string {
	return form.Errors(req)
}
