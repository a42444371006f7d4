package interest

import (
	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/crud"
)

// Service manages the interest-tag taxonomy through /interests.
type Service struct {
	crud.Service[model.Interest, model.UpsertInterestRequest, model.UpsertInterestRequest]
}

func NewService(client *apiclient.Client) *Service {
	return &Service{Service: crud.New[model.Interest, model.UpsertInterestRequest, model.UpsertInterestRequest](client, "/interests")}
}

func SearchText(i model.Interest) []string {
	return []string{i.Name, i.Category}
}

func ValidateInterestData(req model.UpsertInterestRequest) []string {
	return form.Errors(req)
}
