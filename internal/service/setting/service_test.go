package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartlinkhq/admin-console/internal/model"
)

func intp(v int) *int { return &v }

func TestValidateSettingDataAgeWindow(t *testing.T) {
	errs := ValidateSettingData(model.UpdateSettingRequest{
		AgeMin: intp(40),
		AgeMax: intp(25),
	})
	assert.Contains(t, errs, "age min must not exceed age max")

	assert.Empty(t, ValidateSettingData(model.UpdateSettingRequest{
		AgeMin: intp(25),
		AgeMax: intp(40),
	}))
}

func TestValidateSettingDataBounds(t *testing.T) {
	assert.NotEmpty(t, ValidateSettingData(model.UpdateSettingRequest{AgeMin: intp(12)}))
	assert.NotEmpty(t, ValidateSettingData(model.UpdateSettingRequest{MaxDistanceKm: intp(2000)}))
	assert.Empty(t, ValidateSettingData(model.UpdateSettingRequest{}))
}
