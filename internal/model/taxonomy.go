package model

// Goal is a relationship-goal taxonomy entry users pick on their profile
// ("long term", "friends first", ...).
type Goal struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Interest is an interest-tag taxonomy entry ("hiking", "jazz", ...).
type Interest struct {
	Base
	Name     string `json:"name"`
	Category string `json:"category"`
}

// UpsertGoalRequest covers both create and update of a goal.
type UpsertGoalRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpsertInterestRequest covers both create and update of an interest.
type UpsertInterestRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}
