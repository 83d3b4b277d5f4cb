package goals

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type GoalInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (g GoalInput) Validate() error {
	return validate.Struct(g)
}

// TextLen is the trimmed size of the goal text, used instead of the text
// itself in analytics.
func (g GoalInput) TextLen() int {
	return len(strings.TrimSpace(g.Title)) + len(strings.TrimSpace(g.Description))
}

type Category string

const (
	CategoryHealth            Category = "health"
	CategoryMoneyCareer       Category = "money_career"
	CategoryFamilyLifeBalance Category = "family_life_balance"
	CategoryLearning          Category = "learning"
	CategoryOther             Category = "other"
)

var Categories = []Category{
	CategoryHealth,
	CategoryMoneyCareer,
	CategoryFamilyLifeBalance,
	CategoryLearning,
	CategoryOther,
}

type CategoryResult struct {
	Category Category `json:"category"`
}

// ParseCategory maps a model reply onto the fixed category set.
// Anything that is not exactly one known token becomes CategoryOther with ok=false.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, "\"'`")
	s = strings.TrimSuffix(s, ".")

	for _, c := range Categories {
		if s == string(c) {
			return c, true
		}
	}
	return CategoryOther, false
}
