package validators

import (
	"fmt"
	"strings"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
	"nextsite-backend/pkg/utils"
)

// BriefValidator validates client briefs at the request boundary. The
// generation core itself is total; rejecting malformed briefs here is the
// only place a brief can fail. Field limits live as validate tags on the
// brief; the goal vocabulary check is the one rule tags cannot express.
type BriefValidator struct{}

// NewBriefValidator creates a brief validator.
func NewBriefValidator() *BriefValidator {
	return &BriefValidator{}
}

// Validate checks the required fields, size limits and goal vocabulary.
func (v *BriefValidator) Validate(brief entities.ClientBrief) error {
	if err := utils.ValidateStruct(brief); err != nil {
		return fmt.Errorf("invalid brief: %w", err)
	}

	goal := strings.TrimSpace(brief.Goal.PrimaryGoal)
	if goal == "" {
		return fmt.Errorf("invalid brief: goal.primary_goal is required")
	}
	if !isKnownGoal(goal) {
		return fmt.Errorf("invalid brief: goal.primary_goal %q is not a supported goal", goal)
	}

	return nil
}

func isKnownGoal(goal string) bool {
	for _, g := range valueobjects.AllGoals() {
		if g.String() == goal {
			return true
		}
	}
	return false
}
