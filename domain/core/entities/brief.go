package entities

import (
	"strings"

	"nextsite-backend/domain/core/valueobjects"
)

// GoalInput is the goal block of a client brief.
type GoalInput struct {
	PrimaryGoal    string `json:"primary_goal"`
	ConversionMode string `json:"conversion_mode,omitempty"`
	GoalText       string `json:"goal_text,omitempty"`
	GoalDetail     string `json:"goal_detail,omitempty"`
}

// ClientBrief is the user-supplied business description driving generation.
// It is ephemeral: supplied per request, normalized once, never stored.
type ClientBrief struct {
	BusinessName   string            `json:"business_name" validate:"required,min=1,max=120"`
	Sector         string            `json:"sector" validate:"required,min=1,max=200"`
	Location       string            `json:"location,omitempty" validate:"omitempty,max=120"`
	TargetAudience string            `json:"target_audience,omitempty" validate:"omitempty,max=300"`
	Services       []string          `json:"services,omitempty" validate:"omitempty,max=20,dive,max=200"`
	Tone           string            `json:"tone,omitempty" validate:"omitempty,max=40"`
	Seed           int               `json:"seed,omitempty"`
	Goal           GoalInput         `json:"goal" validate:"required"`
	ThemeKey       string            `json:"theme,omitempty" validate:"omitempty,max=40"`
	Colors         map[string]string `json:"colors,omitempty" validate:"omitempty,max=12"`
}

// Normalized returns a copy with all strings trimmed and neutral defaults
// filled in for absent optional fields. The original brief is not mutated.
func (b ClientBrief) Normalized() ClientBrief {
	out := b

	out.BusinessName = strings.TrimSpace(b.BusinessName)
	if out.BusinessName == "" {
		out.BusinessName = "Next Business"
	}
	out.Sector = strings.TrimSpace(b.Sector)
	out.Location = strings.TrimSpace(b.Location)
	out.TargetAudience = strings.TrimSpace(b.TargetAudience)
	out.ThemeKey = strings.TrimSpace(b.ThemeKey)

	out.Tone = strings.TrimSpace(b.Tone)
	if out.Tone == "" {
		out.Tone = "neutral"
	}

	out.Services = nil
	for _, s := range b.Services {
		if t := strings.TrimSpace(s); t != "" {
			out.Services = append(out.Services, t)
		}
	}

	out.Goal.PrimaryGoal = strings.TrimSpace(b.Goal.PrimaryGoal)
	out.Goal.ConversionMode = strings.TrimSpace(b.Goal.ConversionMode)
	out.Goal.GoalText = strings.TrimSpace(b.Goal.GoalText)
	out.Goal.GoalDetail = strings.TrimSpace(b.Goal.GoalDetail)
	if out.Goal.PrimaryGoal == "" {
		out.Goal = GoalInput{
			PrimaryGoal:    valueobjects.GoalCaptureLeads.String(),
			ConversionMode: "quote_or_contact",
			GoalText:       "Captar contactos / presupuesto",
			GoalDetail:     out.Goal.GoalDetail,
		}
	}
	if out.Goal.ConversionMode == "" {
		out.Goal.ConversionMode = "quote_or_contact"
	}

	return out
}

// PrimaryGoal returns the brief's goal as a typed value.
func (b ClientBrief) PrimaryGoal() valueobjects.PrimaryGoal {
	return valueobjects.PrimaryGoal(b.Goal.PrimaryGoal)
}

// Slug derives the stable site key for this brief.
func (b ClientBrief) Slug() valueobjects.Slug {
	return valueobjects.NewSlug(b.BusinessName)
}
