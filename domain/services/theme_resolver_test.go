package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nextsite-backend/domain/core/valueobjects"
)

func TestThemeResolver_PersonalityMapping(t *testing.T) {
	resolver := NewThemeResolver()

	tests := []struct {
		personality valueobjects.Personality
		wantTheme   string
	}{
		{valueobjects.PersonalityTrustAuthority, "trust"},
		{valueobjects.PersonalityPremiumElegant, "elegant"},
		{valueobjects.PersonalityModernMinimal, "modern"},
		{valueobjects.PersonalityCalmCare, "trust"},
		{valueobjects.PersonalityBoldStreet, "trust"},
	}

	for _, tt := range tests {
		t.Run(string(tt.personality), func(t *testing.T) {
			theme := resolver.Resolve(tt.personality, "", nil)
			assert.Equal(t, tt.wantTheme, theme.Name)
		})
	}
}

func TestThemeResolver_ExplicitKeyWins(t *testing.T) {
	resolver := NewThemeResolver()

	theme := resolver.Resolve(valueobjects.PersonalityTrustAuthority, "modern", nil)

	assert.Equal(t, "modern", theme.Name)
	assert.Equal(t, "#0b0f19", theme.Vars["--c-bg"])
}

func TestThemeResolver_UnknownExplicitKeyFallsBack(t *testing.T) {
	resolver := NewThemeResolver()

	theme := resolver.Resolve(valueobjects.PersonalityModernMinimal, "neon", nil)

	assert.Equal(t, "modern", theme.Name)
}

func TestThemeResolver_CompleteTokenSet(t *testing.T) {
	resolver := NewThemeResolver()
	required := []string{
		"--c-bg", "--c-text", "--c-primary", "--c-accent",
		"--surface", "--surface-2", "--border", "--shadow",
		"--r-sm", "--r-md", "--r-lg", "--section-py",
	}

	for _, key := range []string{"trust", "elegant", "modern"} {
		theme := resolver.Resolve(valueobjects.PersonalityTrustAuthority, key, nil)
		for _, varName := range required {
			assert.NotEmpty(t, theme.Vars[varName], "%s missing %s", key, varName)
		}
	}
}

func TestThemeResolver_ValidOverrideApplied(t *testing.T) {
	resolver := NewThemeResolver()

	theme := resolver.Resolve(valueobjects.PersonalityTrustAuthority, "", map[string]string{
		"accent": "#FF6600",
		"bg":     "#fafafa",
	})

	assert.Equal(t, "#ff6600", theme.Vars["--c-accent"])
	assert.Equal(t, "#fafafa", theme.Vars["--c-bg"])
}

func TestThemeResolver_InvalidOverridesIgnored(t *testing.T) {
	resolver := NewThemeResolver()

	theme := resolver.Resolve(valueobjects.PersonalityTrustAuthority, "", map[string]string{
		"accent":  "red",
		"bg":      "#gggggg",
		"unknown": "#112233",
	})

	assert.Equal(t, "#1d4ed8", theme.Vars["--c-accent"])
	assert.Equal(t, "#ffffff", theme.Vars["--c-bg"])
}

func TestThemeResolver_CatalogNotMutatedByOverrides(t *testing.T) {
	resolver := NewThemeResolver()

	resolver.Resolve(valueobjects.PersonalityTrustAuthority, "", map[string]string{"accent": "#123456"})
	clean := resolver.Resolve(valueobjects.PersonalityTrustAuthority, "", nil)

	assert.Equal(t, "#1d4ed8", clean.Vars["--c-accent"])
}
