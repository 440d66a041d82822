package services

import (
	"regexp"
	"strings"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
)

// ThemeResolver maps a personality to a complete, renderable token set.
// It never fails: unrecognized personalities and invalid overrides fall back
// silently so the renderer always receives a full theme.
type ThemeResolver struct {
	themes map[string]entities.ThemeTokens
}

// NewThemeResolver creates a resolver over the fixed theme catalog.
func NewThemeResolver() *ThemeResolver {
	return &ThemeResolver{themes: themeCatalog()}
}

// Theme var sets are small but deliberately opinionated: radii and shadows
// change character without touching any component markup.
func themeCatalog() map[string]entities.ThemeTokens {
	return map[string]entities.ThemeTokens{
		"trust": {
			Name: "trust",
			Vars: map[string]string{
				"--c-bg":       "#ffffff",
				"--c-text":     "#0f172a",
				"--c-primary":  "#0f172a",
				"--c-accent":   "#1d4ed8",
				"--surface":    "#ffffff",
				"--surface-2":  "#f8fafc",
				"--border":     "#e5e7eb",
				"--shadow":     "0 16px 50px rgba(15,23,42,0.10)",
				"--r-sm":       "12px",
				"--r-md":       "16px",
				"--r-lg":       "22px",
				"--section-py": "64px",
			},
		},
		"elegant": {
			Name: "elegant",
			Vars: map[string]string{
				"--c-bg":       "#ffffff",
				"--c-text":     "#111827",
				"--c-primary":  "#111827",
				"--c-accent":   "#7c3aed",
				"--surface":    "#ffffff",
				"--surface-2":  "#faf5ff",
				"--border":     "#e9d5ff",
				"--shadow":     "0 20px 70px rgba(124,58,237,0.10)",
				"--r-sm":       "16px",
				"--r-md":       "22px",
				"--r-lg":       "30px",
				"--section-py": "72px",
			},
		},
		"modern": {
			Name: "modern",
			Vars: map[string]string{
				"--c-bg":       "#0b0f19",
				"--c-text":     "#e5e7eb",
				"--c-primary":  "#e5e7eb",
				"--c-accent":   "#22c55e",
				"--surface":    "#0f172a",
				"--surface-2":  "#111827",
				"--border":     "#1f2937",
				"--shadow":     "0 22px 80px rgba(0,0,0,0.35)",
				"--r-sm":       "999px",
				"--r-md":       "28px",
				"--r-lg":       "36px",
				"--section-py": "72px",
			},
		},
	}
}

// overridableVars maps brief-level color override keys to theme vars.
var overridableVars = map[string]string{
	"bg":      "--c-bg",
	"text":    "--c-text",
	"primary": "--c-primary",
	"accent":  "--c-accent",
	"surface": "--surface",
	"border":  "--border",
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Resolve picks the theme for a personality. An explicit, recognized theme
// key wins; otherwise the personality maps via substring rules, then the
// safe default. Color overrides are applied field by field, and only for
// syntactically valid hex values.
func (r *ThemeResolver) Resolve(personality valueobjects.Personality, explicitKey string, overrides map[string]string) entities.ThemeTokens {
	var base entities.ThemeTokens
	if t, ok := r.themes[explicitKey]; ok && explicitKey != "" {
		base = t
	} else {
		base = r.themes[themeKeyFromPersonality(personality)]
	}

	// Copy before overriding: the catalog is shared.
	out := entities.ThemeTokens{Name: base.Name, Vars: make(map[string]string, len(base.Vars))}
	for k, v := range base.Vars {
		out.Vars[k] = v
	}

	for field, color := range overrides {
		varName, known := overridableVars[strings.ToLower(strings.TrimSpace(field))]
		if !known || !hexColorPattern.MatchString(strings.TrimSpace(color)) {
			continue
		}
		out.Vars[varName] = strings.ToLower(strings.TrimSpace(color))
	}

	return out
}

// themeKeyFromPersonality maps the personality tag onto the theme catalog.
func themeKeyFromPersonality(personality valueobjects.Personality) string {
	p := strings.ToLower(personality.String())
	switch {
	case strings.Contains(p, "trust") || strings.Contains(p, "authority"):
		return "trust"
	case strings.Contains(p, "elegant") || strings.Contains(p, "premium"):
		return "elegant"
	case strings.Contains(p, "modern") || strings.Contains(p, "minimal"):
		return "modern"
	default:
		return "trust"
	}
}
