package services

import (
	"strings"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
)

// PersonalitySelector decides the brand personality for a site. The decision
// is made once per site and is deterministic: the hash key concatenates the
// stable site key with every rule input, so identical briefs always land on
// the identical personality while distinct briefs spread across the option
// buckets.
type PersonalitySelector struct{}

// NewPersonalitySelector creates a personality selector.
func NewPersonalitySelector() *PersonalitySelector {
	return &PersonalitySelector{}
}

// SelectorInput carries the normalized attributes the rule cascade inspects.
type SelectorInput struct {
	SiteKey        string
	BusinessType   valueobjects.BusinessType
	Sector         string
	Goal           valueobjects.PrimaryGoal
	TargetAudience string
}

// Select runs the rule cascade. Total: every branch ends in a concrete tag.
func (s *PersonalitySelector) Select(in SelectorInput) valueobjects.Personality {
	sector := valueobjects.FoldText(in.Sector)
	key := strings.Join([]string{
		in.SiteKey,
		strings.ToLower(in.BusinessType.String()),
		sector,
		strings.ToLower(in.Goal.String()),
		valueobjects.FoldText(in.TargetAudience),
	}, "|")

	if in.BusinessType == valueobjects.BusinessEcommerce {
		if containsAny(sector, []string{"urb", "moda", "street", "drops", "edicion", "limitad", "sneaker"}) {
			return valueobjects.PersonalityBoldStreet
		}
		if containsAny(sector, []string{"artes", "handmade", "eco", "natural", "sosten", "craft"}) {
			return valueobjects.PersonalityArtisanWarm
		}
		return pickByHash(key, []valueobjects.Personality{
			valueobjects.PersonalityModernMinimal,
			valueobjects.PersonalityBoldStreet,
			valueobjects.PersonalityArtisanWarm,
		})
	}

	if in.BusinessType == valueobjects.BusinessLocalService {
		if containsAny(sector, []string{"clin", "dental", "salud", "fisio", "medic", "estet", "bienestar"}) {
			return pickByHash(key, []valueobjects.Personality{
				valueobjects.PersonalityTrustAuthority,
				valueobjects.PersonalityCalmCare,
			})
		}
		return pickByHash(key, []valueobjects.Personality{
			valueobjects.PersonalityFriendlyLocal,
			valueobjects.PersonalityTrustAuthority,
			valueobjects.PersonalityCalmCare,
		})
	}

	looksSaaS := containsAny(sector, []string{"saas", "software", "plataforma", "gestion", "tickets", "crm", "erp"})
	if looksSaaS || in.Goal == valueobjects.GoalSingleAction {
		return pickByHash(key, []valueobjects.Personality{
			valueobjects.PersonalityTechClean,
			valueobjects.PersonalityEnterpriseSolid,
		})
	}

	if containsAny(sector, []string{"abog", "legal", "asesor", "fiscal", "finan", "seguros"}) {
		return valueobjects.PersonalityTrustAuthority
	}

	if containsAny(sector, []string{"rest", "asador", "bar", "caf", "comida", "hostel", "turis"}) {
		return pickByHash(key, []valueobjects.Personality{
			valueobjects.PersonalityFriendlyLocal,
			valueobjects.PersonalityArtisanWarm,
			valueobjects.PersonalityPremiumElegant,
		})
	}

	return pickByHash(key, []valueobjects.Personality{
		valueobjects.PersonalityPremiumElegant,
		valueobjects.PersonalityTrustAuthority,
		valueobjects.PersonalityTechClean,
		valueobjects.PersonalityFriendlyLocal,
	})
}

// ExpressionPreset returns the brand expression flags and base color tokens a
// personality implies. Total: unknown tags get the modern_minimal preset.
func ExpressionPreset(p valueobjects.Personality) (entities.BrandExpression, map[string]string) {
	switch p {
	case valueobjects.PersonalityTrustAuthority:
		return entities.BrandExpression{
				Tone: "professional", ImageryStyle: "mixed", LayoutRisk: "safe",
				Density: "medium", VisualEnergy: "calm", Boldness: "low",
			}, map[string]string{
				"bg": "#ffffff", "text": "#0f172a", "primary": "#0f172a", "muted": "#475569", "accent": "#1d4ed8",
			}
	case valueobjects.PersonalityCalmCare:
		return entities.BrandExpression{
				Tone: "friendly", ImageryStyle: "mixed", LayoutRisk: "safe",
				Density: "comfortable", VisualEnergy: "calm", Boldness: "low",
			}, map[string]string{
				"bg": "#ffffff", "text": "#0f172a", "primary": "#0f172a", "muted": "#64748b", "accent": "#0ea5e9",
			}
	case valueobjects.PersonalityFriendlyLocal:
		return entities.BrandExpression{
				Tone: "friendly", ImageryStyle: "mixed", LayoutRisk: "safe",
				Density: "comfortable", VisualEnergy: "warm", Boldness: "medium",
			}, map[string]string{
				"bg": "#ffffff", "text": "#111827", "primary": "#111827", "muted": "#6b7280", "accent": "#16a34a",
			}
	case valueobjects.PersonalityTechClean:
		return entities.BrandExpression{
				Tone: "professional", ImageryStyle: "mixed", LayoutRisk: "safe",
				Density: "tight", VisualEnergy: "balanced", Boldness: "medium",
			}, map[string]string{
				"bg": "#ffffff", "text": "#0f172a", "primary": "#0f172a", "muted": "#475569", "accent": "#7c3aed",
			}
	case valueobjects.PersonalityEnterpriseSolid:
		return entities.BrandExpression{
				Tone: "professional", ImageryStyle: "mixed", LayoutRisk: "safe",
				Density: "medium", VisualEnergy: "low", Boldness: "low",
			}, map[string]string{
				"bg": "#ffffff", "text": "#0b1220", "primary": "#0b1220", "muted": "#334155", "accent": "#0f766e",
			}
	case valueobjects.PersonalityBoldStreet:
		return entities.BrandExpression{
				Tone: "bold", ImageryStyle: "product", LayoutRisk: "bold",
				Density: "tight", VisualEnergy: "high", Boldness: "high",
			}, map[string]string{
				"bg": "#0b0b0f", "text": "#ffffff", "primary": "#ffffff", "muted": "#a1a1aa", "accent": "#22c55e",
			}
	case valueobjects.PersonalityArtisanWarm:
		return entities.BrandExpression{
				Tone: "friendly", ImageryStyle: "mixed", LayoutRisk: "safe",
				Density: "comfortable", VisualEnergy: "warm", Boldness: "medium",
			}, map[string]string{
				"bg": "#fffaf5", "text": "#1f2937", "primary": "#1f2937", "muted": "#6b7280", "accent": "#ea580c",
			}
	case valueobjects.PersonalityPremiumElegant:
		return entities.BrandExpression{
				Tone: "neutral", ImageryStyle: "lifestyle", LayoutRisk: "safe",
				Density: "light", VisualEnergy: "calm", Boldness: "low",
			}, map[string]string{
				"bg": "#ffffff", "text": "#111827", "primary": "#111827", "muted": "#6b7280", "accent": "#7c3aed",
			}
	case valueobjects.PersonalityCorporateB2B:
		return entities.BrandExpression{
				Tone: "professional", ImageryStyle: "mixed", LayoutRisk: "safe",
				Density: "medium", VisualEnergy: "balanced", Boldness: "low",
			}, map[string]string{
				"bg": "#ffffff", "text": "#0f172a", "primary": "#0f172a", "muted": "#475569", "accent": "#0f766e",
			}
	default:
		return entities.BrandExpression{
				Tone: "bold", ImageryStyle: "product", LayoutRisk: "safe",
				Density: "medium", VisualEnergy: "balanced", Boldness: "medium",
			}, map[string]string{
				"bg": "#ffffff", "text": "#111111", "primary": "#111111", "muted": "#666666", "accent": "#111111",
			}
	}
}
