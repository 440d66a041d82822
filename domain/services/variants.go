package services

import (
	"strings"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
)

// VariantRule describes the brand envelope a variant is compatible with.
// Empty fields mean "no constraint". Rules are evaluated against the resolved
// personality and expression, never against free text.
type VariantRule struct {
	Personalities []valueobjects.Personality
	Risk          []string
	Density       []string
	Imagery       []string
}

// Matches reports whether the rule admits the given brand envelope.
func (r VariantRule) Matches(p valueobjects.Personality, e entities.BrandExpression) bool {
	if len(r.Personalities) > 0 && !containsPersonality(r.Personalities, p) {
		return false
	}
	if len(r.Risk) > 0 && !containsString(r.Risk, e.LayoutRisk) {
		return false
	}
	if len(r.Density) > 0 && !containsString(r.Density, e.Density) {
		return false
	}
	if len(r.Imagery) > 0 && !containsString(r.Imagery, e.ImageryStyle) {
		return false
	}
	return true
}

// variantEntry pairs a variant name with its rule. Catalogs are ordered
// slices: the resolver buckets a seed over the filtered list, so catalog
// order is part of the deterministic contract.
type variantEntry struct {
	Name string
	Rule VariantRule
}

var headerCatalog = []variantEntry{
	{"header_minimal_v1", VariantRule{
		Personalities: []valueobjects.Personality{
			valueobjects.PersonalityModernMinimal,
			valueobjects.PersonalityPremiumElegant,
			valueobjects.PersonalityTechClean,
			valueobjects.PersonalityCalmCare,
		},
		Risk: []string{"safe"},
	}},
	{"header_bold_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityBoldStreet},
		Risk:          []string{"bold"},
	}},
	{"header_trust_v1", VariantRule{
		Personalities: []valueobjects.Personality{
			valueobjects.PersonalityTrustAuthority,
			valueobjects.PersonalityCorporateB2B,
			valueobjects.PersonalityEnterpriseSolid,
		},
		Risk: []string{"safe"},
	}},
}

var heroCatalog = []variantEntry{
	{"hero_product_minimal_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityModernMinimal},
		Imagery:       []string{"product", "mixed"},
		Density:       []string{"light", "medium"},
		Risk:          []string{"safe"},
	}},
	{"hero_product_split_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityModernMinimal},
		Imagery:       []string{"product", "mixed"},
		Density:       []string{"light", "medium"},
		Risk:          []string{"safe"},
	}},
	{"hero_product_bold_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityBoldStreet},
		Imagery:       []string{"product", "lifestyle"},
		Density:       []string{"medium", "tight"},
		Risk:          []string{"bold"},
	}},
	{"hero_brand_story_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityPremiumElegant},
		Imagery:       []string{"lifestyle", "mixed"},
		Density:       []string{"light"},
		Risk:          []string{"safe"},
	}},
}

// sectionCatalog holds section variants. The *_auto_v1 entries are the bridge
// set and accept every brand envelope. The ecommerce min/bold variants never
// match a section module by prefix; they are assigned only by the ecommerce
// composition rewrite in the layout resolver.
var sectionCatalog = []variantEntry{
	{"cards_auto_v1", VariantRule{}},
	{"bullets_auto_v1", VariantRule{}},
	{"services_grid_auto_v1", VariantRule{}},
	{"text_auto_v1", VariantRule{}},
	{"contact_auto_v1", VariantRule{}},
	{"steps_auto_v1", VariantRule{}},
	{"faq_auto_v1", VariantRule{}},
	{"testimonials_auto_v1", VariantRule{}},

	{"categories_grid_min_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityModernMinimal},
		Density:       []string{"light", "medium"},
		Risk:          []string{"safe"},
	}},
	{"categories_scroller_min_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityModernMinimal},
		Density:       []string{"light", "medium"},
		Risk:          []string{"safe"},
	}},
	{"benefits_inline_min_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityModernMinimal},
		Density:       []string{"light", "medium"},
		Risk:          []string{"safe"},
	}},
	{"benefits_cards_min_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityModernMinimal},
		Density:       []string{"light", "medium"},
		Risk:          []string{"safe"},
	}},
	{"contact_split_min_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityModernMinimal},
		Density:       []string{"light", "medium"},
		Risk:          []string{"safe"},
	}},
	{"contact_center_min_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityModernMinimal},
		Density:       []string{"light", "medium"},
		Risk:          []string{"safe"},
	}},

	{"categories_grid_bold_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityBoldStreet},
		Density:       []string{"medium", "tight"},
		Risk:          []string{"bold"},
	}},
	{"benefits_cards_bold_v1", VariantRule{
		Personalities: []valueobjects.Personality{valueobjects.PersonalityBoldStreet},
		Density:       []string{"medium", "tight"},
		Risk:          []string{"bold"},
	}},
}

// matchingVariants filters a catalog against the brand envelope, preserving
// catalog order.
func matchingVariants(catalog []variantEntry, p valueobjects.Personality, e entities.BrandExpression) []string {
	var out []string
	for _, entry := range catalog {
		if entry.Rule.Matches(p, e) {
			out = append(out, entry.Name)
		}
	}
	return out
}

// matchingSectionVariants filters section variants whose name starts with the
// module name, so cards only ever resolves to cards_* variants.
func matchingSectionVariants(module string, p valueobjects.Personality, e entities.BrandExpression) []string {
	var out []string
	for _, entry := range sectionCatalog {
		if strings.HasPrefix(entry.Name, module) && entry.Rule.Matches(p, e) {
			out = append(out, entry.Name)
		}
	}
	return out
}

func containsPersonality(list []valueobjects.Personality, p valueobjects.Personality) bool {
	for _, x := range list {
		if x == p {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
