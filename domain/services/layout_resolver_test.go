package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
)

func newEcommerceSpec(slug string, seed int) entities.SiteSpecification {
	expr, _ := ExpressionPreset(valueobjects.PersonalityModernMinimal)
	return entities.SiteSpecification{
		Version: entities.SpecVersion,
		Meta:    entities.Meta{Locale: "es-ES", SiteID: slug, Seed: seed},
		Business: entities.Business{
			Name: slug, Slug: slug, Type: valueobjects.BusinessEcommerce.String(),
		},
		Brand: entities.Brand{
			Personality: valueobjects.PersonalityModernMinimal.String(),
			Expression:  expr,
		},
		Layout: entities.Layout{
			Pack:      valueobjects.PackEcommerceConversion.String(),
			Archetype: valueobjects.ArchetypeEcommerceConversion.String(),
			Pages: entities.Pages{Home: entities.Page{Sections: NewSectionPlanner().Plan(
				valueobjects.ArchetypeEcommerceConversion, valueobjects.GoalSellOnline,
			)}},
		},
	}
}

// tienda-uno hashes even (composition A), kora-footwear hashes odd (B).

func TestLayoutResolver_EcommerceCompositionA(t *testing.T) {
	resolver := NewLayoutResolver()
	spec := newEcommerceSpec("tienda-uno", 505)

	got := resolver.Resolve(spec)

	variants := map[string]string{}
	for _, s := range got.Layout.Pages.Home.Sections {
		variants[s.Module] = s.Variant
	}
	assert.Equal(t, "hero_product_minimal_v1", variants["hero"])
	assert.Equal(t, "categories_grid_min_v1", variants["cards"])
	assert.Equal(t, "benefits_inline_min_v1", variants["bullets"])
	assert.Equal(t, "contact_split_min_v1", variants["contact"])
}

func TestLayoutResolver_EcommerceCompositionB(t *testing.T) {
	resolver := NewLayoutResolver()
	spec := newEcommerceSpec("kora-footwear", 505)

	got := resolver.Resolve(spec)

	variants := map[string]string{}
	for _, s := range got.Layout.Pages.Home.Sections {
		variants[s.Module] = s.Variant
	}
	assert.Equal(t, "hero_product_split_v1", variants["hero"])
	assert.Equal(t, "categories_scroller_min_v1", variants["cards"])
	assert.Equal(t, "benefits_cards_min_v1", variants["bullets"])
	assert.Equal(t, "contact_center_min_v1", variants["contact"])
}

func TestLayoutResolver_CompositionIgnoresSeed(t *testing.T) {
	resolver := NewLayoutResolver()

	a := resolver.Resolve(newEcommerceSpec("kora-footwear", 1))
	b := resolver.Resolve(newEcommerceSpec("kora-footwear", 9999))

	assert.Equal(t,
		a.Layout.Pages.Home.Sections[0].Variant,
		b.Layout.Pages.Home.Sections[0].Variant)
}

func TestLayoutResolver_CompositionBMovesContactAfterText(t *testing.T) {
	resolver := NewLayoutResolver()
	spec := newEcommerceSpec("kora-footwear", 505)
	// Start from an order where contact precedes text.
	spec.Layout.Pages.Home.Sections = []entities.Section{
		{Module: "hero", Variant: "hero_product_minimal_v1", PropsRef: "modules.hero_auto"},
		{Module: "cards", Variant: "cards_auto_v1", PropsRef: "modules.cards_auto"},
		{Module: "contact", Variant: "contact_auto_v1", PropsRef: "modules.contact_auto"},
		{Module: "bullets", Variant: "bullets_auto_v1", PropsRef: "modules.bullets_auto"},
		{Module: "text", Variant: "text_auto_v1", PropsRef: "modules.text_auto"},
	}

	got := resolver.Resolve(spec)

	assert.Equal(t,
		[]string{"hero", "cards", "bullets", "text", "contact"},
		moduleOrder(got.Layout.Pages.Home.Sections))
}

func TestLayoutResolver_SynthesizesMissingHero(t *testing.T) {
	resolver := NewLayoutResolver()
	spec := newEcommerceSpec("tienda-uno", 7)
	spec.Layout.Pages.Home.Sections = spec.Layout.Pages.Home.Sections[1:]

	got := resolver.Resolve(spec)

	assert.Equal(t, 1, got.HeroCount())
	assert.Equal(t, "hero", got.Layout.Pages.Home.Sections[0].Module)
	assert.Equal(t, "modules.hero_auto", got.Layout.Pages.Home.Sections[0].PropsRef)
}

func TestLayoutResolver_Idempotent(t *testing.T) {
	resolver := NewLayoutResolver()
	spec := newEcommerceSpec("kora-footwear", 505)

	once := resolver.Resolve(spec)
	twice := resolver.Resolve(once)

	assert.Equal(t, once, twice)
}

func TestLayoutResolver_HeaderFallsBackWhenNothingMatches(t *testing.T) {
	resolver := NewLayoutResolver()
	expr, _ := ExpressionPreset(valueobjects.PersonalityFriendlyLocal)
	spec := entities.SiteSpecification{
		Meta: entities.Meta{Seed: 3},
		Brand: entities.Brand{
			Personality: valueobjects.PersonalityFriendlyLocal.String(),
			Expression:  expr,
		},
		Layout: entities.Layout{
			Pack:          valueobjects.PackGeneric.String(),
			HeaderVariant: "header_trust_v1",
			Pages: entities.Pages{Home: entities.Page{Sections: NewSectionPlanner().Plan(
				valueobjects.ArchetypeDefault, valueobjects.GoalCaptureLeads,
			)}},
		},
	}

	got := resolver.Resolve(spec)

	// friendly_local matches no header rule, so the planner's choice stays.
	assert.Equal(t, "header_trust_v1", got.Layout.HeaderVariant)
}

func TestLayoutResolver_HeaderDefaultWhenNothingSet(t *testing.T) {
	resolver := NewLayoutResolver()
	expr, _ := ExpressionPreset(valueobjects.PersonalityFriendlyLocal)
	spec := entities.SiteSpecification{
		Meta: entities.Meta{Seed: 3},
		Brand: entities.Brand{
			Personality: valueobjects.PersonalityFriendlyLocal.String(),
			Expression:  expr,
		},
		Layout: entities.Layout{Pack: valueobjects.PackGeneric.String()},
	}

	got := resolver.Resolve(spec)

	assert.Equal(t, "header_minimal_v1", got.Layout.HeaderVariant)
}

func TestLayoutResolver_GenericPackKeepsSectionOrder(t *testing.T) {
	resolver := NewLayoutResolver()
	expr, _ := ExpressionPreset(valueobjects.PersonalityTrustAuthority)
	sections := NewSectionPlanner().Plan(valueobjects.ArchetypeBookingTrust, valueobjects.GoalBookAppointments)
	spec := entities.SiteSpecification{
		Meta: entities.Meta{Seed: 202},
		Brand: entities.Brand{
			Personality: valueobjects.PersonalityTrustAuthority.String(),
			Expression:  expr,
		},
		Layout: entities.Layout{
			Pack:  valueobjects.PackGeneric.String(),
			Pages: entities.Pages{Home: entities.Page{Sections: sections}},
		},
	}

	got := resolver.Resolve(spec)

	assert.Equal(t, moduleOrder(sections), moduleOrder(got.Layout.Pages.Home.Sections))
	assert.Equal(t, "header_trust_v1", got.Layout.HeaderVariant)
}
