package services

import (
	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
)

// Seed salts keep the header, hero and section picks decorrelated while
// staying fully derived from the single site seed.
const (
	heroSeedSalt    = 7
	sectionSeedSalt = 13
)

// LayoutResolver performs the single variant-resolution pass over a planned
// specification. It never fails: every pick falls back to the existing
// variant or a safe default, and running it twice yields the same result.
type LayoutResolver struct{}

// NewLayoutResolver creates a layout resolver.
func NewLayoutResolver() *LayoutResolver {
	return &LayoutResolver{}
}

// Resolve returns a copy of the specification with header, hero and section
// variants assigned, a hero synthesized when missing, and the ecommerce
// composition rewrites applied.
func (r *LayoutResolver) Resolve(spec entities.SiteSpecification) entities.SiteSpecification {
	seed := spec.Meta.Seed
	personality := valueobjects.Personality(spec.Brand.Personality)
	expr := spec.Brand.Expression
	pack := valueobjects.Pack(spec.Layout.Pack)

	headerVariant := pickBySeed(matchingVariants(headerCatalog, personality, expr), seed)
	if headerVariant == "" {
		headerVariant = spec.Layout.HeaderVariant
	}
	if headerVariant == "" {
		headerVariant = "header_minimal_v1"
	}

	// Composition A/B splits on the stable site identity, not the seed, so
	// two sites sharing a seed can still land on different compositions.
	compositionKey := spec.Business.Slug
	if compositionKey == "" {
		compositionKey = spec.Meta.SiteID
	}
	if compositionKey == "" {
		compositionKey = spec.Business.Name
	}
	compositionB := hashString31(compositionKey)%2 != 0

	heroVariant := pickBySeed(matchingVariants(heroCatalog, personality, expr), seed+heroSeedSalt)
	if heroVariant == "" {
		heroVariant = "hero_product_minimal_v1"
	}
	if pack == valueobjects.PackEcommerceConversion {
		if compositionB {
			heroVariant = "hero_product_split_v1"
		} else {
			heroVariant = "hero_product_minimal_v1"
		}
	}

	sections := make([]entities.Section, 0, len(spec.Layout.Pages.Home.Sections)+1)
	sections = append(sections, spec.Layout.Pages.Home.Sections...)
	if !hasModule(sections, "hero") {
		hero := entities.Section{Module: "hero", Variant: heroVariant, PropsRef: "modules." + entities.ModuleHero}
		sections = append([]entities.Section{hero}, sections...)
	}

	if pack == valueobjects.PackEcommerceConversion {
		for i, s := range sections {
			switch s.Module {
			case "hero":
				sections[i].Variant = heroVariant
			case "cards":
				sections[i].Variant = pickComposition(compositionB, "categories_grid_min_v1", "categories_scroller_min_v1")
			case "bullets":
				sections[i].Variant = pickComposition(compositionB, "benefits_inline_min_v1", "benefits_cards_min_v1")
			case "contact":
				sections[i].Variant = pickComposition(compositionB, "contact_split_min_v1", "contact_center_min_v1")
			default:
				sections[i].Variant = r.sectionVariant(s, personality, expr, seed)
			}
		}
		if compositionB {
			sections = moveContactAfterText(sections)
		}
	} else {
		for i, s := range sections {
			if s.Module == "hero" {
				continue
			}
			sections[i].Variant = r.sectionVariant(s, personality, expr, seed)
		}
	}

	out := spec
	out.Layout.HeaderVariant = headerVariant
	out.Layout.Pages.Home.Sections = sections
	return out
}

func (r *LayoutResolver) sectionVariant(s entities.Section, p valueobjects.Personality, e entities.BrandExpression, seed int) string {
	if v := pickBySeed(matchingSectionVariants(s.Module, p, e), seed+sectionSeedSalt); v != "" {
		return v
	}
	return s.Variant
}

func pickComposition(compositionB bool, a, b string) string {
	if compositionB {
		return b
	}
	return a
}

func hasModule(sections []entities.Section, module string) bool {
	for _, s := range sections {
		if s.Module == module {
			return true
		}
	}
	return false
}

// moveContactAfterText relocates the contact section to immediately follow
// the text section. When either is missing the order is left untouched.
// Idempotent: once contact already follows text, the move is a no-op.
func moveContactAfterText(sections []entities.Section) []entities.Section {
	textIdx, contactIdx := -1, -1
	for i, s := range sections {
		switch s.Module {
		case "text":
			textIdx = i
		case "contact":
			contactIdx = i
		}
	}
	if textIdx == -1 || contactIdx == -1 || contactIdx == textIdx+1 {
		return sections
	}

	contact := sections[contactIdx]
	rest := make([]entities.Section, 0, len(sections)-1)
	rest = append(rest, sections[:contactIdx]...)
	rest = append(rest, sections[contactIdx+1:]...)

	insertAt := 0
	for i, s := range rest {
		if s.Module == "text" {
			insertAt = i + 1
			break
		}
	}

	out := make([]entities.Section, 0, len(sections))
	out = append(out, rest[:insertAt]...)
	out = append(out, contact)
	out = append(out, rest[insertAt:]...)
	return out
}
