package services

import (
	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
)

// SectionPlanner returns the canonical section order for an archetype and
// goal. Pure lookup, no randomness: the layout resolver does all the seeded
// variant work afterwards. Every props_ref emitted here names a module key
// the assembler always populates.
type SectionPlanner struct{}

// NewSectionPlanner creates a section planner.
func NewSectionPlanner() *SectionPlanner {
	return &SectionPlanner{}
}

func section(module, variant, moduleKey string) entities.Section {
	return entities.Section{Module: module, Variant: variant, PropsRef: "modules." + moduleKey}
}

// Plan builds the home page section list.
func (p *SectionPlanner) Plan(archetype valueobjects.Archetype, goal valueobjects.PrimaryGoal) []entities.Section {
	switch archetype {
	case valueobjects.ArchetypeEcommerceConversion:
		return []entities.Section{
			section("hero", "hero_product_minimal_v1", entities.ModuleHero),
			section("cards", "cards_auto_v1", entities.ModuleCards),
			section("bullets", "bullets_auto_v1", entities.ModuleBullets),
			section("text", "text_auto_v1", entities.ModuleText),
			section("contact", "contact_auto_v1", entities.ModuleContact),
		}
	case valueobjects.ArchetypeBookingTrust:
		return []entities.Section{
			section("hero", "hero_product_minimal_v1", entities.ModuleHero),
			section("bullets", "bullets_auto_v1", entities.ModuleBullets),
			section("services", "services_grid_auto_v1", entities.ModuleServices),
			section("testimonials", "testimonials_auto_v1", entities.ModuleTestimonials),
			section("faq", "faq_auto_v1", entities.ModuleFAQ),
			section("steps", "steps_auto_v1", entities.ModuleSteps),
			section("contact", "contact_auto_v1", entities.ModuleContact),
		}
	case valueobjects.ArchetypeSaaSLanding:
		return []entities.Section{
			section("hero", "hero_product_split_v1", entities.ModuleHero),
			section("bullets", "bullets_auto_v1", entities.ModuleBullets),
			section("steps", "steps_auto_v1", entities.ModuleSteps),
			section("faq", "faq_auto_v1", entities.ModuleFAQ),
			section("contact", "contact_auto_v1", entities.ModuleContact),
		}
	}

	switch goal {
	case valueobjects.GoalSingleAction:
		return []entities.Section{
			section("hero", "hero_product_minimal_v1", entities.ModuleHero),
			section("bullets", "bullets_auto_v1", entities.ModuleBullets),
			section("steps", "steps_auto_v1", entities.ModuleSteps),
			section("contact", "contact_auto_v1", entities.ModuleContact),
		}
	case valueobjects.GoalShowCatalog:
		return []entities.Section{
			section("hero", "hero_product_minimal_v1", entities.ModuleHero),
			section("cards", "cards_auto_v1", entities.ModuleCards),
			section("services", "services_grid_auto_v1", entities.ModuleServices),
			section("contact", "contact_auto_v1", entities.ModuleContact),
		}
	case valueobjects.GoalPresentBrand:
		return []entities.Section{
			section("hero", "hero_product_minimal_v1", entities.ModuleHero),
			section("text", "text_auto_v1", entities.ModuleText),
			section("bullets", "bullets_auto_v1", entities.ModuleBullets),
			section("contact", "contact_auto_v1", entities.ModuleContact),
		}
	default:
		return []entities.Section{
			section("hero", "hero_product_minimal_v1", entities.ModuleHero),
			section("services", "services_grid_auto_v1", entities.ModuleServices),
			section("bullets", "bullets_auto_v1", entities.ModuleBullets),
			section("contact", "contact_auto_v1", entities.ModuleContact),
		}
	}
}
