package services

import (
	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
)

// SpecAssembler orchestrates the full generation pipeline: classification,
// personality and theme selection, copy building, section planning and the
// final layout resolution pass. Pure computation over the brief: no I/O, no
// clock, no runtime randomness, so identical briefs yield byte-identical
// specifications.
type SpecAssembler struct {
	personalities *PersonalitySelector
	themes        *ThemeResolver
	copy          *CopyBuilder
	planner       *SectionPlanner
	resolver      *LayoutResolver
}

// NewSpecAssembler wires the assembler with its collaborating services.
func NewSpecAssembler(
	personalities *PersonalitySelector,
	themes *ThemeResolver,
	copyBuilder *CopyBuilder,
	planner *SectionPlanner,
	resolver *LayoutResolver,
) *SpecAssembler {
	return &SpecAssembler{
		personalities: personalities,
		themes:        themes,
		copy:          copyBuilder,
		planner:       planner,
		resolver:      resolver,
	}
}

// Assemble builds the complete specification for a brief. The brief is
// normalized first, so callers may pass raw input.
func (a *SpecAssembler) Assemble(brief entities.ClientBrief) entities.SiteSpecification {
	b := brief.Normalized()

	goal := b.PrimaryGoal()
	businessType := valueobjects.BusinessTypeForGoal(goal)
	pack := valueobjects.PackFor(businessType, goal)
	domain := ClassifyDomain(b.Sector)
	archetype := valueobjects.ArchetypeFor(businessType, goal, domain)
	slug := b.Slug()

	personality := a.personalities.Select(SelectorInput{
		SiteKey:        slug.String(),
		BusinessType:   businessType,
		Sector:         b.Sector,
		Goal:           goal,
		TargetAudience: b.TargetAudience,
	})
	expression, colors := ExpressionPreset(personality)

	intent := valueobjects.Intent("")
	if goal == valueobjects.GoalSingleAction {
		intent = ClassifyIntent(b.Goal.GoalDetail)
	}

	copySet := a.copy.Build(CopyInput{
		Domain:         domain,
		BusinessType:   businessType,
		Goal:           goal,
		Intent:         intent,
		Personality:    personality,
		Sector:         b.Sector,
		Location:       b.Location,
		TargetAudience: b.TargetAudience,
		Services:       b.Services,
	})

	theme := a.themes.Resolve(personality, b.ThemeKey, b.Colors)

	spec := entities.SiteSpecification{
		Version: entities.SpecVersion,
		Meta: entities.Meta{
			Locale: "es-ES",
			SiteID: slug.String(),
			Seed:   b.Seed,
		},
		Business: entities.Business{
			Name:           b.BusinessName,
			Slug:           slug.String(),
			Type:           businessType.String(),
			Sector:         b.Sector,
			Location:       b.Location,
			TargetAudience: b.TargetAudience,
		},
		Strategy: entities.Strategy{
			WebStrategy:    pack.String(),
			PrimaryGoal:    goal.String(),
			ConversionMode: b.Goal.ConversionMode,
			GoalText:       b.Goal.GoalText,
			GoalDetail:     b.Goal.GoalDetail,
			Intent:         intent.String(),
		},
		Brand: entities.Brand{
			Personality:  personality.String(),
			Expression:   expression,
			DesignTokens: entities.DesignTokens{Colors: colors},
			ThemeKey:     theme.Name,
			Theme:        theme,
		},
		Layout: entities.Layout{
			Pack:          pack.String(),
			Archetype:     archetype.String(),
			HeaderVariant: initialHeaderVariant(businessType),
			FooterVariant: "footer_simple_v1",
			Pages: entities.Pages{
				Home: entities.Page{Sections: a.planner.Plan(archetype, goal)},
			},
		},
		Modules: a.buildModules(b, domain, goal, intent, copySet),
		Contact: entities.Contact{
			Phone:   "",
			Email:   "",
			Address: b.Location,
		},
		SEO: buildSEO(b),
	}

	return a.resolver.Resolve(spec)
}

func initialHeaderVariant(businessType valueobjects.BusinessType) string {
	if businessType == valueobjects.BusinessLocalService {
		return "header_trust_v1"
	}
	return "header_minimal_v1"
}

func (a *SpecAssembler) buildModules(
	b entities.ClientBrief,
	domain valueobjects.Domain,
	goal valueobjects.PrimaryGoal,
	intent valueobjects.Intent,
	copySet Copy,
) entities.ModuleSet {
	serviceItems := []entities.ModuleItem{
		{Title: "Servicio 1"}, {Title: "Servicio 2"}, {Title: "Servicio 3"},
	}
	if len(b.Services) > 0 {
		serviceItems = make([]entities.ModuleItem, 0, len(b.Services))
		for _, s := range b.Services {
			serviceItems = append(serviceItems, entities.ModuleItem{Title: s})
		}
	}

	bullets := copySet.Bullets
	if len(bullets) > 4 {
		bullets = bullets[:4]
	}
	bulletItems := make([]entities.ModuleItem, 0, len(bullets))
	for _, t := range bullets {
		bulletItems = append(bulletItems, entities.ModuleItem{Title: t})
	}

	return entities.ModuleSet{
		entities.ModuleHero: {
			Headline:     b.BusinessName,
			Subheadline:  heroSubheadline(b.Sector, b.Location),
			CTAPrimary:   primaryCTA(goal, b.Goal.GoalDetail),
			CTASecondary: "Saber más",
		},
		entities.ModuleServices: {
			Title: copySet.ServicesTitle,
			Items: serviceItems,
		},
		entities.ModuleBullets: {
			Title: "Por qué elegirnos",
			Items: bulletItems,
		},
		entities.ModuleCards: {
			Title: copySet.CardsTitle,
			Items: []entities.ModuleItem{
				{Title: "Opción 1"}, {Title: "Opción 2"}, {Title: "Opción 3"},
			},
		},
		entities.ModuleText: {
			Title: "Sobre nosotros",
			Body:  copySet.TextBody,
		},
		entities.ModuleSteps: {
			Title: "Cómo funciona",
			Items: a.copy.Steps(domain, goal, intent),
		},
		entities.ModuleFAQ: {
			Title: "Preguntas frecuentes",
			Items: a.copy.FAQ(domain, goal, intent),
		},
		entities.ModuleTestimonials: {
			Title: "Lo que dicen nuestros clientes",
			Items: a.copy.Testimonials(domain),
		},
		entities.ModuleContact: {
			Title: "Contacto",
			Note:  copySet.ContactNote,
		},
	}
}

func heroSubheadline(sector, location string) string {
	switch {
	case sector != "" && location != "":
		return sector + " · " + location
	case sector != "":
		return sector
	case location != "":
		return location
	default:
		return "Sitio generado automáticamente"
	}
}

func primaryCTA(goal valueobjects.PrimaryGoal, detail string) string {
	if goal == valueobjects.GoalSingleAction && detail != "" {
		return detail
	}
	switch goal {
	case valueobjects.GoalSellOnline:
		return "Comprar"
	case valueobjects.GoalBookAppointments:
		return "Reservar cita"
	case valueobjects.GoalShowCatalog:
		return "Ver catálogo"
	case valueobjects.GoalPresentBrand:
		return "Conocer la empresa"
	case valueobjects.GoalCaptureLeads:
		return "Solicitar presupuesto"
	default:
		return "Contactar"
	}
}

func buildSEO(b entities.ClientBrief) entities.SEO {
	description := b.BusinessName
	if b.Sector != "" {
		description = b.BusinessName + " · " + b.Sector
	}
	return entities.SEO{Title: b.BusinessName, Description: description}
}
