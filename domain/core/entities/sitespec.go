package entities

import "strings"

// SpecVersion tags every generated specification.
const SpecVersion = "2.0"

// SiteSpecification is the central artifact: a complete, renderable
// description of a one-page site. It is built once per generation call and
// never mutated after the layout resolver's single rewriting pass.
type SiteSpecification struct {
	Version  string    `json:"version"`
	Meta     Meta      `json:"meta"`
	Business Business  `json:"business"`
	Strategy Strategy  `json:"strategy"`
	Brand    Brand     `json:"brand"`
	Layout   Layout    `json:"layout"`
	Modules  ModuleSet `json:"modules"`
	Contact  Contact   `json:"contact"`
	SEO      SEO       `json:"seo"`
}

// Meta holds generation metadata. Seed is stable for a given site and
// determines all pseudo-random variant choices.
type Meta struct {
	Locale string `json:"locale"`
	SiteID string `json:"site_id"`
	Seed   int    `json:"seed"`
}

// Business describes the business the site is for.
type Business struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Type           string `json:"type"`
	Sector         string `json:"sector"`
	Location       string `json:"location"`
	TargetAudience string `json:"target_audience"`
}

// Strategy captures the conversion objective.
type Strategy struct {
	WebStrategy    string `json:"web_strategy"`
	PrimaryGoal    string `json:"primary_goal"`
	ConversionMode string `json:"conversion_mode"`
	GoalText       string `json:"goal_text"`
	GoalDetail     string `json:"goal_detail"`
	Intent         string `json:"intent,omitempty"`
}

// BrandExpression is the stylistic envelope a personality implies.
type BrandExpression struct {
	Tone         string `json:"tone"`
	ImageryStyle string `json:"imagery_style"`
	LayoutRisk   string `json:"layout_risk"`
	Density      string `json:"density"`
	VisualEnergy string `json:"visual_energy"`
	Boldness     string `json:"boldness"`
}

// DesignTokens holds the raw brand color tokens.
type DesignTokens struct {
	Colors map[string]string `json:"colors"`
}

// ThemeTokens is the flat key/value style mapping a renderer applies as CSS
// custom properties. Keys are fixed, stable strings.
type ThemeTokens struct {
	Name string            `json:"name"`
	Vars map[string]string `json:"vars"`
}

// Brand groups personality, expression flags and resolved theme tokens.
type Brand struct {
	Personality  string          `json:"brand_personality"`
	Expression   BrandExpression `json:"brand_expression"`
	DesignTokens DesignTokens    `json:"design_tokens"`
	ThemeKey     string          `json:"theme_key,omitempty"`
	Theme        ThemeTokens     `json:"theme"`
}

// Section is one content block descriptor in the home page's section list.
type Section struct {
	Module   string `json:"module"`
	Variant  string `json:"variant"`
	PropsRef string `json:"props_ref"`
}

// Page is an ordered list of sections.
type Page struct {
	Sections []Section `json:"sections"`
}

// Pages maps page names to their layouts. Only home exists today.
type Pages struct {
	Home Page `json:"home"`
}

// Layout holds the pack, archetype, chrome variants and page section lists.
type Layout struct {
	Pack          string `json:"pack"`
	Archetype     string `json:"archetype"`
	HeaderVariant string `json:"header_variant,omitempty"`
	FooterVariant string `json:"footer_variant,omitempty"`
	Pages         Pages  `json:"pages"`
}

// ModuleItem is one entry inside a module payload: a bullet, card, step,
// FAQ entry or testimonial, depending on the owning module.
type ModuleItem struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Question    string `json:"question,omitempty"`
	Answer      string `json:"answer,omitempty"`
	Author      string `json:"author,omitempty"`
	Quote       string `json:"quote,omitempty"`
}

// ModulePayload is the content of one module. Fields are populated according
// to the module type; unused fields stay empty and are omitted from JSON.
type ModulePayload struct {
	Headline     string       `json:"headline,omitempty"`
	Subheadline  string       `json:"subheadline,omitempty"`
	CTAPrimary   string       `json:"cta_primary,omitempty"`
	CTASecondary string       `json:"cta_secondary,omitempty"`
	Title        string       `json:"title,omitempty"`
	Body         string       `json:"body,omitempty"`
	Note         string       `json:"note,omitempty"`
	Items        []ModuleItem `json:"items,omitempty"`
}

// ModuleSet maps module keys (hero_auto, bullets_auto, ...) to payloads.
type ModuleSet map[string]ModulePayload

// Canonical module keys. Section planner props_refs must only ever name keys
// from this set; the assembler populates every key it references.
const (
	ModuleHero         = "hero_auto"
	ModuleServices     = "services_auto"
	ModuleBullets      = "bullets_auto"
	ModuleCards        = "cards_auto"
	ModuleText         = "text_auto"
	ModuleSteps        = "steps_auto"
	ModuleFAQ          = "faq_auto"
	ModuleTestimonials = "testimonials_auto"
	ModuleContact      = "contact_auto"
)

// Resolve looks up a section props_ref, accepting both bare keys and the
// "modules."-prefixed form used in section descriptors.
func (m ModuleSet) Resolve(ref string) (ModulePayload, bool) {
	key := strings.TrimPrefix(ref, "modules.")
	p, ok := m[key]
	return p, ok
}

// Contact holds the site's contact coordinates.
type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// SEO holds the page title and meta description.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HeroCount returns how many hero sections the home page carries.
func (s *SiteSpecification) HeroCount() int {
	n := 0
	for _, sec := range s.Layout.Pages.Home.Sections {
		if sec.Module == "hero" {
			n++
		}
	}
	return n
}

// DanglingRefs returns every section props_ref that does not resolve to a
// populated module. A valid specification returns an empty slice.
func (s *SiteSpecification) DanglingRefs() []string {
	var out []string
	for _, sec := range s.Layout.Pages.Home.Sections {
		if _, ok := s.Modules.Resolve(sec.PropsRef); !ok {
			out = append(out, sec.PropsRef)
		}
	}
	return out
}
