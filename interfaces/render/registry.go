package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"nextsite-backend/domain/core/entities"
)

// variantTemplates maps every known variant name to a template name. Variants
// that share a presentation share a template: the ecommerce bold categories
// grid renders like the minimal one, only the theme differs.
var variantTemplates = map[string]string{
	"header_minimal_v1": "header_minimal",
	"header_trust_v1":   "header_trust",
	"header_bold_v1":    "header_bold",

	"hero_product_minimal_v1": "hero_minimal",
	"hero_product_split_v1":   "hero_split",
	"hero_product_bold_v1":    "hero_bold",
	"hero_brand_story_v1":     "hero_story",

	"cards_auto_v1":              "cards_grid",
	"categories_grid_min_v1":     "cards_grid",
	"categories_grid_bold_v1":    "cards_grid",
	"categories_scroller_min_v1": "cards_scroller",

	"bullets_auto_v1":        "bullets_inline",
	"benefits_inline_min_v1": "bullets_inline",
	"benefits_cards_min_v1":  "bullets_cards",
	"benefits_cards_bold_v1": "bullets_cards",

	"services_grid_auto_v1": "services_grid",
	"text_auto_v1":          "text",
	"steps_auto_v1":         "steps",
	"faq_auto_v1":           "faq",
	"testimonials_auto_v1":  "testimonials",

	"contact_auto_v1":       "contact",
	"contact_split_min_v1":  "contact_split",
	"contact_center_min_v1": "contact_center",

	"footer_simple_v1": "footer_simple",
}

// Renderer turns a site specification into a standalone HTML preview page.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the built-in template set.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("site").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("parsing render templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// sectionView is the data every section template receives.
type sectionView struct {
	Variant string
	P       entities.ModulePayload
}

// renderSection renders one section. Unknown variants and unresolvable refs
// fall back to a raw JSON block so a preview never breaks on catalog drift.
func (r *Renderer) renderSection(spec entities.SiteSpecification, sec entities.Section) template.HTML {
	payload, ok := spec.Modules.Resolve(sec.PropsRef)
	if !ok {
		return r.fallback(sec, nil)
	}

	name, known := variantTemplates[sec.Variant]
	if !known {
		return r.fallback(sec, &payload)
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, sectionView{Variant: sec.Variant, P: payload}); err != nil {
		return r.fallback(sec, &payload)
	}
	return template.HTML(buf.String())
}

func (r *Renderer) fallback(sec entities.Section, payload *entities.ModulePayload) template.HTML {
	raw, _ := json.MarshalIndent(map[string]interface{}{
		"module":  sec.Module,
		"variant": sec.Variant,
		"props":   payload,
	}, "", "  ")

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "fallback", string(raw)); err != nil {
		return template.HTML("")
	}
	return template.HTML(buf.String())
}
