package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextsite-backend/domain/core/entities"
)

func testSpec() entities.SiteSpecification {
	return entities.SiteSpecification{
		Version: entities.SpecVersion,
		Meta:    entities.Meta{Locale: "es-ES", SiteID: "acme", Seed: 1},
		Business: entities.Business{
			Name:   "Acme",
			Sector: "Carpintería",
		},
		Brand: entities.Brand{
			Theme: entities.ThemeTokens{
				Name: "trust",
				Vars: map[string]string{
					"--c-bg":      "#ffffff",
					"--c-text":    "#0f172a",
					"--c-primary": "#0f172a",
				},
			},
		},
		Layout: entities.Layout{
			HeaderVariant: "header_minimal_v1",
			FooterVariant: "footer_simple_v1",
			Pages: entities.Pages{Home: entities.Page{Sections: []entities.Section{
				{Module: "hero", Variant: "hero_product_minimal_v1", PropsRef: "modules.hero_auto"},
				{Module: "bullets", Variant: "bullets_auto_v1", PropsRef: "modules.bullets_auto"},
				{Module: "contact", Variant: "contact_auto_v1", PropsRef: "modules.contact_auto"},
			}}},
		},
		Modules: entities.ModuleSet{
			"hero_auto": {
				Headline:    "Carpintería a medida",
				Subheadline: "Carpintería · Madrid",
				CTAPrimary:  "Contactar",
			},
			"bullets_auto": {
				Title: "Por qué elegirnos",
				Items: []entities.ModuleItem{{Title: "Profesionalidad"}, {Title: "Calidad y confianza"}},
			},
			"contact_auto": {
				Title: "Contacto",
				Note:  "Escríbenos y te respondemos en breve.",
			},
		},
		SEO: entities.SEO{Title: "Acme", Description: "Acme · Carpintería"},
	}
}

func TestRenderer_PageContainsContentAndTheme(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	page, err := r.Page(testSpec())
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `<html lang="es">`)
	assert.Contains(t, html, "<title>Acme</title>")
	assert.Contains(t, html, "--c-bg:#ffffff;")
	assert.Contains(t, html, "Carpintería a medida")
	assert.Contains(t, html, "Por qué elegirnos")
	assert.Contains(t, html, "Escríbenos y te respondemos en breve.")
	assert.Contains(t, html, `id="contact"`)
}

func TestRenderer_EscapesContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	spec := testSpec()
	hero := spec.Modules["hero_auto"]
	hero.Headline = `<script>alert("x")</script>`
	spec.Modules["hero_auto"] = hero

	page, err := r.Page(spec)
	require.NoError(t, err)

	assert.NotContains(t, string(page), "<script>alert")
}

func TestRenderer_UnknownVariantFallsBackToRawBlock(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	spec := testSpec()
	spec.Layout.Pages.Home.Sections[1].Variant = "bullets_hologram_v9"

	page, err := r.Page(spec)
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "raw-module")
	assert.Contains(t, html, "bullets_hologram_v9")
	assert.Contains(t, html, "Profesionalidad")
}

func TestRenderer_DanglingRefFallsBackToRawBlock(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	spec := testSpec()
	spec.Layout.Pages.Home.Sections = append(spec.Layout.Pages.Home.Sections,
		entities.Section{Module: "cards", Variant: "cards_auto_v1", PropsRef: "modules.missing"})

	page, err := r.Page(spec)
	require.NoError(t, err)

	assert.Contains(t, string(page), "raw-module")
}

func TestRenderer_UnknownHeaderVariantUsesMinimal(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	spec := testSpec()
	spec.Layout.HeaderVariant = "header_neon_v7"

	page, err := r.Page(spec)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(page), "site-header minimal"))
}

func TestThemeCSS_SkipsUnsafeValues(t *testing.T) {
	css := string(themeCSS(entities.ThemeTokens{Vars: map[string]string{
		"--c-bg":   "#fff",
		"--shadow": "0 16px 50px rgba(15,23,42,0.10)",
		"--evil":   "red;}</style><script>",
		"no-dash":  "#000",
	}}))

	assert.Contains(t, css, "--c-bg:#fff;")
	assert.Contains(t, css, "--shadow:0 16px 50px rgba(15,23,42,0.10);")
	assert.NotContains(t, css, "evil")
	assert.NotContains(t, css, "no-dash")
}

func TestEveryCatalogVariantHasTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for variant, name := range variantTemplates {
		assert.NotNil(t, r.templates.Lookup(name), "variant %s maps to undefined template %s", variant, name)
	}
}
