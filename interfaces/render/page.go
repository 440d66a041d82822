package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"sort"
	"strings"
	"time"

	"nextsite-backend/domain/core/entities"
)

// pageView feeds the outer page template. Sections are pre-rendered so the
// page template only concatenates.
type pageView struct {
	Lang        string
	Title       string
	Description string
	ThemeCSS    template.CSS
	Header      template.HTML
	Sections    []template.HTML
	Footer      template.HTML
}

type headerView struct {
	Name  string
	Phone string
	CTA   string
}

type footerView struct {
	Name    string
	Address string
	Year    int
}

// Page renders the whole specification into a standalone HTML document.
func (r *Renderer) Page(spec entities.SiteSpecification) ([]byte, error) {
	hero, _ := spec.Modules.Resolve(entities.ModuleHero)

	view := pageView{
		Lang:        langFromLocale(spec.Meta.Locale),
		Title:       spec.SEO.Title,
		Description: spec.SEO.Description,
		ThemeCSS:    themeCSS(spec.Brand.Theme),
		Header:      r.renderChrome(headerTemplate(spec.Layout.HeaderVariant), headerView{Name: spec.Business.Name, Phone: spec.Contact.Phone, CTA: hero.CTAPrimary}),
		Footer:      r.renderChrome(footerTemplate(spec.Layout.FooterVariant), footerView{Name: spec.Business.Name, Address: spec.Contact.Address, Year: time.Now().Year()}),
	}

	for _, sec := range spec.Layout.Pages.Home.Sections {
		view.Sections = append(view.Sections, r.renderSection(spec, sec))
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "page", view); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderChrome(name string, data interface{}) template.HTML {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return template.HTML("")
	}
	return template.HTML(buf.String())
}

func headerTemplate(variant string) string {
	if name, ok := variantTemplates[variant]; ok {
		return name
	}
	return "header_minimal"
}

func footerTemplate(variant string) string {
	if name, ok := variantTemplates[variant]; ok {
		return name
	}
	return "footer_simple"
}

// cssValuePattern admits the token value shapes the theme catalog produces.
// Anything else is dropped rather than interpolated into a style block.
var cssValuePattern = regexp.MustCompile(`^[#a-zA-Z0-9 .,()%/-]+$`)

// themeCSS flattens theme vars into declarations for the :root block. Keys
// are sorted so output is stable.
func themeCSS(theme entities.ThemeTokens) template.CSS {
	keys := make([]string, 0, len(theme.Vars))
	for k := range theme.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := theme.Vars[k]
		if !strings.HasPrefix(k, "--") || !cssValuePattern.MatchString(v) {
			continue
		}
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(v)
		b.WriteString(";")
	}
	return template.CSS(b.String())
}

func langFromLocale(locale string) string {
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return locale[:i]
	}
	if locale == "" {
		return "es"
	}
	return locale
}
