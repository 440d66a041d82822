package render

// templateText holds every component template. Sections receive a sectionView,
// the header a headerView, the footer a footerView, and the outer page a
// pageView. Styling leans entirely on the CSS custom properties emitted from
// the resolved theme.
const templateText = `
{{define "header_minimal"}}
<header class="site-header minimal"><div class="wrap">
  <span class="brand">{{.Name}}</span>
  {{if .CTA}}<a class="btn primary" href="#contact">{{.CTA}}</a>{{end}}
</div></header>
{{end}}

{{define "header_trust"}}
<header class="site-header trust"><div class="wrap">
  <span class="brand">{{.Name}}</span>
  {{if .Phone}}<span class="phone">{{.Phone}}</span>{{end}}
  {{if .CTA}}<a class="btn primary" href="#contact">{{.CTA}}</a>{{end}}
</div></header>
{{end}}

{{define "header_bold"}}
<header class="site-header bold"><div class="wrap">
  <span class="brand loud">{{.Name}}</span>
  {{if .CTA}}<a class="btn primary" href="#contact">{{.CTA}}</a>{{end}}
</div></header>
{{end}}

{{define "hero_minimal"}}
<section class="hero minimal"><div class="wrap">
  <h1>{{.P.Headline}}</h1>
  {{if .P.Subheadline}}<p class="sub">{{.P.Subheadline}}</p>{{end}}
  <div class="cta-row">
    {{if .P.CTAPrimary}}<a class="btn primary" href="#contact">{{.P.CTAPrimary}}</a>{{end}}
    {{if .P.CTASecondary}}<a class="btn ghost" href="#about">{{.P.CTASecondary}}</a>{{end}}
  </div>
</div></section>
{{end}}

{{define "hero_split"}}
<section class="hero split"><div class="wrap cols">
  <div class="col">
    <h1>{{.P.Headline}}</h1>
    {{if .P.Subheadline}}<p class="sub">{{.P.Subheadline}}</p>{{end}}
    <div class="cta-row">
      {{if .P.CTAPrimary}}<a class="btn primary" href="#contact">{{.P.CTAPrimary}}</a>{{end}}
      {{if .P.CTASecondary}}<a class="btn ghost" href="#about">{{.P.CTASecondary}}</a>{{end}}
    </div>
  </div>
  <div class="col media" aria-hidden="true"></div>
</div></section>
{{end}}

{{define "hero_bold"}}
<section class="hero bold"><div class="wrap">
  <h1 class="loud">{{.P.Headline}}</h1>
  {{if .P.Subheadline}}<p class="sub">{{.P.Subheadline}}</p>{{end}}
  {{if .P.CTAPrimary}}<a class="btn primary big" href="#contact">{{.P.CTAPrimary}}</a>{{end}}
</div></section>
{{end}}

{{define "hero_story"}}
<section class="hero story"><div class="wrap narrow">
  <h1>{{.P.Headline}}</h1>
  {{if .P.Subheadline}}<p class="sub">{{.P.Subheadline}}</p>{{end}}
  {{if .P.CTAPrimary}}<a class="btn primary" href="#contact">{{.P.CTAPrimary}}</a>{{end}}
</div></section>
{{end}}

{{define "cards_grid"}}
<section class="cards grid"><div class="wrap">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  <div class="card-grid">
    {{range .P.Items}}<div class="card">
      <h3>{{.Title}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>{{end}}
  </div>
</div></section>
{{end}}

{{define "cards_scroller"}}
<section class="cards scroller"><div class="wrap">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  <div class="card-scroller">
    {{range .P.Items}}<div class="card">
      <h3>{{.Title}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>{{end}}
  </div>
</div></section>
{{end}}

{{define "bullets_inline"}}
<section class="bullets inline"><div class="wrap">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  <ul class="bullet-list">
    {{range .P.Items}}<li>{{.Title}}</li>{{end}}
  </ul>
</div></section>
{{end}}

{{define "bullets_cards"}}
<section class="bullets cards"><div class="wrap">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  <div class="card-grid">
    {{range .P.Items}}<div class="card small">{{.Title}}</div>{{end}}
  </div>
</div></section>
{{end}}

{{define "services_grid"}}
<section class="services"><div class="wrap">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  <div class="card-grid">
    {{range .P.Items}}<div class="card">
      <h3>{{.Title}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>{{end}}
  </div>
</div></section>
{{end}}

{{define "text"}}
<section class="text" id="about"><div class="wrap narrow">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  <p>{{.P.Body}}</p>
</div></section>
{{end}}

{{define "steps"}}
<section class="steps"><div class="wrap">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  <ol class="step-list">
    {{range .P.Items}}<li>
      <h3>{{.Title}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </li>{{end}}
  </ol>
</div></section>
{{end}}

{{define "faq"}}
<section class="faq"><div class="wrap narrow">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  {{range .P.Items}}<details>
    <summary>{{.Question}}</summary>
    <p>{{.Answer}}</p>
  </details>{{end}}
</div></section>
{{end}}

{{define "testimonials"}}
<section class="testimonials"><div class="wrap">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  <div class="card-grid">
    {{range .P.Items}}<figure class="card quote">
      <blockquote>{{.Quote}}</blockquote>
      <figcaption>{{.Author}}</figcaption>
    </figure>{{end}}
  </div>
</div></section>
{{end}}

{{define "contact"}}
<section class="contact" id="contact"><div class="wrap narrow">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  {{if .P.Note}}<p class="note">{{.P.Note}}</p>{{end}}
  {{template "contact_form" .}}
</div></section>
{{end}}

{{define "contact_split"}}
<section class="contact split" id="contact"><div class="wrap cols">
  <div class="col">
    {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
    {{if .P.Note}}<p class="note">{{.P.Note}}</p>{{end}}
  </div>
  <div class="col">{{template "contact_form" .}}</div>
</div></section>
{{end}}

{{define "contact_center"}}
<section class="contact center" id="contact"><div class="wrap narrow centered">
  {{if .P.Title}}<h2>{{.P.Title}}</h2>{{end}}
  {{if .P.Note}}<p class="note">{{.P.Note}}</p>{{end}}
  {{template "contact_form" .}}
</div></section>
{{end}}

{{define "contact_form"}}
<form class="contact-form" action="#" method="post">
  <input type="text" name="name" placeholder="Nombre" required>
  <input type="email" name="email" placeholder="Email" required>
  <textarea name="message" placeholder="Mensaje"></textarea>
  <button class="btn primary" type="submit">Enviar</button>
</form>
{{end}}

{{define "footer_simple"}}
<footer class="site-footer"><div class="wrap">
  <span>&copy; {{.Year}} {{.Name}}</span>
  {{if .Address}}<span class="address">{{.Address}}</span>{{end}}
</div></footer>
{{end}}

{{define "fallback"}}
<section class="raw-module"><div class="wrap"><pre>{{.}}</pre></div></section>
{{end}}

{{define "page"}}<!doctype html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<style>
:root{ {{.ThemeCSS}} }
*{box-sizing:border-box;margin:0}
body{font-family:system-ui,sans-serif;background:var(--c-bg,#fff);color:var(--c-text,#111)}
.wrap{max-width:1080px;margin:0 auto;padding:var(--section-py,64px) 1.5rem}
.wrap.narrow{max-width:720px}
.wrap.centered{text-align:center}
.wrap.cols{display:grid;grid-template-columns:1fr 1fr;gap:2rem}
.site-header .wrap{display:flex;align-items:center;justify-content:space-between;padding:1rem 1.5rem;gap:1rem}
.site-header{border-bottom:1px solid var(--border,#e5e5e5)}
.brand{font-weight:700}
.brand.loud{text-transform:uppercase;letter-spacing:.08em}
.btn{display:inline-block;padding:.6rem 1.2rem;border-radius:var(--r-sm,12px);text-decoration:none}
.btn.primary{background:var(--c-primary,#111);color:var(--c-bg,#fff)}
.btn.ghost{border:1px solid var(--border,#e5e5e5);color:var(--c-text,#111)}
.btn.big{font-size:1.15rem;padding:.8rem 1.6rem}
.hero h1{font-size:2.4rem;line-height:1.15}
.hero .sub{margin-top:.75rem;opacity:.75}
.hero .cta-row{margin-top:1.5rem;display:flex;gap:.75rem}
.hero.bold h1.loud{font-size:3rem;text-transform:uppercase}
.hero .media{min-height:220px;background:var(--surface-2,#f5f5f5);border-radius:var(--r-lg,22px)}
.card-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:1rem;margin-top:1rem}
.card-scroller{display:flex;gap:1rem;overflow-x:auto;margin-top:1rem}
.card-scroller .card{min-width:240px}
.card{background:var(--surface,#fff);border:1px solid var(--border,#e5e5e5);border-radius:var(--r-md,16px);box-shadow:var(--shadow,none);padding:1.25rem}
.card.small{padding:.9rem}
.bullet-list{display:flex;flex-wrap:wrap;gap:.75rem 1.5rem;list-style:none;margin-top:1rem;padding:0}
.bullet-list li::before{content:"\2713\00a0";color:var(--c-accent,#111)}
.step-list{margin-top:1rem;padding-left:1.25rem;display:grid;gap:1rem}
.faq details{border-bottom:1px solid var(--border,#e5e5e5);padding:.75rem 0}
.card.quote blockquote{font-style:italic}
.card.quote figcaption{margin-top:.5rem;opacity:.75}
.contact-form{display:grid;gap:.75rem;margin-top:1rem}
.contact-form input,.contact-form textarea{padding:.7rem;border:1px solid var(--border,#e5e5e5);border-radius:var(--r-sm,12px);background:var(--surface-2,#fff);color:var(--c-text,#111)}
.contact-form button{border:0;cursor:pointer}
.site-footer{border-top:1px solid var(--border,#e5e5e5);margin-top:2rem}
.site-footer .wrap{display:flex;justify-content:space-between;padding-top:1.5rem;padding-bottom:1.5rem;opacity:.75}
.raw-module pre{background:var(--surface-2,#f5f5f5);padding:1rem;border-radius:var(--r-md,16px);overflow-x:auto}
</style>
</head>
<body>
{{.Header}}
<main>
{{range .Sections}}{{.}}{{end}}
</main>
{{.Footer}}
</body>
</html>
{{end}}
`
