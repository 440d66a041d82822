package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nextsite-backend/domain/core/valueobjects"
)

func TestCopyBuilder_ServicesTitlePerDomain(t *testing.T) {
	builder := NewCopyBuilder()

	tests := []struct {
		domain valueobjects.Domain
		want   string
	}{
		{valueobjects.DomainHealth, "Tratamientos y servicios"},
		{valueobjects.DomainSaaS, "Soluciones"},
		{valueobjects.DomainLegal, "Áreas de práctica"},
		{valueobjects.DomainHospitality, "Servicios"},
		{valueobjects.DomainGeneric, "Servicios"},
	}

	for _, tt := range tests {
		got := builder.Build(CopyInput{Domain: tt.domain, Goal: valueobjects.GoalCaptureLeads})
		assert.Equal(t, tt.want, got.ServicesTitle)
	}
}

func TestCopyBuilder_CardsTitle(t *testing.T) {
	builder := NewCopyBuilder()

	ecommerce := builder.Build(CopyInput{
		Domain:       valueobjects.DomainEcommerce,
		BusinessType: valueobjects.BusinessEcommerce,
		Goal:         valueobjects.GoalSellOnline,
	})
	assert.Equal(t, "Categorías", ecommerce.CardsTitle)

	saas := builder.Build(CopyInput{Domain: valueobjects.DomainSaaS, Goal: valueobjects.GoalCaptureLeads})
	assert.Equal(t, "Módulos", saas.CardsTitle)

	generic := builder.Build(CopyInput{Domain: valueobjects.DomainGeneric, Goal: valueobjects.GoalCaptureLeads})
	assert.Equal(t, "Catálogo", generic.CardsTitle)
}

func TestCopyBuilder_HealthBulletsUseLocation(t *testing.T) {
	builder := NewCopyBuilder()

	got := builder.Build(CopyInput{
		Domain:   valueobjects.DomainHealth,
		Goal:     valueobjects.GoalBookAppointments,
		Location: "Bilbao",
	})

	assert.Contains(t, got.Bullets, "Ubicación cómoda en Bilbao")
	assert.Contains(t, got.Bullets, "Atención cercana y profesional")
}

func TestCopyBuilder_SingleActionFocusBulletFirstAndCapped(t *testing.T) {
	builder := NewCopyBuilder()

	got := builder.Build(CopyInput{
		Domain: valueobjects.DomainLegal,
		Goal:   valueobjects.GoalSingleAction,
		Intent: valueobjects.IntentDemo,
	})

	assert.Equal(t, "Una única acción, sin distracciones", got.Bullets[0])
	assert.LessOrEqual(t, len(got.Bullets), 4)
}

func TestCopyBuilder_SaaSSingleActionIntentBullet(t *testing.T) {
	builder := NewCopyBuilder()

	got := builder.Build(CopyInput{
		Domain: valueobjects.DomainSaaS,
		Goal:   valueobjects.GoalSingleAction,
		Intent: valueobjects.IntentTrial,
	})

	assert.Equal(t, "Una única acción, sin distracciones", got.Bullets[0])
	assert.Equal(t, "Prueba completa, sin tarjeta", got.Bullets[1])
}

func TestCopyBuilder_BookingBulletOutsideHealth(t *testing.T) {
	builder := NewCopyBuilder()

	got := builder.Build(CopyInput{
		Domain: valueobjects.DomainHospitality,
		Goal:   valueobjects.GoalBookAppointments,
	})

	assert.Equal(t, "Reserva sencilla y confirmación rápida", got.Bullets[0])
	assert.LessOrEqual(t, len(got.Bullets), 4)

	// Health keeps its own bullet set untouched.
	health := builder.Build(CopyInput{
		Domain: valueobjects.DomainHealth,
		Goal:   valueobjects.GoalBookAppointments,
	})
	assert.Equal(t, "Atención cercana y profesional", health.Bullets[0])
}

func TestCopyBuilder_EcommerceShippingClaimNeedsEvidence(t *testing.T) {
	builder := NewCopyBuilder()

	withEvidence := builder.Build(CopyInput{
		Domain:       valueobjects.DomainEcommerce,
		BusinessType: valueobjects.BusinessEcommerce,
		Goal:         valueobjects.GoalSellOnline,
		Services:     []string{"Zapatillas", "Envío 24/48h"},
	})
	assert.Equal(t, "Envío 24/48h con seguimiento", withEvidence.Bullets[0])

	withoutEvidence := builder.Build(CopyInput{
		Domain:       valueobjects.DomainEcommerce,
		BusinessType: valueobjects.BusinessEcommerce,
		Goal:         valueobjects.GoalSellOnline,
		Services:     []string{"Zapatillas", "Accesorios"},
	})
	assert.Equal(t, "Envíos con condiciones claras", withoutEvidence.Bullets[0])
}

func TestCopyBuilder_TextBodyClauses(t *testing.T) {
	builder := NewCopyBuilder()

	got := builder.Build(CopyInput{
		Domain:         valueobjects.DomainHealth,
		Goal:           valueobjects.GoalBookAppointments,
		Personality:    valueobjects.PersonalityTrustAuthority,
		Sector:         "Clínica dental",
		Location:       "Bilbao",
		TargetAudience: "familias",
		Services:       []string{"Limpieza", "Ortodoncia"},
	})

	assert.Contains(t, got.TextBody, "Especialistas en Clínica dental.")
	assert.Contains(t, got.TextBody, "Atendemos en Bilbao y alrededores.")
	assert.Contains(t, got.TextBody, "Orientado a familias.")
	assert.Contains(t, got.TextBody, "Incluye Limpieza, Ortodoncia.")
	assert.Contains(t, got.TextBody, "Confianza, rigor y respuesta rápida cuando importa.")
	assert.NotContains(t, got.TextBody, "  ")
}

func TestCopyBuilder_TextBodyOmitsEmptyClauses(t *testing.T) {
	builder := NewCopyBuilder()

	got := builder.Build(CopyInput{Domain: valueobjects.DomainGeneric, Goal: valueobjects.GoalCaptureLeads})

	assert.NotContains(t, got.TextBody, "Especialistas en")
	assert.NotContains(t, got.TextBody, "Atendemos en")
	assert.NotEmpty(t, got.TextBody)
}

func TestCopyBuilder_ContactNotes(t *testing.T) {
	builder := NewCopyBuilder()

	tests := []struct {
		name   string
		domain valueobjects.Domain
		goal   valueobjects.PrimaryGoal
		want   string
	}{
		{"booking", valueobjects.DomainHealth, valueobjects.GoalBookAppointments, "Reserva una cita y te confirmamos lo antes posible."},
		{"saas single action", valueobjects.DomainSaaS, valueobjects.GoalSingleAction, "Solicita una demo y te respondemos en breve."},
		{"generic single action", valueobjects.DomainGeneric, valueobjects.GoalSingleAction, "Déjanos tus datos y te respondemos en breve."},
		{"sell online", valueobjects.DomainEcommerce, valueobjects.GoalSellOnline, "¿Dudas de talla, envíos o disponibilidad? Escríbenos y te ayudamos."},
		{"show catalog", valueobjects.DomainGeneric, valueobjects.GoalShowCatalog, "Pídenos información y te orientamos según tu caso."},
		{"default", valueobjects.DomainGeneric, valueobjects.GoalCaptureLeads, "Escríbenos y te respondemos en breve."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builder.ContactNote(tt.domain, tt.goal))
		})
	}
}

func TestCopyBuilder_StepsBooking(t *testing.T) {
	builder := NewCopyBuilder()

	steps := builder.Steps(valueobjects.DomainHealth, valueobjects.GoalBookAppointments, "")

	assert.Len(t, steps, 3)
	assert.Equal(t, "Elige tu hora", steps[0].Title)
	assert.Equal(t, "Confirmación rápida", steps[1].Title)
	assert.Equal(t, "Te atendemos", steps[2].Title)
}

func TestCopyBuilder_StepsSaaSDemo(t *testing.T) {
	builder := NewCopyBuilder()

	steps := builder.Steps(valueobjects.DomainSaaS, valueobjects.GoalSingleAction, valueobjects.IntentDemo)

	assert.Len(t, steps, 3)
	assert.Equal(t, "Solicita demo", steps[0].Title)
	assert.Equal(t, "Te la mostramos", steps[1].Title)
	assert.Equal(t, "Arranque", steps[2].Title)
	assert.Equal(t, "Onboarding y primeros resultados en días.", steps[2].Description)
}

func TestCopyBuilder_StepsSaaSPerIntent(t *testing.T) {
	builder := NewCopyBuilder()

	lead := map[valueobjects.Intent]string{
		valueobjects.IntentAudit:    "Solicita auditoría",
		valueobjects.IntentTrial:    "Empieza la prueba",
		valueobjects.IntentQuote:    "Pide presupuesto",
		valueobjects.IntentCall:     "Agenda una llamada",
		valueobjects.IntentDownload: "Descarga la guía",
		valueobjects.IntentDemo:     "Solicita demo",
	}

	for intent, wantFirst := range lead {
		steps := builder.Steps(valueobjects.DomainSaaS, valueobjects.GoalSingleAction, intent)
		assert.Len(t, steps, 3, "intent %s", intent)
		assert.Equal(t, wantFirst, steps[0].Title, "intent %s", intent)
	}
}

func TestCopyBuilder_StepsGeneric(t *testing.T) {
	builder := NewCopyBuilder()

	steps := builder.Steps(valueobjects.DomainGeneric, valueobjects.GoalCaptureLeads, "")

	assert.Equal(t, "Cuéntanos tu caso", steps[0].Title)
	assert.Equal(t, "Empezamos", steps[2].Title)
}

func TestCopyBuilder_FAQIntentLead(t *testing.T) {
	builder := NewCopyBuilder()

	faq := builder.FAQ(valueobjects.DomainSaaS, valueobjects.GoalSingleAction, valueobjects.IntentTrial)

	assert.Len(t, faq, 3)
	assert.Equal(t, "¿La prueba tiene límites?", faq[0].Question)
}

func TestCopyBuilder_Totality(t *testing.T) {
	builder := NewCopyBuilder()

	for _, domain := range valueobjects.AllDomains() {
		for _, goal := range valueobjects.AllGoals() {
			for _, intent := range valueobjects.AllIntents() {
				in := CopyInput{
					Domain:       domain,
					BusinessType: valueobjects.BusinessTypeForGoal(goal),
					Goal:         goal,
					Intent:       intent,
				}
				got := builder.Build(in)

				assert.NotEmpty(t, got.ServicesTitle, "%s/%s/%s", domain, goal, intent)
				assert.NotEmpty(t, got.CardsTitle, "%s/%s/%s", domain, goal, intent)
				assert.NotEmpty(t, got.Bullets, "%s/%s/%s", domain, goal, intent)
				assert.NotEmpty(t, got.TextBody, "%s/%s/%s", domain, goal, intent)
				assert.NotEmpty(t, got.ContactNote, "%s/%s/%s", domain, goal, intent)

				steps := builder.Steps(domain, goal, intent)
				assert.Len(t, steps, 3, "%s/%s/%s", domain, goal, intent)

				faq := builder.FAQ(domain, goal, intent)
				assert.Len(t, faq, 3, "%s/%s/%s", domain, goal, intent)
				for _, item := range faq {
					assert.NotEmpty(t, item.Question)
					assert.NotEmpty(t, item.Answer)
				}

				testimonials := builder.Testimonials(domain)
				assert.Len(t, testimonials, 2, "%s", domain)
			}
		}
	}
}
