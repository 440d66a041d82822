package services

import (
	"strings"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/valueobjects"
)

// CopyBuilder produces every content string in the specification from fixed
// per-domain and per-intent template tables. It is table-driven and total:
// every table has a generic fallback entry, so no combination of domain,
// goal and intent can reach a missing-entry path.
type CopyBuilder struct{}

// NewCopyBuilder creates a copy builder.
func NewCopyBuilder() *CopyBuilder {
	return &CopyBuilder{}
}

// CopyInput carries the resolved attributes the tables key on.
type CopyInput struct {
	Domain         valueobjects.Domain
	BusinessType   valueobjects.BusinessType
	Goal           valueobjects.PrimaryGoal
	Intent         valueobjects.Intent
	Personality    valueobjects.Personality
	Sector         string
	Location       string
	TargetAudience string
	Services       []string
}

// Copy is the builder's output: titles, bullets, body text and microcopy.
type Copy struct {
	ServicesTitle string
	CardsTitle    string
	Bullets       []string
	TextBody      string
	ContactNote   string
}

// maxSingleActionBullets caps landing bullet lists to keep one-action pages
// focused.
const maxSingleActionBullets = 4

// Build assembles the full copy set for a site.
func (b *CopyBuilder) Build(in CopyInput) Copy {
	return Copy{
		ServicesTitle: b.servicesTitle(in.Domain),
		CardsTitle:    b.cardsTitle(in.Domain, in.BusinessType),
		Bullets:       b.bullets(in),
		TextBody:      b.textBody(in),
		ContactNote:   b.ContactNote(in.Domain, in.Goal),
	}
}

func (b *CopyBuilder) servicesTitle(domain valueobjects.Domain) string {
	switch domain {
	case valueobjects.DomainHealth:
		return "Tratamientos y servicios"
	case valueobjects.DomainSaaS:
		return "Soluciones"
	case valueobjects.DomainLegal:
		return "Áreas de práctica"
	default:
		return "Servicios"
	}
}

func (b *CopyBuilder) cardsTitle(domain valueobjects.Domain, businessType valueobjects.BusinessType) string {
	switch {
	case businessType == valueobjects.BusinessEcommerce:
		return "Categorías"
	case domain == valueobjects.DomainSaaS:
		return "Módulos"
	case domain == valueobjects.DomainHospitality:
		return "Especialidades"
	default:
		return "Catálogo"
	}
}

// shippingEvidence are the substrings that count as an explicit shipping SLA
// in the raw services list. Without one of these, ecommerce bullets must not
// assert a specific delivery window.
var shippingEvidence = []string{"24/48", "48h", "24h"}

func (b *CopyBuilder) bullets(in CopyInput) []string {
	var bullets []string

	switch {
	case in.Domain == valueobjects.DomainHealth:
		locationBullet := "Ubicación cómoda y accesible"
		if in.Location != "" {
			locationBullet = "Ubicación cómoda en " + in.Location
		}
		bullets = []string{
			"Atención cercana y profesional",
			"Transparencia en el plan de tratamiento",
			"Seguimiento y recordatorios de cita",
			locationBullet,
		}
	case in.Domain == valueobjects.DomainLegal:
		bullets = []string{
			"Estrategia clara desde el primer día",
			"Documentación y plazos bajo control",
			"Trato directo, sin intermediarios",
			"Presupuesto orientativo antes de iniciar",
		}
	case in.Domain == valueobjects.DomainSaaS:
		bullets = []string{
			"Implantación rápida sin fricción",
			"Visibilidad en tiempo real (KPIs)",
			"Automatización de tareas repetitivas",
			"Soporte y onboarding guiado",
		}
	case in.Domain == valueobjects.DomainHospitality:
		bullets = []string{
			"Producto de temporada",
			"Ambiente cuidado y auténtico",
			"Opciones para grupos y eventos",
			"Reserva fácil por contacto",
		}
	case in.BusinessType == valueobjects.BusinessEcommerce:
		shipping := "Envíos con condiciones claras"
		if containsAny(strings.Join(in.Services, " "), shippingEvidence) {
			shipping = "Envío 24/48h con seguimiento"
		}
		bullets = []string{
			shipping,
			"Cambios y devoluciones claras",
			"Pago seguro y soporte rápido",
			"Drops / stock limitado (si aplica)",
		}
	default:
		bullets = []string{"Profesionalidad", "Respuesta rápida", "Calidad y confianza"}
	}

	if in.Goal == valueobjects.GoalSingleAction {
		if len(bullets) > maxSingleActionBullets-1 {
			bullets = bullets[:maxSingleActionBullets-1]
		}
		bullets = append([]string{"Una única acción, sin distracciones"}, bullets...)
		if in.Domain == valueobjects.DomainSaaS && len(bullets) > 1 {
			bullets[1] = intentBullet(in.Intent)
		}
	}
	if in.Goal == valueobjects.GoalBookAppointments && in.Domain != valueobjects.DomainHealth {
		if len(bullets) > 3 {
			bullets = bullets[:3]
		}
		bullets = append([]string{"Reserva sencilla y confirmación rápida"}, bullets...)
	}

	return bullets
}

func intentBullet(intent valueobjects.Intent) string {
	switch intent {
	case valueobjects.IntentAudit:
		return "Auditoría inicial sin compromiso"
	case valueobjects.IntentTrial:
		return "Prueba completa, sin tarjeta"
	case valueobjects.IntentQuote:
		return "Presupuesto cerrado en 24h laborables"
	case valueobjects.IntentCall:
		return "Una llamada corta, sin guiones"
	case valueobjects.IntentDownload:
		return "Guía práctica, directa al grano"
	default:
		return "Demo guiada con ejemplos reales"
	}
}

// textBody joins up to six optional clauses with single spaces. Each clause
// is independently omitted when its source field is empty; the order is
// fixed so the output never carries doubled whitespace.
func (b *CopyBuilder) textBody(in CopyInput) string {
	var clauses []string

	if in.Sector != "" {
		clauses = append(clauses, "Especialistas en "+in.Sector+".")
	}
	if in.Location != "" {
		clauses = append(clauses, "Atendemos en "+in.Location+" y alrededores.")
	}
	if in.TargetAudience != "" {
		clauses = append(clauses, "Orientado a "+in.TargetAudience+".")
	}

	clauses = append(clauses, valueLine(in.Domain, in.BusinessType))

	if len(in.Services) > 0 {
		hint := in.Services
		if len(hint) > 3 {
			hint = hint[:3]
		}
		clauses = append(clauses, "Incluye "+strings.Join(hint, ", ")+".")
	}

	if tone := toneLine(in.Personality); tone != "" {
		clauses = append(clauses, tone)
	}

	return strings.Join(clauses, " ")
}

func valueLine(domain valueobjects.Domain, businessType valueobjects.BusinessType) string {
	switch {
	case domain == valueobjects.DomainHealth:
		return "Cuidamos cada detalle para que tu experiencia sea cómoda, clara y sin sorpresas."
	case domain == valueobjects.DomainLegal:
		return "Convertimos un proceso complejo en un plan claro: pasos, plazos y opciones."
	case domain == valueobjects.DomainSaaS:
		return "Reduce tiempos operativos y gana control con procesos simples y medibles."
	case domain == valueobjects.DomainHospitality:
		return "Tradición y producto bien tratado, con un servicio cercano."
	case businessType == valueobjects.BusinessEcommerce:
		return "Diseño, calidad y disponibilidad: compra rápida, soporte real y políticas claras."
	default:
		return "Una propuesta clara, enfocada a resultados y a una experiencia de cliente impecable."
	}
}

func toneLine(personality valueobjects.Personality) string {
	switch personality {
	case valueobjects.PersonalityBoldStreet:
		return "Piezas que destacan. Stock que vuela. Decide rápido."
	case valueobjects.PersonalityTechClean:
		return "Menos fricción. Más claridad. Todo medible."
	case valueobjects.PersonalityTrustAuthority:
		return "Confianza, rigor y respuesta rápida cuando importa."
	case valueobjects.PersonalityArtisanWarm:
		return "Hecho con intención, con materiales y procesos honestos."
	default:
		return ""
	}
}

// ContactNote selects the per-goal contact microcopy.
func (b *CopyBuilder) ContactNote(domain valueobjects.Domain, goal valueobjects.PrimaryGoal) string {
	switch goal {
	case valueobjects.GoalBookAppointments:
		return "Reserva una cita y te confirmamos lo antes posible."
	case valueobjects.GoalSingleAction:
		if domain == valueobjects.DomainSaaS {
			return "Solicita una demo y te respondemos en breve."
		}
		return "Déjanos tus datos y te respondemos en breve."
	case valueobjects.GoalSellOnline:
		return "¿Dudas de talla, envíos o disponibilidad? Escríbenos y te ayudamos."
	case valueobjects.GoalShowCatalog:
		return "Pídenos información y te orientamos según tu caso."
	default:
		return "Escríbenos y te respondemos en breve."
	}
}

// Steps returns the three-step "how it works" sequence. Booking gets its own
// sequence; SaaS sites get an intent-specific one; everything else gets the
// generic sequence.
func (b *CopyBuilder) Steps(domain valueobjects.Domain, goal valueobjects.PrimaryGoal, intent valueobjects.Intent) []entities.ModuleItem {
	if goal == valueobjects.GoalBookAppointments {
		return []entities.ModuleItem{
			{Title: "Elige tu hora", Description: "Cuéntanos qué día te encaja y el motivo de la visita."},
			{Title: "Confirmación rápida", Description: "Te confirmamos la cita y lo que necesitas traer."},
			{Title: "Te atendemos", Description: "Tratamiento claro y recomendaciones personalizadas."},
		}
	}
	if domain == valueobjects.DomainSaaS {
		return saasSteps(intent)
	}
	return []entities.ModuleItem{
		{Title: "Cuéntanos tu caso", Description: "Un par de detalles para entender tu necesidad."},
		{Title: "Te proponemos la mejor opción", Description: "Respuesta clara y sin rodeos."},
		{Title: "Empezamos", Description: "Te guiamos en los siguientes pasos."},
	}
}

func saasSteps(intent valueobjects.Intent) []entities.ModuleItem {
	switch intent {
	case valueobjects.IntentAudit:
		return []entities.ModuleItem{
			{Title: "Solicita auditoría", Description: "Cuéntanos tu proceso y dónde duele."},
			{Title: "Analizamos tu caso", Description: "Revisión guiada con datos reales."},
			{Title: "Plan de mejora", Description: "Acciones concretas y priorizadas."},
		}
	case valueobjects.IntentTrial:
		return []entities.ModuleItem{
			{Title: "Empieza la prueba", Description: "Alta en minutos, sin tarjeta."},
			{Title: "Explora con tus datos", Description: "Importa tu caso y pruébalo de verdad."},
			{Title: "Decide sin presión", Description: "Te acompañamos si quieres seguir."},
		}
	case valueobjects.IntentQuote:
		return []entities.ModuleItem{
			{Title: "Pide presupuesto", Description: "Cuéntanos alcance y volumen."},
			{Title: "Ajustamos el alcance", Description: "Una propuesta a tu medida, sin sorpresas."},
			{Title: "Propuesta cerrada", Description: "Precio claro y arranque planificado."},
		}
	case valueobjects.IntentCall:
		return []entities.ModuleItem{
			{Title: "Agenda una llamada", Description: "Elige el hueco que te encaje."},
			{Title: "Hablamos de tu caso", Description: "Veinte minutos, sin guiones."},
			{Title: "Siguientes pasos", Description: "Resumen y propuesta por escrito."},
		}
	case valueobjects.IntentDownload:
		return []entities.ModuleItem{
			{Title: "Descarga la guía", Description: "Directa al grano, sin registro eterno."},
			{Title: "Aplica lo esencial", Description: "Checklist accionable desde el primer día."},
			{Title: "Da el siguiente paso", Description: "Si encaja, te enseñamos la plataforma."},
		}
	default:
		return []entities.ModuleItem{
			{Title: "Solicita demo", Description: "Cuéntanos tu caso y tu stack actual."},
			{Title: "Te la mostramos", Description: "Demo guiada con ejemplos reales."},
			{Title: "Arranque", Description: "Onboarding y primeros resultados en días."},
		}
	}
}

// FAQ returns the per-domain FAQ entries. For SaaS single-action landings
// the lead entry adapts to the classified intent.
func (b *CopyBuilder) FAQ(domain valueobjects.Domain, goal valueobjects.PrimaryGoal, intent valueobjects.Intent) []entities.ModuleItem {
	faq := domainFAQ(domain)
	if domain == valueobjects.DomainSaaS && goal == valueobjects.GoalSingleAction {
		faq = append([]entities.ModuleItem{intentFAQLead(intent)}, faq[:2]...)
	}
	return faq
}

func domainFAQ(domain valueobjects.Domain) []entities.ModuleItem {
	switch domain {
	case valueobjects.DomainHealth:
		return []entities.ModuleItem{
			{Question: "¿Cómo pido una cita?", Answer: "Escríbenos o llámanos y te confirmamos hora en el día."},
			{Question: "¿Atendéis urgencias?", Answer: "Sí, reservamos huecos diarios para urgencias."},
			{Question: "¿Trabajáis con seguros?", Answer: "Trabajamos con las principales aseguradoras; consúltanos la tuya."},
		}
	case valueobjects.DomainLegal:
		return []entities.ModuleItem{
			{Question: "¿La primera consulta tiene coste?", Answer: "La primera valoración es orientativa y sin compromiso."},
			{Question: "¿Cuánto tarda mi caso?", Answer: "Te damos plazos realistas tras revisar la documentación."},
			{Question: "¿Cómo se calculan los honorarios?", Answer: "Presupuesto cerrado u orientativo antes de iniciar."},
		}
	case valueobjects.DomainSaaS:
		return []entities.ModuleItem{
			{Question: "¿Cuánto dura la implantación?", Answer: "La mayoría de equipos arranca en menos de una semana."},
			{Question: "¿Se integra con mis herramientas?", Answer: "Integraciones con email, calendario y las plataformas habituales."},
			{Question: "¿Puedo exportar mis datos?", Answer: "Siempre. Tus datos son tuyos, exportables en formatos estándar."},
		}
	case valueobjects.DomainHospitality:
		return []entities.ModuleItem{
			{Question: "¿Hace falta reservar?", Answer: "Recomendamos reservar, sobre todo en fin de semana."},
			{Question: "¿Tenéis opciones para grupos?", Answer: "Sí, menús y espacios para grupos y eventos."},
			{Question: "¿Hay opciones vegetarianas?", Answer: "Siempre hay alternativas de temporada; pregúntanos."},
		}
	case valueobjects.DomainEcommerce:
		return []entities.ModuleItem{
			{Question: "¿Cuánto tarda el envío?", Answer: "Te mostramos plazos y seguimiento antes de confirmar el pedido."},
			{Question: "¿Cómo funcionan las devoluciones?", Answer: "Condiciones claras y sin letra pequeña, desde tu cuenta."},
			{Question: "¿Es seguro el pago?", Answer: "Pasarelas verificadas y confirmación inmediata."},
		}
	default:
		return []entities.ModuleItem{
			{Question: "¿Cómo empezamos?", Answer: "Escríbenos con un par de detalles y te orientamos."},
			{Question: "¿Cuánto cuesta?", Answer: "Depende del alcance; te damos un orientativo rápido."},
			{Question: "¿En qué zona trabajáis?", Answer: "Atendemos la zona y alrededores; consúltanos tu caso."},
		}
	}
}

func intentFAQLead(intent valueobjects.Intent) entities.ModuleItem {
	switch intent {
	case valueobjects.IntentAudit:
		return entities.ModuleItem{Question: "¿Qué incluye la auditoría?", Answer: "Revisión de tu proceso actual y un plan de mejora priorizado."}
	case valueobjects.IntentTrial:
		return entities.ModuleItem{Question: "¿La prueba tiene límites?", Answer: "Funcionalidad completa durante el periodo de prueba, sin tarjeta."}
	case valueobjects.IntentQuote:
		return entities.ModuleItem{Question: "¿Cuándo recibo el presupuesto?", Answer: "En 24h laborables tras entender tu alcance."}
	case valueobjects.IntentCall:
		return entities.ModuleItem{Question: "¿Cuánto dura la llamada?", Answer: "Unos veinte minutos, centrados en tu caso."}
	case valueobjects.IntentDownload:
		return entities.ModuleItem{Question: "¿Qué incluye la descarga?", Answer: "Una guía práctica con checklist accionable."}
	default:
		return entities.ModuleItem{Question: "¿Qué veré en la demo?", Answer: "Tu caso de uso sobre la plataforma, con ejemplos reales."}
	}
}

// Testimonials returns the per-domain testimonial entries.
func (b *CopyBuilder) Testimonials(domain valueobjects.Domain) []entities.ModuleItem {
	switch domain {
	case valueobjects.DomainHealth:
		return []entities.ModuleItem{
			{Author: "Marta G.", Quote: "Me explicaron el tratamiento paso a paso, sin sorpresas en el precio."},
			{Author: "Javier R.", Quote: "Pedí cita por la mañana y me atendieron esa misma tarde."},
		}
	case valueobjects.DomainLegal:
		return []entities.ModuleItem{
			{Author: "Laura M.", Quote: "Convirtieron un proceso que me superaba en un plan con fechas claras."},
			{Author: "Carlos V.", Quote: "Trato directo con el abogado, sin intermediarios."},
		}
	case valueobjects.DomainSaaS:
		return []entities.ModuleItem{
			{Author: "Operaciones, pyme industrial", Quote: "En dos semanas teníamos los tickets bajo control y métricas de verdad."},
			{Author: "IT, cadena de retail", Quote: "La implantación fue rápida y el onboarding, guiado de principio a fin."},
		}
	case valueobjects.DomainHospitality:
		return []entities.ModuleItem{
			{Author: "Ana P.", Quote: "Producto de temporada y un trato cercano; volveremos seguro."},
			{Author: "Grupo de empresa", Quote: "Organizaron nuestra cena de equipo sin una sola pega."},
		}
	case valueobjects.DomainEcommerce:
		return []entities.ModuleItem{
			{Author: "Cliente verificado", Quote: "Llegó antes de lo previsto y la talla era exacta a la guía."},
			{Author: "Cliente verificado", Quote: "Tuve que cambiar un pedido y fue sorprendentemente fácil."},
		}
	default:
		return []entities.ModuleItem{
			{Author: "Cliente", Quote: "Respuesta rápida y un resultado mejor del que esperaba."},
			{Author: "Cliente", Quote: "Profesionales de principio a fin."},
		}
	}
}
