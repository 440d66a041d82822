package handlers

import (
	"net/http"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/pkg/common"
)

// PresetHandler serves the fixed QA briefs the portal offers as one-click
// starting points. Each preset exercises a different archetype.
type PresetHandler struct{}

// NewPresetHandler creates a new preset handler
func NewPresetHandler() *PresetHandler {
	return &PresetHandler{}
}

// Preset pairs a QA brief with a short label for the portal picker.
type Preset struct {
	ID    string               `json:"id"`
	Label string               `json:"label"`
	Brief entities.ClientBrief `json:"brief"`
}

// ListPresets handles GET /api/v1/presets.
func (h *PresetHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, presets)
}

var presets = []Preset{
	{
		ID:    "clinica-dental",
		Label: "Clínica dental (reservas)",
		Brief: entities.ClientBrief{
			BusinessName:   "Clínica Dental Sonrisa Norte",
			Sector:         "Clínica dental",
			Location:       "Bilbao",
			TargetAudience: "Familias y pacientes con sensibilidad dental",
			Services:       []string{"Implantes", "Ortodoncia invisible", "Limpieza dental"},
			Tone:           "cercano y profesional",
			Seed:           202,
			Goal: entities.GoalInput{
				PrimaryGoal:    "book_appointments",
				ConversionMode: "booking",
				GoalText:       "Conseguir reservas de primera consulta",
			},
		},
	},
	{
		ID:    "fluxdesk-saas",
		Label: "FluxDesk (SaaS demo)",
		Brief: entities.ClientBrief{
			BusinessName:   "FluxDesk",
			Sector:         "Plataforma SaaS de soporte al cliente",
			TargetAudience: "Equipos de soporte B2B",
			Services:       []string{"Bandeja compartida", "Automatizaciones", "Informes"},
			Tone:           "tecnológico y claro",
			Seed:           404,
			Goal: entities.GoalInput{
				PrimaryGoal:    "single_action",
				ConversionMode: "single_cta",
				GoalText:       "Conseguir demos del producto",
				GoalDetail:     "Solicitar demo",
			},
		},
	},
	{
		ID:    "kora-footwear",
		Label: "Kōra Footwear (ecommerce)",
		Brief: entities.ClientBrief{
			BusinessName:   "Kōra Footwear",
			Sector:         "Tienda online de zapatillas",
			TargetAudience: "Sneakerheads y compradores urbanos",
			Services:       []string{"Envío 24/48h", "Cambios gratuitos", "Drops exclusivos"},
			Tone:           "urbano y directo",
			Seed:           505,
			Goal: entities.GoalInput{
				PrimaryGoal:    "sell_online",
				ConversionMode: "catalog",
				GoalText:       "Vender zapatillas online",
			},
		},
	},
}
