package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nextsite-backend/domain/core/valueobjects"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   valueobjects.Intent
	}{
		{"audit keyword", "Solicitar auditoría gratuita", valueobjects.IntentAudit},
		{"diagnostic keyword", "Diagnóstico de tu web", valueobjects.IntentAudit},
		{"trial keyword", "Prueba gratis 14 días", valueobjects.IntentTrial},
		{"quote keyword", "Pide presupuesto sin compromiso", valueobjects.IntentQuote},
		{"call keyword", "Agenda una llamada", valueobjects.IntentCall},
		{"download keyword", "Descarga la guía", valueobjects.IntentDownload},
		{"demo keyword", "Solicitar demo", valueobjects.IntentDemo},
		{"empty defaults to demo", "", valueobjects.IntentDemo},
		{"unmatched defaults to demo", "Ven a conocernos", valueobjects.IntentDemo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.detail))
		})
	}
}

func TestClassifyIntent_PriorityOrder(t *testing.T) {
	// Audit outranks demo when both keywords appear.
	assert.Equal(t, valueobjects.IntentAudit, ClassifyIntent("Demo de la auditoría"))
	// Trial outranks quote.
	assert.Equal(t, valueobjects.IntentTrial, ClassifyIntent("Prueba y presupuesto"))
}
