package services

import "nextsite-backend/domain/core/valueobjects"

// intentKeywords are tested in priority order; demo is both the last
// explicit match and the default for empty or unmatched input.
var intentRules = []struct {
	intent   valueobjects.Intent
	keywords []string
}{
	{valueobjects.IntentAudit, []string{"audit", "diagnostic", "revision"}},
	{valueobjects.IntentTrial, []string{"prueba", "trial", "gratis"}},
	{valueobjects.IntentQuote, []string{"presupuesto", "cotiza", "tarifa"}},
	{valueobjects.IntentCall, []string{"llamada", "llama", "call", "telefon"}},
	{valueobjects.IntentDownload, []string{"descarga", "download", "guia", "ebook"}},
	{valueobjects.IntentDemo, []string{"demo"}},
}

// ClassifyIntent maps the free-text goal detail of a single-action goal to a
// fixed intent. Pure, total; empty input defaults to demo.
func ClassifyIntent(goalDetail string) valueobjects.Intent {
	for _, rule := range intentRules {
		if containsAny(goalDetail, rule.keywords) {
			return rule.intent
		}
	}
	return valueobjects.IntentDemo
}
