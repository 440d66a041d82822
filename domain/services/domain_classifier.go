package services

import (
	"strings"

	"nextsite-backend/domain/core/valueobjects"
)

// domainKeywords maps each domain to the sector keywords that select it.
// Keywords are matched as substrings of the folded (lowercase, deaccented)
// sector text, in the order listed in domainPriority; first match wins.
var domainKeywords = map[valueobjects.Domain][]string{
	valueobjects.DomainHealth:      {"dental", "clin", "odont", "salud", "fisio", "medic"},
	valueobjects.DomainLegal:       {"abog", "legal", "desp", "laboral", "civil"},
	valueobjects.DomainSaaS:        {"saas", "software", "plataforma", "incid", "ticket"},
	valueobjects.DomainHospitality: {"rest", "asador", "bar", "cafe", "hostel"},
	valueobjects.DomainEcommerce:   {"zapat", "ropa", "moda", "tienda", "ecommerce"},
}

var domainPriority = []valueobjects.Domain{
	valueobjects.DomainHealth,
	valueobjects.DomainLegal,
	valueobjects.DomainSaaS,
	valueobjects.DomainHospitality,
	valueobjects.DomainEcommerce,
}

// ClassifyDomain maps free-text sector to a domain tag. Pure, total: empty
// or unmatched input yields generic.
func ClassifyDomain(sector string) valueobjects.Domain {
	folded := valueobjects.FoldText(sector)
	if folded == "" {
		return valueobjects.DomainGeneric
	}
	for _, d := range domainPriority {
		for _, kw := range domainKeywords[d] {
			if strings.Contains(folded, kw) {
				return d
			}
		}
	}
	return valueobjects.DomainGeneric
}

// containsAny reports whether the folded text contains any of the keywords.
func containsAny(text string, keywords []string) bool {
	folded := valueobjects.FoldText(text)
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
