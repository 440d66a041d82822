package valueobjects

// Domain is the coarse sector bucket derived from the brief's free-text sector.
// It drives copy tables, FAQ sets and archetype selection.
type Domain string

const (
	DomainHealth      Domain = "health"
	DomainLegal       Domain = "legal"
	DomainSaaS        Domain = "saas"
	DomainHospitality Domain = "hospitality"
	DomainEcommerce   Domain = "ecommerce"
	DomainGeneric     Domain = "generic"
)

// AllDomains lists every domain, in classifier priority order.
func AllDomains() []Domain {
	return []Domain{
		DomainHealth,
		DomainLegal,
		DomainSaaS,
		DomainHospitality,
		DomainEcommerce,
		DomainGeneric,
	}
}

// String returns the string representation of the Domain
func (d Domain) String() string {
	return string(d)
}
