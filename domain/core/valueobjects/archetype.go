package valueobjects

// Pack is the coarse layout family driving section composition rules.
// Only ecommerce_conversion carries special composition behavior today.
type Pack string

const (
	PackEcommerceConversion Pack = "ecommerce_conversion"
	PackGeneric             Pack = "generic"
)

// PackFor derives the layout pack from business type and goal.
func PackFor(businessType BusinessType, goal PrimaryGoal) Pack {
	if businessType == BusinessEcommerce || goal == GoalSellOnline {
		return PackEcommerceConversion
	}
	return PackGeneric
}

// String returns the string representation of the Pack
func (p Pack) String() string {
	return string(p)
}

// Archetype is the section-template family used by the section planner.
type Archetype string

const (
	ArchetypeEcommerceConversion Archetype = "ecommerce_conversion"
	ArchetypeBookingTrust        Archetype = "booking_trust_v1"
	ArchetypeSaaSLanding         Archetype = "saas_landing_v1"
	ArchetypeDefault             Archetype = "default_v1"
)

// ArchetypeFor derives the archetype from business type, goal and domain.
// The SaaS landing archetype only applies to single-action goals in a
// SaaS-like domain; everything else falls through to the default family.
func ArchetypeFor(businessType BusinessType, goal PrimaryGoal, domain Domain) Archetype {
	if businessType == BusinessEcommerce || goal == GoalSellOnline {
		return ArchetypeEcommerceConversion
	}
	if goal == GoalBookAppointments {
		return ArchetypeBookingTrust
	}
	if goal == GoalSingleAction && domain == DomainSaaS {
		return ArchetypeSaaSLanding
	}
	return ArchetypeDefault
}

// String returns the string representation of the Archetype
func (a Archetype) String() string {
	return string(a)
}
