package valueobjects

// PrimaryGoal is the site's declared conversion objective.
type PrimaryGoal string

const (
	GoalCaptureLeads     PrimaryGoal = "capture_leads"
	GoalSellOnline       PrimaryGoal = "sell_online"
	GoalBookAppointments PrimaryGoal = "book_appointments"
	GoalSingleAction     PrimaryGoal = "single_action"
	GoalShowCatalog      PrimaryGoal = "show_catalog"
	GoalPresentBrand     PrimaryGoal = "present_brand"
)

// AllGoals lists every supported primary goal.
func AllGoals() []PrimaryGoal {
	return []PrimaryGoal{
		GoalCaptureLeads,
		GoalSellOnline,
		GoalBookAppointments,
		GoalSingleAction,
		GoalShowCatalog,
		GoalPresentBrand,
	}
}

// String returns the string representation of the PrimaryGoal
func (g PrimaryGoal) String() string {
	return string(g)
}

// BusinessType is the coarse business archetype derived from the goal.
type BusinessType string

const (
	BusinessEcommerce    BusinessType = "ecommerce"
	BusinessLocalService BusinessType = "local_service"
	BusinessGeneric      BusinessType = "generic"
)

// BusinessTypeForGoal derives the business type from the primary goal.
// Pure function; unknown goals map to generic.
func BusinessTypeForGoal(goal PrimaryGoal) BusinessType {
	switch goal {
	case GoalSellOnline:
		return BusinessEcommerce
	case GoalBookAppointments:
		return BusinessLocalService
	default:
		return BusinessGeneric
	}
}

// String returns the string representation of the BusinessType
func (t BusinessType) String() string {
	return string(t)
}
