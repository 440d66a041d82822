package valueobjects

// Personality is a fixed stylistic archetype tag controlling theme and copy tone.
// It is selected once per site, deterministically, and never recomputed after
// generation except by explicit operator override.
type Personality string

const (
	PersonalityTrustAuthority  Personality = "trust_authority"
	PersonalityCalmCare        Personality = "calm_care"
	PersonalityFriendlyLocal   Personality = "friendly_local"
	PersonalityTechClean       Personality = "tech_clean"
	PersonalityEnterpriseSolid Personality = "enterprise_solid"
	PersonalityBoldStreet      Personality = "bold_street"
	PersonalityArtisanWarm     Personality = "artisan_warm"
	PersonalityModernMinimal   Personality = "modern_minimal"
	PersonalityPremiumElegant  Personality = "premium_elegant"
	PersonalityCorporateB2B    Personality = "corporate_b2b"
)

// String returns the string representation of the Personality
func (p Personality) String() string {
	return string(p)
}
