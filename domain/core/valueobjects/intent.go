package valueobjects

// Intent is the single-action landing objective derived from the brief's
// free-text goal detail. It drives which step sequence, bullet set and FAQ
// set the copy builder selects.
type Intent string

const (
	IntentDemo     Intent = "demo"
	IntentAudit    Intent = "audit"
	IntentTrial    Intent = "trial"
	IntentQuote    Intent = "quote"
	IntentCall     Intent = "call"
	IntentDownload Intent = "download"
)

// AllIntents lists every supported intent.
func AllIntents() []Intent {
	return []Intent{
		IntentDemo,
		IntentAudit,
		IntentTrial,
		IntentQuote,
		IntentCall,
		IntentDownload,
	}
}

// String returns the string representation of the Intent
func (i Intent) String() string {
	return string(i)
}
