package constants

// Common string constants used throughout the codebase
const (
	// Stages define the possible deployment/runtime environments
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"

	// Payment providers
	StripeProvider = "stripe"

	// Currencies
	USDCurrency = "usd"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}
