package questiongen

import "time"

// Input carries the vendor-link context the catalog is personalized with.
type Input struct {
	// Segment is the company's line of business, e.g. "clínica odontológica".
	Segment string

	// CompanySize is the headcount band, e.g. "6-20".
	CompanySize string

	// Revenue is the monthly revenue band, e.g. "50k-200k". Optional.
	Revenue string

	// JobTitle is the respondent's role, e.g. "sócio". Optional.
	JobTitle string
}

// Config controls the catalog generator.
type Config struct {
	// MaxTokens is the token budget for the full 20-question response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds a single generation call. The funnel cannot start
	// without a catalog, so the caller surfaces a hard error on expiry.
	Timeout time.Duration
}

// DefaultConfig returns the recommended generator settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
		Timeout:     25 * time.Second,
	}
}
