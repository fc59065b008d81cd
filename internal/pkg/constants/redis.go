package constants

// Redis key formats
const (
	// Emissions reporting
	KeyEmissionsSummary = "emissions_summary:user:%s:period:%s" // Format: emissions_summary:user:{user_id}:period:{period}

	// Date-range report keys carry the Y-M-D bounds so distinct ranges
	// never collide
	KeyEmissionsSummaryRange = "emissions_summary:user:%s:range:%s:%s:period:%s" // Format: emissions_summary:user:{user_id}:range:{start}:{end}:period:{period}

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)
