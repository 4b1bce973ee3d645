package constants

// Pagination defaults and caps applied by the API executor when the request
// omits or exceeds them.
const (
	DEFAULT_LIMIT = 50
	MAX_LIMIT     = 200

	DEFAULT_STAT_DAYS = 7
	MAX_STAT_DAYS     = 90
)
