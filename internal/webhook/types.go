package webhook

// MaxEmbedsPerRequest is the external service's per-request embed limit;
// larger batches are split across multiple requests.
const MaxEmbedsPerRequest = 10

// Embed colors per event family
const (
	ColorGreen  = 0x2ECC71 // joins
	ColorRed    = 0xE74C3C // leaves, demotions
	ColorBlue   = 0x3498DB // promotions, role changes
	ColorYellow = 0xF1C40F // name changes
	ColorGrey   = 0x95A5A6 // inactivity digests
)

// Embed is one Discord-style message embed
type Embed struct {
	// Title is the short headline
	Title string `json:"title"`
	// Description is the embed body
	Description string `json:"description,omitempty"`
	// Color is the accent color as a decimal RGB value
	Color int `json:"color,omitempty"`
	// Timestamp is the ISO-8601 event time rendered in the embed footer
	Timestamp string `json:"timestamp,omitempty"`
}

// Payload is the webhook request body
type Payload struct {
	// Username overrides the webhook's display name
	Username string `json:"username,omitempty"`
	// Embeds is the batch of embeds, at most MaxEmbedsPerRequest
	Embeds []Embed `json:"embeds"`
}
