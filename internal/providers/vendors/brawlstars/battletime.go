package brawlstars

import (
	"fmt"
	"time"
)

// DecodeBattleTime decodes the upstream battle timestamp. Despite the
// trailing "Z" the string is not ISO-8601 ("20260127T203456.000Z"); the
// fields must be sliced positionally and reassembled.
func DecodeBattleTime(raw string) (time.Time, error) {
	if len(raw) < 15 {
		return time.Time{}, fmt.Errorf("battle timestamp too short: %q", raw)
	}

	iso := fmt.Sprintf("%s-%s-%sT%s:%s:%sZ",
		raw[0:4],   // year
		raw[4:6],   // month
		raw[6:8],   // day
		raw[9:11],  // hour
		raw[11:13], // minute
		raw[13:15], // second
	)

	t, err := time.Parse("2006-01-02T15:04:05Z", iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid battle timestamp %q: %w", raw, err)
	}

	return t, nil
}
