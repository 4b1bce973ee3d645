package domain

import "errors"

var (
	// ErrForbidden is returned when the upstream API rejects the key or the
	// caller's IP is not on the key's allowlist. Non-retryable, fatal to a run.
	ErrForbidden = errors.New("upstream API returned 403: invalid API key or IP not allowlisted")

	// ErrRateLimited is returned after bounded 429 retries are exhausted.
	ErrRateLimited = errors.New("upstream API rate limit exceeded")

	// ErrNotFound is returned for a missing upstream resource (404).
	ErrNotFound = errors.New("upstream resource not found")

	// ErrSettingsIncomplete is returned when a sync run starts without a
	// configured club tag or API key.
	ErrSettingsIncomplete = errors.New("sync settings incomplete: club tag and API key are required")
)
