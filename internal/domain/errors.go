package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a detail lookup with no matching record. A terminal
// rendering state for the page, not an exception.
var ErrNotFound = errors.New("not found")

// ErrMissingFilter marks a search invoked below the minimum-filter threshold.
// A UI guidance state, never a network error: it must be intercepted before
// the remote client is reached.
var ErrMissingFilter = errors.New("missing filter criteria")

// RemoteQueryError is a non-2xx answer from the upstream API.
type RemoteQueryError struct {
	Status int
	URL    string
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("upstream query failed: status %d (%s)", e.Status, e.URL)
}

// ConfigError reports a missing required setting, e.g. the sitemap generator
// without an upstream base URL.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required setting %s", e.Setting)
}
