// README: Generation ledger record.
package usage

import "time"

// Record is one itinerary generation, successful or not. The ledger exists
// for operational visibility (attempt counts, failure rates per destination),
// not for request-path decisions.
type Record struct {
	Destination string
	Days        int
	Attempts    int
	Success     bool
	CreatedAt   time.Time
}
