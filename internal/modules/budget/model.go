// README: Budget normalization types.
package budget

import "voyago/internal/types"

// SettlementCurrency is the single currency all monetary fields in the
// output are normalized to.
const SettlementCurrency = "INR"

// Breakdown splits a normalized per-person budget across spend categories.
type Breakdown struct {
	Accommodation int64
	Food          int64
	Transport     int64
	Activities    int64
}

// Estimate is the result of normalizing one request budget.
type Estimate struct {
	Total     types.Money
	Breakdown Breakdown
}
