// README: Common money value object used across modules.
package types

// Money is an integer amount in whole units of Currency.
// All monetary values downstream of budget normalization are settled in INR.
type Money struct {
	Amount   int64
	Currency string
}
