package stats

import "github.com/shopspring/decimal"

// sentinelUndefined is what the balance view reports when every closed trade
// was profitable. It stands in for "infinite" while staying JSON-serializable
// and comparable, and is part of the wire contract.
const sentinelUndefined = 999

// ProfitFactor is gross profit divided by absolute gross loss. When the gross
// loss is zero and any profit exists the ratio is undefined; the two API
// surfaces render that case differently (numeric sentinel vs "N/A"), so the
// distinction is kept explicit here instead of leaking a magic value around.
type ProfitFactor struct {
	value   decimal.Decimal
	defined bool
}

// NewProfitFactor derives the profit factor from gross profit and gross loss.
// grossLoss is the stored (negative or zero) sum; its absolute value is used.
func NewProfitFactor(grossProfit, grossLoss float64) ProfitFactor {
	profit := decimal.NewFromFloat(grossProfit)
	loss := decimal.NewFromFloat(grossLoss).Abs()

	if loss.IsPositive() {
		return ProfitFactor{value: profit.Div(loss), defined: true}
	}
	if profit.IsPositive() {
		return ProfitFactor{defined: false}
	}
	return ProfitFactor{value: decimal.Zero, defined: true}
}

// Defined reports whether the ratio has a finite value.
func (p ProfitFactor) Defined() bool { return p.defined }

// Value returns the finite ratio, or zero when undefined.
func (p ProfitFactor) Value() float64 {
	if !p.defined {
		return 0
	}
	return p.value.InexactFloat64()
}

// Sentinel renders the ratio for the balance view: the finite value, or 999
// when undefined.
func (p ProfitFactor) Sentinel() float64 {
	if !p.defined {
		return sentinelUndefined
	}
	return p.value.InexactFloat64()
}

// String renders the ratio for the analytics view: two decimal places, or
// "N/A" when undefined.
func (p ProfitFactor) String() string {
	if !p.defined {
		return "N/A"
	}
	return p.value.StringFixed(2)
}
