package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Fixed nominal annual rates.
var (
	SavingsRate  = decimal.RequireFromString("0.03")
	CheckingRate = decimal.RequireFromString("0.01")
	JointRate    = decimal.RequireFromString("0.02")
)

// factorScale is the minimum number of fractional digits kept while
// compounding. Larger period counts get two more digits per decimal digit of
// the count so rate/n and the repeated squarings stay exact to the cent.
const factorScale = 18

// interestPolicy is the per-kind interest capability.
type interestPolicy struct {
	rate     decimal.Decimal
	compound bool
}

// policyFor returns the policy for kind. rate is only used by Credit.
func policyFor(kind AccountKind, rate decimal.Decimal) interestPolicy {
	switch kind {
	case KindSavings:
		return interestPolicy{rate: SavingsRate, compound: true}
	case KindChecking:
		// Checking reports a rate but accrues nothing.
		return interestPolicy{rate: CheckingRate}
	case KindCredit:
		return interestPolicy{rate: rate, compound: true}
	case KindJoint:
		return interestPolicy{rate: JointRate}
	}
	return interestPolicy{rate: decimal.Zero}
}

// accrue returns the interest earned on balance over one year of periods
// compounding periods, rounded to cents.
func (p interestPolicy) accrue(balance decimal.Decimal, periods int) decimal.Decimal {
	if !p.compound {
		return decimal.Zero
	}
	return CompoundInterest(balance, p.rate, periods)
}

// CompoundInterest computes balance*(1+rate/n)^n - balance rounded to cents.
// It runs in O(log n) and returns zero for non-positive n.
func CompoundInterest(balance, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}

	scale := int32(factorScale + 2*len(strconv.Itoa(periods)))
	n := decimal.NewFromInt(int64(periods))
	step := decimal.NewFromInt(1).Add(rate.DivRound(n, scale))

	factor := powRound(step, periods, scale)

	return balance.Mul(factor).Sub(balance).Round(MoneyScale)
}

// powRound raises base to exp by repeated squaring, rounding every product
// to scale fractional digits.
func powRound(base decimal.Decimal, exp int, scale int32) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(scale)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base).Round(scale)
		}
	}
	return result
}
