package domain

import "strings"

// AccountKind is the closed set of account variants. It selects the interest
// policy and, for Joint, the extended transfer behavior.
type AccountKind string

const (
	KindSavings  AccountKind = "savings"
	KindChecking AccountKind = "checking"
	KindCredit   AccountKind = "credit"
	KindJoint    AccountKind = "joint"
)

// JointHolderName is the display name every joint account carries.
const JointHolderName = "Joint Account"

// Kinds lists every account kind.
var Kinds = []AccountKind{KindSavings, KindChecking, KindCredit, KindJoint}

// ParseKind converts a case-insensitive name to an AccountKind.
func ParseKind(s string) (AccountKind, error) {
	k := AccountKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k AccountKind) Valid() bool {
	switch k {
	case KindSavings, KindChecking, KindCredit, KindJoint:
		return true
	}
	return false
}

// Label returns the display label, e.g. "Savings".
func (k AccountKind) Label() string {
	switch k {
	case KindSavings:
		return "Savings"
	case KindChecking:
		return "Checking"
	case KindCredit:
		return "Credit"
	case KindJoint:
		return "Joint"
	}
	return string(k)
}
