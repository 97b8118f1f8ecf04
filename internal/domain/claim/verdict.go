package claim

// Verdict is the outcome of validating one candidate. The rules are evaluated
// in order: item claimable, entitlement present with a positive amount, no
// prior fulfillment. The first failing rule determines the verdict.
type Verdict int

const (
	// VerdictAdmitted means all admission rules passed.
	VerdictAdmitted Verdict = iota
	// VerdictItemNotClaimable means the item is not configured as claimable.
	VerdictItemNotClaimable
	// VerdictNotEntitled means the address has no positive entitlement for
	// the item.
	VerdictNotEntitled
	// VerdictAlreadyFulfilled means a fulfillment record already exists for
	// the pair.
	VerdictAlreadyFulfilled
)

// Reason codes reported per rejected candidate.
const (
	ReasonItemNotClaimable = "ITEM_NOT_CLAIMABLE"
	ReasonNotEntitled      = "NOT_ENTITLED"
	ReasonAlreadyFulfilled = "ALREADY_FULFILLED"
)

// Admitted reports whether the verdict admits the candidate.
func (v Verdict) Admitted() bool {
	return v == VerdictAdmitted
}

// Reason returns the machine-readable rejection reason, or an empty string
// for an admitted candidate.
func (v Verdict) Reason() string {
	switch v {
	case VerdictItemNotClaimable:
		return ReasonItemNotClaimable
	case VerdictNotEntitled:
		return ReasonNotEntitled
	case VerdictAlreadyFulfilled:
		return ReasonAlreadyFulfilled
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Verdict) String() string {
	if v == VerdictAdmitted {
		return "ADMITTED"
	}
	return v.Reason()
}
