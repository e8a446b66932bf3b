package usecase

const (
	// DefaultCompoundingFrequency is monthly compounding, the configured default.
	DefaultCompoundingFrequency = 12

	// DefaultPageSize and MaxPageSize bound list queries.
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Operation names used in logs and metrics.
const (
	OperationOpen     = "open"
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
	OperationTransfer = "transfer"
	OperationInterest = "interest"
)

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
