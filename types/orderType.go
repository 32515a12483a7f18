package types

type RateType string

type ActivityKind string

const (
	RateVariable RateType = "VARIABLE"
	RateFixed    RateType = "FIXED"

	ActivityDeposit  ActivityKind = "DEPOSIT"
	ActivityBorrow   ActivityKind = "BORROW"
	ActivityRepay    ActivityKind = "REPAY"
	ActivityWithdraw ActivityKind = "WITHDRAW"
)

func (r RateType) Valid() bool {
	return r == RateVariable || r == RateFixed
}
