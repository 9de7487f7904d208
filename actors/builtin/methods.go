package builtin

import (
	abi "github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type brokerMethods struct {
	Constructor              abi.MethodNum
	Reserve                  abi.MethodNum
	Unreserve                abi.MethodNum
	StartSales               abi.MethodNum
	Purchase                 abi.MethodNum
	PurchaseCredit           abi.MethodNum
	Transfer                 abi.MethodNum
	Partition                abi.MethodNum
	Interlace                abi.MethodNum
	Assign                   abi.MethodNum
	Pool                     abi.MethodNum
	ClaimRevenue             abi.MethodNum
	CheckRevenue             abi.MethodNum
	OnEpochTick              abi.MethodNum
	NotifyInstantaneousUsage abi.MethodNum
}

var MethodsBroker = brokerMethods{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// Methods of the external task scheduler, the receiver of per-core
// assignment messages. Only the ones the broker invokes are listed.
type schedulerMethods struct {
	Constructor abi.MethodNum
	AssignCore  abi.MethodNum
}

var MethodsScheduler = schedulerMethods{MethodConstructor, 2}
