package builtin

import (
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/coretime-project/coretime-actors/actors/runtime"
)

///// Code shared by multiple built-in actors. /////

// Propagates a failed send by aborting the current method with the same exit code.
func RequireSuccess(rt runtime.Runtime, e exitcode.ExitCode, msg string, args ...interface{}) {
	if !e.IsSuccess() {
		rt.Abortf(e, msg, args...)
	}
}

// Aborts if the value received with the executing message is less than required,
// and refunds any excess over the requirement back to the caller.
func ConfirmFundsReceiptOrAbort_RefundRemainder(rt runtime.Runtime, fundsRequired abi.TokenAmount) {
	if rt.Message().ValueReceived().LessThan(fundsRequired) {
		rt.Abortf(exitcode.ErrInsufficientFunds, "insufficient funds received, got %v, need %v",
			rt.Message().ValueReceived(), fundsRequired)
	}

	if rt.Message().ValueReceived().GreaterThan(fundsRequired) {
		_, code := rt.Send(rt.Message().Caller(), MethodSend, nil, big.Sub(rt.Message().ValueReceived(), fundsRequired))
		RequireSuccess(rt, code, "failed to transfer refund")
	}
}
