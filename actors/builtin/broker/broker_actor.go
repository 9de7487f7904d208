package broker

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/coretime-project/coretime-actors/actors/builtin"
	"github.com/coretime-project/coretime-actors/actors/runtime"
	"github.com/coretime-project/coretime-actors/actors/util/adt"
)

// The coretime broker actor. It sells regions of core time in periodic
// sales, maintains the region ledger, compiles per-core assignments ahead
// of each timeslice, and distributes instantaneous pool revenue.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Reserve,
		3:                         a.Unreserve,
		4:                         a.StartSales,
		5:                         a.Purchase,
		6:                         a.PurchaseCredit,
		7:                         a.Transfer,
		8:                         a.Partition,
		9:                         a.Interlace,
		10:                        a.Assign,
		11:                        a.Pool,
		12:                        a.ClaimRevenue,
		13:                        a.CheckRevenue,
		14:                        a.OnEpochTick,
		15:                        a.NotifyInstantaneousUsage,
	}
}

var _ runtime.Invokee = Actor{}

func (a Actor) Constructor(rt runtime.Runtime, params *ConstructorParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)
	if params.CoreCount == 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "core count must be positive")
	}

	st, err := ConstructState(adt.AsStore(rt), params.CoreCount)
	if err != nil {
		rt.Abortf(exitcode.ErrIllegalState, "failed to construct state: %v", err)
	}
	rt.State().Create(st)
	return nil
}

// Reserve adds a workload to the reserved schedules renewed on every sale
// rotation. The new reservation takes effect with the next rotation.
func (a Actor) Reserve(rt runtime.Runtime, params *ReserveParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.GovernorActorAddr)
	if err := params.Workload.Validate(); err != nil {
		rt.Abortf(exitcode.ErrIllegalArgument, "invalid workload: %v", err)
	}

	var st State
	rt.State().Transaction(&st, func() interface{} {
		if len(st.Reservations) >= int(st.Status.CoreCount) {
			rt.Abortf(exitcode.ErrIllegalState, "all %d cores already reserved", st.Status.CoreCount)
		}
		st.Reservations = append(st.Reservations, params.Workload)
		return nil
	})
	return nil
}

// Unreserve removes the reservation at the given index. Schedules already in
// the workplan or workload are unaffected; the workload simply stops being
// renewed.
func (a Actor) Unreserve(rt runtime.Runtime, params *UnreserveParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.GovernorActorAddr)

	var st State
	rt.State().Transaction(&st, func() interface{} {
		if params.Index >= uint64(len(st.Reservations)) {
			rt.Abortf(exitcode.ErrNotFound, "no reservation at index %d", params.Index)
		}
		st.Reservations = append(st.Reservations[:params.Index], st.Reservations[params.Index+1:]...)
		return nil
	})
	return nil
}

// StartSales opens the first sale period at the given baseline price and
// activates the sale rotation machinery.
func (a Actor) StartSales(rt runtime.Runtime, params *StartSalesParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.GovernorActorAddr)
	if params.Price.LessThanEqual(big.Zero()) {
		rt.Abortf(exitcode.ErrIllegalArgument, "price %v must be positive", params.Price)
	}

	var st State
	rt.State().Transaction(&st, func() interface{} {
		if st.SaleActive {
			rt.Abortf(exitcode.ErrIllegalState, "sales already started")
		}
		if err := st.startSale(adt.AsStore(rt), rt.CurrEpoch(), params.Price); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to start sale: %v", err)
		}
		return nil
	})
	return nil
}

// Purchase buys one core for the sale's region span at the current lead-in
// price, paid from the message value. Excess value is refunded.
func (a Actor) Purchase(rt runtime.Runtime, params *PurchaseParams) *PurchaseReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	buyer := rt.Message().Caller()

	var st State
	rt.State().Readonly(&st)
	if !st.SaleActive {
		rt.Abortf(exitcode.ErrIllegalState, "no sale is active")
	}
	if st.Sale.CoresSold >= st.Sale.CoresOffered {
		rt.Abortf(exitcode.ErrIllegalState, "all %d cores sold", st.Sale.CoresOffered)
	}
	price := SalePrice(&st.Sale, rt.CurrEpoch())
	if price.GreaterThan(params.MaxPrice) {
		rt.Abortf(exitcode.ErrIllegalArgument, "price %v exceeds limit %v", price, params.MaxPrice)
	}

	builtin.ConfirmFundsReceiptOrAbort_RefundRemainder(rt, price)

	var id RegionID
	rt.State().Transaction(&st, func() interface{} {
		var err error
		id, err = st.mintRegion(adt.AsStore(rt), buyer, price)
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to mint region: %v", err)
		}
		return nil
	})
	return &PurchaseReturn{Region: id, Price: price}
}

// PurchaseCredit deposits prepaid credit for instantaneous core usage on
// behalf of a beneficiary, paid from the message value.
func (a Actor) PurchaseCredit(rt runtime.Runtime, params *PurchaseCreditParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	if params.Amount.LessThanEqual(big.Zero()) {
		rt.Abortf(exitcode.ErrIllegalArgument, "credit amount %v must be positive", params.Amount)
	}

	builtin.ConfirmFundsReceiptOrAbort_RefundRemainder(rt, params.Amount)

	var st State
	rt.State().Transaction(&st, func() interface{} {
		if err := st.addCredit(adt.AsStore(rt), params.Beneficiary, params.Amount); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to add credit: %v", err)
		}
		return nil
	})
	return nil
}

// Transfer reassigns ownership of a region to a new owner.
func (a Actor) Transfer(rt runtime.Runtime, params *TransferParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	caller := rt.Message().Caller()

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		record := requireOwnedRegion(rt, &st, store, params.Region, caller)
		if err := st.transferRegion(store, params.Region, record, params.NewOwner); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to transfer region: %v", err)
		}
		return nil
	})
	return nil
}

// Partition splits a region at a pivot timeslice into two consecutive
// regions of the same core part.
func (a Actor) Partition(rt runtime.Runtime, params *PartitionParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	caller := rt.Message().Caller()

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		record := requireOwnedRegion(rt, &st, store, params.Region, caller)
		if params.Pivot <= params.Region.Begin || params.Pivot >= record.End {
			rt.Abortf(exitcode.ErrIllegalArgument, "pivot %d outside region span (%d, %d)", params.Pivot, params.Region.Begin, record.End)
		}
		if _, _, err := st.partitionRegion(store, params.Region, record, params.Pivot); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to partition region: %v", err)
		}
		return nil
	})
	return nil
}

// Interlace splits a region into two regions of the same span covering
// complementary core parts.
func (a Actor) Interlace(rt runtime.Runtime, params *InterlaceParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	caller := rt.Message().Caller()

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		record := requireOwnedRegion(rt, &st, store, params.Region, caller)
		if params.Part.IsEmpty() || params.Part == params.Region.Part || !params.Part.IsSubsetOf(params.Region.Part) {
			rt.Abortf(exitcode.ErrIllegalArgument, "part %v is not a proper subset of region part %v", params.Part, params.Region.Part)
		}
		if _, _, err := st.interlaceRegion(store, params.Region, record, params.Part); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to interlace region: %v", err)
		}
		return nil
	})
	return nil
}

// Assign consumes a region, dedicating its core part to a task from the
// region's effective begin until its end.
func (a Actor) Assign(rt runtime.Runtime, params *AssignParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	caller := rt.Message().Caller()

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		record := requireOwnedRegion(rt, &st, store, params.Region, caller)
		if err := st.assignRegion(store, params.Region, record, params.Task); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to assign region: %v", err)
		}
		return nil
	})
	return nil
}

// Pool consumes a region into the instantaneous pool, entitling the payee to
// a pro-rata share of pool revenue for the region's span.
func (a Actor) Pool(rt runtime.Runtime, params *PoolParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	caller := rt.Message().Caller()

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		record := requireOwnedRegion(rt, &st, store, params.Region, caller)
		if _, err := st.poolRegion(store, params.Region, record, params.Payee); err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to pool region: %v", err)
		}
		return nil
	})
	return nil
}

// ClaimRevenue pays out a pooled region's share of processed pool revenue
// for up to MaxTimeslices timeslices. Anyone may call; payment always goes
// to the contribution's payee.
func (a Actor) ClaimRevenue(rt runtime.Runtime, params *ClaimRevenueParams) *ClaimRevenueReturn {
	rt.ValidateImmediateCallerAcceptAny()
	if params.MaxTimeslices == 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "max timeslices must be positive")
	}

	var st State
	var contribution ContributionRecord
	ret := rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		contributions := adt.AsMap(store, st.Contributions)
		found, err := contributions.Get(params.Region, &contribution)
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to load contribution: %v", err)
		}
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no contribution for region %v", params.Region)
		}
		paid, retired, err := st.claimRevenue(store, params.Region, &contribution, params.MaxTimeslices)
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to claim revenue: %v", err)
		}
		return &ClaimRevenueReturn{Paid: paid, Retired: retired}
	}).(*ClaimRevenueReturn)

	if ret.Paid.GreaterThan(big.Zero()) {
		_, code := rt.Send(contribution.Payee, builtin.MethodSend, nil, ret.Paid)
		builtin.RequireSuccess(rt, code, "failed to pay %v to %v", ret.Paid, contribution.Payee)
	}
	return ret
}

// CheckRevenue processes one timeslice of pool history, splitting its
// revenue between the system and the private contributors. Callers drive it
// until the return reports no more work.
func (a Actor) CheckRevenue(rt runtime.Runtime, _ *adt.EmptyValue) *CheckRevenueReturn {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	ret := rt.State().Transaction(&st, func() interface{} {
		more, err := st.checkRevenue(adt.AsStore(rt))
		if err != nil {
			rt.Abortf(exitcode.ErrIllegalState, "failed to check revenue: %v", err)
		}
		return &CheckRevenueReturn{More: more}
	}).(*CheckRevenueReturn)
	return ret
}

// OnEpochTick advances the timeslice clock with one timeslice of lookahead,
// pushing an assignment message to the scheduler for every core whose
// workload changes, and rotating the sale when its region begin is reached.
func (a Actor) OnEpochTick(rt runtime.Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)
	now := rt.CurrEpoch()

	var st State
	var messages []AssignCoreParams
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		target := CurrentTimeslice(now) + AdvanceNotice
		for ts := st.Status.LastCommittedTimeslice + 1; ts <= target; ts++ {
			msgs, err := st.commitTimeslice(store, ts)
			if err != nil {
				rt.Abortf(exitcode.ErrIllegalState, "failed to commit timeslice %d: %v", ts, err)
			}
			messages = append(messages, msgs...)
			if st.SaleActive && ts >= st.Sale.RegionBegin {
				if err := st.rotateSale(store, now); err != nil {
					rt.Abortf(exitcode.ErrIllegalState, "failed to rotate sale: %v", err)
				}
			}
		}
		return nil
	})

	for i := range messages {
		_, code := rt.Send(builtin.SchedulerActorAddr, builtin.MethodsScheduler.AssignCore, &messages[i], big.Zero())
		builtin.RequireSuccess(rt, code, "failed to push assignment for core %d", messages[i].Core)
	}
	return nil
}

// NotifyInstantaneousUsage reports instantaneous pool consumption for a
// committed timeslice, charging the payer's prepaid credit.
func (a Actor) NotifyInstantaneousUsage(rt runtime.Runtime, params *UsageParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.CoretimeProviderActorAddr)

	var st State
	rt.State().Transaction(&st, func() interface{} {
		if _, err := st.recordUsage(adt.AsStore(rt), params.Timeslice, params.Ticks, params.Payer); err != nil {
			if err == errNoHistory {
				rt.Abortf(exitcode.ErrIllegalState, "timeslice %d has no pool history", params.Timeslice)
			}
			rt.Abortf(exitcode.ErrIllegalState, "failed to record usage: %v", err)
		}
		return nil
	})
	return nil
}

// requireOwnedRegion loads a region and checks that it is owned by the given
// caller, aborting otherwise. Regions consumed into the pool are owned by
// the broker itself and so always fail the ownership check.
func requireOwnedRegion(rt runtime.Runtime, st *State, store adt.Store, id RegionID, caller addr.Address) *RegionRecord {
	record, found, err := st.getRegion(store, id)
	if err != nil {
		rt.Abortf(exitcode.ErrIllegalState, "failed to load region: %v", err)
	}
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no region %v", id)
	}
	if record.Owner != caller {
		rt.Abortf(exitcode.ErrForbidden, "caller %v does not own region %v", caller, id)
	}
	return record
}
