package broker_test

import (
	"context"
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coretime-project/coretime-actors/actors/builtin"
	"github.com/coretime-project/coretime-actors/actors/builtin/broker"
	"github.com/coretime-project/coretime-actors/actors/util/adt"
	"github.com/coretime-project/coretime-actors/support/mock"
	tutil "github.com/coretime-project/coretime-actors/support/testing"
)

func TestConstruction(t *testing.T) {
	t.Run("simple construction", func(t *testing.T) {
		rt, h := setup(t, 4)

		st := h.state(rt)
		assert.Equal(t, broker.CoreIndex(4), st.Status.CoreCount)
		assert.False(t, st.SaleActive)
		h.checkState(rt)
	})

	t.Run("rejects zero cores", func(t *testing.T) {
		rt := mock.NewBuilder(context.Background(), builtin.BrokerActorAddr).Build(t)
		h := &brokerHarness{Actor: broker.Actor{}, t: t}

		rt.SetCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Constructor, &broker.ConstructorParams{CoreCount: 0})
		})
		rt.Verify()
	})

	t.Run("rejects non-system caller", func(t *testing.T) {
		rt := mock.NewBuilder(context.Background(), builtin.BrokerActorAddr).Build(t)
		h := &brokerHarness{Actor: broker.Actor{}, t: t}

		rt.SetCaller(tutil.NewIDAddr(t, 100), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.Constructor, &broker.ConstructorParams{CoreCount: 4})
		})
		rt.Verify()
	})
}

func TestReservations(t *testing.T) {
	workload := broker.Schedule{Items: []broker.ScheduleItem{
		{Assignment: broker.TaskAssignment(7), Part: broker.CorePartComplete()},
	}}

	t.Run("reserve and unreserve", func(t *testing.T) {
		rt, h := setup(t, 2)

		h.reserve(rt, workload)
		st := h.state(rt)
		require.Len(t, st.Reservations, 1)

		h.unreserve(rt, 0)
		st = h.state(rt)
		assert.Empty(t, st.Reservations)
		h.checkState(rt)
	})

	t.Run("rejects invalid workloads", func(t *testing.T) {
		rt, h := setup(t, 2)

		rt.SetCaller(builtin.GovernorActorAddr, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Reserve, &broker.ReserveParams{Workload: broker.Schedule{}})
		})
		rt.Verify()

		overlapping := broker.Schedule{Items: []broker.ScheduleItem{
			{Assignment: broker.TaskAssignment(1), Part: broker.CorePartFromChunk(0, 40)},
			{Assignment: broker.TaskAssignment(2), Part: broker.CorePartFromChunk(30, 80)},
		}}
		rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Reserve, &broker.ReserveParams{Workload: overlapping})
		})
		rt.Verify()
	})

	t.Run("rejects reservations beyond the core count", func(t *testing.T) {
		rt, h := setup(t, 1)

		h.reserve(rt, workload)
		rt.SetCaller(builtin.GovernorActorAddr, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.Reserve, &broker.ReserveParams{Workload: workload})
		})
		rt.Verify()
	})

	t.Run("rejects unreserve of unknown index", func(t *testing.T) {
		rt, h := setup(t, 2)

		rt.SetCaller(builtin.GovernorActorAddr, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.Unreserve, &broker.UnreserveParams{Index: 0})
		})
		rt.Verify()
	})

	t.Run("rejects non-governor caller", func(t *testing.T) {
		rt, h := setup(t, 2)

		rt.SetCaller(tutil.NewIDAddr(t, 100), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.Reserve, &broker.ReserveParams{Workload: workload})
		})
		rt.Verify()
	})

	t.Run("reserved workload is pushed when its region begins", func(t *testing.T) {
		rt, h := setup(t, 2)
		h.reserve(rt, broker.Schedule{Items: []broker.ScheduleItem{
			{Assignment: broker.TaskAssignment(2), Part: broker.CorePartFromChunk(0, 40)},
			{Assignment: broker.TaskAssignment(3), Part: broker.CorePartFromChunk(40, 60)},
			{Assignment: broker.TaskAssignment(4), Part: broker.CorePartFromChunk(60, 80)},
		}})
		h.startSales(rt, abi.NewTokenAmount(100))

		st := h.state(rt)
		assert.Equal(t, broker.Timeslice(4), st.Sale.RegionBegin)
		assert.Equal(t, broker.Timeslice(8), st.Sale.RegionEnd)
		assert.Equal(t, broker.CoreIndex(1), st.Sale.CoresOffered)
		assert.Equal(t, broker.CoreIndex(1), st.Sale.FirstCore)

		// Nothing happens until the reserved region's timeslice is committed.
		h.tick(rt, 2)
		h.tick(rt, 4)

		h.tick(rt, 6, &broker.AssignCoreParams{
			Core:  0,
			Begin: 8,
			Assignment: []broker.WorkItem{
				{Assignment: broker.TaskAssignment(2), Ticks: 40 * broker.TicksPerChunk},
				{Assignment: broker.TaskAssignment(3), Ticks: 20 * broker.TicksPerChunk},
				{Assignment: broker.TaskAssignment(4), Ticks: 20 * broker.TicksPerChunk},
			},
			EndHint: broker.NoEndHint,
		})

		// Reaching the region begin rotated the sale and renewed the
		// reservation for the next region.
		st = h.state(rt)
		assert.Equal(t, broker.Timeslice(8), st.Sale.RegionBegin)
		assert.Equal(t, broker.Timeslice(12), st.Sale.RegionEnd)
		assert.Equal(t, abi.NewTokenAmount(50), st.Sale.Price)
		h.checkState(rt)
	})

	t.Run("idle items hold chunks out of use", func(t *testing.T) {
		rt, h := setup(t, 1)
		h.reserve(rt, broker.Schedule{Items: []broker.ScheduleItem{
			{Assignment: broker.Idle, Part: broker.CorePartFromChunk(0, 40)},
			{Assignment: broker.TaskAssignment(7), Part: broker.CorePartFromChunk(40, 80)},
		}})
		h.startSales(rt, abi.NewTokenAmount(100))

		h.tick(rt, 6, &broker.AssignCoreParams{
			Core:  0,
			Begin: 8,
			Assignment: []broker.WorkItem{
				{Assignment: broker.Idle, Ticks: 40 * broker.TicksPerChunk},
				{Assignment: broker.TaskAssignment(7), Ticks: 40 * broker.TicksPerChunk},
			},
			EndHint: broker.NoEndHint,
		})
		h.checkState(rt)
	})
}

func TestStartSales(t *testing.T) {
	t.Run("opens the first sale", func(t *testing.T) {
		rt, h := setup(t, 2)
		rt.SetEpoch(3)
		h.startSales(rt, abi.NewTokenAmount(100))

		st := h.state(rt)
		assert.True(t, st.SaleActive)
		assert.Equal(t, abi.ChainEpoch(3), st.Sale.SaleStart)
		assert.Equal(t, abi.NewTokenAmount(100), st.Sale.Price)
		assert.Equal(t, broker.CoreIndex(2), st.Sale.CoresOffered)
		assert.Equal(t, broker.CoreIndex(0), st.Sale.FirstCore)
		h.checkState(rt)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		rt, h := setup(t, 2)

		rt.SetCaller(builtin.GovernorActorAddr, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.StartSales, &broker.StartSalesParams{Price: big.Zero()})
		})
		rt.Verify()
	})

	t.Run("rejects a second start", func(t *testing.T) {
		rt, h := setup(t, 2)
		h.startSales(rt, abi.NewTokenAmount(100))

		rt.SetCaller(builtin.GovernorActorAddr, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.StartSales, &broker.StartSalesParams{Price: abi.NewTokenAmount(100)})
		})
		rt.Verify()
	})
}

func TestPurchase(t *testing.T) {
	buyer := tutil.NewIDAddr(t, 101)

	t.Run("pays the lead-in price at sale start", func(t *testing.T) {
		rt, h := setup(t, 1)
		h.startSales(rt, abi.NewTokenAmount(100))

		ret := h.purchase(rt, buyer, abi.NewTokenAmount(200), abi.NewTokenAmount(200))
		assert.Equal(t, abi.NewTokenAmount(200), ret.Price)
		assert.Equal(t, broker.RegionID{Begin: 4, Core: 0, Part: broker.CorePartComplete()}, ret.Region)

		st := h.state(rt)
		assert.Equal(t, broker.CoreIndex(1), st.Sale.CoresSold)
		assert.Equal(t, abi.NewTokenAmount(200), st.SaleRevenue)
		h.checkState(rt)
	})

	t.Run("price decays over the lead-in", func(t *testing.T) {
		rt, h := setup(t, 2)
		h.startSales(rt, abi.NewTokenAmount(100))

		rt.SetEpoch(1)
		ret := h.purchase(rt, buyer, abi.NewTokenAmount(150), abi.NewTokenAmount(150))
		assert.Equal(t, abi.NewTokenAmount(150), ret.Price)

		rt.SetEpoch(2)
		ret = h.purchase(rt, buyer, abi.NewTokenAmount(100), abi.NewTokenAmount(100))
		assert.Equal(t, abi.NewTokenAmount(100), ret.Price)
		assert.Equal(t, broker.CoreIndex(1), ret.Region.Core)
		h.checkState(rt)
	})

	t.Run("refunds excess payment", func(t *testing.T) {
		rt, h := setup(t, 1)
		h.startSales(rt, abi.NewTokenAmount(100))
		rt.SetEpoch(2)

		rt.ExpectSend(buyer, builtin.MethodSend, nil, abi.NewTokenAmount(50), nil, exitcode.Ok)
		ret := h.purchase(rt, buyer, abi.NewTokenAmount(150), abi.NewTokenAmount(100))
		assert.Equal(t, abi.NewTokenAmount(100), ret.Price)
	})

	t.Run("rejects insufficient payment", func(t *testing.T) {
		rt, h := setup(t, 1)
		h.startSales(rt, abi.NewTokenAmount(100))
		rt.SetEpoch(2)

		rt.SetCaller(buyer, builtin.AccountActorCodeID)
		rt.SetReceived(abi.NewTokenAmount(50))
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(h.Purchase, &broker.PurchaseParams{MaxPrice: abi.NewTokenAmount(100)})
		})
		rt.Verify()
	})

	t.Run("rejects price above limit", func(t *testing.T) {
		rt, h := setup(t, 1)
		h.startSales(rt, abi.NewTokenAmount(100))

		rt.SetCaller(buyer, builtin.AccountActorCodeID)
		rt.SetReceived(abi.NewTokenAmount(200))
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(h.Purchase, &broker.PurchaseParams{MaxPrice: abi.NewTokenAmount(100)})
		})
		rt.Verify()
	})

	t.Run("rejects when sold out", func(t *testing.T) {
		rt, h := setup(t, 1)
		h.startSales(rt, abi.NewTokenAmount(100))
		rt.SetEpoch(2)
		h.purchase(rt, buyer, abi.NewTokenAmount(100), abi.NewTokenAmount(100))

		rt.SetCaller(buyer, builtin.AccountActorCodeID)
		rt.SetReceived(abi.NewTokenAmount(100))
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.Purchase, &broker.PurchaseParams{MaxPrice: abi.NewTokenAmount(100)})
		})
		rt.Verify()
	})

	t.Run("rejects when no sale is active", func(t *testing.T) {
		rt, h := setup(t, 1)

		rt.SetCaller(buyer, builtin.AccountActorCodeID)
		rt.SetReceived(abi.NewTokenAmount(100))
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.Purchase, &broker.PurchaseParams{MaxPrice: abi.NewTokenAmount(100)})
		})
		rt.Verify()
	})
}

func TestTransfer(t *testing.T) {
	buyer := tutil.NewIDAddr(t, 101)
	newOwner := tutil.NewIDAddr(t, 102)

	t.Run("transfers ownership", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)
		region := h.boughtRegion

		h.transfer(rt, buyer, region, newOwner)

		// The old owner can no longer act on the region, the new one can.
		rt.SetCaller(buyer, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.Partition, &broker.PartitionParams{Region: region, Pivot: 6})
		})
		rt.Verify()

		h.partition(rt, newOwner, region, 6)
		h.checkState(rt)
	})

	t.Run("rejects unknown region", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)

		unknown := broker.RegionID{Begin: 20, Core: 0, Part: broker.CorePartComplete()}
		rt.SetCaller(buyer, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(h.Transfer, &broker.TransferParams{Region: unknown, NewOwner: newOwner})
		})
		rt.Verify()
	})
}

func TestPartition(t *testing.T) {
	buyer := tutil.NewIDAddr(t, 101)

	t.Run("rejects pivot outside the span", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)
		region := h.boughtRegion

		for _, pivot := range []broker.Timeslice{region.Begin, 8, 20} {
			rt.SetCaller(buyer, builtin.AccountActorCodeID)
			rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
			rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
				rt.Call(h.Partition, &broker.PartitionParams{Region: region, Pivot: pivot})
			})
			rt.Verify()
		}
	})

	t.Run("each partition is pushed when its span begins", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)
		region := h.boughtRegion

		// {4..8} -> {4..5} + {5..8} -> {4..5} + {5..6} + {6..8}
		h.partition(rt, buyer, region, 5)
		latter := broker.RegionID{Begin: 5, Core: 0, Part: broker.CorePartComplete()}
		h.partition(rt, buyer, latter, 6)

		h.assign(rt, buyer, broker.RegionID{Begin: 4, Core: 0, Part: broker.CorePartComplete()}, 1)
		h.assign(rt, buyer, broker.RegionID{Begin: 5, Core: 0, Part: broker.CorePartComplete()}, 2)
		h.assign(rt, buyer, broker.RegionID{Begin: 6, Core: 0, Part: broker.CorePartComplete()}, 3)

		h.tick(rt, 6, &broker.AssignCoreParams{
			Core:       0,
			Begin:      8,
			Assignment: []broker.WorkItem{{Assignment: broker.TaskAssignment(1), Ticks: broker.FullCoreTicks}},
			EndHint:    broker.NoEndHint,
		})
		h.tick(rt, 8, &broker.AssignCoreParams{
			Core:       0,
			Begin:      10,
			Assignment: []broker.WorkItem{{Assignment: broker.TaskAssignment(2), Ticks: broker.FullCoreTicks}},
			EndHint:    broker.NoEndHint,
		})
		h.tick(rt, 10, &broker.AssignCoreParams{
			Core:       0,
			Begin:      12,
			Assignment: []broker.WorkItem{{Assignment: broker.TaskAssignment(3), Ticks: broker.FullCoreTicks}},
			EndHint:    broker.NoEndHint,
		})
		h.checkState(rt)
	})
}

func TestInterlace(t *testing.T) {
	buyer := tutil.NewIDAddr(t, 101)

	t.Run("rejects improper parts", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)
		region := h.boughtRegion

		for _, part := range []broker.CorePart{
			broker.CorePartEmpty(),
			broker.CorePartComplete(),
		} {
			rt.SetCaller(buyer, builtin.AccountActorCodeID)
			rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
			rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
				rt.Call(h.Interlace, &broker.InterlaceParams{Region: region, Part: part})
			})
			rt.Verify()
		}
	})

	t.Run("interlaced parts share one assignment message", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)
		region := h.boughtRegion

		h.interlace(rt, buyer, region, broker.CorePartFromChunk(0, 30))
		remainder := broker.RegionID{Begin: 4, Core: 0, Part: broker.CorePartComplete().Without(broker.CorePartFromChunk(0, 30))}
		h.interlace(rt, buyer, remainder, broker.CorePartFromChunk(30, 60))

		h.assign(rt, buyer, broker.RegionID{Begin: 4, Core: 0, Part: broker.CorePartFromChunk(0, 30)}, 1)
		h.assign(rt, buyer, broker.RegionID{Begin: 4, Core: 0, Part: broker.CorePartFromChunk(30, 60)}, 2)
		h.assign(rt, buyer, broker.RegionID{Begin: 4, Core: 0, Part: broker.CorePartFromChunk(60, 80)}, 3)

		h.tick(rt, 6, &broker.AssignCoreParams{
			Core:  0,
			Begin: 8,
			Assignment: []broker.WorkItem{
				{Assignment: broker.TaskAssignment(1), Ticks: 30 * broker.TicksPerChunk},
				{Assignment: broker.TaskAssignment(2), Ticks: 30 * broker.TicksPerChunk},
				{Assignment: broker.TaskAssignment(3), Ticks: 20 * broker.TicksPerChunk},
			},
			EndHint: broker.NoEndHint,
		})
		h.checkState(rt)
	})

	t.Run("interlace composes with partition", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)
		region := h.boughtRegion
		carvedPart := broker.CorePartFromChunk(0, 20)
		remainderPart := broker.CorePartComplete().Without(carvedPart)

		h.interlace(rt, buyer, region, carvedPart)
		h.partition(rt, buyer, broker.RegionID{Begin: 4, Core: 0, Part: carvedPart}, 5)
		h.partition(rt, buyer, broker.RegionID{Begin: 4, Core: 0, Part: remainderPart}, 6)

		h.assign(rt, buyer, broker.RegionID{Begin: 4, Core: 0, Part: carvedPart}, 1)
		h.assign(rt, buyer, broker.RegionID{Begin: 4, Core: 0, Part: remainderPart}, 2)
		h.assign(rt, buyer, broker.RegionID{Begin: 5, Core: 0, Part: carvedPart}, 3)
		h.assign(rt, buyer, broker.RegionID{Begin: 6, Core: 0, Part: remainderPart}, 4)

		h.tick(rt, 6, &broker.AssignCoreParams{
			Core:  0,
			Begin: 8,
			Assignment: []broker.WorkItem{
				{Assignment: broker.TaskAssignment(1), Ticks: 20 * broker.TicksPerChunk},
				{Assignment: broker.TaskAssignment(2), Ticks: 60 * broker.TicksPerChunk},
			},
			EndHint: broker.NoEndHint,
		})
		// Task 2's span covers this timeslice too: it stays in force beside
		// the replacement on the carved part.
		h.tick(rt, 8, &broker.AssignCoreParams{
			Core:  0,
			Begin: 10,
			Assignment: []broker.WorkItem{
				{Assignment: broker.TaskAssignment(3), Ticks: 20 * broker.TicksPerChunk},
				{Assignment: broker.TaskAssignment(2), Ticks: 60 * broker.TicksPerChunk},
			},
			EndHint: broker.NoEndHint,
		})
		h.tick(rt, 10, &broker.AssignCoreParams{
			Core:  0,
			Begin: 12,
			Assignment: []broker.WorkItem{
				{Assignment: broker.TaskAssignment(4), Ticks: 60 * broker.TicksPerChunk},
				{Assignment: broker.TaskAssignment(3), Ticks: 20 * broker.TicksPerChunk},
			},
			EndHint: broker.NoEndHint,
		})
		h.checkState(rt)
	})
}

func TestAssign(t *testing.T) {
	buyer := tutil.NewIDAddr(t, 101)

	t.Run("assigned task is pushed when the region begins", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)

		h.assign(rt, buyer, h.boughtRegion, 1000)
		h.tick(rt, 6, &broker.AssignCoreParams{
			Core:       0,
			Begin:      8,
			Assignment: []broker.WorkItem{{Assignment: broker.TaskAssignment(1000), Ticks: broker.FullCoreTicks}},
			EndHint:    broker.NoEndHint,
		})
		h.checkState(rt)
	})

	t.Run("rejects non-owner caller", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)

		rt.SetCaller(tutil.NewIDAddr(t, 102), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.Assign, &broker.AssignParams{Region: h.boughtRegion, Task: 1000})
		})
		rt.Verify()
	})

	t.Run("rejects an elapsed region", func(t *testing.T) {
		rt, h := setupWithRegion(t, buyer)

		// Advance the clock past the region's span.
		h.tick(rt, 6)
		h.tick(rt, 14)

		rt.SetCaller(buyer, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.Assign, &broker.AssignParams{Region: h.boughtRegion, Task: 1000})
		})
		rt.Verify()
	})
}

// Exercises the instantaneous pool end to end: a reserved system
// contribution, a purchased private contribution, prepaid usage, the
// bounded revenue sweep and the contributor's claim.
func TestInstaPoolRevenue(t *testing.T) {
	buyer := tutil.NewIDAddr(t, 101)
	payee := tutil.NewIDAddr(t, 102)
	payer := tutil.NewIDAddr(t, 103)

	rt, h := setup(t, 2)
	h.reserve(rt, broker.Schedule{Items: []broker.ScheduleItem{
		{Assignment: broker.Pooled, Part: broker.CorePartFromChunk(0, 16)},
	}})
	h.startSales(rt, abi.NewTokenAmount(100))

	rt.SetEpoch(2)
	ret := h.purchase(rt, buyer, abi.NewTokenAmount(100), abi.NewTokenAmount(100))
	require.Equal(t, broker.CoreIndex(1), ret.Region.Core)

	// Contribute 64 of the 80 chunks to the pool, keep the rest.
	contributed := broker.CorePartFromChunk(0, 64)
	h.interlace(rt, buyer, ret.Region, contributed)
	pooled := broker.RegionID{Begin: 4, Core: 1, Part: contributed}
	h.pool(rt, buyer, pooled, payee)

	h.purchaseCredit(rt, payer, abi.NewTokenAmount(40))
	st := h.state(rt)
	assert.Equal(t, abi.NewTokenAmount(40), st.PoolPot)

	// Committing the pool's first timeslice pushes both cores' pool
	// assignments and opens the pool for usage.
	h.tick(rt, 6,
		&broker.AssignCoreParams{
			Core:       0,
			Begin:      8,
			Assignment: []broker.WorkItem{{Assignment: broker.Pooled, Ticks: 16 * broker.TicksPerChunk}},
			EndHint:    broker.NoEndHint,
		},
		&broker.AssignCoreParams{
			Core:       1,
			Begin:      8,
			Assignment: []broker.WorkItem{{Assignment: broker.Pooled, Ticks: 64 * broker.TicksPerChunk}},
			EndHint:    broker.NoEndHint,
		},
	)
	st = h.state(rt)
	assert.Equal(t, uint32(16), st.Status.SystemPoolSize)
	assert.Equal(t, uint32(64), st.Status.PrivatePoolSize)

	h.notifyUsage(rt, 4, 40, payer)

	// Sweep history up to the committed timeslice; the system's 16 of 80
	// parts take 8 of the 40 in revenue.
	h.checkRevenueUntilDone(rt, 5)
	st = h.state(rt)
	assert.Equal(t, abi.NewTokenAmount(108), st.SaleRevenue)
	assert.Equal(t, abi.NewTokenAmount(32), st.PoolPot)

	// The private contributor claims the remaining 32.
	rt.ExpectSend(payee, builtin.MethodSend, nil, abi.NewTokenAmount(32), nil, exitcode.Ok)
	claim := h.claimRevenue(rt, pooled, 10)
	assert.Equal(t, abi.NewTokenAmount(32), claim.Paid)
	assert.False(t, claim.Retired)

	// The region's span ends at timeslice 8; the reservation renews on
	// core 0 for the next sale region.
	h.tick(rt, 14, &broker.AssignCoreParams{
		Core:       0,
		Begin:      16,
		Assignment: []broker.WorkItem{{Assignment: broker.Pooled, Ticks: 16 * broker.TicksPerChunk}},
		EndHint:    broker.NoEndHint,
	})
	h.checkRevenueUntilDone(rt, 4)

	// Nothing left to pay; the contribution retires.
	advanced := broker.RegionID{Begin: 5, Core: 1, Part: contributed}
	claim = h.claimRevenue(rt, advanced, 10)
	assert.Equal(t, big.Zero(), claim.Paid)
	assert.True(t, claim.Retired)

	rt.ExpectValidateCallerAny()
	rt.ExpectAbort(exitcode.ErrNotFound, func() {
		rt.Call(h.ClaimRevenue, &broker.ClaimRevenueParams{Region: advanced, MaxTimeslices: 10})
	})
	rt.Verify()

	st = h.state(rt)
	assert.Equal(t, big.Zero(), st.PoolPot)
	assert.Equal(t, abi.NewTokenAmount(108), st.SaleRevenue)
	assert.Equal(t, uint32(0), st.Status.PrivatePoolSize)
	assert.Equal(t, uint32(16), st.Status.SystemPoolSize)
	h.checkState(rt)
}

// Two pooled contributions on one core split the private remainder of a
// timeslice's revenue in proportion to their parts, whichever claims first.
func TestInstaPoolProportionalPayouts(t *testing.T) {
	buyer := tutil.NewIDAddr(t, 101)
	smallPayee := tutil.NewIDAddr(t, 102)
	largePayee := tutil.NewIDAddr(t, 103)
	payer := tutil.NewIDAddr(t, 104)

	// One reserved full-core system contribution plus a purchased core split
	// 20/60 between two payees, with 40 in usage revenue at timeslice 4.
	setupPool := func(t *testing.T) (*mock.Runtime, *brokerHarness, broker.RegionID, broker.RegionID) {
		rt, h := setup(t, 2)
		h.reserve(rt, broker.Schedule{Items: []broker.ScheduleItem{
			{Assignment: broker.Pooled, Part: broker.CorePartComplete()},
		}})
		h.startSales(rt, abi.NewTokenAmount(100))

		rt.SetEpoch(2)
		ret := h.purchase(rt, buyer, abi.NewTokenAmount(100), abi.NewTokenAmount(100))
		require.Equal(t, broker.CoreIndex(1), ret.Region.Core)

		smallPart := broker.CorePartFromChunk(0, 20)
		largePart := broker.CorePartComplete().Without(smallPart)
		h.interlace(rt, buyer, ret.Region, smallPart)
		small := broker.RegionID{Begin: 4, Core: 1, Part: smallPart}
		large := broker.RegionID{Begin: 4, Core: 1, Part: largePart}
		h.pool(rt, buyer, small, smallPayee)
		h.pool(rt, buyer, large, largePayee)
		h.purchaseCredit(rt, payer, abi.NewTokenAmount(40))

		h.tick(rt, 6,
			&broker.AssignCoreParams{
				Core:       0,
				Begin:      8,
				Assignment: []broker.WorkItem{{Assignment: broker.Pooled, Ticks: broker.FullCoreTicks}},
				EndHint:    broker.NoEndHint,
			},
			&broker.AssignCoreParams{
				Core:       1,
				Begin:      8,
				Assignment: []broker.WorkItem{{Assignment: broker.Pooled, Ticks: broker.FullCoreTicks}},
				EndHint:    broker.NoEndHint,
			},
		)
		h.notifyUsage(rt, 4, 40, payer)
		h.checkRevenueUntilDone(rt, 5)

		// The reserved core's 80 parts take half of the 40 in revenue.
		st := h.state(rt)
		assert.Equal(t, abi.NewTokenAmount(120), st.SaleRevenue)
		assert.Equal(t, abi.NewTokenAmount(20), st.PoolPot)
		return rt, h, small, large
	}

	finish := func(t *testing.T, rt *mock.Runtime, h *brokerHarness) {
		st := h.state(rt)
		assert.Equal(t, big.Zero(), st.PoolPot)
		assert.Equal(t, abi.NewTokenAmount(120), st.SaleRevenue)
		h.checkState(rt)
	}

	t.Run("smaller part claims first", func(t *testing.T) {
		rt, h, small, large := setupPool(t)

		rt.ExpectSend(smallPayee, builtin.MethodSend, nil, abi.NewTokenAmount(5), nil, exitcode.Ok)
		claim := h.claimRevenue(rt, small, 10)
		assert.Equal(t, abi.NewTokenAmount(5), claim.Paid)
		assert.False(t, claim.Retired)

		rt.ExpectSend(largePayee, builtin.MethodSend, nil, abi.NewTokenAmount(15), nil, exitcode.Ok)
		claim = h.claimRevenue(rt, large, 10)
		assert.Equal(t, abi.NewTokenAmount(15), claim.Paid)
		assert.False(t, claim.Retired)
		finish(t, rt, h)
	})

	t.Run("larger part claims first", func(t *testing.T) {
		rt, h, small, large := setupPool(t)

		rt.ExpectSend(largePayee, builtin.MethodSend, nil, abi.NewTokenAmount(15), nil, exitcode.Ok)
		claim := h.claimRevenue(rt, large, 10)
		assert.Equal(t, abi.NewTokenAmount(15), claim.Paid)

		rt.ExpectSend(smallPayee, builtin.MethodSend, nil, abi.NewTokenAmount(5), nil, exitcode.Ok)
		claim = h.claimRevenue(rt, small, 10)
		assert.Equal(t, abi.NewTokenAmount(5), claim.Paid)
		finish(t, rt, h)
	})
}

func TestNotifyInstantaneousUsage(t *testing.T) {
	payer := tutil.NewIDAddr(t, 103)

	t.Run("rejects uncommitted timeslice", func(t *testing.T) {
		rt, h := setup(t, 1)

		rt.SetCaller(builtin.CoretimeProviderActorAddr, builtin.CoretimeProviderActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.CoretimeProviderActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalState, func() {
			rt.Call(h.NotifyInstantaneousUsage, &broker.UsageParams{Timeslice: 4, Ticks: 40, Payer: payer})
		})
		rt.Verify()
	})

	t.Run("rejects non-provider caller", func(t *testing.T) {
		rt, h := setup(t, 1)

		rt.SetCaller(payer, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.CoretimeProviderActorAddr)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.NotifyInstantaneousUsage, &broker.UsageParams{Timeslice: 4, Ticks: 40, Payer: payer})
		})
		rt.Verify()
	})
}

func TestOnEpochTick(t *testing.T) {
	t.Run("rejects non-system caller", func(t *testing.T) {
		rt, h := setup(t, 1)

		rt.SetCaller(tutil.NewIDAddr(t, 100), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(h.OnEpochTick, nil)
		})
		rt.Verify()
	})

	t.Run("tick is idempotent within a timeslice", func(t *testing.T) {
		rt, h := setup(t, 1)

		h.tick(rt, 4)
		st := h.state(rt)
		assert.Equal(t, broker.Timeslice(3), st.Status.LastCommittedTimeslice)

		h.tick(rt, 4)
		st = h.state(rt)
		assert.Equal(t, broker.Timeslice(3), st.Status.LastCommittedTimeslice)
		h.checkState(rt)
	})
}

//// Harness ////

type brokerHarness struct {
	broker.Actor
	t testing.TB

	// Region bought in setupWithRegion.
	boughtRegion broker.RegionID
}

func setup(t *testing.T, coreCount broker.CoreIndex) (*mock.Runtime, *brokerHarness) {
	builder := mock.NewBuilder(context.Background(), builtin.BrokerActorAddr).
		WithBalance(abi.NewTokenAmount(1_000_000), big.Zero())
	rt := builder.Build(t)
	h := &brokerHarness{Actor: broker.Actor{}, t: t}
	h.construct(rt, coreCount)
	return rt, h
}

// setupWithRegion constructs a single-core broker with an active sale and a
// region {4..8} bought by the given owner at epoch 2 for 100.
func setupWithRegion(t *testing.T, owner addr.Address) (*mock.Runtime, *brokerHarness) {
	rt, h := setup(t, 1)
	h.startSales(rt, abi.NewTokenAmount(100))
	rt.SetEpoch(2)
	ret := h.purchase(rt, owner, abi.NewTokenAmount(100), abi.NewTokenAmount(100))
	h.boughtRegion = ret.Region
	return rt, h
}

func (h *brokerHarness) construct(rt *mock.Runtime, coreCount broker.CoreIndex) {
	rt.SetCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	ret := rt.Call(h.Constructor, &broker.ConstructorParams{CoreCount: coreCount})
	assert.Nil(h.t, ret)
	rt.Verify()
}

func (h *brokerHarness) reserve(rt *mock.Runtime, workload broker.Schedule) {
	rt.SetCaller(builtin.GovernorActorAddr, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
	rt.Call(h.Reserve, &broker.ReserveParams{Workload: workload})
	rt.Verify()
}

func (h *brokerHarness) unreserve(rt *mock.Runtime, index uint64) {
	rt.SetCaller(builtin.GovernorActorAddr, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
	rt.Call(h.Unreserve, &broker.UnreserveParams{Index: index})
	rt.Verify()
}

func (h *brokerHarness) startSales(rt *mock.Runtime, price abi.TokenAmount) {
	rt.SetCaller(builtin.GovernorActorAddr, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.GovernorActorAddr)
	rt.Call(h.StartSales, &broker.StartSalesParams{Price: price})
	rt.Verify()
}

func (h *brokerHarness) purchase(rt *mock.Runtime, buyer addr.Address, value, maxPrice abi.TokenAmount) *broker.PurchaseReturn {
	rt.SetCaller(buyer, builtin.AccountActorCodeID)
	rt.SetReceived(value)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	ret := rt.Call(h.Purchase, &broker.PurchaseParams{MaxPrice: maxPrice}).(*broker.PurchaseReturn)
	rt.Verify()
	rt.SetReceived(big.Zero())
	return ret
}

func (h *brokerHarness) purchaseCredit(rt *mock.Runtime, beneficiary addr.Address, amount abi.TokenAmount) {
	rt.SetCaller(beneficiary, builtin.AccountActorCodeID)
	rt.SetReceived(amount)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.Call(h.PurchaseCredit, &broker.PurchaseCreditParams{Amount: amount, Beneficiary: beneficiary})
	rt.Verify()
	rt.SetReceived(big.Zero())
}

func (h *brokerHarness) transfer(rt *mock.Runtime, caller addr.Address, region broker.RegionID, newOwner addr.Address) {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.Call(h.Transfer, &broker.TransferParams{Region: region, NewOwner: newOwner})
	rt.Verify()
}

func (h *brokerHarness) partition(rt *mock.Runtime, caller addr.Address, region broker.RegionID, pivot broker.Timeslice) {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.Call(h.Partition, &broker.PartitionParams{Region: region, Pivot: pivot})
	rt.Verify()
}

func (h *brokerHarness) interlace(rt *mock.Runtime, caller addr.Address, region broker.RegionID, part broker.CorePart) {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.Call(h.Interlace, &broker.InterlaceParams{Region: region, Part: part})
	rt.Verify()
}

func (h *brokerHarness) assign(rt *mock.Runtime, caller addr.Address, region broker.RegionID, task broker.TaskID) {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.Call(h.Assign, &broker.AssignParams{Region: region, Task: task})
	rt.Verify()
}

func (h *brokerHarness) pool(rt *mock.Runtime, caller addr.Address, region broker.RegionID, payee addr.Address) {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.Call(h.Pool, &broker.PoolParams{Region: region, Payee: payee})
	rt.Verify()
}

func (h *brokerHarness) claimRevenue(rt *mock.Runtime, region broker.RegionID, max uint64) *broker.ClaimRevenueReturn {
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.ClaimRevenue, &broker.ClaimRevenueParams{Region: region, MaxTimeslices: max}).(*broker.ClaimRevenueReturn)
	rt.Verify()
	return ret
}

// checkRevenueUntilDone drives the revenue sweep, asserting it finishes in
// exactly `steps` calls.
func (h *brokerHarness) checkRevenueUntilDone(rt *mock.Runtime, steps int) {
	for i := 0; i < steps; i++ {
		rt.ExpectValidateCallerAny()
		ret := rt.Call(h.CheckRevenue, nil).(*broker.CheckRevenueReturn)
		rt.Verify()
		if i < steps-1 {
			require.True(h.t, ret.More, "sweep finished early at step %d", i)
		} else {
			require.False(h.t, ret.More, "sweep not finished after %d steps", steps)
		}
	}
}

func (h *brokerHarness) notifyUsage(rt *mock.Runtime, ts broker.Timeslice, ticks uint64, payer addr.Address) {
	rt.SetCaller(builtin.CoretimeProviderActorAddr, builtin.CoretimeProviderActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.CoretimeProviderActorAddr)
	rt.Call(h.NotifyInstantaneousUsage, &broker.UsageParams{Timeslice: ts, Ticks: ticks, Payer: payer})
	rt.Verify()
}

func (h *brokerHarness) tick(rt *mock.Runtime, epoch abi.ChainEpoch, expected ...*broker.AssignCoreParams) {
	rt.SetEpoch(epoch)
	rt.SetCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	for _, msg := range expected {
		rt.ExpectSend(builtin.SchedulerActorAddr, builtin.MethodsScheduler.AssignCore, msg, big.Zero(), nil, exitcode.Ok)
	}
	rt.Call(h.OnEpochTick, nil)
	rt.Verify()
}

func (h *brokerHarness) state(rt *mock.Runtime) *broker.State {
	var st broker.State
	rt.GetState(&st)
	return &st
}

func (h *brokerHarness) checkState(rt *mock.Runtime) {
	st := h.state(rt)
	_, acc := broker.CheckStateInvariants(st, adt.AsStore(rt))
	assert.True(h.t, acc.IsEmpty(), strings.Join(acc.Messages(), "\n"))
}
