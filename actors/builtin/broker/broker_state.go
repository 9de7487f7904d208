package broker

import (
	"github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/coretime-project/coretime-actors/actors/builtin"
	"github.com/coretime-project/coretime-actors/actors/util"
	"github.com/coretime-project/coretime-actors/actors/util/adt"
)

// State is the full persistent state of the coretime broker.
type State struct {
	// Ownership records for tradable regions.
	// HAMT[RegionID]RegionRecord
	Regions cid.Cid
	// Assignments scheduled for future timeslices, keyed by (timeslice, core).
	// HAMT[tsCoreKey]Schedule
	Workplan cid.Cid
	// The schedule most recently committed for each core. It stays in force
	// for subsequent timeslices until the workplan replaces it.
	// AMT[CoreIndex]Schedule
	Workload cid.Cid
	// Pool composition and collected revenue per committed timeslice, retained
	// until revenue distribution retires the entry.
	// AMT[Timeslice]InstaPoolHistoryEntry
	InstaPoolHistory cid.Cid
	// Pending changes to pool composition, keyed by the timeslice at which
	// they take effect.
	// AMT[Timeslice]PoolIoEntry
	PoolIo cid.Cid
	// Revenue claims of pooled regions.
	// HAMT[RegionID]ContributionRecord
	Contributions cid.Cid
	// Prepaid credit for instantaneous usage, per payer.
	// BalanceTable[addr.Address]TokenAmount
	Credits cid.Cid

	// Schedules renewed free of charge on every sale rotation, one per core
	// starting at core zero. Reserved cores are withheld from sales.
	Reservations []Schedule

	// Whether StartSales has run and the sale/rotation machinery is live.
	SaleActive bool
	// The sale period currently open for purchases.
	Sale SaleInfo
	// Clock and pool progression.
	Status StatusInfo

	// The next timeslice whose pool history awaits revenue processing.
	RevenueCursor Timeslice
	// Proceeds of region sales and the system's share of pool revenue.
	SaleRevenue abi.TokenAmount
	// Credit deposits held for instantaneous usage and private revenue claims.
	PoolPot abi.TokenAmount
}

func ConstructState(store adt.Store, coreCount CoreIndex) (*State, error) {
	emptyMap, err := adt.MakeEmptyMap(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}
	emptyIntMap, err := adt.MakeEmptyIntMap(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty int map: %w", err)
	}

	return &State{
		Regions:          emptyMap.Root(),
		Workplan:         emptyMap.Root(),
		Workload:         emptyIntMap.Root(),
		InstaPoolHistory: emptyIntMap.Root(),
		PoolIo:           emptyIntMap.Root(),
		Contributions:    emptyMap.Root(),
		Credits:          emptyMap.Root(),

		Status: StatusInfo{
			CoreCount: coreCount,
		},

		SaleRevenue: big.Zero(),
		PoolPot:     big.Zero(),
	}, nil
}

// CurrentTimeslice maps an epoch onto the timeslice containing it.
func CurrentTimeslice(now abi.ChainEpoch) Timeslice {
	return Timeslice(now / TimeslicePeriod)
}

//// Region ledger ////

func (st *State) getRegion(store adt.Store, id RegionID) (*RegionRecord, bool, error) {
	regions := adt.AsMap(store, st.Regions)
	var record RegionRecord
	found, err := regions.Get(id, &record)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load region %v: %w", id, err)
	}
	return &record, found, nil
}

func (st *State) putRegion(store adt.Store, id RegionID, record *RegionRecord) error {
	regions := adt.AsMap(store, st.Regions)
	if err := regions.Put(id, record); err != nil {
		return xerrors.Errorf("failed to put region %v: %w", id, err)
	}
	st.Regions = regions.Root()
	return nil
}

func (st *State) deleteRegion(store adt.Store, id RegionID) error {
	regions := adt.AsMap(store, st.Regions)
	if err := regions.Delete(id); err != nil {
		return xerrors.Errorf("failed to delete region %v: %w", id, err)
	}
	st.Regions = regions.Root()
	return nil
}

// transferRegion reassigns ownership of a region.
func (st *State) transferRegion(store adt.Store, id RegionID, record *RegionRecord, newOwner addr.Address) error {
	record.Owner = newOwner
	return st.putRegion(store, id, record)
}

// partitionRegion splits a region at a pivot timeslice into two regions
// covering [Begin, pivot) and [pivot, End) of the same core part.
// The pivot must lie strictly inside the region's span.
func (st *State) partitionRegion(store adt.Store, id RegionID, record *RegionRecord, pivot Timeslice) (RegionID, RegionID, error) {
	former := RegionID{Begin: id.Begin, Core: id.Core, Part: id.Part}
	latter := RegionID{Begin: pivot, Core: id.Core, Part: id.Part}

	regions := adt.AsMap(store, st.Regions)
	if err := regions.Delete(id); err != nil {
		return RegionID{}, RegionID{}, xerrors.Errorf("failed to delete region %v: %w", id, err)
	}
	if err := regions.Put(former, &RegionRecord{End: pivot, Owner: record.Owner, Paid: record.Paid}); err != nil {
		return RegionID{}, RegionID{}, xerrors.Errorf("failed to put former region: %w", err)
	}
	if err := regions.Put(latter, &RegionRecord{End: record.End, Owner: record.Owner, Paid: big.Zero()}); err != nil {
		return RegionID{}, RegionID{}, xerrors.Errorf("failed to put latter region: %w", err)
	}
	st.Regions = regions.Root()
	return former, latter, nil
}

// interlaceRegion splits a region into two regions of the same span covering
// complementary core parts. The given part must be a proper, non-empty subset
// of the region's part.
func (st *State) interlaceRegion(store adt.Store, id RegionID, record *RegionRecord, part CorePart) (RegionID, RegionID, error) {
	carved := RegionID{Begin: id.Begin, Core: id.Core, Part: part}
	remainder := RegionID{Begin: id.Begin, Core: id.Core, Part: id.Part.Without(part)}

	regions := adt.AsMap(store, st.Regions)
	if err := regions.Delete(id); err != nil {
		return RegionID{}, RegionID{}, xerrors.Errorf("failed to delete region %v: %w", id, err)
	}
	if err := regions.Put(carved, &RegionRecord{End: record.End, Owner: record.Owner, Paid: record.Paid}); err != nil {
		return RegionID{}, RegionID{}, xerrors.Errorf("failed to put carved region: %w", err)
	}
	if err := regions.Put(remainder, &RegionRecord{End: record.End, Owner: record.Owner, Paid: record.Paid}); err != nil {
		return RegionID{}, RegionID{}, xerrors.Errorf("failed to put remainder region: %w", err)
	}
	st.Regions = regions.Root()
	return carved, remainder, nil
}

// mintRegion records the region sold by the current sale to a buyer.
func (st *State) mintRegion(store adt.Store, owner addr.Address, price abi.TokenAmount) (RegionID, error) {
	core := st.Sale.FirstCore + st.Sale.CoresSold
	st.Sale.CoresSold++

	id := RegionID{Begin: st.Sale.RegionBegin, Core: core, Part: CorePartComplete()}
	record := &RegionRecord{End: st.Sale.RegionEnd, Owner: owner, Paid: price}
	if err := st.putRegion(store, id, record); err != nil {
		return RegionID{}, err
	}
	st.SaleRevenue = big.Add(st.SaleRevenue, price)
	return id, nil
}

//// Workplan ////

// scheduleWorkplan appends an item to the workplan entry for a core at a
// timeslice, creating the entry if absent. Insertion order is preserved and
// becomes the priority order of the emitted assignment.
func (st *State) scheduleWorkplan(store adt.Store, ts Timeslice, core CoreIndex, item ScheduleItem) error {
	workplan := adt.AsMap(store, st.Workplan)
	var schedule Schedule
	if _, err := workplan.Get(workplanKey(ts, core), &schedule); err != nil {
		return xerrors.Errorf("failed to load workplan entry: %w", err)
	}
	schedule.Items = append(schedule.Items, item)
	if err := workplan.Put(workplanKey(ts, core), &schedule); err != nil {
		return xerrors.Errorf("failed to put workplan entry: %w", err)
	}
	st.Workplan = workplan.Root()
	return nil
}

// effectiveBegin clamps a region's begin to the first uncommitted timeslice.
// Assignments cannot take effect in timeslices already emitted.
func (st *State) effectiveBegin(begin Timeslice) Timeslice {
	if committed := st.Status.LastCommittedTimeslice; begin <= committed {
		return committed + 1
	}
	return begin
}

// addPoolIo accumulates a pool composition delta at a timeslice.
func (st *State) addPoolIo(store adt.Store, ts Timeslice, systemDelta, privateDelta int64) error {
	poolIo := adt.AsIntMap(store, st.PoolIo)
	var entry PoolIoEntry
	if _, err := poolIo.Get(uint64(ts), &entry); err != nil {
		return xerrors.Errorf("failed to load pool io at %d: %w", ts, err)
	}
	entry.SystemDelta += systemDelta
	entry.PrivateDelta += privateDelta
	if err := poolIo.Put(uint64(ts), &entry); err != nil {
		return xerrors.Errorf("failed to put pool io at %d: %w", ts, err)
	}
	st.PoolIo = poolIo.Root()
	return nil
}

// assignRegion consumes a region, scheduling its part to run a task from the
// region's effective begin until its end. The region record is removed.
func (st *State) assignRegion(store adt.Store, id RegionID, record *RegionRecord, task TaskID) error {
	begin := st.effectiveBegin(id.Begin)
	if begin >= record.End {
		return errRegionExpired
	}

	item := ScheduleItem{Assignment: TaskAssignment(task), Part: id.Part}
	if err := st.scheduleWorkplan(store, begin, id.Core, item); err != nil {
		return err
	}
	return st.deleteRegion(store, id)
}

// poolRegion consumes a region into the instantaneous pool. The region record
// is retained under the broker's own ownership so its revenue claim stays
// inspectable; a contribution record tracks the payout entitlement.
func (st *State) poolRegion(store adt.Store, id RegionID, record *RegionRecord, payee addr.Address) (RegionID, error) {
	begin := st.effectiveBegin(id.Begin)
	if begin >= record.End {
		return RegionID{}, errRegionExpired
	}

	item := ScheduleItem{Assignment: Pooled, Part: id.Part}
	if err := st.scheduleWorkplan(store, begin, id.Core, item); err != nil {
		return RegionID{}, err
	}

	count := int64(id.Part.Count())
	if err := st.addPoolIo(store, begin, 0, count); err != nil {
		return RegionID{}, err
	}
	if err := st.addPoolIo(store, record.End, 0, -count); err != nil {
		return RegionID{}, err
	}

	pooledID := RegionID{Begin: begin, Core: id.Core, Part: id.Part}
	contributions := adt.AsMap(store, st.Contributions)
	if err := contributions.Put(pooledID, &ContributionRecord{End: record.End, Payee: payee}); err != nil {
		return RegionID{}, xerrors.Errorf("failed to put contribution: %w", err)
	}
	st.Contributions = contributions.Root()

	regions := adt.AsMap(store, st.Regions)
	if err := regions.Delete(id); err != nil {
		return RegionID{}, xerrors.Errorf("failed to delete region %v: %w", id, err)
	}
	consumed := &RegionRecord{End: record.End, Owner: builtin.BrokerActorAddr, Paid: record.Paid}
	if err := regions.Put(pooledID, consumed); err != nil {
		return RegionID{}, xerrors.Errorf("failed to put pooled region: %w", err)
	}
	st.Regions = regions.Root()
	return pooledID, nil
}

//// Sales ////

// startSale opens the first sale period. The first region begin is the
// earliest region-length boundary leaving at least the advance notice after
// the last committed timeslice.
func (st *State) startSale(store adt.Store, now abi.ChainEpoch, price abi.TokenAmount) error {
	begin := quantizeUp(st.Status.LastCommittedTimeslice+AdvanceNotice+1, RegionLength)
	st.Sale = SaleInfo{
		SaleStart:    now,
		LeadinLength: LeadinLength,
		Price:        price,
		RegionBegin:  begin,
		RegionEnd:    begin + RegionLength,
		CoresOffered: st.Status.CoreCount - CoreIndex(len(st.Reservations)),
		FirstCore:    CoreIndex(len(st.Reservations)),
		CoresSold:    0,
	}
	st.SaleActive = true
	return st.applyReservations(store)
}

// rotateSale closes the current sale period and opens the next one, pricing
// it from observed demand and renewing the reserved schedules.
func (st *State) rotateSale(store adt.Store, now abi.ChainEpoch) error {
	st.Sale = SaleInfo{
		SaleStart:    now,
		LeadinLength: LeadinLength,
		Price:        NextSalePrice(&st.Sale),
		RegionBegin:  st.Sale.RegionEnd,
		RegionEnd:    st.Sale.RegionEnd + RegionLength,
		CoresOffered: st.Status.CoreCount - CoreIndex(len(st.Reservations)),
		FirstCore:    CoreIndex(len(st.Reservations)),
		CoresSold:    0,
	}
	return st.applyReservations(store)
}

// applyReservations schedules the reserved workloads for the sale's region,
// contributing any pooled items to the system share of the pool.
func (st *State) applyReservations(store adt.Store) error {
	for i, schedule := range st.Reservations {
		core := CoreIndex(i)
		for _, item := range schedule.Items {
			if err := st.scheduleWorkplan(store, st.Sale.RegionBegin, core, item); err != nil {
				return err
			}
			if item.Assignment.Kind == AssignmentPool {
				count := int64(item.Part.Count())
				if err := st.addPoolIo(store, st.Sale.RegionBegin, count, 0); err != nil {
					return err
				}
				if err := st.addPoolIo(store, st.Sale.RegionEnd, -count, 0); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

//// Timeslice clock ////

// commitTimeslice advances the clock by one timeslice: pending pool deltas
// take effect, the pool's composition is recorded for revenue processing, and
// workplan entries coming into force displace each affected core's workload
// on the parts they cover, retaining the rest of the workload in force.
// Returns the assignment messages to push for the updated workloads.
func (st *State) commitTimeslice(store adt.Store, ts Timeslice) ([]AssignCoreParams, error) {
	poolIo := adt.AsIntMap(store, st.PoolIo)
	var delta PoolIoEntry
	found, err := poolIo.Get(uint64(ts), &delta)
	if err != nil {
		return nil, xerrors.Errorf("failed to load pool io at %d: %w", ts, err)
	}
	if found {
		st.Status.SystemPoolSize = uint32(int64(st.Status.SystemPoolSize) + delta.SystemDelta)
		st.Status.PrivatePoolSize = uint32(int64(st.Status.PrivatePoolSize) + delta.PrivateDelta)
		if err := poolIo.Delete(uint64(ts)); err != nil {
			return nil, xerrors.Errorf("failed to delete pool io at %d: %w", ts, err)
		}
		st.PoolIo = poolIo.Root()
	}

	history := adt.AsIntMap(store, st.InstaPoolHistory)
	entry := InstaPoolHistoryEntry{
		SystemParts:  st.Status.SystemPoolSize,
		PrivateParts: st.Status.PrivatePoolSize,
		Revenue:      big.Zero(),
	}
	if err := history.Put(uint64(ts), &entry); err != nil {
		return nil, xerrors.Errorf("failed to put pool history at %d: %w", ts, err)
	}
	st.InstaPoolHistory = history.Root()

	workplan := adt.AsMap(store, st.Workplan)
	workload := adt.AsIntMap(store, st.Workload)
	var messages []AssignCoreParams
	for core := CoreIndex(0); core < st.Status.CoreCount; core++ {
		var schedule Schedule
		found, err := workplan.Get(workplanKey(ts, core), &schedule)
		if err != nil {
			return nil, xerrors.Errorf("failed to load workplan entry: %w", err)
		}
		if !found {
			continue
		}
		if err := workplan.Delete(workplanKey(ts, core)); err != nil {
			return nil, xerrors.Errorf("failed to delete workplan entry: %w", err)
		}
		// Items of the previous workload stay in force on the parts the
		// incoming entry leaves untouched.
		var prev Schedule
		hadPrev, err := workload.Get(uint64(core), &prev)
		if err != nil {
			return nil, xerrors.Errorf("failed to load workload for core %d: %w", core, err)
		}
		if hadPrev {
			incoming := CorePartEmpty()
			for _, item := range schedule.Items {
				incoming = incoming.Union(item.Part)
			}
			for _, item := range prev.Items {
				if item.Part.IsDisjoint(incoming) {
					schedule.Items = append(schedule.Items, item)
				}
			}
		}
		if err := workload.Put(uint64(core), &schedule); err != nil {
			return nil, xerrors.Errorf("failed to put workload for core %d: %w", core, err)
		}
		messages = append(messages, AssignCoreParams{
			Core:       core,
			Begin:      abi.ChainEpoch(ts) * TimeslicePeriod,
			Assignment: aggregateWorkItems(&schedule),
			EndHint:    NoEndHint,
		})
	}
	st.Workplan = workplan.Root()
	st.Workload = workload.Root()

	st.Status.LastCommittedTimeslice = ts
	return messages, nil
}

// aggregateWorkItems folds a schedule into per-assignment tick totals,
// preserving the order in which each assignment first appears.
func aggregateWorkItems(schedule *Schedule) []WorkItem {
	var items []WorkItem
	total := uint64(0)
	for _, scheduled := range schedule.Items {
		ticks := scheduled.Part.Ticks()
		total += ticks
		merged := false
		for i := range items {
			if items[i].Assignment == scheduled.Assignment {
				items[i].Ticks += ticks
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, WorkItem{Assignment: scheduled.Assignment, Ticks: ticks})
		}
	}
	util.AssertMsg(total <= FullCoreTicks, "scheduled ticks exceed core capacity")
	return items
}

//// Revenue ////

// addCredit deposits prepaid credit for a beneficiary.
func (st *State) addCredit(store adt.Store, beneficiary addr.Address, amount abi.TokenAmount) error {
	credits := adt.AsBalanceTable(store, st.Credits)
	if err := credits.AddCreate(beneficiary, amount); err != nil {
		return xerrors.Errorf("failed to add credit for %v: %w", beneficiary, err)
	}
	st.Credits = credits.Root()
	st.PoolPot = big.Add(st.PoolPot, amount)
	return nil
}

// recordUsage charges a payer's credit for instantaneous ticks consumed in a
// timeslice and accrues the proceeds to that timeslice's history entry.
// Charges only as much as the payer's credit covers.
func (st *State) recordUsage(store adt.Store, ts Timeslice, ticks uint64, payer addr.Address) (abi.TokenAmount, error) {
	history := adt.AsIntMap(store, st.InstaPoolHistory)
	var entry InstaPoolHistoryEntry
	found, err := history.Get(uint64(ts), &entry)
	if err != nil {
		return big.Zero(), xerrors.Errorf("failed to load pool history at %d: %w", ts, err)
	}
	if !found {
		return big.Zero(), errNoHistory
	}

	due := big.Mul(big.NewIntUnsigned(ticks), InstantaneousTickPrice)
	credits := adt.AsBalanceTable(store, st.Credits)
	charged, err := credits.SubtractWithMinimum(payer, due, big.Zero())
	if err != nil {
		return big.Zero(), xerrors.Errorf("failed to charge credit of %v: %w", payer, err)
	}
	if remaining, err := credits.Get(payer); err != nil {
		return big.Zero(), xerrors.Errorf("failed to load credit of %v: %w", payer, err)
	} else if remaining.IsZero() {
		// Exhausted credit entries are dropped; absent keys read as zero.
		if _, err := credits.Remove(payer); err != nil {
			return big.Zero(), xerrors.Errorf("failed to remove credit of %v: %w", payer, err)
		}
	}
	st.Credits = credits.Root()

	entry.Revenue = big.Add(entry.Revenue, charged)
	if err := history.Put(uint64(ts), &entry); err != nil {
		return big.Zero(), xerrors.Errorf("failed to put pool history at %d: %w", ts, err)
	}
	st.InstaPoolHistory = history.Root()
	return charged, nil
}

// checkRevenue processes at most one timeslice of pool history: the system's
// share of that timeslice's revenue moves to sale revenue, and the private
// remainder is left in the entry for contributors to claim. Returns whether
// further committed history remains to process.
func (st *State) checkRevenue(store adt.Store) (bool, error) {
	if st.RevenueCursor > st.Status.LastCommittedTimeslice {
		return false, nil
	}
	ts := st.RevenueCursor
	st.RevenueCursor++

	history := adt.AsIntMap(store, st.InstaPoolHistory)
	var entry InstaPoolHistoryEntry
	found, err := history.Get(uint64(ts), &entry)
	if err != nil {
		return false, xerrors.Errorf("failed to load pool history at %d: %w", ts, err)
	}
	if found {
		totalParts := entry.SystemParts + entry.PrivateParts
		retire := entry.Revenue.IsZero() || entry.PrivateParts == 0 || totalParts == 0
		if !entry.Revenue.IsZero() && totalParts > 0 {
			systemShare := big.Div(
				big.Mul(entry.Revenue, big.NewIntUnsigned(uint64(entry.SystemParts))),
				big.NewIntUnsigned(uint64(totalParts)),
			)
			if entry.PrivateParts == 0 {
				systemShare = entry.Revenue
			}
			st.SaleRevenue = big.Add(st.SaleRevenue, systemShare)
			st.PoolPot = big.Sub(st.PoolPot, systemShare)
			entry.Revenue = big.Sub(entry.Revenue, systemShare)
		}
		if retire {
			if err := history.Delete(uint64(ts)); err != nil {
				return false, xerrors.Errorf("failed to delete pool history at %d: %w", ts, err)
			}
		} else {
			if err := history.Put(uint64(ts), &entry); err != nil {
				return false, xerrors.Errorf("failed to put pool history at %d: %w", ts, err)
			}
		}
		st.InstaPoolHistory = history.Root()
	}
	return st.RevenueCursor <= st.Status.LastCommittedTimeslice, nil
}

// claimRevenue pays out a contribution's share of processed pool revenue for
// up to maxTimeslices timeslices, advancing the contribution's begin past
// each settled timeslice. Returns the amount owed to the payee and whether
// the contribution has been fully settled and retired.
func (st *State) claimRevenue(store adt.Store, id RegionID, contribution *ContributionRecord, maxTimeslices uint64) (abi.TokenAmount, bool, error) {
	history := adt.AsIntMap(store, st.InstaPoolHistory)
	paid := big.Zero()
	count := uint32(id.Part.Count())
	ts := id.Begin

	for steps := uint64(0); steps < maxTimeslices && ts < contribution.End; steps++ {
		if ts >= st.RevenueCursor {
			// Not yet processed by checkRevenue.
			break
		}
		var entry InstaPoolHistoryEntry
		found, err := history.Get(uint64(ts), &entry)
		if err != nil {
			return big.Zero(), false, xerrors.Errorf("failed to load pool history at %d: %w", ts, err)
		}
		if found {
			util.AssertMsg(entry.PrivateParts >= count, "contribution larger than pool")
			share := big.Div(
				big.Mul(entry.Revenue, big.NewIntUnsigned(uint64(count))),
				big.NewIntUnsigned(uint64(entry.PrivateParts)),
			)
			paid = big.Add(paid, share)
			entry.Revenue = big.Sub(entry.Revenue, share)
			entry.PrivateParts -= count
			if entry.PrivateParts == 0 {
				// Rounding dust left by integer shares accrues to sale revenue.
				if !entry.Revenue.IsZero() {
					st.SaleRevenue = big.Add(st.SaleRevenue, entry.Revenue)
					st.PoolPot = big.Sub(st.PoolPot, entry.Revenue)
				}
				if err := history.Delete(uint64(ts)); err != nil {
					return big.Zero(), false, xerrors.Errorf("failed to delete pool history at %d: %w", ts, err)
				}
			} else {
				if err := history.Put(uint64(ts), &entry); err != nil {
					return big.Zero(), false, xerrors.Errorf("failed to put pool history at %d: %w", ts, err)
				}
			}
		}
		ts++
	}
	st.InstaPoolHistory = history.Root()
	st.PoolPot = big.Sub(st.PoolPot, paid)

	retired := ts >= contribution.End
	contributions := adt.AsMap(store, st.Contributions)
	regions := adt.AsMap(store, st.Regions)
	if err := contributions.Delete(id); err != nil {
		return big.Zero(), false, xerrors.Errorf("failed to delete contribution %v: %w", id, err)
	}
	record, foundRegion, err := st.getRegion(store, id)
	if err != nil {
		return big.Zero(), false, err
	}
	util.AssertMsg(foundRegion, "pooled region missing for contribution")
	if err := regions.Delete(id); err != nil {
		return big.Zero(), false, xerrors.Errorf("failed to delete region %v: %w", id, err)
	}
	if !retired {
		advanced := RegionID{Begin: ts, Core: id.Core, Part: id.Part}
		if err := contributions.Put(advanced, contribution); err != nil {
			return big.Zero(), false, xerrors.Errorf("failed to put contribution %v: %w", advanced, err)
		}
		record.Paid = big.Add(record.Paid, paid)
		if err := regions.Put(advanced, record); err != nil {
			return big.Zero(), false, xerrors.Errorf("failed to put region %v: %w", advanced, err)
		}
	}
	st.Contributions = contributions.Root()
	st.Regions = regions.Root()
	return paid, retired, nil
}

var (
	errRegionExpired = xerrors.New("region span has fully elapsed")
	errNoHistory     = xerrors.New("no pool history for timeslice")
)
