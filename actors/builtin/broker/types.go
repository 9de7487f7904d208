package broker

import (
	"encoding/binary"
	"errors"

	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"

	"github.com/coretime-project/coretime-actors/actors/util/adt"
)

var (
	errEmptyScheduleItem        = errors.New("schedule item covers no chunks")
	errOverlappingScheduleItems = errors.New("schedule items overlap")
)

// Timeslice is the discrete time unit over which core ownership and
// assignment are defined. One timeslice spans TimeslicePeriod epochs.
type Timeslice uint32

// CoreIndex identifies one core of the fixed core set.
type CoreIndex uint16

// TaskID identifies an external workload that cores may be assigned to.
type TaskID uint32

// AssignmentKind discriminates the closed set of assignment targets.
type AssignmentKind int64

const (
	// The core part is left unused.
	AssignmentIdle AssignmentKind = iota
	// The core part serves the instantaneous on-demand pool.
	AssignmentPool
	// The core part runs a specific task.
	AssignmentTask
)

// CoreAssignment is a tagged assignment target: Idle, Pool or Task(id).
type CoreAssignment struct {
	Kind AssignmentKind
	Task TaskID // valid only when Kind == AssignmentTask
}

var Idle = CoreAssignment{Kind: AssignmentIdle}
var Pooled = CoreAssignment{Kind: AssignmentPool}

func TaskAssignment(t TaskID) CoreAssignment {
	return CoreAssignment{Kind: AssignmentTask, Task: t}
}

// ScheduleItem assigns one part of a core to a target.
type ScheduleItem struct {
	Assignment CoreAssignment
	Part       CorePart
}

// Schedule is an ordered sequence of schedule items for one core whose parts
// must be mutually disjoint. Chunks not covered by any item are idle.
type Schedule struct {
	Items []ScheduleItem
}

// Validate checks the disjointness requirement on the schedule's items.
func (s *Schedule) Validate() error {
	covered := CorePartEmpty()
	for _, item := range s.Items {
		if item.Part.IsEmpty() {
			return errEmptyScheduleItem
		}
		if !covered.IsDisjoint(item.Part) {
			return errOverlappingScheduleItems
		}
		covered = covered.Union(item.Part)
	}
	return nil
}

// RegionID identifies ownership of a fraction of one core from a begin
// timeslice. It uniquely keys a RegionRecord.
type RegionID struct {
	Begin Timeslice
	Core  CoreIndex
	Part  CorePart
}

// Key implements adt.Keyer with a fixed 16-byte big-endian encoding.
func (r RegionID) Key() string {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint32(buf[:4], uint32(r.Begin))
	binary.BigEndian.PutUint16(buf[4:6], uint16(r.Core))
	copy(buf[6:], r.Part.Bytes())
	return string(buf)
}

var _ adt.Keyer = RegionID{}

func regionIDFromKey(k string) (RegionID, error) {
	if len(k) != 16 {
		return RegionID{}, errors.New("malformed region key")
	}
	part, err := corePartFromBytes([]byte(k[6:]))
	if err != nil {
		return RegionID{}, err
	}
	return RegionID{
		Begin: Timeslice(binary.BigEndian.Uint32([]byte(k[:4]))),
		Core:  CoreIndex(binary.BigEndian.Uint16([]byte(k[4:6]))),
		Part:  part,
	}, nil
}

// RegionRecord is the ownership record for a region.
// A record whose owner is the broker itself has been consumed by assignment
// or pooling and can no longer be split or transferred.
type RegionRecord struct {
	// End is the timeslice (exclusive) at which the region's ownership lapses.
	End Timeslice
	// Owner is the account controlling the region.
	Owner addr.Address
	// Paid is the amount already distributed against this region: the purchase
	// price while owned, accrued revenue payouts once pooled. Monotone.
	Paid abi.TokenAmount
}

// SaleInfo describes the currently active sale period.
type SaleInfo struct {
	// Epoch at which this sale became active (lead-in starts here).
	SaleStart abi.ChainEpoch
	// Duration of the price decay at the start of the sale.
	LeadinLength abi.ChainEpoch
	// Baseline whole-core price once the lead-in has elapsed.
	Price abi.TokenAmount
	// Timeslice range [RegionBegin, RegionEnd) of regions minted by this sale.
	RegionBegin Timeslice
	RegionEnd   Timeslice
	// Number of cores offered for sale this period.
	CoresOffered CoreIndex
	// First core index sold this period (cores below it are reserved).
	FirstCore CoreIndex
	// Number of cores sold so far this period.
	CoresSold CoreIndex
}

// StatusInfo carries the progression state of the timeslice clock and the
// running size of the instantaneous pool.
type StatusInfo struct {
	// The fixed number of schedulable cores.
	CoreCount CoreIndex
	// Chunks currently contributed to the pool by reserved system schedules.
	SystemPoolSize uint32
	// Chunks currently contributed to the pool by private (pooled) regions.
	PrivatePoolSize uint32
	// The newest timeslice whose workplan has been compiled and emitted.
	LastCommittedTimeslice Timeslice
}

// InstaPoolHistoryEntry records, for one committed timeslice, the pool's
// composition and the instantaneous revenue collected for it.
type InstaPoolHistoryEntry struct {
	SystemParts  uint32
	PrivateParts uint32
	Revenue      abi.TokenAmount
}

// PoolIoEntry is the change in pool composition taking effect at a timeslice.
type PoolIoEntry struct {
	SystemDelta  int64
	PrivateDelta int64
}

// ContributionRecord tracks a pooled region's claim on pool revenue.
// The record is keyed by a RegionID whose Begin advances past each timeslice
// as it is claimed, so a timeslice can never be paid twice.
type ContributionRecord struct {
	End   Timeslice
	Payee addr.Address
}

// tsCoreKey keys the workplan by (timeslice, core).
type tsCoreKey struct {
	ts   Timeslice
	core CoreIndex
}

func workplanKey(ts Timeslice, core CoreIndex) adt.Keyer {
	return tsCoreKey{ts, core}
}

func (k tsCoreKey) Key() string {
	buf := make([]byte, 6)
	binary.BigEndian.PutUint32(buf[:4], uint32(k.ts))
	binary.BigEndian.PutUint16(buf[4:], uint16(k.core))
	return string(buf)
}

func tsCoreFromKey(k string) (tsCoreKey, error) {
	if len(k) != 6 {
		return tsCoreKey{}, errors.New("malformed workplan key")
	}
	return tsCoreKey{
		ts:   Timeslice(binary.BigEndian.Uint32([]byte(k[:4]))),
		core: CoreIndex(binary.BigEndian.Uint16([]byte(k[4:]))),
	}, nil
}

//// Parameters and returns of exported methods. ////

type ConstructorParams struct {
	CoreCount CoreIndex
}

type ReserveParams struct {
	Workload Schedule
}

type UnreserveParams struct {
	Index uint64
}

type StartSalesParams struct {
	// Baseline whole-core price for the first sale.
	Price abi.TokenAmount
}

type PurchaseParams struct {
	MaxPrice abi.TokenAmount
}

type PurchaseReturn struct {
	Region RegionID
	Price  abi.TokenAmount
}

type PurchaseCreditParams struct {
	Amount      abi.TokenAmount
	Beneficiary addr.Address
}

type TransferParams struct {
	Region   RegionID
	NewOwner addr.Address
}

type PartitionParams struct {
	Region RegionID
	// Pivot is the timeslice, strictly inside the region's span, at which the
	// region is split in two.
	Pivot Timeslice
}

type InterlaceParams struct {
	Region RegionID
	Part   CorePart
}

type AssignParams struct {
	Region RegionID
	Task   TaskID
}

type PoolParams struct {
	Region RegionID
	// Payee receives this region's future revenue claims.
	Payee addr.Address
}

type ClaimRevenueParams struct {
	Region RegionID
	// Upper bound on the timeslices settled by this call.
	MaxTimeslices uint64
}

type ClaimRevenueReturn struct {
	// Amount paid out to the contribution's payee by this call.
	Paid abi.TokenAmount
	// Whether the contribution is now fully claimed and retired.
	Retired bool
}

type CheckRevenueReturn struct {
	// Whether unprocessed history remains; callers drive CheckRevenue until false.
	More bool
}

type UsageParams struct {
	// The timeslice in which the usage occurred.
	Timeslice Timeslice
	// Instantaneous ticks consumed from the pool.
	Ticks uint64
	// Account whose prepaid credit covers the usage.
	Payer addr.Address
}

// WorkItem is one aggregated entry of an assignment message.
type WorkItem struct {
	Assignment CoreAssignment
	Ticks      uint64
}

// AssignCoreParams is the lookahead assignment message pushed to the external
// scheduler, once per core per timeslice whose workload changes.
type AssignCoreParams struct {
	Core CoreIndex
	// First epoch at which the assignment is in force.
	Begin abi.ChainEpoch
	// Priority-ordered work items; ticks sum to at most FullCoreTicks.
	Assignment []WorkItem
	// The earliest timeslice at which this assignment is known to change,
	// or NoEndHint when no future change is yet known.
	EndHint Timeslice
}

// NoEndHint marks an assignment with no known future change.
// Timeslice zero can never be a future change point.
const NoEndHint = Timeslice(0)
