package broker

import (
	"github.com/filecoin-project/go-state-types/big"

	"github.com/coretime-project/coretime-actors/actors/builtin"
	"github.com/coretime-project/coretime-actors/actors/util/adt"
)

type StateSummary struct {
	RegionCount       int
	ContributionCount int
	WorkplanEntries   int
	PooledChunks      uint64
}

// Checks internal invariants of the broker state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}
	summary := &StateSummary{}

	acc.Require(st.Status.CoreCount > 0, "core count is zero")
	acc.Require(len(st.Reservations) <= int(st.Status.CoreCount),
		"%d reservations exceed %d cores", len(st.Reservations), st.Status.CoreCount)
	acc.Require(st.SaleRevenue.GreaterThanEqual(big.Zero()), "negative sale revenue %v", st.SaleRevenue)
	acc.Require(st.PoolPot.GreaterThanEqual(big.Zero()), "negative pool pot %v", st.PoolPot)
	acc.Require(st.RevenueCursor <= st.Status.LastCommittedTimeslice+1,
		"revenue cursor %d ahead of committed timeslice %d", st.RevenueCursor, st.Status.LastCommittedTimeslice)

	for i, schedule := range st.Reservations {
		acc.RequireNoError(schedule.Validate(), "invalid reserved schedule %d", i)
	}

	if st.SaleActive {
		acc := acc.WithPrefix("sale: ")
		acc.Require(st.Sale.RegionBegin < st.Sale.RegionEnd, "empty region span")
		acc.Require(st.Sale.RegionEnd-st.Sale.RegionBegin == RegionLength,
			"region span %d not a region length", st.Sale.RegionEnd-st.Sale.RegionBegin)
		acc.Require(st.Sale.CoresSold <= st.Sale.CoresOffered,
			"%d cores sold of %d offered", st.Sale.CoresSold, st.Sale.CoresOffered)
		acc.Require(st.Sale.FirstCore == CoreIndex(len(st.Reservations)),
			"first core %d but %d reservations", st.Sale.FirstCore, len(st.Reservations))
		acc.Require(st.Sale.Price.GreaterThan(big.Zero()), "non-positive price %v", st.Sale.Price)
	}

	// Regions on the same core with overlapping spans must cover disjoint parts.
	type regionSpan struct {
		begin, end Timeslice
		core       CoreIndex
		part       CorePart
	}
	var spans []regionSpan
	regions := adt.AsMap(store, st.Regions)
	var record RegionRecord
	err := regions.ForEach(&record, func(key string) error {
		summary.RegionCount++
		id, err := regionIDFromKey(key)
		if err != nil {
			return err
		}
		acc := acc.WithPrefix("region %v: ", id)
		acc.Require(!id.Part.IsEmpty(), "empty part")
		acc.Require(id.Begin < record.End, "begin %d not before end %d", id.Begin, record.End)
		acc.Require(record.Paid.GreaterThanEqual(big.Zero()), "negative paid amount %v", record.Paid)
		acc.Require(id.Core < st.Status.CoreCount, "core beyond core count %d", st.Status.CoreCount)
		spans = append(spans, regionSpan{id.Begin, record.End, id.Core, id.Part})
		return nil
	})
	acc.RequireNoError(err, "error iterating regions")
	for i, a := range spans {
		for _, b := range spans[i+1:] {
			if a.core != b.core || a.end <= b.begin || b.end <= a.begin {
				continue
			}
			acc.Require(a.part.IsDisjoint(b.part),
				"overlapping regions on core %d share chunks: %v and %v", a.core, a.part, b.part)
		}
	}

	// Every contribution must reference a pooled region held by the broker.
	contributions := adt.AsMap(store, st.Contributions)
	var contribution ContributionRecord
	err = contributions.ForEach(&contribution, func(key string) error {
		summary.ContributionCount++
		id, err := regionIDFromKey(key)
		if err != nil {
			return err
		}
		acc := acc.WithPrefix("contribution %v: ", id)
		record, found, err := st.getRegion(store, id)
		if err != nil {
			return err
		}
		acc.Require(found, "no backing region")
		if found {
			acc.Require(record.Owner == builtin.BrokerActorAddr, "backing region not consumed")
			acc.Require(record.End == contribution.End, "end %d mismatches region end %d", contribution.End, record.End)
		}
		summary.PooledChunks += id.Part.Count()
		return nil
	})
	acc.RequireNoError(err, "error iterating contributions")

	// Workplan entries are only pending for uncommitted timeslices.
	workplan := adt.AsMap(store, st.Workplan)
	var schedule Schedule
	err = workplan.ForEach(&schedule, func(key string) error {
		summary.WorkplanEntries++
		k, err := tsCoreFromKey(key)
		if err != nil {
			return err
		}
		acc := acc.WithPrefix("workplan (%d, %d): ", k.ts, k.core)
		acc.Require(k.ts > st.Status.LastCommittedTimeslice, "entry for committed timeslice")
		acc.Require(k.core < st.Status.CoreCount, "core beyond core count %d", st.Status.CoreCount)
		acc.RequireNoError(schedule.Validate(), "invalid schedule")
		return nil
	})
	acc.RequireNoError(err, "error iterating workplan")

	return summary, acc
}
