package main

import (
	broker "github.com/coretime-project/coretime-actors/actors/builtin/broker"

	gen "github.com/whyrusleeping/cbor-gen"
)

func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/broker/cbor_gen.go", "broker",
		// actor state
		broker.State{},
		broker.SaleInfo{},
		broker.StatusInfo{},
		broker.RegionID{},
		broker.RegionRecord{},
		broker.CoreAssignment{},
		broker.ScheduleItem{},
		broker.Schedule{},
		broker.InstaPoolHistoryEntry{},
		broker.PoolIoEntry{},
		broker.ContributionRecord{},
		broker.WorkItem{},
		// method params and returns
		broker.ConstructorParams{},
		broker.ReserveParams{},
		broker.UnreserveParams{},
		broker.StartSalesParams{},
		broker.PurchaseParams{},
		broker.PurchaseReturn{},
		broker.PurchaseCreditParams{},
		broker.TransferParams{},
		broker.PartitionParams{},
		broker.InterlaceParams{},
		broker.AssignParams{},
		broker.PoolParams{},
		broker.ClaimRevenueParams{},
		broker.ClaimRevenueReturn{},
		broker.CheckRevenueReturn{},
		broker.UsageParams{},
		broker.AssignCoreParams{},
	); err != nil {
		panic(err)
	}
}
