package builtin

import (
	addr "github.com/filecoin-project/go-address"
)

// Addresses of singleton actors, defined at genesis.
var (
	SystemActorAddr           = mustMakeAddress(0)
	GovernorActorAddr         = mustMakeAddress(1)
	BurntFundsActorAddr       = mustMakeAddress(2)
	BrokerActorAddr           = mustMakeAddress(3)
	SchedulerActorAddr        = mustMakeAddress(4)
	CoretimeProviderActorAddr = mustMakeAddress(5)
)

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return address
}
