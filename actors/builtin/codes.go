package builtin

import (
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// The built-in actor code IDs
var SystemActorCodeID cid.Cid
var AccountActorCodeID cid.Cid
var MultisigActorCodeID cid.Cid
var BrokerActorCodeID cid.Cid
var SchedulerActorCodeID cid.Cid
var CoretimeProviderActorCodeID cid.Cid
var CallerTypesSignable []cid.Cid

func init() {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	makeBuiltin := func(s string) cid.Cid {
		c, err := builder.Sum([]byte(s))
		if err != nil {
			panic(err)
		}
		return c
	}

	SystemActorCodeID = makeBuiltin("coretime/1/system")
	AccountActorCodeID = makeBuiltin("coretime/1/account")
	MultisigActorCodeID = makeBuiltin("coretime/1/multisig")
	BrokerActorCodeID = makeBuiltin("coretime/1/broker")
	SchedulerActorCodeID = makeBuiltin("coretime/1/scheduler")
	CoretimeProviderActorCodeID = makeBuiltin("coretime/1/provider")

	// Set of actor code types that can represent external signing parties.
	CallerTypesSignable = []cid.Cid{AccountActorCodeID, MultisigActorCodeID}
}
