package broker

import (
	"fmt"

	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
)

// The number of independently schedulable chunks a core is divided into.
// Region parts address subsets of these chunks.
const TimesliceChunks = 80

// Scheduler ticks comprising one full core for one timeslice.
// Chosen so that every legal chunk count maps to a whole number of ticks.
const FullCoreTicks = uint64(57600)

// Ticks represented by a single chunk for one timeslice.
const TicksPerChunk = FullCoreTicks / TimesliceChunks

// The number of chain epochs in one timeslice.
const TimeslicePeriod = abi.ChainEpoch(2)

// The number of timeslices in one sale period, and hence in each region minted by a sale.
const RegionLength = Timeslice(4)

// The number of timeslices committed to the scheduler ahead of the present one.
// An assignment for timeslice T is emitted when the chain enters timeslice T - AdvanceNotice.
const AdvanceNotice = Timeslice(1)

// The number of epochs after a sale starts during which the posted price decays
// from LeadinFactor times the baseline down to the baseline.
const LeadinLength = abi.ChainEpoch(2)

// Multiple of the baseline price asked at the very start of a sale's lead-in.
const LeadinFactor = 2

// Price folded into pool revenue per tick of reported instantaneous usage.
var InstantaneousTickPrice = abi.NewTokenAmount(1)

func init() {
	// The per-chunk tick weight must be exact for ticks conservation to hold.
	if FullCoreTicks%TimesliceChunks != 0 {
		panic(fmt.Sprintf("full core ticks %d not divisible into %d chunks", FullCoreTicks, TimesliceChunks))
	}
}

// SalePrice returns the posted whole-core price for a sale at epoch `now`.
// During the lead-in the price decays linearly from LeadinFactor*Price to Price;
// afterwards it holds at Price. Monotone non-increasing within a sale.
func SalePrice(sale *SaleInfo, now abi.ChainEpoch) abi.TokenAmount {
	elapsed := now - sale.SaleStart
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= sale.LeadinLength {
		return sale.Price
	}
	remaining := sale.LeadinLength - elapsed
	// price + price*(LeadinFactor-1)*remaining/leadinLength
	extra := big.Div(
		big.Mul(sale.Price, big.NewInt(int64(LeadinFactor-1)*int64(remaining))),
		big.NewInt(int64(sale.LeadinLength)),
	)
	return big.Add(sale.Price, extra)
}

// NextSalePrice returns the baseline price for the sale following `prev`,
// nudged by observed demand: doubled if the previous sale sold out, halved
// (with a floor of 1) if it sold less than half its offering.
func NextSalePrice(prev *SaleInfo) abi.TokenAmount {
	if prev.CoresOffered == 0 {
		return prev.Price
	}
	if prev.CoresSold >= prev.CoresOffered {
		return big.Mul(prev.Price, big.NewInt(2))
	}
	if uint64(prev.CoresSold)*2 < uint64(prev.CoresOffered) {
		return big.Max(big.NewInt(1), big.Div(prev.Price, big.NewInt(2)))
	}
	return prev.Price
}

// quantizeUp rounds ts up to the next multiple of `unit`.
func quantizeUp(ts Timeslice, unit Timeslice) Timeslice {
	remainder := ts % unit
	if remainder == 0 {
		return ts
	}
	return ts - remainder + unit
}
