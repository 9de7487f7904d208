package adt

import (
	addr "github.com/filecoin-project/go-address"
	abi "github.com/filecoin-project/go-state-types/abi"
	big "github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
)

// A specialization of a map of addresses to token amounts.
// Absent keys are interpreted as a zero balance.
type BalanceTable Map

// AsBalanceTable interprets a store as balance table with root `r`.
func AsBalanceTable(s Store, r cid.Cid) *BalanceTable {
	return &BalanceTable{
		root:  r,
		store: s,
	}
}

// Root returns the root cid of the underlying HAMT.
func (t *BalanceTable) Root() cid.Cid {
	return t.root
}

// Gets the balance for a key, or zero if the key is absent.
func (t *BalanceTable) Get(key addr.Address) (abi.TokenAmount, error) {
	var value abi.TokenAmount
	found, err := (*Map)(t).Get(AddrKey(key), &value)
	if err != nil {
		return big.Zero(), err // The errors from Map carry good information, no need to wrap here.
	}
	if !found {
		return big.Zero(), nil
	}
	return value, nil
}

// Has reports whether the key holds a (possibly zero) balance.
func (t *BalanceTable) Has(key addr.Address) (bool, error) {
	var value abi.TokenAmount
	return (*Map)(t).Get(AddrKey(key), &value)
}

// AddCreate adds an amount to a balance, creating the entry if it doesn't already exist.
func (t *BalanceTable) AddCreate(key addr.Address, value abi.TokenAmount) error {
	prev, err := t.Get(key)
	if err != nil {
		return err
	}
	sum := big.Add(prev, value)
	return (*Map)(t).Put(AddrKey(key), &sum)
}

// SubtractWithMinimum subtracts up to the specified amount from a balance, without reducing the
// balance below some minimum.
// Returns the amount subtracted (always positive or zero).
func (t *BalanceTable) SubtractWithMinimum(key addr.Address, req abi.TokenAmount, floor abi.TokenAmount) (abi.TokenAmount, error) {
	prev, err := t.Get(key)
	if err != nil {
		return big.Zero(), err
	}
	available := big.Max(big.Zero(), big.Sub(prev, floor))
	sub := big.Min(available, req)
	if sub.Sign() > 0 {
		err = t.AddCreate(key, sub.Neg())
		if err != nil {
			return big.Zero(), err
		}
	}
	return sub, nil
}

// Remove removes an entry from the table, returning the prior value (zero if absent).
func (t *BalanceTable) Remove(key addr.Address) (abi.TokenAmount, error) {
	prev, err := t.Get(key)
	if err != nil {
		return big.Zero(), err
	}
	has, err := t.Has(key)
	if err != nil {
		return big.Zero(), err
	}
	if has {
		if err := (*Map)(t).Delete(AddrKey(key)); err != nil {
			return big.Zero(), err
		}
	}
	return prev, nil
}
