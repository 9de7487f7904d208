package adt

import (
	"bytes"

	amt "github.com/filecoin-project/go-amt-ipld/v2"
	cid "github.com/ipfs/go-cid"
	errors "github.com/pkg/errors"
	cbg "github.com/whyrusleeping/cbor-gen"

	vmr "github.com/coretime-project/coretime-actors/actors/runtime"
)

// IntMap stores key-value pairs, with integer keys, in an AMT.
// It suits densely-packed integer keyspaces such as per-timeslice tables.
type IntMap struct {
	root  cid.Cid
	store Store
}

// AsIntMap interprets a store as an AMT-based map with root `r`.
func AsIntMap(s Store, r cid.Cid) *IntMap {
	return &IntMap{
		root:  r,
		store: s,
	}
}

// Creates a new map backed by an empty AMT and flushes it to the store.
func MakeEmptyIntMap(s Store) (*IntMap, error) {
	nd := amt.NewAMT(s)
	newMap := AsIntMap(s, cid.Undef)
	err := newMap.write(nd)
	return newMap, err
}

// Root returns the root cid of the underlying AMT.
func (m *IntMap) Root() cid.Cid {
	return m.root
}

// Put adds value `v` with key `i` to the AMT store.
func (m *IntMap) Put(i uint64, v vmr.CBORMarshaler) error {
	root, err := amt.LoadAMT(m.store.Context(), m.store, m.root)
	if err != nil {
		return errors.Wrapf(err, "intmap put failed to load node %v", m.root)
	}
	if err = root.Set(m.store.Context(), i, v); err != nil {
		return errors.Wrapf(err, "intmap put failed set in node %v with key %v value %v", m.root, i, v)
	}
	return m.write(root)
}

// Get puts the value at `i` into `out`, returning whether the key was found.
func (m *IntMap) Get(i uint64, out vmr.CBORUnmarshaler) (bool, error) {
	root, err := amt.LoadAMT(m.store.Context(), m.store, m.root)
	if err != nil {
		return false, errors.Wrapf(err, "intmap get failed to load node %v", m.root)
	}
	if err = root.Get(m.store.Context(), i, out); err != nil {
		if _, ok := err.(*amt.ErrNotFound); ok {
			return false, nil
		}
		return false, errors.Wrapf(err, "intmap get failed find in node %v with key %v", m.root, i)
	}
	return true, nil
}

// Delete removes the value at `i` from the AMT store. The entry must exist.
func (m *IntMap) Delete(i uint64) error {
	root, err := amt.LoadAMT(m.store.Context(), m.store, m.root)
	if err != nil {
		return errors.Wrapf(err, "intmap delete failed to load node %v", m.root)
	}
	if err = root.Delete(m.store.Context(), i); err != nil {
		return errors.Wrapf(err, "intmap delete failed in node %v key %v", m.root, i)
	}
	return m.write(root)
}

// ForEach iterates all entries in the map in key order, deserializing each value in turn into
// `out` and then calling a function with the corresponding key.
// If the output parameter is nil, deserialization is skipped.
func (m *IntMap) ForEach(out vmr.CBORUnmarshaler, fn func(i uint64) error) error {
	root, err := amt.LoadAMT(m.store.Context(), m.store, m.root)
	if err != nil {
		return errors.Wrapf(err, "intmap foreach failed to load node %v", m.root)
	}
	return root.ForEach(m.store.Context(), func(k uint64, val *cbg.Deferred) error {
		if out != nil {
			err = out.UnmarshalCBOR(bytes.NewReader(val.Raw))
			if err != nil {
				return err
			}
		}
		return fn(k)
	})
}

// Writes the root node to storage and sets the new root CID.
func (m *IntMap) write(root *amt.Root) error {
	newCid, err := root.Flush(m.store.Context())
	if err != nil {
		return errors.Wrapf(err, "intmap failed to write node %v", m.root)
	}
	m.root = newCid
	return nil
}
