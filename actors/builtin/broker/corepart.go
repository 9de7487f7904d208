package broker

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"

	. "github.com/coretime-project/coretime-actors/actors/util"
)

// CorePart is a subset of the chunks of a single core, as a fixed 80-bit mask.
// It is an opaque value type: callers manipulate parts only through the
// algebraic operations below, all of which are total over the 80-chunk domain.
// The zero value is the empty part.
type CorePart struct {
	hi uint16 // chunks 64..79
	lo uint64 // chunks 0..63
}

// CorePartEmpty returns the part containing no chunks.
func CorePartEmpty() CorePart {
	return CorePart{}
}

// CorePartComplete returns the part containing every chunk of a core.
func CorePartComplete() CorePart {
	return CorePart{hi: 0xffff, lo: ^uint64(0)}
}

// CorePartFromChunk returns the part containing chunks [start, end).
// Out-of-range indices are a caller contract violation.
func CorePartFromChunk(start, end uint64) CorePart {
	AssertMsg(start <= end && end <= TimesliceChunks, "invalid chunk range [%d, %d)", start, end)
	return CorePart{
		hi: uint16(rangeMask(start, end, 64, 80)),
		lo: rangeMask(start, end, 0, 64),
	}
}

// rangeMask computes the bits of [start, end) falling within word bits [wordLo, wordHi),
// shifted down to the word's origin.
func rangeMask(start, end, wordLo, wordHi uint64) uint64 {
	if end <= wordLo || start >= wordHi {
		return 0
	}
	if start < wordLo {
		start = wordLo
	}
	if end > wordHi {
		end = wordHi
	}
	width := end - start
	if width == 0 {
		return 0
	}
	return (^uint64(0) >> (64 - width)) << (start - wordLo)
}

// Union returns the chunks in either part.
func (p CorePart) Union(o CorePart) CorePart {
	return CorePart{hi: p.hi | o.hi, lo: p.lo | o.lo}
}

// Intersection returns the chunks in both parts.
func (p CorePart) Intersection(o CorePart) CorePart {
	return CorePart{hi: p.hi & o.hi, lo: p.lo & o.lo}
}

// Without returns the chunks of p that are not in o.
func (p CorePart) Without(o CorePart) CorePart {
	return CorePart{hi: p.hi &^ o.hi, lo: p.lo &^ o.lo}
}

// IsDisjoint reports whether the two parts share no chunk.
func (p CorePart) IsDisjoint(o CorePart) bool {
	return p.Intersection(o) == CorePart{}
}

// IsSubsetOf reports whether every chunk of p is also in o.
func (p CorePart) IsSubsetOf(o CorePart) bool {
	return p.Union(o) == o
}

func (p CorePart) IsEmpty() bool {
	return p == CorePart{}
}

func (p CorePart) IsComplete() bool {
	return p == CorePartComplete()
}

// Count returns the number of chunks in the part.
func (p CorePart) Count() uint64 {
	return uint64(bits.OnesCount64(p.lo) + bits.OnesCount16(p.hi))
}

// Ticks returns the scheduling weight of the part for one timeslice.
func (p CorePart) Ticks() uint64 {
	return p.Count() * TicksPerChunk
}

// Bytes returns the canonical 10-byte big-endian encoding, used in region keys.
func (p CorePart) Bytes() []byte {
	buf := make([]byte, 10)
	binary.BigEndian.PutUint16(buf[:2], p.hi)
	binary.BigEndian.PutUint64(buf[2:], p.lo)
	return buf
}

func corePartFromBytes(b []byte) (CorePart, error) {
	if len(b) != 10 {
		return CorePart{}, xerrors.Errorf("core part encoding must be 10 bytes, got %d", len(b))
	}
	return CorePart{
		hi: binary.BigEndian.Uint16(b[:2]),
		lo: binary.BigEndian.Uint64(b[2:]),
	}, nil
}

// String renders the part as chunk ranges, e.g. "[0,20)+[40,80)".
func (p CorePart) String() string {
	out := ""
	start := int64(-1)
	for i := uint64(0); i <= TimesliceChunks; i++ {
		has := i < TimesliceChunks && !p.Intersection(CorePartFromChunk(i, i+1)).IsEmpty()
		if has && start < 0 {
			start = int64(i)
		} else if !has && start >= 0 {
			out += fmt.Sprintf("+[%d,%d)", start, i)
			start = -1
		}
	}
	if out == "" {
		return "[)"
	}
	return out[1:]
}

// CBOR encoding: a 10-byte string (see Bytes).

func (p *CorePart) MarshalCBOR(w io.Writer) error {
	if err := cbg.WriteMajorTypeHeader(w, cbg.MajByteString, 10); err != nil {
		return err
	}
	_, err := w.Write(p.Bytes())
	return err
}

func (p *CorePart) UnmarshalCBOR(r io.Reader) error {
	br := cbg.GetPeeker(r)
	maj, extra, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}
	if maj != cbg.MajByteString {
		return fmt.Errorf("core part should be a byte string")
	}
	if extra != 10 {
		return fmt.Errorf("core part should be 10 bytes, got %d", extra)
	}
	buf := make([]byte, 10)
	if _, err := io.ReadFull(br, buf); err != nil {
		return err
	}
	*p, err = corePartFromBytes(buf)
	return err
}
