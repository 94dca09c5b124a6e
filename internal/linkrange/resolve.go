package linkrange

import (
	"fmt"

	"github.com/dshills/keylink/internal/model"
)

// Sequence is a read-only view of an ordered run sequence.
// *model.Document satisfies it.
type Sequence interface {
	// Len returns the number of runs.
	Len() int

	// Run returns run i.
	Run(i int) model.Run

	// Start returns the offset at which run i begins.
	Start(i int) int

	// Locate returns the runs before and after offset; -1 when absent.
	Locate(offset int) (before, after int, err error)
}

// Range is a maximal span of runs carrying Key with Value.
// Runs First through Last (inclusive) lie inside it.
type Range struct {
	model.Range
	Key   string
	Value any
	First int
	Last  int
}

// Equal reports whether both ranges cover the same span with the same value.
func (r Range) Equal(other Range) bool {
	return r.Range.Equal(other.Range) && r.Key == other.Key && r.Value == other.Value
}

// String returns a debug representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("%s %s=%#v", r.Range, r.Key, r.Value)
}

// Resolve returns the range of key around pos. ok is false when neither
// neighbour of pos carries key.
func Resolve(seq Sequence, pos model.Position, key string) (Range, bool, error) {
	primary, secondary, err := neighbours(seq, pos)
	if err != nil {
		return Range{}, false, err
	}

	for _, i := range []int{primary, secondary} {
		if i < 0 {
			continue
		}
		if v, ok := seq.Run(i).Attr(key); ok {
			return expand(seq, i, key, v), true, nil
		}
	}
	return Range{}, false, nil
}

// ResolveValue returns the range of key with exactly value around pos.
func ResolveValue(seq Sequence, pos model.Position, key string, value any) (Range, bool, error) {
	primary, secondary, err := neighbours(seq, pos)
	if err != nil {
		return Range{}, false, err
	}

	for _, i := range []int{primary, secondary} {
		if i < 0 {
			continue
		}
		if v, ok := seq.Run(i).Attr(key); ok && v == value {
			return expand(seq, i, key, v), true, nil
		}
	}
	return Range{}, false, nil
}

// All returns every range of key in document order.
func All(seq Sequence, key string) []Range {
	var out []Range
	for i := 0; i < seq.Len(); i++ {
		v, ok := seq.Run(i).Attr(key)
		if !ok {
			continue
		}
		r := expand(seq, i, key, v)
		out = append(out, r)
		i = r.Last
	}
	return out
}

// neighbours returns the gravity-side run index first.
func neighbours(seq Sequence, pos model.Position) (primary, secondary int, err error) {
	before, after, err := seq.Locate(pos.Offset)
	if err != nil {
		return -1, -1, fmt.Errorf("resolve at %s: %w", pos, err)
	}
	if before == after {
		return before, -1, nil
	}
	if pos.Gravity == model.Forward {
		return after, before, nil
	}
	return before, after, nil
}

// expand grows from anchor in both directions while runs carry value.
func expand(seq Sequence, anchor int, key string, value any) Range {
	first := anchor
	for first > 0 && carries(seq.Run(first-1), key, value) {
		first--
	}
	last := anchor
	for last+1 < seq.Len() && carries(seq.Run(last+1), key, value) {
		last++
	}

	end := seq.Start(last) + seq.Run(last).Len()
	return Range{
		Range: model.Range{Start: seq.Start(first), End: end},
		Key:   key,
		Value: value,
		First: first,
		Last:  last,
	}
}

func carries(r model.Run, key string, value any) bool {
	v, ok := r.Attr(key)
	return ok && v == value
}
