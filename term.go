package sekai

import (
	"iter"

	"github.com/pkg/errors"
)

// Term is one component of a query. A *Column is a required term: only slots
// present in it are visited. Maybe wraps a column as an optional term: it
// does not narrow the visited slots and yields nil where the slot is absent.
type Term[T any] interface {
	spec() termSpec
	fetch(i Index) *T
}

// termSpec is what query composition needs to know about a term.
type termSpec struct {
	mask   *Bitset // nil for optional terms
	domain int
	owner  any // identity of the backing column
}

type maybeTerm[T any] struct {
	col *Column[T]
}

// Maybe returns an optional term over c.
func Maybe[T any](c *Column[T]) Term[T] {
	return maybeTerm[T]{col: c}
}

func (m maybeTerm[T]) spec() termSpec {
	s := m.col.spec()
	s.mask = nil
	return s
}

// fetch performs its own membership check: an optional term is visited at
// slots it may not hold.
func (m maybeTerm[T]) fetch(i Index) *T {
	return m.col.GetMut(i)
}

func specOf[T any](t Term[T]) termSpec {
	if t == nil {
		return termSpec{}
	}
	return t.spec()
}

// compose validates the terms of one query and returns the masks of its
// required terms. All terms must share one domain, name distinct columns and
// include at least one required term.
func compose(specs ...termSpec) ([]*Bitset, error) {
	masks := make([]*Bitset, 0, len(specs))
	for k, s := range specs {
		if s.owner == nil {
			return nil, errors.Wrapf(ErrNilColumn, "term %d", k+1)
		}
		if s.domain != specs[0].domain {
			return nil, errors.Wrapf(ErrDomainMismatch, "term %d has capacity %d, term 1 has %d", k+1, s.domain, specs[0].domain)
		}
		for j := 0; j < k; j++ {
			if specs[j].owner == s.owner {
				return nil, errors.Wrapf(ErrAliasedTerm, "terms %d and %d", j+1, k+1)
			}
		}
		if s.mask != nil {
			masks = append(masks, s.mask)
		}
	}
	if len(masks) == 0 {
		return nil, ErrNoRequiredTerm
	}
	return masks, nil
}

// Intersect returns the ascending sequence of slots present in every mask.
// The masks must share one domain.
func Intersect(masks ...*Bitset) (iter.Seq[Index], error) {
	if len(masks) == 0 {
		return nil, ErrNoRequiredTerm
	}
	for k, m := range masks {
		if m == nil {
			return nil, errors.Wrapf(ErrNilColumn, "mask %d", k+1)
		}
		if m.Capacity() != masks[0].Capacity() {
			return nil, errors.Wrapf(ErrDomainMismatch, "mask %d has capacity %d, mask 1 has %d", k+1, m.Capacity(), masks[0].Capacity())
		}
	}
	return indices(append([]*Bitset(nil), masks...)), nil
}
