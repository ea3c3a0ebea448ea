package lists

import (
	"iter"
	"strconv"
	"strings"
)

// List is a cons list of int32 values.
// The zero value is Nil, the empty list.
type List struct {
	cons *cell
}

// cell is a Cons node. It exclusively owns Next.
type cell struct {
	Value int32
	Next  List
}

func New() List {
	return List{}
}

// From returns Cons(value, rest), taking ownership of rest.
func From(value int32, rest List) List {
	return List{
		cons: &cell{
			Value: value,
			Next:  rest,
		},
	}
}

// Of builds a list holding values in order.
func Of(values ...int32) List {
	ret := New()
	for i := len(values) - 1; i >= 0; i-- {
		ret = From(values[i], ret)
	}
	return ret
}

func (l List) Variant() Variant {
	if l.cons == nil {
		return VariantNil
	}
	return VariantCons
}

func (l List) IsNil() bool {
	return l.cons == nil
}

func (l List) Head() (int32, bool) {
	if l.cons == nil {
		return 0, false
	}
	return l.cons.Value, true
}

// Next returns the successor list, or nil if l is Nil.
func (l *List) Next() *List {
	if l.cons == nil {
		return nil
	}
	return &l.cons.Next
}

// Tail returns the terminal Nil node of l. It never returns nil.
func (l *List) Tail() *List {
	tail := l
	for next := tail.Next(); next != nil; next = tail.Next() {
		tail = next
	}
	return tail
}

// Prepend replaces l with Cons(value, copy of l).
func (l *List) Prepend(value int32) {
	*l = From(value, l.Clone())
}

func (l List) Clone() List {
	var ret List
	dst := &ret
	for c := l.cons; c != nil; c = c.Next.cons {
		dst.cons = &cell{
			Value: c.Value,
		}
		dst = &dst.cons.Next
	}
	return ret
}

func (l List) Len() (n int) {
	for c := l.cons; c != nil; c = c.Next.cons {
		n++
	}
	return
}

func (l List) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for c := l.cons; c != nil; c = c.Next.cons {
			if !yield(c.Value) {
				return
			}
		}
	}
}

func (l List) Values() []int32 {
	ret := make([]int32, 0, l.Len())
	for v := range l.All() {
		ret = append(ret, v)
	}
	return ret
}

// Equal reports whether l and other have the same variants and values at every position.
func (l List) Equal(other List) bool {
	a, b := l.cons, other.cons
	for a != nil && b != nil {
		if a == b {
			return true
		}
		if a.Value != b.Value {
			return false
		}
		a, b = a.Next.cons, b.Next.cons
	}
	return a == nil && b == nil
}

func (l List) String() string {
	buf := new(strings.Builder)
	depth := 0
	for c := l.cons; c != nil; c = c.Next.cons {
		buf.WriteString("Cons(")
		buf.WriteString(strconv.FormatInt(int64(c.Value), 10))
		buf.WriteString(", ")
		depth++
	}
	buf.WriteString("Nil")
	buf.WriteString(strings.Repeat(")", depth))
	return buf.String()
}

func (l List) GoString() string {
	return l.String()
}

// Describe renders an optional list as None or Some(...).
func Describe(l *List) string {
	if l == nil {
		return "None"
	}
	return "Some(" + l.String() + ")"
}
