package scripts

import (
	"fmt"

	"github.com/reusee/conslist/lists"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const typeName = "cons_list"

// Value is an immutable list visible to scripts.
type Value struct {
	list lists.List
}

var (
	_ starlark.Value      = Value{}
	_ starlark.HasAttrs   = Value{}
	_ starlark.Sequence   = Value{}
	_ starlark.Comparable = Value{}
)

func NewValue(l lists.List) Value {
	return Value{
		list: l.Clone(),
	}
}

func (v Value) List() lists.List {
	return v.list.Clone()
}

func (v Value) String() string {
	return v.list.String()
}

func (v Value) Type() string {
	return typeName
}

func (v Value) Freeze() {
}

func (v Value) Truth() starlark.Bool {
	return starlark.Bool(!v.list.IsNil())
}

func (v Value) Hash() (uint32, error) {
	h := uint32(2166136261)
	for value := range v.list.All() {
		h ^= uint32(value)
		h *= 16777619
	}
	return h, nil
}

func (v Value) Len() int {
	return v.list.Len()
}

func (v Value) Iterate() starlark.Iterator {
	return &iterator{
		list: &v.list,
	}
}

type iterator struct {
	list *lists.List
}

func (i *iterator) Next(p *starlark.Value) bool {
	head, ok := i.list.Head()
	if !ok {
		return false
	}
	*p = starlark.MakeInt(int(head))
	i.list = i.list.Next()
	return true
}

func (i *iterator) Done() {
}

func (v Value) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	other := y.(Value)
	switch op {
	case syntax.EQL:
		return v.list.Equal(other.list), nil
	case syntax.NEQ:
		return !v.list.Equal(other.list), nil
	}
	return false, fmt.Errorf("%s %s %s not implemented", typeName, op, typeName)
}

var attrNames = []string{"head", "len", "next", "prepend", "tail"}

func (v Value) AttrNames() []string {
	return attrNames
}

func (v Value) Attr(name string) (starlark.Value, error) {
	switch name {

	case "head":
		head, ok := v.list.Head()
		if !ok {
			return starlark.None, nil
		}
		return starlark.MakeInt(int(head)), nil

	case "len":
		return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.MakeInt(v.list.Len()), nil
		}), nil

	case "next":
		return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			l := v.list
			next := l.Next()
			if next == nil {
				return starlark.None, nil
			}
			return Value{list: *next}, nil
		}), nil

	case "tail":
		return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			l := v.list
			return Value{list: *l.Tail()}, nil
		}), nil

	case "prepend":
		return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var x starlark.Value
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
				return nil, err
			}
			value, err := toInt32(b.Name(), x)
			if err != nil {
				return nil, err
			}
			l := v.list
			l.Prepend(value)
			return Value{list: l}, nil
		}), nil

	}
	return nil, nil
}

func toInt32(fnName string, x starlark.Value) (int32, error) {
	i, err := starlark.AsInt32(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fnName, err)
	}
	return int32(i), nil
}
