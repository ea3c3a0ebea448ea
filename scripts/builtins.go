package scripts

import (
	"fmt"

	"github.com/reusee/conslist/lists"
	"go.starlark.net/starlark"
)

var Builtins = starlark.StringDict{
	"empty": starlark.NewBuiltin("empty", empty),
	"cons":  starlark.NewBuiltin("cons", cons),
	"of":    starlark.NewBuiltin("of", of),
}

func empty(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return Value{list: lists.New()}, nil
}

func cons(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	var rest Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &rest); err != nil {
		return nil, err
	}
	value, err := toInt32(b.Name(), x)
	if err != nil {
		return nil, err
	}
	return Value{list: lists.From(value, rest.list.Clone())}, nil
}

func of(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	values := make([]int32, 0, len(args))
	for _, arg := range args {
		value, err := toInt32(b.Name(), arg)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return Value{list: lists.Of(values...)}, nil
}

// FromValue converts a script value to a list.
// It accepts list values and sequences of int32 numbers.
func FromValue(v starlark.Value) (lists.List, error) {
	switch v := v.(type) {
	case Value:
		return v.List(), nil
	case starlark.NoneType:
		return lists.New(), nil
	case starlark.Iterable:
		var values []int32
		iter := v.Iterate()
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			value, err := toInt32("convert", elem)
			if err != nil {
				return lists.List{}, err
			}
			values = append(values, value)
		}
		return lists.Of(values...), nil
	}
	return lists.List{}, fmt.Errorf("cannot convert %s to %s", v.Type(), typeName)
}
