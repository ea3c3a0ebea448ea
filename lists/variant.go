package lists

import "fmt"

type Variant uint8

const (
	VariantNil Variant = iota
	VariantCons
)

func (v Variant) String() string {
	switch v {
	case VariantNil:
		return "Nil"
	case VariantCons:
		return "Cons"
	default:
		panic(fmt.Errorf("unexpected variant: %d", uint8(v)))
	}
}
