package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
name?: string
values?: [...int32 & int]
count?: int
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/a.cue", "testdata/b.cue"}, testSchema)

	var name string
	if err := loader.AssignFirst("name", &name); err != nil {
		t.Fatal(err)
	}
	if name != "a" {
		t.Fatalf("got %q", name)
	}

	var values []int32
	if err := loader.AssignFirst("values", &values); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", values); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	var count int
	if err := loader.AssignFirst("count", &count); err != nil {
		t.Fatal(err)
	}
	if count != 42 {
		t.Fatalf("got %d", count)
	}

	err := loader.AssignFirst("not", &values)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/a.cue",
		"testdata/b.cue",
	}, testSchema)

	var names []string
	for value, err := range loader.IterCueValues("name") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		names = append(names, s)
	}
	if str := fmt.Sprintf("%v", names); str != "[a b]" {
		t.Fatalf("got %q", str)
	}

	names = names[:0]
	for name := range All[string](loader, "name") {
		names = append(names, name)
	}
	if str := fmt.Sprintf("%v", names); str != "[a b]" {
		t.Fatalf("got %q", str)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/b.cue", "testdata/a.cue"}, testSchema)
	if name := First[string](loader, "name"); name != "b" {
		t.Fatalf("got %v", name)
	}
	if n := First[int](loader, "not"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestEmptyLoader(t *testing.T) {
	var loader Loader
	if name := First[string](loader, "name"); name != "" {
		t.Fatalf("got %v", name)
	}
	loader = NewLoader(nil, "")
	if name := First[string](loader, "name"); name != "" {
		t.Fatalf("got %v", name)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestLoaderErr(t *testing.T) {
	var loader Loader
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	loader = NewLoader([]string{"testdata/a.cue", "testdata/b.cue"}, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/missing.cue"}, "")
	var str string
	if err := loader.AssignFirst("name", &str); err == nil {
		t.Fatal("should error")
	}
}
