package cmds

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a",
	})
	if err == nil || !strings.Contains(err.Error(), "a: expecting int argument") {
		t.Fatalf("got %v", err)
	}
}

func TestInt32Range(t *testing.T) {
	executor := NewExecutor()
	var got int32
	executor.Define("v", Func(func(i int32) {
		got = i
	}))

	if err := executor.Execute([]string{"v", "-2147483648"}); err != nil {
		t.Fatal(err)
	}
	if got != -2147483648 {
		t.Fatalf("got %v", got)
	}

	err := executor.Execute([]string{"v", "2147483648"})
	if err == nil || !strings.Contains(err.Error(), "convert 2147483648 to int32") {
		t.Fatalf("got %v", err)
	}
}

func TestSliceArg(t *testing.T) {
	executor := NewExecutor()
	var got []int32
	executor.Define("of", Func(func(values []int32) {
		got = values
	}))
	if err := executor.Execute([]string{"of", "1, 2,3"}); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprint(got); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}
	if err := executor.Execute([]string{"of", "1,x"}); err == nil {
		t.Fatal("should error")
	}
}

func TestOptionalArg(t *testing.T) {
	executor := NewExecutor()
	var got *string
	executor.Define("opt", Func(func(s *string) {
		got = s
	}))
	if err := executor.Execute([]string{"opt"}); err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal()
	}
	if err := executor.Execute([]string{"opt", "foo"}); err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != "foo" {
		t.Fatalf("got %v", got)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errFoo := errors.New("foo")
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"fail"})
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
}

func TestBadFunc(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 0 },
		func() (int, error) { return 0, nil },
	} {
		func() {
			defer func() {
				if p := recover(); p == nil {
					t.Fatalf("should panic: %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("should panic")
		}
		if !strings.Contains(fmt.Sprint(p), "duplicated command foo") {
			t.Fatalf("got %v", p)
		}
	}()
	executor.Define("bar", Func(func() {}).Alias("foo"))
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

	// sub commands are not visible before their parent
	if err := executor.Execute([]string{"bar"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestUsage(t *testing.T) {
	buf := new(bytes.Buffer)
	executor := NewExecutor()
	executor.Output = buf
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func(i int32, s *string) {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"-h, help, -help, --help\tprint this usage",
		"foo\tFOO",
		"  bar <int32> [string]\tBAR",
		"  baz\tBAZ",
		"    qux\tQUX",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in %s", expected, out)
		}
	}
}

func TestSplitFlags(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-v", Func(func() {}))
	executor.Define("-config", Func(func(path string) {}))
	executor.Define("show", Func(func() {}))
	executor.Define("group", Sub(map[string]*Command{}))

	if n, ok := executor.Arity("-config"); !ok || n != 1 {
		t.Fatalf("got %v %v", n, ok)
	}
	if n, ok := executor.Arity("group"); !ok || n != 0 {
		t.Fatalf("got %v %v", n, ok)
	}
	if _, ok := executor.Arity("nope"); ok {
		t.Fatal()
	}

	flags, rest := executor.SplitFlags([]string{"-v", "-config", "a.cue", "show", "-v"})
	if str := fmt.Sprint(flags, rest); str != "[-v -config a.cue] [show -v]" {
		t.Fatalf("got %s", str)
	}

	flags, rest = executor.SplitFlags([]string{"-unknown", "show"})
	if len(flags) != 0 || len(rest) != 2 {
		t.Fatalf("got %v %v", flags, rest)
	}

	executor.Define("!-v", Func(func() {}))
	flags, rest = executor.SplitFlags([]string{"!-v", "-v", "show"})
	if str := fmt.Sprint(flags, rest); str != "[!-v -v] [show]" {
		t.Fatalf("got %s", str)
	}

	flags, rest = executor.SplitFlags([]string{"-config"})
	if len(flags) != 1 || len(rest) != 0 {
		t.Fatalf("got %v %v", flags, rest)
	}
}
