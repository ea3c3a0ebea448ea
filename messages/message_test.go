package messages

import (
	"fmt"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	var names []string
	for _, m := range All() {
		names = append(names, fmt.Sprintf("%v", m))
	}
	if str := strings.Join(names, " "); str != "Echo Move Quit ChangeColor" {
		t.Fatalf("got %s", str)
	}
	if str := Message(42).String(); str != "Message(42)" {
		t.Fatalf("got %s", str)
	}
}

func TestParse(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Fatalf("got %v", got)
		}
	}
	_, err := Parse("Jump")
	if err == nil || !strings.Contains(err.Error(), "unknown message: Jump") {
		t.Fatalf("got %v", err)
	}
}

func TestDemo(t *testing.T) {
	if str := fmt.Sprint(Demo()); str != "[Quit Echo Move ChangeColor]" {
		t.Fatalf("got %s", str)
	}
}
