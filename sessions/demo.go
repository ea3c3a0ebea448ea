package sessions

import (
	"fmt"
	"io"

	"github.com/reusee/conslist/lists"
)

func Demo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "This is an empty cons list: %v\n", lists.CreateEmptyList()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "List with 1 element: %v\n", lists.From(3, lists.New())); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "This is a non-empty cons list: %v\n", lists.CreateNonEmptyList()); err != nil {
		return err
	}
	return nil
}
