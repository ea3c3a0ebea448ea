package scripts

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/conslist/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// REPL reads and evaluates statements from stdin until EOF.
type REPL func(ctx context.Context, globals map[string]any)

func (Module) REPL(
	logger logs.Logger,
	output Print,
) REPL {
	return func(ctx context.Context, globals map[string]any) {
		logger.DebugContext(ctx, "repl",
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.DebugContext(ctx, "repl end")
		}()

		mappings := maps.Clone(Builtins)
		for name, value := range globals {
			mappings[name] = ToValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
			Print: func(_ *starlark.Thread, msg string) {
				output(ctx, msg)
			},
		}
		repl.REPLOptions(fileOptions, thread, mappings)
	}
}
