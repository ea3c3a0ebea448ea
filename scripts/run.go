package scripts

import (
	"context"
	"fmt"
	"maps"
	"testing"

	"github.com/reusee/conslist/logs"
	"github.com/reusee/conslist/modes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Run executes a script and returns its globals.
// globals are converted with ToValue and predeclared alongside Builtins.
type Run func(ctx context.Context, filename string, src any, globals map[string]any) (starlark.StringDict, error)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Print receives the output of print() in scripts.
type Print func(ctx context.Context, msg string)

func (Module) Print(
	t *testing.T,
	mode modes.Mode,
	logger logs.Logger,
) Print {
	return func(ctx context.Context, msg string) {
		if mode == modes.ModeDevelopment && t != nil {
			t.Log(msg)
			return
		}
		logger.InfoContext(ctx, "script print", "msg", msg, "mode", mode)
	}
}

func (Module) Run(
	output Print,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context, filename string, src any, globals map[string]any) (ret starlark.StringDict, err error) {
		ctx, _ = newSpan(ctx, "script "+filename)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		predeclared := maps.Clone(Builtins)
		for name, value := range globals {
			predeclared[name] = ToValue(value)
		}

		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				output(ctx, msg)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		ret, err = starlark.ExecFileOptions(fileOptions, thread, filename, src, predeclared)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", filename, err)
		}
		logger.DebugContext(ctx, "script done", "globals", len(ret))
		return ret, nil
	}
}
