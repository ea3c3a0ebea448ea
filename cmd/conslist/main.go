package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/conslist/cmds"
	"github.com/reusee/conslist/configs"
	"github.com/reusee/conslist/listconfigs"
	"github.com/reusee/conslist/logs"
	"github.com/reusee/conslist/modes"
	"github.com/reusee/conslist/sessions"
	"github.com/reusee/dscope"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes args and returns the exit code. defs override scope definitions.
func run(args []string, stderr io.Writer, defs ...any) int {
	if len(args) == 0 {
		args = []string{"demo"}
	}
	ctx := context.Background()

	// leading flags set package state read by config providers
	flags, commands := cmds.GlobalExecutor.SplitFlags(args)
	if err := cmds.Execute(flags); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	scope := dscope.New(
		new(sessions.Module),
		modes.ForProduction(),
	)
	if len(defs) > 0 {
		scope = scope.Fork(defs...)
	}

	var code int
	scope.Call(func(
		loader configs.Loader,
		newSession sessions.NewSession,
		logger logs.Logger,
	) {
		if err := loader.Err(); err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			code = 1
			return
		}

		scope.Call(func(
			level listconfigs.LogLevel,
		) {
			if err := logs.SetDefaultLevel(string(level)); err != nil {
				logger.Warn("config log level", "error", err)
			}
		})

		executor := cmds.NewExecutor()
		session := newSession(ctx)
		session.Register(executor)
		if err := executor.Execute(commands); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			code = 1
			return
		}
	})
	return code
}
