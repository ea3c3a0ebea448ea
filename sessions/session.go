package sessions

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/reusee/conslist/cmds"
	"github.com/reusee/conslist/configs"
	"github.com/reusee/conslist/listconfigs"
	"github.com/reusee/conslist/lists"
	"github.com/reusee/conslist/logs"
	"github.com/reusee/conslist/messages"
	"github.com/reusee/conslist/modes"
	"github.com/reusee/conslist/scripts"
	"github.com/reusee/dscope"
)

var (
	ErrNoSuccessor    = errors.New("no successor")
	ErrPresetNotFound = errors.New("preset not found")
)

// print the binding after every change
var echo = cmds.Switch("-echo")

// Session holds one list binding that commands operate on.
type Session struct {
	ctx     context.Context
	list    lists.List
	output  Output
	logger  logs.Logger
	newSpan logs.NewSpan

	// resolved on first use, after flags are applied
	Loader     dscope.Inject[configs.Loader]
	Presets    dscope.Inject[listconfigs.Presets]
	ScriptsDir dscope.Inject[listconfigs.ScriptsDir]
	Run        dscope.Inject[scripts.Run]
	REPL       dscope.Inject[scripts.REPL]
}

type NewSession func(ctx context.Context) *Session

func (Module) NewSession(
	output Output,
	logger logs.Logger,
	newSpan logs.NewSpan,
	mode modes.Mode,
	inject dscope.InjectStruct,
) NewSession {
	return func(ctx context.Context) *Session {
		ctx, _ = newSpan(ctx, "session")
		logger.DebugContext(ctx, "new session", "mode", mode)
		ret := &Session{
			ctx:     ctx,
			output:  output,
			logger:  logger,
			newSpan: newSpan,
		}
		inject(ret)
		return ret
	}
}

func (s *Session) List() lists.List {
	return s.list.Clone()
}

func (s *Session) Register(executor *cmds.Executor) {
	define := func(name string, fn any, desc string) {
		executor.Define(name, cmds.Func(fn).Desc(desc))
	}

	define("new", func() {
		s.set("new", lists.New())
	}, "start an empty list")

	define("from", func(value int32) {
		s.set("from", lists.From(value, s.list))
	}, "wrap the list in a new head")

	define("prepend", func(value int32) {
		s.list.Prepend(value)
		s.log("prepend")
	}, "prepend a value to the list")

	define("of", func(values []int32) {
		s.set("of", lists.Of(values...))
	}, "replace the list with comma separated values")

	define("next", func() error {
		next := s.list.Next()
		if next == nil {
			return logs.WrapSpan(s.ctx, ErrNoSuccessor)
		}
		s.set("next", *next)
		return nil
	}, "advance to the successor list")

	define("show", func() error {
		_, err := fmt.Fprintln(s.output, s.list)
		return err
	}, "print the list")

	define("tail", func() error {
		_, err := fmt.Fprintln(s.output, lists.Describe(s.list.Tail()))
		return err
	}, "print the terminal node of the list")

	define("len", func() error {
		_, err := fmt.Fprintln(s.output, s.list.Len())
		return err
	}, "print the length of the list")

	define("preset", func(name string) error {
		l, ok := s.Presets()[name]
		if !ok {
			return logs.WrapSpan(s.ctx, fmt.Errorf("%s: %w", name, ErrPresetNotFound))
		}
		s.set("preset", l.Clone())
		return nil
	}, "replace the list with a configured preset")

	define("script", func(path string) error {
		if dir := s.ScriptsDir(); dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(string(dir), path)
		}
		return s.Script(path, nil)
	}, "run a starlark file; a global named result replaces the list")

	define("repl", func() {
		ctx, _ := s.newSpan(s.ctx, "repl")
		s.REPL()(ctx, map[string]any{
			"current": s.list,
		})
	}, "inspect the list in an interactive starlark session")

	define("demo", func() error {
		return Demo(s.output)
	}, "print the cons list demonstration")

	define("messages", func(tag *string) error {
		ms := messages.Demo()
		if tag != nil {
			m, err := messages.Parse(*tag)
			if err != nil {
				return err
			}
			ms = []messages.Message{m}
		}
		for _, m := range ms {
			if _, err := fmt.Fprintf(s.output, "%v\n", m); err != nil {
				return err
			}
		}
		return nil
	}, "print the message enum demonstration, or the message named by tag")

	executor.Define("config", cmds.Sub(map[string]*cmds.Command{

		"paths": cmds.Func(func() error {
			for _, path := range s.Loader().Paths() {
				if _, err := fmt.Fprintln(s.output, path); err != nil {
					return err
				}
			}
			return nil
		}).Desc("print loaded config files, highest precedence first"),

		"presets": cmds.Func(func() error {
			presets := s.Presets()
			for _, name := range slices.Sorted(maps.Keys(presets)) {
				if _, err := fmt.Fprintf(s.output, "%s: %v\n", name, presets[name]); err != nil {
					return err
				}
			}
			return nil
		}).Desc("print configured presets"),
	}).Desc("inspect configuration"))
}

// Script runs a starlark file with the list bound to the global current.
// src is passed to the interpreter; nil reads path.
func (s *Session) Script(path string, src any) error {
	ctx, _ := s.newSpan(s.ctx, "script")
	globals, err := s.Run()(ctx, path, src, map[string]any{
		"current": s.list,
	})
	if err != nil {
		return err
	}
	result, ok := globals["result"]
	if !ok {
		return nil
	}
	l, err := scripts.FromValue(result)
	if err != nil {
		return logs.WrapSpan(ctx, fmt.Errorf("script result: %w", err))
	}
	s.set("script", l)
	return nil
}

func (s *Session) set(op string, l lists.List) {
	s.list = l
	s.log(op)
}

func (s *Session) log(op string) {
	ctx, _ := s.newSpan(s.ctx, op)
	s.logger.DebugContext(ctx, "list operation",
		"op", op,
		"len", s.list.Len(),
	)
	if *echo {
		fmt.Fprintln(s.output, s.list)
	}
}
