package logs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/reusee/conslist/cmds"
)

var (
	level       = new(slog.LevelVar)
	levelPinned bool
)

func init() {
	for _, name := range []string{"debug", "info", "warn", "error"} {
		cmds.Define("-log-"+name, cmds.Func(func() {
			if err := SetLevel(name); err != nil {
				panic(err)
			}
			levelPinned = true
		}).Desc("set log level to "+name))
	}
}

func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %s", name)
}

func SetLevel(name string) error {
	l, err := ParseLevel(name)
	if err != nil {
		return err
	}
	level.Set(l)
	return nil
}

// SetDefaultLevel sets the level unless a -log-* flag already did.
func SetDefaultLevel(name string) error {
	if levelPinned || name == "" {
		return nil
	}
	return SetLevel(name)
}
