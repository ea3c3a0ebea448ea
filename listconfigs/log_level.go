package listconfigs

import (
	"github.com/reusee/conslist/configs"
	"github.com/reusee/conslist/vars"
)

type LogLevel string

type FallbackLogLevel string

func (Module) FallbackLogLevel() FallbackLogLevel {
	return "info"
}

func (Module) LogLevel(
	loader configs.Loader,
	fallback FallbackLogLevel,
) LogLevel {
	return vars.FirstNonZero(
		configs.First[LogLevel](loader, "log_level"),
		LogLevel(fallback),
	)
}
