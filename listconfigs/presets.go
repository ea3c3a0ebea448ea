package listconfigs

import (
	"github.com/reusee/conslist/configs"
	"github.com/reusee/conslist/lists"
	"github.com/reusee/conslist/logs"
)

// Presets are named lists defined in config files.
type Presets map[string]lists.List

func (Module) Presets(
	loader configs.Loader,
	logger logs.Logger,
) Presets {
	ret := make(Presets)
	for defs := range configs.All[map[string][]int32](loader, "presets") {
		for name, values := range defs {
			if _, ok := ret[name]; ok {
				// defined in a file with higher precedence
				continue
			}
			ret[name] = lists.Of(values...)
		}
	}
	logger.Debug("presets", "count", len(ret))
	return ret
}
