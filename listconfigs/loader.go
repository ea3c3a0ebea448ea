package listconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/conslist/cmds"
	"github.com/reusee/conslist/configs"
	"github.com/reusee/conslist/logs"
)

//go:embed schema.cue
var schema string

var extraPaths = cmds.Collect[string]("-config")

func init() {
	cmds.GlobalExecutor.Define("-config.", cmds.Func(func() {
		*extraPaths = nil
	}).Desc("ignore config files given by -config"))
}

var filenames = []string{
	"conslist.cue",
	".conslist.cue",
}

// SearchDirs lists directories searched for config files, highest precedence first.
type SearchDirs []string

func (Module) SearchDirs() (ret SearchDirs) {
	if dir, err := os.Getwd(); err == nil {
		ret = append(ret, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	ret = append(ret, "/etc")
	return
}

func (Module) ConfigsLoader(
	dirs SearchDirs,
	logger logs.Logger,
) configs.Loader {
	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Debug("config files", "paths", paths)
		}
	}()

	paths = append(paths, *extraPaths...)
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
