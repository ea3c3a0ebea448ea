package listconfigs

import (
	"github.com/reusee/conslist/cmds"
	"github.com/reusee/conslist/configs"
	"github.com/reusee/conslist/vars"
)

// ScriptsDir is where relative script paths are resolved. Empty means the working directory.
type ScriptsDir string

var scriptsDirFlag = cmds.Var[ScriptsDir]("-scripts-dir")

func (Module) ScriptsDir(
	loader configs.Loader,
) ScriptsDir {
	return vars.FirstNonZero(
		*scriptsDirFlag,
		configs.First[ScriptsDir](loader, "scripts_dir"),
	)
}
