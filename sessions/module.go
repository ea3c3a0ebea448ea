package sessions

import (
	"io"
	"os"

	"github.com/reusee/conslist/listconfigs"
	"github.com/reusee/conslist/logs"
	"github.com/reusee/conslist/scripts"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs listconfigs.Module
	Scripts scripts.Module
}

// Output receives command results.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
