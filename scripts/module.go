package scripts

import (
	"github.com/reusee/conslist/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
