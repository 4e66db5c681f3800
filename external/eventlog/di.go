package eventlog

import (
	"github.com/ninfea/babylog/internal/config"
	eventlogpkg "github.com/ninfea/babylog/internal/eventlog"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (eventlogpkg.Appender, error) {
		c := do.MustInvoke[*config.Config](i)
		loc, err := c.Location()
		if err != nil {
			return nil, err
		}
		return NewCSVAppender(c.CSVPath, loc), nil
	})
}
