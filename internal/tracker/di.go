package tracker

import (
	"github.com/ninfea/babylog/internal/config"
	"github.com/ninfea/babylog/internal/eventlog"
	"github.com/ninfea/babylog/internal/metrics"
	"github.com/ninfea/babylog/internal/repository"
	"github.com/ninfea/babylog/internal/telegram"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Manager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		loc, err := cfg.Location()
		if err != nil {
			return nil, err
		}
		tc := do.MustInvoke[telegram.Client](i)
		log := do.MustInvoke[eventlog.Appender](i)
		mw := do.MustInvoke[metrics.Writer](i)
		repo := do.MustInvoke[repository.Repository](i)
		return NewManager(cfg, loc, tc, log, mw, repo), nil
	})
}
