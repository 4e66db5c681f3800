package metrics

import (
	"log/slog"

	"github.com/ninfea/babylog/internal/config"
	metricspkg "github.com/ninfea/babylog/internal/metrics"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (metricspkg.Writer, error) {
		c := do.MustInvoke[*config.Config](i)
		if !c.InfluxEnabled() {
			slog.Info("metrics sink not configured; nap metrics disabled")
			return NewNoopWriter(), nil
		}
		loc, err := c.Location()
		if err != nil {
			return nil, err
		}
		slog.Info("metrics sink enabled", "url", c.InfluxURL, "bucket", c.InfluxBucket)
		return NewInfluxWriter(c.InfluxURL, c.InfluxToken, c.InfluxOrg, c.InfluxBucket, loc), nil
	})
}
