package metrics

import (
	"context"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	metricspkg "github.com/ninfea/babylog/internal/metrics"
)

const measurementName = "baby_events"

type InfluxWriter struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	loc      *time.Location
}

func NewInfluxWriter(url, token, org, bucket string, loc *time.Location) metricspkg.Writer {
	client := influxdb2.NewClient(url, token)
	return &InfluxWriter{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		loc:      loc,
	}
}

func (w *InfluxWriter) WriteNap(ctx context.Context, m metricspkg.NapMetric) error {
	p := influxdb2.NewPoint(measurementName,
		map[string]string{
			"event_type": "Nap",
			"parent":     m.Actor,
			"user_id":    actorIDTag(m.ActorID),
		},
		map[string]interface{}{
			"start":    m.Start.In(w.loc).Format(time.RFC3339),
			"stop":     m.Stop.In(w.loc).Format(time.RFC3339),
			"duration": m.DurationSeconds,
		},
		m.Stop)
	return w.writeAPI.WritePoint(ctx, p)
}

func (w *InfluxWriter) WriteEvent(ctx context.Context, e metricspkg.EventPoint) error {
	p := influxdb2.NewPoint(measurementName,
		map[string]string{
			"event_type": e.Kind,
			"parent":     e.Actor,
			"user_id":    actorIDTag(e.ActorID),
		},
		map[string]interface{}{
			"count": 1,
		},
		e.At)
	return w.writeAPI.WritePoint(ctx, p)
}

func (w *InfluxWriter) Close() {
	w.client.Close()
}

func actorIDTag(id int64) string {
	if id == 0 {
		return "unknown"
	}
	return strconv.FormatInt(id, 10)
}
