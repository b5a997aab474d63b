package availabilityrecorder

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/candidatehub/interview-availability/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.AvailabilityRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "availability result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, availability result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "availability result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordComputation(ctx context.Context, record domain.AvailabilityRecord) error {
	runID := record.RequestID
	if runID == "" {
		runID = "default"
	}

	point := influxdb2.NewPoint(
		"availability_result",
		map[string]string{
			"template_id": strconv.FormatInt(record.TemplateID, 10),
			"outcome":     record.Outcome,
			"request_id":  runID,
		},
		map[string]any{
			"duration_minutes":  record.DurationMinutes,
			"participant_count": record.ParticipantCount,
			"candidate_count":   record.CandidateCount,
			"available_count":   record.AvailableCount,
			"elapsed_ms":        record.Elapsed.Milliseconds(),
			"computed_at_unix":  record.ComputedAt.Unix(),
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write availability result to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int64("template_id", record.TemplateID),
			slog.String("outcome", record.Outcome),
		)
		return err
	}

	return nil
}

func (r *influxDBRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
