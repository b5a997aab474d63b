package freebusy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/candidatehub/interview-availability/internal/domain"
	"github.com/candidatehub/interview-availability/internal/observability/logging"
	"github.com/candidatehub/interview-availability/internal/observability/tracing"
)

const fetchConcurrency = 8

// Client talks to the external free/busy provider. One request is issued per
// interviewer; requests fan out concurrently and join before returning, and
// any single failure fails the whole batch.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) BusyIntervals(ctx context.Context, interviewerIDs []int64) (map[int64][]domain.TimeInterval, error) {
	busy := make(map[int64][]domain.TimeInterval, len(interviewerIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for _, id := range interviewerIDs {
		g.Go(func() error {
			intervals, err := c.fetchOne(gctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			busy[id] = intervals
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return busy, nil
}

func (c *Client) fetchOne(ctx context.Context, interviewerID int64) ([]domain.TimeInterval, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", domain.ErrProviderUnavailable)
	}
	u.Path = fmt.Sprintf("/api/v1/interviewers/%d/freebusy", interviewerID)

	slog.DebugContext(ctx, "fetching busy intervals",
		slog.Int64("interviewer_id", interviewerID),
		slog.String("url", u.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", domain.ErrProviderUnavailable)
	}

	req.Header.Set("Accept", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)

	callCtx, span := tracing.StartProviderCallSpan(ctx, u.String())
	defer span.End()
	tracing.InjectToHTTPRequest(callCtx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		tracing.RecordProviderCallResult(span, 0, err)
		slog.ErrorContext(ctx, "free/busy request failed",
			slog.Int64("interviewer_id", interviewerID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("interviewer %d: %w", interviewerID, domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		tracing.RecordProviderCallResult(span, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode))
		slog.ErrorContext(ctx, "unexpected status from free/busy provider",
			slog.Int64("interviewer_id", interviewerID),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("interviewer %d: status %d: %w", interviewerID, resp.StatusCode, domain.ErrProviderUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.RecordProviderCallResult(span, resp.StatusCode, err)
		return nil, fmt.Errorf("interviewer %d: read body: %w", interviewerID, domain.ErrProviderUnavailable)
	}

	var payload interviewerBusyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		tracing.RecordProviderCallResult(span, resp.StatusCode, err)
		return nil, fmt.Errorf("interviewer %d: decode response: %w", interviewerID, domain.ErrMalformedBusyData)
	}

	intervals, err := parseBusyIntervals(payload.Busy)
	if err != nil {
		tracing.RecordProviderCallResult(span, resp.StatusCode, err)
		return nil, fmt.Errorf("interviewer %d: %w", interviewerID, err)
	}

	tracing.RecordProviderCallResult(span, resp.StatusCode, nil)

	slog.DebugContext(ctx, "fetched busy intervals",
		slog.Int64("interviewer_id", interviewerID),
		slog.Int("count", len(intervals)),
	)

	return intervals, nil
}

// parseBusyIntervals converts provider payloads to validated intervals sorted
// ascending by (start, end). Timestamps must carry an explicit offset;
// RFC 3339 parsing rejects naive timestamps outright.
func parseBusyIntervals(payloads []busyIntervalPayload) ([]domain.TimeInterval, error) {
	intervals := make([]domain.TimeInterval, 0, len(payloads))
	for _, p := range payloads {
		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("busy start %q: %w", p.Start, domain.ErrMalformedBusyData)
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("busy end %q: %w", p.End, domain.ErrMalformedBusyData)
		}

		interval, err := domain.NewTimeInterval(start, end)
		if err != nil {
			return nil, fmt.Errorf("busy interval %q-%q: %w", p.Start, p.End, domain.ErrMalformedBusyData)
		}
		intervals = append(intervals, interval)
	}

	domain.SortIntervals(intervals)
	return intervals, nil
}
