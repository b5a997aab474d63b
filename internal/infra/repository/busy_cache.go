package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/candidatehub/interview-availability/internal/domain"
)

const busyCacheKeyPrefix = "availability:busy:"

type busyRecord struct {
	Intervals []intervalRecord `json:"intervals"`
	CachedAt  time.Time        `json:"cached_at"`
}

type intervalRecord struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type busyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBusyCache wraps redis as a short-lived per-interviewer cache of provider
// busy data. A zero TTL yields a disabled cache that always misses.
func NewBusyCache(client *redis.Client, ttl time.Duration) domain.BusyCache {
	return &busyCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *busyCache) GetBusy(ctx context.Context, interviewerID int64) ([]domain.TimeInterval, bool, error) {
	if c.ttl <= 0 {
		return nil, false, nil
	}

	key := busyCacheKeyPrefix + strconv.FormatInt(interviewerID, 10)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var record busyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false, ErrInvalidCacheRecord
	}

	intervals := make([]domain.TimeInterval, 0, len(record.Intervals))
	for _, r := range record.Intervals {
		interval, err := domain.NewTimeInterval(r.Start, r.End)
		if err != nil {
			return nil, false, ErrInvalidCacheRecord
		}
		intervals = append(intervals, interval)
	}

	return intervals, true, nil
}

func (c *busyCache) SetBusy(ctx context.Context, interviewerID int64, intervals []domain.TimeInterval) error {
	if c.ttl <= 0 {
		return nil
	}

	key := busyCacheKeyPrefix + strconv.FormatInt(interviewerID, 10)

	records := make([]intervalRecord, 0, len(intervals))
	for _, interval := range intervals {
		records = append(records, intervalRecord{
			Start: interval.Start,
			End:   interval.End,
		})
	}

	data, err := json.Marshal(busyRecord{
		Intervals: records,
		CachedAt:  time.Now().UTC(),
	})
	if err != nil {
		return ErrInvalidCacheRecord
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}
