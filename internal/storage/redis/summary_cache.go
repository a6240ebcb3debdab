package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

const (
	keyOverall      = "summary:overall"
	keyBarangay     = "summary:barangay"
	keyMunicipality = "summary:municipality"
	keyGeneration   = "summary:generation"
)

var errStaleGeneration = errors.New("summary generation moved")

// SummaryCache stores computed roll-ups. A miss is reported as ok=false with
// a nil error so callers fall through to storage. Every write is checked
// against a generation counter bumped by Invalidate, so a roll-up computed
// before a write can never land after that write's invalidation.
type SummaryCache struct {
	client *goredis.Client
	prefix string
}

func NewSummaryCache(r *Redis, prefix string) *SummaryCache {
	return &SummaryCache{client: r.Client, prefix: prefix}
}

func (c *SummaryCache) GetOverall(ctx context.Context) (capacity.Summary, bool, error) {
	var s capacity.Summary
	ok, err := c.get(ctx, keyOverall, &s)
	return s, ok, err
}

func (c *SummaryCache) SetOverall(ctx context.Context, gen int64, s capacity.Summary, ttl time.Duration) error {
	return c.set(ctx, gen, keyOverall, s, ttl)
}

func (c *SummaryCache) GetByBarangay(ctx context.Context) (map[uuid.UUID]capacity.Summary, bool, error) {
	var m map[uuid.UUID]capacity.Summary
	ok, err := c.get(ctx, keyBarangay, &m)
	return m, ok, err
}

func (c *SummaryCache) SetByBarangay(ctx context.Context, gen int64, rollup map[uuid.UUID]capacity.Summary, ttl time.Duration) error {
	return c.set(ctx, gen, keyBarangay, rollup, ttl)
}

func (c *SummaryCache) GetByMunicipality(ctx context.Context) (map[domain.Municipality]capacity.Summary, bool, error) {
	var m map[domain.Municipality]capacity.Summary
	ok, err := c.get(ctx, keyMunicipality, &m)
	return m, ok, err
}

func (c *SummaryCache) SetByMunicipality(ctx context.Context, gen int64, rollup map[domain.Municipality]capacity.Summary, ttl time.Duration) error {
	return c.set(ctx, gen, keyMunicipality, rollup, ttl)
}

// Generation returns the current cache generation; 0 before the first Invalidate.
func (c *SummaryCache) Generation(ctx context.Context) (int64, error) {
	return readGeneration(ctx, c.client, c.key(keyGeneration))
}

// Invalidate bumps the generation and drops every cached roll-up in one transaction.
func (c *SummaryCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Incr(ctx, c.key(keyGeneration))
		p.Del(ctx, c.key(keyOverall), c.key(keyBarangay), c.key(keyMunicipality))
		return nil
	})
	return err
}

func (c *SummaryCache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

func (c *SummaryCache) get(ctx context.Context, k string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(k)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// set writes v only while the generation still equals gen. A stale or
// concurrently invalidated write is dropped without error.
func (c *SummaryCache) set(ctx context.Context, gen int64, k string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	genKey := c.key(keyGeneration)
	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		cur, err := readGeneration(ctx, tx, genKey)
		if err != nil {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(p goredis.Pipeliner) error {
			p.Set(ctx, c.key(k), b, ttl)
			return nil
		})
		return err
	}, genKey)

	if errors.Is(err, errStaleGeneration) || errors.Is(err, goredis.TxFailedErr) {
		return nil
	}
	return err
}

type getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

func readGeneration(ctx context.Context, g getter, key string) (int64, error) {
	gen, err := g.Get(ctx, key).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return gen, err
}
