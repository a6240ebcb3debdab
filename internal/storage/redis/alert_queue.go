package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, alert domain.CapacityAlert) error {
	b, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// BRPop blocks up to timeout and returns e.ErrAlertQueueEmpty when nothing arrived.
func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.CapacityAlert, error) {
	var a domain.CapacityAlert

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return a, e.ErrAlertQueueEmpty
		}
		return a, err
	}
	if len(res) < 2 {
		return a, e.ErrAlertQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &a); err != nil {
		return a, err
	}
	return a, nil
}

func (q *AlertQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
