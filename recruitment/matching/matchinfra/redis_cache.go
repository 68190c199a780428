package matchinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/recruitment/matching"
)

const DefaultTTL = 6 * time.Hour

// RedisMatchCache implements matching.Cache on Redis. Keys carry the
// candidate ID so a whole candidate can be invalidated with one scan.
type RedisMatchCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisMatchCache(client *redis.Client, prefix string, ttl time.Duration) *RedisMatchCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisMatchCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisMatchCache) key(jobID kernel.JobID, candidateID kernel.CandidateID) string {
	return fmt.Sprintf("%s:candidate:%s:job:%s", c.prefix, candidateID, jobID)
}

func (c *RedisMatchCache) Get(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (*matching.MatchResult, error) {
	data, err := c.client.Get(ctx, c.key(jobID, candidateID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("get cached match: %w", err)
	}

	var result matching.MatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached match: %w", err)
	}

	return &result, nil
}

func (c *RedisMatchCache) Set(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID, result *matching.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal match result: %w", err)
	}

	if err := c.client.Set(ctx, c.key(jobID, candidateID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache match result: %w", err)
	}
	return nil
}

// InvalidateCandidate drops every cached result for a candidate.
func (c *RedisMatchCache) InvalidateCandidate(ctx context.Context, id kernel.CandidateID) error {
	pattern := fmt.Sprintf("%s:candidate:%s:job:*", c.prefix, id)

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	pipe := c.client.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cached matches: %w", err)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidate cached matches: %w", err)
	}
	return nil
}
