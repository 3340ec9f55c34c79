package cache

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

//go:embed lua/claim_revision.lua
var claimRevisionLua string

var claimRevision = redis.NewScript(claimRevisionLua)

// RedisRevisions shares the newest preview revision between server
// instances. Keys expire after ttl of inactivity.
type RedisRevisions struct {
	cmd redis.Cmdable
	ttl time.Duration
}

func NewRedisRevisions(cmd redis.Cmdable, ttl time.Duration) *RedisRevisions {
	return &RedisRevisions{cmd: cmd, ttl: ttl}
}

func (r *RedisRevisions) Claim(ctx context.Context, resumeID uuid.UUID, rev int64) (bool, error) {
	res, err := claimRevision.Run(ctx, r.cmd, []string{r.key(resumeID)}, rev, r.ttl.Milliseconds()).Int()
	if err != nil {
		return false, errors.Wrap(err, "claim revision")
	}
	return res == 1, nil
}

func (r *RedisRevisions) IsLatest(ctx context.Context, resumeID uuid.UUID, rev int64) (bool, error) {
	val, err := r.cmd.Get(ctx, r.key(resumeID)).Result()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "get revision")
	}
	cur, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, errors.Wrapf(err, "parse revision %q", val)
	}
	return rev >= cur, nil
}

func (r *RedisRevisions) key(id uuid.UUID) string {
	return fmt.Sprintf("resume:preview:rev:%s", id)
}
