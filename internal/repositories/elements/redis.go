package elements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/trigger-overlay/internal/clock"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/element"
	overlayerr "github.com/KirkDiggler/trigger-overlay/internal/errors"
)

const indexKey = "elements"

// Data is the stored form of an element
type Data struct {
	Element   *element.Element `json:"element"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider clock.TimeProvider // Optional, defaults to the wall clock
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider clock.TimeProvider
}

// NewRedisRepository creates a new Redis-backed element repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = clock.Real{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: tp,
	}
}

// NewRedis creates a Redis repository using the wall clock
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func key(id string) string {
	return fmt.Sprintf("element:%s", id)
}

func (r *redisRepo) save(ctx context.Context, data *Data) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return overlayerr.Wrapf(err, "failed to marshal element %s", data.Element.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key(data.Element.ID), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, data.Element.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return overlayerr.WrapWithCode(err, overlayerr.CodeUnavailable,
			fmt.Sprintf("failed to save element %s", data.Element.ID))
	}

	return nil
}

func (r *redisRepo) load(ctx context.Context, id string) (*Data, error) {
	if id == "" {
		return nil, overlayerr.InvalidArgument("element ID cannot be empty")
	}

	jsonData, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, overlayerr.NotFoundf("element %s not found", id).
				WithMeta("element_id", id)
		}
		return nil, overlayerr.WrapWithCode(err, overlayerr.CodeUnavailable,
			fmt.Sprintf("failed to get element %s", id))
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, overlayerr.Wrapf(err, "failed to unmarshal element %s", id)
	}
	if data.Element == nil {
		return nil, overlayerr.Internalf("element %s has no body", id)
	}

	return &data, nil
}

func (r *redisRepo) Create(ctx context.Context, el *element.Element) error {
	if el == nil {
		return overlayerr.InvalidArgument("element cannot be nil")
	}
	if el.ID == "" {
		return overlayerr.InvalidArgument("element ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, key(el.ID)).Result()
	if err != nil {
		return overlayerr.WrapWithCode(err, overlayerr.CodeUnavailable, "failed to check element")
	}
	if exists > 0 {
		return overlayerr.AlreadyExistsf("element %s already exists", el.ID).
			WithMeta("element_id", el.ID)
	}

	now := r.timeProvider.Now()
	return r.save(ctx, &Data{Element: el, CreatedAt: now, UpdatedAt: now})
}

func (r *redisRepo) Get(ctx context.Context, id string) (*element.Element, error) {
	data, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return data.Element, nil
}

func (r *redisRepo) Update(ctx context.Context, el *element.Element) error {
	if el == nil {
		return overlayerr.InvalidArgument("element cannot be nil")
	}

	existing, err := r.load(ctx, el.ID)
	if err != nil {
		return err
	}

	return r.save(ctx, &Data{
		Element:   el,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: r.timeProvider.Now(),
	})
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return overlayerr.InvalidArgument("element ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, key(id))
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return overlayerr.WrapWithCode(err, overlayerr.CodeUnavailable,
			fmt.Sprintf("failed to delete element %s", id))
	}

	if del.Val() == 0 {
		return overlayerr.NotFoundf("element %s not found", id).
			WithMeta("element_id", id)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*element.Element, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, overlayerr.WrapWithCode(err, overlayerr.CodeUnavailable, "failed to list elements")
	}

	out := make([]*element.Element, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			el, err := r.Get(ctx, id)
			if err != nil {
				return overlayerr.Wrapf(err, "failed to get element %s", id)
			}
			out[i] = el
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
