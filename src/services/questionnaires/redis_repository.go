package questionnaires

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"flashcard-rest/src/models"
)

const (
	redisKeyPrefix = "questionnaire:"
	redisIndexKey  = "questionnaires"
)

// RedisRepository stores each questionnaire as JSON under questionnaire:<id> and
// keeps the set of known ids in the questionnaires set.
type RedisRepository struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisRepository(client *redis.Client, timeout time.Duration) *RedisRepository {
	return &RedisRepository{client: client, timeout: timeout}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func (r *RedisRepository) FindByID(ctx context.Context, id string) (models.Questionnaire, bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.client.Get(ctx, redisKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return models.Questionnaire{}, false, nil
	}
	if err != nil {
		return models.Questionnaire{}, false, fmt.Errorf("get questionnaire %s: %w", id, err)
	}

	var q models.Questionnaire
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return models.Questionnaire{}, false, fmt.Errorf("decode questionnaire %s: %w", id, err)
	}
	return q, true, nil
}

func (r *RedisRepository) FindAll(ctx context.Context, sort models.SortParams) ([]models.Questionnaire, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	ids, err := r.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list questionnaire ids: %w", err)
	}
	list := make([]models.Questionnaire, 0, len(ids))
	if len(ids) == 0 {
		return list, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get questionnaires: %w", err)
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// removed between SMEMBERS and MGET
			continue
		}
		var q models.Questionnaire
		if err := json.Unmarshal([]byte(s), &q); err != nil {
			return nil, fmt.Errorf("decode questionnaire %s: %w", ids[i], err)
		}
		list = append(list, q)
	}

	sortQuestionnaires(list, sort)
	return list, nil
}

func (r *RedisRepository) Save(ctx context.Context, q models.Questionnaire) (models.Questionnaire, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	payload, err := json.Marshal(q)
	if err != nil {
		return models.Questionnaire{}, fmt.Errorf("encode questionnaire %s: %w", q.ID, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKey(q.ID), payload, 0)
		pipe.SAdd(ctx, redisIndexKey, q.ID)
		return nil
	})
	if err != nil {
		return models.Questionnaire{}, fmt.Errorf("save questionnaire %s: %w", q.ID, err)
	}
	return q, nil
}

func (r *RedisRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, redisKey(id))
		pipe.SRem(ctx, redisIndexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete questionnaire %s: %w", id, err)
	}
	return nil
}
