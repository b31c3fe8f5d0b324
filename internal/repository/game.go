package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

const (
	gameKeyPrefix = "game:"
	finishedKey   = "games:finished"
)

// GameRepository archives finished games. The newest game comes first in listings.
type GameRepository interface {
	Save(ctx context.Context, record entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	ListFinished(ctx context.Context, limit int64) ([]entity.GameRecord, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

// Save - stores the record under game:<id> and pushes the id onto the finished list in one transaction.
func (that *dbGame) Save(ctx context.Context, record entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKeyPrefix+record.ID, recordJSON, 0)
		pipe.LRem(ctx, finishedKey, 0, record.ID)
		pipe.LPush(ctx, finishedKey, record.ID)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.GameRecord{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &record, nil
}

// ListFinished returns up to limit archived games, newest first. Ids whose record is gone are skipped.
func (that *dbGame) ListFinished(ctx context.Context, limit int64) ([]entity.GameRecord, error) {
	if limit <= 0 {
		return []entity.GameRecord{}, nil
	}

	ids, err := that.client.LRange(ctx, finishedKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list finished games: %w", err)
	}

	records := make([]entity.GameRecord, 0, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, gameKeyPrefix+id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get finished games: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record entity.GameRecord
		if err = json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", ids[i], err)
		}

		records = append(records, record)
	}

	return records, nil
}
