package gamesession

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/hearthforge/tavern-api/internal/entities"
	"github.com/hearthforge/tavern-api/internal/errors"
	redisclient "github.com/hearthforge/tavern-api/internal/redis"
)

const (
	gameKeyPrefix    = "game:"
	inventorySuffix  = ":inventory"
	tavernSuffix     = ":tavern"
	slotsSuffix      = ":slots"
	playerKeyPrefix  = "player:"
	playerKeySuffix  = ":games"
	initialVersion   = 1

	// Error messages
	errAggregateNil  = "aggregate cannot be nil"
	errSessionNil    = "aggregate session cannot be nil"
	errSessionIDReq  = "session ID is required"
	errPlayerIDReq   = "player ID is required"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed session repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func gameKey(sessionID string) string {
	return gameKeyPrefix + sessionID
}

func inventoryKey(sessionID string) string {
	return gameKeyPrefix + sessionID + inventorySuffix
}

func tavernKey(sessionID string) string {
	return gameKeyPrefix + sessionID + tavernSuffix
}

func slotsKey(sessionID string) string {
	return gameKeyPrefix + sessionID + slotsSuffix
}

func playerGamesKey(playerID string) string {
	return playerKeyPrefix + playerID + playerKeySuffix
}

func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Aggregate == nil {
		return nil, errors.InvalidArgument(errAggregateNil)
	}
	if input.Aggregate.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Aggregate.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDReq)
	}
	if input.Aggregate.Session.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDReq)
	}

	sessionID := input.Aggregate.Session.ID

	exists, err := r.client.Exists(ctx, gameKey(sessionID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check session existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExists("session " + sessionID + " already exists")
	}

	agg := input.Aggregate.Clone()
	agg.Session.Version = initialVersion

	if err := r.writeAggregate(ctx, agg); err != nil {
		return nil, err
	}

	return &CreateOutput{Aggregate: agg}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDReq)
	}

	// One MGET covers all four records, so a save landing mid-read can
	// never hand back a mix of old and new state
	values, err := r.client.MGet(ctx,
		gameKey(input.SessionID),
		inventoryKey(input.SessionID),
		tavernKey(input.SessionID),
		slotsKey(input.SessionID),
	).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read session records")
	}
	if values[0] == nil {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	agg := &entities.SessionAggregate{Session: &entities.GameSession{}}
	if err := decodeRecord(values[0], agg.Session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}
	if err := decodeRecord(values[1], &agg.Inventory); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal inventory")
	}
	if err := decodeRecord(values[2], &agg.Tavern); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal tavern")
	}
	if err := decodeRecord(values[3], &agg.Capacities); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal slot capacities")
	}

	return &GetOutput{Aggregate: agg}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Aggregate == nil {
		return nil, errors.InvalidArgument(errAggregateNil)
	}
	if input.Aggregate.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Aggregate.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDReq)
	}

	sessionID := input.Aggregate.Session.ID

	storedData, err := r.client.Get(ctx, gameKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session %s not found", sessionID)
		}
		return nil, errors.Wrapf(err, "failed to read stored session")
	}

	var stored entities.GameSession
	if err := json.Unmarshal([]byte(storedData), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal stored session")
	}

	if stored.Version != input.ExpectedVersion {
		return nil, errors.Conflictf(
			"session %s version is %d, expected %d",
			sessionID, stored.Version, input.ExpectedVersion).
			WithMeta("stored_version", stored.Version).
			WithMeta("expected_version", input.ExpectedVersion)
	}

	agg := input.Aggregate.Clone()
	agg.Session.Version = input.ExpectedVersion + 1

	if err := r.writeAggregate(ctx, agg); err != nil {
		return nil, err
	}

	return &SaveOutput{NewVersion: agg.Session.Version}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDReq)
	}

	getOutput, err := r.Get(ctx, &GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx,
		gameKey(input.SessionID),
		inventoryKey(input.SessionID),
		tavernKey(input.SessionID),
		slotsKey(input.SessionID),
	)
	pipe.SRem(ctx, playerGamesKey(getOutput.Aggregate.Session.PlayerID), input.SessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayer(ctx context.Context, input *ListByPlayerInput) (*ListByPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDReq)
	}

	sessionIDs, err := r.client.SMembers(ctx, playerGamesKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list player sessions")
	}

	aggregates := make([]*entities.SessionAggregate, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		out, err := r.Get(ctx, &GetInput{SessionID: id})
		if err != nil {
			// Clean up index entries pointing at deleted sessions
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, playerGamesKey(input.PlayerID), id)
				continue
			}
			return nil, err
		}
		aggregates = append(aggregates, out.Aggregate)
	}

	return &ListByPlayerOutput{Aggregates: aggregates}, nil
}

// writeAggregate persists all four aggregate records atomically
func (r *redisRepository) writeAggregate(ctx context.Context, agg *entities.SessionAggregate) error {
	sessionID := agg.Session.ID

	sessionData, err := json.Marshal(agg.Session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}
	inventoryData, err := json.Marshal(agg.Inventory)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal inventory")
	}
	tavernData, err := json.Marshal(agg.Tavern)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal tavern")
	}
	slotsData, err := json.Marshal(agg.Capacities)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal slot capacities")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKey(sessionID), sessionData, 0)
	pipe.Set(ctx, inventoryKey(sessionID), inventoryData, 0)
	pipe.Set(ctx, tavernKey(sessionID), tavernData, 0)
	pipe.Set(ctx, slotsKey(sessionID), slotsData, 0)
	pipe.SAdd(ctx, playerGamesKey(agg.Session.PlayerID), sessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to write aggregate")
	}

	return nil
}

// decodeRecord decodes one MGET value, treating a missing key as empty
func decodeRecord(value interface{}, target interface{}) error {
	if value == nil {
		return nil
	}
	data, ok := value.(string)
	if !ok {
		return fmt.Errorf("unexpected record encoding %T", value)
	}
	return json.Unmarshal([]byte(data), target)
}
