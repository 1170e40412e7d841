package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const changeChannel = "tracker:changes"

// redisStore is the realtime key-value variant. Documents live in a
// hash per collection; a sorted set scored by first-write time keeps
// insertion order. Changes propagate over pub/sub, so every process
// (including the writer) observes its own writes the same way it
// observes everyone else's.
type redisStore struct {
	rdb    *redis.Client
	pubsub *redis.PubSub
	*notifier
}

var _ Store = (*redisStore)(nil)

func NewRedis(addr, username, password string) (Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	s := &redisStore{
		rdb:      rdb,
		pubsub:   rdb.Subscribe(context.Background(), changeChannel),
		notifier: newNotifier(),
	}
	go s.listen()

	log.Info().Str("addr", addr).Msg("connected to redis store")
	return s, nil
}

func (s *redisStore) listen() {
	for msg := range s.pubsub.Channel() {
		var c Change
		if err := json.Unmarshal([]byte(msg.Payload), &c); err != nil {
			log.Warn().Err(err).Msg("malformed change payload")
			continue
		}
		s.emit(c)
	}
}

func docKey(collection string) string { return "doc:" + collection }
func ordKey(collection string) string { return "ord:" + collection }

func (s *redisStore) LoadAll(ctx context.Context, collection string) ([]Record, error) {
	ids, err := s.rdb.ZRange(ctx, ordKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	docs, err := s.rdb.HMGet(ctx, docKey(collection), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}

	records := make([]Record, 0, len(ids))
	for i, doc := range docs {
		body, ok := doc.(string)
		if !ok {
			// ordering entry without a document; skip the orphan
			continue
		}
		records = append(records, Record{ID: ids[i], Data: []byte(body)})
	}
	return records, nil
}

func (s *redisStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	body, err := s.rdb.HGet(ctx, docKey(collection), id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return &Record{ID: id, Data: []byte(body)}, nil
}

func (s *redisStore) Put(ctx context.Context, collection, id string, data []byte) error {
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, docKey(collection), id, data)
	pipe.ZAddNX(ctx, ordKey(collection), redis.Z{
		Score:  float64(time.Now().UnixNano()),
		Member: id,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return s.publish(ctx, Change{Collection: collection, ID: id, Op: OpPut})
}

func (s *redisStore) Remove(ctx context.Context, collection, id string) error {
	pipe := s.rdb.TxPipeline()
	pipe.HDel(ctx, docKey(collection), id)
	pipe.ZRem(ctx, ordKey(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("remove %s/%s: %w", collection, id, err)
	}
	return s.publish(ctx, Change{Collection: collection, ID: id, Op: OpRemove})
}

func (s *redisStore) BatchPut(ctx context.Context, collection string, records []Record) error {
	pipe := s.rdb.TxPipeline()
	for _, r := range records {
		pipe.HSet(ctx, docKey(collection), r.ID, r.Data)
		pipe.ZAddNX(ctx, ordKey(collection), redis.Z{
			Score:  float64(time.Now().UnixNano()),
			Member: r.ID,
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("batch put %s: %w", collection, err)
	}
	for _, r := range records {
		if err := s.publish(ctx, Change{Collection: collection, ID: r.ID, Op: OpPut}); err != nil {
			return err
		}
	}
	return nil
}

func (s *redisStore) publish(ctx context.Context, c Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := s.rdb.Publish(ctx, changeChannel, payload).Err(); err != nil {
		log.Error().Err(err).Str("collection", c.Collection).Msg("failed to publish change")
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

func (s *redisStore) Subscribe(collection string, fn func(Change)) func() {
	return s.subscribe(collection, fn)
}

func (s *redisStore) Close() error {
	if err := s.pubsub.Close(); err != nil {
		log.Warn().Err(err).Msg("closing pubsub")
	}
	return s.rdb.Close()
}
