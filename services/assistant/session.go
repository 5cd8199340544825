package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"mediconnect/models"
	"mediconnect/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists assistant conversations between messages. Sessions
// expire after a period of inactivity.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.AssistantSession, error)
	Save(ctx context.Context, session *models.AssistantSession) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions as JSON blobs in the shared cache. Every
// save refreshes the TTL, so active conversations never expire mid-flow.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func sessionKey(id string) string {
	return utils.AssistantSessionPrefix + id
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.AssistantSession, error) {
	raw, err := s.Client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assistant session: %w", err)
	}
	var session models.AssistantSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode assistant session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.AssistantSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode assistant session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.ID), raw, utils.AssistantSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store assistant session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, sessionKey(id)).Err()
}

// MemorySessionStore backs the in-memory storage driver, where no Redis is
// assumed. Sessions live until process exit.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.AssistantSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.AssistantSession)}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*models.AssistantSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := session
	return &clone, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.AssistantSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
