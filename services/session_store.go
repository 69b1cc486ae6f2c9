package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"hikebook/metrics"
	"hikebook/models"
	"hikebook/services/logger"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// SessionStore lưu trạng thái session phía server. Get trả về (nil, nil)
// khi session không tồn tại hoặc đã hết hạn.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, sess *models.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

func sessionKey(id string) string {
	return "session:" + id
}

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	if s.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	val, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal(val, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if sess.Expired(time.Now()) {
		return nil, nil
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	if s.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemorySessionStore giữ session đã encode trong sync.Map, mỗi request
// nhận một bản copy riêng
type MemorySessionStore struct {
	entries sync.Map
	now     func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{now: time.Now}
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	val, ok := s.entries.Load(id)
	if !ok {
		return nil, nil
	}
	entry := val.(memoryEntry)
	if s.now().After(entry.expiresAt) {
		s.entries.Delete(id)
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(entry.data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	s.entries.Store(sess.ID, memoryEntry{data: data, expiresAt: s.now().Add(ttl)})
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.entries.Delete(id)
	return nil
}

// Sweep xóa các session đã hết hạn, trả về số lượng đã xóa
func (s *MemorySessionStore) Sweep() int {
	now := s.now()
	removed := 0
	s.entries.Range(func(key, val any) bool {
		if now.After(val.(memoryEntry).expiresAt) {
			s.entries.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// FailoverSessionStore dùng Redis làm chính, lỗi thì chuyển sang memory
// và thử lại Redis sau recoverAfter
type FailoverSessionStore struct {
	primary      SessionStore
	fallback     SessionStore
	log          logger.Logger
	recoverAfter time.Duration
	isDown       atomic.Bool
	lastCheck    atomic.Int64
}

func NewFailoverSessionStore(primary, fallback SessionStore, log logger.Logger) *FailoverSessionStore {
	return &FailoverSessionStore{
		primary:      primary,
		fallback:     fallback,
		log:          log,
		recoverAfter: time.Minute,
	}
}

func (s *FailoverSessionStore) markDown(err error) {
	if !s.isDown.Swap(true) {
		metrics.IncSessionFailover()
	}
	s.lastCheck.Store(time.Now().UnixNano())
	s.log.Error("Session store chính lỗi, chuyển sang memory: %v", err)
}

func (s *FailoverSessionStore) shouldRetry() bool {
	last := time.Unix(0, s.lastCheck.Load())
	return time.Since(last) > s.recoverAfter
}

// Down cho biết store đang dùng fallback
func (s *FailoverSessionStore) Down() bool {
	return s.isDown.Load()
}

func (s *FailoverSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	if !s.isDown.Load() {
		sess, err := s.primary.Get(ctx, id)
		if err == nil {
			return sess, nil
		}
		s.markDown(err)
	} else if s.shouldRetry() {
		sess, err := s.primary.Get(ctx, id)
		if err == nil {
			s.isDown.Store(false)
			s.log.Info("Session store chính đã hoạt động lại")
			if sess != nil {
				return sess, nil
			}
			return s.fallback.Get(ctx, id)
		}
		s.lastCheck.Store(time.Now().UnixNano())
	}

	return s.fallback.Get(ctx, id)
}

func (s *FailoverSessionStore) Save(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	if !s.isDown.Load() {
		err := s.primary.Save(ctx, sess, ttl)
		if err == nil {
			return nil
		}
		s.markDown(err)
	}
	return s.fallback.Save(ctx, sess, ttl)
}

func (s *FailoverSessionStore) Delete(ctx context.Context, id string) error {
	// xóa cả hai phía để session không sống lại sau khi Redis phục hồi
	_ = s.fallback.Delete(ctx, id)
	if !s.isDown.Load() {
		err := s.primary.Delete(ctx, id)
		if err == nil {
			return nil
		}
		s.markDown(err)
	}
	return nil
}
