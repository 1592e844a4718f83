package draft

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"amerex/internal/entities"
	"amerex/internal/service/wizard"
)

// Storage - черновики живут в памяти процесса до подтверждения оплаты,
// протухшие записи убирает фоновая задача.
type Storage struct {
	ttl time.Duration

	mu     sync.RWMutex
	drafts map[string]record
}

type record struct {
	draft     entities.Draft
	expiresAt time.Time
}

func New(ttl time.Duration) *Storage {
	return &Storage{
		ttl:    ttl,
		drafts: make(map[string]record),
	}
}

func (s *Storage) Create(ctx context.Context, draft *entities.Draft) (string, error) {
	id, err := newDraftID()
	if err != nil {
		return "", fmt.Errorf("generate draft id: %w", err)
	}

	now := time.Now()
	stored := *draft
	stored.ID = id
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = record{
		draft:     stored,
		expiresAt: now.Add(s.ttl),
	}

	return id, nil
}

func (s *Storage) Get(ctx context.Context, id string) (*entities.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.drafts[id]
	if !ok || time.Now().After(rec.expiresAt) {
		return nil, wizard.ErrDraftNotFound
	}

	draft := rec.draft
	return &draft, nil
}

func (s *Storage) Update(ctx context.Context, draft *entities.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.drafts[draft.ID]
	if !ok || time.Now().After(rec.expiresAt) {
		return wizard.ErrDraftNotFound
	}

	stored := *draft
	stored.UpdatedAt = time.Now()
	rec.draft = stored
	s.drafts[draft.ID] = rec

	return nil
}

func (s *Storage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return wizard.ErrDraftNotFound
	}
	delete(s.drafts, id)

	return nil
}

// DeleteExpired удаляет протухшие черновики, возвращает их количество.
func (s *Storage) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var removed int64
	for id, rec := range s.drafts {
		if now.After(rec.expiresAt) {
			delete(s.drafts, id)
			removed++
		}
	}

	return removed, nil
}

func newDraftID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
