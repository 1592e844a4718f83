package cooldown

import (
	"sync"
	"time"
)

// Keeper хранит момент последнего действия по ключу и отклоняет повтор,
// пока не истёк интервал. Ключ - e-mail, id пользователя или адрес клиента.
type Keeper struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last map[string]time.Time
}

func New(interval time.Duration) *Keeper {
	return &Keeper{
		interval: interval,
		now:      time.Now,
		last:     make(map[string]time.Time),
	}
}

// Allow возвращает true и запоминает момент, если интервал по ключу истёк.
func (k *Keeper) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if last, ok := k.last[key]; ok && now.Sub(last) < k.interval {
		return false
	}

	k.last[key] = now
	return true
}

// Remaining возвращает сколько осталось ждать по ключу, ноль если можно сразу.
func (k *Keeper) Remaining(key string) time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()

	last, ok := k.last[key]
	if !ok {
		return 0
	}

	left := k.interval - k.now().Sub(last)
	if left < 0 {
		return 0
	}
	return left
}

// Sweep удаляет устаревшие ключи, вызывается фоновой задачей.
func (k *Keeper) Sweep() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	removed := 0
	for key, last := range k.last {
		if now.Sub(last) >= k.interval {
			delete(k.last, key)
			removed++
		}
	}
	return removed
}
