package auth

import (
	"sync"
	"time"
)

const (
	maxFailedAttempts = 5
	lockoutPeriod     = 5 * time.Minute
)

// lockout считает неудачные входы по email в памяти процесса.
// Пять неудач подряд блокируют вход на пять минут.
type lockout struct {
	mu       sync.Mutex
	attempts map[string]*attemptWindow
}

type attemptWindow struct {
	count       int
	windowStart time.Time
	lockedUntil time.Time
}

func newLockout() *lockout {
	return &lockout{
		attempts: make(map[string]*attemptWindow),
	}
}

func (l *lockout) isLocked(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	window, ok := l.attempts[email]
	if !ok {
		return false
	}
	return time.Now().Before(window.lockedUntil)
}

func (l *lockout) recordFailure(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	window, ok := l.attempts[email]
	if !ok || now.Sub(window.windowStart) > lockoutPeriod {
		window = &attemptWindow{windowStart: now}
		l.attempts[email] = window
	}

	window.count++
	if window.count >= maxFailedAttempts {
		window.lockedUntil = now.Add(lockoutPeriod)
	}
}

func (l *lockout) reset(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, email)
}
