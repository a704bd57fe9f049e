package auth

import (
	"sync"
	"time"
)

// Clock abstracts time retrieval so lockout logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// AttemptStore tracks failed attempts per identifier and action and locks
// the pair out once the threshold is crossed within the counting window.
type AttemptStore struct {
	mu            sync.Mutex
	entries       map[string]*attemptEntry
	maxAttempts   int
	window        time.Duration
	lockoutWindow time.Duration
	clock         Clock
}

type attemptEntry struct {
	count       int
	windowStart time.Time
	lockedUntil time.Time
}

// NewAttemptStore creates an attempt store. maxAttempts failures inside
// window lock the identifier/action pair out for lockoutWindow.
func NewAttemptStore(maxAttempts int, window, lockoutWindow time.Duration, clock Clock) *AttemptStore {
	if clock == nil {
		clock = RealClock{}
	}
	return &AttemptStore{
		entries:       make(map[string]*attemptEntry),
		maxAttempts:   maxAttempts,
		window:        window,
		lockoutWindow: lockoutWindow,
		clock:         clock,
	}
}

// Allowed reports whether the identifier may attempt the action now.
// It does not record anything.
func (s *AttemptStore) Allowed(identifier, action string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[attemptKey(identifier, action)]
	if !exists {
		return true
	}
	return !s.clock.Now().Before(entry.lockedUntil)
}

// RecordFailure registers a failed attempt and returns true if the pair is
// now locked out.
func (s *AttemptStore) RecordFailure(identifier, action string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	key := attemptKey(identifier, action)

	entry, exists := s.entries[key]
	if !exists || now.Sub(entry.windowStart) > s.window {
		entry = &attemptEntry{windowStart: now}
		s.entries[key] = entry
	}

	entry.count++
	if entry.count >= s.maxAttempts {
		entry.lockedUntil = now.Add(s.lockoutWindow)
		return true
	}
	return false
}

// RecordSuccess clears the counter for the pair. An active lockout is not
// cleared; the pair stays locked until the lockout window passes.
func (s *AttemptStore) RecordSuccess(identifier, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := attemptKey(identifier, action)
	entry, exists := s.entries[key]
	if !exists {
		return
	}
	if s.clock.Now().Before(entry.lockedUntil) {
		return
	}
	delete(s.entries, key)
}

// LockedUntil returns the lockout expiry for the pair, or the zero time if
// the pair is not locked.
func (s *AttemptStore) LockedUntil(identifier, action string) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[attemptKey(identifier, action)]
	if !exists || !s.clock.Now().Before(entry.lockedUntil) {
		return time.Time{}
	}
	return entry.lockedUntil
}

// Sweep removes expired entries. Callers run this periodically; the store
// itself spawns no goroutines.
func (s *AttemptStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for key, entry := range s.entries {
		if now.Before(entry.lockedUntil) {
			continue
		}
		if now.Sub(entry.windowStart) > s.window {
			delete(s.entries, key)
		}
	}
}

// SweepLoop runs Sweep every interval until stop is closed. Callers run it
// in its own goroutine.
func (s *AttemptStore) SweepLoop(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-stop:
			return
		}
	}
}

func attemptKey(identifier, action string) string {
	return identifier + "|" + action
}
