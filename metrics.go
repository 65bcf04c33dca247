package main

import (
	"sync"

	"go.uber.org/zap"
)

type Stats struct {
	sent   int64
	failed int64
	bytes  int64
	mu     sync.RWMutex
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) RecordSent(bytes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent++
	s.bytes += int64(bytes)
}

func (s *Stats) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed++
}

func (s *Stats) Snapshot() (sent, failed, bytes int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sent, s.failed, s.bytes
}

func (s *Stats) Log(logger *Logger) {
	sent, failed, bytes := s.Snapshot()
	logger.Debug("Delivery stats",
		zap.Int64("messages_sent", sent),
		zap.Int64("errors", failed),
		zap.Int64("bytes_sent", bytes),
	)
}
