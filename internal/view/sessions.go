package view

import (
	"sync"
	"time"

	"github.com/haierkeys/notes-app-service/pkg/metrics"
)

type sessionEntry struct {
	board      *Board
	lastAccess time.Time
}

// Sessions 按用户 ID 保存 Board
type Sessions struct {
	mu      sync.Mutex
	boards  map[int64]*sessionEntry
	factory func() *Board
	now     func() time.Time
}

// NewSessions factory 用于为新会话创建 Board
func NewSessions(factory func() *Board) *Sessions {
	return &Sessions{
		boards:  make(map[int64]*sessionEntry),
		factory: factory,
		now:     time.Now,
	}
}

// Get 返回用户的 Board，不存在时创建
func (s *Sessions) Get(uid int64) *Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.boards[uid]
	if !ok {
		entry = &sessionEntry{board: s.factory()}
		s.boards[uid] = entry
		metrics.SessionsActive.Set(float64(len(s.boards)))
	}
	entry.lastAccess = s.now()
	return entry.board
}

// Drop 丢弃用户的 Board（退出登录）
func (s *Sessions) Drop(uid int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, uid)
	metrics.SessionsActive.Set(float64(len(s.boards)))
}

// Sweep 清理超过 idle 未访问的 Board，返回清理数量
func (s *Sessions) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for uid, entry := range s.boards {
		if entry.lastAccess.Before(cutoff) {
			delete(s.boards, uid)
			removed++
		}
	}
	metrics.SessionsActive.Set(float64(len(s.boards)))
	return removed
}

// Len 当前会话数
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}
