// Package safe_close coordinates shutdown between long running goroutines.
package safe_close

import (
	"sync"
)

// SafeClose 负责向所有已注册的协程广播关闭信号并等待它们退出
type SafeClose struct {
	closeOnce sync.Once
	signal    chan struct{}
	wg        sync.WaitGroup

	mu  sync.Mutex
	err error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{signal: make(chan struct{})}
}

// Attach 启动 fn，fn 收到 closeSignal 后应清理资源并调用 done
// Attach runs fn on its own goroutine. fn must call done once it has finished.
func (s *SafeClose) Attach(fn func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var once sync.Once
	done := func() { once.Do(s.wg.Done) }
	go fn(done, s.signal)
}

// SendCloseSignal closes the signal channel once. The first non-nil err wins.
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	if s.err == nil && err != nil {
		s.err = err
	}
	s.mu.Unlock()

	s.closeOnce.Do(func() { close(s.signal) })
}

// CloseSignal 返回关闭信号通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.signal
}

// WaitClosed 阻塞直到所有 Attach 的协程都调用了 done
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
