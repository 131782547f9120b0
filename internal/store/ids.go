package store

import (
	"strconv"
	"sync"
	"time"
)

// IDSource 生成基于创建时间（毫秒）的 id。
// 同一毫秒内的多次调用会顺延，保证进程内单调且唯一。
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDSource 使用系统时钟构造 IDSource。
func NewIDSource() *IDSource {
	return &IDSource{now: time.Now}
}

// NewIDSourceWithClock 使用自定义时钟，主要用于测试。
func NewIDSourceWithClock(now func() time.Time) *IDSource {
	return &IDSource{now: now}
}

// Next 返回下一个 id。
func (s *IDSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.now().UnixMilli()
	if token <= s.last {
		token = s.last + 1
	}
	s.last = token
	return strconv.FormatInt(token, 10)
}
