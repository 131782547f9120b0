package store

import "sync"

// Store 持有进程内全部项目记录，顺序即展示顺序。
// 仅支持整条替换与头部插入两种写操作，没有版本校验，后写覆盖先写。
type Store struct {
	mu      sync.RWMutex
	records []Record
}

// New 以给定的初始记录构造 Store。
func New(seed []Record) *Store {
	records := make([]Record, 0, len(seed))
	for _, record := range seed {
		records = append(records, record.Clone())
	}
	return &Store{records: records}
}

// List 按当前顺序返回全部记录的副本。
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, record.Clone())
	}
	return out
}

// Len 返回记录数量。
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// FindByID 按 id 精确查找记录。
func (s *Store) FindByID(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.ID == id {
			return record.Clone(), true
		}
	}
	return Record{}, false
}

// Replace 用 updated 整条替换 id 相同的记录；找不到时静默忽略。
func (s *Store) Replace(updated Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == updated.ID {
			s.records[i] = updated.Clone()
			return
		}
	}
}

// Prepend 将新记录插入到列表头部。
func (s *Store) Prepend(record Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]Record{record.Clone()}, s.records...)
}
