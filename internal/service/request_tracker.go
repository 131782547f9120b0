package service

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrRequestInFlight 表示同一访客在同一入口的上一次请求尚未结束。
var ErrRequestInFlight = errors.New("request already in flight")

// RequestStatus 是一次异步请求所处的阶段。
type RequestStatus string

const (
	RequestIdle      RequestStatus = "idle"
	RequestPending   RequestStatus = "pending"
	RequestSucceeded RequestStatus = "succeeded"
	RequestFailed    RequestStatus = "failed"
)

// 发起 AI 调用的入口。
const (
	SiteAnalyzePrompt   = "remix.analyze"
	SiteGeneratePreview = "remix.preview"
	SiteSummarize       = "detail.summary"
	SiteRemixCard       = "card.remix"
	SiteTrending        = "editor.trending"
	SiteArticle         = "editor.article"
	SiteMetadata        = "editor.metadata"
	SiteCover           = "editor.cover"
)

// RequestState 记录某个入口最近一次请求的状态。
type RequestState struct {
	Site      string        `json:"site"`
	Status    RequestStatus `json:"status"`
	Error     string        `json:"error,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// DefaultRequestStateTTL 是已结束请求状态的保留时长，超时后在下一次 Begin 时清理。
const DefaultRequestStateTTL = 30 * time.Minute

type requestKey struct {
	visitor string
	site    string
}

// RequestTracker 按访客与入口跟踪请求状态：Idle -> Pending -> Succeeded | Failed。
// Pending 期间的重复提交会被拒绝，请求结束后可以再次发起。
// 已结束的状态保留 ttl 后被清理，Pending 状态不会被清理。
type RequestTracker struct {
	mu        sync.Mutex
	states    map[requestKey]RequestState
	now       func() time.Time
	ttl       time.Duration
	lastSweep time.Time
}

// NewRequestTracker 构造 RequestTracker，使用 DefaultRequestStateTTL。
func NewRequestTracker() *RequestTracker {
	return NewRequestTrackerWithTTL(DefaultRequestStateTTL)
}

// NewRequestTrackerWithTTL 构造 RequestTracker。ttl <= 0 时不清理。
func NewRequestTrackerWithTTL(ttl time.Duration) *RequestTracker {
	return &RequestTracker{states: make(map[requestKey]RequestState), now: time.Now, ttl: ttl}
}

// Begin 将入口置为 Pending，并返回用于结束请求的回调。
// 回调传入 nil 表示成功，否则记录为失败；重复调用回调只有第一次生效。
func (t *RequestTracker) Begin(visitor, site string) (func(error), error) {
	key := requestKey{visitor: visitor, site: site}

	t.mu.Lock()
	now := t.now()
	t.sweepLocked(now)
	if state, ok := t.states[key]; ok && state.Status == RequestPending {
		t.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	t.states[key] = RequestState{Site: site, Status: RequestPending, UpdatedAt: now}
	t.mu.Unlock()

	var once sync.Once
	return func(err error) {
		once.Do(func() { t.finish(key, err) })
	}, nil
}

// sweepLocked 每隔 ttl 清理一次过期的已结束状态，调用方需持有锁。
func (t *RequestTracker) sweepLocked(now time.Time) {
	if t.ttl <= 0 || now.Sub(t.lastSweep) < t.ttl {
		return
	}
	t.lastSweep = now
	for key, state := range t.states {
		if state.Status != RequestPending && now.Sub(state.UpdatedAt) >= t.ttl {
			delete(t.states, key)
		}
	}
}

// Len 返回当前保存的状态条数。
func (t *RequestTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.states)
}

func (t *RequestTracker) finish(key requestKey, err error) {
	state := RequestState{Site: key.site, Status: RequestSucceeded, UpdatedAt: t.now()}
	if err != nil {
		state.Status = RequestFailed
		state.Error = err.Error()
	}

	t.mu.Lock()
	t.states[key] = state
	t.mu.Unlock()
}

// State 返回入口当前状态，从未发起过的入口为 Idle。
func (t *RequestTracker) State(visitor, site string) RequestState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if state, ok := t.states[requestKey{visitor: visitor, site: site}]; ok {
		return state
	}
	return RequestState{Site: site, Status: RequestIdle}
}

// Snapshot 返回访客所有入口的状态，按入口名排序。
func (t *RequestTracker) Snapshot(visitor string) []RequestState {
	t.mu.Lock()
	defer t.mu.Unlock()

	states := make([]RequestState, 0)
	for key, state := range t.states {
		if key.visitor == visitor {
			states = append(states, state)
		}
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Site < states[j].Site })
	return states
}
