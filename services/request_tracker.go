package services

import "sync"

// RequestState is the lifecycle of one tracked external request.
type RequestState string

const (
	RequestIdle    RequestState = "idle"
	RequestLoading RequestState = "loading"
	RequestSuccess RequestState = "success"
	RequestError   RequestState = "error"
)

// RequestStatus is the observable state for one key (one user, one control).
type RequestStatus struct {
	State  RequestState `json:"state"`
	Result string       `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type trackedRequest struct {
	tag    uint64
	status RequestStatus
}

// RequestTracker tracks the latest in-flight generative request per key.
// Begin hands out a monotonically increasing tag; a completion carrying a
// stale tag (a newer request has begun since) is dropped, so a slow response
// can never overwrite the state of the request that superseded it.
type RequestTracker struct {
	mu      sync.Mutex
	nextTag uint64
	byKey   map[string]*trackedRequest
}

func NewRequestTracker() *RequestTracker {
	return &RequestTracker{byKey: make(map[string]*trackedRequest)}
}

// Begin marks key as loading and returns the tag the eventual completion
// must present.
func (t *RequestTracker) Begin(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextTag++
	t.byKey[key] = &trackedRequest{
		tag:    t.nextTag,
		status: RequestStatus{State: RequestLoading},
	}
	return t.nextTag
}

// CompleteSuccess records a successful result. Returns false if the tag is
// stale and the result was dropped.
func (t *RequestTracker) CompleteSuccess(key string, tag uint64, result string) bool {
	return t.complete(key, tag, RequestStatus{State: RequestSuccess, Result: result})
}

// CompleteError records a failure. Returns false if the tag is stale.
func (t *RequestTracker) CompleteError(key string, tag uint64, message string) bool {
	return t.complete(key, tag, RequestStatus{State: RequestError, Error: message})
}

func (t *RequestTracker) complete(key string, tag uint64, status RequestStatus) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.byKey[key]
	if !ok || current.tag != tag {
		return false
	}
	current.status = status
	return true
}

// Status reports the current state for key; untracked keys are idle.
func (t *RequestTracker) Status(key string) RequestStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	if current, ok := t.byKey[key]; ok {
		return current.status
	}
	return RequestStatus{State: RequestIdle}
}
