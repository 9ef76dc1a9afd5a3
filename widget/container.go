package widget

import (
	"fmt"
	"sync"
)

// State 위젯의 현재 상태입니다
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText JSON 등에서 상태 이름으로 직렬화합니다
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText 상태 이름을 State 로 되돌립니다
func (s *State) UnmarshalText(text []byte) error {
	for candidate := StateIdle; candidate <= StateError; candidate++ {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown widget state %q", text)
}

// Fragment 컨테이너 하나의 내용을 통째로 교체하는 렌더링 결과입니다
type Fragment struct {
	Target  string   `json:"target"`
	HTML    string   `json:"html"`
	Classes []string `json:"classes"`
	State   State    `json:"state"`
}

// Container 프래그먼트를 받아 표시하는 대상입니다
type Container interface {
	Render(fragment Fragment) error
}

// Targets 위젯이 그리는 두 컨테이너. Pagination 은 비어 있을 수 있습니다
type Targets struct {
	Content    Container
	Pagination Container
}

// Buffer 렌더링된 프래그먼트를 메모리에 쌓아 두는 컨테이너입니다
type Buffer struct {
	mu        sync.Mutex
	fragments []Fragment
}

// NewBuffer 빈 Buffer 를 만듭니다
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Render 프래그먼트를 기록합니다
func (buffer *Buffer) Render(fragment Fragment) error {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	buffer.fragments = append(buffer.fragments, fragment)
	return nil
}

// Fragments 지금까지 기록된 프래그먼트의 복사본을 반환합니다
func (buffer *Buffer) Fragments() []Fragment {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return append([]Fragment(nil), buffer.fragments...)
}

// Last 마지막으로 기록된 프래그먼트를 반환합니다
func (buffer *Buffer) Last() (Fragment, bool) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	if len(buffer.fragments) == 0 {
		return Fragment{}, false
	}
	return buffer.fragments[len(buffer.fragments)-1], true
}

// Reset 기록을 비웁니다
func (buffer *Buffer) Reset() {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	buffer.fragments = nil
}
