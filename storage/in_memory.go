package storage

import (
	"sync"

	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/interfaces"
	"github.com/ssugameworks/pajelingo/utils"
)

// InMemoryStorage 접속 중인 실시간 위젯 세션을 보관하는 비영구 저장소입니다
type InMemoryStorage struct {
	mu       sync.RWMutex
	sessions map[string]interfaces.Session
}

// NewInMemoryStorage 새 인메모리 저장소 생성
func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		sessions: make(map[string]interfaces.Session),
	}
}

// Add 세션 등록. 같은 ID 가 이미 있으면 오류입니다
func (s *InMemoryStorage) Add(session interfaces.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID()]; exists {
		return errors.NewValidationError("DUPLICATE_SESSION", "session "+session.ID()+" already exists", "")
	}
	s.sessions[session.ID()] = session
	utils.Debug("Session %s registered (user=%q, total=%d)", session.ID(), session.User(), len(s.sessions))
	return nil
}

// Get 세션 조회
func (s *InMemoryStorage) Get(id string) (interfaces.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Remove 세션 제거
func (s *InMemoryStorage) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len 세션 수
func (s *InMemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CloseAll 모든 세션을 닫고 비웁니다
func (s *InMemoryStorage) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]interfaces.Session)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
	if len(sessions) > 0 {
		utils.Info("Closed %d live sessions", len(sessions))
	}
}
