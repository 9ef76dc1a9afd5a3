package interfaces

// Session 한 방문자의 실시간 위젯 세션입니다
type Session interface {
	ID() string
	User() string
	Close()
}

// SessionStore 실시간 위젯 세션 저장소 인터페이스입니다
type SessionStore interface {
	Add(session Session) error
	Get(id string) (Session, bool)
	Remove(id string)
	Len() int
	CloseAll()
}
