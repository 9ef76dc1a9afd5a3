package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/utils"
	"github.com/ssugameworks/pajelingo/widget"
)

// 실시간 세션 메시지의 action 값
const (
	ActionLoad     = "load"
	ActionLanguage = "language"
	ActionPage     = "page"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ClientMessage 브라우저가 보내는 위젯 조작 요청
type ClientMessage struct {
	Action   string `json:"action"`
	Widget   string `json:"widget"`
	Language string `json:"language"`
	Page     int    `json:"page"`
}

// ServerMessage 컨테이너 하나를 교체하라는 지시 또는 오류
type ServerMessage struct {
	Widget  string       `json:"widget,omitempty"`
	Target  string       `json:"target,omitempty"`
	HTML    string       `json:"html"`
	Classes []string     `json:"classes,omitempty"`
	State   widget.State `json:"state"`
	Error   string       `json:"error,omitempty"`
}

// liveSession 웹소켓 연결 하나와 그 연결이 소유한 위젯들
type liveSession struct {
	id     string
	user   string
	conn   *websocket.Conn
	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc

	server *Server

	mu      sync.Mutex
	widgets map[string]*widget.Widget

	closeOnce sync.Once
}

func (session *liveSession) ID() string   { return session.id }
func (session *liveSession) User() string { return session.user }

// Close 진행 중인 위젯 요청을 취소하고 연결을 닫습니다
func (session *liveSession) Close() {
	session.closeOnce.Do(func() {
		session.cancel()

		session.mu.Lock()
		for _, instance := range session.widgets {
			instance.Cancel()
		}
		session.mu.Unlock()

		_ = session.conn.Close()
	})
}

// sessionTarget 프래그먼트를 웹소켓 메시지로 보내는 컨테이너
type sessionTarget struct {
	session *liveSession
	widget  string
}

func (target sessionTarget) Render(fragment widget.Fragment) error {
	return target.session.enqueue(ServerMessage{
		Widget:  target.widget,
		Target:  fragment.Target,
		HTML:    fragment.HTML,
		Classes: fragment.Classes,
		State:   fragment.State,
	})
}

// handleLive GET /ws
func (server *Server) handleLive(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		utils.Warn("WebSocket upgrade failed: %v", err)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	session := &liveSession{
		id:      uuid.NewString(),
		user:    currentUser(c),
		conn:    conn,
		send:    make(chan []byte, constants.WSSendBufferSize),
		ctx:     ctx,
		cancel:  cancel,
		server:  server,
		widgets: make(map[string]*widget.Widget),
	}

	if server.deps.Sessions != nil {
		if err := server.deps.Sessions.Add(session); err != nil {
			utils.Error("Failed to register live session: %v", err)
			session.Close()
			return nil
		}
	}

	utils.Info("Live session %s opened (user=%q)", session.id, session.user)
	go session.writer()
	session.reader()
	return nil
}

func (session *liveSession) reader() {
	defer func() {
		if session.server.deps.Sessions != nil {
			session.server.deps.Sessions.Remove(session.id)
		}
		session.Close()
		utils.Info("Live session %s closed", session.id)
	}()

	session.conn.SetReadLimit(constants.WSReadLimit)

	for {
		_, data, err := session.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				utils.Warn("Live session %s read error: %v", session.id, err)
			}
			return
		}

		var message ClientMessage
		if err := json.Unmarshal(data, &message); err != nil {
			utils.Debug("Live session %s sent malformed message: %v", session.id, err)
			session.sendError("Malformed message.")
			continue
		}
		session.dispatch(message)
	}
}

func (session *liveSession) writer() {
	defer session.Close()

	for {
		select {
		case data := <-session.send:
			_ = session.conn.SetWriteDeadline(time.Now().Add(constants.WSWriteTimeout))
			if err := session.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				utils.Debug("Live session %s write failed: %v", session.id, err)
				return
			}
		case <-session.ctx.Done():
			_ = session.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(constants.WSWriteTimeout))
			return
		}
	}
}

// enqueue 메시지를 전송 큐에 넣습니다. 세션이 닫히면 오류를 반환합니다
func (session *liveSession) enqueue(message ServerMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	select {
	case session.send <- data:
		return nil
	case <-session.ctx.Done():
		return session.ctx.Err()
	}
}

func (session *liveSession) sendError(message string) {
	if err := session.enqueue(ServerMessage{Error: message, State: widget.StateError}); err != nil {
		utils.Debug("Live session %s dropped error message: %v", session.id, err)
	}
}

func userMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.GetUserMessage()
	}
	return constants.UserMsgSystem
}

// widgetFor 세션이 소유한 위젯을 찾거나 처음 요청된 언어로 새로 만듭니다
func (session *liveSession) widgetFor(name, language string) (*widget.Widget, bool) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if instance, ok := session.widgets[name]; ok {
		return instance, true
	}

	options, ok := widget.OptionsFor(name, session.server.deps.MinLoading)
	if !ok {
		return nil, false
	}
	options.Observer = session.server.deps.Observer

	target := sessionTarget{session: session, widget: name}
	instance := widget.New(session.server.deps.Client, options,
		widget.Targets{Content: target, Pagination: target}, session.user, language)
	session.widgets[name] = instance
	return instance, true
}

// dispatch 요청마다 고루틴을 띄워 나중 요청이 앞선 요청을 취소할 수 있게 합니다
func (session *liveSession) dispatch(message ClientMessage) {
	instance, ok := session.widgetFor(message.Widget, message.Language)
	if !ok {
		session.sendError("Unknown widget.")
		return
	}

	var trigger func(ctx context.Context) (widget.State, error)
	switch message.Action {
	case ActionLoad:
		trigger = instance.Load
	case ActionLanguage:
		trigger = func(ctx context.Context) (widget.State, error) {
			return instance.SelectLanguage(ctx, message.Language)
		}
	case ActionPage:
		trigger = func(ctx context.Context) (widget.State, error) {
			return instance.GoToPage(ctx, message.Page)
		}
	default:
		session.sendError("Unknown action.")
		return
	}

	go func() {
		state, err := trigger(session.ctx)
		switch {
		case err == nil:
		case stderrors.Is(err, widget.ErrSuperseded), stderrors.Is(err, context.Canceled):
			utils.Debug("Live session %s: %s %s superseded", session.id, message.Widget, message.Action)
		default:
			utils.Warn("Live session %s: %s %s failed (%s): %v", session.id, message.Widget, message.Action, state, err)
			session.sendError(userMessage(err))
		}
	}()
}
