package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ssugameworks/pajelingo/auth"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/health"
	"github.com/ssugameworks/pajelingo/interfaces"
	"github.com/ssugameworks/pajelingo/utils"
	"github.com/ssugameworks/pajelingo/validation"
	"github.com/ssugameworks/pajelingo/widget"
)

const userContextKey = "user"

// Dependencies 서버가 사용하는 구성 요소 묶음
type Dependencies struct {
	Client     interfaces.APIClient
	Auth       *auth.Resolver
	Forms      *validation.Registry
	Sessions   interfaces.SessionStore
	Health     *health.Handler
	MinLoading time.Duration // 실시간 세션의 최소 로딩 노출 시간
	Observer   widget.Observer
}

// Server echo 기반 HTTP 서버
type Server struct {
	echo *echo.Echo
	deps Dependencies
}

// New 라우트를 등록한 서버를 만듭니다
func New(deps Dependencies) *Server {
	if deps.Forms == nil {
		deps.Forms = validation.NewRegistry()
	}
	if deps.Auth == nil {
		deps.Auth = auth.NewResolver("", "")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handleError
	e.Use(middleware.Recover())
	e.Use(resolveUser(deps.Auth))

	server := &Server{echo: e, deps: deps}

	if deps.Health != nil {
		e.GET("/health", deps.Health.Handle)
	}
	e.GET("/widgets/:widget", server.handleWidget)
	e.POST("/forms/:form/validate", server.handleValidate)
	e.GET("/ws", server.handleLive)

	return server
}

// ServeHTTP 테스트와 외부 서버에서 사용할 수 있도록 http.Handler 를 만족합니다
func (server *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	server.echo.ServeHTTP(w, r)
}

// Start 주소에서 요청을 받기 시작합니다. 정상 종료 시 nil 을 반환합니다
func (server *Server) Start(addr string) error {
	utils.Info("HTTP server listening on %s", addr)
	if err := server.echo.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 실시간 세션을 닫고 서버를 멈춥니다
func (server *Server) Shutdown(ctx context.Context) error {
	if server.deps.Sessions != nil {
		server.deps.Sessions.CloseAll()
	}
	return server.echo.Shutdown(ctx)
}

func resolveUser(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(userContextKey, resolver.UserFromRequest(c.Request()))
			return next(c)
		}
	}
}

func currentUser(c echo.Context) string {
	user, _ := c.Get(userContextKey).(string)
	return user
}

// errorResponse 오류 응답 본문
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// handleError AppError 종류에 맞는 상태 코드로 응답합니다
func handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		if message == "" {
			message = http.StatusText(httpErr.Code)
		}
		_ = c.JSON(httpErr.Code, errorResponse{Error: message})
		return
	}

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		utils.Error("Unhandled request error: %v", err)
		_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: constants.UserMsgSystem})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Type {
	case errors.TypeValidation:
		status = http.StatusBadRequest
	case errors.TypeNotFound:
		status = http.StatusNotFound
	case errors.TypeUnavailable:
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		utils.Error("Request failed: %v", appErr)
	}
	_ = c.JSON(status, errorResponse{Error: appErr.GetUserMessage(), Code: appErr.Code})
}
