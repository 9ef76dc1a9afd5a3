package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/ssugameworks/pajelingo/constants"
)

// ErrorType 오류의 종류를 나타냅니다
type ErrorType int

const (
	TypeUnavailable ErrorType = iota
	TypeEmpty
	TypeValidation
	TypeNotFound
	TypeSystem
)

// 오류 종류 판별용 센티널
var (
	ErrUnavailable = stderrors.New("service unavailable")
	ErrEmpty       = stderrors.New("empty result")
)

func (t ErrorType) String() string {
	switch t {
	case TypeUnavailable:
		return "unavailable"
	case TypeEmpty:
		return "empty"
	case TypeValidation:
		return "validation"
	case TypeNotFound:
		return "not_found"
	case TypeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// AppError 애플리케이션에서 발생하는 구조화된 오류를 표현합니다
type AppError struct {
	Type     ErrorType
	Code     string
	Message  string
	UserMsg  string
	Internal error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 내부 오류를 반환합니다
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is 오류 종류에 해당하는 센티널과 비교합니다
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Type == TypeUnavailable
	case ErrEmpty:
		return e.Type == TypeEmpty
	}
	return false
}

// GetUserMessage 사용자에게 표시할 메시지를 반환합니다
func (e *AppError) GetUserMessage() string {
	if e.UserMsg != "" {
		return e.UserMsg
	}
	return e.Message
}

// 오류 생성 함수들

// NewUnavailableError 네트워크 또는 서버 오류를 생성합니다.
// 원인과 관계없이 모든 조회 실패는 이 하나의 종류로 수렴합니다.
func NewUnavailableError(code, message string, err error) *AppError {
	return &AppError{
		Type:     TypeUnavailable,
		Code:     code,
		Message:  message,
		UserMsg:  constants.UserMsgUnavailable,
		Internal: err,
	}
}

// NewEmptyError 정상 응답이지만 결과가 없는 경우를 나타냅니다
func NewEmptyError(code, message string) *AppError {
	return &AppError{
		Type:    TypeEmpty,
		Code:    code,
		Message: message,
	}
}

// NewValidationError 입력값 검증 오류를 생성합니다
func NewValidationError(code, message, userMsg string) *AppError {
	return &AppError{
		Type:    TypeValidation,
		Code:    code,
		Message: message,
		UserMsg: userMsg,
	}
}

// NewNotFoundError 리소스를 찾을 수 없는 오류를 생성합니다
func NewNotFoundError(code, message, userMsg string) *AppError {
	return &AppError{
		Type:    TypeNotFound,
		Code:    code,
		Message: message,
		UserMsg: userMsg,
	}
}

// NewSystemError 시스템 내부 오류를 생성합니다
func NewSystemError(code, message string, err error) *AppError {
	return &AppError{
		Type:     TypeSystem,
		Code:     code,
		Message:  message,
		UserMsg:  constants.UserMsgSystem,
		Internal: err,
	}
}

// IsUnavailable 조회 실패 오류인지 확인합니다
func IsUnavailable(err error) bool {
	return stderrors.Is(err, ErrUnavailable)
}

// IsEmpty 빈 결과 오류인지 확인합니다
func IsEmpty(err error) bool {
	return stderrors.Is(err, ErrEmpty)
}

// TypeOf 오류 체인에서 AppError 종류를 찾습니다
func TypeOf(err error) (ErrorType, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type, true
	}
	return 0, false
}
