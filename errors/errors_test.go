package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/ssugameworks/pajelingo/constants"
)

func TestNewValidationError(t *testing.T) {
	code := "TEST_CODE"
	message := "테스트 메시지"
	userMsg := "사용자 메시지"

	err := NewValidationError(code, message, userMsg)

	if err.Type != TypeValidation {
		t.Errorf("Type이 TypeValidation이어야 합니다. 실제값: %v", err.Type)
	}

	if err.Code != code {
		t.Errorf("Code가 %s이어야 합니다. 실제값: %s", code, err.Code)
	}

	if err.Message != message {
		t.Errorf("Message가 %s이어야 합니다. 실제값: %s", message, err.Message)
	}

	if err.UserMsg != userMsg {
		t.Errorf("UserMsg가 %s이어야 합니다. 실제값: %s", userMsg, err.UserMsg)
	}
}

func TestNewUnavailableError(t *testing.T) {
	internalErr := fmt.Errorf("connection refused")

	err := NewUnavailableError("RANKINGS_UNAVAILABLE", "rankings request failed", internalErr)

	if err.Type != TypeUnavailable {
		t.Errorf("Type이 TypeUnavailable이어야 합니다. 실제값: %v", err.Type)
	}

	if err.UserMsg != constants.UserMsgUnavailable {
		t.Errorf("UserMsg가 %s이어야 합니다. 실제값: %s", constants.UserMsgUnavailable, err.UserMsg)
	}

	if !IsUnavailable(err) {
		t.Error("IsUnavailable이 true여야 합니다")
	}

	if !stderrors.Is(err, internalErr) {
		t.Error("내부 오류로 언래핑되어야 합니다")
	}

	wrapped := fmt.Errorf("widget: %w", err)
	if !IsUnavailable(wrapped) {
		t.Error("래핑된 오류도 IsUnavailable이어야 합니다")
	}
}

func TestEmptyIsNotUnavailable(t *testing.T) {
	err := NewEmptyError("NO_SCORES", "no scores for language")

	if IsUnavailable(err) {
		t.Error("빈 결과는 조회 실패가 아닙니다")
	}

	if !IsEmpty(err) {
		t.Error("IsEmpty가 true여야 합니다")
	}
}

func TestAppErrorString(t *testing.T) {
	plain := NewNotFoundError("UNKNOWN_FORM", "form not registered", "Unknown form.")
	if plain.Error() != "[UNKNOWN_FORM] form not registered" {
		t.Errorf("예상과 다른 메시지: %s", plain.Error())
	}

	withInternal := NewSystemError("RENDER_FAILED", "template failed", fmt.Errorf("bad template"))
	if withInternal.Error() != "[RENDER_FAILED] template failed: bad template" {
		t.Errorf("예상과 다른 메시지: %s", withInternal.Error())
	}
}

func TestGetUserMessage(t *testing.T) {
	err := &AppError{Code: "X", Message: "내부 메시지"}
	if err.GetUserMessage() != "내부 메시지" {
		t.Error("UserMsg가 비어 있으면 Message를 반환해야 합니다")
	}

	err.UserMsg = "사용자 메시지"
	if err.GetUserMessage() != "사용자 메시지" {
		t.Error("UserMsg를 우선 반환해야 합니다")
	}
}

func TestTypeOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewEmptyError("EMPTY", "nothing"))
	errType, ok := TypeOf(err)
	if !ok || errType != TypeEmpty {
		t.Errorf("TypeOf가 TypeEmpty를 반환해야 합니다. 실제값: %v, %v", errType, ok)
	}

	if _, ok := TypeOf(fmt.Errorf("plain")); ok {
		t.Error("AppError가 아닌 오류는 false를 반환해야 합니다")
	}
}
