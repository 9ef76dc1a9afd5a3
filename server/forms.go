package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/validation"
)

// FieldResponse 필드 하나의 검증 결과와 오류 슬롯 마크업
type FieldResponse struct {
	Invalid bool     `json:"invalid"`
	Errors  []string `json:"errors"`
	HTML    string   `json:"html"`
}

func newFieldResponse(state validation.FieldState) FieldResponse {
	return FieldResponse{Invalid: state.Invalid, Errors: state.Errors, HTML: state.HTML()}
}

// handleValidate POST /forms/:form/validate
// event 와 field 가 있으면 그 필드만, 없으면 폼 전체를 검증합니다.
func (server *Server) handleValidate(c echo.Context) error {
	form, ok := server.deps.Forms.Lookup(c.Param("form"))
	if !ok {
		return errors.NewNotFoundError("UNKNOWN_FORM", "unknown form "+c.Param("form"), constants.UserMsgUnknownForm)
	}

	values, err := c.FormParams()
	if err != nil {
		return errors.NewValidationError("INVALID_FORM_BODY", "failed to parse form body", "Invalid form data.")
	}

	response := make(map[string]FieldResponse)

	eventType := values.Get("event")
	if eventType == "" {
		for name, state := range form.ValidateAll(values) {
			response[name] = newFieldResponse(state)
		}
		return c.JSON(http.StatusOK, response)
	}

	event := validation.Event{Type: eventType, Field: values.Get("field")}
	if state, handled := form.HandleEvent(event, values); handled {
		response[event.Field] = newFieldResponse(state)
	}
	return c.JSON(http.StatusOK, response)
}
