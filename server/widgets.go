package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/widget"
)

// WidgetResponse 한 번의 위젯 요청 결과
type WidgetResponse struct {
	Widget     string           `json:"widget"`
	State      widget.State     `json:"state"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Content    widget.Fragment  `json:"content"`
	Pagination *widget.Fragment `json:"pagination,omitempty"`
}

// handleWidget GET /widgets/:widget?language=&page=
// 로딩 화면을 거치지 않고 최종 프래그먼트만 돌려줍니다.
func (server *Server) handleWidget(c echo.Context) error {
	name := c.Param("widget")
	options, ok := widget.OptionsFor(name, 0)
	if !ok {
		return errors.NewNotFoundError("UNKNOWN_WIDGET", "unknown widget "+name, "Unknown widget.")
	}
	options.Observer = server.deps.Observer

	page := constants.FirstPage
	if raw := c.QueryParam(constants.QueryPage); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errors.NewValidationError("INVALID_PAGE", "invalid page "+raw, "Invalid page number.")
		}
		page = parsed
	}

	content := widget.NewBuffer()
	pagination := widget.NewBuffer()
	instance := widget.New(server.deps.Client, options,
		widget.Targets{Content: content, Pagination: pagination},
		currentUser(c), c.QueryParam(constants.QueryLanguage))

	ctx := c.Request().Context()
	var err error
	if options.Paginate && page != constants.FirstPage {
		_, err = instance.GoToPage(ctx, page)
	} else {
		_, err = instance.Load(ctx)
	}
	if err != nil {
		return errors.NewSystemError("WIDGET_RENDER_FAILED", "failed to render "+name, err)
	}

	status := instance.Status()
	response := WidgetResponse{
		Widget:     name,
		State:      status.State,
		Page:       status.Page,
		TotalPages: status.TotalPages,
	}
	if last, ok := content.Last(); ok {
		response.Content = last
	}
	if options.Paginate {
		if last, ok := pagination.Last(); ok {
			response.Pagination = &last
		}
	}
	return c.JSON(http.StatusOK, response)
}
