package widget

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/interfaces"
	"github.com/ssugameworks/pajelingo/utils"
)

// ErrSuperseded 더 최근의 요청이 이 요청을 대체했음을 나타냅니다
var ErrSuperseded = stderrors.New("widget trigger superseded")

// Widget 데이터 조회, 가공, 렌더링을 묶은 하나의 화면 단위입니다.
// 같은 위젯에 대한 요청은 나중 요청이 이전 요청을 취소하고 대체합니다.
type Widget struct {
	options Options
	client  interfaces.APIClient
	targets Targets
	user    string

	mu         sync.Mutex
	language   string
	page       int
	totalPages int
	state      State
	generation uint64
	cancel     context.CancelFunc
}

// Status 위젯 상태 요약
type Status struct {
	Name       string `json:"name"`
	Language   string `json:"language"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	State      State  `json:"state"`
}

// New 새 위젯을 만듭니다. user 가 비어 있으면 익명 사용자입니다
func New(client interfaces.APIClient, options Options, targets Targets, user, language string) *Widget {
	if options.MinLoading < 0 {
		options.MinLoading = constants.DefaultMinLoading
	}
	return &Widget{
		options:  options,
		client:   client,
		targets:  targets,
		user:     user,
		language: language,
		page:     constants.FirstPage,
		state:    StateIdle,
	}
}

// Name 위젯 이름
func (w *Widget) Name() string {
	return w.options.Name
}

// Status 현재 상태를 반환합니다
func (w *Widget) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Status{
		Name:       w.options.Name,
		Language:   w.language,
		Page:       w.page,
		TotalPages: w.totalPages,
		State:      w.state,
	}
}

// Load 현재 언어와 페이지로 다시 불러옵니다
func (w *Widget) Load(ctx context.Context) (State, error) {
	return w.trigger(ctx, func() {})
}

// SelectLanguage 언어를 바꾸고 첫 페이지부터 다시 불러옵니다
func (w *Widget) SelectLanguage(ctx context.Context, language string) (State, error) {
	return w.trigger(ctx, func() {
		w.language = language
		w.page = constants.FirstPage
	})
}

// GoToPage 지정한 페이지를 불러옵니다. 알려진 페이지 범위 밖이면 범위 안으로 맞춥니다
func (w *Widget) GoToPage(ctx context.Context, page int) (State, error) {
	if !w.options.Paginate {
		return w.Status().State, errors.NewValidationError("WIDGET_NOT_PAGINATED",
			w.options.Name+" 위젯은 페이지를 지원하지 않습니다", "")
	}
	return w.trigger(ctx, func() {
		w.page = clampPage(page, w.totalPages)
	})
}

// Cancel 진행 중인 요청을 취소합니다
func (w *Widget) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.generation++
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

func (w *Widget) trigger(parent context.Context, update func()) (State, error) {
	w.mu.Lock()
	update()
	w.generation++
	generation := w.generation
	if w.cancel != nil {
		w.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	w.cancel = cancel
	language, page := w.language, w.page

	w.state = StateLoading
	w.renderContent(LoadingFragment())
	w.renderPagination(ClearPaginationFragment(StateLoading))
	loadingShown := time.Now()
	w.mu.Unlock()
	defer cancel()

	outcome := w.build(ctx, language, page)

	if err := waitMinLoading(ctx, loadingShown, w.options.MinLoading); err != nil {
		return StateLoading, w.abandoned(generation, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if generation != w.generation {
		return w.state, ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return w.state, err
	}

	w.state = outcome.state
	// 오류일 때는 이전에 불러온 페이지 정보를 유지합니다
	if outcome.state == StateRendered || outcome.state == StateEmpty {
		w.totalPages = outcome.totalPages
		w.page = clampPage(outcome.page, w.totalPages)
	}

	renderErr := w.renderContent(outcome.content)
	if outcome.pagination != nil {
		if err := w.renderPagination(*outcome.pagination); err != nil && renderErr == nil {
			renderErr = err
		}
	}

	if w.options.Observer != nil {
		w.options.Observer.ObserveRender(w.options.Name, outcome.state, time.Since(loadingShown))
	}
	utils.Debug("Widget %s rendered %s (language=%s, page=%d)", w.options.Name, outcome.state, language, page)

	return outcome.state, renderErr
}

func (w *Widget) abandoned(generation uint64, err error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if generation != w.generation {
		return ErrSuperseded
	}
	return err
}

// renderContent 호출자가 mu 를 잡고 있어야 합니다
func (w *Widget) renderContent(fragment Fragment) error {
	if w.targets.Content == nil {
		return nil
	}
	if err := w.targets.Content.Render(fragment); err != nil {
		utils.Warn("Widget %s failed to render content: %v", w.options.Name, err)
		return err
	}
	return nil
}

// renderPagination 호출자가 mu 를 잡고 있어야 합니다
func (w *Widget) renderPagination(fragment Fragment) error {
	if !w.options.Paginate || w.targets.Pagination == nil {
		return nil
	}
	if err := w.targets.Pagination.Render(fragment); err != nil {
		utils.Warn("Widget %s failed to render pagination: %v", w.options.Name, err)
		return err
	}
	return nil
}

// waitMinLoading 로딩 화면이 표시된 시점부터 최소 노출 시간이 지날 때까지 기다립니다
func waitMinLoading(ctx context.Context, shownAt time.Time, minimum time.Duration) error {
	remaining := minimum - time.Since(shownAt)
	if remaining <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
