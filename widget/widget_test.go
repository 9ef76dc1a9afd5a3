package widget

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	calls    []string
	rankings func(ctx context.Context, language, user string, page int) (*models.RankingPage, error)
	scores   func(ctx context.Context, language, user string) ([]models.ScoreRecord, error)
	games    func(ctx context.Context) ([]models.GameRecord, error)
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) countCalls(prefix string) int {
	count := 0
	for _, call := range f.Calls() {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}

func (f *fakeClient) GetRankings(ctx context.Context, language, user string, page int) (*models.RankingPage, error) {
	f.record(fmt.Sprintf("rankings:%s:%s:%d", language, user, page))
	return f.rankings(ctx, language, user, page)
}

func (f *fakeClient) GetScores(ctx context.Context, language, user string) ([]models.ScoreRecord, error) {
	f.record(fmt.Sprintf("scores:%s:%s", language, user))
	return f.scores(ctx, language, user)
}

func (f *fakeClient) GetGames(ctx context.Context) ([]models.GameRecord, error) {
	f.record("games")
	return f.games(ctx)
}

var errDown = errors.NewUnavailableError("TEST_DOWN", "backend down", nil)

func threeRows(count int) func(context.Context, string, string, int) (*models.RankingPage, error) {
	return func(_ context.Context, _, user string, page int) (*models.RankingPage, error) {
		if user != "" {
			return &models.RankingPage{Count: 1, Results: []models.RankingEntry{{Position: 42, User: user, Score: 1}}}, nil
		}
		result := &models.RankingPage{
			Count: count,
			Results: []models.RankingEntry{
				{User: "alice", Score: 30},
				{User: "bob", Score: 20},
				{User: "carol", Score: 10},
			},
		}
		if page > 1 {
			result.Previous = link("prev")
		}
		if page < models.TotalPages(count) {
			result.Next = link("next")
		}
		return result, nil
	}
}

type harness struct {
	client     *fakeClient
	content    *Buffer
	pagination *Buffer
	widget     *Widget
}

func newHarness(client *fakeClient, options Options, user string) *harness {
	h := &harness{client: client, content: NewBuffer(), pagination: NewBuffer()}
	h.widget = New(client, options, Targets{Content: h.content, Pagination: h.pagination}, user, "German")
	return h
}

func (h *harness) lastContent(t *testing.T) Fragment {
	t.Helper()
	fragment, ok := h.content.Last()
	require.True(t, ok, "nothing rendered")
	return fragment
}

func (h *harness) lastPagination(t *testing.T) Fragment {
	t.Helper()
	fragment, ok := h.pagination.Last()
	require.True(t, ok, "pagination never rendered")
	return fragment
}

func TestRankingWidget_LoadingShownFirst(t *testing.T) {
	h := newHarness(&fakeClient{rankings: threeRows(3)}, RankingOptions(0), "")

	_, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	fragments := h.content.Fragments()
	require.Len(t, fragments, 2)
	assert.Equal(t, StateLoading, fragments[0].State)
	assert.Contains(t, fragments[0].HTML, constants.MsgLoading)
	assert.Equal(t, constants.FeedbackClassList, fragments[0].Classes)
	assert.Equal(t, "", h.pagination.Fragments()[0].HTML, "pagination is cleared while loading")
}

func TestRankingWidget_PositionsFollowPage(t *testing.T) {
	h := newHarness(&fakeClient{rankings: threeRows(25)}, RankingOptions(0), "")
	ctx := context.Background()

	_, err := h.widget.Load(ctx)
	require.NoError(t, err)
	state, err := h.widget.GoToPage(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, StateRendered, state)
	html := h.lastContent(t).HTML
	assert.Contains(t, html, "<td>11</td>")
	assert.Contains(t, html, "<td>12</td>")
	assert.Contains(t, html, "<td>13</td>")
	assert.NotContains(t, html, constants.PersonalRowPrefix)

	nav := h.lastPagination(t).HTML
	assert.Contains(t, nav, `data-page="1"`)
	assert.Contains(t, nav, `data-page="3"`)
	assert.Contains(t, nav, `aria-label="Previous"`)
	assert.Contains(t, nav, `aria-label="Next"`)

	status := h.widget.Status()
	assert.Equal(t, 2, status.Page)
	assert.Equal(t, 3, status.TotalPages)
}

func TestRankingWidget_PersonalRowForUserOffPage(t *testing.T) {
	client := &fakeClient{rankings: threeRows(50)}
	h := newHarness(client, RankingOptions(0), "zoe")

	state, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateRendered, state)
	html := h.lastContent(t).HTML
	assert.Contains(t, html, "(You) 42")
	assert.Contains(t, html, "<td>...</td>")
	assert.Equal(t, []string{"rankings:German::1", "rankings:German:zoe:0"}, client.Calls())
}

func TestRankingWidget_UserOnPageSkipsLookup(t *testing.T) {
	client := &fakeClient{rankings: threeRows(3)}
	h := newHarness(client, RankingOptions(0), "bob")

	_, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, client.countCalls("rankings"))
	html := h.lastContent(t).HTML
	assert.Contains(t, html, `class="table-active"`)
	assert.NotContains(t, html, constants.PersonalRowPrefix)
}

func TestRankingWidget_UserLookupFailureRendersError(t *testing.T) {
	rows := threeRows(3)
	client := &fakeClient{rankings: func(ctx context.Context, language, user string, page int) (*models.RankingPage, error) {
		if user != "" {
			return nil, errDown
		}
		return rows(ctx, language, user, page)
	}}
	h := newHarness(client, RankingOptions(0), "zoe")

	state, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateError, state)
	assert.Contains(t, h.lastContent(t).HTML, constants.MsgConnectionError)
}

func TestRankingWidget_FetchFailureRendersError(t *testing.T) {
	client := &fakeClient{rankings: func(context.Context, string, string, int) (*models.RankingPage, error) {
		return nil, errDown
	}}
	h := newHarness(client, RankingOptions(0), "zoe")

	state, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateError, state)
	fragment := h.lastContent(t)
	assert.Contains(t, fragment.HTML, constants.ErrorImagePath)
	assert.Equal(t, constants.FeedbackClassList, fragment.Classes)
	assert.Equal(t, 1, client.countCalls("rankings"), "no user lookup after a failed page fetch")
	assert.Equal(t, "", h.lastPagination(t).HTML)
}

func TestRankingWidget_EmptyResults(t *testing.T) {
	client := &fakeClient{rankings: func(context.Context, string, string, int) (*models.RankingPage, error) {
		return &models.RankingPage{}, nil
	}}
	h := newHarness(client, RankingOptions(0), "zoe")

	state, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateEmpty, state)
	assert.Contains(t, h.lastContent(t).HTML, "no one has played this game yet")
	assert.Empty(t, h.lastContent(t).Classes)
	assert.Equal(t, 1, client.countCalls("rankings"))
}

func TestPersonalScores_EmptySkipsGameCatalog(t *testing.T) {
	client := &fakeClient{
		scores: func(context.Context, string, string) ([]models.ScoreRecord, error) {
			return []models.ScoreRecord{}, nil
		},
		games: func(context.Context) ([]models.GameRecord, error) {
			t.Error("game catalog must not be fetched")
			return nil, nil
		},
	}
	h := newHarness(client, PersonalScoresOptions(0), "alice")

	state, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateEmpty, state)
	assert.Contains(t, h.lastContent(t).HTML, "warningNoScores")
	assert.NotContains(t, h.lastContent(t).HTML, constants.MsgConnectionError)
	assert.Equal(t, []string{"scores:German:alice"}, client.Calls())
	assert.Empty(t, h.pagination.Fragments(), "personal scores never paginate")
}

func TestPersonalScores_SortedByGameName(t *testing.T) {
	client := &fakeClient{
		scores: func(context.Context, string, string) ([]models.ScoreRecord, error) {
			return []models.ScoreRecord{
				{User: "alice", Game: 1, Score: 5},
				{User: "alice", Game: 2, Score: 9},
			}, nil
		},
		games: func(context.Context) ([]models.GameRecord, error) {
			return []models.GameRecord{{ID: 1, GameName: "Vocabulary"}, {ID: 2, GameName: "article"}}, nil
		},
	}
	h := newHarness(client, PersonalScoresOptions(0), "alice")

	state, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateRendered, state)
	html := h.lastContent(t).HTML
	assert.Less(t, strings.Index(html, "article"), strings.Index(html, "Vocabulary"))
	assert.Equal(t, 1, client.countCalls("games"))
}

func TestPersonalScores_GameCatalogFailure(t *testing.T) {
	client := &fakeClient{
		scores: func(context.Context, string, string) ([]models.ScoreRecord, error) {
			return []models.ScoreRecord{{User: "alice", Game: 1, Score: 5}}, nil
		},
		games: func(context.Context) ([]models.GameRecord, error) {
			return nil, errDown
		},
	}
	h := newHarness(client, PersonalScoresOptions(0), "alice")

	state, _ := h.widget.Load(context.Background())
	assert.Equal(t, StateError, state)
}

func TestPersonalScores_AnonymousDoesNotFetch(t *testing.T) {
	client := &fakeClient{}
	h := newHarness(client, PersonalScoresOptions(0), "")

	state, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateEmpty, state)
	assert.Empty(t, client.Calls())
}

func TestLeaderboard_GroupsAndHighlights(t *testing.T) {
	client := &fakeClient{scores: func(context.Context, string, string) ([]models.ScoreRecord, error) {
		return []models.ScoreRecord{
			{User: "a", Game: 1, Score: 3},
			{User: "b", Game: 1, Score: 2},
			{User: "a", Game: 2, Score: 5},
		}, nil
	}}
	h := newHarness(client, LeaderboardOptions(0), "b")

	state, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateRendered, state)
	html := h.lastContent(t).HTML
	assert.Contains(t, html, "<td>a</td>")
	assert.Contains(t, html, "<td>8</td>")
	assert.Less(t, strings.Index(html, "<td>a</td>"), strings.Index(html, "<td>b</td>"))
	assert.Contains(t, html, `class="table-active"`)
	assert.Equal(t, []string{"scores:German:"}, client.Calls())
}

func TestWidget_MinLoadingMeasuredFromLoadingRender(t *testing.T) {
	h := newHarness(&fakeClient{rankings: threeRows(3)}, RankingOptions(50*time.Millisecond), "")

	started := time.Now()
	_, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(started), 50*time.Millisecond)
}

func TestWidget_NewerTriggerSupersedesOlder(t *testing.T) {
	rows := threeRows(3)
	started := make(chan struct{})
	client := &fakeClient{rankings: func(ctx context.Context, language, user string, page int) (*models.RankingPage, error) {
		if language == "German" {
			close(started)
			<-ctx.Done()
			return nil, errors.NewUnavailableError("CANCELED", "canceled", ctx.Err())
		}
		return rows(ctx, language, user, page)
	}}
	h := newHarness(client, RankingOptions(0), "")

	firstDone := make(chan error, 1)
	go func() {
		_, err := h.widget.Load(context.Background())
		firstDone <- err
	}()

	<-started
	state, err := h.widget.SelectLanguage(context.Background(), "French")
	require.NoError(t, err)
	assert.Equal(t, StateRendered, state)

	select {
	case err := <-firstDone:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("first trigger was not canceled")
	}

	for _, fragment := range h.content.Fragments() {
		assert.NotEqual(t, StateError, fragment.State, "stale failure must not be rendered")
	}
	assert.Equal(t, StateRendered, h.lastContent(t).State)
	assert.Equal(t, "French", h.widget.Status().Language)
}

func TestWidget_OnePageClickAfterRepeatedLanguageSwitches(t *testing.T) {
	client := &fakeClient{rankings: threeRows(25)}
	h := newHarness(client, RankingOptions(0), "")
	ctx := context.Background()

	for _, language := range []string{"German", "French", "Spanish"} {
		_, err := h.widget.SelectLanguage(ctx, language)
		require.NoError(t, err)
	}

	_, err := h.widget.GoToPage(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, client.countCalls("rankings:Spanish::2"))
	assert.Equal(t, 4, client.countCalls("rankings"))
}

func TestWidget_SelectLanguageResetsPage(t *testing.T) {
	client := &fakeClient{rankings: threeRows(25)}
	h := newHarness(client, RankingOptions(0), "")
	ctx := context.Background()

	_, _ = h.widget.Load(ctx)
	_, _ = h.widget.GoToPage(ctx, 3)
	_, err := h.widget.SelectLanguage(ctx, "French")
	require.NoError(t, err)

	assert.Equal(t, 1, h.widget.Status().Page)
	calls := client.Calls()
	assert.Equal(t, "rankings:French::1", calls[len(calls)-1])
}

func TestWidget_GoToPageClamps(t *testing.T) {
	client := &fakeClient{rankings: threeRows(25)}
	h := newHarness(client, RankingOptions(0), "")
	ctx := context.Background()

	_, _ = h.widget.Load(ctx)
	_, _ = h.widget.GoToPage(ctx, 99)
	assert.Equal(t, 3, h.widget.Status().Page)

	_, _ = h.widget.GoToPage(ctx, 0)
	assert.Equal(t, 1, h.widget.Status().Page)
}

func TestWidget_GoToPageRequiresPagination(t *testing.T) {
	h := newHarness(&fakeClient{}, LeaderboardOptions(0), "")

	_, err := h.widget.GoToPage(context.Background(), 2)

	errorType, ok := errors.TypeOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.TypeValidation, errorType)
}

type recordingObserver struct {
	mu     sync.Mutex
	states []State
}

func (o *recordingObserver) ObserveRender(_ string, state State, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.states = append(o.states, state)
}

func TestWidget_ObserverNotified(t *testing.T) {
	observer := &recordingObserver{}
	options := RankingOptions(0)
	options.Observer = observer
	h := newHarness(&fakeClient{rankings: threeRows(3)}, options, "")

	_, err := h.widget.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []State{StateRendered}, observer.states)
}

func TestRankingWidget_EmptyLanguageResetsPageCount(t *testing.T) {
	populated := threeRows(50)
	client := &fakeClient{rankings: func(ctx context.Context, language, user string, page int) (*models.RankingPage, error) {
		if language == "Esperanto" {
			return &models.RankingPage{Count: 0}, nil
		}
		return populated(ctx, language, user, page)
	}}
	h := newHarness(client, RankingOptions(0), "")
	ctx := context.Background()

	_, err := h.widget.GoToPage(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 5, h.widget.Status().TotalPages)

	state, err := h.widget.SelectLanguage(ctx, "Esperanto")
	require.NoError(t, err)

	assert.Equal(t, StateEmpty, state)
	status := h.widget.Status()
	assert.Equal(t, "Esperanto", status.Language)
	assert.Equal(t, 1, status.Page)
	assert.Equal(t, 0, status.TotalPages)
}

func TestRankingWidget_ShrunkCountReloadsLastPage(t *testing.T) {
	count := 50
	client := &fakeClient{rankings: func(ctx context.Context, language, user string, page int) (*models.RankingPage, error) {
		return threeRows(count)(ctx, language, user, page)
	}}
	h := newHarness(client, RankingOptions(0), "")
	ctx := context.Background()

	_, err := h.widget.GoToPage(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 5, h.widget.Status().Page)

	count = 12
	state, err := h.widget.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, StateRendered, state)

	status := h.widget.Status()
	assert.Equal(t, 2, status.Page)
	assert.Equal(t, 2, status.TotalPages)

	calls := client.Calls()
	assert.Equal(t, []string{"rankings:German::5", "rankings:German::2"}, calls[len(calls)-2:])

	html := h.lastContent(t).HTML
	assert.Contains(t, html, "<td>11</td>")
	assert.NotContains(t, html, "<td>41</td>")
	assert.Contains(t, h.lastPagination(t).HTML, `<li class="page-item active"><a class="page-link" data-page="2">`)
}
