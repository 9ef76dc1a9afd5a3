package widget

import (
	"html/template"

	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/models"
	"github.com/ssugameworks/pajelingo/performance"
)

const fragmentTemplates = `
{{define "loading"}}<div class="text-center col-6">
	<img id="noResultImg" src="{{.Image}}" class="img-fluid rounded col-8 col-sm-4 col-md-3 col-lg-2" alt="No results image">
	<p id="noResultP">{{.Message}}</p>
</div>{{end}}

{{define "error"}}<div class="text-center col-sm-8 col-md-4">
	<img id="noResultImg" src="{{.Image}}" class="img-fluid rounded" alt="No results image">
	<p id="noResultP">{{.Message}}</p>
</div>{{end}}

{{define "empty_rankings"}}<p>{{.Message}}</p>{{end}}

{{define "no_scores"}}<p id="warningNoScores">{{.Message}}</p>{{end}}

{{define "ranking"}}<table class="table table-striped">
	<thead>
		<tr>
			<th scope="col">Position</th>
			<th scope="col">Username</th>
			<th scope="col">Score</th>
		</tr>
	</thead>
	<tbody>
		{{- range .Rows}}
		<tr{{if .Highlight}} class="table-active"{{end}}>
			<td>{{.Position}}</td>
			<td>{{.User}}</td>
			<td>{{.Score}}</td>
		</tr>
		{{- end}}
		{{- with .Personal}}
		<tr>
			<td>{{$.Ellipsis}}</td>
			<td>{{$.Ellipsis}}</td>
			<td>{{$.Ellipsis}}</td>
		</tr>
		<tr>
			<th scope="row">{{$.Prefix}} {{.Position}}</th>
			<th scope="row">{{.User}}</th>
			<th scope="row">{{.Score}}</th>
		</tr>
		{{- end}}
	</tbody>
</table>{{end}}

{{define "scores"}}<table class="table table-striped">
	<thead>
		<tr>
			<th scope="col">Game</th>
			<th scope="col">Score</th>
		</tr>
	</thead>
	<tbody>
		{{- range .}}
		<tr>
			<td>{{.GameName}}</td>
			<td>{{.Score}}</td>
		</tr>
		{{- end}}
	</tbody>
</table>{{end}}

{{define "pagination"}}<nav aria-label="Ranking pages">
	<ul class="pagination">
		{{- if .HasPrevious}}
		<li class="page-item"><a class="page-link" aria-label="Previous" data-page="{{.PreviousPage}}">&laquo;</a></li>
		{{- end}}
		{{- range .Buttons}}
		{{- if .Ellipsis}}
		<li class="page-item"><a class="page-link">...</a></li>
		{{- else}}
		<li class="page-item{{if .Active}} active{{end}}"><a class="page-link" data-page="{{.Page}}">{{.Page}}</a></li>
		{{- end}}
		{{- end}}
		{{- if .HasNext}}
		<li class="page-item"><a class="page-link" aria-label="Next" data-page="{{.NextPage}}">&raquo;</a></li>
		{{- end}}
	</ul>
</nav>{{end}}
`

var templates = template.Must(template.New("fragments").Parse(fragmentTemplates))

// RankingRow 순위표의 한 줄
type RankingRow struct {
	Position  int
	User      string
	Score     int
	Highlight bool
}

type feedback struct {
	Image   string
	Message string
}

type rankingTable struct {
	Rows     []RankingRow
	Personal *models.RankingEntry
	Prefix   string
	Ellipsis string
}

func render(name string, data interface{}) (string, error) {
	buffer := performance.GetBuffer()
	defer performance.PutBuffer(buffer)

	if err := templates.ExecuteTemplate(buffer, name, data); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

func mustRender(name string, data interface{}) string {
	html, err := render(name, data)
	if err != nil {
		panic(err)
	}
	return html
}

func feedbackClasses() []string {
	return append([]string(nil), constants.FeedbackClassList...)
}

// LoadingFragment 로딩 중 표시
func LoadingFragment() Fragment {
	return Fragment{
		Target:  constants.TargetContent,
		HTML:    mustRender("loading", feedback{Image: constants.LoadingImagePath, Message: constants.MsgLoading}),
		Classes: feedbackClasses(),
		State:   StateLoading,
	}
}

// ErrorFragment 연결 오류 표시
func ErrorFragment() Fragment {
	return Fragment{
		Target:  constants.TargetContent,
		HTML:    mustRender("error", feedback{Image: constants.ErrorImagePath, Message: constants.MsgConnectionError}),
		Classes: feedbackClasses(),
		State:   StateError,
	}
}

// EmptyRankingsFragment 아직 아무도 플레이하지 않은 경우
func EmptyRankingsFragment() Fragment {
	return Fragment{
		Target:  constants.TargetContent,
		HTML:    mustRender("empty_rankings", feedback{Message: constants.MsgEmptyRankings}),
		Classes: []string{},
		State:   StateEmpty,
	}
}

// NoScoresFragment 사용자가 이 언어로 플레이한 기록이 없는 경우
func NoScoresFragment() Fragment {
	return Fragment{
		Target:  constants.TargetContent,
		HTML:    mustRender("no_scores", feedback{Message: constants.MsgNoUserScores}),
		Classes: []string{},
		State:   StateEmpty,
	}
}

// RankingFragment 순위표와 선택적인 본인 순위 행을 렌더링합니다
func RankingFragment(rows []RankingRow, personal *models.RankingEntry) (Fragment, error) {
	html, err := render("ranking", rankingTable{
		Rows:     rows,
		Personal: personal,
		Prefix:   constants.PersonalRowPrefix,
		Ellipsis: constants.EllipsisText,
	})
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Target: constants.TargetContent, HTML: html, Classes: []string{}, State: StateRendered}, nil
}

// ScoresFragment 게임별 점수표를 렌더링합니다
func ScoresFragment(scores []models.GameScore) (Fragment, error) {
	html, err := render("scores", scores)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Target: constants.TargetContent, HTML: html, Classes: []string{}, State: StateRendered}, nil
}

// PaginationFragment 페이지 컨트롤을 렌더링합니다
func PaginationFragment(pagination Pagination) (Fragment, error) {
	html, err := render("pagination", pagination)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Target: constants.TargetPagination, HTML: html, Classes: []string{}, State: StateRendered}, nil
}

// ClearPaginationFragment 페이지 컨테이너를 비웁니다
func ClearPaginationFragment(state State) Fragment {
	return Fragment{Target: constants.TargetPagination, HTML: "", Classes: []string{}, State: state}
}
