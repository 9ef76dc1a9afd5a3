package widget

import (
	"context"

	"github.com/ssugameworks/pajelingo/models"
	"github.com/ssugameworks/pajelingo/scoring"
	"github.com/ssugameworks/pajelingo/utils"
)

// outcome 한 번의 조회 결과로 그릴 내용
type outcome struct {
	state      State
	content    Fragment
	pagination *Fragment
	page       int
	totalPages int
}

func failed() outcome {
	return outcome{state: StateError, content: ErrorFragment()}
}

func empty(fragment Fragment) outcome {
	return outcome{state: StateEmpty, content: fragment}
}

func (w *Widget) build(ctx context.Context, language string, page int) outcome {
	switch w.options.Source {
	case SourceRankings:
		return w.buildRankings(ctx, language, page)
	case SourceScores:
		return w.buildLeaderboard(ctx, language)
	case SourcePersonalScores:
		return w.buildPersonalScores(ctx, language)
	default:
		utils.Error("Widget %s has unknown source %d", w.options.Name, w.options.Source)
		return failed()
	}
}

func (w *Widget) buildRankings(ctx context.Context, language string, page int) outcome {
	rankingPage, err := w.client.GetRankings(ctx, language, "", page)
	if err != nil {
		utils.Warn("Widget %s failed to fetch rankings: %v", w.options.Name, err)
		return failed()
	}

	// 전체 수가 줄어 요청한 페이지가 범위를 벗어나면 마지막 페이지를 다시 불러옵니다
	if last := rankingPage.TotalPages(); last > 0 && page > last {
		utils.Debug("Widget %s page %d is past the last page %d, reloading", w.options.Name, page, last)
		page = last
		rankingPage, err = w.client.GetRankings(ctx, language, "", page)
		if err != nil {
			utils.Warn("Widget %s failed to fetch rankings: %v", w.options.Name, err)
			return failed()
		}
	}

	if len(rankingPage.Results) == 0 {
		return empty(EmptyRankingsFragment())
	}

	var personal *models.RankingEntry
	_, onPage := rankingPage.FindUser(w.user)
	if w.options.HighlightUser && w.user != "" && !onPage {
		userPage, err := w.client.GetRankings(ctx, language, w.user, 0)
		if err != nil {
			utils.Warn("Widget %s failed to look up position of %s: %v", w.options.Name, w.user, err)
			return failed()
		}
		if len(userPage.Results) == 1 {
			entry := userPage.Results[0]
			personal = &entry
		}
	}

	rows := make([]RankingRow, 0, len(rankingPage.Results))
	for i, entry := range rankingPage.Results {
		rows = append(rows, RankingRow{
			Position:  models.Position(page, i),
			User:      entry.User,
			Score:     entry.Score,
			Highlight: w.options.HighlightUser && w.user != "" && entry.User == w.user,
		})
	}

	content, err := RankingFragment(rows, personal)
	if err != nil {
		utils.Error("Widget %s failed to render rankings: %v", w.options.Name, err)
		return failed()
	}

	result := outcome{state: StateRendered, content: content, page: page, totalPages: rankingPage.TotalPages()}
	if pagination, visible := BuildPagination(rankingPage, page); visible {
		fragment, err := PaginationFragment(pagination)
		if err != nil {
			utils.Error("Widget %s failed to render pagination: %v", w.options.Name, err)
			return failed()
		}
		result.pagination = &fragment
	}
	return result
}

func (w *Widget) buildLeaderboard(ctx context.Context, language string) outcome {
	scores, err := w.client.GetScores(ctx, language, "")
	if err != nil {
		utils.Warn("Widget %s failed to fetch scores: %v", w.options.Name, err)
		return failed()
	}
	if len(scores) == 0 {
		return empty(EmptyRankingsFragment())
	}

	grouping := w.options.Grouping
	if grouping == nil {
		grouping = scoring.None
	}
	entries := grouping.Group(scores)

	// 사용자의 순위는 백엔드에 다시 묻지 않고 합산 결과에서 찾습니다
	mine, ranked := scoring.FindPosition(entries, w.user)
	highlight := w.options.HighlightUser && ranked

	rows := make([]RankingRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, RankingRow{
			Position:  entry.Position,
			User:      entry.User,
			Score:     entry.Score,
			Highlight: highlight && entry.Position == mine.Position,
		})
	}

	content, err := RankingFragment(rows, nil)
	if err != nil {
		utils.Error("Widget %s failed to render leaderboard: %v", w.options.Name, err)
		return failed()
	}
	return outcome{state: StateRendered, content: content}
}

func (w *Widget) buildPersonalScores(ctx context.Context, language string) outcome {
	if w.user == "" {
		return empty(NoScoresFragment())
	}

	scores, err := w.client.GetScores(ctx, language, w.user)
	if err != nil {
		utils.Warn("Widget %s failed to fetch scores of %s: %v", w.options.Name, w.user, err)
		return failed()
	}
	if len(scores) == 0 {
		return empty(NoScoresFragment())
	}

	games, err := w.client.GetGames(ctx)
	if err != nil {
		utils.Warn("Widget %s failed to fetch games: %v", w.options.Name, err)
		return failed()
	}

	content, err := ScoresFragment(scoring.AnnotateGames(scores, games))
	if err != nil {
		utils.Error("Widget %s failed to render scores: %v", w.options.Name, err)
		return failed()
	}
	return outcome{state: StateRendered, content: content}
}
