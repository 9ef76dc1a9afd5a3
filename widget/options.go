package widget

import (
	"time"

	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/scoring"
)

// Source 위젯이 데이터를 가져오는 곳
type Source int

const (
	// SourceRankings 페이지 단위 랭킹 API
	SourceRankings Source = iota
	// SourceScores 전체 사용자 점수 API
	SourceScores
	// SourcePersonalScores 로그인한 사용자의 점수와 게임 목록
	SourcePersonalScores
)

// Observer 렌더링이 끝날 때마다 호출됩니다
type Observer interface {
	ObserveRender(widget string, state State, elapsed time.Duration)
}

// Options 하나의 위젯 구성
type Options struct {
	Name          string
	Source        Source
	Grouping      scoring.Strategy
	Paginate      bool
	HighlightUser bool
	MinLoading    time.Duration
	Observer      Observer
}

// RankingOptions 페이지가 나뉜 언어별 랭킹
func RankingOptions(minLoading time.Duration) Options {
	return Options{
		Name:          constants.WidgetRankings,
		Source:        SourceRankings,
		Grouping:      scoring.None,
		Paginate:      true,
		HighlightUser: true,
		MinLoading:    minLoading,
	}
}

// LeaderboardOptions 전체 점수를 사용자별로 합산한 순위표
func LeaderboardOptions(minLoading time.Duration) Options {
	return Options{
		Name:          constants.WidgetLeaderboard,
		Source:        SourceScores,
		Grouping:      scoring.SumByUser,
		HighlightUser: true,
		MinLoading:    minLoading,
	}
}

// PersonalScoresOptions 로그인한 사용자의 게임별 점수
func PersonalScoresOptions(minLoading time.Duration) Options {
	return Options{
		Name:       constants.WidgetScores,
		Source:     SourcePersonalScores,
		Grouping:   scoring.None,
		MinLoading: minLoading,
	}
}

// OptionsFor 위젯 이름으로 기본 구성을 찾습니다
func OptionsFor(name string, minLoading time.Duration) (Options, bool) {
	switch name {
	case constants.WidgetRankings:
		return RankingOptions(minLoading), true
	case constants.WidgetLeaderboard:
		return LeaderboardOptions(minLoading), true
	case constants.WidgetScores:
		return PersonalScoresOptions(minLoading), true
	default:
		return Options{}, false
	}
}
