package models

import "github.com/ssugameworks/pajelingo/constants"

// ScoreRecord 한 사용자의 한 게임 점수입니다
type ScoreRecord struct {
	User  string `json:"user"`
	Game  int    `json:"game"`
	Score int    `json:"score"`
}

// RankingEntry 랭킹 페이지의 한 줄입니다
type RankingEntry struct {
	Position int    `json:"position"`
	User     string `json:"user"`
	Score    int    `json:"score"`
}

// RankingPage 백엔드의 페이지 단위 랭킹 응답입니다
type RankingPage struct {
	Results  []RankingEntry `json:"results"`
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
}

// HasNext 다음 페이지 링크가 있는지 확인합니다
func (p *RankingPage) HasNext() bool {
	return p != nil && p.Next != nil
}

// HasPrevious 이전 페이지 링크가 있는지 확인합니다
func (p *RankingPage) HasPrevious() bool {
	return p != nil && p.Previous != nil
}

// TotalPages 전체 페이지 수 (ceil(count/10))
func (p *RankingPage) TotalPages() int {
	if p == nil {
		return 0
	}
	return TotalPages(p.Count)
}

// FindUser 페이지 안에서 사용자를 찾습니다
func (p *RankingPage) FindUser(user string) (RankingEntry, bool) {
	if p == nil || user == "" {
		return RankingEntry{}, false
	}
	for _, entry := range p.Results {
		if entry.User == user {
			return entry, true
		}
	}
	return RankingEntry{}, false
}

// GameRecord 게임 카탈로그의 한 항목입니다
type GameRecord struct {
	ID       int    `json:"id"`
	GameName string `json:"game_name"`
}

// GameScore 게임 이름이 붙은 개인 점수입니다
type GameScore struct {
	GameID   int
	GameName string
	Score    int
}

// TotalPages 전체 항목 수로부터 페이지 수를 계산합니다
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + constants.RankingPageSize - 1) / constants.RankingPageSize
}

// Position 페이지와 인덱스로부터 절대 순위를 계산합니다 (10*(page-1)+index+1)
func Position(page, index int) int {
	return constants.RankingPageSize*(page-1) + index + 1
}
