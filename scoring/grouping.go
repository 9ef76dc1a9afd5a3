package scoring

import (
	"sort"

	"github.com/ssugameworks/pajelingo/models"
)

// Strategy 점수 기록을 순위 행으로 바꾸는 그룹화 방식입니다
type Strategy interface {
	Name() string
	Group(records []models.ScoreRecord) []models.RankingEntry
}

// None 기록을 받은 순서 그대로 한 줄씩 사용합니다
var None Strategy = noGrouping{}

// SumByUser 사용자별 점수를 합산해 내림차순으로 정렬합니다
var SumByUser Strategy = sumByUser{}

type noGrouping struct{}

func (noGrouping) Name() string { return "none" }

func (noGrouping) Group(records []models.ScoreRecord) []models.RankingEntry {
	entries := make([]models.RankingEntry, 0, len(records))
	for i, record := range records {
		entries = append(entries, models.RankingEntry{
			Position: i + 1,
			User:     record.User,
			Score:    record.Score,
		})
	}
	return entries
}

type sumByUser struct{}

func (sumByUser) Name() string { return "sum_by_user" }

// Group 처음 등장한 순서로 합산한 뒤 안정 정렬하므로 동점자는 먼저 나온 사용자가 앞섭니다
func (sumByUser) Group(records []models.ScoreRecord) []models.RankingEntry {
	totals := make(map[string]int)
	order := make([]string, 0)

	for _, record := range records {
		if _, seen := totals[record.User]; !seen {
			order = append(order, record.User)
		}
		totals[record.User] += record.Score
	}

	entries := make([]models.RankingEntry, 0, len(order))
	for _, user := range order {
		entries = append(entries, models.RankingEntry{User: user, Score: totals[user]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// FindPosition 그룹화된 결과에서 사용자의 행을 찾습니다
func FindPosition(entries []models.RankingEntry, user string) (models.RankingEntry, bool) {
	if user == "" {
		return models.RankingEntry{}, false
	}
	for _, entry := range entries {
		if entry.User == user {
			return entry, true
		}
	}
	return models.RankingEntry{}, false
}
