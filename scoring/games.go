package scoring

import (
	"sort"
	"strconv"

	"github.com/ssugameworks/pajelingo/models"
	"golang.org/x/text/cases"
)

// AnnotateGames 점수에 게임 이름을 붙이고 이름 기준 대소문자 무시 오름차순으로 정렬합니다.
// 카탈로그에 없는 게임은 ID를 이름으로 사용합니다.
func AnnotateGames(scores []models.ScoreRecord, games []models.GameRecord) []models.GameScore {
	names := make(map[int]string, len(games))
	for _, game := range games {
		names[game.ID] = game.GameName
	}

	fold := cases.Fold()
	annotated := make([]models.GameScore, 0, len(scores))
	keys := make([]string, 0, len(scores))
	for _, score := range scores {
		name, ok := names[score.Game]
		if !ok {
			name = strconv.Itoa(score.Game)
		}
		annotated = append(annotated, models.GameScore{
			GameID:   score.Game,
			GameName: name,
			Score:    score.Score,
		})
		keys = append(keys, fold.String(name))
	}

	sort.Stable(byFoldedName{scores: annotated, keys: keys})
	return annotated
}

type byFoldedName struct {
	scores []models.GameScore
	keys   []string
}

func (b byFoldedName) Len() int           { return len(b.scores) }
func (b byFoldedName) Less(i, j int) bool { return b.keys[i] < b.keys[j] }
func (b byFoldedName) Swap(i, j int) {
	b.scores[i], b.scores[j] = b.scores[j], b.scores[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
