package interfaces

import (
	"context"

	"github.com/ssugameworks/pajelingo/models"
)

// APIClient 백엔드 API와의 통신을 위한 인터페이스입니다.
// 모든 조회 실패는 errors.ErrUnavailable 로 판별할 수 있어야 합니다.
type APIClient interface {
	GetRankings(ctx context.Context, language, user string, page int) (*models.RankingPage, error)
	GetScores(ctx context.Context, language, user string) ([]models.ScoreRecord, error)
	GetGames(ctx context.Context) ([]models.GameRecord, error)
}
