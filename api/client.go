package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/models"
	"github.com/ssugameworks/pajelingo/utils"
	"github.com/tidwall/gjson"
)

// PajelingoClient pajelingo 백엔드 API와 통신하는 클라이언트입니다
type PajelingoClient struct {
	client  *http.Client
	baseURL string
}

// NewPajelingoClient 새로운 PajelingoClient 인스턴스를 생성합니다.
// timeout 이 0이면 클라이언트 측 제한 시간을 두지 않습니다.
func NewPajelingoClient(baseURL string, timeout time.Duration) *PajelingoClient {
	utils.Debug("Creating new pajelingo API client for %s", baseURL)
	return &PajelingoClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetRankings 언어별 랭킹 페이지를 조회합니다. user 나 page 가 비어 있으면 쿼리에서 생략합니다
func (client *PajelingoClient) GetRankings(ctx context.Context, language, user string, page int) (*models.RankingPage, error) {
	endpoint := client.buildURL(constants.RankingsPath, language, user, page)

	body, err := client.doRequest(ctx, endpoint, "rankings")
	if err != nil {
		return nil, err
	}

	var rankingPage models.RankingPage
	if err := json.Unmarshal(body, &rankingPage); err != nil {
		utils.Error("Failed to parse rankings response: %v", err)
		return nil, errors.NewUnavailableError("RANKINGS_PARSE_FAILED", "랭킹 응답 파싱 실패", err)
	}

	utils.Debug("Fetched %d ranking rows (count=%d)", len(rankingPage.Results), rankingPage.Count)
	return &rankingPage, nil
}

// GetScores 점수 기록을 조회합니다
func (client *PajelingoClient) GetScores(ctx context.Context, language, user string) ([]models.ScoreRecord, error) {
	endpoint := client.buildURL(constants.ScoresPath, language, user, 0)

	body, err := client.doRequest(ctx, endpoint, "scores")
	if err != nil {
		return nil, err
	}

	var scores []models.ScoreRecord
	if err := json.Unmarshal(body, &scores); err != nil {
		utils.Error("Failed to parse scores response: %v", err)
		return nil, errors.NewUnavailableError("SCORES_PARSE_FAILED", "점수 응답 파싱 실패", err)
	}

	utils.Debug("Fetched %d score records", len(scores))
	return scores, nil
}

// GetGames 게임 목록을 조회합니다
func (client *PajelingoClient) GetGames(ctx context.Context) ([]models.GameRecord, error) {
	body, err := client.doRequest(ctx, client.baseURL+constants.GamesPath, "games")
	if err != nil {
		return nil, err
	}

	var games []models.GameRecord
	if err := json.Unmarshal(body, &games); err != nil {
		utils.Error("Failed to parse games response: %v", err)
		return nil, errors.NewUnavailableError("GAMES_PARSE_FAILED", "게임 목록 파싱 실패", err)
	}

	utils.Debug("Fetched %d games", len(games))
	return games, nil
}

func (client *PajelingoClient) buildURL(path, language, user string, page int) string {
	query := url.Values{}
	if language != "" {
		query.Set(constants.QueryLanguage, language)
	}
	if user != "" {
		query.Set(constants.QueryUser, user)
	}
	if page > 0 {
		query.Set(constants.QueryPage, strconv.Itoa(page))
	}

	endpoint := client.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint
}

// doRequest 단일 GET 요청을 보냅니다. 재시도하지 않으며 모든 실패는 ErrUnavailable 로 수렴합니다
func (client *PajelingoClient) doRequest(ctx context.Context, endpoint, requestType string) ([]byte, error) {
	utils.Debug("Fetching %s from: %s", requestType, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewUnavailableError("REQUEST_BUILD_FAILED", "요청 생성 실패", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.client.Do(req)
	if err != nil {
		utils.Warn("Request for %s failed: %v", requestType, err)
		return nil, errors.NewUnavailableError("REQUEST_FAILED", fmt.Sprintf("%s 조회 실패", requestType), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.Error("Failed to read %s response body: %v", requestType, err)
		return nil, errors.NewUnavailableError("RESPONSE_READ_FAILED", "응답 읽기 실패", err)
	}

	if resp.StatusCode < constants.HTTPSuccessMin || resp.StatusCode > constants.HTTPSuccessMax {
		logErrorBody(requestType, resp.StatusCode, body)
		return nil, errors.NewUnavailableError("UNEXPECTED_STATUS",
			fmt.Sprintf("API가 상태 코드 %d를 반환했습니다", resp.StatusCode), nil)
	}

	return body, nil
}

// logErrorBody DRF 형식의 {"detail": ...} 본문이 있으면 그 메시지를 기록합니다
func logErrorBody(requestType string, status int, body []byte) {
	if detail := gjson.GetBytes(body, "detail"); detail.Exists() {
		utils.Warn("API returned %d for %s: %s", status, requestType, utils.SanitizeLogValue(detail.String()))
		return
	}
	utils.Warn("API returned %d for %s: %s", status, requestType,
		utils.TruncateString(string(body), constants.MaxLoggedBodySize))
}
