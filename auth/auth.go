package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/errors"
	"github.com/ssugameworks/pajelingo/utils"
)

// Resolver 요청에 실린 토큰으로 로그인한 사용자를 확인합니다
type Resolver struct {
	secret []byte
	cookie string
}

// NewResolver 새 Resolver 를 만듭니다. secret 이 비어 있으면 모든 요청을 익명으로 처리합니다
func NewResolver(secret, cookie string) *Resolver {
	if cookie == "" {
		cookie = constants.DefaultAuthCookie
	}
	return &Resolver{secret: []byte(secret), cookie: cookie}
}

// Enabled 토큰 검증이 가능한지 여부
func (resolver *Resolver) Enabled() bool {
	return len(resolver.secret) > 0
}

// UserFromRequest Authorization 헤더 또는 세션 쿠키에서 사용자 이름을 읽습니다.
// 토큰이 없거나 유효하지 않으면 빈 문자열(익명)을 반환합니다.
func (resolver *Resolver) UserFromRequest(r *http.Request) string {
	if !resolver.Enabled() {
		return ""
	}

	token := tokenFromRequest(r, resolver.cookie)
	if utils.IsBlank(token) {
		return ""
	}

	user, err := resolver.ParseToken(token)
	if err != nil {
		utils.Debug("Ignoring invalid session token: %v", err)
		return ""
	}
	return user
}

// ParseToken HS256 토큰을 검증하고 sub 또는 username 클레임을 반환합니다
func (resolver *Resolver) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return resolver.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.NewValidationError("INVALID_TOKEN", "invalid session token", "")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.NewValidationError("INVALID_CLAIMS", "unexpected token claims", "")
	}
	for _, key := range []string{constants.ClaimSubject, constants.ClaimUsername} {
		if user, ok := claims[key].(string); ok && user != "" {
			return user, nil
		}
	}
	return "", errors.NewValidationError("MISSING_USER_CLAIM", "token has no user claim", "")
}

// IssueToken 주어진 사용자에 대한 토큰을 서명합니다. 테스트와 로컬 개발용입니다
func (resolver *Resolver) IssueToken(user string, claims jwt.MapClaims) (string, error) {
	if claims == nil {
		claims = jwt.MapClaims{}
	}
	claims[constants.ClaimSubject] = user
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(resolver.secret)
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, constants.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix))
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
