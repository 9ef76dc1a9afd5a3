package validation

import (
	"html"

	"github.com/ssugameworks/pajelingo/performance"
)

// ValueSource 필드 이름으로 현재 값을 돌려주는 입력 원천입니다. url.Values 가 이를 만족합니다
type ValueSource interface {
	Get(key string) string
}

// Snapshot 검증 시점의 필드 값 모음입니다. 검증기는 이 값만 읽습니다
type Snapshot map[string]string

// NewSnapshot 지정한 필드들의 현재 값을 복사해 스냅샷을 만듭니다
func NewSnapshot(source ValueSource, fields ...string) Snapshot {
	snapshot := make(Snapshot, len(fields))
	if source == nil {
		return snapshot
	}
	for _, field := range fields {
		snapshot[field] = source.Get(field)
	}
	return snapshot
}

// Value 필드 값을 반환합니다. 없는 필드는 빈 문자열입니다
func (snapshot Snapshot) Value(field string) string {
	return snapshot[field]
}

// Validator 하나의 검증 규칙입니다
type Validator struct {
	Name         string
	Validate     func(Snapshot) bool
	ErrorMessage string
}

// FieldState 한 필드의 검증 결과입니다
type FieldState struct {
	Invalid bool     `json:"invalid"`
	Errors  []string `json:"errors"`
}

// RunValidators 모든 검증기를 순서대로 실행하고 실패한 메시지를 모읍니다.
// 앞선 실패가 있어도 중단하지 않습니다.
func RunValidators(snapshot Snapshot, validators []Validator) FieldState {
	errors := make([]string, 0)
	for _, validator := range validators {
		if !validator.Validate(snapshot) {
			errors = append(errors, validator.ErrorMessage)
		}
	}
	return FieldState{
		Invalid: len(errors) > 0,
		Errors:  errors,
	}
}

// HTML 오류 슬롯에 들어갈 목록 마크업을 만듭니다. 오류가 없으면 빈 문자열입니다
func (state FieldState) HTML() string {
	if len(state.Errors) == 0 {
		return ""
	}

	builder := performance.GetStringBuilder()
	defer performance.PutStringBuilder(builder)

	builder.WriteString("<ul>")
	for _, message := range state.Errors {
		builder.WriteString("<li>")
		builder.WriteString(html.EscapeString(message))
		builder.WriteString("</li>")
	}
	builder.WriteString("</ul>")
	return builder.String()
}
