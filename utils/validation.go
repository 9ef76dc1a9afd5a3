package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/ssugameworks/pajelingo/constants"
)

// IsValidUsername 아이디가 영문, 숫자, @/./+/-/_ 로만 구성되었는지 확인합니다.
// 빈 문자열은 통과합니다 (필수 여부는 별도 검증기가 담당).
func IsValidUsername(username string) bool {
	for _, r := range username {
		if isASCIILetter(r) || isASCIIDigit(r) {
			continue
		}
		if !strings.ContainsRune(constants.UsernameExtraCharacters, r) {
			return false
		}
	}
	return true
}

// HasLetter 문자열에 영문자가 하나 이상 있는지 확인합니다
func HasLetter(text string) bool {
	return strings.IndexFunc(text, isASCIILetter) >= 0
}

// HasDigit 문자열에 숫자가 하나 이상 있는지 확인합니다
func HasDigit(text string) bool {
	return strings.IndexFunc(text, isASCIIDigit) >= 0
}

// HasSpecialCharacter 문자열에 허용된 특수문자가 하나 이상 있는지 확인합니다
func HasSpecialCharacter(text string) bool {
	return strings.ContainsAny(text, constants.PasswordSpecialCharacters)
}

// IsLengthBetween UTF-16 코드 단위 수가 [min, max] 범위인지 확인합니다.
// 브라우저의 문자열 길이와 같도록 BMP 밖의 문자(이모지 등)는 2로 셉니다.
func IsLengthBetween(text string, min, max int) bool {
	n := UTF16Length(text)
	return n >= min && n <= max
}

// UTF16Length UTF-16 으로 인코딩했을 때의 코드 단위 수
func UTF16Length(text string) int {
	n := 0
	for _, r := range text {
		if r > 0xFFFF {
			n += 2
			continue
		}
		n++
	}
	return n
}

// IsBlank 공백만 있거나 빈 문자열인지 확인합니다
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// TruncateString 문자열 처리
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= len(constants.TruncateIndicator) {
		return constants.TruncateIndicator[:maxLen]
	}
	cut := maxLen - len(constants.TruncateIndicator)
	// 여러 바이트 문자의 중간에서 자르지 않습니다
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + constants.TruncateIndicator
}

// SanitizeLogValue 로그에 남길 외부 입력에서 제어 문자를 제거합니다
func SanitizeLogValue(s string) string {
	var cleaned strings.Builder
	for _, r := range s {
		if r >= constants.ControlCharMin || r == constants.ControlCharTab {
			cleaned.WriteRune(r)
		}
	}
	return strings.TrimSpace(cleaned.String())
}
