package utils

import (
	"strings"
	"testing"
)

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		desc     string
	}{
		// Valid cases
		{"good_user.1", true, "underscore and dot"},
		{"john@doe", true, "at sign"},
		{"a+b-c", true, "plus and hyphen"},
		{"UPPER123", true, "uppercase and digits"},
		{"", true, "empty string is left to the required rule"},

		// Invalid cases
		{"bad user!", false, "space and exclamation mark"},
		{"user,name", false, "comma"},
		{"user/name", false, "slash"},
		{"user<>name", false, "brackets"},
		{"이름", false, "non-ASCII letters"},
		{"user:name", false, "colon"},
		{"user=name", false, "equals sign"},
		{"user;name", false, "semicolon"},
		{"user?name", false, "question mark"},
		{"user[name]", false, "square brackets"},
		{"user\\name", false, "backslash"},
		{"user^name", false, "caret"},
	}

	for _, test := range tests {
		result := IsValidUsername(test.input)
		if result != test.expected {
			t.Errorf("IsValidUsername(%q) = %v, expected %v (%s)", test.input, result, test.expected, test.desc)
		}
	}
}

func TestPasswordCharacterClasses(t *testing.T) {
	tests := []struct {
		input   string
		letter  bool
		digit   bool
		special bool
		desc    string
	}{
		{"abc12345", true, true, false, "letters and digits"},
		{"abc!2345", true, true, true, "all classes"},
		{"12345678", false, true, false, "digits only"},
		{"!!!!", false, false, true, "special only"},
		{"", false, false, false, "empty"},
		{"`~", false, false, true, "backtick and tilde"},
		{"a\\b", true, false, true, "backslash"},
	}

	for _, test := range tests {
		if got := HasLetter(test.input); got != test.letter {
			t.Errorf("HasLetter(%q) = %v, expected %v (%s)", test.input, got, test.letter, test.desc)
		}
		if got := HasDigit(test.input); got != test.digit {
			t.Errorf("HasDigit(%q) = %v, expected %v (%s)", test.input, got, test.digit, test.desc)
		}
		if got := HasSpecialCharacter(test.input); got != test.special {
			t.Errorf("HasSpecialCharacter(%q) = %v, expected %v (%s)", test.input, got, test.special, test.desc)
		}
	}
}

func TestIsLengthBetween(t *testing.T) {
	if !IsLengthBetween("abcdefgh", 8, 30) {
		t.Error("8 characters should be within [8,30]")
	}
	if IsLengthBetween("abcdefg", 8, 30) {
		t.Error("7 characters should be outside [8,30]")
	}
	if IsLengthBetween(strings.Repeat("a", 31), 8, 30) {
		t.Error("31 characters should be outside [8,30]")
	}
	if !IsLengthBetween("éééééééé", 8, 30) {
		t.Error("length should be counted in characters, not bytes")
	}
	// BMP 밖의 문자는 브라우저처럼 2로 셉니다
	if !IsLengthBetween("abcd😀😀", 8, 30) {
		t.Error("two emoji plus four letters should count as 8")
	}
	if IsLengthBetween("abc😀😀", 8, 30) {
		t.Error("two emoji plus three letters should count as 7")
	}
	if !IsLengthBetween("abcdefghijklmnopqrstuvwxyz😀😀", 8, 30) {
		t.Error("26 letters plus two emoji should count as 30")
	}
	if IsLengthBetween("abcdefghijklmnopqrstuvwxyzA😀😀", 8, 30) {
		t.Error("27 letters plus two emoji should count as 31")
	}
}

func TestUTF16Length(t *testing.T) {
	if got := UTF16Length("é😀a"); got != 4 {
		t.Errorf("UTF16Length = %d, expected 4", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is a long string", 10, "this is..."},
		{"abc", 2, ".."},
		{"가나다라", 8, "가..."},
		{"ab가나", 6, "ab..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%q, %d) = %q, expected %q", test.input, test.maxLen, result, test.expected)
		}
	}
}

func TestSanitizeLogValue(t *testing.T) {
	if got := SanitizeLogValue("  English\n\r "); got != "English" {
		t.Errorf("SanitizeLogValue should drop control characters, got %q", got)
	}
}
