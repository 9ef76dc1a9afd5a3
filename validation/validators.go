package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/utils"
)

var (
	formatValidator     *validator.Validate
	formatValidatorOnce sync.Once
)

func getFormatValidator() *validator.Validate {
	formatValidatorOnce.Do(func() {
		formatValidator = validator.New()
	})
	return formatValidator
}

// Required 값이 비어 있지 않은지 검사합니다
func Required(field string) Validator {
	return Validator{
		Name: "required",
		Validate: func(snapshot Snapshot) bool {
			return snapshot.Value(field) != ""
		},
		ErrorMessage: constants.ErrorRequiredField,
	}
}

// EmailFormat 이메일 형식을 검사합니다. 빈 값은 형식 오류가 아닙니다
func EmailFormat(field string) Validator {
	return Validator{
		Name: "email",
		Validate: func(snapshot Snapshot) bool {
			return getFormatValidator().Var(snapshot.Value(field), "omitempty,email") == nil
		},
		ErrorMessage: constants.ErrorEmailFormat,
	}
}

// EmailValidators 이메일 필드 규칙
func EmailValidators(field string) []Validator {
	return []Validator{
		Required(field),
		EmailFormat(field),
	}
}

// UsernameValidators 아이디 필드 규칙
func UsernameValidators(field string) []Validator {
	return []Validator{
		Required(field),
		{
			Name: "username_charset",
			Validate: func(snapshot Snapshot) bool {
				return utils.IsValidUsername(snapshot.Value(field))
			},
			ErrorMessage: constants.ErrorInvalidUsername,
		},
	}
}

// PasswordValidators 비밀번호 필드 규칙
func PasswordValidators(field string) []Validator {
	return []Validator{
		Required(field),
		{
			Name: "password_length",
			Validate: func(snapshot Snapshot) bool {
				return utils.IsLengthBetween(snapshot.Value(field), constants.MinPasswordLength, constants.MaxPasswordLength)
			},
			ErrorMessage: constants.ErrorLengthPassword,
		},
		{
			Name: "password_digit",
			Validate: func(snapshot Snapshot) bool {
				return utils.HasDigit(snapshot.Value(field))
			},
			ErrorMessage: constants.ErrorDigitPassword,
		},
		{
			Name: "password_letter",
			Validate: func(snapshot Snapshot) bool {
				return utils.HasLetter(snapshot.Value(field))
			},
			ErrorMessage: constants.ErrorLetterPassword,
		},
		{
			Name: "password_special",
			Validate: func(snapshot Snapshot) bool {
				return utils.HasSpecialCharacter(snapshot.Value(field))
			},
			ErrorMessage: constants.ErrorSpecialCharacterPassword,
		},
	}
}

// ConfirmPasswordValidators 비밀번호 확인 필드 규칙. 비교는 매번 두 필드의 현재 값으로 합니다
func ConfirmPasswordValidators(passwordField, confirmField string) []Validator {
	return []Validator{
		Required(confirmField),
		{
			Name: "password_match",
			Validate: func(snapshot Snapshot) bool {
				return snapshot.Value(passwordField) == snapshot.Value(confirmField)
			},
			ErrorMessage: constants.ErrorNotConfirmedPassword,
		},
	}
}
