package constants

// 비밀번호 정책
const (
	MinPasswordLength = 8
	MaxPasswordLength = 30
)

// 비밀번호에 허용되는 특수문자 집합
const PasswordSpecialCharacters = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// 아이디에 허용되는 문자 (영문, 숫자 외)
const UsernameExtraCharacters = "@.+-_"

// 폼 필드 이름
const (
	FieldEmail           = "email"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// 폼 이름
const (
	FormSignup               = "signup"
	FormUpdateAccount        = "update-account"
	FormLogin                = "login"
	FormResetPassword        = "reset-password"
	FormRequestResetPassword = "request-reset-password"
)

// 필드 이벤트
const (
	EventFocus = "focus"
	EventInput = "input"
)

// 제어 문자 관련
const (
	ControlCharTab = 9
	ControlCharLF  = 10
	ControlCharCR  = 13
	ControlCharMin = 32
)
