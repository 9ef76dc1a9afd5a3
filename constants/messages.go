package constants

// 검증 오류 메시지
const (
	ErrorRequiredField            = "This field is required."
	ErrorEmailFormat              = "Enter a valid email address."
	ErrorNotConfirmedPassword     = "The passwords do not match."
	ErrorLetterPassword           = "The password must have at least one letter."
	ErrorDigitPassword            = "The password must have at least one digit."
	ErrorSpecialCharacterPassword = "The password must have at least one special character."
	ErrorLengthPassword           = "The password must have a length between 8 and 30."
	ErrorInvalidUsername          = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
)

// 위젯 피드백 메시지
const (
	MsgConnectionError = "Connection error"
	MsgLoading         = "Please, wait..."
	MsgNoUserScores    = "It seems that you haven't played games in this language yet..."
	MsgEmptyRankings   = "It seems that no one has played this game yet... Be the first to play it and get ahead the other competitors!"
)

// 피드백 이미지
const (
	ErrorImagePath   = "/static/images/error.jpg"
	LoadingImagePath = "/static/images/loading.gif"
)

// 피드백 컨테이너 클래스
var FeedbackClassList = []string{"row", "justify-content-center"}

// 사용자에게 보여줄 오류 메시지
const (
	UserMsgUnavailable = "The service is temporarily unavailable. Please try again later."
	UserMsgSystem      = "Something went wrong. Please try again later."
	UserMsgUnknownForm = "Unknown form."
)
