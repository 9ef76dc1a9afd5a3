package utils

import (
	"time"

	"github.com/ssugameworks/pajelingo/constants"
)

// FormatDateTime 날짜와 시간을 포맷팅합니다
func FormatDateTime(dateTime time.Time) string {
	return dateTime.Format(constants.DateTimeFormat)
}
