package performance

import (
	"bytes"
	"strings"
	"sync"

	"github.com/ssugameworks/pajelingo/constants"
)

var (
	// BufferPool 프래그먼트 렌더링용 버퍼 풀
	BufferPool = sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 0, constants.DefaultBufferSize))
		},
	}

	// StringBuilderPool 문자열 빌더 풀 (오류 목록 마크업 생성용)
	StringBuilderPool = sync.Pool{
		New: func() interface{} {
			return &strings.Builder{}
		},
	}
)

// GetBuffer 재사용 가능한 버퍼를 가져옵니다
func GetBuffer() *bytes.Buffer {
	buffer := BufferPool.Get().(*bytes.Buffer)
	buffer.Reset()
	return buffer
}

// PutBuffer 버퍼를 풀에 반환합니다
func PutBuffer(buffer *bytes.Buffer) {
	// 너무 커진 버퍼는 버림
	if buffer.Cap() <= constants.MaxPooledBuffer {
		BufferPool.Put(buffer)
	}
}

// GetStringBuilder 재사용 가능한 문자열 빌더를 가져옵니다
func GetStringBuilder() *strings.Builder {
	builder := StringBuilderPool.Get().(*strings.Builder)
	builder.Reset()
	return builder
}

// PutStringBuilder 문자열 빌더를 풀에 반환합니다
func PutStringBuilder(builder *strings.Builder) {
	if builder.Cap() <= constants.MaxPooledBuffer {
		StringBuilderPool.Put(builder)
	}
}
