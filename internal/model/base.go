package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLen = 9

// NewID builds "<prefix>_<unix millis>_<random>". The random part keeps ids unique
// when several records are created within the same millisecond.
func NewID(prefix string) string {
	return NewIDWithSeparator(prefix, "_")
}

func NewIDWithSeparator(prefix, sep string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(sep)
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteString(sep)
	b.WriteString(randomSuffix())
	return b.String()
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
}
