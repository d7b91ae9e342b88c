package cache

import (
	"strconv"
	"strings"
	"time"
)

const (
	keySeparator = "::"
	nullKeyParam = "null"
	dateLayout   = "2006-01-02"
)

// requestKey derives the canonical request signature for one call:
// the method name followed by every parameter in call order, joined with
// "::". Parameters must be rendered with the helpers below so the same
// call always produces the same key.
func requestKey(op Operation, params ...string) string {
	return strings.Join(append([]string{op.String()}, params...), keySeparator)
}

// intKeyParam renders an integer parameter.
func intKeyParam(v int) string {
	return strconv.Itoa(v)
}

// dateKeyParam renders a date parameter as YYYY-MM-DD.
func dateKeyParam(t time.Time) string {
	return t.Format(dateLayout)
}

// optionalDateKeyParam renders a nullable date; absent dates appear as the
// literal "null" in the signature.
func optionalDateKeyParam(t *time.Time) string {
	if t == nil {
		return nullKeyParam
	}
	return t.Format(dateLayout)
}
