package transport

import (
	"net/http"
	"net/url"
	"strings"
)

// Param is a single request parameter. Params keep insertion order, which
// is the order they are written to the query string or form body.
type Param struct {
	Key   string
	Value string
}

type Params []Param

// P builds Params from alternating key/value strings. A trailing key
// without a value is ignored.
func P(kv ...string) Params {
	params := make(Params, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params = append(params, Param{Key: kv[i], Value: kv[i+1]})
	}
	return params
}

// Get returns the first value stored under key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// IsReadMethod reports whether method carries its parameters in the URL.
func IsReadMethod(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead:
		return true
	default:
		return false
	}
}

// BuildURL appends params to rawURL as "k1=v1&k2=v2" in insertion order.
// A nil params leaves the URL untouched.
func BuildURL(rawURL string, params Params) string {
	if params == nil {
		return rawURL
	}

	var b strings.Builder
	b.WriteString(rawURL)

	if strings.Contains(rawURL, "?") {
		if !strings.HasSuffix(rawURL, "?") && !strings.HasSuffix(rawURL, "&") && len(params) > 0 {
			b.WriteByte('&')
		}
	} else {
		b.WriteByte('?')
	}

	for i, param := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}

	return b.String()
}
