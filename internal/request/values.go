package request

import (
	"net/url"
	"strings"
)

type Param struct {
	Key   string
	Value string
}

// Values is an insertion-ordered query parameter list. Unlike url.Values it
// keeps the order parameters were added in, so encoded queries are reproducible.
type Values []Param

func (v Values) Get(key string) (string, bool) {
	for _, p := range v {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func (v Values) Keys() []string {
	keys := make([]string, len(v))
	for i, p := range v {
		keys[i] = p.Key
	}
	return keys
}

// Encode renders key1=value1&key2=value2 with query-escaped values.
func (v Values) Encode() string {
	var sb strings.Builder
	for i, p := range v {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// set overwrites key in place, or appends it.
func (v *Values) set(key, value string) {
	for i := range *v {
		if (*v)[i].Key == key {
			(*v)[i].Value = value
			return
		}
	}
	*v = append(*v, Param{Key: key, Value: value})
}
