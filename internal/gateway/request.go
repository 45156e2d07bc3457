package gateway

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Request addresses one API resource: /{Resource}[/{ID}][/{Sub}]?{Query}.
type Request struct {
	Resource string
	ID       int // zero means the collection
	Sub      string
	Query    Params
}

// Path renders the request path relative to the API base.
func (r Request) Path() string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(r.Resource)
	if r.ID > 0 {
		b.WriteString("/")
		b.WriteString(strconv.Itoa(r.ID))
	}
	if r.Sub != "" {
		b.WriteString("/")
		b.WriteString(r.Sub)
	}
	return b.String()
}

// Params are optional query parameters. Nil values, including typed nil
// pointers, are left out of the request.
type Params map[string]any

// Encode renders the non-nil parameters as a query string.
func (p Params) Encode() string {
	values := url.Values{}
	for key, raw := range p {
		if v, ok := formatParam(raw); ok {
			values.Set(key, v)
		}
	}
	return values.Encode()
}

func formatParam(raw any) (string, bool) {
	if raw == nil {
		return "", false
	}
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		raw = rv.Elem().Interface()
	}

	switch v := raw.(type) {
	case string:
		return v, v != ""
	case int:
		return strconv.Itoa(v), true
	case fmt.Stringer:
		s := v.String()
		return s, s != ""
	default:
		return fmt.Sprint(v), true
	}
}
