package types

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExValues is a generic container for HTTP request parameters.
//
// Design notes:
//
//   - query and header parameters live in separate namespaces.
//   - order keeps the first-seen order of keys, per namespace.
//   - EncodeQuery preserves key order and value order.
//   - EncodeJSON / EncodeMap / EncodeHeader share the same semantic model.
//   - Set*/Add* accept arbitrary Go values and stringify them consistently,
//     so the encoded form used for signing always matches the wire form.
type ExValues struct {
	query  *orderedValues
	header *orderedValues
}

type orderedValues struct {
	order  []string
	values map[string][]string
}

func newOrderedValues() *orderedValues {
	return &orderedValues{
		order:  make([]string, 0),
		values: make(map[string][]string),
	}
}

// NewExValues creates a new ExValues instance.
func NewExValues() *ExValues {
	return &ExValues{
		query:  newOrderedValues(),
		header: newOrderedValues(),
	}
}

func (o *orderedValues) set(key string, values []string) {
	if _, exists := o.values[key]; !exists {
		o.order = append(o.order, key)
	}
	o.values[key] = values
}

func (o *orderedValues) add(key string, values []string) {
	if _, exists := o.values[key]; !exists {
		o.order = append(o.order, key)
	}
	o.values[key] = append(o.values[key], values...)
}

// stringify converts an arbitrary value into its wire representation.
// Slices expand into one string per element.
func stringify(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case bool:
		return []string{strconv.FormatBool(v)}
	case int:
		return []string{strconv.Itoa(v)}
	case int64:
		return []string{strconv.FormatInt(v, 10)}
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}
	case decimal.Decimal:
		return []string{v.String()}
	case ExDecimal:
		if !v.Present() {
			return nil
		}
		return []string{v.String()}
	case time.Time:
		return []string{v.UTC().Format(time.RFC3339Nano)}
	case json.RawMessage:
		return []string{string(v)}
	}

	// generic slice expansion
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, stringify(rv.Index(i).Interface())...)
		}
		return out
	}

	return []string{fmt.Sprintf("%v", value)}
}

// SetQuery sets a query parameter, replacing any existing values.
func (v *ExValues) SetQuery(key string, value any) {
	v.query.set(key, stringify(value))
}

// AddQuery appends a query parameter value.
func (v *ExValues) AddQuery(key string, value any) {
	v.query.add(key, stringify(value))
}

// SetHeader sets a header value, replacing any existing values.
func (v *ExValues) SetHeader(key string, value any) {
	v.header.set(key, stringify(value))
}

// AddHeader appends a header value.
func (v *ExValues) AddHeader(key string, value any) {
	v.header.add(key, stringify(value))
}

// EncodeQuery encodes query parameters as a URL query string.
// The output preserves the original insertion order of keys.
func (v *ExValues) EncodeQuery() string {
	if len(v.query.order) == 0 {
		return ""
	}

	var buf strings.Builder
	for _, key := range v.query.order {
		vs, ok := v.query.values[key]
		if !ok {
			continue
		}
		keyEscaped := url.QueryEscape(key)
		for _, value := range vs {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(keyEscaped)
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(value))
		}
	}
	return buf.String()
}

// EncodeMap encodes query parameters into a map representation.
//
//   - single value    -> string
//   - multiple values -> []string
func (v *ExValues) EncodeMap() map[string]any {
	return v.query.encodeMap()
}

// EncodeHeader encodes header parameters into a map representation,
// with the same single/multi value convention as EncodeMap.
func (v *ExValues) EncodeHeader() map[string]any {
	return v.header.encodeMap()
}

func (o *orderedValues) encodeMap() map[string]any {
	m := make(map[string]any, len(o.values))
	for _, key := range o.order {
		vs := o.values[key]
		if len(vs) == 1 {
			m[key] = vs[0]
		} else if len(vs) > 1 {
			m[key] = vs
		}
	}
	return m
}

// EncodeJSON encodes query parameters into a JSON byte slice.
func (v *ExValues) EncodeJSON() ([]byte, error) {
	return json.Marshal(v.EncodeMap())
}

// JoinPath joins the encoded query string to the given path.
func (v *ExValues) JoinPath(path string) string {
	query := v.EncodeQuery()
	if query == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + query
	}
	return path + "?" + query
}

// HasQuery reports whether the given query key exists.
func (v *ExValues) HasQuery(key string) bool {
	_, ok := v.query.values[key]
	return ok
}

// GetQuery returns the first value associated with the given query key.
func (v *ExValues) GetQuery(key string) string {
	if vs := v.query.values[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Reset clears all stored parameters, both query and header.
func (v *ExValues) Reset() {
	v.query = newOrderedValues()
	v.header = newOrderedValues()
}
