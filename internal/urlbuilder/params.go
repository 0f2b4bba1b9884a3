package urlbuilder

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
)

// Param is one query parameter with all its values. A key without values
// is a bare key such as "flag" in "?flag&q=1".
type Param struct {
	Key    string
	Values []string
}

// Params is an ordered query parameter mapping. Keys are unique.
type Params []Param

// ParseQuery parses a raw query string keeping the order in which keys first appear.
// Malformed escapes are kept verbatim.
func ParseQuery(raw string) Params {
	var params Params
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		key, value, hasValue := strings.Cut(pair, "=")
		key = unescape(key)
		if !hasValue {
			params = params.addBare(key)
			continue
		}
		params = params.Add(key, unescape(value))
	}
	return params
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// ParamsFromValues converts url.Values, sorting keys for a stable order.
func ParamsFromValues(values url.Values) Params {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make(Params, 0, len(keys))
	for _, k := range keys {
		params = append(params, Param{Key: k, Values: append([]string(nil), values[k]...)})
	}
	return params
}

// ParamsFromStruct encodes a struct with `url:"..."` tags into Params with sorted keys.
func ParamsFromStruct(v any) (Params, error) {
	values, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("encoding query params: %w", err)
	}
	return ParamsFromValues(values), nil
}

// Get returns the first value of key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key && len(param.Values) > 0 {
			return param.Values[0], true
		}
	}
	return "", false
}

// Set returns a copy of p where key has the single value v. An existing key
// keeps its position; a new key is appended.
func (p Params) Set(key, v string) Params {
	out := p.Clone()
	for i := range out {
		if out[i].Key == key {
			out[i].Values = []string{v}
			return out
		}
	}
	return append(out, Param{Key: key, Values: []string{v}})
}

// Add returns a copy of p with v appended to the values of key.
func (p Params) Add(key, v string) Params {
	out := p.Clone()
	for i := range out {
		if out[i].Key == key {
			out[i].Values = append(out[i].Values, v)
			return out
		}
	}
	return append(out, Param{Key: key, Values: []string{v}})
}

// addBare appends key without values unless it is already present.
func (p Params) addBare(key string) Params {
	for _, param := range p {
		if param.Key == key {
			return p
		}
	}
	return append(p, Param{Key: key})
}

// Del returns a copy of p without key.
func (p Params) Del(key string) Params {
	out := make(Params, 0, len(p))
	for _, param := range p {
		if param.Key != key {
			out = append(out, Param{Key: param.Key, Values: append([]string(nil), param.Values...)})
		}
	}
	return out
}

// Merge returns a copy of p where every key of other replaces the values of
// the same key in place, or is appended.
func (p Params) Merge(other Params) Params {
	out := p.Clone()
	for _, param := range other {
		replaced := false
		for i := range out {
			if out[i].Key == param.Key {
				out[i].Values = append([]string(nil), param.Values...)
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, Param{Key: param.Key, Values: append([]string(nil), param.Values...)})
		}
	}
	return out
}

// Clone returns a deep copy.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for i, param := range p {
		out[i] = Param{Key: param.Key, Values: append([]string(nil), param.Values...)}
	}
	return out
}

// Encode renders the params in order as key=value pairs joined by '&'.
// Bare keys are written without '='.
func (p Params) Encode() string {
	var b strings.Builder
	for _, param := range p {
		if len(param.Values) == 0 {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(param.Key))
			continue
		}
		for _, v := range param.Values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(param.Key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
