// Package response decodes the semicolon-delimited key=value body returned
// by the minFraud legacy endpoint into typed attributes.
package response

import (
	"bytes"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rdpitts/minfraud/types"
	"github.com/rdpitts/minfraud/utils"
	"github.com/shopspring/decimal"
)

// Response is a decoded minFraud answer. It is never mutated after Decode
// returns.
type Response struct {
	statusCode int
	attrs      map[string]Value
}

// Decode parses a raw body received with the given HTTP status. charset
// names the body encoding; empty means ISO-8859-1.
func Decode(statusCode int, body []byte, charset string) (*Response, error) {
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, types.ConnectionError(statusCode, nil)
	}

	attrs := make(map[string]Value)
	body = bytes.TrimRight(body, "\r\n")

	for _, record := range bytes.Split(body, []byte{';'}) {
		if len(record) == 0 {
			continue
		}

		rawKey, rawValue, _ := bytes.Cut(record, []byte{'='})
		if len(rawKey) == 0 {
			continue
		}

		name, err := utils.DecodeText(rawKey, charset)
		if err != nil {
			return nil, types.DecodeError(string(rawKey), err.Error())
		}
		key := NormalizeKey(name)

		v, err := coerce(key, rawValue, charset)
		if err != nil {
			return nil, err
		}
		attrs[key] = v
	}

	if code, ok := attrs[ErrorKey].AsString(); ok && IsErrorCode(code) {
		return nil, types.ServiceError(code)
	}

	return &Response{statusCode: statusCode, attrs: attrs}, nil
}

func coerce(key string, raw []byte, charset string) (Value, error) {
	switch KindOf(key) {
	case KindBool:
		if len(raw) == 0 {
			return Value{}, nil
		}
		b, known := booleanLiterals[string(raw)]
		if !known {
			return Value{}, types.DecodeError(key, strconv.Quote(string(raw))+" is not a boolean literal")
		}
		if b == nil {
			return Value{}, nil
		}
		return BoolValue(*b), nil
	case KindInt:
		return IntValue(parseLeadingInt(string(raw))), nil
	case KindFloat:
		f, text := parseLeadingFloat(string(raw))
		return floatText(f, text), nil
	}

	if len(raw) == 0 {
		return Value{}, nil
	}
	s, err := utils.DecodeText(raw, charset)
	if err != nil {
		return Value{}, types.DecodeError(key, err.Error())
	}
	return StringValue(s), nil
}

var (
	leadingInt   = regexp.MustCompile(`^\s*[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)
)

// parseLeadingInt reads the integer prefix of s; text without one is 0.
func parseLeadingInt(s string) int64 {
	m := leadingInt.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(m), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseLeadingFloat reads the decimal prefix of s and returns it with the
// matched text; text without one is 0.
func parseLeadingFloat(s string) (float64, string) {
	m := strings.TrimSpace(leadingFloat.FindString(s))
	if m == "" {
		return 0, ""
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, ""
	}
	return f, m
}

// Get looks up an attribute by name and returns its Go value. Unknown names
// and decoded nulls both yield nil.
func (r *Response) Get(name string) any {
	v, _ := r.Lookup(name)
	return v.Interface()
}

// Lookup returns the attribute and whether the service sent it at all, so
// an absent field can be told apart from a decoded null.
func (r *Response) Lookup(name string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.attrs[NormalizeKey(name)]
	return v, ok
}

// Keys returns the decoded attribute names in sorted order.
func (r *Response) Keys() []string {
	keys := make([]string, 0, len(r.attrs))
	for k := range r.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of decoded attributes.
func (r *Response) Len() int { return len(r.attrs) }

// StatusCode returns the HTTP status the body arrived with.
func (r *Response) StatusCode() int { return r.statusCode }

func (r *Response) float(name string) float64 {
	f, _ := r.attrs[name].AsFloat()
	return f
}

// RiskScore is the likelihood, in percent, that the transaction is fraudulent.
func (r *Response) RiskScore() float64 { return r.float("risk_score") }

// Score is the legacy 0-10 fraud score.
func (r *Response) Score() float64 { return r.float("score") }

// QueriesRemaining is the number of lookups left on the license.
func (r *Response) QueriesRemaining() int64 {
	n, _ := r.attrs["queries_remaining"].AsInt()
	return n
}

// Warning returns the warning code carried in err, if any.
func (r *Response) Warning() string {
	code, ok := r.attrs[ErrorKey].AsString()
	if ok && IsWarningCode(code) {
		return code
	}
	return ""
}

// RiskScoreAbove compares the risk score, as sent by the service, to threshold.
func (r *Response) RiskScoreAbove(threshold decimal.Decimal) bool {
	d, ok := r.attrs["risk_score"].Decimal()
	return ok && d.GreaterThan(threshold)
}
