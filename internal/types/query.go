package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// Query is anything that can render itself as a URL query string. The string
// is appended to the search URL verbatim, so it must already be encoded.
type Query interface {
	ToQueryString() string
}

// QueryString is a pre-encoded query string used as-is.
type QueryString string

// ToQueryString implements Query.
func (q QueryString) ToQueryString() string { return string(q) }

// Common search parameter names understood by the search server.
const (
	ParamQuery           = "q"
	ParamOffset          = "start"
	ParamNumResults      = "rows"
	ParamFieldsToReturn  = "fl"
	ParamFilterQuery     = "fq"
	ParamSort            = "sort"
	ParamHighlight       = "hl"
	ParamHighlightFields = "hl.fl"
)

// QueryParams is a multi-valued parameter set. Keys are encoded in sorted
// order so the same params always produce the same string.
type QueryParams struct {
	values url.Values
}

// NewQueryParams returns an empty parameter set.
func NewQueryParams() *QueryParams {
	return &QueryParams{values: url.Values{}}
}

// SetParam replaces all values of name.
func (p *QueryParams) SetParam(name string, values ...string) *QueryParams {
	p.values[name] = append([]string(nil), values...)
	return p
}

// AddParam appends values to name.
func (p *QueryParams) AddParam(name string, values ...string) *QueryParams {
	p.values[name] = append(p.values[name], values...)
	return p
}

// Param returns the values of name.
func (p *QueryParams) Param(name string) []string {
	return p.values[name]
}

func (p *QueryParams) SetQuery(q string) *QueryParams { return p.SetParam(ParamQuery, q) }

func (p *QueryParams) SetOffset(offset int) *QueryParams {
	return p.SetParam(ParamOffset, strconv.Itoa(offset))
}

func (p *QueryParams) SetNumResults(n int) *QueryParams {
	return p.SetParam(ParamNumResults, strconv.Itoa(n))
}

func (p *QueryParams) SetFieldsToReturn(fields ...string) *QueryParams {
	return p.SetParam(ParamFieldsToReturn, strings.Join(fields, ","))
}

func (p *QueryParams) AddFilterQuery(fq string) *QueryParams {
	return p.AddParam(ParamFilterQuery, fq)
}

func (p *QueryParams) SetSort(sort string) *QueryParams { return p.SetParam(ParamSort, sort) }

// SetHighlight enables highlighting over the given fields.
func (p *QueryParams) SetHighlight(fields ...string) *QueryParams {
	p.SetParam(ParamHighlight, "true")
	if len(fields) > 0 {
		p.SetParam(ParamHighlightFields, strings.Join(fields, ","))
	}
	return p
}

// ToQueryString implements Query.
func (p *QueryParams) ToQueryString() string {
	return p.values.Encode()
}

// String is used in error messages.
func (p *QueryParams) String() string { return p.ToQueryString() }

// StructQuery is a query encoded from a struct with `url` tags.
type StructQuery struct {
	encoded string
}

// NewStructQuery encodes v eagerly so that ToQueryString cannot fail later.
func NewStructQuery(v any) (StructQuery, error) {
	vals, err := query.Values(v)
	if err != nil {
		return StructQuery{}, fmt.Errorf("encode query: %w", err)
	}
	return StructQuery{encoded: vals.Encode()}, nil
}

// ToQueryString implements Query.
func (q StructQuery) ToQueryString() string { return q.encoded }
