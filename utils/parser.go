package utils

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/rdpitts/minfraud/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// fieldAttr maps TransactionAttributes struct fields back to raw attribute names.
var fieldAttr = map[string]string{
	"IP":            types.AttrIP,
	"City":          types.AttrCity,
	"State":         types.AttrState,
	"Postal":        types.AttrPostal,
	"Country":       types.AttrCountry,
	"Email":         types.AttrEmail,
	"TransactionID": types.AttrTransactionID,
	"RequestedType": types.AttrRequestedType,
	"Timeout":       types.AttrTimeout,
	"ServiceRegion": types.AttrServiceRegion,
}

type stringField struct {
	attr string
	dest func(*types.TransactionAttributes) *string
}

// stringFields lists every string-typed attribute in the order the type
// rule reports them.
var stringFields = []stringField{
	{types.AttrCity, func(a *types.TransactionAttributes) *string { return &a.City }},
	{types.AttrState, func(a *types.TransactionAttributes) *string { return &a.State }},
	{types.AttrPostal, func(a *types.TransactionAttributes) *string { return &a.Postal }},
	{types.AttrCountry, func(a *types.TransactionAttributes) *string { return &a.Country }},
	{types.AttrIP, func(a *types.TransactionAttributes) *string { return &a.IP }},
	{types.AttrEmail, func(a *types.TransactionAttributes) *string { return &a.Email }},
	{types.AttrTransactionID, func(a *types.TransactionAttributes) *string { return &a.TransactionID }},
	{types.AttrServiceRegion, func(a *types.TransactionAttributes) *string { return &a.ServiceRegion }},
}

// ParseAttributes validates raw caller input and normalizes it into
// TransactionAttributes. Rules apply in order: required fields, string
// types, numeric timeout, service tier. The first failing rule wins.
func ParseAttributes(raw types.RawAttributes) (*types.TransactionAttributes, error) {
	attrs := &types.TransactionAttributes{}

	var typeErr error
	mistyped := make(map[string]bool)

	for _, f := range stringFields {
		v, ok := raw[f.attr]
		if !ok || v == nil {
			continue
		}
		s, ok := asString(v)
		if !ok {
			mistyped[f.attr] = true
			if typeErr == nil {
				typeErr = types.InvalidAttributeType(f.attr, "must be a string")
			}
			continue
		}
		*f.dest(attrs) = s
	}

	if v, ok := raw[types.AttrRequestedType]; ok && v != nil {
		s, ok := asString(v)
		if !ok {
			mistyped[types.AttrRequestedType] = true
			if typeErr == nil {
				typeErr = types.InvalidAttributeType(types.AttrRequestedType, "must be a string")
			}
		} else {
			attrs.RequestedType = types.ServiceTier(s)
		}
	}

	var timeoutErr error
	if v, ok := raw[types.AttrTimeout]; ok && v != nil {
		d, err := ParseTimeout(v)
		if err != nil {
			timeoutErr = err
		} else {
			attrs.Timeout = d
		}
	}

	var tagErrs validator.ValidationErrors
	if err := validate.Struct(attrs); err != nil && !errors.As(err, &tagErrs) {
		return nil, err
	}

	for _, fe := range tagErrs {
		attr := fieldAttr[fe.Field()]
		if fe.Tag() == "required" && !mistyped[attr] {
			return nil, types.MissingRequiredAttribute(attr)
		}
	}
	if typeErr != nil {
		return nil, typeErr
	}
	if timeoutErr != nil {
		return nil, timeoutErr
	}
	for _, fe := range tagErrs {
		switch fe.Tag() {
		case "oneof":
			return nil, types.InvalidServiceTier(string(attrs.RequestedType))
		case "gte":
			return nil, types.InvalidTimeout("must not be negative")
		}
	}

	return attrs, nil
}

// asString accepts string values and named string types such as ServiceTier.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
