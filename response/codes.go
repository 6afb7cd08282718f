package response

// Codes the service places in the err field. Error codes fail the decode,
// warning codes are kept as an ordinary attribute.
const (
	ErrInvalidLicenseKey  = "INVALID_LICENSE_KEY"
	ErrIPRequired         = "IP_REQUIRED"
	ErrLicenseRequired    = "LICENSE_REQUIRED"
	ErrCountryRequired    = "COUNTRY_REQUIRED"
	ErrMaxRequestsReached = "MAX_REQUESTS_REACHED"

	WarnIPNotFound         = "IP_NOT_FOUND"
	WarnCountryNotFound    = "COUNTRY_NOT_FOUND"
	WarnCityNotFound       = "CITY_NOT_FOUND"
	WarnCityRequired       = "CITY_REQUIRED"
	WarnPostalCodeRequired = "POSTAL_CODE_REQUIRED"
	WarnPostalCodeNotFound = "POSTAL_CODE_NOT_FOUND"
)

// ErrorKey is the normalized name of the field carrying error and warning codes.
const ErrorKey = "err"

var errorCodes = set(
	ErrInvalidLicenseKey,
	ErrIPRequired,
	ErrLicenseRequired,
	ErrCountryRequired,
	ErrMaxRequestsReached,
)

var warningCodes = set(
	WarnIPNotFound,
	WarnCountryNotFound,
	WarnCityNotFound,
	WarnCityRequired,
	WarnPostalCodeRequired,
	WarnPostalCodeNotFound,
)

var integerAttributes = set(
	"distance",
	"queries_remaining",
	"ip_accuracy_radius",
	"ip_metro_code",
	"ip_area_code",
)

var floatAttributes = set(
	"ip_latitude",
	"ip_longitude",
	"score",
	"risk_score",
	"proxy_score",
	"ip_country_conf",
	"ip_region_conf",
	"ip_city_conf",
	"ip_postal_conf",
)

var booleanAttributes = set(
	"country_match",
	"high_risk_country",
	"anonymous_proxy",
	"ip_corporate_proxy",
	"free_mail",
	"carder_email",
	"prepaid",
	"city_postal_match",
	"ship_city_postal_match",
	"bin_match",
	"bin_name_match",
	"bin_phone_match",
	"cust_phone_in_billing_loc",
	"ship_forward",
)

// booleanLiterals maps service literals to booleans. A nil entry is a
// known literal meaning "no answer".
var booleanLiterals = map[string]*bool{
	"Yes":      ptr(true),
	"No":       ptr(false),
	"NA":       nil,
	"NotFound": nil,
}

// IsErrorCode reports whether code is a hard failure.
func IsErrorCode(code string) bool {
	_, ok := errorCodes[code]
	return ok
}

// IsWarningCode reports whether code is a soft condition.
func IsWarningCode(code string) bool {
	_, ok := warningCodes[code]
	return ok
}

// KindOf returns the declared kind of a normalized attribute name.
func KindOf(key string) Kind {
	switch {
	case has(booleanAttributes, key):
		return KindBool
	case has(integerAttributes, key):
		return KindInt
	case has(floatAttributes, key):
		return KindFloat
	}
	return KindString
}

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, s := range items {
		m[s] = struct{}{}
	}
	return m
}

func has(m map[string]struct{}, key string) bool {
	_, ok := m[key]
	return ok
}

func ptr(b bool) *bool { return &b }
