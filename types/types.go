// Package types holds the data model shared by the minFraud client packages:
// configuration, transaction attributes, the encoded wire request and the
// error taxonomy.
package types

import (
	"net/url"
	"sort"
	"time"
)

// ServiceTier represents the requested depth of fraud analysis
type ServiceTier string

const (
	TierStandard ServiceTier = "standard"
	TierPremium  ServiceTier = "premium"
)

// IsValid reports whether the tier is one the service accepts.
func (t ServiceTier) IsValid() bool {
	return t == TierStandard || t == TierPremium
}

func (t ServiceTier) String() string {
	return string(t)
}

// Raw attribute names accepted by the transaction builder.
const (
	AttrIP            = "ip"
	AttrCity          = "city"
	AttrState         = "state"
	AttrPostal        = "postal"
	AttrCountry       = "country"
	AttrEmail         = "email"
	AttrTransactionID = "txn_id"
	AttrRequestedType = "requested_type"
	AttrTimeout       = "timeout"
	AttrServiceRegion = "service_region"
)

// RawAttributes is the loosely typed input a caller hands to the builder.
// Values are checked and normalized into TransactionAttributes.
type RawAttributes map[string]any

// TransactionAttributes is the validated input of a single transaction.
// It is immutable once validation succeeds.
type TransactionAttributes struct {
	// IP address of the customer placing the order.
	IP string `json:"ip" validate:"required"`

	// Billing address. Optional as a group.
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Postal  string `json:"postal,omitempty"`
	Country string `json:"country,omitempty"`

	// Email is never sent in clear; its domain and MD5 digest are.
	Email string `json:"email,omitempty"`

	// Merchant-side transaction identifier.
	TransactionID string `json:"txnId" validate:"required"`

	// RequestedType overrides Config.RequestedType for this transaction.
	RequestedType ServiceTier `json:"requestedType,omitempty" validate:"omitempty,oneof=standard premium"`

	// Timeout bounds connection and read. Zero means the client default.
	Timeout time.Duration `json:"timeout,omitempty" validate:"gte=0"`

	// ServiceRegion is a region key or a literal endpoint URL.
	ServiceRegion string `json:"serviceRegion,omitempty"`
}

// HasBillingAddress reports whether any billing address field is populated.
func (a *TransactionAttributes) HasBillingAddress() bool {
	return a.City != "" || a.State != "" || a.Postal != "" || a.Country != ""
}

// Config contains the process-wide settings of the client. It is read-only
// once handed to the client.
type Config struct {
	LicenseKey     string        `json:"licenseKey"`
	RequestedType  ServiceTier   `json:"requestedType,omitempty"`
	Region         string        `json:"region,omitempty"`
	DefaultTimeout time.Duration `json:"defaultTimeout,omitempty"`
	LogLevel       string        `json:"logLevel,omitempty"`
	EnableMetrics  bool          `json:"enableMetrics,omitempty"`
}

// HasRequiredConfiguration reports whether a license key has been set.
func (c *Config) HasRequiredConfiguration() bool {
	return c != nil && c.LicenseKey != ""
}

// Validate checks that the configuration can be used to encode requests.
func (c *Config) Validate() error {
	if !c.HasRequiredConfiguration() {
		return NewConfigurationError("you must set license_key so MaxMind can identify you")
	}
	if c.RequestedType != "" && !c.RequestedType.IsValid() {
		return NewConfigurationError("requested_type must be standard or premium, got " + string(c.RequestedType))
	}
	if c.DefaultTimeout < 0 {
		return NewConfigurationError("default timeout must not be negative")
	}
	return nil
}

// EncodedRequest maps wire parameter names to their values.
type EncodedRequest map[string]string

// Values converts the request into a query string value set.
func (r EncodedRequest) Values() url.Values {
	v := make(url.Values, len(r))
	for k, val := range r {
		v.Set(k, val)
	}
	return v
}

// Keys returns the wire parameter names in sorted order.
func (r EncodedRequest) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
