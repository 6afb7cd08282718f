package utils

import (
	"github.com/rdpitts/minfraud/types"
)

// Wire parameter names understood by the minFraud service.
const (
	WireIP            = "i"
	WireCity          = "city"
	WireRegion        = "region"
	WirePostal        = "postal"
	WireCountry       = "country"
	WireLicenseKey    = "license_key"
	WireTransactionID = "txnID"
	WireRequestedType = "requested_type"
	WireEmailDomain   = "domain"
	WireEmailMD5      = "emailMD5"
)

// EncodeRequest maps validated attributes and the client configuration onto
// the flat parameter set the service expects. Parameters the caller never
// set are omitted.
func EncodeRequest(attrs *types.TransactionAttributes, cfg *types.Config) (types.EncodedRequest, error) {
	if !cfg.HasRequiredConfiguration() {
		return nil, types.NewConfigurationError("you must set license_key so MaxMind can identify you")
	}

	req := types.EncodedRequest{
		WireLicenseKey: cfg.LicenseKey,
	}

	put := func(key, value string) {
		if value != "" {
			req[key] = value
		}
	}

	put(WireIP, attrs.IP)
	put(WireCity, attrs.City)
	put(WireRegion, attrs.State)
	put(WirePostal, attrs.Postal)
	put(WireCountry, attrs.Country)
	put(WireTransactionID, attrs.TransactionID)

	tier := attrs.RequestedType
	if tier == "" {
		tier = cfg.RequestedType
	}
	if err := ValidateServiceTier(tier); err != nil {
		return nil, err
	}
	put(WireRequestedType, string(tier))

	if attrs.Email != "" {
		req[WireEmailDomain] = EmailDomain(attrs.Email)
		req[WireEmailMD5] = EmailMD5(attrs.Email)
	}

	return req, nil
}
