package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		choice  string
		want    string
		wantErr bool
	}{
		{"default", "", "https://minfraud.maxmind.com/app/ccv2r", false},
		{"us east", "us_east", "https://minfraud-us-east.maxmind.com/app/ccv2r", false},
		{"us west", "us_west", "https://minfraud-us-west.maxmind.com/app/ccv2r", false},
		{"eu west", "eu_west", "https://minfraud-eu-west.maxmind.com/app/ccv2r", false},
		{"literal override", "https://fraud.internal.example/app/ccv2r", "https://fraud.internal.example/app/ccv2r", false},
		{"not a url", "foo", "", true},
		{"plain http", "http://minfraud.example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ResolveEndpoint(tt.choice)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	var nilCfg *Config
	assert.False(t, nilCfg.HasRequiredConfiguration())

	cfg := &Config{}
	assert.False(t, cfg.HasRequiredConfiguration())
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)

	cfg.LicenseKey = "asdf"
	assert.True(t, cfg.HasRequiredConfiguration())
	assert.NoError(t, cfg.Validate())

	cfg.RequestedType = "gold"
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"missing attribute", MissingRequiredAttribute(AttrIP), ErrValidation},
		{"wrong type", InvalidAttributeType(AttrCity, "must be a string"), ErrValidation},
		{"timeout", InvalidTimeout("must be Numeric"), ErrValidation},
		{"tier", InvalidServiceTier("gold"), ErrValidation},
		{"connection", ConnectionError(500, nil), ErrConnection},
		{"service", ServiceError("INVALID_LICENSE_KEY"), ErrService},
		{"decode", DecodeError("country_match", "bad literal"), ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("scoring: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.target)
			assert.False(t, errors.Is(wrapped, ErrConfiguration))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "city must be a string", InvalidAttributeType(AttrCity, "must be a string").Error())
	assert.Equal(t, "Timeout value must be Numeric", InvalidTimeout("must be Numeric").Error())
	assert.Contains(t, ServiceError("INVALID_LICENSE_KEY").Error(), "INVALID_LICENSE_KEY")
	assert.Contains(t, ConnectionError(503, nil).Error(), "503")

	cause := errors.New("dial tcp: i/o timeout")
	err := ConnectionError(0, cause)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, err.StatusCode)
}

func TestEncodedRequestValues(t *testing.T) {
	req := EncodedRequest{"i": "1", "license_key": "k", "city": "Leeds"}
	assert.Equal(t, []string{"city", "i", "license_key"}, req.Keys())
	assert.Equal(t, "city=Leeds&i=1&license_key=k", req.Values().Encode())
}
