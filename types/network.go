package types

import (
	"fmt"
	"net/url"
)

// Region selects one of the regional minFraud hosts
type Region string

const (
	RegionUSEast Region = "us_east"
	RegionUSWest Region = "us_west"
	RegionEUWest Region = "eu_west"
)

// DefaultHost is used when no region is requested.
const DefaultHost = "https://minfraud.maxmind.com/app/ccv2r"

var serviceHosts = map[Region]string{
	RegionUSEast: "https://minfraud-us-east.maxmind.com/app/ccv2r",
	RegionUSWest: "https://minfraud-us-west.maxmind.com/app/ccv2r",
	RegionEUWest: "https://minfraud-eu-west.maxmind.com/app/ccv2r",
}

// IsKnown reports whether the region has a fixed host.
func (r Region) IsKnown() bool {
	_, ok := serviceHosts[r]
	return ok
}

func (r Region) String() string {
	return string(r)
}

// ResolveEndpoint turns a region key or a literal URL override into the
// service URL. An empty choice yields DefaultHost.
func ResolveEndpoint(choice string) (*url.URL, error) {
	raw := DefaultHost
	if host, ok := serviceHosts[Region(choice)]; ok {
		raw = host
	} else if choice != "" {
		raw = choice
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &MinFraudError{
			Code:    ErrCodeConfiguration,
			Message: fmt.Sprintf("service region %q is neither a known region nor a valid URL", choice),
			Err:     err,
		}
	}
	if u.Scheme != "https" || u.Host == "" {
		return nil, NewConfigurationError(fmt.Sprintf("service region %q is neither a known region nor an https URL", choice))
	}
	return u, nil
}
