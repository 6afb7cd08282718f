// Command minfraud scores a single transaction against the minFraud service
// and prints the decoded response attributes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rdpitts/minfraud"
	"github.com/rdpitts/minfraud/config"
	"github.com/rdpitts/minfraud/types"
)

func main() {
	var (
		envFile = flag.String("env-file", "", "dotenv file to read configuration from instead of the environment")
		ip      = flag.String("ip", "", "customer IP address (required)")
		txnID   = flag.String("txn-id", "", "transaction identifier (required)")
		city    = flag.String("city", "", "billing city")
		state   = flag.String("state", "", "billing region")
		postal  = flag.String("postal", "", "billing postal code")
		country = flag.String("country", "", "billing country code")
		email   = flag.String("email", "", "customer email; only its domain and MD5 are sent")
		tier    = flag.String("requested-type", "", "standard or premium")
		region  = flag.String("region", "", "us_east, us_west, eu_west or an https URL")
		timeout = flag.Float64("timeout", 0, "request timeout in seconds")
	)
	flag.Parse()

	cfg, err := loadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(2)
	}

	client, err := minfraud.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "client: %v\n", err)
		os.Exit(2)
	}

	raw := types.RawAttributes{
		types.AttrIP:            *ip,
		types.AttrTransactionID: *txnID,
	}
	setIf(raw, types.AttrCity, *city)
	setIf(raw, types.AttrState, *state)
	setIf(raw, types.AttrPostal, *postal)
	setIf(raw, types.AttrCountry, *country)
	setIf(raw, types.AttrEmail, *email)
	setIf(raw, types.AttrRequestedType, *tier)
	setIf(raw, types.AttrServiceRegion, *region)
	if *timeout > 0 {
		raw[types.AttrTimeout] = *timeout
	}

	txn, err := client.NewTransaction(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid transaction: %v\n", err)
		os.Exit(2)
	}

	score, err := txn.Score(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "scoring failed: %v\n", err)
		os.Exit(1)
	}

	resp := txn.Response()
	fmt.Printf("risk_score\t%v\n", score)
	for _, key := range resp.Keys() {
		if key == "risk_score" {
			continue
		}
		v, _ := resp.Lookup(key)
		fmt.Printf("%s\t%s\n", key, v)
	}
}

func loadConfig(envFile string) (*types.Config, error) {
	if envFile != "" {
		return config.LoadFile(envFile)
	}
	return config.Load()
}

func setIf(raw types.RawAttributes, key, value string) {
	if value != "" {
		raw[key] = value
	}
}
