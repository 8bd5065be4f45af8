package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/betbot/polyapis/clob/client"
	"github.com/betbot/polyapis/clob/signing"
	"github.com/betbot/polyapis/pkg/config"
	"github.com/betbot/polyapis/pkg/logger"
)

// authcheck derives (or creates) API credentials for the configured wallet
// and pulls its current positions — a quick end-to-end check of the auth and
// data plumbing.
func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	nonce := flag.Int64("nonce", 0, "API key nonce")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Log)

	signer, err := signing.NewSigner(cfg.PrivateKey, cfg.ChainID)
	if err != nil {
		log.WithError(err).Fatal("building signer")
	}
	log.WithFields(map[string]interface{}{
		"address": signer.ChecksumAddress(),
		"chainId": signer.ChainID(),
	}).Info("signer ready")

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	clob := client.NewClobClient(cfg.ClobHost, signer, nil, log)
	creds, err := clob.CreateOrDeriveAPIKey(ctx, *nonce)
	if err != nil {
		log.WithError(err).Fatal("deriving api key")
	}
	clob.SetCreds(creds)
	log.WithField("apiKey", creds.Key).Info("api credentials ready")

	data := client.NewDataClient(cfg.DataHost, log)
	positions, err := data.Positions(ctx, client.PositionsQuery{
		User:  signer.ChecksumAddress(),
		Limit: 50,
	})
	if err != nil {
		log.WithError(err).Fatal("fetching positions")
	}

	for _, p := range positions {
		log.WithFields(map[string]interface{}{
			"market":  p.Title,
			"outcome": p.Outcome,
			"size":    p.Size.Float64(),
			"value":   p.CurrentValue.Float64(),
		}).Info("position")
	}
	log.WithField("count", len(positions)).Info("done")
}
