package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/trustline/identity-verification-go/config"
	"github.com/trustline/identity-verification-go/idv"
	l "github.com/trustline/identity-verification-go/logger"
)

// requestParams is the YAML shape accepted by --params, mirroring the request body
// of identity_verification/get.
type requestParams struct {
	IdentityVerificationID string `yaml:"identity_verification_id"`
}

func main() {
	godotenv.Load()
	l.InitLogger()

	id := flag.String("id", "", "identity verification id to fetch")
	paramsPath := flag.String("params", "", "path to a YAML file of request body fields")
	flag.Parse()

	options := config.GetConfig().Options

	dsn := options.GetString(config.Keys.SentryDsn)
	if dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			l.Log.WithFields(logrus.Fields{"error": err}).Warn("could not initialize sentry")
		}
		defer sentry.Flush(2 * time.Second)
	}

	request, err := buildRequest(*id, *paramsPath)
	if err != nil {
		fail("could not build request", err)
	}

	client, err := idv.NewClient(options.GetBool(config.Keys.Debug))
	if err != nil {
		fail("could not configure identity verification client", err)
	}

	record, err := client.Get(request)
	if err != nil {
		fail("identity verification get failed", err)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fail("could not render record", err)
	}

	fmt.Println(string(out))
}

func buildRequest(id string, paramsPath string) (idv.GetRequest, error) {
	if paramsPath != "" {
		raw, err := ioutil.ReadFile(paramsPath)
		if err != nil {
			return idv.GetRequest{}, err
		}

		var params requestParams
		if err := yaml.Unmarshal(raw, &params); err != nil {
			return idv.GetRequest{}, err
		}

		return idv.GetRequest{IdentityVerificationID: params.IdentityVerificationID}, nil
	}

	return idv.GetRequest{IdentityVerificationID: id}, nil
}

func fail(msg string, err error) {
	sentry.CaptureException(err)
	l.Log.WithFields(logrus.Fields{"error": err}).Error(msg)
	os.Exit(1)
}
