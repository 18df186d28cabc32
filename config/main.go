package config

import (
	"github.com/spf13/viper"
)

var config *IdvConfig

// IdvConfig is a global configuration struct for the identity verification client
type IdvConfig struct {
	Options *viper.Viper
}

// IdvConfigKeysType is the definition of the struct that houses all the env variables key names
type IdvConfigKeysType struct {
	Host           string
	ClientID       string
	Secret         string
	APIVersion     string
	LogLevel       string
	Debug          string
	MockResponse   string
	SentryDsn      string
	RequestTimeout string
}

// Keys is a struct that houses all the env variables key names
var Keys = IdvConfigKeysType{
	Host:           "HOST",
	ClientID:       "CLIENT_ID",
	Secret:         "SECRET",
	APIVersion:     "API_VERSION",
	LogLevel:       "LOG_LEVEL",
	Debug:          "DEBUG",
	MockResponse:   "MOCK_RESPONSE",
	SentryDsn:      "SENTRY_DSN",
	RequestTimeout: "REQUEST_TIMEOUT",
}

func initialize() {
	var options = viper.New()

	options.SetDefault(Keys.Host, "https://sandbox.identity.trustline.io")
	options.SetDefault(Keys.APIVersion, "2023-05-08")
	options.SetDefault(Keys.LogLevel, "info")
	options.SetDefault(Keys.Debug, false)
	options.SetDefault(Keys.RequestTimeout, "30s")
	options.SetDefault(Keys.MockResponse, `{"code":200, "body":"{\"id\":\"idv_mock\",\"status\":\"active\"}"}`)

	options.SetEnvPrefix("IDV")
	options.AutomaticEnv()

	config = &IdvConfig{
		Options: options,
	}
}

// GetConfig provides a singleton global IdvConfig instance
func GetConfig() *IdvConfig {
	if config == nil {
		initialize()
	}

	return config
}
