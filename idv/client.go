package idv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/trustline/identity-verification-go/config"
	"github.com/trustline/identity-verification-go/logger"
)

const getPath = "/identity_verification/get"

var getRequestTime = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "identity_verification_get_request_time_taken",
	Help:    "identity verification get latency distributions.",
	Buckets: prometheus.LinearBuckets(0.25, 0.25, 20),
})
var getFailure = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "identity_verification_service_failure",
		Help: "Total number of identity verification service failures. A failure means a request returned a non 2xx.",
	},
	[]string{"code"},
)
var getDecodeFailure = promauto.NewCounter(prometheus.CounterOpts{
	Name: "identity_verification_decode_failure",
	Help: "Total number of 2xx identity verification responses whose body could not be decoded.",
})

// GetRequest carries the request-body fields for identity_verification/get.
// Whether the fields are valid is the remote API's call, not ours.
type GetRequest struct {
	IdentityVerificationID string `json:"identity_verification_id"`
}

// IdentityVerifier retrieves identity verification records from the remote service.
type IdentityVerifier interface {
	Get(request GetRequest) (*IdentityVerification, error)
}

type Client struct {
	clientID   string
	secret     string
	apiVersion string
	url        string
	httpClient *http.Client
	log        *logrus.Logger
}

var _ IdentityVerifier = &Client{}

// Options are the explicit settings for a Client, for callers that inject their own
// transport or credentials instead of going through the process config.
type Options struct {
	Host       string
	ClientID   string
	Secret     string
	APIVersion string
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

func makeRequestBody(request GetRequest) (*bytes.Buffer, error) {
	encoded, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(encoded), nil
}

func makeRequest(request GetRequest, url string) (*http.Request, error) {
	buf, err := makeRequestBody(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Get sends one identity_verification/get request and maps the response body onto
// the IdentityVerification tree. Transport failures and non 2xx responses come back
// as errors with no record; the body is never partially surfaced on failure.
func (c *Client) Get(request GetRequest) (*IdentityVerification, error) {
	req, err := makeRequest(request, c.url+getPath)
	if err != nil {
		return nil, err
	}
	req.Header.Set("IDV-Client-Id", c.clientID)
	req.Header.Set("IDV-Secret", c.secret)
	req.Header.Set("IDV-Version", c.apiVersion)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	getRequestTime.Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("Error from trying to send identity verification get request [%w]", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		incGetFailure(resp.StatusCode)

		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			// The service did not return its usual envelope. Still a transport
			// failure as far as the caller is concerned.
			apiErr.ErrorMessage = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}

	record, err := c.decodeRecord(json.NewDecoder(resp.Body), resp.StatusCode)
	if err != nil {
		getDecodeFailure.Inc()
		return nil, err
	}

	return record, nil
}

// decodeRecord maps a successful response body onto the record tree. Fields the
// service sent with an unexpected shape are left absent rather than failing the
// whole call; only a body that is not JSON at all is an error.
func (c *Client) decodeRecord(dec *json.Decoder, statusCode int) (*IdentityVerification, error) {
	var record IdentityVerification
	if err := dec.Decode(&record); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			c.log.WithFields(logrus.Fields{
				"field": typeErr.Field,
				"value": typeErr.Value,
			}).Warn("dropping identity verification response field with unexpected type")
			return &record, nil
		}
		return nil, &DecodeError{StatusCode: statusCode, Cause: err}
	}
	return &record, nil
}

func incGetFailure(statusCode int) {
	getFailure.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// NewClient builds an IdentityVerifier from the process config. Pass debug=true to
// get a client backed by a local mock server instead of the real service.
func NewClient(debug bool) (IdentityVerifier, error) {
	options := config.GetConfig().Options

	if debug {
		return getMockClient(options)
	}

	clientID := options.GetString(config.Keys.ClientID)
	secret := options.GetString(config.Keys.Secret)
	host := options.GetString(config.Keys.Host)

	if err := validateClientSettings(clientID, secret, host); err != nil {
		return nil, err
	}

	return &Client{
		clientID:   clientID,
		secret:     secret,
		apiVersion: options.GetString(config.Keys.APIVersion),
		url:        strings.TrimSuffix(host, "/"),
		httpClient: &http.Client{Timeout: options.GetDuration(config.Keys.RequestTimeout)},
		log:        logger.InitLogger(),
	}, nil
}

// NewClientFromOptions builds a Client from explicit settings. Nothing is read from
// or written to the process config; an injected HTTPClient or Logger is used as-is,
// with plain defaults when left nil.
func NewClientFromOptions(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}

	return &Client{
		clientID:   opts.ClientID,
		secret:     opts.Secret,
		apiVersion: opts.APIVersion,
		url:        strings.TrimSuffix(opts.Host, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

func validateClientSettings(clientID string, secret string, host string) error {
	missingConfig := make([]string, 0)

	if clientID == "" {
		missingConfig = append(missingConfig, config.Keys.ClientID)
	}

	if secret == "" {
		missingConfig = append(missingConfig, config.Keys.Secret)
	}

	if host == "" {
		missingConfig = append(missingConfig, config.Keys.Host)
	}

	if len(missingConfig) > 0 {
		return fmt.Errorf("Error configuring identity verification client. Must provide the following env variables which are missing: %v", missingConfig)
	}

	return nil
}
