package idv

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/spf13/viper"

	"github.com/trustline/identity-verification-go/config"
	"github.com/trustline/identity-verification-go/logger"
)

// Mock serves a canned identity_verification/get response from a local test server,
// letting the rest of the stack run without credentials for the real service.
type Mock struct {
	Code       int    `json:"code"`
	Body       string `json:"body"`
	RealClient *Client
}

var _ IdentityVerifier = &Mock{}

func (m *Mock) Get(request GetRequest) (*IdentityVerification, error) {
	return m.RealClient.Get(request)
}

func getMockClient(options *viper.Viper) (IdentityVerifier, error) {
	mockResp := options.GetString(config.Keys.MockResponse)
	mock := &Mock{}
	err := json.Unmarshal([]byte(mockResp), mock)
	if err != nil {
		return nil, err
	}

	// set up a fake http server to mock the identity verification service
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(mock.Code)
		w.Write([]byte(mock.Body))
	}))

	logger.InitLogger().Debug(fmt.Sprintf("Mock identity verification server running at %s", ts.URL))

	mock.RealClient = NewClientFromOptions(Options{
		Host:       ts.URL,
		ClientID:   "foo",
		Secret:     "bar",
		APIVersion: options.GetString(config.Keys.APIVersion),
		HTTPClient: ts.Client(),
	})

	return mock, nil
}
