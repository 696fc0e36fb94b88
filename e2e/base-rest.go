package e2e

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"smartshop/contract"
	"smartshop/infrastructure/http/client"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

const stepTimeout = 60 * time.Second

type BaseRestSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseRestSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// tracer logs every exchange, and the raw bodies when E2E_DEBUG_JSON is set
type tracer struct {
	t         *testing.T
	debugJSON bool
}

func (tr tracer) RoundTrip(req *http.Request) (*http.Response, error) {
	logBuilder := strings.Builder{}
	if tr.debugJSON {
		if dump, err := httputil.DumpRequestOut(req, true); err == nil {
			fmt.Fprintf(&logBuilder, "\nREQUEST:\n%s\n", dump)
		}
	}

	start := time.Now()
	resp, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		tr.t.Logf("HTTP %s %s failed in %v: %v%s", req.Method, req.URL.Path, time.Since(start), err, logBuilder.String())
		return nil, err
	}

	if tr.debugJSON {
		if dump, err := httputil.DumpResponse(resp, true); err == nil {
			fmt.Fprintf(&logBuilder, "RESPONSE:\n%s\n", dump)
		}
	}
	tr.t.Logf("HTTP %s %s [%d] in %v%s", req.Method, req.URL.Path, resp.StatusCode, time.Since(start), logBuilder.String())
	return resp, nil
}

// step prints a colorized header and returns a client option tracing its traffic
func (s *BaseRestSuite) step(name, baseURL string) client.Option {
	if baseURL == "" {
		s.T().Skipf("%s: backend address not configured", name)
	}
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	return client.WithRoundTripper(tracer{t: s.T(), debugJSON: s.Config.DebugJSON})
}

// WithChat provides a shopper-facing client within a contextual test step
func (s *BaseRestSuite) WithChat(name string, fn func(ctx context.Context, api contract.IChatAPI)) {
	trace := s.step(name, s.Config.ChatAPIURL)
	api := client.NewChatClient(s.Config.ChatAPIURL, stepTimeout, logs.GetLoggerFromString("DEBUG"), trace)
	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	defer cancel()

	fn(ctx, api)
}

// WithAdmin provides a logged-in document console client
func (s *BaseRestSuite) WithAdmin(name string, fn func(ctx context.Context, api contract.IAdminAPI, token string)) {
	trace := s.step(name, s.Config.AdminAPIURL)
	api := client.NewAdminClient(s.Config.AdminAPIURL, stepTimeout, logs.GetLoggerFromString("DEBUG"), trace)
	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	defer cancel()

	result, err := api.Login(ctx, s.Config.AdminEmail, s.Config.AdminPassword)
	s.Require().NoError(err, "Failed to log in on "+s.Config.AdminAPIURL)
	fn(ctx, api, result.Token)
}

// WithSuperAdmin provides a logged-in model console client
func (s *BaseRestSuite) WithSuperAdmin(name string, fn func(ctx context.Context, api contract.ISuperAdminAPI, token string)) {
	trace := s.step(name, s.Config.SuperAdminAPIURL)
	api := client.NewSuperAdminClient(s.Config.SuperAdminAPIURL, stepTimeout, logs.GetLoggerFromString("DEBUG"), trace)
	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	defer cancel()

	result, err := api.Login(ctx, s.Config.SuperAdminEmail, s.Config.SuperAdminPassword)
	s.Require().NoError(err, "Failed to log in on "+s.Config.SuperAdminAPIURL)
	fn(ctx, api, result.Token)
}
