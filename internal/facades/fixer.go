package facades

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const maxResponseBytes = 1 << 20

// Throttler blocks until the caller may send the next provider request.
type Throttler interface {
	Wait(ctx context.Context) error
}

// NewHTTPClient returns a client with bounded connect and response timeouts.
func NewHTTPClient(connectTimeout, readTimeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: connectTimeout}).DialContext
	transport.ResponseHeaderTimeout = readTimeout

	return &http.Client{
		Transport: transport,
		Timeout:   connectTimeout + readTimeout,
	}
}

// FixerFacade fetches rate and symbol tables from a Fixer-compatible HTTP API.
// Every request waits on the throttler first; failures are never retried here.
type FixerFacade struct {
	baseURL   string
	apiKey    string
	client    *http.Client
	throttler Throttler
	metrics   *metrics.Metrics
}

// NewFixerFacade creates a new facade for the provider at baseURL.
func NewFixerFacade(
	baseURL, apiKey string,
	client *http.Client,
	throttler Throttler,
	m *metrics.Metrics,
) *FixerFacade {
	return &FixerFacade{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		client:    client,
		throttler: throttler,
		metrics:   m,
	}
}

// GetLatestRates fetches the full latest rate table against the provider's base currency.
func (f *FixerFacade) GetLatestRates(ctx context.Context) (models.RateTable, error) {
	return f.GetLatestRatesFor(ctx)
}

// GetLatestRatesFor fetches latest rates restricted to symbols; no symbols means all.
func (f *FixerFacade) GetLatestRatesFor(ctx context.Context, symbols ...string) (models.RateTable, error) {
	query := url.Values{}
	if len(symbols) > 0 {
		query.Set("symbols", strings.Join(symbols, ","))
	}

	res, err := f.call(ctx, "latest", query)
	if err != nil {
		return nil, err
	}

	rates := res.Get("rates")
	if !rates.IsObject() {
		return nil, apperrors.ExternalAPI(nil, "provider response has no rates")
	}

	table := make(models.RateTable)
	var parseErr error
	rates.ForEach(func(code, value gjson.Result) bool {
		text := value.Raw
		if value.Type == gjson.String {
			text = value.Str
		}
		rate, err := decimal.NewFromString(text)
		if err != nil {
			parseErr = apperrors.ExternalAPI(err, "provider returned invalid rate for %s", code.String())
			return false
		}
		table[code.String()] = rate
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	logger.Log.Infow("fetched latest rates from provider", "currencies", len(table), "base", res.Get("base").String())
	return table, nil
}

// GetSupportedSymbols fetches the provider's currency code -> display name table.
func (f *FixerFacade) GetSupportedSymbols(ctx context.Context) (map[string]string, error) {
	res, err := f.call(ctx, "symbols", url.Values{})
	if err != nil {
		return nil, err
	}

	symbols := res.Get("symbols")
	if !symbols.IsObject() {
		return nil, apperrors.ExternalAPI(nil, "provider response has no symbols")
	}

	out := make(map[string]string)
	symbols.ForEach(func(code, name gjson.Result) bool {
		out[code.String()] = name.String()
		return true
	})
	return out, nil
}

func (f *FixerFacade) call(ctx context.Context, endpoint string, query url.Values) (res gjson.Result, err error) {
	defer func() {
		f.metrics.ProviderRequest(endpoint, err)
		if err != nil {
			logger.Log.Errorw("rate provider request failed", "endpoint", endpoint, "error", err)
		}
	}()

	if err := f.throttler.Wait(ctx); err != nil {
		return gjson.Result{}, apperrors.ExternalAPI(err, "rate provider throttle wait interrupted")
	}

	query.Set("access_key", f.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", f.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return gjson.Result{}, apperrors.ExternalAPI(err, "failed to build request for provider's /%s endpoint", endpoint)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return gjson.Result{}, apperrors.ExternalAPI(err, "failed to call provider's /%s endpoint", endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return gjson.Result{}, apperrors.ExternalAPI(err, "failed to read provider's /%s response", endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("unexpected HTTP response from provider: HTTP %d", resp.StatusCode)
		if info := gjson.GetBytes(body, "error.info").String(); info != "" {
			msg += ": " + info
		}
		return gjson.Result{}, apperrors.ExternalAPI(nil, "%s", msg)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return gjson.Result{}, apperrors.ExternalAPI(nil, "empty response body from provider")
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, apperrors.ExternalAPI(nil, "malformed response body from provider")
	}

	res = gjson.ParseBytes(body)
	if !res.Get("success").Bool() {
		info := res.Get("error.info").String()
		if info == "" {
			info = "unknown error"
		}
		return gjson.Result{}, apperrors.ExternalAPI(nil, "provider returned an error: %s", info)
	}
	return res, nil
}
