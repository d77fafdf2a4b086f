package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Astemirdum/book-exchange-admin/admin/config"
	"github.com/Astemirdum/book-exchange-admin/admin/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

// Client issues one request per call against the book-exchange API.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
}

func New(log *zap.Logger, cfg config.BookAPI) *Client {
	return &Client{
		log:     log,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// URL joins the base URL with escaped path segments.
func (c *Client) URL(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Do sends body as JSON when it is not nil and returns the raw response body.
// Non-2xx answers come back as *errs.UpstreamError with the upstream status code.
func (c *Client) Do(ctx context.Context, method, target string, body any) ([]byte, int, error) {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return nil, http.StatusBadRequest, errors.Wrap(err, "encode body")
		}
		reqBody = b
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, "new request")
	}
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, http.StatusServiceUnavailable, errors.Wrapf(err, "%s %s", method, target)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck
		c.log.Debug("upstream non-2xx",
			zap.String("method", method),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode))
		return nil, resp.StatusCode, &errs.UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, http.StatusBadGateway, errors.Wrap(err, "read body")
	}
	return data, resp.StatusCode, nil
}
