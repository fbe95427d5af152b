package report

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client handles HTTP communication with the reporting backend
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a client for the given configuration
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// BuildURL joins the base URL and path with exactly one separating
// slash and attaches every parameter with a non-empty value, URL
// encoded. Empty values are omitted entirely, not sent as "".
func (c *Client) BuildURL(path string, params map[string]string) string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	full := base + path

	q := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		q.Set(key, value)
	}
	if len(q) > 0 {
		full += "?" + q.Encode()
	}
	return full
}

// Run executes a resolved request and returns the decoded result.
func (c *Client) Run(req Request) (*Result, error) {
	fullURL := c.BuildURL(req.Path, req.Params)

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequest(method, fullURL, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.cfg.Timeout
	}

	return c.do(httpReq, fullURL, req.Params, timeout)
}

// do races the transport against a timer. Whichever settles first
// wins; the loser's settlement lands in a buffered channel and is
// never observed. The timer does not abort the underlying transport.
func (c *Client) do(httpReq *http.Request, fullURL string, params map[string]string, timeout time.Duration) (*Result, error) {
	type answer struct {
		result *Result
		err    error
	}

	done := make(chan answer, 1)
	go func() {
		resp, err := c.http.Do(httpReq)
		if err != nil {
			done <- answer{err: err}
			return
		}
		defer resp.Body.Close()
		result, err := decodeResponse(resp, fullURL, params)
		done <- answer{result: result, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case a := <-done:
		return a.result, a.err
	case <-timer.C:
		return nil, &TimeoutError{URL: fullURL, Timeout: timeout}
	}
}

// decodeResponse negotiates the body by content type and maps the
// status code to a result or error. Success is only status in
// [200,300) with a decodable body.
func decodeResponse(resp *http.Response, fullURL string, params map[string]string) (*Result, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")

	var payload any
	if strings.Contains(contentType, "application/json") {
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, &DecodeError{URL: fullURL, Err: err}
		}
	} else {
		payload = string(body)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.StatusCode, Detail: detailString(payload)}
	}

	return &Result{
		Payload: payload,
		Raw:     body,
		Status:  resp.StatusCode,
		URL:     fullURL,
		Params:  params,
	}, nil
}

// detailString renders a payload for embedding in an error message:
// text verbatim, structured values as compact JSON.
func detailString(payload any) string {
	if s, ok := payload.(string); ok {
		return s
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprint(payload)
	}
	return string(b)
}
