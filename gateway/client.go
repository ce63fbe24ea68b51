package gateway

import (
	"encoding/json"

	"eduportal/config"

	"github.com/go-resty/resty/v2"
)

// Client talks to the remote education API. It is the only place the portal
// performs network I/O.
type Client struct {
	http *resty.Client
}

// Default is the process-wide client, bound to the configured API base.
var Default *Client

// Init builds the default client from AppConfig. Call after LoadConfig.
func Init() {
	Default = New(config.AppConfig.APIBaseURL)
}

func New(baseURL string) *Client {
	return &Client{http: resty.New().SetBaseURL(baseURL)}
}

// APIError is any remote failure surfaced to a page. Detail is either the
// server-provided message, verbatim, or generic fallback text.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

type apiErrorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// wrapErr maps a resty outcome to the page-level error policy: transport
// failures become the generic fallback, non-2xx responses surface the server's
// detail or message field when present.
func wrapErr(resp *resty.Response, err error, fallback string) error {
	if err != nil {
		return &APIError{Detail: fallback}
	}
	if !resp.IsError() {
		return nil
	}
	var body apiErrorBody
	if jerr := json.Unmarshal(resp.Body(), &body); jerr == nil {
		if body.Detail != "" {
			return &APIError{StatusCode: resp.StatusCode(), Detail: body.Detail}
		}
		if body.Message != "" {
			return &APIError{StatusCode: resp.StatusCode(), Detail: body.Message}
		}
	}
	return &APIError{StatusCode: resp.StatusCode(), Detail: fallback}
}

func (c *Client) request(token string) *resty.Request {
	req := c.http.R()
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeList accepts both a bare JSON array and the paginated
// {"results": [...]} envelope some deployments return.
func decodeList[T any](body []byte) ([]T, error) {
	var list []T
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(body, &page); err == nil && page.Results != nil {
		return page.Results, nil
	}
	return nil, &APIError{Detail: "Unexpected response from server"}
}
