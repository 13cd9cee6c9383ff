package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultMyMemoryURL is the public MyMemory endpoint
const DefaultMyMemoryURL = "https://api.mymemory.translated.net"

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  any    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// MyMemoryBackend uses the free MyMemory translation API
type MyMemoryBackend struct {
	http  *resty.Client
	email string
}

// NewMyMemoryBackend creates a MyMemory backend. email is optional and raises the daily quota.
func NewMyMemoryBackend(baseURL, email string) *MyMemoryBackend {
	if baseURL == "" {
		baseURL = DefaultMyMemoryURL
	}
	return &MyMemoryBackend{
		http:  resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
		email: email,
	}
}

// Name returns the backend name
func (b *MyMemoryBackend) Name() string {
	return "mymemory"
}

// Translate calls GET /get?q=...&langpair=source|target
func (b *MyMemoryBackend) Translate(ctx context.Context, text, source, target string) (string, error) {
	req := b.http.R().
		SetContext(ctx).
		SetQueryParam("q", text).
		SetQueryParam("langpair", source+"|"+target)
	if b.email != "" {
		req.SetQueryParam("de", b.email)
	}

	res, err := req.Get("/get")
	if err != nil {
		return "", fmt.Errorf("mymemory request: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("mymemory status %d", res.StatusCode())
	}

	var body myMemoryResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", fmt.Errorf("mymemory decode: %w", err)
	}

	if status := statusCode(body.ResponseStatus); status != 200 {
		return "", fmt.Errorf("mymemory response status %d: %s", status, body.ResponseDetails)
	}

	translated := strings.TrimSpace(body.ResponseData.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("mymemory returned empty translation")
	}
	return translated, nil
}

// statusCode reads responseStatus, which the API sends as a number or a string
func statusCode(v any) int {
	switch s := v.(type) {
	case float64:
		return int(s)
	case string:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
