package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	apiVersion = "v1beta"

	// Transient failures are retried with fibonacci backoff before the
	// error reaches the caller.
	maxRetries     = 2
	initialBackoff = 500 * time.Millisecond

	defaultTimeout = 90 * time.Second
)

// Client talks to the Google Generative Language REST API. It serves
// both text generation (generateContent) and image generation (Imagen
// predict) and is safe for concurrent use.
type Client struct {
	apiKey     string
	model      string
	imageModel string
	baseURL    string
	client     *http.Client
}

// ClientOption customizes the Client beyond its Config.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) ClientOption {
	if c == nil {
		panic("WithHTTPClient: nil client")
	}
	return func(cl *Client) { cl.client = c }
}

// New creates a Client from config. The API key is required; empty
// model names and base URL fall back to the config defaults.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = "imagen-3.0-generate-002"
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		model:      model,
		imageModel: imageModel,
		baseURL:    baseURL,
		client:     &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GenerateContent sends a prompt to the text model and returns the raw
// response text. The request asks for a JSON response MIME type, but
// the text is returned verbatim; callers own parsing and validation.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent", c.baseURL, apiVersion, c.model)

	var resp generateContentResponse
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrEmptyResponse)
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty candidate text", ErrEmptyResponse)
	}
	return text, nil
}

// GenerateImage sends a prompt to the image model and returns the first
// generated image as raw bytes with its MIME type.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	reqBody := predictRequest{
		Instances:  []predictInstance{{Prompt: prompt}},
		Parameters: predictParameters{SampleCount: 1},
	}

	url := fmt.Sprintf("%s/%s/models/%s:predict", c.baseURL, apiVersion, c.imageModel)

	var resp predictResponse
	if err := c.post(ctx, url, reqBody, &resp); err != nil {
		return nil, "", err
	}

	if len(resp.Predictions) == 0 {
		return nil, "", fmt.Errorf("%w: no predictions", ErrEmptyResponse)
	}

	pred := resp.Predictions[0]
	data, err := base64.StdEncoding.DecodeString(pred.BytesBase64Encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: decode image bytes: %v", ErrInvalidResponse, err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty image", ErrEmptyResponse)
	}

	mimeType := pred.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return data, mimeType, nil
}

// post performs one JSON round trip with retries on rate limits and
// server-side failures. Client-side errors are terminal.
func (c *Client) post(ctx context.Context, url string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	backoff := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(initialBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrAPIError, err))
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: read response: %v", ErrAPIError, err))
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
			}
			return nil
		case resp.StatusCode == http.StatusTooManyRequests:
			return retry.RetryableError(fmt.Errorf("%w: %s", ErrRateLimited, apiErrorMessage(body)))
		case resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("%w: status %d: %s", ErrAPIError, resp.StatusCode, apiErrorMessage(body)))
		default:
			return fmt.Errorf("%w: status %d: %s", ErrAPIError, resp.StatusCode, apiErrorMessage(body))
		}
	})
}

// apiErrorMessage extracts the error message from an API error body,
// falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var e apiErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return string(body)
}

// Generative Language API request/response types

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount int `json:"sampleCount"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MIMEType           string `json:"mimeType"`
	} `json:"predictions"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
