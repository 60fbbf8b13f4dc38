package itineraryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"bitbucket.org/crgw/itinerary-hub/internal/itinerary"
	"bitbucket.org/crgw/itinerary-hub/internal/schema"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/client"
	"bitbucket.org/crgw/itinerary-hub/internal/tools/responding"
	translationErrors "bitbucket.org/crgw/itinerary-hub/internal/translation/errors"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

const destination = "itinerary-hub"

// APIError is a non-2xx answer from the service.
type APIError struct {
	Code    int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("itinerary-hub: %d %s", e.Code, e.Message)
	}
	return fmt.Sprintf("itinerary-hub: %d %s: %s", e.Code, e.Message, e.Details)
}

// Is lets callers compare with the server side sentinels.
func (e *APIError) Is(target error) bool {
	switch e.Code {
	case http.StatusUnprocessableEntity:
		return target == itinerary.ErrNoSectionsDetected
	case http.StatusNotFound:
		return target == translationErrors.ErrorUnsupportedLanguage
	}
	return false
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient reads the base URL from CRG_URL_ITINERARY_HUB unless an option
// overrides it.
func NewClient(logger *zerolog.Logger, optionFuncs ...client.OptionFunc) *Client {
	var clientOptions []client.OptionFunc
	if baseURL := os.Getenv("CRG_URL_ITINERARY_HUB"); baseURL != "" {
		clientOptions = append(clientOptions, client.WithBaseURL(baseURL))
	}
	clientOptions = append(clientOptions, optionFuncs...)

	options := client.NewOptions(clientOptions...)

	return &Client{
		baseURL:   options.BaseURL(destination, ""),
		userAgent: fmt.Sprintf("itinerary-hub-client via %s", options.Name()),
		httpClient: &http.Client{
			Timeout:   options.Timeout(),
			Transport: client.NewOutgoingLoggerRoundTripper(logger, destination),
		},
	}
}

func (c *Client) Sections(ctx context.Context, language string, text string, opts schema.SectionsQuery) (*schema.SectionsResponse, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, err
	}

	var response schema.SectionsResponse
	err = c.post(ctx, language, "sections", values, schema.SectionsRequestParams{Text: text}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) Build(ctx context.Context, language string, text string) (*schema.BuildResponse, error) {
	var response schema.BuildResponse
	err := c.post(ctx, language, "build", nil, schema.BuildRequestParams{Text: text}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) Serialize(ctx context.Context, language string, model itinerary.Model) (*schema.SerializeResponse, error) {
	var response schema.SerializeResponse
	err := c.post(ctx, language, "serialize", nil, schema.SerializeRequestParams{Itinerary: &model}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) Translate(ctx context.Context, language string, text string) (*schema.TranslateResponse, error) {
	var response schema.TranslateResponse
	err := c.post(ctx, language, "translate", nil, schema.TranslateRequestParams{Text: text}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) post(ctx context.Context, language string, operation string, values url.Values, body any, out any) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(language), operation)
	if encoded := values.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", c.userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		var failure responding.ErrorResponse
		if err := json.Unmarshal(data, &failure); err != nil {
			failure.Message = http.StatusText(response.StatusCode)
		}

		return &APIError{
			Code:    response.StatusCode,
			Message: failure.Message,
			Details: failure.Details,
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}

	return nil
}
