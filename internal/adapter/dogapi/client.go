// Package dogapi implements the breed catalog and image providers against
// the Dog CEO API (https://dog.ceo/api).
package dogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"barkle/internal/config"
	"barkle/internal/domain"
)

// Client talks to the Dog CEO API. Every call is bounded by the configured
// HTTP client timeout; there is no retry and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.DogAPIConfig) *Client {
	return NewClientWithHTTPClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithHTTPClient creates a Client with a caller-supplied HTTP
// client. Used by tests to point at a stub server.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// FetchCatalog retrieves the full breed list. The response object's key
// order is preserved so that tier partitions and seeded sampling see a
// stable breed ordering.
func (c *Client) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	body, err := c.get(ctx, c.baseURL+"/breeds/list/all")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	catalog, err := decodeCatalogResponse(body)
	if err != nil {
		return nil, fmt.Errorf("decode breed list: %w", err)
	}
	return catalog, nil
}

// FetchAllImages retrieves every image URL for a breed. An unknown or
// sub-breed-only name yields zero results, not an error.
func (c *Client) FetchAllImages(ctx context.Context, breed string) ([]string, error) {
	var payload struct {
		Message []string `json:"message"`
		Status  string   `json:"status"`
	}
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/breed/%s/images", c.baseURL, breed), &payload)
	if err != nil || !found {
		return nil, err
	}
	return payload.Message, nil
}

// FetchRandomImage retrieves one random image URL for a breed. An unknown
// name yields an empty result, not an error.
func (c *Client) FetchRandomImage(ctx context.Context, breed string) (string, error) {
	var payload struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/breed/%s/images/random", c.baseURL, breed), &payload)
	if err != nil || !found {
		return "", err
	}
	return payload.Message, nil
}

// get performs a GET request and returns the body of a 200 response.
func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("dog api: unexpected status %d for %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}

// getJSON decodes a JSON payload; a 404 reports found=false without error,
// matching the provider contract of "zero results for an unknown name".
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("dog api: unexpected status %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// decodeCatalogResponse walks the breed list payload token by token because
// encoding/json maps would drop the object's key order.
func decodeCatalogResponse(r io.Reader) (domain.Catalog, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var catalog domain.Catalog
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		switch key {
		case "message":
			catalog, err = decodeBreedMap(dec)
			if err != nil {
				return nil, err
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
		}
	}
	if catalog == nil {
		return nil, fmt.Errorf("payload has no message field")
	}
	return catalog, nil
}

func decodeBreedMap(dec *json.Decoder) (domain.Catalog, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	catalog := domain.Catalog{}
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := nameTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected breed key %v", nameTok)
		}
		var subBreeds []string
		if err := dec.Decode(&subBreeds); err != nil {
			return nil, err
		}
		catalog = append(catalog, domain.Breed{Name: name, SubBreeds: subBreeds})
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
