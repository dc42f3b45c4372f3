// Package imgflip fetches meme template images from the public Imgflip API.
//
// Template selection and download are plain HTTP; decoding accepts every
// format Imgflip serves (jpeg, png, gif, webp). "The catalog is empty" is
// reported as ErrNoTemplates, distinct from transport failures, so callers
// can tell "nothing available" from "network broken".
package imgflip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp" // webp template decode support
)

// DefaultBaseURL is the public Imgflip API endpoint.
const DefaultBaseURL = "https://api.imgflip.com"

const defaultTimeout = 10 * time.Second

// ErrNoTemplates means the API answered but had no usable template to offer.
var ErrNoTemplates = errors.New("imgflip: no templates available")

// Template is one catalog entry from the get_memes endpoint.
type Template struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type memesResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Memes []Template `json:"memes"`
	} `json:"data"`
}

// Client talks to the Imgflip API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client against the public API with a 10s timeout.
func NewClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWith returns a client against baseURL using httpClient.
// Zero arguments fall back to the defaults.
func NewClientWith(baseURL string, httpClient *http.Client) *Client {
	c := NewClient()
	if baseURL != "" {
		c.baseURL = baseURL
	}
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// Templates fetches the template catalog.
func (c *Client) Templates(ctx context.Context) ([]Template, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get_memes", nil)
	if err != nil {
		return nil, fmt.Errorf("imgflip: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imgflip: fetch templates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imgflip: fetch templates: unexpected status %s", resp.Status)
	}

	var parsed memesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("imgflip: decode template list: %w", err)
	}
	if !parsed.Success || len(parsed.Data.Memes) == 0 {
		return nil, ErrNoTemplates
	}
	return parsed.Data.Memes, nil
}

// RandomTemplate picks a uniformly random catalog entry.
func (c *Client) RandomTemplate(ctx context.Context) (Template, error) {
	templates, err := c.Templates(ctx)
	if err != nil {
		return Template{}, err
	}
	return templates[rand.IntN(len(templates))], nil
}

// FetchImage downloads and decodes the image behind url.
func (c *Client) FetchImage(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("imgflip: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imgflip: download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imgflip: download %s: unexpected status %s", url, resp.Status)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imgflip: decode %s: %w", url, err)
	}
	return img, nil
}

// RandomImage fetches a random template and downloads its image.
func (c *Client) RandomImage(ctx context.Context) (image.Image, error) {
	t, err := c.RandomTemplate(ctx)
	if err != nil {
		return nil, err
	}
	return c.FetchImage(ctx, t.URL)
}
