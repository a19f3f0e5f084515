package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cineai/models"
)

// Minimal TMDB v3 client (trending, top rated, upcoming, popular, movie
// details and videos). Auth is either a v4 bearer token or a v3 api_key
// query parameter; having neither is a configuration error raised before
// any network call.

const tmdbBaseURL = "https://api.themoviedb.org/3"

var errCredentialsMissing = errors.New("tmdb credentials missing")

type tmdbClient struct {
	baseURL string
	bearer  string
	apiKey  string
	httpc   *http.Client
}

func newTMDBClient(bearer, apiKey string, httpc *http.Client) *tmdbClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &tmdbClient{baseURL: tmdbBaseURL, bearer: bearer, apiKey: apiKey, httpc: httpc}
}

func (c *tmdbClient) isConfigured() bool {
	return c.bearer != "" || c.apiKey != ""
}

// doGET issues a single best-effort request; there is no retry and no
// client-side timeout beyond what the caller's context carries.
func (c *tmdbClient) doGET(ctx context.Context, path string, q url.Values, v any) error {
	if !c.isConfigured() {
		return errCredentialsMissing
	}
	if q == nil {
		q = url.Values{}
	}
	q.Set("language", "en-US")
	if c.bearer == "" {
		q.Set("api_key", c.apiKey)
	}
	endpoint := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("tmdb get %s failed: %s: %s", path, resp.Status, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *tmdbClient) list(ctx context.Context, path string, q url.Values) ([]models.CatalogItem, error) {
	var resp struct {
		Results []models.CatalogItem `json:"results"`
	}
	if err := c.doGET(ctx, path, q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *tmdbClient) trending(ctx context.Context) ([]models.CatalogItem, error) {
	return c.list(ctx, "/trending/movie/day", nil)
}

func (c *tmdbClient) topRated(ctx context.Context) ([]models.CatalogItem, error) {
	q := url.Values{}
	q.Set("page", "1")
	return c.list(ctx, "/movie/top_rated", q)
}

func (c *tmdbClient) popular(ctx context.Context) ([]models.CatalogItem, error) {
	q := url.Values{}
	q.Set("page", "1")
	return c.list(ctx, "/movie/popular", q)
}

// upcoming fetches page 1 of upcoming movies, optionally scoped to a
// release region.
func (c *tmdbClient) upcoming(ctx context.Context, region string) ([]models.CatalogItem, error) {
	q := url.Values{}
	q.Set("page", "1")
	if region != "" {
		q.Set("region", region)
	}
	return c.list(ctx, "/movie/upcoming", q)
}

func (c *tmdbClient) movieDetails(ctx context.Context, id int64) (models.CatalogItem, error) {
	var item models.CatalogItem
	if err := c.doGET(ctx, fmt.Sprintf("/movie/%d", id), nil, &item); err != nil {
		return models.CatalogItem{}, err
	}
	return item, nil
}

type tmdbVideo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Size int    `json:"size"`

	// movieID is attached after decoding so track mapping knows the owner.
	movieID int64
}

func (c *tmdbClient) movieVideos(ctx context.Context, movieID int64) ([]tmdbVideo, error) {
	var resp struct {
		Results []tmdbVideo `json:"results"`
	}
	if err := c.doGET(ctx, fmt.Sprintf("/movie/%d/videos", movieID), nil, &resp); err != nil {
		return nil, err
	}
	videos := resp.Results
	for i := range videos {
		videos[i].movieID = movieID
	}
	return videos, nil
}
