package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Minimal YouTube Data v3 client for the most-popular music chart.

const youtubeVideosURL = "https://youtube.googleapis.com/youtube/v3/videos"

type youtubeClient struct {
	apiKey string
	httpc  *http.Client
}

func newYouTubeClient(apiKey string, httpc *http.Client) *youtubeClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &youtubeClient{apiKey: apiKey, httpc: httpc}
}

func (c *youtubeClient) isConfigured() bool {
	return c.apiKey != ""
}

type youtubeThumbnail struct {
	URL string `json:"url"`
}

type youtubeVideo struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string   `json:"title"`
		ChannelTitle string   `json:"channelTitle"`
		Tags         []string `json:"tags"`
		Thumbnails   struct {
			Default youtubeThumbnail `json:"default"`
			Medium  youtubeThumbnail `json:"medium"`
			High    youtubeThumbnail `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
		LikeCount string `json:"likeCount"`
	} `json:"statistics"`
}

// mostPopularMusic fetches the US most-popular chart for the music
// category (id 10), up to 25 entries.
func (c *youtubeClient) mostPopularMusic(ctx context.Context) ([]youtubeVideo, error) {
	q := url.Values{}
	q.Set("part", "snippet,statistics")
	q.Set("chart", "mostPopular")
	q.Set("maxResults", "25")
	q.Set("regionCode", "US")
	q.Set("videoCategoryId", "10")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, youtubeVideosURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("youtube fetch failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	var payload struct {
		Items []youtubeVideo `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}
