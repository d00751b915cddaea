package imdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

const defaultBaseURL = "https://v2.sg.media-imdb.com"

// Title is one IMDb search hit.
type Title struct {
	ID   string
	Name string
	Year int
}

// URL returns the title's IMDb page.
func (t Title) URL() string {
	return fmt.Sprintf("https://www.imdb.com/title/%s/", t.ID)
}

// Client queries the IMDb suggestion API, the same endpoint the site's
// search box uses. No API key required.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewClient returns a client with a sane timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

type suggestionResponse struct {
	D []struct {
		ID string `json:"id"`
		L  string `json:"l"`
		Y  int    `json:"y"`
	} `json:"d"`
}

// Search looks a title up and returns matching IMDb titles, best match
// first. Non-title hits (people, keywords) are filtered out.
func (c *Client) Search(query string) ([]Title, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	// The suggestion API shards by the first character of the query.
	slug := strings.ToLower(strings.ReplaceAll(query, " ", "_"))
	endpoint := fmt.Sprintf("%s/suggestion/%s/%s.json",
		c.BaseURL, url.PathEscape(slug[:1]), url.PathEscape(slug))

	resp, err := c.HTTPClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("querying imdb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imdb returned %s", resp.Status)
	}

	var parsed suggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding imdb response: %w", err)
	}

	var titles []Title
	for _, hit := range parsed.D {
		if !strings.HasPrefix(hit.ID, "tt") {
			continue
		}
		titles = append(titles, Title{ID: hit.ID, Name: hit.L, Year: hit.Y})
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("no imdb results for %q", query)
	}
	return titles, nil
}

// OpenBrowser opens a URL with the platform's default handler.
func OpenBrowser(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	go cmd.Wait()
	return nil
}
