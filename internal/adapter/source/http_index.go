// Package source holds the legal reference lookups queried for every question.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"yujuris-api/internal/domain/entity"

	"golang.org/x/time/rate"
)

const userAgent = "Yujuris-Legal-Assistant/1.0"

// maxThrottleWait bounds the time a lookup queues behind the rate limiter.
const maxThrottleWait = 500 * time.Millisecond

// HTTPIndex queries a remote document index that speaks a small JSON search
// protocol: POST {"q","type","limit"} -> {"results":[...]}.
type HTTPIndex struct {
	name       string
	endpoint   string
	limit      int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewHTTPIndex throttles outbound calls to rps with a burst of burst.
func NewHTTPIndex(name, endpoint string, timeout time.Duration, rps float64, burst int) *HTTPIndex {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &HTTPIndex{
		name:     name,
		endpoint: endpoint,
		limit:    10,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

type indexRequest struct {
	Q     string `json:"q"`
	Type  string `json:"type"`
	Limit int    `json:"limit"`
}

type indexResult struct {
	Title     string   `json:"title"`
	Article   string   `json:"article"`
	Code      string   `json:"code"`
	URL       string   `json:"url"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Relevance *float64 `json:"relevance"`
}

type indexResponse struct {
	Results []indexResult `json:"results"`
}

func (h *HTTPIndex) Name() string { return h.name }

func (h *HTTPIndex) Lookup(ctx context.Context, q entity.Query) ([]entity.Snippet, error) {
	waitCtx, cancel := context.WithTimeout(ctx, maxThrottleWait)
	err := h.limiter.Wait(waitCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%s throttled: %w", h.name, err)
	}

	body, err := json.Marshal(indexRequest{Q: q.Text, Type: "all", Limit: h.limit})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", h.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s returned %d: %s", h.name, resp.StatusCode, snippet)
	}

	var parsed indexResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%s decode: %w", h.name, err)
	}

	out := make([]entity.Snippet, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		out = append(out, entity.Snippet{
			Title:     r.Title,
			Article:   entity.StrPtr(r.Article),
			Code:      r.Code,
			URL:       entity.StrPtr(r.URL),
			Excerpt:   r.Excerpt,
			Content:   r.Content,
			Relevance: r.Relevance,
		})
	}
	return out, nil
}
