package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resume-matcher/internal/config"
	"resume-matcher/internal/domain/job"

	"go.uber.org/zap"
)

// Client fetches already-filtered, normalized postings for ingestion.
type Client interface {
	FetchJobs(ctx context.Context, roles, companies []string) ([]job.IngestRecord, error)
}

const defaultBaseURL = "https://api.adzuna.com/v1/api/jobs/us/search/1"

// admissionWindow mirrors the recency scorer's decay window; postings older
// than this earn a zero bonus anyway, so they are not admitted at all.
const admissionWindow = 5 * 24 * time.Hour

type adzunaClient struct {
	baseURL string
	appID   string
	appKey  string
	client  *http.Client
	logger  *zap.Logger
	now     func() time.Time
}

func NewAdzunaClient(cfg config.ListingsConfig, logger *zap.Logger) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &adzunaClient{
		baseURL: defaultBaseURL,
		appID:   strings.TrimSpace(cfg.AppID),
		appKey:  strings.TrimSpace(cfg.AppKey),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// externalID tolerates both the numeric and string ids Adzuna returns.
type externalID string

func (e *externalID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*e = externalID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*e = externalID(n.String())
	return nil
}

type adzunaJob struct {
	ID          externalID    `json:"id"`
	Title       string        `json:"title"`
	Company     adzunaCompany `json:"company"`
	Description string        `json:"description"`
	Created     string        `json:"created"`
	RedirectURL string        `json:"redirect_url"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

func (c *adzunaClient) FetchJobs(ctx context.Context, roles, companies []string) ([]job.IngestRecord, error) {
	if c.appID == "" || c.appKey == "" {
		return nil, errors.New("listings credentials not configured")
	}

	q := url.Values{}
	q.Set("app_id", c.appID)
	q.Set("app_key", c.appKey)
	q.Set("results_per_page", "50")
	if len(roles) > 0 {
		q.Set("what", strings.Join(roles, " OR "))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("listings fetch failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode listings response: %w", err)
	}

	now := c.now()
	out := make([]job.IngestRecord, 0, len(payload.Results))
	for _, raw := range payload.Results {
		rec, ok := c.admit(raw, roles, companies, now)
		if !ok {
			continue
		}
		out = append(out, rec)
	}

	if c.logger != nil {
		c.logger.Info("listings fetched",
			zap.Int("received", len(payload.Results)),
			zap.Int("admitted", len(out)),
		)
	}
	return out, nil
}

// admit applies the upstream filtering contract: a posting must be at most
// five days old, its title must contain a requested role, and when an
// allow-list is present its company must contain one of the listed names.
func (c *adzunaClient) admit(raw adzunaJob, roles, companies []string, now time.Time) (job.IngestRecord, bool) {
	postedAt := parsePostedDate(raw.Created)
	if postedAt != nil && now.Sub(*postedAt) > admissionWindow {
		return job.IngestRecord{}, false
	}

	title := strings.ToLower(raw.Title)
	matched := false
	for _, role := range roles {
		if role == "" {
			continue
		}
		if strings.Contains(title, strings.ToLower(role)) {
			matched = true
			break
		}
	}
	if !matched {
		return job.IngestRecord{}, false
	}

	company := strings.TrimSpace(raw.Company.DisplayName)
	if len(companies) > 0 {
		folded := strings.ToLower(company)
		allowed := false
		for _, want := range companies {
			if want == "" {
				continue
			}
			if strings.Contains(folded, strings.ToLower(want)) {
				allowed = true
				break
			}
		}
		if !allowed {
			return job.IngestRecord{}, false
		}
	}

	rec := job.IngestRecord{
		Title:       raw.Title,
		Description: raw.Description,
		PostedAt:    postedAt,
	}

	extID := strings.TrimSpace(string(raw.ID))
	if extID == "" {
		extID = strings.TrimSpace(raw.RedirectURL)
	}
	if extID != "" {
		rec.ExternalID = &extID
	}
	if company != "" {
		rec.Company = &company
	}
	if u := strings.TrimSpace(raw.RedirectURL); u != "" {
		rec.ApplyURL = &u
	}
	return rec, true
}

func parsePostedDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		utc := t.UTC()
		return &utc
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		utc := t.UTC()
		return &utc
	}
	return nil
}
