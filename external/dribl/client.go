package dribl

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	"github.com/riskibarqy/vpl-ladder/internal/platform/logging"
	"github.com/riskibarqy/vpl-ladder/internal/platform/resilience"
	"github.com/riskibarqy/vpl-ladder/internal/usecase"
)

const (
	defaultBaseURL   = "https://mc-api.dribl.com/api"
	defaultSeason    = "nPmrj2rmow"
	defaultTenant    = "w8zdBWPmBX"
	defaultTimezone  = "Australia/Sydney"
	defaultDateRange = "default"
	defaultMaxPages  = 50
	maxBodyBytes     = 6 << 20
)

var errDriblTransient = crerr.New("dribl transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Season         string
	Tenant         string
	Timezone       string
	DateRange      string
	Timeout        time.Duration
	MaxPages       int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads age-group leagues and match records from the Dribl
// competition-management API. It implements matchresult.Repository.
type Client struct {
	httpClient *http.Client
	baseURL    string
	season     string
	tenant     string
	timezone   string
	dateRange  string
	location   *time.Location
	maxPages   int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
}

var _ matchresult.Repository = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timezone := firstNonEmpty(cfg.Timezone, defaultTimezone)
	location, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Warn("unknown dribl timezone, falling back to UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}
	maxPages := cfg.MaxPages
	if maxPages < 1 {
		maxPages = defaultMaxPages
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		season:     firstNonEmpty(cfg.Season, defaultSeason),
		tenant:     firstNonEmpty(cfg.Tenant, defaultTenant),
		timezone:   timezone,
		dateRange:  firstNonEmpty(cfg.DateRange, defaultDateRange),
		location:   location,
		maxPages:   maxPages,
		logger:     logger,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}
}

// Breaker exposes the upstream circuit breaker for health reporting. It is
// nil when the breaker is disabled.
func (c *Client) Breaker() *resilience.CircuitBreaker {
	return c.breaker
}

func (c *Client) ListAgeGroups(ctx context.Context, competitionID string) ([]competition.AgeGroup, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return nil, fmt.Errorf("%w: competition id is required", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("season", c.season)
	query.Set("competition", competitionID)
	query.Set("tenant", c.tenant)

	var page pageEnvelope[leagueItem]
	if err := c.doJSON(ctx, "/list/leagues", query, &page); err != nil {
		return nil, fmt.Errorf("list age groups competition=%s: %w", competitionID, err)
	}

	out := make([]competition.AgeGroup, 0, len(page.Data))
	for _, item := range page.Data {
		name := strings.TrimSpace(firstNonEmpty(item.Name, item.Attributes.Name))
		if item.ID == "" || name == "" {
			c.logger.WarnContext(ctx, "skip dribl league without id or name", "competition_id", competitionID, "league_id", string(item.ID))
			continue
		}
		out = append(out, competition.AgeGroup{ID: string(item.ID), Name: name})
	}

	return out, nil
}

// ListByAgeGroup follows meta.next_cursor until the feed is exhausted, the
// cursor repeats or the page limit is reached.
func (c *Client) ListByAgeGroup(ctx context.Context, competitionID, ageGroupID string, kind matchresult.Kind) ([]matchresult.Result, error) {
	competitionID = strings.TrimSpace(competitionID)
	ageGroupID = strings.TrimSpace(ageGroupID)
	if competitionID == "" || ageGroupID == "" {
		return nil, fmt.Errorf("%w: competition id and age group id are required", usecase.ErrInvalidInput)
	}
	if kind != matchresult.KindResults && kind != matchresult.KindFixtures {
		return nil, fmt.Errorf("%w: unsupported feed kind %q", usecase.ErrInvalidInput, kind)
	}

	path := "/" + string(kind)
	seen := make(map[string]struct{}, 4)
	out := make([]matchresult.Result, 0, 64)
	cursor := ""
	for page := 0; page < c.maxPages; page++ {
		query := c.feedQuery(competitionID, ageGroupID)
		if cursor != "" {
			query.Set("cursor", cursor)
		}

		var envelope pageEnvelope[matchItem]
		if err := c.doJSON(ctx, path, query, &envelope); err != nil {
			return nil, fmt.Errorf("list %s competition=%s league=%s page=%d: %w", kind, competitionID, ageGroupID, page, err)
		}
		for _, item := range envelope.Data {
			result, ok := c.toResult(competitionID, ageGroupID, item)
			if !ok {
				c.logger.WarnContext(ctx, "skip dribl match without team names",
					"competition_id", competitionID,
					"league_id", ageGroupID,
					"match_id", string(item.ID),
				)
				continue
			}
			out = append(out, result)
		}

		next := strings.TrimSpace(envelope.Meta.NextCursor)
		if next == "" {
			return out, nil
		}
		if _, dup := seen[next]; dup {
			c.logger.WarnContext(ctx, "dribl cursor repeated, stopping pagination", "kind", string(kind), "league_id", ageGroupID, "cursor", next)
			return out, nil
		}
		seen[next] = struct{}{}
		cursor = next
	}

	c.logger.WarnContext(ctx, "dribl page limit reached", "kind", string(kind), "league_id", ageGroupID, "max_pages", c.maxPages)
	return out, nil
}

func (c *Client) feedQuery(competitionID, ageGroupID string) url.Values {
	query := url.Values{}
	query.Set("date_range", c.dateRange)
	query.Set("season", c.season)
	query.Set("competition", competitionID)
	query.Set("tenant", c.tenant)
	query.Set("timezone", c.timezone)
	query.Set("league", ageGroupID)
	return query
}

func (c *Client) toResult(competitionID, ageGroupID string, item matchItem) (matchresult.Result, bool) {
	attrs := item.Attributes
	home := strings.TrimSpace(attrs.HomeTeamName)
	away := strings.TrimSpace(attrs.AwayTeamName)
	if home == "" || away == "" {
		return matchresult.Result{}, false
	}

	return matchresult.Result{
		ID:            string(item.ID),
		CompetitionID: competitionID,
		AgeGroupID:    ageGroupID,
		LeagueName:    strings.TrimSpace(attrs.LeagueName),
		Round:         matchresult.NormalizeRound(attrs.Round),
		FullRound:     strings.TrimSpace(attrs.FullRound),
		HomeTeamName:  home,
		AwayTeamName:  away,
		HomeLogoURL:   strings.TrimSpace(attrs.HomeLogo),
		AwayLogoURL:   strings.TrimSpace(attrs.AwayLogo),
		HomeScore:     attrs.HomeScore.Value,
		AwayScore:     attrs.AwayScore.Value,
		Status:        matchresult.NormalizeStatus(attrs.Status),
		KickoffAt:     parseKickoff(attrs.Date, c.location),
		GroundName:    strings.TrimSpace(attrs.GroundName),
		FieldName:     strings.TrimSpace(attrs.FieldName),
	}, true
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isDriblCircuitFailure)
		return raw, execErr
	})
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "dribl circuit breaker rejected request", "state", string(c.breaker.State()))
			return fmt.Errorf("%w: competition data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	}

	raw, ok := out.([]byte)
	if !ok {
		return crerr.Newf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, crerr.Wrap(err, "decode dribl payload"))
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "dribl request failed", "url", fullURL, "error", err)
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errDriblTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errDriblTransient)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		if isTransientStatus(resp.StatusCode) {
			statusErr = crerr.Mark(statusErr, errDriblTransient)
		}
		c.logger.WarnContext(ctx, "dribl request rejected", "url", fullURL, "status", resp.StatusCode)
		return nil, statusErr
	}

	return raw, nil
}

// parseKickoff reads RFC 3339 timestamps and falls back to a local
// "2006-01-02 15:04:05" layout in the configured timezone.
func parseKickoff(raw string, location *time.Location) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	if parsed, err := time.ParseInLocation(time.DateTime, raw, location); err == nil {
		return parsed
	}
	return time.Time{}
}

func isDriblCircuitFailure(err error) bool {
	return crerr.Is(err, errDriblTransient)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
