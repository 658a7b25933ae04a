package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/openevents/eventboard/internal/logger"
	"github.com/openevents/eventboard/internal/metrics"
	"github.com/openevents/eventboard/internal/models"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// HTTPSource fetches the event set from a JSON endpoint: GET {baseURL}/events
// returning an array of event objects.
type HTTPSource struct {
	baseURL        string
	httpClient     *http.Client
	maxRetries     int
	retryDelayBase time.Duration
}

// eventDTO is the wire representation of a single event.
type eventDTO struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Country       string `json:"country"`
	Location      string `json:"location"`
	EventType     string `json:"event_type"`
	Participation string `json:"participation"`
	Link          string `json:"link"`
	Organizer     string `json:"organizer"`
}

// NewHTTP creates an HTTP source. maxRetries and retryDelayBase fall back to
// 3 and 1s when non-positive.
func NewHTTP(baseURL string, timeout time.Duration, maxRetries int, retryDelayBase time.Duration) *HTTPSource {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}
	return &HTTPSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}
}

// Fetch retrieves the full event set from the upstream endpoint. Records that
// fail per-record validation or date parsing are skipped with a warning; a
// transport or decode failure fails the whole fetch.
func (s *HTTPSource) Fetch(ctx context.Context) (models.EventSet, error) {
	url := fmt.Sprintf("%s/events", s.baseURL)

	resp, err := s.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status fetching events: %d", resp.StatusCode)
	}

	var dtos []eventDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	events := make(models.EventSet, 0, len(dtos))
	for _, dto := range dtos {
		record, err := dto.toRecord()
		if err != nil {
			logger.Warn("Skipping event %d from %s: %v", dto.ID, url, err)
			continue
		}
		events = append(events, record)
	}

	return events, nil
}

// toRecord maps a wire DTO to the domain model, parsing dates and the
// participation mode. Unrecognized participation values are carried through.
func (d eventDTO) toRecord() (models.EventRecord, error) {
	start, err := time.Parse(dateLayout, d.StartDate)
	if err != nil {
		return models.EventRecord{}, fmt.Errorf("invalid start_date %q: %w", d.StartDate, err)
	}
	end, err := time.Parse(dateLayout, d.EndDate)
	if err != nil {
		return models.EventRecord{}, fmt.Errorf("invalid end_date %q: %w", d.EndDate, err)
	}

	mode, known := models.ParseParticipationMode(d.Participation)
	if !known && d.Participation != "" {
		logger.Debug("Unrecognized participation mode %q for event %d", d.Participation, d.ID)
	}

	record := models.EventRecord{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		StartDate:     start,
		EndDate:       end,
		Country:       d.Country,
		Location:      d.Location,
		EventType:     d.EventType,
		Participation: mode,
		Link:          d.Link,
		Organizer:     d.Organizer,
	}
	if err := record.Validate(); err != nil {
		return models.EventRecord{}, err
	}
	return record, nil
}

// doRequest performs the HTTP request with retry and linear backoff on
// transport errors and 5xx responses.
func (s *HTTPSource) doRequest(ctx context.Context, url string) (*http.Response, error) {
	var lastErr error

	for i := 0; i < s.maxRetries; i++ {
		if i > 0 {
			metrics.FetchRetries.Inc()
			select {
			case <-time.After(s.retryDelayBase * time.Duration(i)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
