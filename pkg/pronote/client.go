package pronote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the portal's JSON API. The HTTP timeout is fixed at
// construction and applies to every call; nothing patches transport
// state afterwards. Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a portal client for the given base URL. httpTimeout
// bounds each individual network call, independent of the per-operation
// budgets the caller enforces on top.
func NewClient(baseURL string, httpTimeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// SchoolURL returns the portal base URL.
func (c *Client) SchoolURL() string {
	return c.baseURL
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token      string `json:"token"`
	APIVersion string `json:"api_version"`
	LoggedIn   bool   `json:"logged_in"`
}

// Login performs the authentication handshake and returns a Session
// bound to the issued token.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/auth/login", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build login request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call portal login API: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidCredentials
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("portal login error %d: %s", resp.StatusCode, string(raw))
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if !lr.LoggedIn || lr.Token == "" {
		return nil, ErrInvalidCredentials
	}
	if lr.APIVersion != ExpectedAPIVersion {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrVersionMismatch, lr.APIVersion, ExpectedAPIVersion)
	}

	return &httpSession{
		baseURL:    c.baseURL,
		token:      lr.Token,
		httpClient: c.httpClient,
	}, nil
}

// httpSession implements Session over the portal's JSON API. All fields
// are immutable after login and http.Client is safe for concurrent use,
// so concurrent read calls are safe as the interface requires.
type httpSession struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func (s *httpSession) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := fmt.Sprintf("%s%s", s.baseURL, path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build portal request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.token))

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call portal API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("portal API error %d on %s: %s", resp.StatusCode, path, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode portal response for %s: %w", path, err)
	}
	return nil
}

// --- Wire DTOs. Decoded once, converted to the typed records above. ---

type wireSubject struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (w wireSubject) toSubject() Subject {
	return Subject{Name: w.Name, Code: w.Code}
}

type wireGrade struct {
	Date        *string     `json:"date"`
	Subject     wireSubject `json:"subject"`
	Value       Scalar      `json:"value"`
	OutOf       Scalar      `json:"out_of"`
	Coefficient Scalar      `json:"coefficient"`
	Comment     string      `json:"comment"`
}

type wirePeriod struct {
	Name   string      `json:"name"`
	Grades []wireGrade `json:"grades"`
}

type wireContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type wireLesson struct {
	Start     string       `json:"start"`
	End       string       `json:"end"`
	Subject   wireSubject  `json:"subject"`
	Classroom string       `json:"classroom"`
	Canceled  bool         `json:"canceled"`
	Content   *wireContent `json:"content"`
}

type wireHomework struct {
	ID          string      `json:"id"`
	Given       *string     `json:"given"`
	Due         *string     `json:"due"`
	Subject     wireSubject `json:"subject"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Done        bool        `json:"done"`
}

// parseOptionalDate decodes a nullable YYYY-MM-DD wire date. Unparsable
// input degrades to nil rather than failing the whole record set.
func parseOptionalDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	d, err := time.Parse(dateFormat, *raw)
	if err != nil {
		return nil
	}
	return &d
}

func (s *httpSession) Periods(ctx context.Context) ([]Period, error) {
	var wire struct {
		Periods []wirePeriod `json:"periods"`
	}
	if err := s.get(ctx, "/api/periods", nil, &wire); err != nil {
		return nil, err
	}

	periods := make([]Period, 0, len(wire.Periods))
	for _, wp := range wire.Periods {
		grades := make([]Grade, 0, len(wp.Grades))
		for _, wg := range wp.Grades {
			grades = append(grades, Grade{
				Date:        parseOptionalDate(wg.Date),
				Subject:     wg.Subject.toSubject(),
				Value:       wg.Value,
				OutOf:       wg.OutOf,
				Coefficient: wg.Coefficient,
				Comment:     wg.Comment,
			})
		}
		periods = append(periods, Period{Name: wp.Name, Grades: grades})
	}
	return periods, nil
}

func (s *httpSession) Lessons(ctx context.Context, start, end time.Time, includeContent bool) ([]Lesson, error) {
	query := url.Values{}
	query.Set("from", start.Format(dateFormat))
	query.Set("to", end.Format(dateFormat))
	if includeContent {
		query.Set("content", "1")
	}

	var wire struct {
		Lessons []wireLesson `json:"lessons"`
	}
	if err := s.get(ctx, "/api/lessons", query, &wire); err != nil {
		return nil, err
	}

	lessons := make([]Lesson, 0, len(wire.Lessons))
	for _, wl := range wire.Lessons {
		startAt, err := time.Parse(time.RFC3339, wl.Start)
		if err != nil {
			return nil, fmt.Errorf("bad lesson start %q: %w", wl.Start, err)
		}
		endAt, err := time.Parse(time.RFC3339, wl.End)
		if err != nil {
			return nil, fmt.Errorf("bad lesson end %q: %w", wl.End, err)
		}

		lesson := Lesson{
			Start:     startAt,
			End:       endAt,
			Subject:   wl.Subject.toSubject(),
			Classroom: wl.Classroom,
			Canceled:  wl.Canceled,
		}
		if wl.Content != nil {
			lesson.Content = &LessonContent{
				Title:       wl.Content.Title,
				Description: wl.Content.Description,
			}
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}

func (s *httpSession) Homework(ctx context.Context, start, end time.Time) ([]Homework, error) {
	query := url.Values{}
	query.Set("from", start.Format(dateFormat))
	query.Set("to", end.Format(dateFormat))

	var wire struct {
		Homework []wireHomework `json:"homework"`
	}
	if err := s.get(ctx, "/api/homework", query, &wire); err != nil {
		return nil, err
	}

	items := make([]Homework, 0, len(wire.Homework))
	for _, wh := range wire.Homework {
		items = append(items, Homework{
			ID:          wh.ID,
			Given:       parseOptionalDate(wh.Given),
			Due:         parseOptionalDate(wh.Due),
			Subject:     wh.Subject.toSubject(),
			Title:       wh.Title,
			Description: wh.Description,
			Done:        wh.Done,
		})
	}
	return items, nil
}

// Close releases session resources. The HTTP session holds no
// connection state of its own beyond the shared transport.
func (s *httpSession) Close() {}
