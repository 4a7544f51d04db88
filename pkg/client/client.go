// Package client is a typed wrapper over the site's REST API: one method per
// endpoint, the stored bearer token attached to each request, and the
// response envelope unwrapped before results reach the caller. No retries,
// no caching — each call is a single request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// FieldError mirrors one validation violation from the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is any non-2xx response, carrying the envelope's message and
// violation list.
type APIError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors"`
}

type Client struct {
	baseURL string
	http    *http.Client
	session Session
}

// New builds a client for the API at baseURL. A nil httpClient falls back to
// http.DefaultClient (and its default timeout behavior); a nil session gets
// a fresh in-memory one.
func New(baseURL string, httpClient *http.Client, session Session) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if session == nil {
		session = NewMemorySession()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: session,
	}
}

func (c *Client) Session() Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (string, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return "", nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		return "", &APIError{Status: resp.StatusCode, Message: env.Message, Errors: env.Errors}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decode data: %w", err)
		}
	}
	return env.Message, nil
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode}
	}
	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Login stores the issued token in the session on success.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	payload := map[string]string{"email": email, "password": password}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &result); err != nil {
		return nil, err
	}
	c.session.SetToken(result.Token)
	return &result, nil
}

func (c *Client) Logout() {
	c.session.SetToken("")
}

func (c *Client) Me(ctx context.Context) (*AdminProfile, error) {
	var profile AdminProfile
	if _, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateMe(ctx context.Context, payload ProfilePayload) (*AdminProfile, error) {
	var profile AdminProfile
	if _, err := c.do(ctx, http.MethodPut, "/api/auth/me", payload, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) Home(ctx context.Context) (*HomeContent, error) {
	var home HomeContent
	if _, err := c.do(ctx, http.MethodGet, "/api/public/home", nil, &home); err != nil {
		return nil, err
	}
	return &home, nil
}

func (c *Client) Music(ctx context.Context) ([]Track, error) {
	var tracks []Track
	if _, err := c.do(ctx, http.MethodGet, "/api/public/music", nil, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (c *Client) Videos(ctx context.Context) ([]Video, error) {
	var videos []Video
	if _, err := c.do(ctx, http.MethodGet, "/api/public/videos", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (c *Client) TourDates(ctx context.Context, includePast bool) ([]TourDate, error) {
	path := "/api/public/tour-dates"
	if includePast {
		path += "?includePast=true"
	}
	var tours []TourDate
	if _, err := c.do(ctx, http.MethodGet, path, nil, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *Client) Merch(ctx context.Context) ([]MerchItem, error) {
	var merch []MerchItem
	if _, err := c.do(ctx, http.MethodGet, "/api/public/merch", nil, &merch); err != nil {
		return nil, err
	}
	return merch, nil
}

// Subscribe returns the server's message; repeat subscriptions succeed.
func (c *Client) Subscribe(ctx context.Context, email string) (string, error) {
	return c.do(ctx, http.MethodPost, "/api/public/subscribe", map[string]string{"email": email}, nil)
}

func (c *Client) Contact(ctx context.Context, name, email, message string) (string, error) {
	payload := map[string]string{"name": name, "email": email, "message": message}
	return c.do(ctx, http.MethodPost, "/api/public/contact", payload, nil)
}

func (c *Client) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) Hero(ctx context.Context) (*HeroHighlight, error) {
	var hero *HeroHighlight
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/hero", nil, &hero); err != nil {
		return nil, err
	}
	return hero, nil
}

func (c *Client) PutHero(ctx context.Context, payload HeroPayload) (*HeroHighlight, error) {
	var hero HeroHighlight
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/hero", payload, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

func (c *Client) About(ctx context.Context) (*About, error) {
	var about *About
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/about", nil, &about); err != nil {
		return nil, err
	}
	return about, nil
}

func (c *Client) PutAbout(ctx context.Context, payload AboutPayload) (*About, error) {
	var about About
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/about", payload, &about); err != nil {
		return nil, err
	}
	return &about, nil
}

func (c *Client) ListTracks(ctx context.Context) ([]Track, error) {
	var tracks []Track
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/tracks", nil, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (c *Client) CreateTrack(ctx context.Context, payload TrackPayload) (*Track, error) {
	var track Track
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/tracks", payload, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

func (c *Client) UpdateTrack(ctx context.Context, id string, payload TrackPayload) (*Track, error) {
	var track Track
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/tracks/"+url.PathEscape(id), payload, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

func (c *Client) DeleteTrack(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/tracks/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) ListVideos(ctx context.Context) ([]Video, error) {
	var videos []Video
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/videos", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (c *Client) CreateVideo(ctx context.Context, payload VideoPayload) (*Video, error) {
	var video Video
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/videos", payload, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) UpdateVideo(ctx context.Context, id string, payload VideoPayload) (*Video, error) {
	var video Video
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/videos/"+url.PathEscape(id), payload, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/videos/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) ListTours(ctx context.Context) ([]TourDate, error) {
	var tours []TourDate
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/tours", nil, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *Client) CreateTour(ctx context.Context, payload TourPayload) (*TourDate, error) {
	var tour TourDate
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/tours", payload, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (c *Client) UpdateTour(ctx context.Context, id string, payload TourPayload) (*TourDate, error) {
	var tour TourDate
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/tours/"+url.PathEscape(id), payload, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (c *Client) DeleteTour(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/tours/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) ListMerch(ctx context.Context) ([]MerchItem, error) {
	var merch []MerchItem
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/merch", nil, &merch); err != nil {
		return nil, err
	}
	return merch, nil
}

func (c *Client) CreateMerch(ctx context.Context, payload MerchPayload) (*MerchItem, error) {
	var item MerchItem
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/merch", payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMerch(ctx context.Context, id string, payload MerchPayload) (*MerchItem, error) {
	var item MerchItem
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/merch/"+url.PathEscape(id), payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMerch(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/merch/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) Subscribers(ctx context.Context) ([]Subscriber, error) {
	var subscribers []Subscriber
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/subscribers", nil, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (c *Client) Messages(ctx context.Context) ([]ContactMessage, error) {
	var messages []ContactMessage
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/messages", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) UpdateMessageStatus(ctx context.Context, id, status string) (*ContactMessage, error) {
	var msg ContactMessage
	path := "/api/admin/messages/" + url.PathEscape(id) + "/status"
	if _, err := c.do(ctx, http.MethodPut, path, map[string]string{"status": status}, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
