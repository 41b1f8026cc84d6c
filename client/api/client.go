// Package api is the HTTP client for the Spill backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"spill/internal/model"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Error is a non-2xx response decoded from the server's message body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &Error{Status: resp.StatusCode, Message: body.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	var res AuthResponse
	err := c.postJSON(ctx, "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var res AuthResponse
	err := c.postJSON(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.getJSON(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type CreatePostInput struct {
	VenueID    uint64
	Caption    string
	VibeRating int
	Filename   string
	Image      io.Reader
}

// CreatePost sends the multipart form the camera screen composes.
func (c *Client) CreatePost(ctx context.Context, in CreatePostInput) (*model.Post, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("image", in.Filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, in.Image); err != nil {
		return nil, err
	}
	_ = w.WriteField("venueId", strconv.FormatUint(in.VenueID, 10))
	_ = w.WriteField("caption", in.Caption)
	_ = w.WriteField("vibeRating", strconv.Itoa(in.VibeRating))
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/posts", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var post model.Post
	if err := c.do(req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) VenuePosts(ctx context.Context, venueID uint64) ([]model.Post, error) {
	var posts []model.Post
	err := c.getJSON(ctx, fmt.Sprintf("/posts/venue/%d", venueID), &posts)
	return posts, err
}

func (c *Client) DeletePost(ctx context.Context, postID uint64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/posts/%d", c.baseURL, postID), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) NearbyVenues(ctx context.Context, lat, lng float64) ([]model.Venue, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	var venues []model.Venue
	err := c.getJSON(ctx, "/venues?"+q.Encode(), &venues)
	return venues, err
}

func (c *Client) Checkin(ctx context.Context, venueID uint64) (*model.VenueCheckin, error) {
	var checkin model.VenueCheckin
	err := c.postJSON(ctx, fmt.Sprintf("/venues/%d/checkin", venueID), struct{}{}, &checkin)
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}
