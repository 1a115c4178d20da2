package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"portfolio/model"
)

// Client talks JSON to the portfolio API. Token, when set, is sent as a
// bearer credential on every request.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login exchanges admin credentials for the bearer token used by every
// later mutation.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/login", in, &out); err != nil {
		return err
	}
	c.Token = out.Token
	return nil
}

// Stats returns the dashboard counters.
func (c *Client) Stats(ctx context.Context) (map[string]int64, error) {
	var out map[string]int64
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resource is the typed CRUD surface for one collection endpoint.
type Resource[T any] struct {
	c    *Client
	path string
}

func Skills(c *Client) *Resource[model.SkillCard] {
	return &Resource[model.SkillCard]{c: c, path: "/api/skills"}
}

func Experiences(c *Client) *Resource[model.Experience] {
	return &Resource[model.Experience]{c: c, path: "/api/experiences"}
}

// Portfolios keeps the misspelled path the server has always exposed.
func Portfolios(c *Client) *Resource[model.Portfolio] {
	return &Resource[model.Portfolio]{c: c, path: "/api/portofolios"}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Create(ctx context.Context, row T) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPost, r.path, row, &out)
	return out, err
}

func (r *Resource[T]) Update(ctx context.Context, id uint, row T) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), row, &out)
	return out, err
}

// SetActive flips public visibility through a partial update and returns
// the row as the server now holds it.
func (r *Resource[T]) SetActive(ctx context.Context, id uint, active bool) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", r.path, id), map[string]bool{"isActive": active}, &out)
	return out, err
}

func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
}
