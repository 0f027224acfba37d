// Package api is the thin HTTP client for the registry's item endpoints.
// Authentication flows live in internal/authn; this package only attaches
// the token it is given.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

// Item mirrors the server's wire representation with parsed dates.
type Item struct {
	ID              string
	Name            string
	FoundLocation   string
	StorageLocation string
	FoundDate       time.Time
	ExpirationDate  time.Time
	Status          string
	ImageURL        string
	Description     string
}

// NewItem carries the fields of an item to be registered.
type NewItem struct {
	Name            string
	FoundLocation   string
	StorageLocation string
	FoundDate       time.Time
	ExpirationDate  time.Time
	Status          string
	Description     string

	// ImagePath, when non-empty, is read and uploaded alongside the form.
	ImageName string
	ImageData io.Reader
}

// Client talks to the registry server. Token, when set, is sent as the auth
// cookie on every request.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    http.DefaultClient,
	}
}

type wireItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	FoundLocation   string `json:"found_location"`
	StorageLocation string `json:"storage_location"`
	FoundDate       string `json:"found_date"`
	ExpirationDate  string `json:"expiration_date"`
	Status          string `json:"status"`
	ImageURL        string `json:"image_url"`
	Description     string `json:"description"`
}

// ListItems fetches all items, most recently found first.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/items", nil)
	if err != nil {
		return nil, err
	}

	resp, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp, body)
	}

	var wire []wireItem
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items := make([]Item, 0, len(wire))
	for _, w := range wire {
		items = append(items, fromWire(w))
	}
	return items, nil
}

// CreateItem registers a new item via the multipart endpoint and returns the
// assigned id.
func (c *Client) CreateItem(ctx context.Context, item NewItem) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":             item.Name,
		"found_location":   item.FoundLocation,
		"storage_location": item.StorageLocation,
		"status":           item.Status,
		"description":      item.Description,
	}
	if !item.FoundDate.IsZero() {
		fields["found_date"] = item.FoundDate.UTC().Format(time.RFC3339)
	}
	if !item.ExpirationDate.IsZero() {
		fields["expiration_date"] = item.ExpirationDate.UTC().Format(dateOnly)
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := mw.WriteField(name, value); err != nil {
			return "", err
		}
	}
	if item.ImageData != nil {
		part, err := mw.CreateFormFile("image", filepath.Base(item.ImageName))
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(part, item.ImageData); err != nil {
			return "", fmt.Errorf("read image: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/items", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, body, err := c.do(req)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", serverError(resp, body)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	return created.ID, nil
}

// UpdateItemStatus flips an item between claimed and unclaimed.
func (c *Client) UpdateItemStatus(ctx context.Context, id, status string) error {
	payload, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/items/%s/status", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, body, err := c.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return serverError(resp, body)
	}
	return nil
}

// DeleteItem removes an item and its stored image.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/api/items/"+id, nil)
	if err != nil {
		return err
	}

	resp, body, err := c.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return serverError(resp, body)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	if c.Token != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: c.Token})
	}
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

func serverError(resp *http.Response, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, msg)
}

func fromWire(w wireItem) Item {
	it := Item{
		ID:              w.ID,
		Name:            w.Name,
		FoundLocation:   w.FoundLocation,
		StorageLocation: w.StorageLocation,
		Status:          w.Status,
		ImageURL:        w.ImageURL,
		Description:     w.Description,
	}
	if t, err := time.Parse(time.RFC3339, w.FoundDate); err == nil {
		it.FoundDate = t
	}
	if t, err := time.Parse(dateOnly, w.ExpirationDate); err == nil {
		it.ExpirationDate = t
	} else if t, err := time.Parse(time.RFC3339, w.ExpirationDate); err == nil {
		it.ExpirationDate = t
	}
	return it
}
