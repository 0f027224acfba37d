package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"LostAndFound/internal/cli/api"
)

const dateOnly = "2006-01-02"

// ItemCreator is the subset of the API client the form needs.
type ItemCreator interface {
	CreateItem(ctx context.Context, item api.NewItem) (string, error)
}

// ItemForm collects the add-item fields as entered, text dates included.
// Validation and date parsing happen on Submit, before any network call.
type ItemForm struct {
	Name            string
	FoundLocation   string
	StorageLocation string
	FoundDate       string
	ExpirationDate  string
	Status          string
	Description     string
	ImagePath       string
}

// Validate checks the required fields and reports all missing ones in a
// single message.
func (f *ItemForm) Validate() error {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.FoundLocation) == "" {
		missing = append(missing, "found_location")
	}
	if strings.TrimSpace(f.StorageLocation) == "" {
		missing = append(missing, "storage_location")
	}
	if strings.TrimSpace(f.FoundDate) == "" {
		missing = append(missing, "found_date")
	}
	if strings.TrimSpace(f.ExpirationDate) == "" {
		missing = append(missing, "expiration_date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required fields missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Submit validates, builds the API payload and sends it. The form is reset
// only after server success.
func (f *ItemForm) Submit(ctx context.Context, creator ItemCreator, admin bool) (string, error) {
	if !admin {
		return "", ErrAdminRequired
	}
	if err := f.Validate(); err != nil {
		return "", err
	}

	foundDate, err := parseFormDate(f.FoundDate)
	if err != nil {
		return "", fmt.Errorf("invalid found_date %q", f.FoundDate)
	}
	expiration, err := parseFormDate(f.ExpirationDate)
	if err != nil {
		return "", fmt.Errorf("invalid expiration_date %q", f.ExpirationDate)
	}

	item := api.NewItem{
		Name:            strings.TrimSpace(f.Name),
		FoundLocation:   strings.TrimSpace(f.FoundLocation),
		StorageLocation: strings.TrimSpace(f.StorageLocation),
		FoundDate:       foundDate,
		ExpirationDate:  expiration,
		Status:          f.Status,
		Description:     f.Description,
	}

	var file io.Closer
	if f.ImagePath != "" {
		img, err := os.Open(f.ImagePath)
		if err != nil {
			return "", fmt.Errorf("open image: %w", err)
		}
		file = img
		item.ImageName = filepath.Base(f.ImagePath)
		item.ImageData = img
	}

	id, err := creator.CreateItem(ctx, item)
	if file != nil {
		file.Close()
	}
	if err != nil {
		return "", err
	}

	f.Reset()
	return id, nil
}

// Reset clears every field, the image path included.
func (f *ItemForm) Reset() {
	*f = ItemForm{}
}

// TranslateError maps known backend messages to friendlier text. Anything
// unrecognized passes through as-is.
func TranslateError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case err == ErrAdminRequired || strings.Contains(lower, "login required") || strings.Contains(lower, "unauthorized"):
		return "Please sign in as an administrator first."
	case strings.Contains(lower, "invalid or expired session") || strings.Contains(lower, "jwt expired"):
		return "Your session has expired. Please sign in again."
	default:
		return msg
	}
}

func parseFormDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", dateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
