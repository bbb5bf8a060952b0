// ABOUTME: Authenticated REST client for the MacroFactor backend.
// ABOUTME: One method per domain action; each is a single round trip mapped to typed records.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/macrofactor/internal/food"
	"github.com/harperreed/macrofactor/internal/logs"
	"github.com/harperreed/macrofactor/internal/models"
)

const defaultBaseURL = "https://api.macrofactorapp.com/v1"

// TokenSource supplies the current bearer token for each request.
// *auth.Exchanger implements it.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client issues authenticated requests against the backend. Zero-value
// fields get production defaults; tests point BaseURL at a fake server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
	Logger     *slog.Logger

	// newEntryID generates client-assigned ids for write operations.
	newEntryID func() string
}

// GetProfile fetches the semi-structured user profile document.
func (c *Client) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, "get profile", http.MethodGet, "/profile", nil, nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetGoals fetches the weekly calorie/macro targets and TDEE.
func (c *Client) GetGoals(ctx context.Context) (models.Goals, error) {
	var goals models.Goals
	if err := c.do(ctx, "get goals", http.MethodGet, "/goals", nil, nil, &goals); err != nil {
		return models.Goals{}, err
	}
	return goals, nil
}

// GetNutrition fetches daily nutrition totals for the inclusive date range.
// A range with no data yields an empty slice, not an error.
func (c *Client) GetNutrition(ctx context.Context, start, end models.Date) ([]models.NutritionDay, error) {
	const op = "get nutrition"
	if err := validateRange(op, start, end); err != nil {
		return nil, err
	}

	var resp struct {
		Days []models.NutritionDay `json:"days"`
	}
	if err := c.do(ctx, op, http.MethodGet, "/nutrition", rangeQuery(start, end), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Days, nil
}

// GetFoodLog fetches the food entries for exactly one date.
func (c *Client) GetFoodLog(ctx context.Context, date models.Date) ([]models.FoodLogEntry, error) {
	var resp struct {
		Entries []models.FoodLogEntry `json:"entries"`
	}
	path := "/food-log/" + date.String()
	if err := c.do(ctx, "get food log", http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// GetWeightEntries fetches weight entries for the inclusive date range.
func (c *Client) GetWeightEntries(ctx context.Context, start, end models.Date) ([]models.WeightEntry, error) {
	const op = "get weight entries"
	if err := validateRange(op, start, end); err != nil {
		return nil, err
	}

	var resp struct {
		Entries []models.WeightEntry `json:"entries"`
	}
	if err := c.do(ctx, op, http.MethodGet, "/weights", rangeQuery(start, end), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// GetSteps fetches step counts for the inclusive date range.
func (c *Client) GetSteps(ctx context.Context, start, end models.Date) ([]models.StepEntry, error) {
	const op = "get steps"
	if err := validateRange(op, start, end); err != nil {
		return nil, err
	}

	var resp struct {
		Entries []models.StepEntry `json:"entries"`
	}
	if err := c.do(ctx, op, http.MethodGet, "/steps", rangeQuery(start, end), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// foodEntryRequest is the write shape for one food-log entry. The backend
// accepts client-assigned entry ids; the timestamp is split into the date
// plus local-time hour and minute.
type foodEntryRequest struct {
	EntryID  string  `json:"entry_id"`
	Date     string  `json:"date"`
	Hour     string  `json:"hour"`
	Minute   string  `json:"minute"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LogFood writes a manual food entry at an explicit point in time. The
// date + time-of-day split lets multiple entries share a day.
func (c *Client) LogFood(ctx context.Context, at time.Time, name string, calories, protein, carbs, fat float64) error {
	entry := foodEntryRequest{
		EntryID:  c.entryID(),
		Date:     models.DateOf(at).String(),
		Hour:     fmt.Sprintf("%d", at.Hour()),
		Minute:   fmt.Sprintf("%02d", at.Minute()),
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	return c.do(ctx, "log food", http.MethodPost, "/food-log", nil, entry, nil)
}

// SearchFoods runs a free-text search against the backend food database.
// Result order is whatever the backend returned; it is not re-sorted.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]models.SearchFoodResult, error) {
	var resp struct {
		Foods []models.SearchFoodResult `json:"foods"`
	}
	q := url.Values{"q": {query}}
	if err := c.do(ctx, "search foods", http.MethodGet, "/foods/search", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Foods, nil
}

// LogSearchedFood writes a food-log entry derived from a search result and
// a chosen serving. quantity multiplies one unit of the serving. The backend
// sees exactly what a manually-entered food would look like.
func (c *Client) LogSearchedFood(ctx context.Context, at time.Time, result models.SearchFoodResult, serving models.FoodServing, quantity float64) error {
	scaled, err := food.Scale(result, serving, quantity)
	if err != nil {
		return &Error{Op: "log searched food", Kind: KindBadRequest, Err: err}
	}
	return c.LogFood(ctx, at, result.Name, scaled.Calories, scaled.Protein, scaled.Carbs, scaled.Fat)
}

// DeleteFoodEntry deletes one entry from one date's food log. A missing
// entry id surfaces as KindNotFound.
func (c *Client) DeleteFoodEntry(ctx context.Context, date models.Date, entryID string) error {
	path := "/food-log/" + date.String() + "/" + url.PathEscape(entryID)
	return c.do(ctx, "delete food entry", http.MethodDelete, path, nil, nil, nil)
}

// DeleteWeightEntry deletes the weight entry for a date if present.
// Behavior when a date somehow holds multiple entries is backend-defined.
func (c *Client) DeleteWeightEntry(ctx context.Context, date models.Date) error {
	path := "/weights/" + date.String()
	return c.do(ctx, "delete weight entry", http.MethodDelete, path, nil, nil, nil)
}

// LogWeight writes a weight entry in kilograms, with optional body fat.
func (c *Client) LogWeight(ctx context.Context, date models.Date, weightKg float64, bodyFat *float64) error {
	body := struct {
		EntryID  string   `json:"entry_id"`
		Date     string   `json:"date"`
		WeightKg float64  `json:"weight_kg"`
		BodyFat  *float64 `json:"body_fat,omitempty"`
	}{
		EntryID:  c.entryID(),
		Date:     date.String(),
		WeightKg: weightKg,
		BodyFat:  bodyFat,
	}
	return c.do(ctx, "log weight", http.MethodPost, "/weights", nil, body, nil)
}

// LogNutrition manually overrides a day's totals. The optional macros may
// be omitted independently of calories.
func (c *Client) LogNutrition(ctx context.Context, date models.Date, calories float64, protein, carbs, fat *float64) error {
	body := struct {
		Date     string   `json:"date"`
		Calories float64  `json:"calories"`
		Protein  *float64 `json:"protein,omitempty"`
		Carbs    *float64 `json:"carbs,omitempty"`
		Fat      *float64 `json:"fat,omitempty"`
	}{
		Date:     date.String(),
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	return c.do(ctx, "log nutrition", http.MethodPost, "/nutrition", nil, body, nil)
}

// SyncDay asks the backend to recompute a day's aggregate totals from its
// entries. Reads of aggregated nutrition may be stale until this runs after
// a write that changed the day.
func (c *Client) SyncDay(ctx context.Context, date models.Date) error {
	path := "/days/" + date.String() + "/sync"
	return c.do(ctx, "sync day", http.MethodPost, path, nil, nil, nil)
}

// validateRange rejects end < start locally, before any network call.
func validateRange(op string, start, end models.Date) error {
	if start.After(end) {
		return &Error{
			Op:   op,
			Kind: KindBadRequest,
			Err:  fmt.Errorf("end date %s is before start date %s", end, start),
		}
	}
	return nil
}

func rangeQuery(start, end models.Date) url.Values {
	return url.Values{
		"start": {start.String()},
		"end":   {end.String()},
	}
}

func (c *Client) entryID() string {
	if c.newEntryID == nil {
		return uuid.NewString()
	}
	return c.newEntryID()
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return logs.Discard()
	}
	return c.Logger
}

// do performs one authenticated round trip: token, request, status check,
// decode. All failure paths return *Error with the operation name attached.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	if c.Tokens == nil {
		return fmt.Errorf("%s: no token source configured", op)
	}
	token, err := c.Tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	reqURL := base + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger().Debug("backend request", "op", op, "method", method, "url", reqURL)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Status: resp.StatusCode, Err: err}
	}

	c.logger().Debug("backend response", "op", op, "status", resp.StatusCode, "bytes", len(raw))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Op: op, Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Op: op, Kind: KindDecode, Status: resp.StatusCode, Body: string(raw), Err: err}
		}
	}
	return nil
}
