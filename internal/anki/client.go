// Package anki talks to a local AnkiConnect endpoint and exposes the
// user's collection as a vocabulary snapshot source.
package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is where AnkiConnect listens out of the box.
	DefaultBaseURL = "http://127.0.0.1:8765"

	// protocolVersion is sent with every request; AnkiConnect rejects
	// mismatched majors.
	protocolVersion = 6
)

// Client is a thin AnkiConnect RPC client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the default local endpoint.
func NewClient(logger *slog.Logger) *Client {
	return NewClientWithURL(DefaultBaseURL, logger)
}

// NewClientWithURL creates a Client with a custom endpoint (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "anki"),
	}
}

// SetTimeout overrides the default per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// do performs one RPC call and decodes the result envelope into out.
func (c *Client) do(ctx context.Context, action string, params, out any) error {
	body, err := json.Marshal(request{Action: action, Version: protocolVersion, Params: params})
	if err != nil {
		return fmt.Errorf("anki: marshal %s: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("anki: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "anki request", slog.String("action", action))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("anki: %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("anki: %s: unexpected status %d", action, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anki: %s: read body: %w", action, err)
	}

	var envelope response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("anki: %s: decode json: %w", action, err)
	}
	if envelope.Error != nil && *envelope.Error != "" {
		return fmt.Errorf("anki: %s: %s", action, *envelope.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("anki: %s: decode result: %w", action, err)
	}
	return nil
}

// Version returns the AnkiConnect API version.
func (c *Client) Version(ctx context.Context) (int, error) {
	var v int
	if err := c.do(ctx, "version", nil, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// WaitAwake polls the version endpoint until AnkiConnect answers or the
// context expires. Anki starts slowly; the poll interval is coarse on
// purpose.
func (c *Client) WaitAwake(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		if _, err := c.Version(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("anki: waiting for AnkiConnect: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// FindNotes returns the note ids matching an Anki search query.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	params := map[string]string{"query": query}
	if err := c.do(ctx, "findNotes", params, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// NoteField is one field value on a note.
type NoteField struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// Note is the notesInfo shape, trimmed to what the miner reads.
type Note struct {
	NoteID    int64                `json:"noteId"`
	ModelName string               `json:"modelName"`
	Fields    map[string]NoteField `json:"fields"`
	Cards     []int64              `json:"cards"`
}

// NotesInfo fetches full note data for the given ids.
func (c *Client) NotesInfo(ctx context.Context, ids []int64) ([]Note, error) {
	var notes []Note
	params := map[string][]int64{"notes": ids}
	if err := c.do(ctx, "notesInfo", params, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Intervals returns the current scheduling interval, in days, for each
// card. AnkiConnect encodes learning-phase intervals as negative seconds;
// those are converted so callers always see days.
func (c *Client) Intervals(ctx context.Context, cardIDs []int64) ([]float64, error) {
	var raw []float64
	params := map[string]any{"cards": cardIDs, "complete": false}
	if err := c.do(ctx, "getIntervals", params, &raw); err != nil {
		return nil, err
	}
	for i, v := range raw {
		if v < 0 {
			raw[i] = -v / 86400
		}
	}
	return raw, nil
}
