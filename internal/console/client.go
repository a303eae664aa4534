// Package console is the operator-side toolkit for the admin API: it fetches
// and normalizes user records, tracks section-scoped edits, routes each
// section's save to its own endpoint, and manages the profile-photo
// sub-resource. It is the Go counterpart of the browser console's data layer.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"time"

	"github.com/punjabi-rishtey/admin-api/internal/profile"
)

var (
	ErrEmptyPassword        = errors.New("please enter a new password")
	ErrConfirmationDeclined = errors.New("confirmation declined")
)

// Session supplies the bearer token attached to every authenticated call.
// It is injected rather than read from ambient storage so tests can
// substitute a fake without touching any real credential store.
type Session interface {
	Token() (string, error)
}

// StaticSession is a fixed-token Session.
type StaticSession string

func (s StaticSession) Token() (string, error) { return string(s), nil }

// ConfirmFunc is consulted before destructive actions. It receives a
// human-readable prompt and reports whether the operator approved.
type ConfirmFunc func(prompt string) bool

// Client talks to the admin API on behalf of the console.
type Client struct {
	baseURL string
	session Session

	// Confirm gates the password-change flow (and photo deletion, when the
	// PhotoManager shares this client). Nil means no interactive gate.
	Confirm ConfirmFunc

	httpClient *http.Client
}

func NewClient(baseURL string, session Session) *Client {
	return &Client{
		baseURL: baseURL,
		session: session,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchUser retrieves one user's full raw nested record.
func (c *Client) FetchUser(ctx context.Context, userID string) (*profile.RawUserRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/auth/user/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.setHeaders(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var raw profile.RawUserRecord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode user record: %w", err)
	}
	return &raw, nil
}

// Refresh fetches the record and normalizes it into fresh editable state.
func (c *Client) Refresh(ctx context.Context, userID string) (*profile.EditableState, error) {
	raw, err := c.FetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.Normalize(raw), nil
}

// SaveSection transmits one section's current sub-object to that section's
// endpoint. Only the named section travels; the other sections' dirty or
// clean state is irrelevant. For the user section the hobbies edit string is
// converted to the trimmed, non-empty wire list immediately before
// transmission; the in-memory edit representation is left alone.
func (c *Client) SaveSection(ctx context.Context, userID string, state *profile.EditableState, sec profile.Section) error {
	tree, err := state.Section(sec)
	if err != nil {
		return err
	}
	path, err := sectionPath(sec, userID)
	if err != nil {
		return err
	}

	payload := tree
	if sec == profile.SectionUser {
		shaped := maps.Clone(tree)
		hobbies, _ := tree["hobbies"].(string)
		shaped["hobbies"] = profile.SplitHobbies(hobbies)
		payload = shaped
	}

	_, err = c.put(ctx, path, payload)
	if err != nil {
		return fmt.Errorf("failed to update %s details: %w", sec, err)
	}
	return nil
}

// ChangePassword runs the separate password-reset flow. Empty input is
// rejected before any network call; when a Confirm hook is configured the
// target user's name and the new password are echoed back to the operator
// before anything is transmitted.
func (c *Client) ChangePassword(ctx context.Context, userID, userName, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}
	if c.Confirm != nil {
		prompt := fmt.Sprintf("Are you sure you want to change the password for %s to %s?", userName, newPassword)
		if !c.Confirm(prompt) {
			return ErrConfirmationDeclined
		}
	}

	body := map[string]string{"newPassword": newPassword}
	if _, err := c.put(ctx, "/api/admin/auth/change-password/"+userID, body); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// saveUserFields sends a partial user-section body (used by the photo
// manager, which persists the full photo list rather than a delta) and
// returns the server's echoed record.
func (c *Client) saveUserFields(ctx context.Context, userID string, fields map[string]any) (*profile.RawUserRecord, error) {
	respBody, err := c.put(ctx, "/api/admin/auth/users/edit/"+userID, fields)
	if err != nil {
		return nil, err
	}
	var raw profile.RawUserRecord
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode updated record: %w", err)
	}
	return &raw, nil
}

func (c *Client) put(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.setHeaders(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) setHeaders(req *http.Request) error {
	token, err := c.session.Token()
	if err != nil {
		return fmt.Errorf("failed to obtain session token: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// sectionPath maps a section to its endpoint. The section set is closed; an
// out-of-range value is a programming error and fails loudly here.
func sectionPath(sec profile.Section, userID string) (string, error) {
	switch sec {
	case profile.SectionUser:
		return "/api/admin/auth/users/edit/" + userID, nil
	case profile.SectionAstrology:
		return "/api/admin/auth/astrologies/" + userID, nil
	case profile.SectionEducation:
		return "/api/admin/auth/educations/" + userID, nil
	case profile.SectionFamily:
		return "/api/admin/auth/families/" + userID, nil
	case profile.SectionProfession:
		return "/api/admin/auth/professions/" + userID, nil
	default:
		return "", fmt.Errorf("%w: %d", profile.ErrInvalidSection, int(sec))
	}
}

func apiError(resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("admin API error with status %d", resp.StatusCode)
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(bodyBytes, &parsed) == nil && parsed.Message != "" {
		return fmt.Errorf("admin API request failed with status %d: %s", resp.StatusCode, parsed.Message)
	}
	return fmt.Errorf("admin API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
}
