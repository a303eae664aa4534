package console

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punjabi-rishtey/admin-api/internal/profile"
)

// recordingServer captures every request the client makes so tests can assert
// on paths, methods and bodies.
type recordingServer struct {
	mu       sync.Mutex
	requests []capturedRequest
	respond  func(w http.ResponseWriter, r *http.Request)
}

type capturedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

func (s *recordingServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		s.mu.Unlock()
		if s.respond != nil {
			s.respond(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}
}

func (s *recordingServer) captured() []capturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]capturedRequest(nil), s.requests...)
}

func TestSaveSectionRoutesToSectionEndpoint(t *testing.T) {
	tests := []struct {
		section  profile.Section
		wantPath string
	}{
		{profile.SectionUser, "/api/admin/auth/users/edit/u1"},
		{profile.SectionAstrology, "/api/admin/auth/astrologies/u1"},
		{profile.SectionEducation, "/api/admin/auth/educations/u1"},
		{profile.SectionFamily, "/api/admin/auth/families/u1"},
		{profile.SectionProfession, "/api/admin/auth/professions/u1"},
	}
	for _, tt := range tests {
		t.Run(tt.section.String(), func(t *testing.T) {
			rec := &recordingServer{}
			srv := httptest.NewServer(rec.handler())
			defer srv.Close()

			client := NewClient(srv.URL, StaticSession("tok-123"))
			state := profile.Normalize(&profile.RawUserRecord{Name: "Asha"})

			err := client.SaveSection(context.Background(), "u1", state, tt.section)
			require.NoError(t, err)

			got := rec.captured()
			require.Len(t, got, 1)
			assert.Equal(t, http.MethodPut, got[0].Method)
			assert.Equal(t, tt.wantPath, got[0].Path)
			assert.Equal(t, "Bearer tok-123", got[0].Auth)
		})
	}
}

// Saving one section must transmit that section's fields only, regardless of
// pending edits elsewhere.
func TestSaveSectionIndependence(t *testing.T) {
	rec := &recordingServer{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := NewClient(srv.URL, StaticSession("tok"))
	state := profile.Normalize(&profile.RawUserRecord{
		Name:      "Asha",
		Astrology: &profile.RawAstrology{Gotra: "Bharadwaj"},
	})
	require.NoError(t, state.ApplyFieldChange(profile.SectionUser, "name", "Changed", ""))
	require.NoError(t, state.ApplyFieldChange(profile.SectionAstrology, "gotra", "Kashyap", ""))

	err := client.SaveSection(context.Background(), "u1", state, profile.SectionAstrology)
	require.NoError(t, err)

	got := rec.captured()
	require.Len(t, got, 1)
	assert.Equal(t, "Kashyap", got[0].Body["gotra"])
	assert.NotContains(t, got[0].Body, "name")
}

// A failed save surfaces its own error and leaves every pending edit in
// place, even while another section saves successfully at the same time.
func TestSaveSectionFailureIsolation(t *testing.T) {
	rec := &recordingServer{}
	rec.respond = func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/astrologies/") {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message": "astrology update failed"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := NewClient(srv.URL, StaticSession("tok"))
	state := profile.Normalize(&profile.RawUserRecord{Name: "Asha"})
	require.NoError(t, state.ApplyFieldChange(profile.SectionUser, "name", "Changed", ""))
	require.NoError(t, state.ApplyFieldChange(profile.SectionAstrology, "gotra", "Kashyap", ""))

	var wg sync.WaitGroup
	var userErr, astroErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		userErr = client.SaveSection(context.Background(), "u1", state, profile.SectionUser)
	}()
	go func() {
		defer wg.Done()
		astroErr = client.SaveSection(context.Background(), "u1", state, profile.SectionAstrology)
	}()
	wg.Wait()

	require.NoError(t, userErr)
	require.Error(t, astroErr)
	assert.Contains(t, astroErr.Error(), "astrology update failed")

	// Neither outcome disturbs the editable state.
	assert.Equal(t, "Changed", state.Leaf(profile.SectionUser, "name"))
	assert.Equal(t, "Kashyap", state.Leaf(profile.SectionAstrology, "gotra"))
	assert.Len(t, rec.captured(), 2)
}

func TestSaveSectionShapesHobbies(t *testing.T) {
	rec := &recordingServer{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := NewClient(srv.URL, StaticSession("tok"))
	state := profile.Normalize(&profile.RawUserRecord{Hobbies: " Reading ,, Cricket "})

	err := client.SaveSection(context.Background(), "u1", state, profile.SectionUser)
	require.NoError(t, err)

	got := rec.captured()
	require.Len(t, got, 1)
	assert.Equal(t, []any{"Reading", "Cricket"}, got[0].Body["hobbies"])

	// The in-memory edit string stays joined text.
	assert.Equal(t, " Reading ,, Cricket ", state.Leaf(profile.SectionUser, "hobbies"))
}

func TestSaveSectionInvalidSection(t *testing.T) {
	rec := &recordingServer{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := NewClient(srv.URL, StaticSession("tok"))
	state := profile.Normalize(nil)

	err := client.SaveSection(context.Background(), "u1", state, profile.Section(99))
	require.ErrorIs(t, err, profile.ErrInvalidSection)
	assert.Empty(t, rec.captured(), "no request may be sent for an invalid section")
}

func TestChangePassword(t *testing.T) {
	t.Run("empty password rejected before any call", func(t *testing.T) {
		rec := &recordingServer{}
		srv := httptest.NewServer(rec.handler())
		defer srv.Close()

		client := NewClient(srv.URL, StaticSession("tok"))
		err := client.ChangePassword(context.Background(), "u1", "Asha", "")
		require.ErrorIs(t, err, ErrEmptyPassword)
		assert.Empty(t, rec.captured())
	})

	t.Run("declined confirmation aborts", func(t *testing.T) {
		rec := &recordingServer{}
		srv := httptest.NewServer(rec.handler())
		defer srv.Close()

		client := NewClient(srv.URL, StaticSession("tok"))
		var prompt string
		client.Confirm = func(p string) bool { prompt = p; return false }

		err := client.ChangePassword(context.Background(), "u1", "Asha", "hunter2")
		require.ErrorIs(t, err, ErrConfirmationDeclined)
		assert.Contains(t, prompt, "Asha")
		assert.Contains(t, prompt, "hunter2")
		assert.Empty(t, rec.captured())
	})

	t.Run("approved confirmation transmits", func(t *testing.T) {
		rec := &recordingServer{}
		srv := httptest.NewServer(rec.handler())
		defer srv.Close()

		client := NewClient(srv.URL, StaticSession("tok"))
		client.Confirm = func(string) bool { return true }

		err := client.ChangePassword(context.Background(), "u1", "Asha", "hunter2")
		require.NoError(t, err)

		got := rec.captured()
		require.Len(t, got, 1)
		assert.Equal(t, "/api/admin/auth/change-password/u1", got[0].Path)
		assert.Equal(t, "hunter2", got[0].Body["newPassword"])
	})
}

func TestFetchUserAndRefresh(t *testing.T) {
	rec := &recordingServer{
		respond: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"name": "Asha",
				"gender": "female",
				"mangalik": "Non manglik",
				"hobbies": ["Reading", "Cricket"],
				"profile_pictures": ["https://cdn.example.com/a.jpg"]
			}`))
		},
	}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := NewClient(srv.URL, StaticSession("tok"))
	state, err := client.Refresh(context.Background(), "u1")
	require.NoError(t, err)

	got := rec.captured()
	require.Len(t, got, 1)
	assert.Equal(t, "/api/admin/auth/user/u1", got[0].Path)

	assert.Equal(t, "Female", state.Leaf(profile.SectionUser, "gender"))
	assert.Equal(t, "non_manglik", state.Leaf(profile.SectionUser, "mangalik"))
	assert.Equal(t, "Reading, Cricket", state.Leaf(profile.SectionUser, "hobbies"))
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, state.Photos())
}

func TestAPIErrorSurfacesMessage(t *testing.T) {
	rec := &recordingServer{
		respond: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "User not found"}`))
		},
	}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := NewClient(srv.URL, StaticSession("tok"))
	_, err := client.FetchUser(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "User not found")
}

type failingSession struct{}

func (failingSession) Token() (string, error) { return "", errors.New("session expired") }

func TestSessionFailureBlocksRequest(t *testing.T) {
	rec := &recordingServer{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	client := NewClient(srv.URL, failingSession{})
	_, err := client.FetchUser(context.Background(), "u1")
	require.Error(t, err)
	assert.Empty(t, rec.captured())
}
