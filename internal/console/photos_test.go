package console

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punjabi-rishtey/admin-api/internal/profile"
)

type stubUploader struct {
	url    string
	called int
}

func (s *stubUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	s.called++
	return s.url, nil
}

// echoServer answers user-edit PUTs with a record carrying whatever
// profile_pictures list the request sent, mimicking the backend echo.
func echoServer(t *testing.T) (*httptest.Server, *recordingServer) {
	t.Helper()
	rec := &recordingServer{}
	rec.respond = func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		last := rec.requests[len(rec.requests)-1]
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"profile_pictures": last.Body["profile_pictures"],
		})
	}
	return httptest.NewServer(rec.handler()), rec
}

func newTestManager(t *testing.T, srv *httptest.Server, photos []string) (*PhotoManager, *profile.EditableState, *stubUploader) {
	t.Helper()
	client := NewClient(srv.URL, StaticSession("tok"))
	state := profile.Normalize(&profile.RawUserRecord{ProfilePictures: photos})
	up := &stubUploader{url: "https://cdn.example.com/new.jpg"}
	return NewPhotoManager(client, up, "u1", state), state, up
}

func TestSelectFileGates(t *testing.T) {
	srv, _ := echoServer(t)
	defer srv.Close()
	m, _, _ := newTestManager(t, srv, nil)

	err := m.SelectFile("doc.pdf", "application/pdf", 100, strings.NewReader("x"))
	require.ErrorIs(t, err, ErrNotAnImage)
	assert.Nil(t, m.Pending())

	err = m.SelectFile("big.jpg", "image/jpeg", maxPhotoBytes+1, strings.NewReader("x"))
	require.ErrorIs(t, err, ErrImageTooBig)
	assert.Nil(t, m.Pending())

	err = m.SelectFile("ok.jpg", "image/jpeg", 1024, strings.NewReader("data"))
	require.NoError(t, err)
	require.NotNil(t, m.Pending())
	assert.Equal(t, "ok.jpg", m.Pending().Name)
}

func TestSelectFileSupersedesAndReleases(t *testing.T) {
	srv, _ := echoServer(t)
	defer srv.Close()
	m, _, _ := newTestManager(t, srv, nil)

	require.NoError(t, m.SelectFile("a.jpg", "image/jpeg", 10, strings.NewReader("a")))
	first := m.Pending()

	require.NoError(t, m.SelectFile("b.jpg", "image/png", 10, strings.NewReader("b")))
	assert.True(t, first.Released(), "superseded preview must be released")
	assert.False(t, m.Pending().Released())

	// A rejected candidate leaves the staged file alone.
	require.Error(t, m.SelectFile("c.txt", "text/plain", 10, strings.NewReader("c")))
	assert.Equal(t, "b.jpg", m.Pending().Name)

	m.ReleaseAll()
	assert.Nil(t, m.Pending())
}

func TestUploadAdoptsEchoedList(t *testing.T) {
	srv, rec := echoServer(t)
	defer srv.Close()
	m, state, up := newTestManager(t, srv, []string{"https://cdn.example.com/old.jpg"})

	require.ErrorIs(t, m.Upload(context.Background()), ErrNoPending)

	require.NoError(t, m.SelectFile("new.jpg", "image/jpeg", 10, strings.NewReader("img")))
	staged := m.Pending()
	require.NoError(t, m.Upload(context.Background()))

	assert.Equal(t, 1, up.called)
	assert.Equal(t, []string{"https://cdn.example.com/old.jpg", "https://cdn.example.com/new.jpg"}, state.Photos())
	assert.Nil(t, m.Pending(), "staged file is consumed by upload")
	assert.True(t, staged.Released())

	got := rec.captured()
	require.Len(t, got, 1)
	assert.Equal(t, "/api/admin/auth/users/edit/u1", got[0].Path)
}

func TestDeletePhotoPersistsFullList(t *testing.T) {
	srv, rec := echoServer(t)
	defer srv.Close()
	m, state, _ := newTestManager(t, srv, []string{"a.jpg", "b.jpg", "c.jpg"})

	require.NoError(t, m.DeletePhoto(context.Background(), 1))
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, state.Photos())

	got := rec.captured()
	require.Len(t, got, 1)
	assert.Equal(t, []any{"a.jpg", "c.jpg"}, got[0].Body["profile_pictures"])

	require.Error(t, m.DeletePhoto(context.Background(), 5))
}

func TestDeletePhotoConfirmation(t *testing.T) {
	srv, rec := echoServer(t)
	defer srv.Close()
	m, state, _ := newTestManager(t, srv, []string{"a.jpg"})
	m.client.Confirm = func(string) bool { return false }

	err := m.DeletePhoto(context.Background(), 0)
	require.ErrorIs(t, err, ErrConfirmationDeclined)
	assert.Equal(t, []string{"a.jpg"}, state.Photos())
	assert.Empty(t, rec.captured())
}

func TestDisplayPlaceholder(t *testing.T) {
	srv, _ := echoServer(t)
	defer srv.Close()

	m, state, _ := newTestManager(t, srv, nil)
	assert.Equal(t, []string{PlaceholderPhoto}, m.Display())

	state.SetPhotos([]string{"a.jpg"})
	assert.Equal(t, []string{"a.jpg"}, m.Display())
}

func TestLightboxNavigationWraps(t *testing.T) {
	srv, _ := echoServer(t)
	defer srv.Close()
	m, _, _ := newTestManager(t, srv, []string{"a.jpg", "b.jpg", "c.jpg"})

	assert.Equal(t, -1, m.Selected())
	m.Next()
	assert.Equal(t, -1, m.Selected(), "navigation is a no-op while closed")

	require.NoError(t, m.Select(2))
	m.Next()
	assert.Equal(t, 0, m.Selected(), "Next wraps past the last photo")
	m.Prev()
	assert.Equal(t, 2, m.Selected(), "Prev wraps before the first photo")

	m.Close()
	assert.Equal(t, -1, m.Selected())

	require.Error(t, m.Select(3))
}

func TestDeleteClosesOutOfRangeLightbox(t *testing.T) {
	srv, _ := echoServer(t)
	defer srv.Close()
	m, _, _ := newTestManager(t, srv, []string{"a.jpg", "b.jpg"})

	require.NoError(t, m.Select(1))
	require.NoError(t, m.DeletePhoto(context.Background(), 1))
	assert.Equal(t, -1, m.Selected())
}
