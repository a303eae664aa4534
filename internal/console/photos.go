package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/punjabi-rishtey/admin-api/internal/profile"
)

// PlaceholderPhoto is shown when a profile carries no photos. It exists only
// in the display list, never in state or on the wire.
const PlaceholderPhoto = "https://via.placeholder.com/150?text=No+Image"

const maxPhotoBytes = 5 * 1024 * 1024

var (
	ErrNotAnImage  = errors.New("please select a valid image file")
	ErrImageTooBig = errors.New("image size must be less than 5MB")
	ErrNoPending   = errors.New("please select an image to upload")
)

// PendingFile is a locally-selected photo awaiting upload. PreviewURL is a
// local reference that must be released when the file is superseded or the
// manager is closed; it is never sent anywhere.
type PendingFile struct {
	Name       string
	MIME       string
	Size       int64
	Data       []byte
	PreviewURL string

	released bool
}

// Release revokes the local preview reference. Safe to call more than once.
func (p *PendingFile) Release() {
	p.released = true
}

// Released reports whether the preview reference has been revoked.
func (p *PendingFile) Released() bool {
	return p.released
}

// PhotoManager drives the profile-photo sub-resource for one user: selection
// gating, upload through the asset host, deletion, and lightbox navigation.
// The photo list itself lives in the shared editable state, so a save of the
// user section and a photo operation always agree on the current list.
type PhotoManager struct {
	client   *Client
	uploader Uploader
	userID   string
	state    *profile.EditableState

	pending  *PendingFile
	selected int
}

func NewPhotoManager(client *Client, uploader Uploader, userID string, state *profile.EditableState) *PhotoManager {
	return &PhotoManager{
		client:   client,
		uploader: uploader,
		userID:   userID,
		state:    state,
		selected: -1,
	}
}

// SelectFile validates a candidate photo and stages it for upload. Rejected
// files leave the previous pending selection untouched. A newly staged file
// supersedes the previous one, whose preview reference is released.
func (m *PhotoManager) SelectFile(name, mimeType string, size int64, r io.Reader) error {
	if !strings.HasPrefix(mimeType, "image/") {
		return ErrNotAnImage
	}
	if size > maxPhotoBytes {
		return ErrImageTooBig
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read selected file: %w", err)
	}

	if m.pending != nil {
		m.pending.Release()
	}
	m.pending = &PendingFile{
		Name:       name,
		MIME:       mimeType,
		Size:       size,
		Data:       data,
		PreviewURL: "blob:" + name,
	}
	return nil
}

// Pending returns the staged file, or nil when nothing is selected.
func (m *PhotoManager) Pending() *PendingFile {
	return m.pending
}

// Upload pushes the staged file to the asset host, persists the extended
// photo list, and adopts the list the server echoes back. State only changes
// once both the upload and the persistence round-trip succeed.
func (m *PhotoManager) Upload(ctx context.Context) error {
	if m.pending == nil {
		return ErrNoPending
	}

	url, err := m.uploader.Upload(ctx, m.pending.Name, bytes.NewReader(m.pending.Data))
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	next := append(slices.Clone(m.state.Photos()), url)
	echoed, err := m.client.saveUserFields(ctx, m.userID, map[string]any{"profile_pictures": next})
	if err != nil {
		return fmt.Errorf("failed to save profile picture: %w", err)
	}

	m.state.SetPhotos(echoed.ProfilePictures)
	m.pending.Release()
	m.pending = nil
	return nil
}

// DeletePhoto removes the photo at index and persists the full remaining
// list, so the server replaces its stored list rather than interpreting a
// delta. The echoed list becomes the new state. When a Confirm hook is
// configured on the client, a declined prompt aborts before any network call.
func (m *PhotoManager) DeletePhoto(ctx context.Context, index int) error {
	photos := m.state.Photos()
	if index < 0 || index >= len(photos) {
		return fmt.Errorf("photo index %d out of range", index)
	}
	if m.client.Confirm != nil && !m.client.Confirm("Are you sure you want to delete this image?") {
		return ErrConfirmationDeclined
	}

	remaining := slices.Delete(slices.Clone(photos), index, index+1)
	echoed, err := m.client.saveUserFields(ctx, m.userID, map[string]any{"profile_pictures": remaining})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	m.state.SetPhotos(echoed.ProfilePictures)
	if m.selected >= len(m.state.Photos()) {
		m.Close()
	}
	return nil
}

// Display returns the list to render: the real photos, or a single
// placeholder entry when there are none.
func (m *PhotoManager) Display() []string {
	photos := m.state.Photos()
	if len(photos) == 0 {
		return []string{PlaceholderPhoto}
	}
	return photos
}

// Select opens the lightbox on the photo at index.
func (m *PhotoManager) Select(index int) error {
	if index < 0 || index >= len(m.Display()) {
		return fmt.Errorf("photo index %d out of range", index)
	}
	m.selected = index
	return nil
}

// Close dismisses the lightbox. Staged previews are not affected; they are
// released by Upload, a superseding SelectFile, or ReleaseAll.
func (m *PhotoManager) Close() {
	m.selected = -1
}

// Selected returns the open lightbox index, or -1 when closed.
func (m *PhotoManager) Selected() int {
	return m.selected
}

// Next advances the lightbox, wrapping past the last photo.
func (m *PhotoManager) Next() {
	if m.selected < 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.Display())
}

// Prev steps the lightbox back, wrapping before the first photo.
func (m *PhotoManager) Prev() {
	if m.selected < 0 {
		return
	}
	n := len(m.Display())
	m.selected = (m.selected - 1 + n) % n
}

// ReleaseAll releases the staged preview; call when the view unmounts.
func (m *PhotoManager) ReleaseAll() {
	if m.pending != nil {
		m.pending.Release()
		m.pending = nil
	}
}
