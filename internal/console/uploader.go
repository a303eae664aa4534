package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader pushes an image to the external asset host and returns its
// permanent HTTPS URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// AssetHostClient uploads images to the asset host's unsigned upload
// endpoint using a named preset and folder.
type AssetHostClient struct {
	uploadURL string
	preset    string
	folder    string

	httpClient *http.Client
}

func NewAssetHostClient(uploadURL, preset, folder string) *AssetHostClient {
	return &AssetHostClient{
		uploadURL: uploadURL,
		preset:    preset,
		folder:    folder,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *AssetHostClient) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		defer form.Close()
		part, err := form.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := form.WriteField("upload_preset", c.preset); err != nil {
			pw.CloseWithError(err)
			return
		}
		if c.folder != "" {
			if err := form.WriteField("folder", c.folder); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, pr)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("asset host returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("asset host response missing secure_url")
	}
	return parsed.SecureURL, nil
}
