package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
)

// DefaultBaseURL is the public Cloudinary REST endpoint.
const DefaultBaseURL = "https://api.cloudinary.com"

// ErrNotConfigured is returned when no Cloudinary credentials were supplied.
var ErrNotConfigured = fmt.Errorf("%w: asset uploads are not configured", domainErrors.ErrMisconfigured)

// Uploader stores binary assets and returns their public URL.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error)
	SignUpload(folder string) (*Signature, error)
}

// Credentials identify a Cloudinary account.
type Credentials struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Signature lets a browser upload straight to Cloudinary.
type Signature struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder"`
}

// HTTPClient implements Uploader via the Cloudinary upload API.
type HTTPClient struct {
	baseURL    *url.URL
	creds      Credentials
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewHTTPClient creates an upload client against baseURL.
func NewHTTPClient(baseURL string, creds Credentials, logger *zap.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse cloudinary url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("cloudinary url must be absolute")
	}
	if creds.CloudName == "" || creds.APIKey == "" || creds.APISecret == "" {
		return nil, ErrNotConfigured
	}
	return &HTTPClient{
		baseURL: parsed,
		creds:   creds,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}, nil
}

// Upload sends r as a signed multipart upload and returns the secure URL.
func (c *HTTPClient) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	params := map[string]string{"timestamp": timestamp}
	if folder != "" {
		params["folder"] = folder
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for key, value := range params {
		if err := form.WriteField(key, value); err != nil {
			return "", err
		}
	}
	if err := form.WriteField("api_key", c.creds.APIKey); err != nil {
		return "", err
	}
	if err := form.WriteField("signature", sign(params, c.creds.APISecret)); err != nil {
		return "", err
	}
	if filename == "" {
		filename = "upload"
	}
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1_1", c.creds.CloudName, "image", "upload")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("cloudinary upload failed", zap.Int("status", resp.StatusCode), zap.ByteString("body", payload))
		return "", fmt.Errorf("cloudinary error: %s", resp.Status)
	}

	var data uploadResponse
	if err := json.Unmarshal(payload, &data); err != nil {
		return "", err
	}
	if data.Error != nil {
		return "", fmt.Errorf("cloudinary error: %s", data.Error.Message)
	}
	if data.SecureURL == "" {
		return "", fmt.Errorf("cloudinary response has no secure_url")
	}
	return data.SecureURL, nil
}

// SignUpload returns parameters for a direct browser upload into folder.
func (c *HTTPClient) SignUpload(folder string) (*Signature, error) {
	ts := c.now().Unix()
	params := map[string]string{"timestamp": strconv.FormatInt(ts, 10)}
	if folder != "" {
		params["folder"] = folder
	}
	return &Signature{
		Timestamp: ts,
		Signature: sign(params, c.creds.APISecret),
		APIKey:    c.creds.APIKey,
		CloudName: c.creds.CloudName,
		Folder:    folder,
	}, nil
}

// sign implements the Cloudinary request signature: sorted key=value pairs joined by '&', suffixed with the secret.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

// Disabled rejects every upload; it stands in when credentials are missing.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) SignUpload(string) (*Signature, error) {
	return nil, ErrNotConfigured
}
