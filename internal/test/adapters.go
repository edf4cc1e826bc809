package test

import (
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/polkiloo/atelier/internal/adapter/cloudinary"
	"github.com/polkiloo/atelier/internal/domain/model"
)

// MailerMock is a testify mock for mailer.Mailer.
type MailerMock struct {
	mock.Mock
}

// Send records the call and returns the configured error.
func (m *MailerMock) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

// NotifierMock is a testify mock for the order notification port.
type NotifierMock struct {
	mock.Mock
}

// OrderStatusChanged records the call and returns the configured error.
func (m *NotifierMock) OrderStatusChanged(ctx context.Context, order model.Order, status model.OrderStatus, reason string) error {
	return m.Called(ctx, order, status, reason).Error(0)
}

// OrderCancelledByOwner records the call and returns the configured error.
func (m *NotifierMock) OrderCancelledByOwner(ctx context.Context, order model.Order, reason string) error {
	return m.Called(ctx, order, reason).Error(0)
}

// UploadCall records one UploaderStub.Upload invocation.
type UploadCall struct {
	Folder   string
	Filename string
	Content  string
}

// UploaderStub returns URL (or Err) and remembers uploads.
type UploaderStub struct {
	mu    sync.Mutex
	URL   string
	Err   error
	Calls []UploadCall
}

// Upload drains r and returns the configured URL.
func (s *UploaderStub) Upload(_ context.Context, folder, filename string, r io.Reader) (string, error) {
	content, _ := io.ReadAll(r)
	s.mu.Lock()
	s.Calls = append(s.Calls, UploadCall{Folder: folder, Filename: filename, Content: string(content)})
	s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if s.URL != "" {
		return s.URL, nil
	}
	return "https://cdn.test/" + folder + "/" + filename, nil
}

// SignUpload returns a fixed signature.
func (s *UploaderStub) SignUpload(folder string) (*cloudinary.Signature, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &cloudinary.Signature{Timestamp: 1700000000, Signature: "sig", APIKey: "key", CloudName: "cloud", Folder: folder}, nil
}
