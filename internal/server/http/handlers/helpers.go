package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/server/http/middleware"
	"github.com/polkiloo/atelier/internal/usecase"
)

// CurrentPrincipal extracts the authenticated identity from context.
func CurrentPrincipal(c *gin.Context) model.Principal {
	principal, _ := middleware.PrincipalFrom(c)
	return principal
}

func nopClose() error { return nil }

// readImage opens the uploaded file under field. A missing file yields a nil
// image; the returned closer is always safe to call.
func readImage(c *gin.Context, field string) (*usecase.Image, func() error, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nopClose, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nopClose, fmt.Errorf("%w: Upload exceeds %d bytes", domainErrors.ErrValidation, tooLarge.Limit)
		}
		return nil, nopClose, fmt.Errorf("%w: Invalid upload", domainErrors.ErrValidation)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nopClose, fmt.Errorf("open upload: %w", err)
	}
	return &usecase.Image{Filename: header.Filename, Content: file}, file.Close, nil
}

func isMultipart(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEMultipartPOSTForm
}
