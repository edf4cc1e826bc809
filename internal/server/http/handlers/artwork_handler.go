package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/server/http/dto"
	"github.com/polkiloo/atelier/internal/usecase"
)

// ArtworkHandler serves the catalog.
type ArtworkHandler struct {
	facade ArtworkFacade
}

// NewArtworkHandler constructs ArtworkHandler.
func NewArtworkHandler(facade ArtworkFacade) *ArtworkHandler {
	return &ArtworkHandler{facade: facade}
}

// List handles GET /api/artworks. The body is a plain array; paging
// details travel in headers.
func (h *ArtworkHandler) List(c *gin.Context) {
	var query dto.ArtworkQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid query")
		return
	}

	filter := model.ArtworkFilter{
		Category: model.ArtworkCategory(strings.ToLower(strings.TrimSpace(query.Category))),
		Page:     query.Page,
		Limit:    query.Limit,
	}
	if query.ForSale != "" {
		forSale, err := strconv.ParseBool(query.ForSale)
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "forSale must be true or false")
			return
		}
		filter.ForSale = &forSale
	}

	page, err := h.facade.Artworks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(page.Total))
	c.Header("X-Total-Pages", strconv.Itoa(page.TotalPages))
	c.Header("X-Page", strconv.Itoa(page.Page))
	c.JSON(http.StatusOK, dto.NewArtworkResponses(page.Artworks))
}

// Get handles GET /api/artworks/:id.
func (h *ArtworkHandler) Get(c *gin.Context) {
	artwork, err := h.facade.Artwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewArtworkResponse(*artwork))
}

// Create handles POST /api/artworks.
func (h *ArtworkHandler) Create(c *gin.Context) {
	in, err := bindArtworkInput(c)
	if err != nil {
		respondError(c, err)
		return
	}
	image, closeImage, err := readImage(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeImage()

	artwork, err := h.facade.CreateArtwork(c.Request.Context(), in, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ArtworkEnvelope{Message: "Artwork added", Artwork: dto.NewArtworkResponse(*artwork)})
}

// Update handles PUT /api/artworks/:id.
func (h *ArtworkHandler) Update(c *gin.Context) {
	in, err := bindArtworkInput(c)
	if err != nil {
		respondError(c, err)
		return
	}
	image, closeImage, err := readImage(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeImage()

	artwork, err := h.facade.UpdateArtwork(c.Request.Context(), c.Param("id"), in, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArtworkEnvelope{Message: "Artwork updated", Artwork: dto.NewArtworkResponse(*artwork)})
}

// Delete handles DELETE /api/artworks/:id.
func (h *ArtworkHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteArtwork(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Artwork deleted")
}

// Like handles PUT /api/artworks/:id/like.
func (h *ArtworkHandler) Like(c *gin.Context) {
	likes, err := h.facade.LikeArtwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LikesResponse{Likes: likes})
}

// Comment handles POST /api/artworks/:id/comment.
func (h *ArtworkHandler) Comment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comments, err := h.facade.CommentArtwork(c.Request.Context(), c.Param("id"), req.User, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentsEnvelope{Message: "Comment added", Comments: dto.NewCommentResponses(comments)})
}

// DeleteComment handles DELETE /api/artworks/:id/comment/:commentId.
func (h *ArtworkHandler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.facade.DeleteComment(ctx, id, c.Param("commentId")); err != nil {
		respondError(c, err)
		return
	}

	artwork, err := h.facade.Artwork(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArtworkEnvelope{Message: "Comment deleted", Artwork: dto.NewArtworkResponse(*artwork)})
}

// Signature handles GET /api/uploads/signature.
func (h *ArtworkHandler) Signature(c *gin.Context) {
	sig, err := h.facade.SignUpload(c.Query("folder"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SignatureResponse{
		Timestamp: sig.Timestamp,
		Signature: sig.Signature,
		APIKey:    sig.APIKey,
		CloudName: sig.CloudName,
		Folder:    sig.Folder,
	})
}

func bindArtworkInput(c *gin.Context) (usecase.ArtworkInput, error) {
	var form dto.ArtworkForm
	if err := c.ShouldBind(&form); err != nil {
		return usecase.ArtworkInput{}, fmt.Errorf("%w: Invalid artwork fields", domainErrors.ErrValidation)
	}

	in := usecase.ArtworkInput{
		Title:         form.Title,
		Caption:       form.Caption,
		InstagramLink: form.InstagramLink,
		ArtistNotes:   form.ArtistNotes,
		SizeMedium:    form.SizeMedium,
		IsForSale:     form.IsForSale,
		IsAvailable:   form.IsAvailable,
	}
	if form.Category != nil {
		category := model.ArtworkCategory(strings.ToLower(strings.TrimSpace(*form.Category)))
		in.Category = &category
	}
	if form.Price != nil && strings.TrimSpace(*form.Price) != "" {
		price, err := decimal.NewFromString(strings.TrimSpace(*form.Price))
		if err != nil {
			return usecase.ArtworkInput{}, fmt.Errorf("%w: Price must be a number", domainErrors.ErrValidation)
		}
		in.Price = decimal.NullDecimal{Decimal: price, Valid: true}
	}
	return in, nil
}
