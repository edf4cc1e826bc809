package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

type artworkRepository struct {
	storage *Storage
}

const artworkColumns = `id, title, caption, instagram_link, image_url, category, artist_notes, size_medium,
                        price, is_available, is_for_sale, likes, created_at, updated_at`

func scanArtwork(row pgx.Row) (*model.Artwork, error) {
	var a model.Artwork
	err := row.Scan(
		&a.ID, &a.Title, &a.Caption, &a.InstagramLink, &a.ImageURL, &a.Category, &a.ArtistNotes, &a.SizeMedium,
		&a.Price, &a.IsAvailable, &a.IsForSale, &a.Likes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Comments = []model.Comment{}
	return &a, nil
}

func (r *artworkRepository) Create(ctx context.Context, artwork model.Artwork) (*model.Artwork, error) {
	const query = `INSERT INTO artworks (id, title, caption, instagram_link, image_url, category, artist_notes,
                                         size_medium, price, is_available, is_for_sale)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                   RETURNING ` + artworkColumns
	if artwork.ID == "" {
		artwork.ID = uuid.NewString()
	}
	created, err := scanArtwork(r.storage.pool.QueryRow(ctx, query,
		artwork.ID, artwork.Title, artwork.Caption, artwork.InstagramLink, artwork.ImageURL, artwork.Category,
		artwork.ArtistNotes, artwork.SizeMedium, artwork.Price, artwork.IsAvailable, artwork.IsForSale,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

func (r *artworkRepository) GetByID(ctx context.Context, id string) (*model.Artwork, error) {
	if !validID(id) {
		return nil, domainErrors.ErrNotFound
	}
	artwork, err := scanArtwork(r.storage.pool.QueryRow(ctx, `SELECT `+artworkColumns+` FROM artworks WHERE id=$1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	comments, err := r.comments(ctx, id)
	if err != nil {
		return nil, err
	}
	artwork.Comments = comments
	return artwork, nil
}

func (r *artworkRepository) List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.ForSale != nil {
		args = append(args, *filter.ForSale)
		conds = append(conds, fmt.Sprintf("is_for_sale=$%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artworks`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset())
	query := fmt.Sprintf(`SELECT %s FROM artworks%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		artworkColumns, where, len(args)+1, len(args)+2)
	rows, err := r.storage.pool.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result := []model.Artwork{}
	index := map[string]int{}
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, 0, err
		}
		index[a.ID] = len(result)
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	if len(result) == 0 {
		return result, total, nil
	}

	ids := make([]string, 0, len(result))
	for _, a := range result {
		ids = append(ids, a.ID)
	}
	byArtwork, err := r.commentsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for id, comments := range byArtwork {
		result[index[id]].Comments = comments
	}
	return result, total, nil
}

func (r *artworkRepository) Update(ctx context.Context, artwork model.Artwork) (*model.Artwork, error) {
	if !validID(artwork.ID) {
		return nil, domainErrors.ErrNotFound
	}
	const query = `UPDATE artworks SET title=$2, caption=$3, instagram_link=$4, image_url=$5, category=$6,
                       artist_notes=$7, size_medium=$8, price=$9, is_available=$10, is_for_sale=$11,
                       updated_at=GREATEST(updated_at, NOW())
                   WHERE id=$1
                   RETURNING ` + artworkColumns
	updated, err := scanArtwork(r.storage.pool.QueryRow(ctx, query,
		artwork.ID, artwork.Title, artwork.Caption, artwork.InstagramLink, artwork.ImageURL, artwork.Category,
		artwork.ArtistNotes, artwork.SizeMedium, artwork.Price, artwork.IsAvailable, artwork.IsForSale,
	))
	if err != nil {
		return nil, mapError(err)
	}
	comments, err := r.comments(ctx, artwork.ID)
	if err != nil {
		return nil, err
	}
	updated.Comments = comments
	return updated, nil
}

func (r *artworkRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domainErrors.ErrNotFound
	}
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM artworks WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *artworkRepository) IncrementLikes(ctx context.Context, id string) (int, error) {
	if !validID(id) {
		return 0, domainErrors.ErrNotFound
	}
	var likes int
	err := r.storage.pool.QueryRow(ctx, `UPDATE artworks SET likes = likes + 1 WHERE id=$1 RETURNING likes`, id).Scan(&likes)
	if err != nil {
		return 0, mapError(err)
	}
	return likes, nil
}

func (r *artworkRepository) AddComment(ctx context.Context, artworkID string, comment model.Comment) ([]model.Comment, error) {
	if !validID(artworkID) {
		return nil, domainErrors.ErrNotFound
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	const query = `INSERT INTO artwork_comments (id, artwork_id, author, body) VALUES ($1, $2, $3, $4)`
	if _, err := r.storage.pool.Exec(ctx, query, comment.ID, artworkID, comment.User, comment.Text); err != nil {
		return nil, mapError(err)
	}
	return r.comments(ctx, artworkID)
}

func (r *artworkRepository) DeleteComment(ctx context.Context, artworkID, commentID string) error {
	if !validID(artworkID) || !validID(commentID) {
		return domainErrors.ErrNotFound
	}
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM artwork_comments WHERE id=$1 AND artwork_id=$2`, commentID, artworkID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: Comment not found", domainErrors.ErrNotFound)
	}
	return nil
}

func (r *artworkRepository) Count(ctx context.Context) (int, error) {
	return r.storage.count(ctx, `SELECT COUNT(*) FROM artworks`)
}

func (r *artworkRepository) TotalLikes(ctx context.Context) (int, error) {
	return r.storage.count(ctx, `SELECT COALESCE(SUM(likes), 0) FROM artworks`)
}

func (r *artworkRepository) comments(ctx context.Context, artworkID string) ([]model.Comment, error) {
	byArtwork, err := r.commentsFor(ctx, []string{artworkID})
	if err != nil {
		return nil, err
	}
	if comments, ok := byArtwork[artworkID]; ok {
		return comments, nil
	}
	return []model.Comment{}, nil
}

func (r *artworkRepository) commentsFor(ctx context.Context, artworkIDs []string) (map[string][]model.Comment, error) {
	const query = `SELECT artwork_id, id, author, body, created_at FROM artwork_comments
                   WHERE artwork_id = ANY($1::uuid[]) ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, artworkIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]model.Comment, len(artworkIDs))
	for rows.Next() {
		var (
			artworkID string
			c         model.Comment
		)
		if err := rows.Scan(&artworkID, &c.ID, &c.User, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		result[artworkID] = append(result[artworkID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
