package test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	mu    sync.Mutex
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub(users ...model.User) *UserRepositoryStub {
	s := &UserRepositoryStub{Users: make(map[string]*model.User)}
	for i := range users {
		u := users[i]
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		s.Users[u.ID] = &u
	}
	return s
}

// Create registers user unless the contact or admin slot is taken.
func (s *UserRepositoryStub) Create(_ context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range s.Users {
		if user.Email != "" && existing.Email == user.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
		if user.Phone != "" && existing.Phone == user.Phone {
			return nil, domainErrors.ErrAlreadyExists
		}
		if user.Role == model.RoleAdmin && existing.Role == model.RoleAdmin {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	user.CreatedAt = time.Now()
	s.Users[user.ID] = &user
	copied := user
	return &copied, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByContact matches email (case-insensitive) or phone.
func (s *UserRepositoryStub) GetByContact(_ context.Context, emailOrPhone string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	value := strings.TrimSpace(emailOrPhone)
	for _, user := range s.Users {
		if (user.Email != "" && user.Email == strings.ToLower(value)) || (user.Phone != "" && user.Phone == value) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetAdmin returns the stored admin or not found.
func (s *UserRepositoryStub) GetAdmin(context.Context) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.Users {
		if user.Role == model.RoleAdmin {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SetRole updates role and, when given, the password hash of a stored user.
func (s *UserRepositoryStub) SetRole(_ context.Context, id string, role model.Role, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.Users[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if role == model.RoleAdmin {
		for otherID, other := range s.Users {
			if otherID != id && other.Role == model.RoleAdmin {
				return domainErrors.ErrAlreadyExists
			}
		}
	}
	user.Role = role
	if passwordHash != "" {
		user.PasswordHash = passwordHash
	}
	return nil
}

// Count returns number of stored users.
func (s *UserRepositoryStub) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.Users), nil
}

// OrderRepositoryStub keeps orders in memory; Err and UpdateErr force failures.
type OrderRepositoryStub struct {
	mu        sync.Mutex
	Orders    map[string]*model.Order
	Err       error
	UpdateErr error
	clock     time.Time
}

// NewOrderRepositoryStub constructs stub repository seeded with orders.
func NewOrderRepositoryStub(orders ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{Orders: make(map[string]*model.Order), clock: time.Unix(1700000000, 0)}
	for i := range orders {
		o := orders[i]
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		if o.CreatedAt.IsZero() {
			o.CreatedAt = s.tick()
		}
		if o.UpdatedAt.IsZero() {
			o.UpdatedAt = o.CreatedAt
		}
		s.Orders[o.ID] = &o
	}
	return s
}

func (s *OrderRepositoryStub) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// Create stores the order and stamps timestamps.
func (s *OrderRepositoryStub) Create(_ context.Context, order model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	order.CreatedAt = s.tick()
	order.UpdatedAt = order.CreatedAt
	s.Orders[order.ID] = &order
	copied := order
	return &copied, nil
}

// GetByID fetches order by identifier or returns not found.
func (s *OrderRepositoryStub) GetByID(_ context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetOwned fetches order only when it belongs to userID.
func (s *OrderRepositoryStub) GetOwned(ctx context.Context, id, userID string) (*model.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// ListAll returns every order newest first.
func (s *OrderRepositoryStub) ListAll(context.Context) ([]model.Order, error) {
	return s.list(func(model.Order) bool { return true })
}

// ListByUser returns orders of userID newest first.
func (s *OrderRepositoryStub) ListByUser(_ context.Context, userID string) ([]model.Order, error) {
	return s.list(func(o model.Order) bool { return o.UserID == userID })
}

func (s *OrderRepositoryStub) list(keep func(model.Order) bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := []model.Order{}
	for _, order := range s.Orders {
		if keep(*order) {
			result = append(result, *order)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// UpdateStatus overwrites status and reason.
func (s *OrderRepositoryStub) UpdateStatus(_ context.Context, id string, status model.OrderStatus, reason string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order.Status = status
	order.Reason = reason
	if now := s.tick(); now.After(order.UpdatedAt) {
		order.UpdatedAt = now
	}
	copied := *order
	return &copied, nil
}

// Count returns number of stored orders.
func (s *OrderRepositoryStub) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.Orders), nil
}

// ArtworkRepositoryStub keeps the catalog in memory.
type ArtworkRepositoryStub struct {
	mu       sync.Mutex
	Artworks map[string]*model.Artwork
	Err      error
	clock    time.Time
}

// NewArtworkRepositoryStub constructs stub repository seeded with artworks.
func NewArtworkRepositoryStub(artworks ...model.Artwork) *ArtworkRepositoryStub {
	s := &ArtworkRepositoryStub{Artworks: make(map[string]*model.Artwork), clock: time.Unix(1700000000, 0)}
	for i := range artworks {
		a := artworks[i]
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = s.tick()
		}
		if a.Comments == nil {
			a.Comments = []model.Comment{}
		}
		s.Artworks[a.ID] = &a
	}
	return s
}

func (s *ArtworkRepositoryStub) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// Create stores a new artwork.
func (s *ArtworkRepositoryStub) Create(_ context.Context, artwork model.Artwork) (*model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if artwork.ID == "" {
		artwork.ID = uuid.NewString()
	}
	artwork.CreatedAt = s.tick()
	artwork.UpdatedAt = artwork.CreatedAt
	artwork.Comments = []model.Comment{}
	s.Artworks[artwork.ID] = &artwork
	copied := artwork
	return &copied, nil
}

// GetByID fetches an artwork or returns not found.
func (s *ArtworkRepositoryStub) GetByID(_ context.Context, id string) (*model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if artwork, ok := s.Artworks[id]; ok {
		copied := *artwork
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List filters, sorts newest first and pages.
func (s *ArtworkRepositoryStub) List(_ context.Context, filter model.ArtworkFilter) ([]model.Artwork, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, 0, s.Err
	}
	matched := []model.Artwork{}
	for _, a := range s.Artworks {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.ForSale != nil && a.IsForSale != *filter.ForSale {
			continue
		}
		matched = append(matched, *a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := len(matched)
	start := filter.Offset()
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	return matched[start:end], total, nil
}

// Update replaces the stored artwork keeping likes and comments.
func (s *ArtworkRepositoryStub) Update(_ context.Context, artwork model.Artwork) (*model.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	stored, ok := s.Artworks[artwork.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	artwork.Likes = stored.Likes
	artwork.Comments = stored.Comments
	artwork.CreatedAt = stored.CreatedAt
	artwork.UpdatedAt = s.tick()
	s.Artworks[artwork.ID] = &artwork
	copied := artwork
	return &copied, nil
}

// Delete removes an artwork.
func (s *ArtworkRepositoryStub) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Artworks[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Artworks, id)
	return nil
}

// IncrementLikes adds one like.
func (s *ArtworkRepositoryStub) IncrementLikes(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	artwork, ok := s.Artworks[id]
	if !ok {
		return 0, domainErrors.ErrNotFound
	}
	artwork.Likes++
	return artwork.Likes, nil
}

// AddComment appends a comment and returns the full list.
func (s *ArtworkRepositoryStub) AddComment(_ context.Context, artworkID string, comment model.Comment) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	artwork, ok := s.Artworks[artworkID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	comment.CreatedAt = s.tick()
	artwork.Comments = append(artwork.Comments, comment)
	return append([]model.Comment{}, artwork.Comments...), nil
}

// DeleteComment removes one comment.
func (s *ArtworkRepositoryStub) DeleteComment(_ context.Context, artworkID, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	artwork, ok := s.Artworks[artworkID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	for i, c := range artwork.Comments {
		if c.ID == commentID {
			artwork.Comments = append(artwork.Comments[:i], artwork.Comments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: Comment not found", domainErrors.ErrNotFound)
}

// Count returns number of stored artworks.
func (s *ArtworkRepositoryStub) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.Artworks), nil
}

// TotalLikes sums likes across the catalog.
func (s *ArtworkRepositoryStub) TotalLikes(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	total := 0
	for _, a := range s.Artworks {
		total += a.Likes
	}
	return total, nil
}

// SettingsRepositoryStub holds the singleton in memory.
type SettingsRepositoryStub struct {
	mu       sync.Mutex
	Settings *model.Settings
	Err      error
}

// NewSettingsRepositoryStub returns a stub with default settings.
func NewSettingsRepositoryStub() *SettingsRepositoryStub {
	return &SettingsRepositoryStub{}
}

func (s *SettingsRepositoryStub) current() *model.Settings {
	if s.Settings == nil {
		s.Settings = &model.Settings{
			AboutBio:           model.DefaultAboutBio,
			BackgroundArtworks: []string{},
			FunFacts:           []model.FunFact{},
			CommissionPricing:  []model.PricingTier{},
		}
	}
	return s.Settings
}

func (s *SettingsRepositoryStub) mutate(fn func(*model.Settings) error) (*model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	settings := s.current()
	if fn != nil {
		if err := fn(settings); err != nil {
			return nil, err
		}
		settings.UpdatedAt = time.Now()
	}
	copied := *settings
	copied.BackgroundArtworks = append([]string{}, settings.BackgroundArtworks...)
	copied.FunFacts = append([]model.FunFact{}, settings.FunFacts...)
	copied.CommissionPricing = append([]model.PricingTier{}, settings.CommissionPricing...)
	return &copied, nil
}

// Get returns the singleton, creating it on first access.
func (s *SettingsRepositoryStub) Get(context.Context) (*model.Settings, error) {
	return s.mutate(nil)
}

// UpdateContact applies non-nil patch fields.
func (s *SettingsRepositoryStub) UpdateContact(_ context.Context, patch model.ContactPatch) (*model.Settings, error) {
	return s.mutate(func(st *model.Settings) error {
		assign := func(dst *string, src *string) {
			if src != nil {
				*dst = *src
			}
		}
		assign(&st.ContactEmail, patch.ContactEmail)
		assign(&st.ContactPhone, patch.ContactPhone)
		assign(&st.WhatsappNumber, patch.WhatsappNumber)
		assign(&st.InstagramLink, patch.InstagramLink)
		assign(&st.LogoURL, patch.LogoURL)
		if patch.CommissionPricing != nil {
			st.CommissionPricing = patch.CommissionPricing
		}
		return nil
	})
}

// SetAboutBio replaces the about text.
func (s *SettingsRepositoryStub) SetAboutBio(_ context.Context, bio string) (*model.Settings, error) {
	return s.mutate(func(st *model.Settings) error { st.AboutBio = bio; return nil })
}

// SetLogo replaces the logo URL.
func (s *SettingsRepositoryStub) SetLogo(_ context.Context, url string) (*model.Settings, error) {
	return s.mutate(func(st *model.Settings) error { st.LogoURL = url; return nil })
}

// SetProfilePic replaces the profile picture URL.
func (s *SettingsRepositoryStub) SetProfilePic(_ context.Context, url string) (*model.Settings, error) {
	return s.mutate(func(st *model.Settings) error { st.ProfilePicURL = url; return nil })
}

// AddBackground appends a background artwork URL.
func (s *SettingsRepositoryStub) AddBackground(_ context.Context, url string) (*model.Settings, error) {
	return s.mutate(func(st *model.Settings) error {
		st.BackgroundArtworks = append(st.BackgroundArtworks, url)
		return nil
	})
}

// AddFunFact appends a fun fact.
func (s *SettingsRepositoryStub) AddFunFact(_ context.Context, fact model.FunFact) (*model.Settings, error) {
	return s.mutate(func(st *model.Settings) error {
		if fact.ID == "" {
			fact.ID = uuid.NewString()
		}
		fact.CreatedAt = time.Now()
		st.FunFacts = append(st.FunFacts, fact)
		return nil
	})
}

// DeleteFunFact removes a fun fact by id.
func (s *SettingsRepositoryStub) DeleteFunFact(_ context.Context, id string) (*model.Settings, error) {
	return s.mutate(func(st *model.Settings) error {
		for i, f := range st.FunFacts {
			if f.ID == id {
				st.FunFacts = append(st.FunFacts[:i], st.FunFacts[i+1:]...)
				return nil
			}
		}
		return domainErrors.ErrNotFound
	})
}
