package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"menuapi/internal/model"
	"menuapi/internal/repository"
	"menuapi/internal/storage"
)

// presignExpiry bounds how long a dish image download link stays valid.
const presignExpiry = 15 * time.Minute

// DishService defines the use cases for handling dishes of a submenu.
type DishService interface {
	// Create stores a new dish under the given submenu of the given menu.
	// The submenu must exist, and the title may not already live under a
	// different submenu. Price is a decimal string, normalized to two
	// fraction digits.
	Create(ctx context.Context, menuID, submenuID, title, description, price string) (*model.Dish, error)

	List(ctx context.Context, submenuID string, limit, skip int) ([]model.Dish, error)

	Get(ctx context.Context, submenuID, id string) (*model.Dish, error)

	Update(ctx context.Context, submenuID, id, title, description, price string) (*model.Dish, error)

	// Delete removes a dish and its photo object, if any.
	Delete(ctx context.Context, submenuID, id string) error

	// AttachImage uploads a photo to object storage, records its key on the
	// dish, and rolls the upload back if the record cannot be written.
	AttachImage(ctx context.Context, submenuID, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.Dish, error)

	// ImageURL returns a time-limited download URL for the dish photo.
	ImageURL(ctx context.Context, submenuID, id string) (string, error)
}

type dishService struct {
	submenus repository.SubMenuRepository
	repo     repository.DishRepository
	store    storage.Storage
}

// NewDishService constructs a new DishService.
func NewDishService(submenus repository.SubMenuRepository, repo repository.DishRepository, store storage.Storage) DishService {
	return &dishService{submenus: submenus, repo: repo, store: store}
}

func (s *dishService) Create(ctx context.Context, menuID, submenuID, title, description, price string) (*model.Dish, error) {
	if menuID == "" || submenuID == "" {
		return nil, ErrIDRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}
	normPrice, err := normalizePrice(price)
	if err != nil {
		return nil, err
	}

	if _, err := s.submenus.FindByID(ctx, menuID, submenuID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubMenuNotFound
		}
		return nil, err
	}

	owned, err := s.repo.TitleOwnedElsewhere(ctx, submenuID, title)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, ErrDishConflict
	}

	d := &model.Dish{
		ID:          uuid.New().String(),
		SubMenuID:   submenuID,
		Title:       title,
		Description: description,
		Price:       normPrice,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, d)
}

func (s *dishService) List(ctx context.Context, submenuID string, limit, skip int) ([]model.Dish, error) {
	if submenuID == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.ListBySubMenu(ctx, submenuID, repository.PageQuery{Limit: limit, Offset: skip})
}

func (s *dishService) Get(ctx context.Context, submenuID, id string) (*model.Dish, error) {
	if submenuID == "" || id == "" {
		return nil, ErrIDRequired
	}
	d, err := s.repo.FindByID(ctx, submenuID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *dishService) Update(ctx context.Context, submenuID, id, title, description, price string) (*model.Dish, error) {
	if submenuID == "" || id == "" {
		return nil, ErrIDRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}
	normPrice, err := normalizePrice(price)
	if err != nil {
		return nil, err
	}
	d, err := s.repo.Update(ctx, &model.Dish{
		ID:          id,
		SubMenuID:   submenuID,
		Title:       title,
		Description: description,
		Price:       normPrice,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return d, nil
}

// Delete removes the photo object first, then the row, so a failed storage
// delete never leaves a dangling image reference.
func (s *dishService) Delete(ctx context.Context, submenuID, id string) error {
	if submenuID == "" || id == "" {
		return ErrIDRequired
	}
	d, err := s.repo.FindByID(ctx, submenuID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDishNotFound
		}
		return err
	}
	if d.ImagePath != "" {
		if err := s.store.Delete(ctx, d.ImagePath); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, submenuID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDishNotFound
		}
		return err
	}
	return nil
}

func (s *dishService) AttachImage(ctx context.Context, submenuID, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.Dish, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	d, err := s.repo.FindByID(ctx, submenuID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("dishes", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"dish-id":           id,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.repo.SetImagePath(ctx, id, objInfo.Key); err != nil {
		// The row write failed, so the freshly uploaded object must go too.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("image record failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, fmt.Errorf("image record failed: %w", err)
	}

	// Drop the replaced photo, best effort; the new key is already recorded.
	if d.ImagePath != "" && d.ImagePath != objInfo.Key {
		_ = s.store.Delete(ctx, d.ImagePath)
	}

	d.ImagePath = objInfo.Key
	return d, nil
}

func (s *dishService) ImageURL(ctx context.Context, submenuID, id string) (string, error) {
	d, err := s.Get(ctx, submenuID, id)
	if err != nil {
		return "", err
	}
	if d.ImagePath == "" {
		return "", ErrNoImage
	}
	return s.store.PresignGet(ctx, d.ImagePath, presignExpiry)
}

// normalizePrice validates a decimal price string and renders it with two
// fraction digits, the form the API exposes. ParseFloat accepts "NaN" and
// "Inf" spellings, and Postgres numeric would store them, so non-finite
// values are rejected explicitly.
func normalizePrice(price string) (string, error) {
	if price == "" {
		return "", ErrInvalidPrice
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return "", ErrInvalidPrice
	}
	return strconv.FormatFloat(v, 'f', 2, 64), nil
}
