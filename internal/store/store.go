package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookit-web/internal/cost"
	"bookit-web/internal/model"
)

// Store defines the dev backend's database operations.
type Store interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
	GetRoom(ctx context.Context, id string) (model.Room, error)
	CreateRoom(ctx context.Context, in model.RoomInput) (model.Room, error)
	UpdateRoom(ctx context.Context, id string, in model.RoomInput) (model.Room, error)
	DeleteRoom(ctx context.Context, id string) error

	ListAmenities(ctx context.Context) ([]model.Amenity, error)
	GetAmenity(ctx context.Context, id string) (model.Amenity, error)
	CreateAmenity(ctx context.Context, in model.AmenityInput) (model.Amenity, error)
	UpdateAmenity(ctx context.Context, id string, in model.AmenityInput) (model.Amenity, error)
	DeleteAmenity(ctx context.Context, id string) error

	Profile(ctx context.Context) (model.ManagerProfile, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db    *gorm.DB
	newID func() string
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db, newID: uuid.NewString}
}

func (s *gormStore) ListRooms(ctx context.Context) ([]model.Room, error) {
	rooms := []model.Room{}
	if err := s.db.WithContext(ctx).Order("created_at, room_name").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *gormStore) GetRoom(ctx context.Context, id string) (model.Room, error) {
	return first[model.Room](s.db.WithContext(ctx), "room_id = ?", id)
}

// CreateRoom stores a new room under a fresh id. The room cost is computed
// from the stored amenity catalog, whatever the payload says.
func (s *gormStore) CreateRoom(ctx context.Context, in model.RoomInput) (model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		catalog, err := amenityCatalog(tx)
		if err != nil {
			return err
		}
		if err := validateRoom(in, catalog); err != nil {
			return err
		}

		room = model.Room{RoomID: s.newID(), IsActive: true}
		applyRoomInput(&room, in, catalog)
		if err := tx.Create(&room).Error; err != nil {
			return fmt.Errorf("failed to create room: %w", err)
		}
		return nil
	})
	return room, err
}

// UpdateRoom replaces the room's fields and recomputes its cost.
func (s *gormStore) UpdateRoom(ctx context.Context, id string, in model.RoomInput) (model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := first[model.Room](tx, "room_id = ?", id)
		if err != nil {
			return err
		}
		catalog, err := amenityCatalog(tx)
		if err != nil {
			return err
		}
		if err := validateRoom(in, catalog); err != nil {
			return err
		}

		room = existing
		applyRoomInput(&room, in, catalog)
		if err := tx.Save(&room).Error; err != nil {
			return fmt.Errorf("failed to update room %s: %w", id, err)
		}
		return nil
	})
	return room, err
}

func (s *gormStore) DeleteRoom(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Room{}, "room_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *gormStore) ListAmenities(ctx context.Context) ([]model.Amenity, error) {
	amenities := []model.Amenity{}
	if err := s.db.WithContext(ctx).Order("created_at, amenity_name").Find(&amenities).Error; err != nil {
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}
	return amenities, nil
}

func (s *gormStore) GetAmenity(ctx context.Context, id string) (model.Amenity, error) {
	return first[model.Amenity](s.db.WithContext(ctx), "amenity_id = ?", id)
}

// CreateAmenity stores a new amenity. Names are normalised to upper-case
// tokens and must be unique.
func (s *gormStore) CreateAmenity(ctx context.Context, in model.AmenityInput) (model.Amenity, error) {
	name, err := normalizeAmenity(in)
	if err != nil {
		return model.Amenity{}, err
	}

	amenity := model.Amenity{
		AmenityID:   s.newID(),
		AmenityName: name,
		Description: in.Description,
		CreditCost:  in.CreditCost,
		IsActive:    true,
	}
	if in.IsActive != nil {
		amenity.IsActive = *in.IsActive
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUniqueAmenity(tx, name, ""); err != nil {
			return err
		}
		if err := tx.Create(&amenity).Error; err != nil {
			return fmt.Errorf("failed to create amenity: %w", err)
		}
		return nil
	})
	return amenity, err
}

func (s *gormStore) UpdateAmenity(ctx context.Context, id string, in model.AmenityInput) (model.Amenity, error) {
	name, err := normalizeAmenity(in)
	if err != nil {
		return model.Amenity{}, err
	}

	var amenity model.Amenity
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := first[model.Amenity](tx, "amenity_id = ?", id)
		if err != nil {
			return err
		}
		if err := ensureUniqueAmenity(tx, name, id); err != nil {
			return err
		}

		amenity = existing
		amenity.AmenityName = name
		amenity.Description = in.Description
		amenity.CreditCost = in.CreditCost
		if in.IsActive != nil {
			amenity.IsActive = *in.IsActive
		}
		if err := tx.Save(&amenity).Error; err != nil {
			return fmt.Errorf("failed to update amenity %s: %w", id, err)
		}
		return nil
	})
	return amenity, err
}

func (s *gormStore) DeleteAmenity(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Amenity{}, "amenity_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete amenity %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("amenity %s: %w", id, ErrNotFound)
	}
	return nil
}

// Profile returns the single manager the dev backend knows about.
func (s *gormStore) Profile(ctx context.Context) (model.ManagerProfile, error) {
	return first[model.ManagerProfile](s.db.WithContext(ctx), "1 = 1")
}

// --- Helpers ---

func first[T any](db *gorm.DB, query string, args ...any) (T, error) {
	var out T
	err := db.Where(query, args...).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return out, fmt.Errorf("%T %v: %w", out, args, ErrNotFound)
	}
	if err != nil {
		return out, fmt.Errorf("failed to load %T: %w", out, err)
	}
	return out, nil
}

func amenityCatalog(tx *gorm.DB) (map[string]model.Amenity, error) {
	var amenities []model.Amenity
	if err := tx.Find(&amenities).Error; err != nil {
		return nil, fmt.Errorf("failed to load amenity catalog: %w", err)
	}
	catalog := make(map[string]model.Amenity, len(amenities))
	for _, a := range amenities {
		catalog[a.AmenityName] = a
	}
	return catalog, nil
}

func applyRoomInput(room *model.Room, in model.RoomInput, catalog map[string]model.Amenity) {
	amenities := make([]model.Amenity, 0, len(catalog))
	for _, a := range catalog {
		amenities = append(amenities, a)
	}

	room.RoomName = in.RoomName
	room.RoomType = in.RoomType
	room.SeatingCapacity = in.SeatingCapacity
	room.PerHourCost = in.PerHourCost
	room.Amenities = append([]string{}, in.Amenities...)
	room.RoomCost = cost.Calculate(in.PerHourCost, in.Amenities, amenities)
	if in.IsActive != nil {
		room.IsActive = *in.IsActive
	}
}

func ensureUniqueAmenity(tx *gorm.DB, name, exceptID string) error {
	var count int64
	q := tx.Model(&model.Amenity{}).Where("amenity_name = ?", name)
	if exceptID != "" {
		q = q.Where("amenity_id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check amenity name: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("amenity %s: %w", name, ErrConflict)
	}
	return nil
}
