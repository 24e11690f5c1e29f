package note

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormStore keeps notes in the notes table.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) List(ctx context.Context) ([]Note, error) {
	var rows []Note
	if err := s.DB.WithContext(ctx).Order("created_at desc, id asc").Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list notes")
	}
	return rows, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (Note, error) {
	var n Note
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Note{}, ErrNotFound
		}
		return Note{}, pkgerrors.Wrapf(err, "get note %s", id)
	}
	return n, nil
}

func (s *GormStore) Create(ctx context.Context, in CreateInput) (Note, error) {
	if err := in.Validate(); err != nil {
		return Note{}, err
	}
	n := newNote(in, time.Now())
	if err := s.DB.WithContext(ctx).Create(&n).Error; err != nil {
		return Note{}, pkgerrors.Wrap(err, "create note")
	}
	return n, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&Note{})
	if res.Error != nil {
		return pkgerrors.Wrapf(res.Error, "delete note %s", id)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SeedIfEmpty inserts notes when the table has none, oldest first so that
// created_at ordering matches the order given.
func (s *GormStore) SeedIfEmpty(ctx context.Context, notes []Note) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Note{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		base := time.Now().Add(-time.Duration(len(notes)) * time.Second)
		for i := len(notes) - 1; i >= 0; i-- {
			n := notes[i]
			n.CreatedAt = base.Add(time.Duration(len(notes)-i) * time.Second)
			if err := tx.Create(&n).Error; err != nil {
				return pkgerrors.Wrapf(err, "seed note %s", n.ID)
			}
		}
		return nil
	})
}
