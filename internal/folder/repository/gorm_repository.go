package repository

import (
	"errors"
	"time"

	"noteflow-backend/internal/folder/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormFolderRepository implements FolderRepository using GORM
type gormFolderRepository struct {
	db *gorm.DB
}

func NewGormFolderRepository(db *gorm.DB) FolderRepository {
	return &gormFolderRepository{db: db}
}

func (r *gormFolderRepository) Create(folder *domain.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.New().String()
	}
	if folder.NoteIDs == nil {
		folder.NoteIDs = []string{}
	}
	folder.CreatedAt = time.Now().Unix()
	return r.db.Create(folder).Error
}

func (r *gormFolderRepository) FindByUser(userID string) ([]*domain.Folder, error) {
	var folders []*domain.Folder
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&folders).Error
	return folders, err
}

func (r *gormFolderRepository) FindByID(userID, id string) (*domain.Folder, error) {
	var folder domain.Folder
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&folder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (r *gormFolderRepository) Rename(userID, id, name string) (*domain.Folder, error) {
	res := r.db.Model(&domain.Folder{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("name", name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(userID, id)
}

func (r *gormFolderRepository) Delete(userID, id string) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Folder{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormFolderRepository) AddNoteIDs(userID, id string, noteIDs []string) (*domain.Folder, error) {
	var updated *domain.Folder
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var folder domain.Folder
		// Row lock keeps the read-union-write cycle atomic under concurrency.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, userID).
			First(&folder).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		folder.Union(noteIDs)
		if err := tx.Model(&domain.Folder{}).Where("id = ?", folder.ID).
			Update("note_ids", folder.NoteIDs).Error; err != nil {
			return err
		}
		updated = &folder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *gormFolderRepository) RemoveNoteFromAll(userID, noteID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var folders []*domain.Folder
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			Find(&folders).Error
		if err != nil {
			return err
		}

		for _, folder := range folders {
			if folder.Remove(noteID) {
				if err := tx.Model(&domain.Folder{}).Where("id = ?", folder.ID).
					Update("note_ids", folder.NoteIDs).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
