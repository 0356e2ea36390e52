package repository

import (
	"errors"
	"time"

	"noteflow-backend/internal/note/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormNoteRepository implements NoteRepository using GORM
type gormNoteRepository struct {
	db *gorm.DB
}

func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) Create(note *domain.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	note.CreatedAt = now
	note.UpdatedAt = now
	return r.db.Create(note).Error
}

func (r *gormNoteRepository) FindByUser(userID string) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) FindByID(userID, id string) (*domain.Note, error) {
	var note domain.Note
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) UpdateFields(userID, id string, fields map[string]interface{}) (*domain.Note, error) {
	fields["updated_at"] = time.Now().Unix()

	// Filter-and-mutate in one statement; RowsAffected distinguishes
	// not-found/not-owned without a separate existence check.
	res := r.db.Model(&domain.Note{}).Where("id = ? AND user_id = ?", id, userID).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(userID, id)
}

func (r *gormNoteRepository) Delete(userID, id string) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Note{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormNoteRepository) ToggleFavorite(userID, id string) (*domain.Note, error) {
	res := r.db.Model(&domain.Note{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_favorite": gorm.Expr("NOT is_favorite"),
			"updated_at":  time.Now().Unix(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(userID, id)
}

func (r *gormNoteRepository) FilterOwned(userID string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var owned []string
	err := r.db.Model(&domain.Note{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Pluck("id", &owned).Error
	if err != nil {
		return nil, err
	}

	ownedSet := make(map[string]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}
	var ordered []string
	for _, id := range ids {
		if ownedSet[id] {
			ordered = append(ordered, id)
		}
	}
	return ordered, nil
}
