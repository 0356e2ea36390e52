package usecase

import (
	"noteflow-backend/internal/note/domain"
	"noteflow-backend/internal/note/dto"
	"noteflow-backend/internal/note/repository"
)

// noteUsecase implements NoteUsecase
type noteUsecase struct {
	noteRepo      repository.NoteRepository
	folderCleaner FolderCleaner
}

func NewNoteUsecase(noteRepo repository.NoteRepository, folderCleaner FolderCleaner) NoteUsecase {
	return &noteUsecase{
		noteRepo:      noteRepo,
		folderCleaner: folderCleaner,
	}
}

func (u *noteUsecase) ListNotes(userID string) ([]*domain.Note, error) {
	notes, err := u.noteRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*domain.Note{}
	}
	return notes, nil
}

func (u *noteUsecase) GetNote(userID, id string) (*domain.Note, error) {
	note, err := u.noteRepo.FindByID(userID, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return note, nil
}

func (u *noteUsecase) CreateNote(userID string, req *dto.CreateNoteRequest) (*domain.Note, error) {
	title := req.Title
	if title == "" {
		title = domain.DefaultTitle
	}
	preview := req.Preview
	if preview == "" {
		preview = domain.MakePreview(req.Content)
	}

	note := &domain.Note{
		UserID:  userID,
		Title:   title,
		Content: req.Content,
		Preview: preview,
	}
	if err := u.noteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (u *noteUsecase) UpdateNote(userID, id string, req *dto.UpdateNoteRequest) (*domain.Note, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
		fields["preview"] = domain.MakePreview(*req.Content)
	}

	note, err := u.noteRepo.UpdateFields(userID, id, fields)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return note, nil
}

func (u *noteUsecase) DeleteNote(userID, id string) error {
	deleted, err := u.noteRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	// Scrub folder membership so no folder keeps a dangling reference.
	return u.folderCleaner.RemoveNoteFromAll(userID, id)
}

func (u *noteUsecase) ToggleFavorite(userID, id string) (bool, error) {
	note, err := u.noteRepo.ToggleFavorite(userID, id)
	if err != nil {
		return false, err
	}
	if note == nil {
		return false, domain.ErrNotFound
	}
	return note.IsFavorite, nil
}
