package usecase

import (
	"testing"

	"noteflow-backend/internal/folder/domain"
	"noteflow-backend/internal/folder/repository"
	notedomain "noteflow-backend/internal/note/domain"
	noterepo "noteflow-backend/internal/note/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T) (FolderUsecase, noterepo.NoteRepository) {
	t.Helper()
	notes := noterepo.NewMemoryNoteRepository()
	return NewFolderUsecase(repository.NewMemoryFolderRepository(), notes), notes
}

func makeNote(t *testing.T, notes noterepo.NoteRepository, userID, title string) *notedomain.Note {
	t.Helper()
	note := &notedomain.Note{UserID: userID, Title: title}
	require.NoError(t, notes.Create(note))
	return note
}

func TestCreateAndListFolders(t *testing.T) {
	uc, _ := newTestUsecase(t)

	folder, err := uc.CreateFolder("u1", "Week 1")
	require.NoError(t, err)
	assert.NotEmpty(t, folder.ID)
	assert.Equal(t, "Week 1", folder.Name)
	assert.NotNil(t, folder.NoteIDs, "member list starts empty, not null")

	_, err = uc.CreateFolder("u2", "Not yours")
	require.NoError(t, err)

	folders, err := uc.ListFolders("u1")
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, folder.ID, folders[0].ID)
}

func TestRenameFolder(t *testing.T) {
	uc, _ := newTestUsecase(t)

	folder, err := uc.CreateFolder("u1", "Old")
	require.NoError(t, err)

	renamed, err := uc.RenameFolder("u1", folder.ID, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", renamed.Name)

	_, err = uc.RenameFolder("u2", folder.ID, "Hijack")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddNotesUnion(t *testing.T) {
	uc, notes := newTestUsecase(t)

	folder, err := uc.CreateFolder("u1", "Lectures")
	require.NoError(t, err)
	a := makeNote(t, notes, "u1", "a")
	b := makeNote(t, notes, "u1", "b")

	updated, err := uc.AddNotes("u1", folder.ID, []string{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, updated.NoteIDs)

	// Adding again is idempotent and keeps the original order.
	updated, err = uc.AddNotes("u1", folder.ID, []string{b.ID, a.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, updated.NoteIDs)
}

func TestAddNotesFiltersForeignNotes(t *testing.T) {
	uc, notes := newTestUsecase(t)

	folder, err := uc.CreateFolder("u1", "Lectures")
	require.NoError(t, err)
	mine := makeNote(t, notes, "u1", "mine")
	theirs := makeNote(t, notes, "u2", "theirs")

	// Foreign and unknown ids are silently dropped, owned ids still land.
	updated, err := uc.AddNotes("u1", folder.ID, []string{theirs.ID, mine.ID, "ghost"})
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID}, updated.NoteIDs)
}

func TestAddNotesToForeignFolder(t *testing.T) {
	uc, notes := newTestUsecase(t)

	folder, err := uc.CreateFolder("owner", "Lectures")
	require.NoError(t, err)
	note := makeNote(t, notes, "intruder", "n")

	_, err = uc.AddNotes("intruder", folder.ID, []string{note.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteFolderLeavesNotes(t *testing.T) {
	uc, notes := newTestUsecase(t)

	folder, err := uc.CreateFolder("u1", "Lectures")
	require.NoError(t, err)
	note := makeNote(t, notes, "u1", "kept")
	_, err = uc.AddNotes("u1", folder.ID, []string{note.ID})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteFolder("u1", folder.ID))

	// The folder is gone but the note survives.
	folders, err := uc.ListFolders("u1")
	require.NoError(t, err)
	assert.Empty(t, folders)

	kept, err := notes.FindByID("u1", note.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	// Deleting again reports not found.
	assert.ErrorIs(t, uc.DeleteFolder("u1", folder.ID), domain.ErrNotFound)
}
