package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnion(t *testing.T) {
	f := &Folder{NoteIDs: []string{"a", "b"}}

	f.Union([]string{"b", "c", "a", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, f.NoteIDs)

	f.Union(nil)
	assert.Equal(t, []string{"a", "b", "c"}, f.NoteIDs)
}

func TestRemove(t *testing.T) {
	f := &Folder{NoteIDs: []string{"a", "b", "c"}}

	assert.True(t, f.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, f.NoteIDs)

	assert.False(t, f.Remove("missing"))
	assert.Equal(t, []string{"a", "c"}, f.NoteIDs)
}
