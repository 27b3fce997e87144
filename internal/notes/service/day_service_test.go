package service

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notedays/internal/notes"
	"notedays/internal/store"
)

func newTestService(t *testing.T) (DayService, store.Store) {
	t.Helper()
	s, err := store.NewFileStore(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	return NewDayService(s), s
}

func TestLoad_MissingDateIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	list, err := svc.Load("2026-03-05")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	in := []notes.Note{
		notes.NewNote("!buy milk"),
		{ID: notes.NewID(), Text: "call mom", Checked: true},
		{ID: notes.NewID(), Text: ""},
	}
	require.NoError(t, svc.Save("2026-03-05", in))

	out, err := svc.Load("2026-03-05")
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Text, out[i].Text)
		assert.Equal(t, in[i].Checked, out[i].Checked)
		assert.False(t, out[i].Important, "importance is display only")
	}
}

func TestSave_WireFormat(t *testing.T) {
	svc, s := newTestService(t)

	require.NoError(t, svc.Save("2026-03-05", []notes.Note{{ID: "01ABC", Text: "buy milk"}}))
	raw, ok, err := s.Get("2026-03-05")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"01ABC","text":"buy milk","checked":false}]`, raw)

	require.NoError(t, svc.Save("2026-03-05", nil))
	raw, _, err = s.Get("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestLoad_LegacyRecordsWithoutIDs(t *testing.T) {
	svc, s := newTestService(t)
	require.NoError(t, s.Set("2026-03-05", `[{"text":"old","checked":true},{"text":"older","checked":false}]`))

	list, err := svc.Load("2026-03-05")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "old", list[0].Text)
	assert.True(t, list[0].Checked)
	assert.NotEmpty(t, list[0].ID)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestLoad_MalformedIsEmpty(t *testing.T) {
	svc, s := newTestService(t)
	require.NoError(t, s.Set("2026-03-05", `{not json`))

	list, err := svc.Load("2026-03-05")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInvalidDateKey(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Load("yesterday")
	assert.True(t, errors.Is(err, notes.ErrInvalidDate))
	assert.True(t, errors.Is(svc.Save("2026/03/05", nil), notes.ErrInvalidDate))
}

func TestDates_SkipsForeignKeys(t *testing.T) {
	svc, s := newTestService(t)
	require.NoError(t, svc.Save("2026-03-05", nil))
	require.NoError(t, svc.Save("2026-01-01", nil))
	require.NoError(t, s.Set("settings", "{}"))

	dates, err := svc.Dates()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-01", "2026-03-05"}, dates)
}

type failingStore struct {
	store.Store
}

func (failingStore) Set(string, string) error { return errors.New("quota exceeded") }

func TestSave_PropagatesStoreErrors(t *testing.T) {
	_, s := newTestService(t)
	svc := NewDayService(failingStore{s})

	err := svc.Save("2026-03-05", []notes.Note{{Text: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
