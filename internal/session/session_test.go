package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadClear(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	t.Setenv("HANDLA_LIST", "") // ignore any ambient override

	st, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, st, "no session before first save")

	require.NoError(t, s.Save(State{ActiveListID: "list-a"}))
	st, err = s.Load()
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, "list-a", st.ActiveListID)
	assert.False(t, st.SavedAt.IsZero())

	require.NoError(t, s.Clear())
	st, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, st)

	// Clearing twice is a no-op.
	require.NoError(t, s.Clear())
}

func TestSaveRejectsEmptyID(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	assert.Error(t, s.Save(State{ActiveListID: "  "}))
}

func TestEnvOverride(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	t.Setenv("HANDLA_LIST", "list-env")
	st, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, "list-env", st.ActiveListID)
}
