package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterTiers(t *testing.T) {
	corpus := []string{"mjölk", "havremjölk", "mjöl"}
	got := Filter("mj", corpus)
	// starts-with before contains, stable inside each tier
	assert.Equal(t, []string{"mjölk", "mjöl", "havremjölk"}, got)
}

func TestFilterEmptyQuery(t *testing.T) {
	corpus := []string{"mjölk", "bröd"}
	assert.Nil(t, Filter("", corpus))
	assert.Nil(t, Filter("   ", corpus))
}

func TestFilterCaseInsensitive(t *testing.T) {
	corpus := []string{"Mjölk", "Bröd"}
	assert.Equal(t, []string{"Mjölk"}, Filter("MJÖ", corpus))
}

func TestFilterCap(t *testing.T) {
	var corpus []string
	for i := 0; i < 20; i++ {
		corpus = append(corpus, "ost") // all prefix matches
	}
	assert.Len(t, Filter("ost", corpus), Max)
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter("zzz", []string{"mjölk"}))
}

func TestLoad(t *testing.T) {
	in := "mjölk\n\n  bröd  \r\n\nost\n"
	got, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"mjölk", "bröd", "ost"}, got)
}

func TestLoadFileMissingFallsBackToDefault(t *testing.T) {
	got, err := LoadFile("/does/not/exist/suggestions.txt")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestDefaultCorpus(t *testing.T) {
	corpus := Default()
	require.NotEmpty(t, corpus)
	got := Filter("mj", corpus)
	require.NotEmpty(t, got)
	assert.Equal(t, "mjölk", got[0])
}
