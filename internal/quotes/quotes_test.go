package quotes

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQuoteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeQuoteFile(t, "First quote\n\n  \nSecond quote\n")

	groups, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []Group{{"First quote"}, {"Second quote"}}, groups)
}

func TestLoadSeparator(t *testing.T) {
	path := writeQuoteFile(t, "Be bold. || Be brave.\nAlone\n")

	groups, err := Load(path)
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, Group{"Be bold.", "Be brave."}, groups[0])
	assert.Equal(t, Group{"Alone"}, groups[1])
}

func TestLoadSeparatorNoEmptySegments(t *testing.T) {
	path := writeQuoteFile(t, "One || Two ||  || \n")

	groups, err := Load(path)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	assert.Equal(t, Group{"One", "Two"}, groups[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeQuoteFile(t, "\n   \n\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPickMembership(t *testing.T) {
	groups := []Group{{"a"}, {"b"}, {"c"}}
	picker := NewPicker(groups, rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		assert.Contains(t, groups, picker.Pick())
	}
}

func TestPickDeterministic(t *testing.T) {
	groups := []Group{{"a"}, {"b"}, {"c"}, {"d"}}

	first := NewPicker(groups, rand.New(rand.NewSource(42))).Pick()
	second := NewPicker(groups, rand.New(rand.NewSource(42))).Pick()

	assert.Equal(t, first, second)
}

func TestPickNDistinct(t *testing.T) {
	groups := []Group{{"a"}, {"b"}, {"c"}}
	picker := NewPicker(groups, rand.New(rand.NewSource(7)))

	picked := picker.PickN(3)
	require.Len(t, picked, 3)

	seen := map[string]bool{}
	for _, g := range picked {
		assert.Contains(t, groups, g)
		assert.False(t, seen[g[0]], "group %v picked twice", g)
		seen[g[0]] = true
	}
}

func TestPickNMoreThanAvailable(t *testing.T) {
	groups := []Group{{"only"}}
	picker := NewPicker(groups, rand.New(rand.NewSource(7)))

	picked := picker.PickN(3)
	require.Len(t, picked, 3)
	for _, g := range picked {
		assert.Equal(t, Group{"only"}, g)
	}
}
