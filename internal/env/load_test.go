package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "# comment\n\nLAB_TEST_A=1\nexport LAB_TEST_B = \"two words\"\nLAB_TEST_C='x'\nbroken\n=novalue\nLAB_TEST_KEEP=file\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	t.Setenv("LAB_TEST_KEEP", "shell")
	for _, k := range []string{"LAB_TEST_A", "LAB_TEST_B", "LAB_TEST_C"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"LAB_TEST_A", "LAB_TEST_B", "LAB_TEST_C"}, set)
	assert.Equal(t, "1", os.Getenv("LAB_TEST_A"))
	assert.Equal(t, "two words", os.Getenv("LAB_TEST_B"))
	assert.Equal(t, "x", os.Getenv("LAB_TEST_C"))
	assert.Equal(t, "shell", os.Getenv("LAB_TEST_KEEP"))
}

func TestLoadMissing(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.NoError(t, err)
	assert.Empty(t, set)
}
