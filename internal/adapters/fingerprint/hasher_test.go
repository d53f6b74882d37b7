package fingerprint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/fingerprint"
	"go.trai.ch/sift/internal/core/domain"
)

func TestHasher_Deterministic(t *testing.T) {
	t.Parallel()

	h := fingerprint.NewHasher()
	data := []byte("func main() {}")

	assert.Equal(t, h.FingerprintData(data), h.FingerprintData(data))
}

func TestHasher_DistinctInputs(t *testing.T) {
	t.Parallel()

	h := fingerprint.NewHasher()

	a := h.FingerprintData([]byte("package a"))
	b := h.FingerprintData([]byte("package b"))
	assert.NotEqual(t, a, b)
}

func TestHasher_WordsAreIndependent(t *testing.T) {
	t.Parallel()

	h := fingerprint.NewHasher()
	fp := h.FingerprintData([]byte("some node result"))
	assert.NotEqual(t, fp[0], fp[1])
}

func TestHasher_EmptyInput(t *testing.T) {
	t.Parallel()

	h := fingerprint.NewHasher()
	assert.NotEqual(t, domain.Fingerprint{}, h.FingerprintData(nil))
}

func TestHasher_FileMatchesData(t *testing.T) {
	t.Parallel()

	content := []byte("const answer = 42\n")
	path := filepath.Join(t.TempDir(), "result.txt")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	h := fingerprint.NewHasher()
	fromFile, err := h.FingerprintFile(path)
	require.NoError(t, err)

	assert.Equal(t, h.FingerprintData(content), fromFile)
}

func TestHasher_FileMissing(t *testing.T) {
	t.Parallel()

	h := fingerprint.NewHasher()
	_, err := h.FingerprintFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to open file")
}
