package intervalio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	l := []int64{0, 3, 10, 15}
	r := []int64{5, 10, 18, 25}

	path := filepath.Join(t.TempDir(), "intervals.bin")
	require.NoError(t, WriteToBin(path, l, r))

	gotL, gotR, err := ReadFromBin(path)
	require.NoError(t, err)
	assert.Equal(t, l, gotL)
	assert.Equal(t, r, gotR)
}

func TestWriteToBinRejectsMismatchedLengths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intervals.bin")
	err := WriteToBin(path, []int64{0, 1}, []int64{5})
	assert.Error(t, err)
}

func TestReadFromBinRejectsCorruptSizeHeader(t *testing.T) {
	l := []int64{0, 3}
	r := []int64{5, 10}
	path := filepath.Join(t.TempDir(), "intervals.bin")
	require.NoError(t, WriteToBin(path, l, r))

	corruptSizeHeader(t, path)

	_, _, err := ReadFromBin(path)
	assert.Error(t, err)
}

func TestPeekPrintsHeaderAndFirstPairs(t *testing.T) {
	l := []int64{0, 3, 10, 15, 20}
	r := []int64{5, 10, 18, 25, 30}
	path := filepath.Join(t.TempDir(), "intervals.bin")
	require.NoError(t, WriteToBin(path, l, r))

	var buf bytes.Buffer
	require.NoError(t, Peek(path, &buf, 2))

	out := buf.String()
	assert.Contains(t, out, "n          = 5")
	assert.Contains(t, out, "interval[0] = (0, 5)")
	assert.Contains(t, out, "interval[1] = (3, 10)")
	assert.NotContains(t, out, "interval[2]")
}

// corruptSizeHeader flips the sizes field (the second uint64 in the file)
// to an obviously wrong value.
func corruptSizeHeader(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for i := 8; i < 16; i++ {
		data[i] = 0xFF
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
