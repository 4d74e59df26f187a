package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/rhoneyager-tomorrow/ioda-converters/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func writeFixture(t *testing.T, path string, messages []Message) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	enc := msgpack.NewEncoder(gz)
	for _, msg := range messages {
		require.NoError(t, enc.Encode(msg))
	}
}

func TestLoadReplaysAdmittedSubsetsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.msgpack.gz")

	writeFixture(t, path, []Message{
		{
			Subset: "NC000001",
			Fields: map[string]Field{
				"temperature": {
					Data:          []float64{42},
					SeqCounts:     [][]int{{1}},
					DimPaths:      []string{"NC000001/temperature"},
					ExportDimIdxs: []int{0},
					Bits:          32,
					Scale:         1,
					Unit:          "K",
				},
			},
		},
		{
			Subset: "NC000002",
			Fields: map[string]Field{
				"temperature": {
					Data:          []float64{99},
					SeqCounts:     [][]int{{1}},
					DimPaths:      []string{"NC000002/temperature"},
					ExportDimIdxs: []int{0},
					Bits:          32,
					Scale:         1,
					Unit:          "K",
				},
			},
		},
	})

	qs := query.New()
	require.NoError(t, qs.Add("temperature", "NC000001/temperature"))

	rs, err := Load(path, qs)
	require.NoError(t, err)

	assert.Equal(t, 1, rs.FrameCount())
}

func TestLoadMissingFileReturnsErrFixtureNotFound(t *testing.T) {
	qs := query.New()
	_, err := Load("/nonexistent/path.msgpack.gz", qs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFixtureNotFound)
}

func TestLoadCorruptGzipReturnsErrFixtureCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.msgpack.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip data"), 0644))

	qs := query.New()
	_, err := Load(path, qs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFixtureCorrupt)
}
