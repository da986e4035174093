package backup

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	ts := time.Date(2025, 3, 7, 23, 0, 0, 0, time.FixedZone("x", -3*3600))

	key := ObjectKey(ts)
	assert.Regexp(t, regexp.MustCompile(`^backups/2025/03/08/[0-9a-f-]{36}\.json$`), key)
	assert.NotEqual(t, key, ObjectKey(ts))
}

func TestFileSink_Put(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := NewFileSink(dir)

	location, err := sink.Put(context.Background(), "backups/2025/10/19/x.json", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "x.json", filepath.Base(location))

	got, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}

func TestFileSink_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSink(t.TempDir()).Put(ctx, "k.json", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
