package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelsplace/kvx2vox/internal/kvxtest"
	"github.com/voxelsplace/kvx2vox/kvx"
	"github.com/voxelsplace/kvx2vox/vox"
)

// run executes the root command and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func fixture(t *testing.T) (dir, src string) {
	t.Helper()
	dir = t.TempDir()
	src = filepath.Join(dir, "col.kvx")
	data := kvxtest.New(1, 1, 4).Add(0, 0, 0, 5, 7).WithPalette(kvxtest.Ramp()).Bytes()
	require.NoError(t, os.WriteFile(src, data, 0o644))
	return dir, src
}

func TestRootConverts(t *testing.T) {
	dir, src := fixture(t)
	dst := filepath.Join(dir, "col.vox")

	_, logs, err := run(t, src, dst)
	require.NoError(t, err)
	require.Contains(t, logs, "Wrote")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	m, err := vox.Decode(data)
	require.NoError(t, err)
	require.Len(t, m.Voxels, 2)
	require.NotNil(t, m.Palette)
}

func TestRootNoPalette(t *testing.T) {
	dir, src := fixture(t)
	dst := filepath.Join(dir, "col.vox")
	_, _, err := run(t, "--no-palette", src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	m, err := vox.Decode(data)
	require.NoError(t, err)
	require.Nil(t, m.Palette)
}

func TestRootArgs(t *testing.T) {
	_, _, err := run(t, "only-one.kvx")
	require.Error(t, err)
	_, _, err = run(t)
	require.Error(t, err)
}

func TestRootReportsFormatErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "short.kvx")
	require.NoError(t, os.WriteFile(src, []byte{0, 1, 2}, 0o644))
	_, _, err := run(t, src, filepath.Join(dir, "short.vox"))
	require.ErrorIs(t, err, kvx.ErrTruncatedHeader)
}

func TestVerboseLogsDebug(t *testing.T) {
	dir, src := fixture(t)
	_, logs, err := run(t, "-v", src, filepath.Join(dir, "col.vox"))
	require.NoError(t, err)
	require.Contains(t, logs, "digest")
}

func TestInfo(t *testing.T) {
	dir, src := fixture(t)
	dst := filepath.Join(dir, "col.vox")
	_, _, err := run(t, src, dst)
	require.NoError(t, err)

	out, _, err := run(t, "info", dst)
	require.NoError(t, err)
	require.Contains(t, out, "format:  VOX 150")
	require.Contains(t, out, "voxels:  2")
	require.Contains(t, out, "palette: true")

	out, _, err = run(t, "info", src)
	require.NoError(t, err)
	require.Contains(t, out, "size:    1 x 1 x 4")
	require.Contains(t, out, "voxels:  2")
}

func TestGlbAndCompress(t *testing.T) {
	dir, src := fixture(t)
	_, _, err := run(t, "glb", src, filepath.Join(dir, "col.glb"))
	require.NoError(t, err)

	zst := filepath.Join(dir, "col.kvx.zst")
	_, _, err = run(t, "compress", src, zst)
	require.NoError(t, err)

	out, _, err := run(t, "info", zst)
	require.NoError(t, err)
	require.Contains(t, out, "KVX (zstd)")
}

func TestBatch(t *testing.T) {
	dir, _ := fixture(t)
	manifest := filepath.Join(dir, "jobs.toml")
	require.NoError(t, os.WriteFile(manifest, []byte("[[job]]\nsource = \"col.kvx\"\ntarget = \"col.vox\"\n"), 0o644))

	_, logs, err := run(t, "batch", manifest)
	require.NoError(t, err)
	require.Contains(t, logs, "Batch finished")
	_, err = os.Stat(filepath.Join(dir, "col.vox"))
	require.NoError(t, err)
}
