package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/hupe1980/hkmeans"
	"github.com/hupe1980/hkmeans/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func localConfig(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "hkmeans.yaml", fmt.Sprintf(`
k: 2
max_iter: 50
store:
  kind: local
  path: %s
codebook:
  codec: json
  compression: lz4
`, filepath.Join(dir, "store")))
}

func TestClusterAndClassify(t *testing.T) {
	dir := t.TempDir()
	cfg := localConfig(t, dir)
	points := writeFile(t, dir, "points.csv", "# x,y\n0,0\n0,1\n10,0\n10,1\n")

	out, err := run(t, "--config", cfg, "cluster", "--save", "pairs.hkcb", points)
	require.NoError(t, err)

	var res hkmeans.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.K)
	assert.Len(t, res.Centroids, 2)
	require.Len(t, res.Assignments, 4)

	_, err = os.Stat(filepath.Join(dir, "store", "pairs.hkcb"))
	require.NoError(t, err)

	out, err = run(t, "--config", cfg, "classify", "pairs.hkcb", points)
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 4)
	for i, line := range lines {
		j, err := strconv.Atoi(line)
		require.NoError(t, err)
		assert.Equal(t, res.Assignments[i], j)
	}

	_, err = run(t, "--config", cfg, "classify", "--metric", "cosine", "pairs.hkcb", points)
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "classify", "missing.hkcb", points)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	// Stored codebooks are 2-dimensional, not RGB.
	_, err = run(t, "--config", cfg, "palette", "pairs.hkcb")
	assert.Error(t, err)
}

func TestCluster_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	points := writeFile(t, dir, "points.csv", "1,1\n1,2\n5,5\n5,6\n9,9\n9,8\n")

	out, err := run(t, "--store", "memory", "-k", "3", "--max-iter", "10", "--seed", "4", "--workers", "2", "cluster", points)
	require.NoError(t, err)

	var res hkmeans.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.K)
	assert.LessOrEqual(t, res.Iterations, 10)

	_, err = run(t, "--store", "memory", "-k", "7", "cluster", points)
	assert.ErrorIs(t, err, hkmeans.ErrInsufficientPoints)
}

func TestQuantizeAndPalette(t *testing.T) {
	dir := t.TempDir()
	cfg := localConfig(t, dir)

	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	in := filepath.Join(dir, "in.png")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	outPath := filepath.Join(dir, "out.png")
	out, err := run(t, "--config", cfg, "quantize", "--save", "img.hkcb", in, outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "png 8x4 -> 2 colors")

	f, err = os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	out, err = run(t, "--config", cfg, "palette", "img.hkcb")
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, line)
	}
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()
	points := writeFile(t, dir, "points.csv", "0,0\n1,1\n")

	_, err := run(t, "--store", "ftp", "cluster", points)
	assert.Error(t, err)

	_, err = run(t, "--log-level", "loud", "cluster", points)
	assert.Error(t, err)

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "cluster", points)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "--store", "memory", "quantize", filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "cluster")
	assert.Error(t, err)
}

func TestReadPoints(t *testing.T) {
	points, err := readPoints(strings.NewReader("# header\n1, 2.5\n\n-3,4e2\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2.5}, {-3, 400}}, points)

	_, err = readPoints(strings.NewReader("1,2\n3\n"))
	assert.Error(t, err)

	_, err = readPoints(strings.NewReader("1,x\n"))
	assert.ErrorContains(t, err, "line 1 field 2")

	points, err = readPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, points)
}
