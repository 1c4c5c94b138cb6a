package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocalLoaderReadsNestedFolders(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, filepath.Join(dir, "enrolment", "chunk_0.csv"),
		"date,state,district,age_0_5,age_5_17,age_18_greater\n15-01-2024,Maharashtra,Pune,10,20,100\n")
	writeCSV(t, filepath.Join(dir, "demographic", "chunk_0.csv"),
		"date,state,district,demo_age_5_17,demo_age_17_\n15-01-2024,Maharashtra,Pune,2,18\n")
	writeCSV(t, filepath.Join(dir, "unified.csv"),
		"month,state,district,bio_5_17,bio_18_plus\n2024-01,Maharashtra,Pune,15,60\n")

	loader := &LocalLoader{Dir: dir}
	records, err := loader.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLocalLoaderMissingDirIsDataUnavailable(t *testing.T) {
	loader := &LocalLoader{Dir: filepath.Join(t.TempDir(), "does-not-exist")}

	_, err := loader.LoadAll(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestLocalLoaderEmptyDirIsDataUnavailable(t *testing.T) {
	loader := &LocalLoader{Dir: t.TempDir()}

	_, err := loader.LoadAll(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestLocalLoaderSkipsUnreadableFileButKeepsRest(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, filepath.Join(dir, "good.csv"),
		"month,district,enrol_18_plus\n2024-01,Pune,10\n")
	// header without a district column fails that file only
	writeCSV(t, filepath.Join(dir, "broken.csv"), "one,two\n1,2\n")

	loader := &LocalLoader{Dir: dir}
	records, err := loader.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
