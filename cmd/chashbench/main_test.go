package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-capacity", "2", "-keys", "100", "-hasher", "xxhash", "-seed", "5"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, uint(2), cfg.capacity)
	require.Equal(t, 100, cfg.keys)
	require.Equal(t, 30, cfg.keySize)
	require.Equal(t, "xxhash", cfg.hasher)
	require.Equal(t, int64(5), cfg.seed)

	testCases := [][]string{
		{"-capacity", "0"},
		{"-keys", "0"},
		{"-hasher", "md5"},
		{"-keys", "100", "-key-size", "1"},
		{"-bogus"},
	}
	for _, args := range testCases {
		_, err := parseFlags(args, io.Discard)
		require.Error(t, err, "args %v", args)
	}
}

func TestRun(t *testing.T) {
	for _, hasher := range []string{"poly31", "fnv1a", "xxhash", "maphash"} {
		t.Run(hasher, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()

			cfg := &config{capacity: 2, keys: 100, keySize: 30, hasher: hasher, seed: 1}
			summary, err := run(cfg, logger)
			require.NoError(t, err)

			var names []string
			for _, r := range summary.Results {
				names = append(names, r.Name)
				require.Equal(t, 100, r.Operations)
			}
			if diff := cmp.Diff([]string{"insert", "get", "update", "remove"}, names); diff != "" {
				t.Errorf("phases mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, 100, summary.Stats.Entries)
			require.Equal(t, uint32(2), summary.Stats.Capacity)
			require.Len(t, hook.AllEntries(), 4)
			require.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
		})
	}
}

func TestSummaryWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history", "latest.json")

	s := newSummary("poly31", 9)
	s.add("insert", 10, 1000)
	require.NoError(t, s.write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got BenchmarkSummary
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, "poly31", got.Hasher)
	require.Len(t, got.Results, 1)
	require.Equal(t, 100.0, got.Results[0].NsPerOp)
}

func TestGitInfo(t *testing.T) {
	dir := t.TempDir()
	commitID, branch := gitInfo(dir)
	require.Equal(t, "local", commitID)
	require.Equal(t, "dev", branch)

	gitDir := filepath.Join(dir, ".git")
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "refs", "heads", "main"), []byte("0123456789abcdef\n"), 0644))

	commitID, branch = gitInfo(dir)
	require.Equal(t, "01234567", commitID)
	require.Equal(t, "main", branch)
}
