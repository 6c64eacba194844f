package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/theflywheel/chash"
)

// BenchmarkResult represents a single workload phase
type BenchmarkResult struct {
	Name       string             `json:"name"`
	Operations int                `json:"operations"`
	NsPerOp    float64            `json:"ns_per_op"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// BenchmarkSummary represents the complete workload output
type BenchmarkSummary struct {
	Timestamp string            `json:"timestamp"`
	CommitID  string            `json:"commit_id"`
	Branch    string            `json:"branch"`
	GoVersion string            `json:"go_version"`
	Hasher    string            `json:"hasher"`
	Seed      int64             `json:"seed"`
	Stats     chash.Stats       `json:"stats"`
	Results   []BenchmarkResult `json:"results"`
}

func newSummary(hasher string, seed int64) *BenchmarkSummary {
	commitID, branch := gitInfo(".")
	return &BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commitID,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Hasher:    hasher,
		Seed:      seed,
	}
}

func (s *BenchmarkSummary) add(name string, ops int, elapsed time.Duration) BenchmarkResult {
	r := BenchmarkResult{
		Name:       name,
		Operations: ops,
		NsPerOp:    float64(elapsed.Nanoseconds()) / float64(ops),
		Metrics: map[string]float64{
			"ops_per_sec": float64(ops) / elapsed.Seconds(),
		},
	}
	s.Results = append(s.Results, r)
	return r
}

// write stores the summary as indented JSON at path, or on stdout if path is empty.
func (s *BenchmarkSummary) write(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}

// gitInfo reads the current commit and branch from the .git directory under
// root, falling back to "local" and "dev".
func gitInfo(root string) (commitID, branch string) {
	commitID, branch = "local", "dev"

	head, err := os.ReadFile(filepath.Join(root, ".git", "HEAD"))
	if err != nil {
		return
	}
	content := strings.TrimSpace(string(head))
	if !strings.HasPrefix(content, "ref: ") {
		if len(content) >= 8 {
			commitID = content[:8]
		}
		return
	}

	ref := strings.TrimPrefix(content, "ref: ")
	branch = strings.TrimPrefix(ref, "refs/heads/")
	if data, err := os.ReadFile(filepath.Join(root, ".git", ref)); err == nil {
		commitID = strings.TrimSpace(string(data))
		if len(commitID) >= 8 {
			commitID = commitID[:8]
		}
	}
	return
}
