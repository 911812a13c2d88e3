package fuzzing

import (
	"encoding/json"
	"os"
	"path"
	"strconv"

	"github.com/zeu5/tree-diff-fuzz/util"
)

// IterationRecord captures one fuzz iteration. The seed alone is enough to
// replay the iteration in isolation; trees themselves are never persisted.
type IterationRecord struct {
	Iteration  int      `json:"iteration"`
	Seed       uint64   `json:"seed"`
	NodeCount  int      `json:"node_count"`
	Depth      int      `json:"depth"`
	Shape      string   `json:"shape"`
	Mutations  int      `json:"mutations"`
	DiffError  string   `json:"diff_error,omitempty"`
	Violations []string `json:"violations,omitempty"`
}

// recordIteration appends the record to the run's JSONL trace file.
func recordIteration(savePath string, run int, record *IterationRecord) error {
	tracesFolder := path.Join(savePath, "traces")
	if _, err := os.Stat(tracesFolder); err != nil {
		os.MkdirAll(tracesFolder, os.ModePerm)
	}
	bs, err := json.Marshal(record)
	if err != nil {
		return err
	}
	tracesFile := path.Join(tracesFolder, "run_"+strconv.Itoa(run)+".jsonl")
	return util.AppendToFile(tracesFile, string(bs))
}
