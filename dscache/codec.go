package dscache

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/riondato/truefreq/core"
)

// wireStats mirrors core.DatasetStats' exported fields for JSON transport
// to the remote tier; decode reconstructs through core.NewDatasetStats so
// a corrupted or stale remote value can never skip the histogram-sum
// invariant check. WriterID identifies which Put call produced the entry,
// so a shared Redis tier can be inspected to tell which process last
// profiled a given dataset.
type wireStats struct {
	Size     int
	Items    map[int]struct{}
	MaxLen   int
	MaxSupp  int
	Lengths  map[int]int
	DIndex   int
	WriterID string
}

func encode(stats core.DatasetStats, writerID string) (string, error) {
	b, err := json.Marshal(wireStats{
		Size:     stats.Size,
		Items:    stats.Items,
		MaxLen:   stats.MaxLen,
		MaxSupp:  stats.MaxSupp,
		Lengths:  stats.Lengths,
		DIndex:   stats.DIndex,
		WriterID: writerID,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(raw string) (core.DatasetStats, string, error) {
	var w wireStats
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return core.DatasetStats{}, "", err
	}
	stats, err := core.NewDatasetStats(w.Size, w.Items, w.MaxLen, w.MaxSupp, w.Lengths, w.DIndex)
	return stats, w.WriterID, err
}

// newWriterID generates a fresh identifier for a cache-populating write.
func newWriterID() string { return uuid.NewString() }
