package storage

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// RunStats summarizes a run history.
type RunStats struct {
	Runs       int
	Sessions   int
	BestScore  int
	MeanScore  float64
	StdDev     float64 // Sample standard deviation; 0 with fewer than two runs
	MeanLength float64
	MaxLevel   int
	LastPlayed time.Time
}

// Summarize computes aggregate statistics over runs.
func Summarize(runs []RunRecord) RunStats {
	st := RunStats{Runs: len(runs)}
	if len(runs) == 0 {
		return st
	}

	scores := make([]float64, len(runs))
	lengths := make([]float64, len(runs))
	sessions := make(map[string]struct{})
	for i, r := range runs {
		scores[i] = float64(r.Score)
		lengths[i] = float64(r.Length)
		sessions[r.SessionID] = struct{}{}
		st.BestScore = max(st.BestScore, r.Score)
		st.MaxLevel = max(st.MaxLevel, r.Level)
		if r.CreatedAt.After(st.LastPlayed) {
			st.LastPlayed = r.CreatedAt
		}
	}

	st.Sessions = len(sessions)
	st.MeanLength = stat.Mean(lengths, nil)
	if len(scores) > 1 {
		st.MeanScore, st.StdDev = stat.MeanStdDev(scores, nil)
	} else {
		st.MeanScore = scores[0]
	}
	return st
}

// Stats loads the full history and summarizes it.
func (s *Store) Stats() (RunStats, error) {
	runs, err := s.AllRuns()
	if err != nil {
		return RunStats{}, err
	}
	return Summarize(runs), nil
}
