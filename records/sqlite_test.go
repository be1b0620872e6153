package records

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSaveAndRecentRuns(t *testing.T) {
	s := openTemp(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	runs := []Run{
		{Seed: 1, Level: "playground", Outcome: "lost", Frames: 900, DamageTaken: 2, CreatedAt: base},
		{Seed: 2, Level: "playground", Outcome: "won", Frames: 4000, SlimesKilled: 4, BatsKilled: 3, CreatedAt: base.Add(time.Minute)},
		{Seed: 3, Level: "caves", Outcome: "won", Frames: 1200, CreatedAt: base.Add(2 * time.Minute)},
		{Seed: 1 << 63, Level: "playground", Outcome: "won", Frames: 3500, Heals: 1, CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, r := range runs {
		id, err := s.SaveRun(r)
		require.NoError(t, err)
		require.NotEmpty(t, id)
	}

	got, err := s.RecentRuns("playground", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, uint64(1<<63), got[0].Seed, "seeds survive the signed column")
	require.Equal(t, 1, got[0].Heals)
	require.Equal(t, "won", got[1].Outcome)
	require.Equal(t, 4, got[1].SlimesKilled)
	require.Equal(t, base, got[2].CreatedAt)

	all, err := s.RecentRuns("", 2)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "playground", all[0].Level)
	require.Equal(t, "caves", all[1].Level)
}

func TestSaveRunKeepsExplicitID(t *testing.T) {
	s := openTemp(t)
	id, err := s.SaveRun(Run{ID: "fixed-id", Level: "playground", Outcome: "lost"})
	require.NoError(t, err)
	require.Equal(t, "fixed-id", id)

	_, err = s.SaveRun(Run{ID: "fixed-id", Level: "playground", Outcome: "lost"})
	require.Error(t, err, "ids are unique")
}

func TestSummarize(t *testing.T) {
	s := openTemp(t)

	sum, err := s.Summarize("playground")
	require.NoError(t, err)
	require.Equal(t, Summary{}, sum)

	for _, r := range []Run{
		{Level: "playground", Outcome: "lost", Frames: 100},
		{Level: "playground", Outcome: "won", Frames: 5000},
		{Level: "playground", Outcome: "won", Frames: 4200},
		{Level: "caves", Outcome: "won", Frames: 10},
	} {
		_, err := s.SaveRun(r)
		require.NoError(t, err)
	}

	sum, err = s.Summarize("playground")
	require.NoError(t, err)
	require.Equal(t, Summary{Runs: 3, Wins: 2, BestWin: 4200}, sum)

	all, err := s.Summarize("")
	require.NoError(t, err)
	require.Equal(t, Summary{Runs: 4, Wins: 3, BestWin: 10}, all)
}

func TestNilStoreClose(t *testing.T) {
	var s *Store
	require.NoError(t, s.Close())
}
