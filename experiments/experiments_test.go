package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"baghbandi/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunSelfPlay(t *testing.T) {
	root := t.TempDir()

	summary, err := RunSelfPlay(root, "selfplay", 3, game.NewStandardConfig(), 42)

	require.NoError(t, err)
	require.Equal(t, 3, summary.Games)
	require.Equal(t, 3, summary.HunterWins+summary.HerdWins+summary.Unfinished)
	require.DirExists(t, summary.Directory)

	configs := readCSV(t, filepath.Join(summary.Directory, "agent_configs.csv"))
	require.Len(t, configs, 3, "Header and one row per agent")
	require.Equal(t, []string{"1", "random", "42"}, configs[1])

	games := readCSV(t, filepath.Join(summary.Directory, "game_records.csv"))
	require.Len(t, games, 4, "Header and one row per game")
	require.Equal(t, "id", games[0][0])

	moves := readCSV(t, filepath.Join(summary.Directory, "move_records.csv"))
	require.Greater(t, len(moves), 3, "Every game has at least one move")
}

func TestRunSelfPlayBadConfig(t *testing.T) {
	cfg := game.NewStandardConfig()
	cfg.PileSize = 0

	_, err := RunSelfPlay(t.TempDir(), "bad", 1, cfg, 1)

	require.ErrorIs(t, err, game.ErrConfiguration)
}
