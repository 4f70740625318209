package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("role", "Bowler"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE role = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Bowler" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_NumbersPlaceholdersInOrder(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(Eq("team_code", "IND"), Eq("role", "WK"), IsNull("deleted_at")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT id FROM players WHERE team_code = $1 AND role = $2 AND deleted_at IS NULL", query)
	require.Equal(t, []any{"IND", "WK"}, args)
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("matches").
		Columns("id", "team_a").
		Values("1", "India").
		Values("2", "Australia").
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO matches (id, team_a) VALUES ($1, $2), ($3, $4) ON CONFLICT (id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RejectsRaggedRows(t *testing.T) {
	_, _, err := InsertInto("matches").Columns("id", "team_a").Values("1").ToSQL()
	require.Error(t, err)
}

type sampleRow struct {
	ID      int64   `db:"id"`
	Name    string  `db:"name"`
	Points  float64 `db:"points"`
	Skipped string  `db:"-"`
	hidden  string
}

func TestInsertModels(t *testing.T) {
	rows := []sampleRow{
		{ID: 1, Name: "Virat Kohli", Points: 100, hidden: "x"},
		{ID: 5, Name: "Jasprit Bumrah", Points: 98},
	}

	query, args, err := InsertModels("players", rows, "ON CONFLICT (id) DO NOTHING")
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO players (id, name, points) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT (id) DO NOTHING", query)
	require.Equal(t, []any{int64(1), "Virat Kohli", float64(100), int64(5), "Jasprit Bumrah", float64(98)}, args)
	require.Equal(t, []string{"id", "name", "points"}, Columns(sampleRow{}))
}

func TestInsertModels_Empty(t *testing.T) {
	_, _, err := InsertModels[sampleRow]("players", nil, "")
	require.Error(t, err)
}
