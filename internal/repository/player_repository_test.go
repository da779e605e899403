package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/astevens246/auth-fantasy-football/internal/roster"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_AssignToTeamLostRace(t *testing.T) {
	db, mock := setupMockRepoDB(t)
	repo := NewPlayerRepository(db)

	// The in-transaction read still sees a free agent, but by the time the
	// guarded update runs another transaction has claimed the row. Zero
	// rows affected means this claim lost and must roll back.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "players" WHERE "players"."id" =`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "position", "nfl_team", "rank", "team_id"}).
			AddRow(7, "Justin Jefferson", "WR", "MIN", nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "players" WHERE team_id =`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "players" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AssignToTeam(7, 1, roster.DefaultLimits())
	require.ErrorIs(t, err, roster.ErrPlayerUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_AssignToTeamGuardsByFreeAgency(t *testing.T) {
	db, mock := setupMockRepoDB(t)
	repo := NewPlayerRepository(db)

	// A player the read already shows as rostered never reaches the
	// update at all.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "players" WHERE "players"."id" =`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "position", "nfl_team", "rank", "team_id"}).
			AddRow(7, "Justin Jefferson", "WR", "MIN", nil, 3))
	mock.ExpectRollback()

	err := repo.AssignToTeam(7, 1, roster.DefaultLimits())
	require.ErrorIs(t, err, roster.ErrPlayerUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}
