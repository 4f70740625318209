package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

var teamTestNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func newTeamServiceForTest(t *testing.T) *TeamService {
	t.Helper()

	workspaces := memory.NewWorkspaceRepository(id.NewCounter(0), func() time.Time { return teamTestNow })
	return NewTeamService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewMatchRepository(memory.SeedMatches()),
		workspaces,
		fantasy.DefaultRules(),
		logging.NewNop(),
	)
}

// draftEleven selects catalog players 1..11 and names Hardik Pandya captain
// and Virat Kohli vice-captain.
func draftEleven(t *testing.T, svc *TeamService, userID string) DraftView {
	t.Helper()

	ctx := t.Context()
	for playerID := int64(1); playerID <= 11; playerID++ {
		if _, err := svc.AddPlayer(ctx, userID, playerID); err != nil {
			t.Fatalf("add player %d: %v", playerID, err)
		}
	}
	if _, err := svc.SetCaptain(ctx, userID, 8); err != nil {
		t.Fatalf("set captain: %v", err)
	}
	view, err := svc.SetViceCaptain(ctx, userID, 1)
	if err != nil {
		t.Fatalf("set vice captain: %v", err)
	}
	return view
}

func TestTeamService_SaveDraft_FullFlow(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	if _, err := svc.StartDraft(ctx, "user-1", "1"); err != nil {
		t.Fatalf("start draft: %v", err)
	}
	view := draftEleven(t, svc, "user-1")
	if !view.SaveReady {
		t.Fatalf("expected draft to be save ready, blocker=%q", view.SaveBlocker)
	}
	if view.SlotsLeft != 0 {
		t.Fatalf("unexpected slots left: %d", view.SlotsLeft)
	}
	require.InDelta(t, 1190.0, view.ProjectedPoints, 0.0001)
	require.NotNil(t, view.Match)
	require.Equal(t, "IND", view.Match.TeamAShort)

	detail, err := svc.SaveDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("save draft: %v", err)
	}
	if detail.Team.ID != 1 {
		t.Fatalf("unexpected team id: %d", detail.Team.ID)
	}
	require.Equal(t, "1", detail.Team.MatchID)
	require.InDelta(t, 1190.0, detail.TotalPoints, 0.0001)
	require.Len(t, detail.Groups, 4)
	require.Equal(t, player.RoleWicketKeeper, detail.Groups[0].Role)

	after, err := svc.GetDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	if len(after.Draft.Players) != 0 || after.Draft.CaptainID != nil || after.Draft.MatchID != "" {
		t.Fatalf("expected draft reset after save, got %+v", after.Draft)
	}

	teams, err := svc.ListTeams(ctx, "user-1")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	require.Len(t, teams, 1)
	require.Equal(t, "Hardik Pandya", teams[0].CaptainName)
	require.Equal(t, "Virat Kohli", teams[0].ViceCaptainName)
	require.Equal(t, 11, teams[0].PlayerCount)
	require.NotNil(t, teams[0].Match)
}

func TestTeamService_AddPlayer(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	if _, err := svc.AddPlayer(ctx, "user-1", 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
	if _, err := svc.AddPlayer(ctx, "user-1", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero id, got %v", err)
	}

	if _, err := svc.AddPlayer(ctx, "user-1", 3); err != nil {
		t.Fatalf("add player: %v", err)
	}
	view, err := svc.AddPlayer(ctx, "user-1", 3)
	if err != nil {
		t.Fatalf("re-add player: %v", err)
	}
	require.Len(t, view.Draft.Players, 1)
	require.Equal(t, 1, view.RoleCounts[player.RoleBatsman])
	require.Equal(t, fantasy.ErrIncompleteTeam.Error(), view.SaveBlocker)
}

func TestTeamService_AddPlayer_TeamFull(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	draftEleven(t, svc, "user-1")

	_, err := svc.AddPlayer(ctx, "user-1", 12)
	if !errors.Is(err, fantasy.ErrTeamFull) {
		t.Fatalf("expected ErrTeamFull, got %v", err)
	}

	view, err := svc.GetDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	require.Len(t, view.Draft.Players, 11)
	require.False(t, view.Draft.Has(12))
}

func TestTeamService_TogglePlayer(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	view, err := svc.TogglePlayer(ctx, "user-1", 5)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	require.True(t, view.Draft.Has(5))

	if _, err := svc.SetCaptain(ctx, "user-1", 5); err != nil {
		t.Fatalf("set captain: %v", err)
	}

	view, err = svc.TogglePlayer(ctx, "user-1", 5)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	require.False(t, view.Draft.Has(5))
	require.Nil(t, view.Draft.CaptainID)
}

func TestTeamService_Captaincy(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	if _, err := svc.SetCaptain(ctx, "user-1", 4); !errors.Is(err, fantasy.ErrPlayerNotSelected) {
		t.Fatalf("expected ErrPlayerNotSelected, got %v", err)
	}

	for _, playerID := range []int64{2, 3} {
		if _, err := svc.AddPlayer(ctx, "user-1", playerID); err != nil {
			t.Fatalf("add player %d: %v", playerID, err)
		}
	}
	if _, err := svc.SetCaptain(ctx, "user-1", 3); err != nil {
		t.Fatalf("set captain: %v", err)
	}

	view, err := svc.SetViceCaptain(ctx, "user-1", 3)
	if err != nil {
		t.Fatalf("set vice captain: %v", err)
	}
	require.Nil(t, view.Draft.CaptainID)
	require.NotNil(t, view.Draft.ViceCaptainID)
	require.Equal(t, int64(3), *view.Draft.ViceCaptainID)

	view, err = svc.RemovePlayer(ctx, "user-1", 3)
	if err != nil {
		t.Fatalf("remove player: %v", err)
	}
	require.Nil(t, view.Draft.ViceCaptainID)
}

func TestTeamService_SaveDraft_Rejections(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	if _, err := svc.SaveDraft(ctx, "user-1"); !errors.Is(err, fantasy.ErrIncompleteTeam) {
		t.Fatalf("expected ErrIncompleteTeam, got %v", err)
	}

	for playerID := int64(1); playerID <= 11; playerID++ {
		if _, err := svc.AddPlayer(ctx, "user-1", playerID); err != nil {
			t.Fatalf("add player %d: %v", playerID, err)
		}
	}
	if _, err := svc.SetCaptain(ctx, "user-1", 1); err != nil {
		t.Fatalf("set captain: %v", err)
	}

	_, err := svc.SaveDraft(ctx, "user-1")
	if !errors.Is(err, fantasy.ErrCaptainRequired) {
		t.Fatalf("expected ErrCaptainRequired, got %v", err)
	}

	teams, err := svc.ListTeams(ctx, "user-1")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	require.Empty(t, teams)

	view, err := svc.GetDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	require.Len(t, view.Draft.Players, 11)
	require.Equal(t, fantasy.ErrCaptainRequired.Error(), view.SaveBlocker)
}

func TestTeamService_EditTeam_OverwritesInPlace(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	draftEleven(t, svc, "user-1")
	first, err := svc.SaveDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("save draft: %v", err)
	}

	view, err := svc.EditTeam(ctx, "user-1", first.Team.ID)
	if err != nil {
		t.Fatalf("edit team: %v", err)
	}
	require.True(t, view.Draft.IsEditing())
	require.Len(t, view.Draft.Players, 11)

	if _, err := svc.RemovePlayer(ctx, "user-1", 2); err != nil {
		t.Fatalf("remove player: %v", err)
	}
	if _, err := svc.AddPlayer(ctx, "user-1", 12); err != nil {
		t.Fatalf("add player: %v", err)
	}

	second, err := svc.SaveDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("re-save draft: %v", err)
	}
	require.Equal(t, first.Team.ID, second.Team.ID)
	require.True(t, second.Team.Has(12))

	teams, err := svc.ListTeams(ctx, "user-1")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	require.Len(t, teams, 1)

	if _, err := svc.EditTeam(ctx, "user-1", 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_DeleteTeam(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	draftEleven(t, svc, "user-1")
	saved, err := svc.SaveDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("save draft: %v", err)
	}

	if _, err := svc.EditTeam(ctx, "user-1", saved.Team.ID); err != nil {
		t.Fatalf("edit team: %v", err)
	}
	if err := svc.DeleteTeam(ctx, "user-1", saved.Team.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if err := svc.DeleteTeam(ctx, "user-1", saved.Team.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := svc.GetTeam(ctx, "user-1", saved.Team.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}

	view, err := svc.GetDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	require.Len(t, view.Draft.Players, 11)

	resaved, err := svc.SaveDraft(ctx, "user-1")
	if err != nil {
		t.Fatalf("save orphaned draft: %v", err)
	}
	require.NotEqual(t, saved.Team.ID, resaved.Team.ID)
}

func TestTeamService_IsolatesUsers(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	draftEleven(t, svc, "user-1")
	if _, err := svc.SaveDraft(ctx, "user-1"); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	teams, err := svc.ListTeams(ctx, "user-2")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	require.Empty(t, teams)

	if err := svc.DeleteTeam(ctx, "user-2", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound across users, got %v", err)
	}
	if _, err := svc.GetDraft(ctx, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank user, got %v", err)
	}
}

func TestTeamService_ListTeams_ScoresManyTeamsInOrder(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	const teamCount = parallelScoringThreshold + 4
	for i := 0; i < teamCount; i++ {
		draftEleven(t, svc, "user-1")
		if _, err := svc.SaveDraft(ctx, "user-1"); err != nil {
			t.Fatalf("save draft %d: %v", i, err)
		}
	}

	teams, err := svc.ListTeams(ctx, "user-1")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	require.Len(t, teams, teamCount)
	for i, summary := range teams {
		require.Equal(t, int64(i+1), summary.ID)
		require.InDelta(t, 1190.0, summary.TotalPoints, 0.0001)
	}
}

func TestTeamService_StartDraft(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx := t.Context()

	if _, err := svc.StartDraft(ctx, "user-1", "99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.StartDraft(ctx, "user-1", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := svc.AddPlayer(ctx, "user-1", 1); err != nil {
		t.Fatalf("add player: %v", err)
	}
	view, err := svc.StartDraft(ctx, "user-1", "2")
	if err != nil {
		t.Fatalf("start draft: %v", err)
	}
	require.Empty(t, view.Draft.Players)
	require.Equal(t, "2", view.Draft.MatchID)
	require.NotNil(t, view.Match)
	require.Equal(t, "Australia vs England", view.Match.Title())
}

func TestTeamService_AddPlayer_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	workspaces := memory.NewWorkspaceRepository(id.NewCounter(0), nil)

	svc := NewTeamService(playerRepo, matchRepo, workspaces, fantasy.DefaultRules(), logging.NewNop())
	repoErr := errors.New("catalog offline")

	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), int64(7)).
		Return(player.Player{}, false, repoErr).
		Once()

	_, err := svc.AddPlayer(ctx, "user-1", 7)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestTeamService_StartDraft_RendersWithoutMatchDetailsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	workspaces := memory.NewWorkspaceRepository(id.NewCounter(0), nil)

	svc := NewTeamService(playerRepo, matchRepo, workspaces, fantasy.DefaultRules(), logging.NewNop())

	matchRepo.
		On("GetByID", mock.Anything, "3").
		Return(match.Match{ID: "3", TeamA: "New Zealand", TeamB: "South Africa", TeamAShort: "NZ", TeamBShort: "SA"}, true, nil).
		Once()
	matchRepo.
		On("GetByID", mock.Anything, "3").
		Return(match.Match{}, false, errors.New("timeout")).
		Once()

	view, err := svc.StartDraft(ctx, "user-1", "3")
	if err != nil {
		t.Fatalf("start draft: %v", err)
	}
	require.Equal(t, "3", view.Draft.MatchID)
	require.Nil(t, view.Match)
}

type workspaceFunc func(ctx context.Context, ownerID string, fn func(*fantasy.Store) error) error

func (f workspaceFunc) WithStore(ctx context.Context, ownerID string, fn func(*fantasy.Store) error) error {
	return f(ctx, ownerID, fn)
}

func TestTeamService_TranslatesWorkspaceErrors(t *testing.T) {
	newService := func(err error) *TeamService {
		return NewTeamService(
			memory.NewPlayerRepository(memory.SeedPlayers()),
			memory.NewMatchRepository(memory.SeedMatches()),
			workspaceFunc(func(context.Context, string, func(*fantasy.Store) error) error { return err }),
			fantasy.DefaultRules(),
			logging.NewNop(),
		)
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "missing owner", err: fantasy.ErrOwnerRequired, want: ErrInvalidInput},
		{name: "deadline", err: fmt.Errorf("open workspace: %w", context.DeadlineExceeded), want: ErrDependencyUnavailable},
		{name: "cancelled", err: fmt.Errorf("open workspace: %w", context.Canceled), want: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.err)

			_, err := svc.GetDraft(context.Background(), "user-1")
			require.ErrorIs(t, err, tt.want)

			_, err = svc.SaveDraft(context.Background(), "user-1")
			require.ErrorIs(t, err, tt.want)

			require.ErrorIs(t, svc.DeleteTeam(context.Background(), "user-1", 1), tt.want)
		})
	}
}

func TestTeamService_CancelledRequestIsReported(t *testing.T) {
	svc := newTeamServiceForTest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ListTeams(ctx, "user-1")
	require.ErrorIs(t, err, context.Canceled)
}
