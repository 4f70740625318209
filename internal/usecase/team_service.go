package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const (
	defaultScoringWorkers    = 4
	parallelScoringThreshold = 8
)

// DraftView is the draft plus everything a team builder screen derives
// from it.
type DraftView struct {
	Draft           fantasy.Draft
	Match           *match.Match
	ProjectedPoints float64
	SlotsLeft       int
	RoleCounts      map[player.Role]int
	SaveReady       bool
	SaveBlocker     string
}

type TeamSummary struct {
	ID              int64
	MatchID         string
	Match           *match.Match
	CaptainName     string
	ViceCaptainName string
	PlayerCount     int
	TotalPoints     float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TeamDetail struct {
	Team        fantasy.SavedTeam
	Match       *match.Match
	Groups      []fantasy.RoleGroup
	TotalPoints float64
}

type TeamService struct {
	playerRepo     player.Repository
	matchRepo      match.Repository
	workspaces     fantasy.WorkspaceRepository
	rules          fantasy.Rules
	logger         *logging.Logger
	scoringWorkers int
}

func NewTeamService(
	playerRepo player.Repository,
	matchRepo match.Repository,
	workspaces fantasy.WorkspaceRepository,
	rules fantasy.Rules,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		workspaces:     workspaces,
		rules:          rules,
		logger:         logger.Named("usecase.team"),
		scoringWorkers: defaultScoringWorkers,
	}
}

func (s *TeamService) GetDraft(ctx context.Context, userID string) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetDraft")
	defer span.End()

	return s.withDraft(ctx, userID, func(*fantasy.Store) error { return nil })
}

// StartDraft clears the draft and pins it to a match.
func (s *TeamService) StartDraft(ctx context.Context, userID, matchID string) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.StartDraft")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return DraftView{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := s.ensureMatch(ctx, matchID); err != nil {
		return DraftView{}, err
	}

	return s.withDraft(ctx, userID, func(store *fantasy.Store) error {
		store.StartDraft(matchID)
		return nil
	})
}

func (s *TeamService) ResetDraft(ctx context.Context, userID string) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ResetDraft")
	defer span.End()

	return s.withDraft(ctx, userID, func(store *fantasy.Store) error {
		store.ResetDraft()
		return nil
	})
}

// AddPlayer selects a catalog player. Selecting an already selected player
// succeeds without changing the draft.
func (s *TeamService) AddPlayer(ctx context.Context, userID string, playerID int64) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddPlayer")
	defer span.End()

	p, err := s.lookupPlayer(ctx, playerID)
	if err != nil {
		return DraftView{}, err
	}

	return s.withDraft(ctx, userID, func(store *fantasy.Store) error {
		return s.addToDraft(store, p)
	})
}

func (s *TeamService) RemovePlayer(ctx context.Context, userID string, playerID int64) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RemovePlayer")
	defer span.End()

	return s.withDraft(ctx, userID, func(store *fantasy.Store) error {
		store.RemovePlayer(playerID)
		return nil
	})
}

// TogglePlayer removes a selected player or adds an unselected one.
func (s *TeamService) TogglePlayer(ctx context.Context, userID string, playerID int64) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.TogglePlayer")
	defer span.End()

	p, err := s.lookupPlayer(ctx, playerID)
	if err != nil {
		return DraftView{}, err
	}

	return s.withDraft(ctx, userID, func(store *fantasy.Store) error {
		if store.Draft().Has(p.ID) {
			store.RemovePlayer(p.ID)
			return nil
		}
		return s.addToDraft(store, p)
	})
}

func (s *TeamService) SetCaptain(ctx context.Context, userID string, playerID int64) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SetCaptain")
	defer span.End()

	return s.withDraft(ctx, userID, func(store *fantasy.Store) error {
		if !store.Draft().Has(playerID) {
			return fmt.Errorf("%w: captain=%d", fantasy.ErrPlayerNotSelected, playerID)
		}
		store.SetCaptain(playerID)
		return nil
	})
}

func (s *TeamService) SetViceCaptain(ctx context.Context, userID string, playerID int64) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SetViceCaptain")
	defer span.End()

	return s.withDraft(ctx, userID, func(store *fantasy.Store) error {
		if !store.Draft().Has(playerID) {
			return fmt.Errorf("%w: vice_captain=%d", fantasy.ErrPlayerNotSelected, playerID)
		}
		store.SetViceCaptain(playerID)
		return nil
	})
}

// SaveDraft validates the draft and stores it, replacing the team it was
// loaded from when that team still exists.
func (s *TeamService) SaveDraft(ctx context.Context, userID string) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SaveDraft")
	defer span.End()

	var (
		saved   fantasy.SavedTeam
		editing bool
	)
	userID, err := s.inWorkspace(ctx, userID, func(store *fantasy.Store) error {
		draft := store.Draft()
		if err := s.rules.ValidateForSave(draft); err != nil {
			return err
		}
		editing = draft.IsEditing()
		saved = store.SaveDraft()
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return TeamDetail{}, fmt.Errorf("save draft: %w", err)
	}

	s.logger.InfoContext(ctx, "team saved",
		"user_id", userID,
		"team_id", saved.ID,
		"match_id", saved.MatchID,
		"player_count", len(saved.Players),
		"edited", editing,
	)

	return s.teamDetail(ctx, saved), nil
}

func (s *TeamService) ListTeams(ctx context.Context, userID string) ([]TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	var teams []fantasy.SavedTeam
	_, err := s.inWorkspace(ctx, userID, func(store *fantasy.Store) error {
		teams = store.SavedTeams()
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list teams: %w", err)
	}

	matches := s.matchIndex(ctx)
	summaries, err := s.summarize(teams, matches)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("score teams: %w", err)
	}
	return summaries, nil
}

func (s *TeamService) GetTeam(ctx context.Context, userID string, teamID int64) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	var (
		team   fantasy.SavedTeam
		exists bool
	)
	_, err := s.inWorkspace(ctx, userID, func(store *fantasy.Store) error {
		team, exists = store.SavedTeam(teamID)
		return nil
	})
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamDetail{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return s.teamDetail(ctx, team), nil
}

// EditTeam loads a saved team into the draft.
func (s *TeamService) EditTeam(ctx context.Context, userID string, teamID int64) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.EditTeam")
	defer span.End()

	return s.withDraft(ctx, userID, func(store *fantasy.Store) error {
		if _, ok := store.SavedTeam(teamID); !ok {
			return fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
		}
		store.LoadForEditing(teamID)
		return nil
	})
}

// DeleteTeam removes a saved team. A draft editing that team keeps its
// content and is saved as a new team later.
func (s *TeamService) DeleteTeam(ctx context.Context, userID string, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	userID, err := s.inWorkspace(ctx, userID, func(store *fantasy.Store) error {
		if _, ok := store.SavedTeam(teamID); !ok {
			return fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
		}
		store.DeleteTeam(teamID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "user_id", userID, "team_id", teamID)
	return nil
}

func (s *TeamService) withDraft(ctx context.Context, userID string, fn func(*fantasy.Store) error) (DraftView, error) {
	var draft fantasy.Draft
	_, err := s.inWorkspace(ctx, userID, func(store *fantasy.Store) error {
		if err := fn(store); err != nil {
			return err
		}
		draft = store.Draft()
		return nil
	})
	if err != nil {
		return DraftView{}, err
	}

	return s.draftView(ctx, draft), nil
}

// inWorkspace runs fn against the caller's store and translates workspace
// failures into usecase errors. It returns the cleaned user id.
func (s *TeamService) inWorkspace(ctx context.Context, userID string, fn func(*fantasy.Store) error) (string, error) {
	userID, err := cleanUserID(userID)
	if err != nil {
		return "", err
	}

	err = s.workspaces.WithStore(ctx, userID, fn)
	switch {
	case err == nil:
		return userID, nil
	case errors.Is(err, fantasy.ErrOwnerRequired):
		return userID, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, context.DeadlineExceeded):
		return userID, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	default:
		return userID, err
	}
}

func (s *TeamService) addToDraft(store *fantasy.Store, p player.Player) error {
	draft := store.Draft()
	if draft.Has(p.ID) {
		return nil
	}
	if err := s.rules.CanAdd(draft); err != nil {
		return err
	}
	store.AddPlayer(p)
	return nil
}

func (s *TeamService) lookupPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return p, nil
}

func (s *TeamService) ensureMatch(ctx context.Context, matchID string) error {
	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return nil
}

// findMatch is best effort; views render without match details when the
// catalog is unavailable.
func (s *TeamService) findMatch(ctx context.Context, matchID string) *match.Match {
	if matchID == "" {
		return nil
	}
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		s.logger.WarnContext(ctx, "match lookup failed", "match_id", matchID, "error", err)
		return nil
	}
	if !exists {
		return nil
	}
	return &m
}

func (s *TeamService) matchIndex(ctx context.Context) map[string]match.Match {
	items, err := s.matchRepo.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "match list failed", "error", err)
		return nil
	}
	out := make(map[string]match.Match, len(items))
	for _, m := range items {
		out[m.ID] = m
	}
	return out
}

func (s *TeamService) draftView(ctx context.Context, d fantasy.Draft) DraftView {
	view := DraftView{
		Draft:           d,
		Match:           s.findMatch(ctx, d.MatchID),
		ProjectedPoints: fantasy.TotalPoints(d.Lineup),
		SlotsLeft:       d.SlotsLeft(),
		RoleCounts:      fantasy.CountByRole(d.Players),
	}
	if err := s.rules.ValidateForSave(d); err != nil {
		view.SaveBlocker = saveBlockerMessage(err)
	} else {
		view.SaveReady = true
	}
	return view
}

func (s *TeamService) teamDetail(ctx context.Context, team fantasy.SavedTeam) TeamDetail {
	return TeamDetail{
		Team:        team,
		Match:       s.findMatch(ctx, team.MatchID),
		Groups:      fantasy.GroupByRole(team.Players),
		TotalPoints: fantasy.TotalPoints(team.Lineup),
	}
}

// summarize scores teams in order; large collections are scored on a
// worker pool.
func (s *TeamService) summarize(teams []fantasy.SavedTeam, matches map[string]match.Match) ([]TeamSummary, error) {
	out := make([]TeamSummary, len(teams))
	if len(teams) < parallelScoringThreshold {
		for i := range teams {
			out[i] = summarizeTeam(teams[i], matches)
		}
		return out, nil
	}

	pool, err := ants.NewPool(s.scoringWorkers)
	if err != nil {
		return nil, fmt.Errorf("create scoring pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := range teams {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = summarizeTeam(teams[i], matches)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit scoring task: %w", err)
		}
	}
	workers.Wait()

	return out, nil
}

func summarizeTeam(team fantasy.SavedTeam, matches map[string]match.Match) TeamSummary {
	summary := TeamSummary{
		ID:          team.ID,
		MatchID:     team.MatchID,
		PlayerCount: len(team.Players),
		TotalPoints: fantasy.TotalPoints(team.Lineup),
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
	if m, ok := matches[team.MatchID]; ok {
		summary.Match = &m
	}
	if team.CaptainID != nil {
		if p, ok := team.Player(*team.CaptainID); ok {
			summary.CaptainName = p.Name
		}
	}
	if team.ViceCaptainID != nil {
		if p, ok := team.Player(*team.ViceCaptainID); ok {
			summary.ViceCaptainName = p.Name
		}
	}
	return summary
}

var saveBlockers = []error{
	fantasy.ErrIncompleteTeam,
	fantasy.ErrTeamFull,
	fantasy.ErrCaptainRequired,
	fantasy.ErrSameCaptaincy,
	fantasy.ErrPlayerNotSelected,
}

func saveBlockerMessage(err error) string {
	for _, sentinel := range saveBlockers {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func cleanUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return userID, nil
}
