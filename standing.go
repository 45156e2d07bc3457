package footballdata

import (
	"context"
	"encoding/json"
)

type standingPayload struct {
	Position       int    `json:"position"`
	TeamName       string `json:"teamName"`
	PlayedGames    int    `json:"playedGames"`
	Points         int    `json:"points"`
	Goals          int    `json:"goals"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
}

// Standing is one row of a league table.
type Standing struct {
	record
	data standingPayload
}

func newStanding(gw getter, raw json.RawMessage) (*Standing, error) {
	s := &Standing{}
	rec, err := decodeRecord(gw, raw, &s.data)
	if err != nil {
		return nil, err
	}
	s.record = rec
	return s, nil
}

func (s *Standing) Position() int       { return s.data.Position }
func (s *Standing) TeamName() string    { return s.data.TeamName }
func (s *Standing) PlayedGames() int    { return s.data.PlayedGames }
func (s *Standing) Points() int         { return s.data.Points }
func (s *Standing) Goals() int          { return s.data.Goals }
func (s *Standing) GoalsAgainst() int   { return s.data.GoalsAgainst }
func (s *Standing) GoalDifference() int { return s.data.GoalDifference }

// Team fetches the team this row belongs to.
func (s *Standing) Team(ctx context.Context) (*Team, error) {
	id, err := s.relationID("team")
	if err != nil {
		return nil, err
	}
	return teamResource(s.gw).get(ctx, id)
}

// StandingService wraps league table rows. Standings only come from
// Season.LeagueTable, so Get and All are unsupported.
type StandingService struct {
	res resource[*Standing]
}

func (s *StandingService) Get(ctx context.Context, id int) (*Standing, error) {
	return s.res.get(ctx, id)
}

func (s *StandingService) All(ctx context.Context) ([]*Standing, error) {
	return s.res.all(ctx, nil)
}

// FromRecords wraps already-fetched standing records without any network call.
func (s *StandingService) FromRecords(records []json.RawMessage) ([]*Standing, error) {
	return s.res.fromRecords(records)
}
