package footballdata

import (
	"context"
	"encoding/json"
	"time"

	"github.com/preston-bernstein/football-data-client/internal/gateway"
	"github.com/preston-bernstein/football-data-client/internal/timeutil"
)

type seasonPayload struct {
	Caption       string  `json:"caption"`
	League        string  `json:"league"`
	Year          flexInt `json:"year"`
	NumberOfTeams int     `json:"numberOfTeams"`
	NumberOfGames int     `json:"numberOfGames"`
	LastUpdated   string  `json:"lastUpdated"`
}

// Season is one competition season ("soccerseason" upstream).
type Season struct {
	record
	data seasonPayload
}

func newSeason(gw getter, raw json.RawMessage) (*Season, error) {
	s := &Season{}
	rec, err := decodeRecord(gw, raw, &s.data)
	if err != nil {
		return nil, err
	}
	s.record = rec
	return s, nil
}

func (s *Season) Caption() string    { return s.data.Caption }
func (s *Season) League() string     { return s.data.League }
func (s *Season) Year() int          { return int(s.data.Year) }
func (s *Season) NumberOfTeams() int { return s.data.NumberOfTeams }
func (s *Season) NumberOfGames() int { return s.data.NumberOfGames }

// LastUpdated parses the season's last update timestamp.
func (s *Season) LastUpdated() (time.Time, error) {
	return timeutil.ParseTimestamp(s.data.LastUpdated)
}

// Teams fetches every team taking part in the season.
func (s *Season) Teams(ctx context.Context) ([]*Team, error) {
	id, err := s.ID()
	if err != nil {
		return nil, err
	}
	return teamResource(s.gw).fetch(ctx, gateway.Request{Resource: resSeasons, ID: id, Sub: "teams"})
}

// LeagueTableFilter narrows a league table request.
type LeagueTableFilter struct {
	Matchday *int
}

// LeagueTable fetches the standings, optionally as of a given matchday.
func (s *Season) LeagueTable(ctx context.Context, f LeagueTableFilter) ([]*Standing, error) {
	id, err := s.ID()
	if err != nil {
		return nil, err
	}
	return standingResource(s.gw).fetch(ctx, gateway.Request{
		Resource: resSeasons,
		ID:       id,
		Sub:      "leagueTable",
		Query:    gateway.Params{"matchday": f.Matchday},
	})
}

// SeasonFixtureFilter narrows a season fixtures request.
type SeasonFixtureFilter struct {
	Matchday  *int
	TimeFrame *Timeframe
}

// Fixtures fetches the season's fixtures.
func (s *Season) Fixtures(ctx context.Context, f SeasonFixtureFilter) ([]*Fixture, error) {
	id, err := s.ID()
	if err != nil {
		return nil, err
	}
	return fixtureResource(s.gw).fetch(ctx, gateway.Request{
		Resource: resSeasons,
		ID:       id,
		Sub:      "fixtures",
		Query:    gateway.Params{"matchday": f.Matchday, "timeFrame": f.TimeFrame},
	})
}

// SeasonService fetches seasons.
type SeasonService struct {
	res resource[*Season]
}

// SeasonFilter narrows a season listing to one starting year.
type SeasonFilter struct {
	Season *int
}

// Get fetches one season by id.
func (s *SeasonService) Get(ctx context.Context, id int) (*Season, error) {
	return s.res.get(ctx, id)
}

// All fetches every season the API lists.
func (s *SeasonService) All(ctx context.Context) ([]*Season, error) {
	return s.res.all(ctx, nil)
}

// List fetches the seasons matching f.
func (s *SeasonService) List(ctx context.Context, f SeasonFilter) ([]*Season, error) {
	return s.res.all(ctx, gateway.Params{"season": f.Season})
}

// FromRecords wraps already-fetched season records without any network call.
func (s *SeasonService) FromRecords(records []json.RawMessage) ([]*Season, error) {
	return s.res.fromRecords(records)
}
