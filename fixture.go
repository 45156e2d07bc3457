package footballdata

import (
	"context"
	"encoding/json"
	"time"

	"github.com/preston-bernstein/football-data-client/internal/gateway"
	"github.com/preston-bernstein/football-data-client/internal/timeutil"
)

// FixtureStatus mirrors the upstream match lifecycle states.
type FixtureStatus string

const (
	StatusScheduled FixtureStatus = "SCHEDULED"
	StatusTimed     FixtureStatus = "TIMED"
	StatusInPlay    FixtureStatus = "IN_PLAY"
	StatusFinished  FixtureStatus = "FINISHED"
	StatusPostponed FixtureStatus = "POSTPONED"
	StatusCanceled  FixtureStatus = "CANCELED"
)

// Result is the score of a played fixture.
type Result struct {
	GoalsHomeTeam int
	GoalsAwayTeam int
}

type resultPayload struct {
	GoalsHomeTeam *int `json:"goalsHomeTeam"`
	GoalsAwayTeam *int `json:"goalsAwayTeam"`
}

type fixturePayload struct {
	Date         string         `json:"date"`
	Status       FixtureStatus  `json:"status"`
	Matchday     int            `json:"matchday"`
	HomeTeamName string         `json:"homeTeamName"`
	AwayTeamName string         `json:"awayTeamName"`
	Result       *resultPayload `json:"result"`
}

// Fixture is a single match.
type Fixture struct {
	record
	data fixturePayload
}

func newFixture(gw getter, raw json.RawMessage) (*Fixture, error) {
	f := &Fixture{}
	rec, err := decodeRecord(gw, raw, &f.data)
	if err != nil {
		return nil, err
	}
	f.record = rec
	return f, nil
}

func (f *Fixture) Status() FixtureStatus { return f.data.Status }
func (f *Fixture) Matchday() int         { return f.data.Matchday }
func (f *Fixture) HomeTeamName() string  { return f.data.HomeTeamName }
func (f *Fixture) AwayTeamName() string  { return f.data.AwayTeamName }

// RawDate returns the kickoff timestamp exactly as the API sent it.
func (f *Fixture) RawDate() string { return f.data.Date }

// Date parses the kickoff timestamp.
func (f *Fixture) Date() (time.Time, error) {
	return timeutil.ParseTimestamp(f.data.Date)
}

// Result returns the score; ok is false until both goal counts are known.
func (f *Fixture) Result() (res Result, ok bool) {
	r := f.data.Result
	if r == nil || r.GoalsHomeTeam == nil || r.GoalsAwayTeam == nil {
		return Result{}, false
	}
	return Result{GoalsHomeTeam: *r.GoalsHomeTeam, GoalsAwayTeam: *r.GoalsAwayTeam}, true
}

// HomeTeam fetches the home side.
func (f *Fixture) HomeTeam(ctx context.Context) (*Team, error) {
	return f.linkedTeam(ctx, "homeTeam")
}

// AwayTeam fetches the away side.
func (f *Fixture) AwayTeam(ctx context.Context) (*Team, error) {
	return f.linkedTeam(ctx, "awayTeam")
}

// Season fetches the season the fixture belongs to.
func (f *Fixture) Season(ctx context.Context) (*Season, error) {
	id, err := f.relationID("soccerseason")
	if err != nil {
		return nil, err
	}
	return seasonResource(f.gw).get(ctx, id)
}

func (f *Fixture) linkedTeam(ctx context.Context, rel string) (*Team, error) {
	id, err := f.relationID(rel)
	if err != nil {
		return nil, err
	}
	return teamResource(f.gw).get(ctx, id)
}

// FixtureService fetches fixtures.
type FixtureService struct {
	res resource[*Fixture]
}

// FixtureFilter narrows a fixture listing.
type FixtureFilter struct {
	TimeFrame *Timeframe
}

// Get fetches one fixture by id.
func (s *FixtureService) Get(ctx context.Context, id int) (*Fixture, error) {
	return s.res.get(ctx, id)
}

// All fetches the unfiltered fixture collection.
func (s *FixtureService) All(ctx context.Context) ([]*Fixture, error) {
	return s.res.all(ctx, nil)
}

// List fetches the fixtures matching f.
func (s *FixtureService) List(ctx context.Context, f FixtureFilter) ([]*Fixture, error) {
	return s.res.all(ctx, gateway.Params{"timeFrame": f.TimeFrame})
}

// FromRecords wraps already-fetched fixture records without any network call.
func (s *FixtureService) FromRecords(records []json.RawMessage) ([]*Fixture, error) {
	return s.res.fromRecords(records)
}
