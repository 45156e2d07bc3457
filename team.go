package footballdata

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/football-data-client/internal/gateway"
)

type teamPayload struct {
	Name             string  `json:"name"`
	Code             string  `json:"code"`
	ShortName        string  `json:"shortName"`
	SquadMarketValue *string `json:"squadMarketValue"`
	CrestURL         string  `json:"crestUrl"`
}

// Team is a club.
type Team struct {
	record
	data teamPayload
}

func newTeam(gw getter, raw json.RawMessage) (*Team, error) {
	t := &Team{}
	rec, err := decodeRecord(gw, raw, &t.data)
	if err != nil {
		return nil, err
	}
	t.record = rec
	return t, nil
}

func (t *Team) Name() string      { return t.data.Name }
func (t *Team) Code() string      { return t.data.Code }
func (t *Team) ShortName() string { return t.data.ShortName }
func (t *Team) CrestURL() string  { return t.data.CrestURL }

// SquadMarketValue returns the formatted squad value; ok is false when the API
// reports none.
func (t *Team) SquadMarketValue() (value string, ok bool) {
	if t.data.SquadMarketValue == nil {
		return "", false
	}
	return *t.data.SquadMarketValue, true
}

// TeamFixtureFilter narrows a team fixtures request.
type TeamFixtureFilter struct {
	Season    *int
	TimeFrame *Timeframe
	Venue     Venue
}

// Fixtures fetches the team's fixtures.
func (t *Team) Fixtures(ctx context.Context, f TeamFixtureFilter) ([]*Fixture, error) {
	id, err := t.ID()
	if err != nil {
		return nil, err
	}
	return fixtureResource(t.gw).fetch(ctx, gateway.Request{
		Resource: resTeams,
		ID:       id,
		Sub:      "fixtures",
		Query:    gateway.Params{"season": f.Season, "timeFrame": f.TimeFrame, "venue": f.Venue},
	})
}

// Players fetches the team's squad.
func (t *Team) Players(ctx context.Context) ([]*Player, error) {
	id, err := t.ID()
	if err != nil {
		return nil, err
	}
	return playerResource(t.gw).fetch(ctx, gateway.Request{Resource: resTeams, ID: id, Sub: "players"})
}

// TeamService fetches teams.
type TeamService struct {
	res resource[*Team]
}

// Get fetches one team by id.
func (s *TeamService) Get(ctx context.Context, id int) (*Team, error) {
	return s.res.get(ctx, id)
}

// All fetches the unfiltered team collection.
func (s *TeamService) All(ctx context.Context) ([]*Team, error) {
	return s.res.all(ctx, nil)
}

// FromRecords wraps already-fetched team records without any network call.
func (s *TeamService) FromRecords(records []json.RawMessage) ([]*Team, error) {
	return s.res.fromRecords(records)
}
