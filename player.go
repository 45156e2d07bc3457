package footballdata

import (
	"context"
	"encoding/json"
)

type playerPayload struct {
	ID            *int    `json:"id"`
	Name          string  `json:"name"`
	Nationality   string  `json:"nationality"`
	Position      string  `json:"position"`
	DateOfBirth   string  `json:"dateOfBirth"`
	ContractUntil string  `json:"contractUntil"`
	JerseyNumber  *int    `json:"jerseyNumber"`
	MarketValue   *string `json:"marketValue"`
}

// Player is a squad member. Players carry no relations.
type Player struct {
	record
	data playerPayload
}

func newPlayer(gw getter, raw json.RawMessage) (*Player, error) {
	p := &Player{}
	rec, err := decodeRecord(gw, raw, &p.data)
	if err != nil {
		return nil, err
	}
	p.record = rec
	return p, nil
}

// ID prefers the record's own id field and falls back to its self link.
func (p *Player) ID() (int, error) {
	if p.data.ID != nil {
		return *p.data.ID, nil
	}
	return p.record.ID()
}

func (p *Player) Name() string          { return p.data.Name }
func (p *Player) Nationality() string   { return p.data.Nationality }
func (p *Player) Position() string      { return p.data.Position }
func (p *Player) DateOfBirth() string   { return p.data.DateOfBirth }
func (p *Player) ContractUntil() string { return p.data.ContractUntil }

// JerseyNumber returns the shirt number; ok is false when none is assigned.
func (p *Player) JerseyNumber() (number int, ok bool) {
	if p.data.JerseyNumber == nil {
		return 0, false
	}
	return *p.data.JerseyNumber, true
}

// MarketValue returns the formatted market value; ok is false when unknown.
func (p *Player) MarketValue() (value string, ok bool) {
	if p.data.MarketValue == nil {
		return "", false
	}
	return *p.data.MarketValue, true
}

// PlayerService wraps squad records. The API only lists players per team
// (Team.Players), so Get and All are unsupported.
type PlayerService struct {
	res resource[*Player]
}

func (s *PlayerService) Get(ctx context.Context, id int) (*Player, error) {
	return s.res.get(ctx, id)
}

func (s *PlayerService) All(ctx context.Context) ([]*Player, error) {
	return s.res.all(ctx, nil)
}

// FromRecords wraps already-fetched player records without any network call.
func (s *PlayerService) FromRecords(records []json.RawMessage) ([]*Player, error) {
	return s.res.fromRecords(records)
}
