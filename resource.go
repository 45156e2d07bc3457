package footballdata

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/football-data-client/internal/gateway"
)

const (
	resSeasons  = "soccerseasons"
	resTeams    = "teams"
	resFixtures = "fixtures"
)

// resource binds one entity variant to the gateway: where it lives, how
// collection responses name their list, and how a record becomes an entity.
// An empty name marks a variant that cannot be fetched on its own.
type resource[T any] struct {
	gw      getter
	name    string
	listKey string
	itemKey string
	wrap    func(getter, json.RawMessage) (T, error)
}

// get fetches a single entity by id.
func (r resource[T]) get(ctx context.Context, id int) (T, error) {
	var zero T
	if r.name == "" {
		return zero, ErrUnsupportedOperation
	}
	if id <= 0 {
		return zero, ErrInvalidID
	}
	body, err := r.gw.Get(ctx, gateway.Request{Resource: r.name, ID: id})
	if err != nil {
		return zero, err
	}
	return r.wrap(r.gw, unwrapItem(body, r.itemKey))
}

// all fetches the unfiltered collection.
func (r resource[T]) all(ctx context.Context, query gateway.Params) ([]T, error) {
	if r.name == "" {
		return nil, ErrUnsupportedOperation
	}
	return r.fetch(ctx, gateway.Request{Resource: r.name, Query: query})
}

// fetch issues one request and wraps every record in the response.
func (r resource[T]) fetch(ctx context.Context, req gateway.Request) ([]T, error) {
	body, err := r.gw.Get(ctx, req)
	if err != nil {
		return nil, err
	}
	records, err := decodeList(body, r.listKey)
	if err != nil {
		return nil, err
	}
	return r.fromRecords(records)
}

// fromRecords wraps records in input order without touching the network.
func (r resource[T]) fromRecords(records []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, raw := range records {
		item, err := r.wrap(r.gw, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func seasonResource(gw getter) resource[*Season] {
	return resource[*Season]{gw: gw, name: resSeasons, listKey: "soccerseasons", wrap: newSeason}
}

func teamResource(gw getter) resource[*Team] {
	return resource[*Team]{gw: gw, name: resTeams, listKey: "teams", wrap: newTeam}
}

func fixtureResource(gw getter) resource[*Fixture] {
	return resource[*Fixture]{gw: gw, name: resFixtures, listKey: "fixtures", itemKey: "fixture", wrap: newFixture}
}

func standingResource(gw getter) resource[*Standing] {
	return resource[*Standing]{gw: gw, listKey: "standing", wrap: newStanding}
}

func playerResource(gw getter) resource[*Player] {
	return resource[*Player]{gw: gw, listKey: "players", wrap: newPlayer}
}
