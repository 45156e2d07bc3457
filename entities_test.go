package footballdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/football-data-client/internal/teststubs"
	"github.com/preston-bernstein/football-data-client/internal/testutil"
)

func raws(records ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		out = append(out, json.RawMessage(r))
	}
	return out
}

func listJSON(key string, records ...string) string {
	return fmt.Sprintf(`{"count":%d,%q:[%s]}`, len(records), key, strings.Join(records, ","))
}

func TestFromRecordsPreservesOrderWithoutNetworkCalls(t *testing.T) {
	stub := &teststubs.StubGateway{}
	c := newClient(stub)

	teams, err := c.Teams.FromRecords(raws(testutil.TeamJSON(3), testutil.TeamJSON(1), testutil.TeamJSON(2)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(teams))
	}
	for i, want := range []int{3, 1, 2} {
		if id, _ := teams[i].ID(); id != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, id)
		}
	}
	if stub.Calls() != 0 {
		t.Fatalf("expected no gateway calls, got %d", stub.Calls())
	}
}

func TestFromRecordsFailsWholeBatchOnBadRecord(t *testing.T) {
	c := newClient(&teststubs.StubGateway{})

	_, err := c.Fixtures.FromRecords(raws(testutil.FixtureJSON(1, 2, 3, 4), `{"matchday":"x"`))

	var mErr *MalformedRecordError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
}

func TestFromRecordsEmpty(t *testing.T) {
	c := newClient(&teststubs.StubGateway{})
	seasons, err := c.Seasons.FromRecords(nil)
	if err != nil || len(seasons) != 0 {
		t.Fatalf("expected empty result, got %d %v", len(seasons), err)
	}
}

func TestFixtureHomeTeamFetchesLinkedTeamOnce(t *testing.T) {
	stub := &teststubs.StubGateway{Responses: map[string]string{
		"/teams/123": testutil.TeamJSON(123),
	}}
	c := newClient(stub)
	fixtures, err := c.Fixtures.FromRecords(raws(testutil.FixtureJSON(1, 123, 65, 398)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	home, err := fixtures[0].HomeTeam(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if home.Name() != "Team 123 FC" {
		t.Fatalf("unexpected team %s", home.Name())
	}
	if stub.Calls() != 1 || stub.CallsTo("/teams/123") != 1 {
		t.Fatalf("expected exactly one fetch for team 123, got %+v", stub.Requests())
	}
}

func TestRelationsAreNotCached(t *testing.T) {
	stub := &teststubs.StubGateway{Responses: map[string]string{
		"/teams/66":          testutil.TeamJSON(66),
		"/teams/65":          testutil.TeamJSON(65),
		"/soccerseasons/398": testutil.SeasonJSON(398),
	}}
	c := newClient(stub)
	fixtures, _ := c.Fixtures.FromRecords(raws(testutil.FixtureJSON(1, 66, 65, 398)))
	f := fixtures[0]
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.HomeTeam(ctx); err != nil {
			t.Fatalf("home team: %v", err)
		}
		if _, err := f.AwayTeam(ctx); err != nil {
			t.Fatalf("away team: %v", err)
		}
		if _, err := f.Season(ctx); err != nil {
			t.Fatalf("season: %v", err)
		}
	}

	if stub.CallsTo("/teams/66") != 2 || stub.CallsTo("/teams/65") != 2 || stub.CallsTo("/soccerseasons/398") != 2 {
		t.Fatalf("expected every access to re-fetch, got %+v", stub.Requests())
	}
}

func TestFixtureFields(t *testing.T) {
	c := newClient(&teststubs.StubGateway{})
	fixtures, err := c.Fixtures.FromRecords(raws(testutil.FixtureJSON(147075, 66, 65, 398)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	f := fixtures[0]

	if id, _ := f.ID(); id != 147075 {
		t.Fatalf("expected id 147075, got %d", id)
	}
	if f.Status() != StatusFinished || f.Matchday() != 36 {
		t.Fatalf("unexpected status/matchday %s %d", f.Status(), f.Matchday())
	}
	if f.HomeTeamName() != "Team 66 FC" || f.AwayTeamName() != "Team 65 FC" {
		t.Fatalf("unexpected team names %s %s", f.HomeTeamName(), f.AwayTeamName())
	}
	date, err := f.Date()
	if err != nil {
		t.Fatalf("expected date to parse, got %v", err)
	}
	if want := time.Date(2016, 5, 1, 14, 0, 0, 0, time.UTC); !date.Equal(want) {
		t.Fatalf("expected %s, got %s", want, date)
	}
	if f.RawDate() != "2016-05-01T14:00:00Z" {
		t.Fatalf("unexpected raw date %s", f.RawDate())
	}
	res, ok := f.Result()
	if !ok || res != (Result{GoalsHomeTeam: 2, GoalsAwayTeam: 1}) {
		t.Fatalf("expected 2-1 result, got %+v %v", res, ok)
	}
}

func TestFixtureResultAbsentUntilPlayed(t *testing.T) {
	c := newClient(&teststubs.StubGateway{})
	fixtures, err := c.Fixtures.FromRecords(raws(
		`{"status":"TIMED","result":{"goalsHomeTeam":null,"goalsAwayTeam":null}}`,
		`{"status":"SCHEDULED"}`,
	))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, f := range fixtures {
		if _, ok := f.Result(); ok {
			t.Fatalf("expected no result for %s fixture", f.Status())
		}
	}
}

func TestFixtureRelationWithoutLinkIsMalformed(t *testing.T) {
	stub := &teststubs.StubGateway{}
	c := newClient(stub)
	fixtures, _ := c.Fixtures.FromRecords(raws(`{"_links":{"self":{"href":"http://x/fixtures/1"}}}`))

	_, err := fixtures[0].AwayTeam(context.Background())
	var mErr *MalformedRecordError
	if !errors.As(err, &mErr) || mErr.Relation != "awayTeam" {
		t.Fatalf("expected MalformedRecordError for awayTeam, got %v", err)
	}
	if stub.Calls() != 0 {
		t.Fatalf("expected no fetch when the link is missing")
	}
}

func TestSeasonFieldsAndRelations(t *testing.T) {
	stub := &teststubs.StubGateway{Responses: map[string]string{
		"/soccerseasons/398/teams":       listJSON("teams", testutil.TeamJSON(66), testutil.TeamJSON(65)),
		"/soccerseasons/398/leagueTable": `{"leagueCaption":"Premier League 2015/16","matchday":10,"standing":[` + testutil.StandingJSON(1, 338) + `]}`,
		"/soccerseasons/398/fixtures":    listJSON("fixtures", testutil.FixtureJSON(1, 66, 65, 398)),
	}}
	c := newClient(stub)
	seasons, err := c.Seasons.FromRecords(raws(testutil.SeasonJSON(398)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	s := seasons[0]

	if s.Caption() != "Premier League 2015/16" || s.League() != "PL" || s.Year() != 2015 {
		t.Fatalf("unexpected season fields %s %s %d", s.Caption(), s.League(), s.Year())
	}
	if s.NumberOfTeams() != 20 || s.NumberOfGames() != 380 {
		t.Fatalf("unexpected counts %d %d", s.NumberOfTeams(), s.NumberOfGames())
	}
	if updated, err := s.LastUpdated(); err != nil || updated.Year() != 2016 {
		t.Fatalf("unexpected last updated %s %v", updated, err)
	}

	ctx := context.Background()
	teams, err := s.Teams(ctx)
	if err != nil || len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d %v", len(teams), err)
	}

	matchday := 10
	table, err := s.LeagueTable(ctx, LeagueTableFilter{Matchday: &matchday})
	if err != nil || len(table) != 1 {
		t.Fatalf("expected 1 standing, got %d %v", len(table), err)
	}

	tf := Past(7)
	fixtures, err := s.Fixtures(ctx, SeasonFixtureFilter{TimeFrame: &tf})
	if err != nil || len(fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d %v", len(fixtures), err)
	}

	reqs := stub.Requests()
	if len(reqs) != 3 {
		t.Fatalf("expected one call per relation, got %d", len(reqs))
	}
	if q := reqs[0].Query.Encode(); q != "" {
		t.Fatalf("expected no query for teams, got %q", q)
	}
	if q := reqs[1].Query.Encode(); q != "matchday=10" {
		t.Fatalf("expected matchday query, got %q", q)
	}
	if q := reqs[2].Query.Encode(); q != "timeFrame=p7" {
		t.Fatalf("expected timeFrame query without nil matchday, got %q", q)
	}
}

func TestSeasonRelationWithoutSelfLinkMakesNoCall(t *testing.T) {
	stub := &teststubs.StubGateway{}
	c := newClient(stub)
	seasons, _ := c.Seasons.FromRecords(raws(`{"caption":"orphan"}`))

	_, err := seasons[0].Teams(context.Background())
	var mErr *MalformedRecordError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if stub.Calls() != 0 {
		t.Fatalf("expected no calls, got %d", stub.Calls())
	}
}

func TestTeamFieldsAndRelations(t *testing.T) {
	stub := &teststubs.StubGateway{Responses: map[string]string{
		"/teams/66/fixtures": `{"season":2015,"count":1,"fixtures":[` + testutil.FixtureJSON(1, 66, 65, 398) + `]}`,
		"/teams/66/players":  listJSON("players", testutil.PlayerJSON(1, "David de Gea"), testutil.PlayerJSON(2, "Juan Mata")),
	}}
	c := newClient(stub)
	teams, err := c.Teams.FromRecords(raws(testutil.TeamJSON(66)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	team := teams[0]

	if team.Name() != "Team 66 FC" || team.Code() != "T66" || team.ShortName() != "Team 66" {
		t.Fatalf("unexpected team fields")
	}
	if !strings.HasSuffix(team.CrestURL(), "crest-66.svg") {
		t.Fatalf("unexpected crest url %s", team.CrestURL())
	}
	if v, ok := team.SquadMarketValue(); !ok || v != "377,250,000 €" {
		t.Fatalf("unexpected squad value %q %v", v, ok)
	}

	ctx := context.Background()
	season := 2015
	tf := Next(30)
	fixtures, err := team.Fixtures(ctx, TeamFixtureFilter{Season: &season, TimeFrame: &tf, Venue: VenueHome})
	if err != nil || len(fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d %v", len(fixtures), err)
	}
	players, err := team.Players(ctx)
	if err != nil || len(players) != 2 {
		t.Fatalf("expected 2 players, got %d %v", len(players), err)
	}
	if players[1].Name() != "Juan Mata" {
		t.Fatalf("expected players in response order, got %s", players[1].Name())
	}

	reqs := stub.Requests()
	if q := reqs[0].Query.Encode(); q != "season=2015&timeFrame=n30&venue=home" {
		t.Fatalf("unexpected fixtures query %q", q)
	}

	if _, err := team.Fixtures(ctx, TeamFixtureFilter{}); err != nil {
		t.Fatalf("expected unfiltered fixtures, got %v", err)
	}
	if q := stub.Requests()[2].Query.Encode(); q != "" {
		t.Fatalf("expected empty query for zero filter, got %q", q)
	}
}

func TestTeamWithoutSquadValue(t *testing.T) {
	c := newClient(&teststubs.StubGateway{})
	teams, _ := c.Teams.FromRecords(raws(`{"name":"x","squadMarketValue":null}`))
	if _, ok := teams[0].SquadMarketValue(); ok {
		t.Fatalf("expected no squad value")
	}
}

func TestStandingFieldsAndTeam(t *testing.T) {
	stub := &teststubs.StubGateway{Responses: map[string]string{
		"/teams/338": testutil.TeamJSON(338),
	}}
	c := newClient(stub)
	standings, err := c.Standings.FromRecords(raws(testutil.StandingJSON(1, 338)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	s := standings[0]

	if s.Position() != 1 || s.TeamName() != "Team 338 FC" || s.PlayedGames() != 36 || s.Points() != 76 {
		t.Fatalf("unexpected standing fields")
	}
	if s.Goals() != 64 || s.GoalsAgainst() != 34 || s.GoalDifference() != 30 {
		t.Fatalf("unexpected goal fields")
	}

	team, err := s.Team(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id, _ := team.ID(); id != 338 {
		t.Fatalf("expected team 338, got %d", id)
	}
	if stub.CallsTo("/teams/338") != 1 {
		t.Fatalf("expected one fetch of team 338")
	}

	// Standing rows have no self link upstream.
	var mErr *MalformedRecordError
	if _, err := s.ID(); !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedRecordError for standing id, got %v", err)
	}
}

func TestPlayerFields(t *testing.T) {
	c := newClient(&teststubs.StubGateway{})
	players, err := c.Players.FromRecords(raws(
		testutil.PlayerJSON(42, "David de Gea"),
		`{"name":"Trialist","jerseyNumber":null,"marketValue":null,"_links":{"self":{"href":"http://x/players/9"}}}`,
	))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	p := players[0]
	if id, err := p.ID(); err != nil || id != 42 {
		t.Fatalf("expected id 42, got %d %v", id, err)
	}
	if p.Name() != "David de Gea" || p.Nationality() != "Spain" || p.Position() != "Keeper" {
		t.Fatalf("unexpected player fields")
	}
	if p.DateOfBirth() != "1990-11-07" || p.ContractUntil() != "2019-06-30" {
		t.Fatalf("unexpected player dates")
	}
	if n, ok := p.JerseyNumber(); !ok || n != 1 {
		t.Fatalf("unexpected jersey %d %v", n, ok)
	}
	if v, ok := p.MarketValue(); !ok || v != "45,000,000 €" {
		t.Fatalf("unexpected market value %q %v", v, ok)
	}

	trialist := players[1]
	if id, err := trialist.ID(); err != nil || id != 9 {
		t.Fatalf("expected self-link id fallback 9, got %d %v", id, err)
	}
	if _, ok := trialist.JerseyNumber(); ok {
		t.Fatalf("expected no jersey number")
	}
	if _, ok := trialist.MarketValue(); ok {
		t.Fatalf("expected no market value")
	}
}

func TestEntitiesSatisfyEntity(t *testing.T) {
	var _ Entity = (*Season)(nil)
	var _ Entity = (*Team)(nil)
	var _ Entity = (*Standing)(nil)
	var _ Entity = (*Fixture)(nil)
	var _ Entity = (*Player)(nil)
}
