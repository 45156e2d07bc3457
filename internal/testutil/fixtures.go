package testutil

import "fmt"

// BaseURL is the href prefix used by the sample records.
const BaseURL = "http://api.football-data.org/alpha"

// SeasonJSON returns a soccerseason record with the given id.
func SeasonJSON(id int) string {
	return fmt.Sprintf(`{
		"_links": {
			"self": {"href": "%[1]s/soccerseasons/%[2]d"},
			"teams": {"href": "%[1]s/soccerseasons/%[2]d/teams"},
			"fixtures": {"href": "%[1]s/soccerseasons/%[2]d/fixtures"},
			"leagueTable": {"href": "%[1]s/soccerseasons/%[2]d/leagueTable"}
		},
		"caption": "Premier League 2015/16",
		"league": "PL",
		"year": "2015",
		"numberOfTeams": 20,
		"numberOfGames": 380,
		"lastUpdated": "2016-05-01T14:00:00Z"
	}`, BaseURL, id)
}

// TeamJSON returns a team record with the given id.
func TeamJSON(id int) string {
	return fmt.Sprintf(`{
		"_links": {
			"self": {"href": "%[1]s/teams/%[2]d"},
			"fixtures": {"href": "%[1]s/teams/%[2]d/fixtures"},
			"players": {"href": "%[1]s/teams/%[2]d/players"}
		},
		"name": "Team %[2]d FC",
		"code": "T%[2]d",
		"shortName": "Team %[2]d",
		"squadMarketValue": "377,250,000 €",
		"crestUrl": "http://upload.wikimedia.org/crest-%[2]d.svg"
	}`, BaseURL, id)
}

// FixtureJSON returns a played fixture record linking home/away teams and a season.
func FixtureJSON(id, homeID, awayID, seasonID int) string {
	return fmt.Sprintf(`{
		"_links": {
			"self": {"href": "%[1]s/fixtures/%[2]d"},
			"soccerseason": {"href": "%[1]s/soccerseasons/%[5]d"},
			"homeTeam": {"href": "%[1]s/teams/%[3]d"},
			"awayTeam": {"href": "%[1]s/teams/%[4]d"}
		},
		"date": "2016-05-01T14:00:00Z",
		"status": "FINISHED",
		"matchday": 36,
		"homeTeamName": "Team %[3]d FC",
		"awayTeamName": "Team %[4]d FC",
		"result": {"goalsHomeTeam": 2, "goalsAwayTeam": 1}
	}`, BaseURL, id, homeID, awayID, seasonID)
}

// StandingJSON returns a league table row linking to the given team.
func StandingJSON(position, teamID int) string {
	return fmt.Sprintf(`{
		"_links": {"team": {"href": "%[1]s/teams/%[3]d"}},
		"position": %[2]d,
		"teamName": "Team %[3]d FC",
		"playedGames": 36,
		"points": 76,
		"goals": 64,
		"goalsAgainst": 34,
		"goalDifference": 30
	}`, BaseURL, position, teamID)
}

// PlayerJSON returns a squad player record.
func PlayerJSON(id int, name string) string {
	return fmt.Sprintf(`{
		"id": %d,
		"name": %q,
		"position": "Keeper",
		"jerseyNumber": 1,
		"dateOfBirth": "1990-11-07",
		"nationality": "Spain",
		"contractUntil": "2019-06-30",
		"marketValue": "45,000,000 €"
	}`, id, name)
}
