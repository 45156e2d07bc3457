package footballdata

import "strconv"

// Timeframe is a relative date window used to filter fixtures, serialised as
// "p7" (past seven days) or "n30" (next thirty days).
type Timeframe struct {
	Past bool
	Days uint
}

// Past returns a window covering the last days days.
func Past(days uint) Timeframe {
	return Timeframe{Past: true, Days: days}
}

// Next returns a window covering the coming days days.
func Next(days uint) Timeframe {
	return Timeframe{Past: false, Days: days}
}

func (t Timeframe) String() string {
	direction := "n"
	if t.Past {
		direction = "p"
	}
	return direction + strconv.FormatUint(uint64(t.Days), 10)
}

// Venue filters team fixtures by where they are played.
type Venue string

const (
	VenueAny  Venue = ""
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)

func (v Venue) String() string {
	return string(v)
}
