// Package seed populates a running directory with sample participants and
// matches over its HTTP API.
package seed

import "time"

// Config controls a seeding run.
type Config struct {
	BaseURL    string        // base URL of the running service
	NumMentors int           // how many sample mentors to register
	NumMentees int           // how many sample mentees to register
	AutoMatch  bool          // create a match for each mentee's top candidate
	Timeout    time.Duration // per-request HTTP timeout
	Verbose    bool          // log every registration
}

// Stats accumulates the outcome of a seeding run.
type Stats struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	MentorsRegistered int
	MenteesRegistered int
	Duplicates        int
	MatchesCreated    int
	MenteesUnmatched  int
	Failed            int
}
