package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/JavaDevVictoria/mentormatch/internal/seed"
	"github.com/JavaDevVictoria/mentormatch/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumMentors = 8
	defaultNumMentees = 8
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 2 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numMentors = flag.Int("mentors", defaultNumMentors, "Number of sample mentors to register")
		numMentees = flag.Int("mentees", defaultNumMentees, "Number of sample mentees to register")
		autoMatch  = flag.Bool("match", true, "Create a match for each mentee's top-ranked mentor")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose    = flag.Bool("verbose", false, "Log every registration and match")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seed.Config{
		BaseURL:    *baseURL,
		NumMentors: *numMentors,
		NumMentees: *numMentees,
		AutoMatch:  *autoMatch,
		Timeout:    *timeout,
		Verbose:    *verbose,
	}

	if err := seed.Run(ctx, config); err != nil {
		os.Stderr.WriteString("seed failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
