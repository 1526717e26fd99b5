package seed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JavaDevVictoria/mentormatch/pkg/logger"
)

type registeredMentor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type registeredMentee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type candidateMatch struct {
	MentorID   string  `json:"mentor_id"`
	MentorName string  `json:"mentor_name"`
	Score      float64 `json:"score"`
}

// Run seeds the directory: health check, register mentors, register mentees,
// then optionally create a match for each mentee's top-ranked candidate.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting directory seed",
		logger.String("baseURL", config.BaseURL),
		logger.Int("mentors", config.NumMentors),
		logger.Int("mentees", config.NumMentees),
		logger.Bool("autoMatch", config.AutoMatch))

	client := newHTTPClient(config.Timeout)

	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	if err := registerMentors(ctx, client, config, stats); err != nil {
		return fmt.Errorf("mentor registration failed: %w", err)
	}

	mentees, err := registerMentees(ctx, client, config, stats)
	if err != nil {
		return fmt.Errorf("mentee registration failed: %w", err)
	}

	if config.AutoMatch {
		if err := matchMentees(ctx, client, config, mentees, stats); err != nil {
			return fmt.Errorf("matching failed: %w", err)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *httpClient, config *Config) error {
	status, err := client.get(ctx, config.BaseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", status)
	}
	logger.Get().Info(ctx, "service is healthy")
	return nil
}

func registerMentors(ctx context.Context, client *httpClient, config *Config, stats *Stats) error {
	url := config.BaseURL + "/mentors"

	for i := 0; i < config.NumMentors; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		name, email, expertise, maxMentees := sampleMentor(i)
		req := map[string]interface{}{
			"name":        name,
			"email":       email,
			"expertise":   expertise,
			"max_mentees": maxMentees,
		}

		var mentor registeredMentor
		status, err := client.post(ctx, url, req, &mentor)
		switch {
		case err != nil:
			stats.Failed++
			logger.Get().Warn(ctx, "mentor registration failed", logger.String("name", name), logger.Error(err))
		case status == http.StatusConflict:
			stats.Duplicates++
		case status == http.StatusCreated:
			stats.MentorsRegistered++
			if config.Verbose {
				logger.Get().Info(ctx, "registered mentor",
					logger.String("id", mentor.ID), logger.String("name", mentor.Name))
			}
		default:
			stats.Failed++
			logger.Get().Warn(ctx, "unexpected mentor registration status",
				logger.String("name", name), logger.Int("status", status))
		}
	}

	logger.Get().Info(ctx, "mentor registration completed",
		logger.Int("registered", stats.MentorsRegistered),
		logger.Int("duplicates", stats.Duplicates),
		logger.Int("failed", stats.Failed))
	return nil
}

func registerMentees(ctx context.Context, client *httpClient, config *Config, stats *Stats) ([]registeredMentee, error) {
	url := config.BaseURL + "/mentees"
	mentees := make([]registeredMentee, 0, config.NumMentees)

	for i := 0; i < config.NumMentees; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, email, goals, level := sampleMentee(i)
		req := map[string]interface{}{
			"name":             name,
			"email":            email,
			"goals":            goals,
			"experience_level": level,
		}

		var mentee registeredMentee
		status, err := client.post(ctx, url, req, &mentee)
		switch {
		case err != nil:
			stats.Failed++
			logger.Get().Warn(ctx, "mentee registration failed", logger.String("name", name), logger.Error(err))
		case status == http.StatusConflict:
			stats.Duplicates++
		case status == http.StatusCreated:
			stats.MenteesRegistered++
			mentees = append(mentees, mentee)
			if config.Verbose {
				logger.Get().Info(ctx, "registered mentee",
					logger.String("id", mentee.ID), logger.String("name", mentee.Name))
			}
		default:
			stats.Failed++
			logger.Get().Warn(ctx, "unexpected mentee registration status",
				logger.String("name", name), logger.Int("status", status))
		}
	}

	logger.Get().Info(ctx, "mentee registration completed",
		logger.Int("registered", stats.MenteesRegistered))
	return mentees, nil
}

// matchMentees pairs every seeded mentee with its best-scoring available
// mentor. Mentees with no overlapping candidates stay unmatched.
func matchMentees(ctx context.Context, client *httpClient, config *Config, mentees []registeredMentee, stats *Stats) error {
	for _, mentee := range mentees {
		if err := ctx.Err(); err != nil {
			return err
		}

		var candidates []candidateMatch
		status, err := client.get(ctx, config.BaseURL+"/mentees/"+mentee.ID+"/matches", &candidates)
		if err != nil || status != http.StatusOK {
			stats.Failed++
			logger.Get().Warn(ctx, "candidate lookup failed",
				logger.String("mentee", mentee.Name), logger.Int("status", status), logger.Error(err))
			continue
		}
		if len(candidates) == 0 {
			stats.MenteesUnmatched++
			continue
		}

		top := candidates[0]
		req := map[string]interface{}{
			"mentor_id": top.MentorID,
			"mentee_id": mentee.ID,
		}
		status, err = client.post(ctx, config.BaseURL+"/matches", req, nil)
		if err != nil || status != http.StatusCreated {
			stats.Failed++
			logger.Get().Warn(ctx, "match creation failed",
				logger.String("mentee", mentee.Name), logger.Int("status", status), logger.Error(err))
			continue
		}

		stats.MatchesCreated++
		if config.Verbose {
			logger.Get().Info(ctx, "created match",
				logger.String("mentee", mentee.Name),
				logger.String("mentor", top.MentorName),
				logger.Float64("score", top.Score))
		}
	}

	logger.Get().Info(ctx, "matching completed",
		logger.Int("created", stats.MatchesCreated),
		logger.Int("unmatched", stats.MenteesUnmatched))
	return nil
}

// displayFinalStats prints the final seeding statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("mentorsRegistered", stats.MentorsRegistered),
		logger.Int("menteesRegistered", stats.MenteesRegistered),
		logger.Int("duplicates", stats.Duplicates),
		logger.Int("matchesCreated", stats.MatchesCreated),
		logger.Int("menteesUnmatched", stats.MenteesUnmatched),
		logger.Int("failed", stats.Failed),
		logger.String("duration", stats.Duration.String()))
}
