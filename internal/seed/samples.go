package seed

import "fmt"

// mentorSample is a canned mentor profile.
type mentorSample struct {
	name       string
	expertise  []string
	maxMentees int
}

// menteeSample is a canned mentee profile.
type menteeSample struct {
	name  string
	goals []string
	level string
}

// Canned profiles cover overlapping and disjoint skill sets so that a seeded
// directory produces a spread of ranking scores rather than all-or-nothing.
var mentorSamples = []mentorSample{
	{"Alice Johnson", []string{"Java", "Spring Boot", "Microservices"}, 2},
	{"Bob Smith", []string{"Python", "Machine Learning", "Data Science"}, 3},
	{"Carol Davis", []string{"JavaScript", "React", "Node.js"}, 2},
	{"David Lee", []string{"Go", "Kubernetes", "Distributed Systems"}, 3},
	{"Eve Martinez", []string{"SQL", "Database Design", "Performance Tuning"}, 2},
	{"Victor Chen", []string{"Rust", "Systems Programming", "WebAssembly"}, 1},
	{"Wendy Park", []string{"Java", "Android", "Mobile Development"}, 2},
	{"Xavier Flores", []string{"DevOps", "Terraform", "AWS"}, 3},
}

var menteeSamples = []menteeSample{
	{"Frank Wilson", []string{"Java", "Spring Boot"}, "beginner"},
	{"Grace Kim", []string{"Python", "Data Science"}, "intermediate"},
	{"Henry Adams", []string{"JavaScript", "Web Development"}, "beginner"},
	{"Ivy Nguyen", []string{"Kubernetes", "Cloud Native"}, "intermediate"},
	{"Jack O'Brien", []string{"Database Design", "SQL"}, "advanced"},
	{"Karen Silva", []string{"Machine Learning"}, "beginner"},
	{"Liam Murphy", []string{"Go", "Backend Development"}, "intermediate"},
	{"Mia Torres", []string{"React", "Frontend Development"}, "beginner"},
}

// sampleMentor returns the i-th mentor profile, cycling through the canned
// set with a numeric suffix so emails stay unique past one cycle.
func sampleMentor(i int) (name, email string, expertise []string, maxMentees int) {
	s := mentorSamples[i%len(mentorSamples)]
	name = s.name
	email = sampleEmail(s.name, i/len(mentorSamples))
	return name, email, s.expertise, s.maxMentees
}

// sampleMentee returns the i-th mentee profile, cycling like sampleMentor.
func sampleMentee(i int) (name, email string, goals []string, level string) {
	s := menteeSamples[i%len(menteeSamples)]
	name = s.name
	email = sampleEmail(s.name, i/len(menteeSamples))
	return name, email, s.goals, s.level
}

func sampleEmail(name string, cycle int) string {
	local := ""
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			local += string(r + ('a' - 'A'))
		case r >= 'a' && r <= 'z':
			local += string(r)
		case r == ' ':
			local += "."
		}
	}
	if cycle > 0 {
		local = fmt.Sprintf("%s%d", local, cycle)
	}
	return local + "@example.com"
}
