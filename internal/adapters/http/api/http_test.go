package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JavaDevVictoria/mentormatch/internal/adapters/http/api"
	service "github.com/JavaDevVictoria/mentormatch/internal/app"
	"github.com/JavaDevVictoria/mentormatch/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	logger.Init()
}

func newTestMux() (*http.ServeMux, *service.Service) {
	svc := service.New()
	server := api.NewServer(svc, svc)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux, svc
}

func doJSON(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		mux, _ := newTestMux()

		Convey("When registering routes", func() {
			Convey("Then the health endpoint should be accessible", func() {
				w := doJSON(mux, "GET", "/healthz", "")
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the stats endpoint should be accessible", func() {
				w := doJSON(mux, "GET", "/stats", "")
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the export endpoint should be accessible", func() {
				w := doJSON(mux, "GET", "/export", "")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "text/plain")
			})

			Convey("And the mentors endpoint should reject invalid payloads", func() {
				w := doJSON(mux, "POST", "/mentors", `{}`)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestMentorsHandler(t *testing.T) {
	Convey("Given a server with no mentors", t, func() {
		mux, _ := newTestMux()

		Convey("When registering a mentor", func() {
			w := doJSON(mux, "POST", "/mentors",
				`{"name":"Alice","email":"alice@example.com","expertise":["Java","Spring"],"max_mentees":2}`)

			Convey("Then it should respond 201 with the mentor", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)

				var resp map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["name"], ShouldEqual, "Alice")
				So(resp["id"], ShouldNotBeEmpty)
				So(resp["max_mentees"], ShouldEqual, 2)
				So(resp["can_accept_more"], ShouldBeTrue)
			})

			Convey("And registering the same email again should conflict", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				dup := doJSON(mux, "POST", "/mentors",
					`{"name":"Alice Again","email":"alice@example.com","expertise":["Go"]}`)
				So(dup.Code, ShouldEqual, http.StatusConflict)
			})

			Convey("And listing mentors should include the new one", func() {
				list := doJSON(mux, "GET", "/mentors", "")
				So(list.Code, ShouldEqual, http.StatusOK)

				var mentors []map[string]interface{}
				So(json.Unmarshal(list.Body.Bytes(), &mentors), ShouldBeNil)
				So(len(mentors), ShouldEqual, 1)
			})

			Convey("And looking up the mentor by name should work", func() {
				byName := doJSON(mux, "GET", "/mentors?name=alice", "")
				So(byName.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When requesting a mentor without name or email", func() {
			w := doJSON(mux, "POST", "/mentors", `{"expertise":["Go"]}`)

			Convey("Then it should respond 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When fetching an unknown mentor", func() {
			w := doJSON(mux, "GET", "/mentors/no-such-id", "")

			Convey("Then it should respond 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When sending an unsupported method", func() {
			w := doJSON(mux, "DELETE", "/mentors", "")

			Convey("Then it should respond 405", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestMenteesHandler(t *testing.T) {
	Convey("Given a server with no mentees", t, func() {
		mux, _ := newTestMux()

		Convey("When registering a mentee", func() {
			w := doJSON(mux, "POST", "/mentees",
				`{"name":"Frank","email":"frank@example.com","goals":["Java","Spring"],"experience_level":"beginner"}`)

			Convey("Then it should respond 201 with the mentee", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)

				var resp map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["name"], ShouldEqual, "Frank")
				So(resp["experience_level"], ShouldEqual, "beginner")
				So(resp["matched"], ShouldBeFalse)
			})
		})

		Convey("When registering with an unknown experience level", func() {
			w := doJSON(mux, "POST", "/mentees",
				`{"name":"Grace","email":"grace@example.com","goals":["Go"],"experience_level":"wizard"}`)

			Convey("Then it should fall back to the default level", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)

				var resp map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["experience_level"], ShouldEqual, "beginner")
			})
		})

		Convey("When fetching an unknown mentee", func() {
			w := doJSON(mux, "GET", "/mentees/no-such-id", "")

			Convey("Then it should respond 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestMatchesHandler(t *testing.T) {
	Convey("Given a server with a mentor and a mentee", t, func() {
		mux, svc := newTestMux()
		ctx := context.Background()

		mentor, err := svc.RegisterMentor(ctx, "Alice", "alice@example.com",
			[]string{"Java", "Spring", "Microservices"}, 2)
		So(err, ShouldBeNil)
		mentee, err := svc.RegisterMentee(ctx, "Frank", "frank@example.com",
			[]string{"Java", "Spring"}, "beginner")
		So(err, ShouldBeNil)

		Convey("When ranking candidate matches for the mentee", func() {
			w := doJSON(mux, "GET", "/mentees/"+mentee.ID+"/matches", "")

			Convey("Then it should return scored candidates", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var candidates []map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &candidates), ShouldBeNil)
				So(len(candidates), ShouldEqual, 1)
				So(candidates[0]["score"], ShouldEqual, 1.0)
				So(candidates[0]["status"], ShouldEqual, "PENDING")
			})
		})

		Convey("When creating a match", func() {
			body := fmt.Sprintf(`{"mentor_id":%q,"mentee_id":%q}`, mentor.ID, mentee.ID)
			w := doJSON(mux, "POST", "/matches", body)

			Convey("Then it should respond 201 with an active match", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)

				var resp map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["status"], ShouldEqual, "ACTIVE")
				So(resp["mentor_name"], ShouldEqual, "Alice")
				So(resp["mentee_name"], ShouldEqual, "Frank")
			})

			Convey("And cancelling the match should release it", func() {
				var created map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &created), ShouldBeNil)
				matchID, _ := created["id"].(string)

				cancel := doJSON(mux, "POST", "/matches/"+matchID+"/cancel", "")
				So(cancel.Code, ShouldEqual, http.StatusOK)

				var cancelled map[string]interface{}
				So(json.Unmarshal(cancel.Body.Bytes(), &cancelled), ShouldBeNil)
				So(cancelled["status"], ShouldEqual, "CANCELLED")

				Convey("And cancelling again should conflict", func() {
					again := doJSON(mux, "POST", "/matches/"+matchID+"/cancel", "")
					So(again.Code, ShouldEqual, http.StatusConflict)
				})
			})

			Convey("And completing the match should mark it completed", func() {
				var created map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &created), ShouldBeNil)
				matchID, _ := created["id"].(string)

				complete := doJSON(mux, "POST", "/matches/"+matchID+"/complete", "")
				So(complete.Code, ShouldEqual, http.StatusOK)

				var completed map[string]interface{}
				So(json.Unmarshal(complete.Body.Bytes(), &completed), ShouldBeNil)
				So(completed["status"], ShouldEqual, "COMPLETED")
			})

			Convey("And the active filter should reflect lifecycle state", func() {
				active := doJSON(mux, "GET", "/matches?status=active", "")
				So(active.Code, ShouldEqual, http.StatusOK)

				var matches []map[string]interface{}
				So(json.Unmarshal(active.Body.Bytes(), &matches), ShouldBeNil)
				So(len(matches), ShouldEqual, 1)
			})
		})

		Convey("When creating a match with an unknown mentor", func() {
			body := fmt.Sprintf(`{"mentor_id":"missing","mentee_id":%q}`, mentee.ID)
			w := doJSON(mux, "POST", "/matches", body)

			Convey("Then it should respond 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When rematching the mentee to another mentor", func() {
			other, err := svc.RegisterMentor(ctx, "Bob", "bob@example.com",
				[]string{"Java"}, 1)
			So(err, ShouldBeNil)

			_, err = svc.CreateMatch(ctx, mentor.ID, mentee.ID)
			So(err, ShouldBeNil)

			body := fmt.Sprintf(`{"mentee_id":%q,"new_mentor_id":%q}`, mentee.ID, other.ID)
			w := doJSON(mux, "POST", "/matches/rematch", body)

			Convey("Then it should respond 201 with the new active match", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)

				var resp map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["mentor_id"], ShouldEqual, other.ID)
				So(resp["status"], ShouldEqual, "ACTIVE")
			})
		})
	})
}

func TestExportHandler(t *testing.T) {
	Convey("Given a server with an active match", t, func() {
		mux, svc := newTestMux()
		ctx := context.Background()

		mentor, err := svc.RegisterMentor(ctx, "Alice", "alice@example.com",
			[]string{"Java"}, 2)
		So(err, ShouldBeNil)
		mentee, err := svc.RegisterMentee(ctx, "Frank", "frank@example.com",
			[]string{"Java"}, "beginner")
		So(err, ShouldBeNil)
		_, err = svc.CreateMatch(ctx, mentor.ID, mentee.ID)
		So(err, ShouldBeNil)

		Convey("When requesting the export", func() {
			w := doJSON(mux, "GET", "/export", "")

			Convey("Then it should return the pipe-delimited report", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "# Mentorship Matches Export")
				So(w.Body.String(), ShouldContainSubstring, "|Alice|")
				So(w.Body.String(), ShouldContainSubstring, "|1.00|")
				So(w.Body.String(), ShouldContainSubstring, "|ACTIVE")
			})
		})

		Convey("When requesting the detailed report", func() {
			w := doJSON(mux, "GET", "/export?format=report", "")

			Convey("Then it should return the directory report", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "text/plain")
				So(w.Body.String(), ShouldContainSubstring, "MENTORSHIP MATCHER - DETAILED REPORT")
				So(w.Body.String(), ShouldContainSubstring, "Total Mentors: 1")
				So(w.Body.String(), ShouldContainSubstring, "Active Matches: 1")
				So(w.Body.String(), ShouldContainSubstring, "-- MENTORS --")
			})
		})

		Convey("When requesting an unknown export format", func() {
			w := doJSON(mux, "GET", "/export?format=xml", "")

			Convey("Then it should respond 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When posting to the export endpoint", func() {
			w := doJSON(mux, "POST", "/export", "")

			Convey("Then it should respond 405", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestStatsHandler(t *testing.T) {
	Convey("Given a server with registered participants", t, func() {
		mux, svc := newTestMux()
		ctx := context.Background()

		_, err := svc.RegisterMentor(ctx, "Alice", "alice@example.com", []string{"Java"}, 2)
		So(err, ShouldBeNil)
		_, err = svc.RegisterMentee(ctx, "Frank", "frank@example.com", []string{"Java"}, "beginner")
		So(err, ShouldBeNil)

		Convey("When requesting stats", func() {
			w := doJSON(mux, "GET", "/stats", "")

			Convey("Then it should report directory totals", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var stats map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
				So(stats["totalMentors"], ShouldEqual, 1)
				So(stats["totalMentees"], ShouldEqual, 1)
				So(stats["activeMatches"], ShouldEqual, 0)
			})
		})
	})
}
