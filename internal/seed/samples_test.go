package seed

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSampleProfiles(t *testing.T) {
	Convey("Given the canned sample profiles", t, func() {
		Convey("When drawing more mentors than the canned set holds", func() {
			_, first, _, _ := sampleMentor(0)
			_, second, _, _ := sampleMentor(len(mentorSamples))

			Convey("Then emails should stay unique across cycles", func() {
				So(first, ShouldEqual, "alice.johnson@example.com")
				So(second, ShouldEqual, "alice.johnson1@example.com")
				So(first, ShouldNotEqual, second)
			})
		})

		Convey("When drawing a mentee profile", func() {
			name, email, goals, level := sampleMentee(0)

			Convey("Then it should carry goals and a level", func() {
				So(name, ShouldEqual, "Frank Wilson")
				So(email, ShouldEqual, "frank.wilson@example.com")
				So(goals, ShouldNotBeEmpty)
				So(level, ShouldEqual, "beginner")
			})
		})

		Convey("When a name contains punctuation", func() {
			email := sampleEmail("Jack O'Brien", 0)

			Convey("Then the email local part should drop it", func() {
				So(email, ShouldEqual, "jack.obrien@example.com")
			})
		})
	})
}
