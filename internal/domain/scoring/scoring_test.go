package scoring_test

import (
	"testing"

	scoring "github.com/JavaDevVictoria/mentormatch/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLexicalScorer_Score(t *testing.T) {
	Convey("Given a lexical scorer", t, func() {
		scorer := scoring.NewLexicalScorer()

		Convey("When every goal is covered", func() {
			// "spring boot" covers "spring" through substring containment.
			res := scorer.Score([]string{"java", "spring boot"}, []string{"java", "spring"})

			Convey("Then the score is 1.0 with both goals matched", func() {
				So(res.Score, ShouldEqual, 1.0)
				So(res.MatchedGoals, ShouldResemble, []string{"java", "spring"})
			})
		})

		Convey("When only some goals are covered", func() {
			res := scorer.Score([]string{"python"}, []string{"python", "cooking"})

			So(res.Score, ShouldEqual, 0.5)
			So(res.MatchedGoals, ShouldResemble, []string{"python"})
		})

		Convey("When no goal is covered", func() {
			res := scorer.Score([]string{"cooking"}, []string{"kubernetes", "terraform"})

			So(res.Score, ShouldEqual, 0.0)
			So(res.MatchedGoals, ShouldBeEmpty)
		})

		Convey("When the mentee has no goals", func() {
			res := scorer.Score([]string{"java", "python"}, nil)

			Convey("Then the score is 0.0 without dividing by zero", func() {
				So(res.Score, ShouldEqual, 0.0)
				So(res.MatchedGoals, ShouldBeEmpty)
			})
		})

		Convey("When the mentor has no expertise", func() {
			res := scorer.Score(nil, []string{"java"})

			So(res.Score, ShouldEqual, 0.0)
			So(res.MatchedGoals, ShouldBeEmpty)
		})

		Convey("When one broad expertise area covers every goal", func() {
			// Asymmetry by design: relatedness is many-to-one per goal.
			res := scorer.Score([]string{"full stack web development", "golf"},
				[]string{"web development", "full stack"})

			So(res.Score, ShouldEqual, 1.0)
			So(res.MatchedGoals, ShouldResemble, []string{"web development", "full stack"})
		})

		Convey("When a goal appears twice in the sequence", func() {
			res := scorer.Score([]string{"java"}, []string{"java", "java"})

			Convey("Then it is matched once and the duplicate still counts in the denominator", func() {
				So(res.MatchedGoals, ShouldResemble, []string{"java"})
				So(res.Score, ShouldEqual, 0.5)
			})
		})

		Convey("When multiple expertise areas hit the same goal", func() {
			res := scorer.Score([]string{"java", "javascript"}, []string{"java"})

			Convey("Then the goal is recorded once", func() {
				So(res.MatchedGoals, ShouldResemble, []string{"java"})
				So(res.Score, ShouldEqual, 1.0)
			})
		})

		Convey("When scoring any pair", func() {
			cases := [][2][]string{
				{{"a", "b", "c"}, {"a"}},
				{{"x"}, {"a", "b", "c", "d"}},
				{{}, {}},
				{{"devops"}, {"devops", "sre", "platform"}},
			}

			Convey("Then scores stay within [0.0, 1.0] and matched goals are a subset", func() {
				for _, c := range cases {
					res := scorer.Score(c[0], c[1])
					So(res.Score, ShouldBeGreaterThanOrEqualTo, 0.0)
					So(res.Score, ShouldBeLessThanOrEqualTo, 1.0)
					So(len(res.MatchedGoals), ShouldBeLessThanOrEqualTo, len(c[1]))
					for _, g := range res.MatchedGoals {
						So(c[1], ShouldContain, g)
					}
				}
			})
		})
	})
}

func TestLexicalScorer_WithRelatedFunc(t *testing.T) {
	Convey("Given a scorer with a custom relatedness predicate", t, func() {
		exact := func(a, b string) bool { return a == b }
		scorer := scoring.NewLexicalScorer(scoring.WithRelatedFunc(exact))

		Convey("When scoring with exact-only matching", func() {
			res := scorer.Score([]string{"spring boot"}, []string{"spring"})

			Convey("Then the substring rule no longer applies", func() {
				So(res.Score, ShouldEqual, 0.0)
			})
		})
	})
}
