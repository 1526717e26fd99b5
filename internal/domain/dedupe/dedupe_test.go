package dedupe_test

import (
	"context"
	"testing"

	dedupe "github.com/JavaDevVictoria/mentormatch/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given an empty deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When recording a new email", func() {
			seen := d.SeenAndRecord(ctx, "alice@example.com")

			Convey("Then it was not seen before and is now tracked", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And recording it again reports seen", func() {
				So(d.SeenAndRecord(ctx, "alice@example.com"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And case or padding differences still count as seen", func() {
				So(d.SeenAndRecord(ctx, "  Alice@Example.COM "), ShouldBeTrue)
			})
		})

		Convey("When unrecording a reserved email", func() {
			d.SeenAndRecord(ctx, "bob@example.com")
			d.Unrecord(ctx, "bob@example.com")

			Convey("Then it can be recorded again", func() {
				So(d.Size(), ShouldEqual, 0)
				So(d.SeenAndRecord(ctx, "bob@example.com"), ShouldBeFalse)
			})
		})

		Convey("When unrecording an unknown email", func() {
			d.Unrecord(ctx, "ghost@example.com")

			Convey("Then the size stays non-negative", func() {
				So(d.Size(), ShouldEqual, 0)
			})
		})
	})
}
