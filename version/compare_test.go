package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Semantic version comparison", t, func() {
		Convey("Should order by major, minor, then patch", func() {
			cases := []struct {
				a, b     string
				expected int
			}{
				{"1.0.0", "0.9.9", 1},
				{"0.1.0", "0.2.0", -1},
				{"0.1.2", "0.1.1", 1},
				{"2.3.4", "2.3.4", 0},
				{"v1.2.3", "1.2.3", 0},
			}

			for _, c := range cases {
				result, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(result, ShouldEqual, c.expected)
			}
		})

		Convey("Should reject malformed versions", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)

			_, err = Compare("1.0.0", "")
			So(err, ShouldNotBeNil)
		})
	})
}
