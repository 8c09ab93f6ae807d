package filesystem

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestScope(t *testing.T) {
	Convey("Scopes", t, func() {
		Convey("Should carry process-unique identifiers", func() {
			So(NewScope().ID(), ShouldNotEqual, NewScope().ID())
		})

		Convey("Should round-trip through a context", func() {
			ctx := WithScope(context.Background())

			scope, ok := ScopeFrom(ctx)
			So(ok, ShouldBeTrue)
			So(scope, ShouldNotBeNil)

			again, ok := ScopeFrom(ctx)
			So(ok, ShouldBeTrue)
			So(again, ShouldEqual, scope)
		})

		Convey("Should be absent from an unadorned context", func() {
			_, ok := ScopeFrom(context.Background())
			So(ok, ShouldBeFalse)
		})

		Convey("Should differ between two decorated contexts", func() {
			one, _ := ScopeFrom(WithScope(context.Background()))
			two, _ := ScopeFrom(WithScope(context.Background()))
			So(one, ShouldNotEqual, two)
		})
	})
}
