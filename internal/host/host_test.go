package host

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEventStops(t *testing.T) {
	Convey("Only quit and escape release stop the program", t, func() {
		So(Event{Kind: Quit}.Stops(), ShouldBeTrue)
		So(Event{Kind: KeyUp, Key: KeyEscape}.Stops(), ShouldBeTrue)
		So(Event{Kind: KeyUp, Key: KeyLeft}.Stops(), ShouldBeFalse)
		So(Event{Kind: KeyUp, Key: KeyOther}.Stops(), ShouldBeFalse)
		So(Event{}.Stops(), ShouldBeFalse)
	})
}
