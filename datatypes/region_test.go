package datatypes

import (
	"testing"

	"github.com/PyroSamurai/rehex/document"
	mock_rehex "github.com/PyroSamurai/rehex/mock/rehex"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"
)

func TestRegion(t *testing.T) {
	Convey("With a u16le region over a small document", t, func() {
		doc := document.New([]byte{0x01, 0x02, 0x03, 0x04})
		region, err := NewRegion(doc, mustGet("u16le"), 1)
		So(err, ShouldBeNil)

		Convey("FormatValue renders the bytes at the region's offset", func() {
			value, err := region.FormatValue()
			So(err, ShouldBeNil)
			So(value, ShouldEqual, "770") // 0x0302
		})

		Convey("WriteStringValue overwrites the region in place", func() {
			So(region.WriteStringValue("4660"), ShouldBeNil) // 0x1234

			raw, err := doc.Read(0, 4)
			So(err, ShouldBeNil)
			So(raw, ShouldResemble, []byte{0x01, 0x34, 0x12, 0x04})
		})

		Convey("a parse failure leaves the document untouched", func() {
			So(region.WriteStringValue("notanumber"), ShouldNotBeNil)

			raw, err := doc.Read(0, 4)
			So(err, ShouldBeNil)
			So(raw, ShouldResemble, []byte{0x01, 0x02, 0x03, 0x04})
		})
	})

	Convey("A region must fit inside the document", t, func() {
		doc := document.New([]byte{0x01, 0x02, 0x03, 0x04})

		_, err := NewRegion(doc, mustGet("u32le"), 1)
		So(err, ShouldNotBeNil)

		_, err = NewRegion(doc, mustGet("u32le"), -1)
		So(err, ShouldNotBeNil)

		_, err = NewRegion(doc, mustGet("u32le"), 0)
		So(err, ShouldBeNil)
	})

	Convey("Unparseable input never reaches the document", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockDoc := mock_rehex.NewMockDocument(mockCtrl)
		mockDoc.EXPECT().Len().Return(int64(8)).AnyTimes()

		region, err := NewRegion(mockDoc, mustGet("s32be"), 0)
		So(err, ShouldBeNil)

		// no Overwrite expectation: any write would fail the test
		So(region.WriteStringValue("bogus"), ShouldNotBeNil)
	})
}
