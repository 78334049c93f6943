package widget_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/internal/canvastest"
	"github.com/marben/revolving_ifs/view"
	"github.com/marben/revolving_ifs/widget"
)

type PointPickerSuite struct {
	suite.Suite
	rec     *canvastest.Recorder
	pp      *widget.PointPicker
	changes []revolving.Complex
	t0      time.Time
}

func (s *PointPickerSuite) SetupTest() {
	s.rec = canvastest.New(300, 300)
	s.changes = nil
	s.t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	opts := widget.DefaultPointPickerOptions()
	opts.OnChange = func(z revolving.Complex) { s.changes = append(s.changes, z) }
	s.pp = widget.NewPointPicker(s.rec, opts)
}

func (s *PointPickerSuite) at(ms int) time.Time {
	return s.t0.Add(time.Duration(ms) * time.Millisecond)
}

func (s *PointPickerSuite) TestInitialState() {
	s.Equal(revolving.C(0.5, -0.5), s.pp.Point())
	s.Equal("0.5 - 0.5i", s.pp.Text())
	s.Equal(view.DefaultBounds, s.pp.Bounds())
	s.Empty(s.changes)

	s.Equal(1, s.rec.Clears)
	s.Require().Len(s.rec.Circles, 2)
	shadow, point := s.rec.Circles[0], s.rec.Circles[1]
	s.Equal(8.0, shadow.Radius)
	s.Equal(6.0, point.Radius)
	s.Equal([]revolving.Point{{X: 225, Y: 225}}, point.Centers)

	s.True(s.rec.HasText("1.0"))
	s.True(s.rec.HasText("-1.0"))
	s.False(s.rec.HasText("0.0"), "no label at the origin")
}

func (s *PointPickerSuite) TestClickSelectsSnappedPoint() {
	s.pp.PointerDown(revolving.Point{X: 180, Y: 120}, s.at(0))
	s.pp.PointerUp(revolving.Point{X: 181, Y: 121}, s.at(50))

	s.Equal(revolving.C(0.2, 0.2), s.pp.Point())
	s.Equal("0.2 + 0.2i", s.pp.Text())
	s.Equal([]revolving.Complex{revolving.C(0.2, 0.2)}, s.changes)
}

func (s *PointPickerSuite) TestSlowPressIsNotAClick() {
	s.pp.PointerDown(revolving.Point{X: 180, Y: 120}, s.at(0))
	s.pp.PointerUp(revolving.Point{X: 180, Y: 120}, s.at(250))

	s.Equal(revolving.C(0.5, -0.5), s.pp.Point())
	s.Empty(s.changes)
}

func (s *PointPickerSuite) TestDragMovesPoint() {
	s.pp.PointerDown(revolving.Point{X: 228, Y: 222}, s.at(0))
	s.False(s.pp.Panning())

	s.pp.PointerMove(revolving.Point{X: 240, Y: 60}, s.at(20))
	s.pp.PointerUp(revolving.Point{X: 240, Y: 60}, s.at(40))

	s.Equal(revolving.C(0.6, 0.6), s.pp.Point())
	s.Len(s.changes, 1, "release after a drag is not a click")
	s.Equal(view.DefaultBounds, s.pp.Bounds())
}

func (s *PointPickerSuite) TestPanShiftsBounds() {
	s.pp.PointerDown(revolving.Point{X: 30, Y: 30}, s.at(0))
	s.True(s.pp.Panning())

	s.pp.PointerMove(revolving.Point{X: 60, Y: 30}, s.at(100))
	b := s.pp.Bounds()
	s.InDelta(-1.2, b.XMin, 1e-12)
	s.InDelta(0.8, b.XMax, 1e-12)
	s.InDelta(-1, b.YMin, 1e-12)

	clears := s.rec.Clears
	s.True(s.pp.Frame())
	s.Equal(clears+1, s.rec.Clears)

	s.pp.PointerUp(revolving.Point{X: 60, Y: 30}, s.at(500))
	s.False(s.pp.Panning())
	s.False(s.pp.Frame())
	s.Equal(revolving.C(0.5, -0.5), s.pp.Point())
	s.Empty(s.changes)
}

func (s *PointPickerSuite) TestWheelZoom() {
	center := revolving.Point{X: 150, Y: 150}

	s.pp.Wheel(center, 3)
	s.InDelta(2.2, s.pp.Bounds().XRange(), 1e-12)

	s.pp.Wheel(center, -3)
	s.InDelta(1.98, s.pp.Bounds().XRange(), 1e-12)

	s.pp.Wheel(center, 0)
	s.InDelta(1.98, s.pp.Bounds().XRange(), 1e-12)
	s.Empty(s.changes)
}

func (s *PointPickerSuite) TestZoomRefinesPrecisionAndNudges() {
	center := revolving.Point{X: 150, Y: 150}

	// a fine step is absorbed by the default 0.1 grid
	s.True(s.pp.KeyDown(widget.KeyUp, true))
	s.Equal(revolving.C(0.5, -0.5), s.pp.Point())

	for i := 0; i < 7; i++ {
		s.pp.Wheel(center, -1)
	}
	s.Equal(2, view.SpacingFor(s.pp.Bounds()).Precision())
	s.Equal("0.50 - 0.50i", s.pp.Text())

	s.True(s.pp.KeyDown(widget.KeyUp, true))
	s.Equal(revolving.C(0.5, -0.49), s.pp.Point())
	s.Equal("0.50 - 0.49i", s.pp.Text())
}

func (s *PointPickerSuite) TestDeepZoomKeepsBoundsUsable() {
	cursor := revolving.Point{X: 250, Y: 60}

	s.NotPanics(func() {
		for i := 0; i < 10000; i++ {
			s.pp.Wheel(cursor, -1)
		}
		s.pp.Draw()
	})
	b := s.pp.Bounds()
	s.Greater(b.XRange(), 0.0)
	s.Greater(b.YRange(), 0.0)
	s.GreaterOrEqual(b.XRange(), view.MinRange*(1-1e-6))
	s.LessOrEqual(view.SpacingFor(b).Precision(), 11)
	s.Less(len(s.pp.Text()), 40)

	s.NotPanics(func() {
		for i := 0; i < 10000; i++ {
			s.pp.Wheel(cursor, 1)
		}
		s.pp.Draw()
	})
	s.LessOrEqual(s.pp.Bounds().XRange(), view.MaxRange*(1+1e-6))
}

func (s *PointPickerSuite) TestArrowKeys() {
	s.True(s.pp.KeyDown(widget.KeyRight, false))
	s.Equal(revolving.C(0.6, -0.5), s.pp.Point())
	s.True(s.pp.KeyDown(widget.KeyDown, false))
	s.Equal(revolving.C(0.6, -0.6), s.pp.Point())
	s.True(s.pp.KeyDown(widget.KeyLeft, false))
	s.True(s.pp.KeyDown(widget.KeyUp, false))
	s.Equal(revolving.C(0.5, -0.5), s.pp.Point())
	s.Len(s.changes, 4)

	s.False(s.pp.KeyDown(widget.KeyNone, false))
}

func (s *PointPickerSuite) TestKeysIgnoredWhileTextFocused() {
	s.pp.SetTextFocus(true)
	s.False(s.pp.KeyDown(widget.KeyRight, false))
	s.Equal(revolving.C(0.5, -0.5), s.pp.Point())

	s.pp.SetTextFocus(false)
	s.True(s.pp.KeyDown(widget.KeyRight, false))
}

func (s *PointPickerSuite) TestSubmitText() {
	s.True(s.pp.SubmitText("1+2i"))
	s.Equal(revolving.C(1, 2), s.pp.Point())
	s.Equal("1.0 + 2.0i", s.pp.Text())

	s.True(s.pp.SubmitText("3i"))
	s.Equal(revolving.C(0, 3), s.pp.Point())

	s.True(s.pp.SubmitText("-0.5-0.5i"))
	s.Equal(revolving.C(-0.5, -0.5), s.pp.Point())
	s.Len(s.changes, 3)
}

func (s *PointPickerSuite) TestSubmitTextRevertsOnGarbage() {
	s.False(s.pp.SubmitText("abc"))
	s.Equal(revolving.C(0.5, -0.5), s.pp.Point())
	s.Equal("0.5 - 0.5i", s.pp.Text())
	s.Empty(s.changes)
}

func TestPointPickerSuite(t *testing.T) {
	suite.Run(t, new(PointPickerSuite))
}

func TestPointPickerDefaultsFillGaps(t *testing.T) {
	rec := canvastest.New(100, 100)
	pp := widget.NewPointPicker(rec, widget.PointPickerOptions{Initial: revolving.C(0.34, 0.26)})

	assert.Equal(t, revolving.C(0.3, 0.3), pp.Point())
	require.Len(t, rec.Circles, 2)
	assert.Equal(t, 6.0, rec.Circles[1].Radius)
	assert.NotNil(t, rec.Circles[1].Color)
}

func TestKeyFromName(t *testing.T) {
	assert.Equal(t, widget.KeyLeft, widget.KeyFromName("ArrowLeft"))
	assert.Equal(t, widget.KeyRight, widget.KeyFromName("ArrowRight"))
	assert.Equal(t, widget.KeyUp, widget.KeyFromName("ArrowUp"))
	assert.Equal(t, widget.KeyDown, widget.KeyFromName("ArrowDown"))
	assert.Equal(t, widget.KeyNone, widget.KeyFromName("Enter"))
}
