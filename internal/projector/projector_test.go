package projector

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"

	"pointcube/internal/camera"
	"pointcube/internal/lattice"
	"pointcube/internal/rotation"
)

func TestProject(t *testing.T) {
	cam := camera.New(60, 320, 240)

	Convey("The model origin at rest lands just left of and above center", t, func() {
		model := rotation.New(1).Transforms().Model()
		win := Project(mgl32.Vec3{}, model, cam.Projection, cam.Viewport)

		So(win.X(), ShouldAlmostEqual, 158.61436, 1e-3)
		So(win.Y(), ShouldAlmostEqual, 118.96077, 1e-3)
		So(win.Z(), ShouldAlmostEqual, 0.998999, 1e-4)
		So(ToScreen(win), ShouldResemble, Point{X: 158, Y: 118})
	})

	Convey("Projection is deterministic", t, func() {
		s := &rotation.State{Angle: 0.7, Speed: 1}
		model := s.Transforms().Model()
		p := mgl32.Vec3{3, -2, 5}
		first := Project(p, model, cam.Projection, cam.Viewport)
		for i := 0; i < 10; i++ {
			So(Project(p, model, cam.Projection, cam.Viewport), ShouldResemble, first)
		}
	})

	Convey("Points off screen still project", t, func() {
		model := mgl32.Ident4()
		win := Project(mgl32.Vec3{0, 0, 5}, model, cam.Projection, cam.Viewport)
		So(win.Z(), ShouldBeGreaterThan, 1)
		win = Project(mgl32.Vec3{100, 0, -1}, model, cam.Projection, cam.Viewport)
		So(win.X(), ShouldBeGreaterThan, 320)
	})

	Convey("Viewport origin shifts the window coordinate", t, func() {
		vp := cam.Viewport
		vp.X, vp.Y = 10, 20
		model := mgl32.Translate3D(0, 0, -10)
		a := Project(mgl32.Vec3{}, model, cam.Projection, cam.Viewport)
		b := Project(mgl32.Vec3{}, model, cam.Projection, vp)
		So(b.X()-a.X(), ShouldAlmostEqual, 10, 1e-4)
		So(b.Y()-a.Y(), ShouldAlmostEqual, 20, 1e-4)
	})
}

func TestToScreen(t *testing.T) {
	Convey("Window coordinates truncate toward zero", t, func() {
		So(ToScreen(mgl32.Vec3{1.9, 2.2, 0}), ShouldResemble, Point{1, 2})
		So(ToScreen(mgl32.Vec3{-0.7, -1.5, 0}), ShouldResemble, Point{0, -1})
	})
}

func TestProjectAll(t *testing.T) {
	cam := camera.New(60, 320, 240)
	l, err := lattice.Generate(30, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := &rotation.State{Angle: 1.3, Speed: 1}
	model := s.Transforms().Model()

	Convey("Sequential projection matches Project point by point", t, func() {
		pts := New(1).ProjectAll(l, model, cam)
		So(len(pts), ShouldEqual, l.Len())
		for _, i := range []int{0, 1, 500, 13500, l.Len() - 1} {
			want := ToScreen(Project(l[i], model, cam.Projection, cam.Viewport))
			So(pts[i], ShouldResemble, want)
		}
	})

	Convey("Parallel projection keeps lattice order", t, func() {
		seq := append([]Point(nil), New(1).ProjectAll(l, model, cam)...)
		par := New(4).ProjectAll(l, model, cam)
		So(par, ShouldResemble, seq)
	})

	Convey("The buffer is reused between calls", t, func() {
		pr := New(2)
		a := pr.ProjectAll(l, model, cam)
		b := pr.ProjectAll(l[:10], model, cam)
		So(len(b), ShouldEqual, 10)
		So(&b[0], ShouldPointTo, &a[0])
	})
}
