// Package snapshot is a headless presenter: it rasterizes the draw lists of an immediate
// frame into an image with the gg software renderer, so sandboxes can be inspected without a
// window or a GPU.
package snapshot

import (
	"fmt"
	"image"
	"sort"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine/camera"
	"github.com/Carmen-Shannon/giterate/engine/frustum"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
)

// Default image size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// nearNudge keeps clipped line endpoints a sliver in front of the near plane.
const nearNudge = 1e-3

type screenPoint struct {
	x, y  float64
	depth float32
}

type screenTriangle struct {
	pts   [3]screenPoint
	depth float32
	color mgl32.Vec4
}

// rasterizer maps world-space primitives to pixel coordinates for one camera.
type rasterizer struct {
	viewProj mgl32.Mat4
	planes   frustum.Planes
	width    float64
	height   float64
}

func newRasterizer(cam camera.Camera, width, height int) *rasterizer {
	vp := cam.ViewProjectionMatrix()
	return &rasterizer{
		viewProj: vp,
		planes:   frustum.ExtractPlanes(vp),
		width:    float64(width),
		height:   float64(height),
	}
}

// project maps a world point to pixel coordinates; y grows downward.
func (r *rasterizer) project(p mgl32.Vec3) screenPoint {
	ndc := common.TransformPoint(r.viewProj, p)
	return screenPoint{
		x:     (float64(ndc.X()) + 1) * 0.5 * r.width,
		y:     (1 - float64(ndc.Y())) * 0.5 * r.height,
		depth: ndc.Z(),
	}
}

// visible rejects primitives with a non-finite vertex, a vertex behind the near plane, or
// all vertices outside one frustum plane.
func (r *rasterizer) visible(pts ...mgl32.Vec3) bool {
	for _, p := range pts {
		if !common.IsFinite(p) {
			return false
		}
	}
	return r.planes.InFrontOfNear(pts...) && !r.planes.Outside(pts...)
}

// clipNear trims the part of a segment that lies behind the near plane.
// ok is false when the whole segment is behind it.
func (r *rasterizer) clipNear(a, b mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, bool) {
	near := r.planes[frustum.Near]
	da, db := near.SignedDistance(a), near.SignedDistance(b)
	switch {
	case da <= 0 && db <= 0:
		return a, b, false
	case da <= 0:
		a = common.Mix(a, b, clipParam(da, db))
	case db <= 0:
		b = common.Mix(b, a, clipParam(db, da))
	}
	return a, b, true
}

// clipParam returns the blend factor from the outside endpoint toward the inside one that
// lands at nearNudge times the inside distance.
func clipParam(out, in float32) float32 {
	return (out - in*nearNudge) / (out - in)
}

// Stats counts what a rasterization drew and what it rejected.
type Stats struct {
	Triangles int
	Lines     int
	Points    int
	Rejected  int
}

// Rasterize draws a frame as seen by cam. Triangles are sorted back to front and filled
// first, then lines are stroked and points drawn on top. Triangles and points with any vertex
// behind the near plane are rejected; lines are clipped against it.
//
// Parameters:
//   - frame: the primitives to draw
//   - cam: the camera providing the view-projection matrix
//   - options: functional options for size, colors and label
//
// Returns:
//   - image.Image: the rendered image
//   - error: a wrapped gg error if a fill or stroke fails
func Rasterize(frame *immediate.Frame, cam camera.Camera, options ...SnapshotBuilderOption) (image.Image, error) {
	img, _, err := rasterize(frame, cam, resolve(options))
	return img, err
}

// RasterizeStats is Rasterize that also reports primitive counts.
func RasterizeStats(frame *immediate.Frame, cam camera.Camera, options ...SnapshotBuilderOption) (image.Image, Stats, error) {
	return rasterize(frame, cam, resolve(options))
}

func rasterize(frame *immediate.Frame, cam camera.Camera, s settings) (image.Image, Stats, error) {
	dc := gg.NewContext(s.width, s.height)
	defer dc.Close()
	dc.ClearWithColor(s.background)

	r := newRasterizer(cam, s.width, s.height)
	var st Stats

	tris := make([]screenTriangle, 0, len(frame.Triangles))
	for _, t := range frame.Triangles {
		if !r.visible(t[0].Pos, t[1].Pos, t[2].Pos) {
			st.Rejected++
			continue
		}
		var sct screenTriangle
		for i, v := range t {
			sct.pts[i] = r.project(v.Pos)
			sct.depth += sct.pts[i].depth / 3
		}
		sct.color = t[0].Color
		tris = append(tris, sct)
	}
	sort.SliceStable(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })

	for _, t := range tris {
		setColor(dc, t.color)
		dc.MoveTo(t.pts[0].x, t.pts[0].y)
		dc.LineTo(t.pts[1].x, t.pts[1].y)
		dc.LineTo(t.pts[2].x, t.pts[2].y)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return nil, st, fmt.Errorf("failed to fill triangle: %w", err)
		}
		st.Triangles++
	}

	dc.SetLineWidth(s.lineWidth)
	for _, l := range frame.Lines {
		a, b, ok := r.clipNear(l[0].Pos, l[1].Pos)
		if !ok || !r.visible(a, b) {
			st.Rejected++
			continue
		}
		pa, pb := r.project(a), r.project(b)
		setColor(dc, l[0].Color)
		dc.DrawLine(pa.x, pa.y, pb.x, pb.y)
		if err := dc.Stroke(); err != nil {
			return nil, st, fmt.Errorf("failed to stroke line: %w", err)
		}
		st.Lines++
	}

	for _, p := range frame.Points {
		if !r.visible(p.Pos) {
			st.Rejected++
			continue
		}
		sp := r.project(p.Pos)
		setColor(dc, p.Color)
		dc.DrawPoint(sp.x, sp.y, s.pointRadius)
		if err := dc.Fill(); err != nil {
			return nil, st, fmt.Errorf("failed to fill point: %w", err)
		}
		st.Points++
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, st, fmt.Errorf("failed to flush: %w", err)
	}
	img := dc.Image()
	if s.label != "" {
		img = drawLabel(img, s.label)
	}

	common.Logger().Debug("frame rasterized",
		"width", s.width, "height", s.height,
		"triangles", st.Triangles, "lines", st.Lines, "points", st.Points, "rejected", st.Rejected)
	return img, st, nil
}

func setColor(dc *gg.Context, c mgl32.Vec4) {
	dc.SetRGBA(float64(c.X()), float64(c.Y()), float64(c.Z()), float64(c.W()))
}
