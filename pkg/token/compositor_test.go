package token

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/tokenpress/pkg/errors"
)

var (
	testRed    = color.NRGBA{R: 255, A: 255}
	testGreen  = color.NRGBA{G: 255, A: 255}
	testBlue   = color.NRGBA{B: 255, A: 255}
	testBorder = color.NRGBA{R: 200, G: 200, A: 255}
	testClear  = color.NRGBA{}
)

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

func probe(t *testing.T, img image.Image, x, y int, want color.NRGBA, what string) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	if got != want {
		t.Errorf("%s: pixel (%d,%d) = %v, want %v", what, x, y, got, want)
	}
}

// foldSpec builds a 1x1 inch token with an 18 point border and a 9 point
// bottom margin, using solid red front and solid blue back fixtures.
func foldSpec(t *testing.T) *Spec {
	t.Helper()
	dir := t.TempDir()
	return &Spec{
		FrontImagePath:  writePNG(t, dir, "front.png", imaging.New(4, 4, testRed)),
		BackImagePath:   writePNG(t, dir, "back.png", imaging.New(4, 4, testBlue)),
		Width:           72,
		Height:          72,
		BorderThickness: 18,
		BottomMargin:    9,
		BorderColors:    Colors(testBorder),
		Copies:          1,
	}
}

func TestRenderDimensions(t *testing.T) {
	img, err := NewRenderer().Render(foldSpec(t), 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// imageWidth = 72 + 2*18 = 108, imageHeight = 2*72 + 4*18 + 2*9 = 234
	if got := img.Bounds().Dx(); got != 108 {
		t.Errorf("width = %d, want 108", got)
	}
	if got := img.Bounds().Dy(); got != 234 {
		t.Errorf("height = %d, want 234", got)
	}
}

func TestRenderDimensionsComeFromTotals(t *testing.T) {
	// At 96 DPI a 0.1 inch border is 9.6 px, truncated to 9 per part, but
	// the canvas must be sized from the physical totals: 1.2 in -> 115 px,
	// not 96 + 2*9 = 114.
	dir := t.TempDir()
	spec := &Spec{
		FrontImagePath:  writePNG(t, dir, "front.png", imaging.New(4, 4, testRed)),
		Width:           72,
		Height:          72,
		BorderThickness: 7.2,
		Copies:          1,
	}

	img, err := NewRenderer().Render(spec, 96, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if got := img.Bounds().Dx(); got != 115 {
		t.Errorf("width = %d, want 115", got)
	}
	if got := img.Bounds().Dy(); got != 230 {
		t.Errorf("height = %d, want 230", got)
	}
}

func TestRenderFoldGap(t *testing.T) {
	img, err := NewRenderer().Render(foldSpec(t), 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Vertical bands down the center column, top to bottom: border (18),
	// bottom margin (9), back face (72), crease gap (36 = 2*border),
	// front face (72), bottom margin (9), border (18).
	cx := 54

	probe(t, img, cx, 0, testBorder, "top border")
	probe(t, img, cx, 26, testBorder, "top margin band")
	probe(t, img, cx, 27, testBlue, "back face top edge")
	probe(t, img, cx, 98, testBlue, "back face bottom edge")
	for y := 99; y <= 134; y++ {
		probe(t, img, cx, y, testBorder, "crease gap")
	}
	probe(t, img, cx, 135, testRed, "front face top edge")
	probe(t, img, cx, 206, testRed, "front face bottom edge")
	probe(t, img, cx, 207, testBorder, "bottom margin band")
	probe(t, img, cx, 233, testBorder, "bottom border")

	probe(t, img, 4, 60, testBorder, "left border")
	probe(t, img, 103, 60, testBorder, "right border")
}

func TestRenderZeroBorderHasNoGap(t *testing.T) {
	dir := t.TempDir()
	spec := &Spec{
		FrontImagePath: writePNG(t, dir, "front.png", imaging.New(4, 4, testRed)),
		BackImagePath:  writePNG(t, dir, "back.png", imaging.New(4, 4, testBlue)),
		Width:          72,
		Height:         72,
		Copies:         1,
	}

	img, err := NewRenderer().Render(spec, 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if got := img.Bounds().Dy(); got != 144 {
		t.Fatalf("height = %d, want 144", got)
	}
	probe(t, img, 36, 71, testBlue, "back face bottom edge")
	probe(t, img, 36, 72, testRed, "front face top edge")
}

func TestRenderBorderColorCycling(t *testing.T) {
	colorA := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	colorB := color.NRGBA{R: 40, G: 50, B: 60, A: 255}

	spec := foldSpec(t)
	spec.BorderColors = Colors(colorA, colorB)
	spec.Copies = 3

	r := NewRenderer()
	wants := []color.NRGBA{colorA, colorB, colorA}
	for index, want := range wants {
		img, err := r.Render(spec, 72, index)
		if err != nil {
			t.Fatalf("Render(index=%d) error = %v", index, err)
		}
		probe(t, img, 54, 0, want, "border color")
	}
}

func TestRenderBackgroundColorCycling(t *testing.T) {
	colorA := color.NRGBA{R: 70, B: 70, A: 255}
	colorB := color.NRGBA{R: 5, G: 90, B: 120, A: 255}

	dir := t.TempDir()
	spec := &Spec{
		FrontImagePath:   writePNG(t, dir, "clear.png", imaging.New(4, 4, testClear)),
		Width:            72,
		Height:           72,
		BorderThickness:  18,
		BackgroundColors: Colors(colorA, colorB),
		Copies:           3,
	}

	r := NewRenderer()
	wants := []color.NRGBA{colorA, colorB, colorA}
	for index, want := range wants {
		img, err := r.Render(spec, 72, index)
		if err != nil {
			t.Fatalf("Render(index=%d) error = %v", index, err)
		}
		// Transparent artwork shows the background through both faces.
		probe(t, img, 54, 160, want, "front face background")
		probe(t, img, 54, 50, want, "back face background")
	}
}

func TestRenderBackFlipsVertically(t *testing.T) {
	// Fixture rows: top blue, bottom green. The back face must flip so the
	// fold crease reads correctly; the front stays upright.
	split := imaging.Paste(imaging.New(2, 2, testBlue), imaging.New(2, 1, testGreen), image.Pt(0, 1))

	dir := t.TempDir()
	path := writePNG(t, dir, "split.png", split)
	spec := &Spec{
		FrontImagePath:  path,
		Width:           72,
		Height:          72,
		BorderThickness: 18,
		Copies:          1,
	}

	r := &Renderer{Filter: imaging.NearestNeighbor}
	img, err := r.Render(spec, 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Back face spans rows 18..89, front face rows 126..197.
	probe(t, img, 54, 20, testGreen, "back face top after flip")
	probe(t, img, 54, 88, testBlue, "back face bottom after flip")
	probe(t, img, 54, 128, testBlue, "front face top")
	probe(t, img, 54, 196, testGreen, "front face bottom")
}

func TestRenderMirrorBack(t *testing.T) {
	// Fixture columns: left blue, right green.
	split := imaging.Paste(imaging.New(2, 2, testBlue), imaging.New(1, 2, testGreen), image.Pt(1, 0))

	dir := t.TempDir()
	path := writePNG(t, dir, "split.png", split)
	spec := &Spec{
		FrontImagePath:  path,
		Width:           72,
		Height:          72,
		BorderThickness: 18,
		Copies:          1,
	}

	r := &Renderer{Filter: imaging.NearestNeighbor}

	plain, err := r.Render(spec, 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	probe(t, plain, 20, 50, testBlue, "back face left without mirror")
	probe(t, plain, 20, 130, testBlue, "front face left without mirror")

	spec.MirrorBack = true
	mirrored, err := r.Render(spec, 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	probe(t, mirrored, 20, 50, testGreen, "back face left with mirror")
	probe(t, mirrored, 20, 130, testBlue, "front face left with mirror")
}

func TestRenderBackgroundImageCycling(t *testing.T) {
	yellow := color.NRGBA{R: 255, G: 255, A: 255}
	magenta := color.NRGBA{R: 255, B: 255, A: 255}

	dir := t.TempDir()
	spec := &Spec{
		FrontImagePath: writePNG(t, dir, "clear.png", imaging.New(4, 4, testClear)),
		Width:          72,
		Height:         72,
		BackgroundImagePaths: Paths(
			writePNG(t, dir, "bg-yellow.png", imaging.New(4, 4, yellow)),
			writePNG(t, dir, "bg-magenta.png", imaging.New(4, 4, magenta)),
		),
		// A configured background image wins over background colors.
		BackgroundColors: Colors(testRed),
		Copies:           3,
	}

	r := NewRenderer()
	wants := []color.NRGBA{yellow, magenta, yellow}
	for index, want := range wants {
		img, err := r.Render(spec, 72, index)
		if err != nil {
			t.Fatalf("Render(index=%d) error = %v", index, err)
		}
		probe(t, img, 36, 100, want, "front face background image")
	}
}

func TestRenderBackDefaultsToFront(t *testing.T) {
	dir := t.TempDir()
	spec := &Spec{
		FrontImagePath:  writePNG(t, dir, "front.png", imaging.New(4, 4, testRed)),
		Width:           72,
		Height:          72,
		BorderThickness: 18,
		Copies:          1,
	}

	r := NewRenderer()
	img, err := r.Render(spec, 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	probe(t, img, 54, 50, testRed, "back face uses front artwork")
	probe(t, img, 54, 160, testRed, "front face")

	if got := r.Loader.Len(); got != 1 {
		t.Errorf("loader cached %d images, want 1 for shared front/back path", got)
	}
}

func TestRenderCornerMarks(t *testing.T) {
	black := color.NRGBA{A: 255}

	img, err := NewRenderer().Render(foldSpec(t), 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Canvas is 108x234 and the default mark radius is 10: each corner
	// carries a 10 px run along both of its edges.
	probe(t, img, 0, 0, black, "top-left corner")
	probe(t, img, 9, 0, black, "top-left horizontal run end")
	probe(t, img, 10, 0, testBorder, "past top-left horizontal run")
	probe(t, img, 0, 9, black, "top-left vertical run end")
	probe(t, img, 0, 10, testBorder, "past top-left vertical run")

	probe(t, img, 107, 0, black, "top-right corner")
	probe(t, img, 98, 0, black, "top-right horizontal run end")
	probe(t, img, 97, 0, testBorder, "past top-right horizontal run")

	probe(t, img, 0, 233, black, "bottom-left corner")
	probe(t, img, 0, 224, black, "bottom-left vertical run end")
	probe(t, img, 0, 223, testBorder, "past bottom-left vertical run")

	probe(t, img, 107, 233, black, "bottom-right corner")
	probe(t, img, 98, 233, black, "bottom-right horizontal run end")
	probe(t, img, 107, 224, black, "bottom-right vertical run end")
}

func TestRenderCornerMarksDisabled(t *testing.T) {
	r := NewRenderer()
	r.MarkRadius = 0

	img, err := r.Render(foldSpec(t), 72, 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	probe(t, img, 0, 0, testBorder, "corner without marks")
}

func TestRenderIdempotent(t *testing.T) {
	spec := foldSpec(t)
	r := NewRenderer()

	first, err := r.Render(spec, 144, 1)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := r.Render(spec, 144, 1)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	a, ok := first.(*image.NRGBA)
	if !ok {
		t.Fatalf("Render() returned %T, want *image.NRGBA", first)
	}
	b := second.(*image.NRGBA)

	if a.Bounds() != b.Bounds() {
		t.Fatalf("bounds differ: %v vs %v", a.Bounds(), b.Bounds())
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("repeated renders of the same instance are not bit-identical")
	}
}

func TestRenderMissingFile(t *testing.T) {
	spec := &Spec{
		FrontImagePath: filepath.Join(t.TempDir(), "missing.png"),
		Width:          72,
		Height:         72,
		Copies:         1,
	}

	_, err := NewRenderer().Render(spec, 72, 0)
	if err == nil {
		t.Fatal("Render() error = nil, want missing file error")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestRenderCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	spec := &Spec{
		FrontImagePath: path,
		Width:          72,
		Height:         72,
		Copies:         1,
	}

	_, err := NewRenderer().Render(spec, 72, 0)
	if err == nil {
		t.Fatal("Render() error = nil, want decode error")
	}
	if !errors.Is(err, errors.ErrCodeAssetUnreadable) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeAssetUnreadable)
	}
}
