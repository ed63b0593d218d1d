package token

import (
	"image/color"
	"testing"
)

func TestSpecImageWidth(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want float64
	}{
		{"face plus borders", Spec{Width: 72, BorderThickness: 7.2}, 86.4},
		{"no border", Spec{Width: 100}, 100},
		{"bottom margin does not affect width", Spec{Width: 72, BorderThickness: 10, BottomMargin: 50}, 92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.ImageWidth(); got != tt.want {
				t.Errorf("ImageWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecImageHeight(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want float64
	}{
		{"two faces plus four borders", Spec{Height: 72, BorderThickness: 10}, 184},
		{"with bottom margins", Spec{Height: 72, BorderThickness: 10, BottomMargin: 5}, 194},
		{"bare faces", Spec{Height: 50}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.ImageHeight(); got != tt.want {
				t.Errorf("ImageHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecBackPath(t *testing.T) {
	withBack := Spec{FrontImagePath: "front.png", BackImagePath: "back.png"}
	if got := withBack.BackPath(); got != "back.png" {
		t.Errorf("BackPath() = %q, want %q", got, "back.png")
	}

	frontOnly := Spec{FrontImagePath: "front.png"}
	if got := frontOnly.BackPath(); got != "front.png" {
		t.Errorf("BackPath() = %q, want front fallback %q", got, "front.png")
	}
}

func TestSpecColorDefaults(t *testing.T) {
	spec := Spec{}

	if got := spec.BorderColorAt(0); got != DefaultBorderColor {
		t.Errorf("BorderColorAt(0) = %v, want default %v", got, DefaultBorderColor)
	}
	if got := spec.BackgroundColorAt(0); got != DefaultBackgroundColor {
		t.Errorf("BackgroundColorAt(0) = %v, want default %v", got, DefaultBackgroundColor)
	}

	red := color.NRGBA{R: 255, A: 255}
	spec.BorderColors = Colors(red)
	spec.BackgroundColors = Colors(red)
	if got := spec.BorderColorAt(3); got != red {
		t.Errorf("BorderColorAt(3) = %v, want %v", got, red)
	}
	if got := spec.BackgroundColorAt(3); got != red {
		t.Errorf("BackgroundColorAt(3) = %v, want %v", got, red)
	}
}

func TestSpecLabel(t *testing.T) {
	spec := Spec{FrontImagePath: "art/images/goblin.png"}
	if got := spec.Label(); got != "goblin.png" {
		t.Errorf("Label() = %q, want %q", got, "goblin.png")
	}
}

func TestSpecAssetPaths(t *testing.T) {
	spec := Spec{
		FrontImagePath:       "front.png",
		BackImagePath:        "back.png",
		BackgroundImagePaths: Paths("bg1.png", "bg2.png"),
	}

	got := spec.AssetPaths()
	want := []string{"front.png", "back.png", "bg1.png", "bg2.png"}
	if len(got) != len(want) {
		t.Fatalf("AssetPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AssetPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	frontOnly := Spec{FrontImagePath: "front.png"}
	if got := frontOnly.AssetPaths(); len(got) != 1 || got[0] != "front.png" {
		t.Errorf("AssetPaths() = %v, want [front.png]", got)
	}
}

func TestSpecValidate(t *testing.T) {
	valid := func() Spec {
		return Spec{
			FrontImagePath:  "front.png",
			Width:           72,
			Height:          72,
			BorderThickness: 7.2,
			Copies:          1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr bool
	}{
		{"valid", func(s *Spec) {}, false},
		{"valid with back and backgrounds", func(s *Spec) {
			s.BackImagePath = "back.png"
			s.BackgroundImagePaths = Paths("bg.png")
		}, false},
		{"missing front image", func(s *Spec) { s.FrontImagePath = "" }, true},
		{"front path with null byte", func(s *Spec) { s.FrontImagePath = "a\x00b.png" }, true},
		{"bad back path", func(s *Spec) { s.BackImagePath = "a\nb.png" }, true},
		{"bad background path", func(s *Spec) { s.BackgroundImagePaths = Paths("") }, true},
		{"zero width", func(s *Spec) { s.Width = 0 }, true},
		{"negative height", func(s *Spec) { s.Height = -1 }, true},
		{"negative border", func(s *Spec) { s.BorderThickness = -0.5 }, true},
		{"negative bottom margin", func(s *Spec) { s.BottomMargin = -1 }, true},
		{"zero copies", func(s *Spec) { s.Copies = 0 }, true},
		{"zero border is allowed", func(s *Spec) { s.BorderThickness = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valid()
			tt.mutate(&spec)
			err := spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
