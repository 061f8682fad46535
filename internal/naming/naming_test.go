package naming

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestJPEGPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"assets/images/fig.png", "assets/images/fig.jpg"},
		{"assets/images/Fig.PNG", "assets/images/Fig.jpg"},
		{"a.b.png", "a.b.jpg"},
		{filepath.Join("x", "y", "z.Png"), filepath.Join("x", "y", "z.jpg")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := JPEGPath(tt.in); got != tt.want {
				t.Errorf("JPEGPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReferenceForm(t *testing.T) {
	root := filepath.Join("/srv", "blog")
	got, err := ReferenceForm(root, filepath.Join(root, "assets", "images", "a.png"))
	if err != nil {
		t.Fatalf("ReferenceForm: %v", err)
	}
	if got != "assets/images/a.png" {
		t.Errorf("ReferenceForm = %q, want assets/images/a.png", got)
	}

	_, err = ReferenceForm(root, filepath.Join("/srv", "other", "a.png"))
	var outside *OutsideRootError
	if !errors.As(err, &outside) {
		t.Errorf("ReferenceForm outside root: err = %v, want OutsideRootError", err)
	}
}

func TestBuildMapping_AddsStrippedVariant(t *testing.T) {
	root := filepath.Join("/srv", "blog")
	png := filepath.Join(root, "assets", "images", "fig", "a.png")
	m := BuildMapping(root, []Pair{{PNG: png, JPEG: JPEGPath(png)}}, []string{"assets/"})

	want := map[string]string{
		"assets/images/fig/a.png": "assets/images/fig/a.jpg",
		"images/fig/a.png":        "images/fig/a.jpg",
	}
	if m.Len() != len(want) {
		t.Fatalf("Len = %d, want %d (keys %v)", m.Len(), len(want), m.Keys())
	}
	for k, v := range want {
		got, ok := m.Get(k)
		if !ok || got != v {
			t.Errorf("Get(%q) = %q, %v; want %q", k, got, ok, v)
		}
	}
}

func TestBuildMapping_OutsideRootFallsBackToBaseName(t *testing.T) {
	root := filepath.Join("/srv", "blog")
	png := filepath.Join("/elsewhere", "b.png")
	m := BuildMapping(root, []Pair{{PNG: png, JPEG: JPEGPath(png)}}, []string{"assets/"})

	if got, ok := m.Get("b.png"); !ok || got != "b.jpg" {
		t.Errorf("Get(b.png) = %q, %v; want b.jpg", got, ok)
	}
}

func TestMapping_KeysLongestFirst(t *testing.T) {
	m := NewMapping(map[string]string{
		"images/a.png":        "images/a.jpg",
		"assets/images/a.png": "assets/images/a.jpg",
		"b.png":               "b.jpg",
		"c.png":               "c.jpg",
		"":                    "ignored",
	})
	want := []string{"assets/images/a.png", "images/a.png", "b.png", "c.png"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCollisionDetector(t *testing.T) {
	cd := NewCollisionDetector()

	if _, collided := cd.Claim("a.png", "a.jpg"); collided {
		t.Error("first claim should not collide")
	}
	if _, collided := cd.Claim("a.png", "a.jpg"); collided {
		t.Error("re-claim by the same source should not collide")
	}
	prev, collided := cd.Claim("a.PNG", "a.jpg")
	if !collided || prev != "a.png" {
		t.Errorf("Claim = %q, %v; want a.png, true", prev, collided)
	}
	if _, collided := cd.Claim("b.png", "b.jpg"); collided {
		t.Error("distinct target should not collide")
	}
}
