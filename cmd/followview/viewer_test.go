package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hexfollow/camera"
)

func TestPinnedNote(t *testing.T) {
	half := mgl32.Vec2{160, 90}
	cases := []struct {
		name  string
		level mgl32.Vec2
		ok    bool
		want  string
	}{
		{"unbounded", mgl32.Vec2{}, false, ""},
		{"fits", mgl32.Vec2{1024, 512}, true, ""},
		{"narrow", mgl32.Vec2{200, 512}, true, "\npinned on x"},
		{"short", mgl32.Vec2{1024, 100}, true, "\npinned on y"},
		{"tiny", mgl32.Vec2{10, 10}, true, "\npinned on x and y"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := camera.NewViewportBounds(half, c.level)
			if got := pinnedNote(b, c.ok); got != c.want {
				t.Fatalf("pinnedNote = %q, want %q", got, c.want)
			}
		})
	}
}
