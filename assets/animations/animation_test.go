package animations

import "testing"

func TestCurrentFrameFollowsHold(t *testing.T) {
	cases := []struct {
		name   string
		frames []string
		hold   int
	}{
		{"single frame", []string{"a"}, 1},
		{"coin", []string{"coin_1", "coin_2", "coin_3"}, 10},
		{"projectile", []string{"projectile_1", "projectile_2"}, 8},
		{"hold one", []string{"a", "b", "c", "d"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnimation(tc.frames, tc.hold)
			for n := 0; n < 200; n++ {
				want := tc.frames[(n/tc.hold)%len(tc.frames)]
				if got := a.CurrentFrame(); got != want {
					t.Fatalf("after %d updates CurrentFrame() = %q, want %q", n, got, want)
				}
				a.Update()
			}
		})
	}
}

func TestCurrentFrameHasNoSideEffects(t *testing.T) {
	a := NewAnimation([]string{"a", "b"}, 1)
	for i := 0; i < 5; i++ {
		if got := a.CurrentFrame(); got != "a" {
			t.Fatalf("CurrentFrame() = %q, want a", got)
		}
	}
}

func TestRestart(t *testing.T) {
	a := NewAnimation([]string{"a", "b", "c"}, 2)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	if a.Frame() != 2 {
		t.Fatalf("Frame() = %d after 5 updates, want 2", a.Frame())
	}
	a.Restart()
	if a.Frame() != 0 || a.CurrentFrame() != "a" {
		t.Errorf("Restart left frame=%d", a.Frame())
	}
	a.Update()
	a.Update()
	if a.CurrentFrame() != "b" {
		t.Errorf("after restart and 2 updates CurrentFrame() = %q, want b", a.CurrentFrame())
	}
}

func TestNewAnimationPanics(t *testing.T) {
	cases := []struct {
		name   string
		frames []string
		hold   int
	}{
		{"empty frames", nil, 5},
		{"zero hold", []string{"a"}, 0},
		{"negative hold", []string{"a"}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewAnimation(tc.frames, tc.hold)
		})
	}
}
