package trex

import (
	"math/rand"
	"testing"
)

func TestHorizonLineSegmentsStayAdjacent(t *testing.T) {
	cfg := defaultConfig()
	l := NewHorizonLine(cfg.Horizon, cfg.Runner.FPS, constRandom(0.9))

	if l.XPos != [2]int{0, 600} || l.Bumpy(0) || !l.Bumpy(1) {
		t.Fatalf("initial XPos %v SourceX %v, expected [0 600] and flat then bumpy", l.XPos, l.SourceX)
	}

	wrapped := false
	for i := 0; i < 1000; i++ {
		prev := l.XPos
		l.Update(16, 6)
		if d := l.XPos[1] - l.XPos[0]; d != 600 && d != -600 {
			t.Fatalf("tick %d: segments at %v are not adjacent", i, l.XPos)
		}
		for s := range 2 {
			if l.XPos[s] <= -600 || l.XPos[s] > 600 {
				t.Fatalf("tick %d: segment %d at %d out of range", i, s, l.XPos[s])
			}
			if l.XPos[s] > prev[s] {
				wrapped = true
			}
		}
	}
	if !wrapped {
		t.Fatal("no segment wrapped in 1000 ticks")
	}
	if !l.Bumpy(0) || !l.Bumpy(1) {
		t.Errorf("SourceX = %v, expected both bumpy after wrapping with draws above the threshold", l.SourceX)
	}
}

func TestHorizonLineWrapPicksFlat(t *testing.T) {
	cfg := defaultConfig()
	l := NewHorizonLine(cfg.Horizon, cfg.Runner.FPS, constRandom(0.2))
	// 5 * 80/1000 * 1500 = 600
	l.Update(1500, 5)
	if l.XPos != [2]int{600, 0} {
		t.Errorf("XPos = %v, expected [600 0]", l.XPos)
	}
	if l.Bumpy(0) {
		t.Error("wrapped segment is bumpy, expected flat below the threshold")
	}
}

func TestCloud(t *testing.T) {
	cfg := defaultConfig()

	c := newCloud(cfg.Cloud, 600, &scriptedRandom{vals: []float64{0, 0}})
	if c.Gap != 100 || c.YPos != 30 || c.XPos != 600 {
		t.Errorf("cloud = %+v, expected gap 100, y 30, x 600", c)
	}
	c = newCloud(cfg.Cloud, 600, constRandom(0.9999))
	if c.Gap != 400 || c.YPos != 71 {
		t.Errorf("cloud gap/y = %d/%d, expected 400/71", c.Gap, c.YPos)
	}

	c.Update(2.4)
	if c.XPos != 597 {
		t.Errorf("XPos = %d, expected 597", c.XPos)
	}
	c.XPos = -45
	c.Update(1)
	if !c.Remove {
		t.Error("Remove = false once off screen")
	}
}

func TestNightMode(t *testing.T) {
	cfg := defaultConfig()
	n := NewNightMode(cfg.NightMode, 600, constRandom(0.5))

	if n.XPos != 550 || n.YPos != 30 {
		t.Errorf("moon at (%v, %d), expected (550, 30)", n.XPos, n.YPos)
	}
	if len(n.Stars) != 2 || n.Stars[0].X != 150 || n.Stars[1].X != 450 || n.Stars[0].Y != 35 {
		t.Errorf("Stars = %+v, expected x 150 and 450 at y 35", n.Stars)
	}

	n.Update(true)
	if n.CurrentPhase != 1 {
		t.Errorf("CurrentPhase = %d, expected 1", n.CurrentPhase)
	}
	if n.Opacity != 0.035 || n.XPos != 549.75 {
		t.Errorf("Opacity/XPos = %v/%v, expected 0.035/549.75", n.Opacity, n.XPos)
	}

	prev := n.Opacity
	for i := 0; i < 100; i++ {
		n.Update(true)
		if n.Opacity < prev {
			t.Fatalf("opacity fell from %v to %v while fading in", prev, n.Opacity)
		}
		prev = n.Opacity
	}
	if n.Opacity != 1 || n.CurrentPhase != 1 {
		t.Errorf("Opacity/Phase = %v/%d, expected 1/1", n.Opacity, n.CurrentPhase)
	}

	for i := 0; i < 100; i++ {
		n.Update(false)
	}
	if n.Opacity != 0 {
		t.Errorf("Opacity = %v, expected 0", n.Opacity)
	}
	n.Update(true)
	if n.CurrentPhase != 2 {
		t.Errorf("CurrentPhase = %d, expected 2", n.CurrentPhase)
	}
}

func TestNightModeMoonWidth(t *testing.T) {
	cfg := defaultConfig()
	n := NewNightMode(cfg.NightMode, 600, constRandom(0.5))
	for i, want := range []int{20, 20, 20, 40, 20, 20, 20, 20} {
		if got := n.MoonWidth(); got != want {
			t.Errorf("phase %d: MoonWidth = %d, expected %d", i, got, want)
		}
		n.CurrentPhase = (n.CurrentPhase + 1) % len(cfg.NightMode.Phases)
	}
}

func TestHorizonSpawnsObstaclesOnlyWhenEnabled(t *testing.T) {
	cfg := defaultConfig()
	h := NewHorizon(&cfg, 600, rand.New(rand.NewSource(7)))

	if len(h.Clouds) != 1 || len(h.Obstacles) != 0 {
		t.Fatalf("clouds/obstacles = %d/%d, expected 1/0", len(h.Clouds), len(h.Obstacles))
	}
	h.Update(16, 6, false, false)
	if len(h.Obstacles) != 0 {
		t.Errorf("obstacles = %d, expected 0 while disabled", len(h.Obstacles))
	}
	h.Update(16, 6, true, false)
	if len(h.Obstacles) != 1 {
		t.Errorf("obstacles = %d, expected 1", len(h.Obstacles))
	}
}

func TestHorizonObstacleStream(t *testing.T) {
	cfg := defaultConfig()
	h := NewHorizon(&cfg, 600, rand.New(rand.NewSource(3)))

	seen := map[*Obstacle]bool{}
	var order []string
	for i := 0; i < 20000; i++ {
		h.Update(16, 6, true, false)
		for j, o := range h.Obstacles {
			if j > 0 && o.XPos <= h.Obstacles[j-1].XPos {
				t.Fatalf("tick %d: obstacles out of order", i)
			}
			if o.Remove {
				t.Fatalf("tick %d: removed obstacle still active", i)
			}
			if !seen[o] {
				seen[o] = true
				order = append(order, o.Type.Type)
			}
		}
	}

	if len(order) < 10 {
		t.Fatalf("only %d obstacles placed", len(order))
	}
	for i, typ := range order {
		if typ == "PTERODACTYL" {
			t.Fatalf("obstacle %d is PTERODACTYL at speed 6", i)
		}
		if i >= 2 && typ == order[i-1] && typ == order[i-2] {
			t.Fatalf("obstacles %d..%d are all %s", i-2, i, typ)
		}
	}
}

func TestHorizonClouds(t *testing.T) {
	cfg := defaultConfig()

	h := NewHorizon(&cfg, 600, rand.New(rand.NewSource(11)))
	h.SetCloudFrequency(1)
	for i := 0; i < 5000; i++ {
		h.Update(16, 6, false, false)
		if len(h.Clouds) > cfg.Cloud.MaxClouds {
			t.Fatalf("tick %d: %d clouds, expected at most %d", i, len(h.Clouds), cfg.Cloud.MaxClouds)
		}
	}

	h = NewHorizon(&cfg, 600, rand.New(rand.NewSource(11)))
	h.SetCloudFrequency(0)
	for i := 0; i < 5000; i++ {
		h.Update(16, 6, false, false)
		if len(h.Clouds) > 1 {
			t.Fatalf("tick %d: %d clouds with zero frequency", i, len(h.Clouds))
		}
	}
}

func TestHorizonResetKeepsHistory(t *testing.T) {
	cfg := defaultConfig()
	h := NewHorizon(&cfg, 600, rand.New(rand.NewSource(5)))
	h.Update(16, 6, true, false)
	before := h.Generator().History()

	h.Reset()
	if len(h.Obstacles) != 0 {
		t.Errorf("obstacles = %d after Reset, expected 0", len(h.Obstacles))
	}
	if after := h.Generator().History(); len(after) != len(before) || after[0] != before[0] {
		t.Errorf("History = %v after Reset, expected %v", after, before)
	}
	if h.Line.XPos != [2]int{0, 600} {
		t.Errorf("Line.XPos = %v, expected [0 600]", h.Line.XPos)
	}
}
