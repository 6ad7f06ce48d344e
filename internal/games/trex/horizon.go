package trex

import "github.com/vovakirdan/tui-runner/internal/config"

// Horizon owns everything behind and in front of the character: the ground,
// clouds, the night sky and the active obstacles.
type Horizon struct {
	cfg            *config.RunnerConfig
	rng            Random
	width          int
	cloudFrequency float64
	gapCoefficient float64

	Obstacles []*Obstacle
	Clouds    []*Cloud
	Line      *HorizonLine
	Night     *NightMode
	generator *Generator
}

// NewHorizon creates a horizon with one cloud and no obstacles.
func NewHorizon(cfg *config.RunnerConfig, width int, rng Random) *Horizon {
	h := &Horizon{
		cfg:            cfg,
		rng:            rng,
		width:          width,
		cloudFrequency: cfg.Cloud.Frequency,
		gapCoefficient: cfg.Runner.GapCoefficient,
		generator:      NewGenerator(cfg.Obstacles, cfg.Runner.MaxObstacleDuplication, rng),
	}
	h.addCloud()
	h.Line = NewHorizonLine(cfg.Horizon, cfg.Runner.FPS, rng)
	h.Night = NewNightMode(cfg.NightMode, width, rng)
	return h
}

// Update advances the ground, night sky and clouds, and the obstacles when
// updateObstacles is set. Obstacles stay frozen during the start-up grace period.
func (h *Horizon) Update(dt, speed float64, updateObstacles, showNightMode bool) {
	h.Line.Update(dt, speed)
	h.Night.Update(showNightMode)
	h.updateClouds(dt, speed)

	if updateObstacles {
		h.updateObstacles(dt, speed)
	}
}

func (h *Horizon) updateClouds(dt, speed float64) {
	if len(h.Clouds) == 0 {
		h.addCloud()
		return
	}

	cloudSpeed := h.cfg.Cloud.Speed / 1000 * dt * speed
	for _, c := range h.Clouds {
		c.Update(cloudSpeed)
	}

	last := h.Clouds[len(h.Clouds)-1]
	if len(h.Clouds) < h.cfg.Cloud.MaxClouds &&
		h.width-last.XPos > last.Gap &&
		h.cloudFrequency > h.rng.Float64() {
		h.addCloud()
	}

	kept := h.Clouds[:0]
	for _, c := range h.Clouds {
		if !c.Remove {
			kept = append(kept, c)
		}
	}
	h.Clouds = kept
}

func (h *Horizon) updateObstacles(dt, speed float64) {
	for _, o := range h.Obstacles {
		o.Update(dt, speed)
	}
	// Obstacles scroll out in creation order.
	for len(h.Obstacles) > 0 && h.Obstacles[0].Remove {
		h.Obstacles = h.Obstacles[1:]
	}

	if len(h.Obstacles) == 0 {
		h.addNewObstacle(speed)
		return
	}

	last := h.Obstacles[len(h.Obstacles)-1]
	if !last.FollowingCreated && last.Visible() &&
		last.XPos+last.Width+last.Gap < h.width {
		h.addNewObstacle(speed)
		last.FollowingCreated = true
	}
}

func (h *Horizon) addNewObstacle(speed float64) {
	i, ok := h.generator.Pick(speed)
	if !ok {
		return
	}
	typ := h.generator.Type(i)
	h.Obstacles = append(h.Obstacles, newObstacle(typ, obstacleParams{
		containerWidth:    h.width,
		fps:               h.cfg.Runner.FPS,
		gapCoefficient:    h.gapCoefficient,
		maxGapCoefficient: h.cfg.Runner.MaxGapCoefficient,
		maxLength:         h.cfg.Runner.MaxObstacleLength,
	}, speed, h.rng))
	h.generator.Record(typ.Type)
}

func (h *Horizon) addCloud() {
	h.Clouds = append(h.Clouds, newCloud(h.cfg.Cloud, h.width, h.rng))
}

// Generator exposes the obstacle type chooser.
func (h *Horizon) Generator() *Generator {
	return h.generator
}

// SetGapCoefficient changes obstacle spacing for obstacles created from now on.
func (h *Horizon) SetGapCoefficient(v float64) {
	h.gapCoefficient = v
}

// SetCloudFrequency changes the chance of a new cloud per tick.
func (h *Horizon) SetCloudFrequency(v float64) {
	h.cloudFrequency = v
}

// Resize changes the play field width used for spawning and wrapping.
func (h *Horizon) Resize(width int) {
	h.width = width
	h.Night.Resize(width)
}

// Reset clears the obstacles and rewinds the ground and night sky.
// The duplicate history survives so a restart cannot triple a type.
func (h *Horizon) Reset() {
	h.Obstacles = nil
	h.Line.Reset()
	h.Night.Reset()
}
