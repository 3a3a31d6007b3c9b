package headless

import (
	"context"
	"time"

	"shape-studio/log"
	"shape-studio/services/generator"
	"shape-studio/services/scene"
)

// Runner drives the gallery transition loop without a terminal attached.
// It performs the same tick -> generate -> shape cycle the TUI driver
// does, either as fast as possible or on a real timer.
type Runner struct {
	gen      generator.ShapeGenerator
	model    scene.Gallery
	interval time.Duration
}

// NewRunner creates a runner over a gallery model. A zero interval means
// run the ticks back to back.
func NewRunner(gen generator.ShapeGenerator, model scene.Gallery, interval time.Duration) *Runner {
	return &Runner{
		gen:      gen,
		model:    model,
		interval: interval,
	}
}

// Run spawns shapes until the model is full or the context is cancelled,
// and returns the final model.
func (r *Runner) Run(ctx context.Context) (scene.Gallery, error) {
	log.InfoLog.Printf("headless run: cap %d, seed %d, interval %s",
		r.model.MaxShapes, r.model.Seed, r.interval)

	start := time.Now()
	everyN := log.NewEvery(5 * time.Second)

	if r.interval <= 0 {
		for !r.model.Full() {
			if err := ctx.Err(); err != nil {
				return r.model, err
			}
			r.step(everyN)
		}
		log.InfoLog.Printf("headless run complete: %d shapes in %s", len(r.model.Shapes), log.Since(start))
		return r.model, nil
	}

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	for !r.model.Full() {
		select {
		case <-ctx.Done():
			return r.model, ctx.Err()
		case <-timer.C:
			r.step(everyN)
			timer.Reset(r.interval)
		}
	}

	log.InfoLog.Printf("headless run complete: %d shapes in %s", len(r.model.Shapes), log.Since(start))
	return r.model, nil
}

// step performs one tick and resolves the commands it requested.
func (r *Runner) step(everyN *log.Every) {
	model, cmds := r.model.Step(scene.TickMsg{})
	r.model = model

	for _, c := range cmds {
		switch c := c.(type) {
		case scene.GenerateCommand:
			shape := r.gen.Generate(c.Bounds)
			r.model, _ = r.model.Step(scene.ShapeMsg{Shape: shape})
		}
	}

	if everyN.ShouldLog() {
		log.InfoLog.Printf("spawned %d/%d shapes", len(r.model.Shapes), r.model.MaxShapes)
	}
}
