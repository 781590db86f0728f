package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tankfield/ecs"
	"github.com/plus3/tankfield/sim"
)

// Runs the tank simulation headless at a fixed timestep and reports frame
// timings, entity counts, and memory usage. Useful for profiling the
// projectile churn without a window.
func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	tanks := flag.Int("tanks", 100, "The number of tank rigs to spawn.")
	radius := flag.Float64("radius", 8.0, "The safe zone radius. Turrets inside it hold fire.")
	seed := flag.Int64("seed", 0, "Noise seed. 0 picks a random one.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Int64()
	}

	log.Println("Starting tankfield stress run...")

	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	config := sim.Config{
		TankCount:      *tanks,
		SafeZoneRadius: float32(*radius),
	}
	ecs.NewSingleton[sim.Config](storage, config)
	ecs.NewSingleton[sim.NoiseField](storage, sim.NewNoiseField(*seed))

	log.Printf("Spawning %d tank rigs...\n", *tanks)
	sim.SpawnTanks(storage, config)

	scheduler := sim.NewPipeline(storage)

	report := &Report{
		Duration:       *duration,
		Tanks:          *tanks,
		SafeZoneRadius: *radius,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			frameStart := time.Now()
			scheduler.Once(float64(deltaTime) / float64(time.Second))
			frameDuration := time.Since(frameStart)

			report.FrameTime.Samples = append(report.FrameTime.Samples, frameDuration)
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.EntitiesEnd = storage.CollectStats().EntityCount

	projectiles := ecs.NewQuery[struct{ Projectile *sim.Projectile }](storage)
	report.LiveProjectiles = projectiles.Count()

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
