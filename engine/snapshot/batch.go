package snapshot

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine"
	"github.com/Carmen-Shannon/giterate/engine/camera"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/Carmen-Shannon/giterate/engine/sandbox"
)

// batchQueueSize is the task buffer of the batch worker pool.
const batchQueueSize = 256

// Job describes one sandbox capture.
type Job struct {
	// Sandbox is the registry name of the sandbox to render.
	Sandbox string
	// Options configure the sandbox instance.
	Options []sandbox.SandboxBuilderOption
	// Frames is the number of frames stepped before the capture; values below 1 mean 1.
	Frames int
	// HideAxes omits the world axis lines.
	HideAxes bool
	// Snapshot configures the rasterization.
	Snapshot []SnapshotBuilderOption
	// Path, when set, receives the image as PNG.
	Path string
}

// Result is the outcome of one Job.
type Result struct {
	Job   Job
	Image image.Image
	Stats Stats
	Err   error
}

// Capture renders a single job on the calling goroutine. The sandbox, renderer and camera are
// created for the job and dropped afterwards.
//
// Parameters:
//   - job: the capture to perform
//
// Returns:
//   - Result: the image and stats, or the error that stopped the capture
func Capture(job Job) Result {
	res := Result{Job: job}

	sb, err := sandbox.New(job.Sandbox, job.Options...)
	if err != nil {
		res.Err = fmt.Errorf("failed to create sandbox: %w", err)
		return res
	}

	s := resolve(job.Snapshot)
	cam := camera.NewCamera(camera.WithAspect(float32(s.width) / float32(s.height)))
	if f, ok := sb.(sandbox.Framer); ok {
		cam.Frame(f.Focus())
	}

	frames := max(job.Frames, 1)
	presented := 0
	e := engine.NewEngine(sb,
		engine.WithCamera(cam),
		engine.WithAxes(!job.HideAxes),
		engine.WithPresenter(func(frame *immediate.Frame, c camera.Camera, _ float32) error {
			presented++
			if presented < frames {
				return nil
			}
			img, st, err := rasterize(frame, c, s)
			if err != nil {
				return err
			}
			res.Image, res.Stats = img, st
			return nil
		}),
	)

	dt := float32(1.0 / 60)
	for range frames {
		if err := e.Step(dt); err != nil {
			res.Err = fmt.Errorf("failed to render %s: %w", job.Sandbox, err)
			return res
		}
	}

	if job.Path != "" {
		if err := WritePNG(job.Path, res.Image); err != nil {
			res.Err = err
		}
	}
	return res
}

// Batch captures jobs concurrently on a dynamic worker pool. Every job owns its sandbox,
// renderer and icosphere cache, so no state is shared between workers. Jobs that have not
// started when ctx is done fail with ctx.Err().
//
// Parameters:
//   - ctx: cancels jobs that have not started yet
//   - jobs: the captures to perform
//   - workers: the maximum number of concurrent captures (at least 1)
//
// Returns:
//   - []Result: one result per job, in job order
func Batch(ctx context.Context, jobs []Job, workers int) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	pool := worker.NewDynamicWorkerPool(max(workers, 1), batchQueueSize, 1*time.Second)

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if err := ctx.Err(); err != nil {
					results[i] = Result{Job: job, Err: err}
					return nil, nil
				}
				results[i] = Capture(job)
				return nil, nil
			},
		})
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	common.Logger().Info("snapshot batch finished", "jobs", len(jobs), "failed", failed)
	return results
}
