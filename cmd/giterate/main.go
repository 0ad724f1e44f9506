// Command giterate drives the geometry sandboxes headlessly.
//
//	giterate run      -sandbox icosphere -frames 600 -profile
//	giterate snapshot -sandbox all -out shots
//	giterate stats
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/Carmen-Shannon/giterate/common"
	"github.com/Carmen-Shannon/giterate/engine"
	"github.com/Carmen-Shannon/giterate/engine/camera"
	"github.com/Carmen-Shannon/giterate/engine/immediate"
	"github.com/Carmen-Shannon/giterate/engine/mesh"
	"github.com/Carmen-Shannon/giterate/engine/sandbox"
	"github.com/Carmen-Shannon/giterate/engine/snapshot"
)

const usage = `usage: giterate [-v] <command> [flags]

commands:
  run       drive a sandbox at a fixed rate, optionally writing periodic snapshots
  snapshot  render sandboxes to PNG files
  stats     print generator sizes and packaged model counts

sandboxes: %s
`

func main() {
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, strings.Join(sandbox.Names(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	common.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "run":
		err = runCmd(ctx, args)
	case "snapshot":
		err = snapshotCmd(ctx, args)
	case "stats":
		err = statsCmd(args)
	default:
		flag.Usage()
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fatalf("%s: %v", cmd, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// sandboxFlags are the per-sandbox options shared by run and snapshot.
type sandboxFlags struct {
	fs        *flag.FlagSet
	wireframe bool
	normals   bool
	level     int
	normalize bool
	frustum   string
}

func addSandboxFlags(fs *flag.FlagSet) *sandboxFlags {
	sf := &sandboxFlags{fs: fs}
	fs.BoolVar(&sf.wireframe, "wireframe", false, "Draw triangle edges instead of filled triangles.")
	fs.BoolVar(&sf.normals, "normals", true, "Draw normal lines (cylinder, quad_strip).")
	fs.IntVar(&sf.level, "level", 3, fmt.Sprintf("Icosphere subdivision level [0, %d].", mesh.MaxIcosphereLevel))
	fs.BoolVar(&sf.normalize, "normalize", false, "Project icosphere vertices onto the unit sphere.")
	fs.StringVar(&sf.frustum, "frustum", "", "Frustum stages: comma list of original,local,projected,scaled,combined,basis or all.")
	return sf
}

// options converts the parsed flags. The wireframe option is only passed when set on the
// command line so each sandbox keeps its own default.
func (sf *sandboxFlags) options() ([]sandbox.SandboxBuilderOption, error) {
	opts := []sandbox.SandboxBuilderOption{
		sandbox.WithNormals(sf.normals),
		sandbox.WithLevel(sf.level),
		sandbox.WithNormalize(sf.normalize),
	}
	sf.fs.Visit(func(f *flag.Flag) {
		if f.Name == "wireframe" {
			opts = append(opts, sandbox.WithWireframe(sf.wireframe))
		}
	})
	if sf.frustum != "" {
		flags, ok := sandbox.ParseFrustumFlags(sf.frustum)
		if !ok {
			return nil, fmt.Errorf("invalid -frustum %q", sf.frustum)
		}
		opts = append(opts, sandbox.WithFrustumFlags(flags))
	}
	return opts, nil
}

func runCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	var (
		name    = fs.String("sandbox", sandbox.IcosphereName, "Sandbox to drive.")
		fps     = fs.Float64("fps", 60, "Frames per second.")
		frames  = fs.Uint64("frames", 0, "Stop after this many frames (0 runs until interrupted).")
		profile = fs.Bool("profile", true, "Log frame statistics once per second.")
		noAxes  = fs.Bool("no-axes", false, "Hide the world axes.")
		outDir  = fs.String("out", "", "Directory for periodic snapshots (empty disables them).")
		every   = fs.Uint64("every", 60, "Write a snapshot every N frames when -out is set.")
		width   = fs.Int("width", snapshot.DefaultWidth, "Snapshot width.")
		height  = fs.Int("height", snapshot.DefaultHeight, "Snapshot height.")
	)
	sf := addSandboxFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	opts, err := sf.options()
	if err != nil {
		return err
	}

	sb, err := sandbox.New(common.Coalesce(strings.TrimSpace(*name), sandbox.IcosphereName), opts...)
	if err != nil {
		return err
	}

	cam := camera.NewCamera(camera.WithAspect(float32(*width) / float32(*height)))
	if f, ok := sb.(sandbox.Framer); ok {
		cam.Frame(f.Focus())
	}

	engineOpts := []engine.EngineBuilderOption{
		engine.WithCamera(cam),
		engine.WithTickRate(*fps),
		engine.WithMaxFrames(*frames),
		engine.WithAxes(!*noAxes),
		engine.WithProfiling(*profile),
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", *outDir, err)
		}
		engineOpts = append(engineOpts, engine.WithPresenter(
			periodicSnapshots(*outDir, sb.Name(), max(*every, 1), *width, *height)))
	}

	e := engine.NewEngine(sb, engineOpts...)
	common.Logger().Info("running sandbox", "sandbox", sb.Name(), "fps", *fps, "frames", *frames)
	if err := e.Run(ctx); err != nil {
		return err
	}
	common.Logger().Info("sandbox stopped", "sandbox", sb.Name(), "frames", e.Frames())
	return nil
}

// periodicSnapshots returns a presenter that writes every n-th frame to dir.
func periodicSnapshots(dir, name string, n uint64, width, height int) engine.Presenter {
	var frame uint64
	return func(f *immediate.Frame, cam camera.Camera, _ float32) error {
		defer func() { frame++ }()
		if frame%n != 0 {
			return nil
		}
		img, err := snapshot.Rasterize(f, cam,
			snapshot.WithSize(width, height),
			snapshot.WithLabel(fmt.Sprintf("%s #%d", name, frame)))
		if err != nil {
			return err
		}
		return snapshot.WritePNG(filepath.Join(dir, fmt.Sprintf("%s_%06d.png", name, frame)), img)
	}
}

func snapshotCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	var (
		names   = fs.String("sandbox", "all", "Comma-separated sandboxes, or all.")
		outDir  = fs.String("out", ".", "Output directory.")
		width   = fs.Int("width", snapshot.DefaultWidth, "Image width.")
		height  = fs.Int("height", snapshot.DefaultHeight, "Image height.")
		frames  = fs.Int("frames", 1, "Frames to step before capturing.")
		workers = fs.Int("workers", max(runtime.NumCPU()-1, 1), "Concurrent captures.")
		label   = fs.Bool("label", true, "Stamp the sandbox name into the image.")
		noAxes  = fs.Bool("no-axes", false, "Hide the world axes.")
	)
	sf := addSandboxFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	opts, err := sf.options()
	if err != nil {
		return err
	}
	dir := common.Coalesce(*outDir, ".")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	selected := sandbox.Names()
	if *names != "all" && *names != "" {
		selected = strings.Split(*names, ",")
	}

	jobs := make([]snapshot.Job, 0, len(selected))
	for _, n := range selected {
		n = strings.TrimSpace(n)
		snapOpts := []snapshot.SnapshotBuilderOption{snapshot.WithSize(*width, *height)}
		if *label {
			snapOpts = append(snapOpts, snapshot.WithLabel(n))
		}
		jobs = append(jobs, snapshot.Job{
			Sandbox:  n,
			Options:  opts,
			Frames:   *frames,
			HideAxes: *noAxes,
			Snapshot: snapOpts,
			Path:     filepath.Join(dir, n+".png"),
		})
	}

	var errs []error
	for _, res := range snapshot.Batch(ctx, jobs, *workers) {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Job.Sandbox, res.Err))
			continue
		}
		common.Logger().Info("snapshot written", "path", res.Job.Path,
			"triangles", res.Stats.Triangles, "lines", res.Stats.Lines, "rejected", res.Stats.Rejected)
	}
	return errors.Join(errs...)
}

func statsCmd(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	resolution := fs.Uint64("resolution", 8, "Cylinder ring resolution.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res, err := cylinderResolution(*resolution)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GENERATOR\tPARAM\tVERTICES\tINDICES\tTRIANGLES")
	nv, ni := mesh.CylinderSizes(res)
	fmt.Fprintf(w, "cylinder\tresolution=%d\t%d\t%d\t%d\n", res, nv, ni, ni/3)
	nv, ni = mesh.QuadStripSizes(len(sandbox.RibbonPoints()))
	fmt.Fprintf(w, "quad_strip\tpoints=%d\t%d\t%d\t%d\n", len(sandbox.RibbonPoints()), nv, ni, ni/3)
	for level := 0; level <= mesh.MaxIcosphereLevel; level++ {
		nv, ni = mesh.IcosphereSizes(level)
		fmt.Fprintf(w, "icosphere\tlevel=%d\t%d\t%d\t%d\n", level, nv, ni, ni/3)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "MODEL\tSTRIDE\tVERTICES\tINDICES\tRADIUS")
	for _, name := range sandbox.Names() {
		sb, err := sandbox.New(name)
		if err != nil {
			return err
		}
		m, ok := sb.(sandbox.Modeler)
		if !ok {
			continue
		}
		sb.Init()
		md := m.Model()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.3f\n",
			md.Name(), md.VertexStride(), md.VertexCount(), md.IndexCount(), md.BoundingRadius())
	}
	return w.Flush()
}

// cylinderResolution validates a -resolution flag value against the generator's range.
func cylinderResolution(v uint64) (uint32, error) {
	if v < mesh.MinCylinderResolution || v > math.MaxUint32 {
		return 0, fmt.Errorf("resolution %d outside [%d, %d]", v, mesh.MinCylinderResolution, uint64(math.MaxUint32))
	}
	return uint32(v), nil
}
