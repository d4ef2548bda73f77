package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/super-goalie/audio"
	"github.com/lixenwraith/super-goalie/config"
	"github.com/lixenwraith/super-goalie/engine"
	"github.com/lixenwraith/super-goalie/events"
	"github.com/lixenwraith/super-goalie/match"
	"github.com/lixenwraith/super-goalie/parameter"
	"github.com/lixenwraith/super-goalie/render"
	"github.com/lixenwraith/super-goalie/vmath"
)

// aimStep is how far one arrow press moves the aim cursor (m)
const aimStep = 0.25

type options struct {
	configPath string
	headless   bool
	auto       bool
	shots      int
	seed       uint64
	logPath    string
	level      string
	maxSteps   int
	noAudio    bool
	dumpConfig bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("goalie", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	fs.BoolVar(&opts.headless, "headless", false, "run the shoot-out without a terminal UI and print the result")
	fs.BoolVar(&opts.auto, "auto", false, "kick automatically in the terminal UI")
	fs.IntVar(&opts.shots, "shots", 0, "kicks per shooter (overrides config)")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed (overrides config)")
	fs.StringVar(&opts.logPath, "log", "", "log file (default: stderr when headless, discarded otherwise)")
	fs.StringVar(&opts.level, "level", "info", "log level: debug, info, warn, error")
	fs.IntVar(&opts.maxSteps, "max-steps", 0, "headless step limit, 0 for none")
	fs.BoolVar(&opts.noAudio, "no-audio", false, "disable sound")
	fs.BoolVar(&opts.dumpConfig, "dump-config", false, "print the effective configuration and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "goalie: %v\n", err)
		return 1
	}
	if opts.dumpConfig {
		if err := cfg.Write(stdout); err != nil {
			fmt.Fprintf(stderr, "goalie: %v\n", err)
			return 1
		}
		return 0
	}

	logger, closeLog, err := newLogger(opts, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "goalie: %v\n", err)
		return 1
	}
	defer closeLog()

	if opts.headless {
		return runHeadless(cfg, opts, logger, stdout, stderr)
	}
	if err := runTerminal(cfg, opts, logger); err != nil {
		fmt.Fprintf(stderr, "goalie: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if opts.shots > 0 {
		cfg.Match.ShotsPerPlayer = opts.shots
	}
	if opts.seed != 0 {
		cfg.Sim.Seed = opts.seed
	}
	if opts.noAudio {
		cfg.Sim.Audio = false
	}
	cfg.Match.Auto = opts.headless || opts.auto
	return cfg, cfg.Validate()
}

func newLogger(opts options, stderr io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.level)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch {
	case opts.logPath != "":
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, handlerOpts)), func() { f.Close() }, nil
	case opts.headless:
		return slog.New(slog.NewTextHandler(stderr, handlerOpts)), func() {}, nil
	default:
		// The terminal UI owns the screen
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
}

func runHeadless(cfg config.Config, opts options, logger *slog.Logger, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	world, err := engine.NewWorld(cfg, engine.Options{Logger: logger})
	if err != nil {
		fmt.Fprintf(stderr, "goalie: %v\n", err)
		return 1
	}

	start := time.Now()
	steps, err := world.Run(ctx, opts.maxSteps)
	if err != nil {
		fmt.Fprintf(stderr, "goalie: %v\n", err)
		return 1
	}
	logger.Info("simulation complete",
		slog.Int("steps", steps),
		slog.Duration("simulated", world.Elapsed()),
		slog.Duration("wall", time.Since(start)),
	)
	logger.LogAttrs(ctx, slog.LevelDebug, "final status", world.Status().Snapshot()...)
	printSummary(stdout, world.Scoreboard())
	return 0
}

func printSummary(w io.Writer, board *match.Scoreboard) {
	goals := board.Goals()
	for _, s := range []int{match.ShooterA, match.ShooterB} {
		outcomes := make([]string, 0, board.ShotsPerPlayer())
		for _, o := range board.Results(s) {
			outcomes = append(outcomes, o.String())
		}
		fmt.Fprintf(w, "shooter %c: %d  [%s]\n", 'A'+rune(s), goals[s], strings.Join(outcomes, " "))
	}
	switch winner := board.Winner(); winner {
	case -1:
		fmt.Fprintf(w, "final: %d - %d, draw\n", goals[match.ShooterA], goals[match.ShooterB])
	default:
		fmt.Fprintf(w, "final: %d - %d, shooter %c wins\n", goals[match.ShooterA], goals[match.ShooterB], 'A'+rune(winner))
	}
}

func runTerminal(cfg config.Config, opts options, logger *slog.Logger) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			err = fmt.Errorf("crashed: %v\n%s", r, debug.Stack())
		}
	}()

	var sound events.Handler[events.Frame]
	if cfg.Sim.Audio {
		sm := audio.NewSoundManager(logger)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", slog.Any("error", err))
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	world, err := engine.NewWorld(cfg, engine.Options{Logger: logger, Sound: sound})
	if err != nil {
		return err
	}
	renderer := render.NewTerminalRenderer(screen)
	return newSession(world, renderer, screen).loop()
}

// session is the interactive frame loop: input, fixed steps, render
type session struct {
	world    *engine.World
	renderer *render.TerminalRenderer
	screen   tcell.Screen

	clock *engine.PausableClock
	acc   *engine.Accumulator
	last  time.Duration

	aim   vmath.Vec3F
	aimOn bool
}

func newSession(w *engine.World, r *render.TerminalRenderer, s tcell.Screen) *session {
	return &session{
		world:    w,
		renderer: r,
		screen:   s,
		clock:    engine.NewPausableClock(nil),
		acc:      engine.NewAccumulator(w.StepDuration(), parameter.MaxStepsPerFrame),
		aim:      vmath.Vec3F{Y: w.Config().Goal.Height / 2},
	}
}

// eventSource is the polling half of tcell.Screen
type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards terminal events until the source closes or done is closed
func pollEvents(src eventSource, out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (s *session) loop() error {
	input := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(s.screen, input, done)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-input:
			if !ok || !s.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			if err := s.frame(); err != nil {
				return err
			}
		}
	}
}

func (s *session) frame() error {
	now := s.clock.Elapsed()
	steps := s.acc.Add(now - s.last)
	s.last = now
	for range steps {
		if err := s.world.Step(); err != nil {
			return err
		}
	}

	var aim *vmath.Vec3F
	if s.aimOn {
		aim = &s.aim
	}
	s.renderer.RenderFrame(s.world, aim)
	return nil
}

// handleInput returns false when the user quits
func (s *session) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			s.moveAim(0, aimStep)
		case tcell.KeyDown:
			s.moveAim(0, -aimStep)
		case tcell.KeyLeft:
			s.moveAim(aimStep, 0)
		case tcell.KeyRight:
			s.moveAim(-aimStep, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.shoot()
			case 'p':
				s.world.HUD().Paused.Store(s.clock.Toggle())
			case 'c':
				s.aimOn = false
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.renderer.Resize()
	}
	return true
}

// moveAim shifts the goal-local aim; left on screen is goal-local +X
func (s *session) moveAim(dx, dy float64) {
	cfg := s.world.Config()
	s.aimOn = true
	s.aim.X = vmath.Clamp(s.aim.X+dx, -cfg.Goal.Width/2-1, cfg.Goal.Width/2+1)
	s.aim.Y = vmath.Clamp(s.aim.Y+dy, 0.1, cfg.Goal.Height+0.5)
}

func (s *session) shoot() {
	if s.clock.IsPaused() {
		return
	}
	if !s.aimOn {
		s.world.RequestShot(nil)
		return
	}
	target := s.world.Goal().Transform.TransformPoint(s.aim)
	s.world.RequestShot(&target)
}
