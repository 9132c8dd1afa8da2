package config

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagBackend = flag.String("backend", "", "Display backend: terminal or window")
	flagSeed    = &optionalInt64{}
	flagBuilder = flag.String("builder", "", "Terrain builder: noise or flat")
	flagSize    = flag.String("size", "", "World size as WxDxH")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagLayer   = flag.Int("layer", -1, "Starting layer")
)

func init() {
	flag.Var(flagSeed, "seed", "Terrain seed (default: the configured seed)")
}

// optionalInt64 is an int64 flag that remembers whether it was given, so
// every value including zero can be passed explicitly.
type optionalInt64 struct {
	value int64
	set   bool
}

func (o *optionalInt64) String() string {
	if o == nil || !o.set {
		return ""
	}
	return strconv.FormatInt(o.value, 10)
}

func (o *optionalInt64) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Display.Backend = *flagBackend
	}
	if flagSeed.set {
		cfg.Terrain.Seed = flagSeed.value
	}
	if *flagBuilder != "" {
		cfg.World.Builder = *flagBuilder
	}
	if *flagSize != "" {
		w, d, h, err := ParseSize(*flagSize)
		if err != nil {
			return err
		}
		cfg.World.Width, cfg.World.Depth, cfg.World.Height = w, d, h
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
	if *flagLayer >= 0 {
		cfg.Camera.StartLayer = *flagLayer
	}
	return nil
}

// ParseSize parses a "WxDxH" world size.
func ParseSize(s string) (w, d, h int, err error) {
	var rest string
	n, _ := fmt.Sscanf(s, "%dx%dx%d%s", &w, &d, &h, &rest)
	if n != 3 {
		return 0, 0, 0, fmt.Errorf("%w: size %q is not WxDxH", ErrInvalid, s)
	}
	return w, d, h, nil
}

// SeedFlag returns the -seed value and whether it was given.
func SeedFlag() (int64, bool) {
	return flagSeed.value, flagSeed.set
}
