package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	// TPS is the host loop rate. Zero derives it from the sim's tick interval.
	TPS  int
	Seed int64
	Set  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, sphere)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (0 = fit the window)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host ticks per second (0 = match the sim's cadence)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "reset seed (0 = built-in pattern / first frame)")
	fs.Var(&c.Set, "set", "sim option in key=value form (repeatable)")
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the options as a map. Later values win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
