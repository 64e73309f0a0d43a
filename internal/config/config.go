package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go-pairs/internal/deck"
	"go-pairs/internal/history"

	"github.com/joho/godotenv"
)

// Store kinds accepted by -store.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds everything main needs to wire the game.
type Config struct {
	// Mode is the session to start immediately; empty shows the mode picker.
	Mode      string
	Store     string
	DataDir   string
	LogLevel  string
	LogFile   string
	NoHistory bool
	// Seed fixes the shuffle when non-zero.
	Seed int64
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	dir, err := history.DefaultDir()
	if err != nil {
		dir = "."
	}
	return Config{
		Store:    StoreFile,
		DataDir:  dir,
		LogLevel: "info",
	}
}

// FromEnv overlays GOPAIRS_* variables on c, loading envFile first when it
// exists.
func FromEnv(c Config, envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return c, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	if v := os.Getenv("GOPAIRS_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("GOPAIRS_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("GOPAIRS_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("GOPAIRS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("GOPAIRS_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("GOPAIRS_NO_HISTORY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("GOPAIRS_NO_HISTORY: %w", err)
		}
		c.NoHistory = b
	}
	return c, nil
}

// RegisterFlags binds long and short flags to c on fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "Start straight into a mode: letters or shapes")
	fs.StringVar(&c.Mode, "m", c.Mode, "Start straight into a mode (shorthand)")

	fs.StringVar(&c.Store, "store", c.Store, "History backend: file, sqlite or memory")
	fs.StringVar(&c.Store, "s", c.Store, "History backend (shorthand)")

	fs.StringVar(&c.DataDir, "data-dir", c.DataDir, "Directory for history and logs")
	fs.StringVar(&c.DataDir, "d", c.DataDir, "Directory for history and logs (shorthand)")

	fs.BoolVar(&c.NoHistory, "no-history", c.NoHistory, "Keep results in memory only")
	fs.BoolVar(&c.NoHistory, "nh", c.NoHistory, "Keep results in memory only (shorthand)")

	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: trace, debug, info, warn, error, disabled")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Log file (default <data-dir>/go-pairs.log)")

	fs.Int64Var(&c.Seed, "seed", c.Seed, "Fix the shuffle seed (0 = random)")
}

// Validate checks enumerated fields and fills derived defaults.
func (c *Config) Validate() error {
	if c.Mode != "" {
		if _, err := deck.ParseMode(c.Mode); err != nil {
			return err
		}
	}

	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (use file, sqlite or memory)", c.Store)
	}
	if c.NoHistory {
		c.Store = StoreMemory
	}

	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.DataDir, "go-pairs.log")
	}
	return nil
}

// StartMode returns the mode to start in and whether one was requested.
func (c Config) StartMode() (deck.Mode, bool) {
	if c.Mode == "" {
		return deck.Letters, false
	}
	m, err := deck.ParseMode(c.Mode)
	if err != nil {
		return deck.Letters, false
	}
	return m, true
}

// Load resolves defaults, the environment and command-line args, in that
// order of increasing precedence.
func Load(args []string, envFile string) (Config, error) {
	c, err := FromEnv(Defaults(), envFile)
	if err != nil {
		return c, err
	}

	fs := flag.NewFlagSet("go-pairs", flag.ContinueOnError)
	c.RegisterFlags(fs)
	fs.Usage = func() { usage(fs.Output()) }
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: go-pairs [options]\n")
	fmt.Fprintf(w, "\nOptions:\n")
	fmt.Fprintf(w, "    -m, --mode=MODE        Start straight into letters or shapes\n")
	fmt.Fprintf(w, "    -s, --store=KIND       History backend: file, sqlite or memory\n")
	fmt.Fprintf(w, "    -d, --data-dir=DIR     Directory for history and logs\n")
	fmt.Fprintf(w, "   -nh, --no-history       Keep results in memory only\n")
	fmt.Fprintf(w, "        --log-level=LEVEL  trace, debug, info, warn, error or disabled\n")
	fmt.Fprintf(w, "        --log-file=PATH    Log file (default <data-dir>/go-pairs.log)\n")
	fmt.Fprintf(w, "        --seed=N           Fix the shuffle seed\n")
	fmt.Fprintf(w, "    -h, --help             Show this help message\n")
	fmt.Fprintf(w, "\nEnvironment (also read from .env): GOPAIRS_MODE, GOPAIRS_STORE,\n")
	fmt.Fprintf(w, "GOPAIRS_DATA_DIR, GOPAIRS_LOG_LEVEL, GOPAIRS_LOG_FILE, GOPAIRS_NO_HISTORY\n")
}
