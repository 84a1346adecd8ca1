package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

const (
	// EnvQuestions names the question resource when --questions is unset.
	EnvQuestions = "MCQUIZ_QUESTIONS"

	// EnvSeed fixes the shuffle seed when --seed is unset.
	EnvSeed = "MCQUIZ_SEED"

	// DefaultQuestions is read from the working directory.
	DefaultQuestions = "questions.json"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Questions is a file path, an http(s) URL, or "builtin".
	Questions string

	// Seed fixes the shuffle order. Zero means time-seeded.
	Seed uint64

	// Plain selects the line-oriented console renderer.
	Plain bool
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("questions", "q", "", fmt.Sprintf("Question resource: file, http(s) URL or \"builtin\" (overrides %s)", EnvQuestions))
	fs.Uint64("seed", 0, fmt.Sprintf("Shuffle seed, 0 for random (overrides %s)", EnvSeed))
	fs.Bool("plain", false, "Use the plain line-oriented interface instead of the full-screen UI")
}

// Resolve applies flag, then environment, then default precedence.
// getenv is usually os.Getenv.
func Resolve(fs *pflag.FlagSet, getenv func(string) string) (Config, error) {
	var cfg Config

	cfg.Questions = DefaultQuestions
	if v := getenv(EnvQuestions); v != "" {
		cfg.Questions = v
	}
	if fs.Changed("questions") {
		v, err := fs.GetString("questions")
		if err != nil {
			return Config{}, err
		}
		cfg.Questions = v
	}

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if fs.Changed("seed") {
		seed, err := fs.GetUint64("seed")
		if err != nil {
			return Config{}, err
		}
		cfg.Seed = seed
	}

	plain, err := fs.GetBool("plain")
	if err != nil {
		return Config{}, err
	}
	cfg.Plain = plain

	return cfg, nil
}

// FromEnv resolves fs against the process environment.
func FromEnv(fs *pflag.FlagSet) (Config, error) {
	return Resolve(fs, os.Getenv)
}
