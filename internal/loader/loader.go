package loader

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/golang/glog"

	"github.com/abhisek/mcquiz/internal/quiz"
)

// Loader produces the shuffled question set for one session.
type Loader struct {
	source Source
	rng    *rand.Rand
}

// Option configures a Loader.
type Option func(*Loader)

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(l *Loader) {
		l.rng = r
	}
}

// WithSeed makes the shuffle reproducible. A zero seed keeps the default
// time-seeded source.
func WithSeed(seed uint64) Option {
	return func(l *Loader) {
		if seed != 0 {
			l.rng = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

// New creates a Loader reading from src.
func New(src Source, opts ...Option) *Loader {
	l := &Loader{source: src}
	for _, opt := range opts {
		opt(l)
	}
	if l.rng == nil {
		now := uint64(time.Now().UnixNano())
		l.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return l
}

// Source returns the resource this loader reads.
func (l *Loader) Source() Source {
	return l.source
}

// Load fetches, parses and shuffles the question set. Every failure is a
// *LoadError.
func (l *Loader) Load(ctx context.Context) (quiz.QuestionSet, error) {
	qs, err := Read(ctx, l.source)
	if err != nil {
		return nil, err
	}

	Shuffle(qs, l.rng)
	glog.V(2).Infof("loaded %d questions from %s", len(qs), l.source.Name())
	return qs, nil
}

// Read fetches and parses src, keeping the resource order.
func Read(ctx context.Context, src Source) (quiz.QuestionSet, error) {
	name := src.Name()

	data, err := src.Fetch(ctx)
	if err != nil {
		glog.Errorf("fetch %s: %v", name, err)
		return nil, &LoadError{Source: name, Err: err}
	}
	glog.V(2).Infof("fetched %s (%d bytes)", name, len(data))

	qs, err := Parse(data, FormatFor(name))
	if err != nil {
		glog.Errorf("parse %s: %v", name, err)
		return nil, &LoadError{Source: name, Err: err}
	}
	return qs, nil
}

// Shuffle permutes qs in place with a Fisher–Yates shuffle.
func Shuffle(qs quiz.QuestionSet, r *rand.Rand) {
	r.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
