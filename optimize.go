package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Status classifies whether a pass had anything to work with.
type Status int

const (
	StatusOK Status = iota
	StatusNoData
	StatusNoEligibleWorkers
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no_data"
	case StatusNoEligibleWorkers:
		return "no_eligible_workers"
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

var (
	ErrNoData            = errors.New("no game data or archive loaded")
	ErrNoEligibleWorkers = errors.New("no owned chefs eligible for gathering")
)

// Result is the outcome of one optimization pass.
type Result struct {
	RunID       string        `json:"runId"`
	Status      Status        `json:"status"`
	Order       PriorityOrder `json:"order"` // site order as processed
	PoolSize    int           `json:"poolSize"`
	Owned       int           `json:"owned"`
	Assignments []Assignment  `json:"assignments"`
	Leftover    []Member      `json:"-"`
	Candidates  []Candidate   `json:"candidates"`
	TotalRate   float64       `json:"totalRate"`
	TimeMs      int64         `json:"timeMs"`
}

// Err maps a non-OK status to its sentinel error.
func (r *Result) Err() error {
	switch r.Status {
	case StatusNoData:
		return ErrNoData
	case StatusNoEligibleWorkers:
		return ErrNoEligibleWorkers
	}
	return nil
}

// Deficits returns the assignments whose crews could not unlock every material.
func (r *Result) Deficits() []*Assignment {
	var out []*Assignment
	for i := range r.Assignments {
		if !r.Assignments[i].SkillOK() {
			out = append(out, &r.Assignments[i])
		}
	}
	return out
}

// buildPool valuates owned chefs and drops specialists unless configured to
// keep them. It returns the pool and the number of owned chefs.
func buildPool(chefs []Chef, cfg Config) ([]Member, int) {
	var pool []Member
	owned := 0
	for i := range chefs {
		c := &chefs[i]
		if !c.Got {
			continue
		}
		owned++
		if !cfg.IncludeSpecialists && c.MaxPoints() > cfg.SpecialistThreshold {
			continue
		}
		pool = append(pool, Member{Chef: c, Value: Valuate(c)})
	}
	return pool, owned
}

// Optimize runs one full pass: build the pool, staff sites in priority
// order, then rank leftover chefs as candidates.
func Optimize(gd *GameData, order PriorityOrder, cfg Config) *Result {
	start := time.Now()
	res := &Result{RunID: uuid.NewString()}

	if gd == nil || len(gd.Chefs) == 0 || len(gd.Sites) == 0 {
		res.Status = StatusNoData
		return res
	}

	pool, owned := buildPool(gd.Chefs, cfg)
	res.PoolSize, res.Owned = len(pool), owned
	if cfg.Verbose {
		fmt.Fprintf(logw(), "[pool] owned=%d eligible=%d specialists=%v\n", owned, len(pool), cfg.IncludeSpecialists)
	}
	if len(pool) == 0 {
		res.Status = StatusNoEligibleWorkers
		return res
	}

	sites := make([]*Site, len(gd.Sites))
	for i := range gd.Sites {
		sites[i] = &gd.Sites[i]
	}
	order.SortSites(sites)
	res.Order = make(PriorityOrder, len(sites))
	for i, s := range sites {
		res.Order[i] = s.Name
	}

	res.Assignments, res.Leftover = AssignSites(sites, pool, cfg.Verbose)
	for i := range res.Assignments {
		a := &res.Assignments[i]
		res.TotalRate += a.Rate
		if cfg.Verbose {
			fmt.Fprintf(logw(), "[site] %s skill=%d/%d gain=%.1f%% rate=%.2f/h swaps=%d\n",
				a.Name, a.TotalSkill, a.MaxSkill, a.TotalGain, a.Rate, a.Swaps)
		}
	}
	res.Candidates = RankCandidates(res.Leftover, res.Assignments, cfg)
	res.TimeMs = time.Since(start).Milliseconds()

	if cfg.Verbose {
		fmt.Fprintf(logw(), "[done] sites=%d deficits=%d candidates=%d rate=%.2f/h\n",
			len(res.Assignments), len(res.Deficits()), len(res.Candidates), res.TotalRate)
	}
	return res
}

// ── Session ─────────────────────────────────────────────────────────

// Session owns the priority order between passes and exposes the run and
// promote operations a front end triggers.
type Session struct {
	data  *GameData
	cfg   Config
	order PriorityOrder
	last  *Result
}

// NewSession starts a session on the configured default order.
func NewSession(gd *GameData, cfg Config) *Session {
	return &Session{data: gd, cfg: cfg, order: cfg.defaultOrder()}
}

// Order returns a copy of the current priority order.
func (s *Session) Order() PriorityOrder { return append(PriorityOrder(nil), s.order...) }

// SetOrder replaces the priority order used by the next run.
func (s *Session) SetOrder(order PriorityOrder) { s.order = append(PriorityOrder(nil), order...) }

// Config returns the session's configuration.
func (s *Session) Config() Config { return s.cfg }

// Last returns the most recent result, or nil before the first run.
func (s *Session) Last() *Result { return s.last }

// Run recomputes a full pass, optionally resetting the order to default.
func (s *Session) Run(reset bool) *Result {
	if reset {
		s.order = s.cfg.defaultOrder()
	}
	s.last = Optimize(s.data, s.order, s.cfg)
	if s.last.Status == StatusOK {
		s.order = s.last.Order
	}
	return s.last
}

// Promote moves the site at position i of the current order one step up
// and re-runs. Promote(0) leaves the order unchanged.
func (s *Session) Promote(i int) *Result {
	s.order = s.order.Promote(i)
	return s.Run(false)
}

// SetIncludeSpecialists toggles specialists in the pool and re-runs when a
// result is already on screen.
func (s *Session) SetIncludeSpecialists(on bool) *Result {
	s.cfg.IncludeSpecialists = on
	if s.last == nil {
		return nil
	}
	return s.Run(false)
}

func (c Config) defaultOrder() PriorityOrder {
	if len(c.DefaultOrder) > 0 {
		return append(PriorityOrder(nil), c.DefaultOrder...)
	}
	return DefaultPriorityOrder()
}

func logw() *os.File { return os.Stderr }
