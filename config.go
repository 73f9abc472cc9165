package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig is the per-site default: which category it gathers, which
// duration tier to plan for and how many chefs it takes.
type SiteConfig struct {
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	TimeIdx  int      `yaml:"time_idx"`
	CrewSize int      `yaml:"crew_size"`
}

// Config holds optimizer parameters. Adjust these to change pool filtering,
// candidate reporting and the site table.
type Config struct {
	SpecialistThreshold int  `yaml:"specialist_threshold"` // chefs whose best category exceeds this are held back
	IncludeSpecialists  bool `yaml:"include_specialists"`  // put held-back specialists into the pool anyway
	CandidateMinPoints  int  `yaml:"candidate_min_points"` // minimum category points for a candidate entry
	CandidateLimit      int  `yaml:"candidate_limit"`      // candidates reported per pass
	DefaultDiskMaxLevel int  `yaml:"default_disk_max_level"`

	Sites        []SiteConfig  `yaml:"sites"`
	DefaultOrder PriorityOrder `yaml:"default_order"`

	Verbose bool `yaml:"verbose"` // print detailed progress to stderr
}

// DefaultConfig returns the standard parameters and site table.
func DefaultConfig() Config {
	return Config{
		SpecialistThreshold: 12,
		CandidateMinPoints:  2,
		CandidateLimit:      8,
		DefaultDiskMaxLevel: 3,
		Sites: []SiteConfig{
			{Name: "牧场", Category: CatMeat, TimeIdx: 3, CrewSize: 4},
			{Name: "鸡舍", Category: CatMeat, TimeIdx: 3, CrewSize: 4},
			{Name: "猪圈", Category: CatMeat, TimeIdx: 3, CrewSize: 4},
			{Name: "菜棚", Category: CatVegetable, TimeIdx: 3, CrewSize: 4},
			{Name: "菜地", Category: CatVegetable, TimeIdx: 3, CrewSize: 4},
			{Name: "森林", Category: CatVegetable, TimeIdx: 3, CrewSize: 4},
			{Name: "作坊", Category: CatCreation, TimeIdx: 3, CrewSize: 4},
			{Name: "池塘", Category: CatFish, TimeIdx: 4, CrewSize: 5},
		},
		DefaultOrder: DefaultPriorityOrder(),
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig. An empty path
// returns the defaults. A sites list in the file replaces the default table.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the site table and thresholds.
func (c *Config) Validate() error {
	var errs []error
	if c.CandidateLimit < 0 {
		errs = append(errs, fmt.Errorf("candidate_limit must be >= 0, got %d", c.CandidateLimit))
	}
	if c.DefaultDiskMaxLevel <= 0 {
		errs = append(errs, fmt.Errorf("default_disk_max_level must be > 0, got %d", c.DefaultDiskMaxLevel))
	}
	seen := make(map[string]bool, len(c.Sites))
	for i, s := range c.Sites {
		switch {
		case s.Name == "":
			errs = append(errs, fmt.Errorf("sites[%d]: missing name", i))
		case seen[s.Name]:
			errs = append(errs, fmt.Errorf("sites[%d]: duplicate site %q", i, s.Name))
		}
		seen[s.Name] = true
		if s.CrewSize <= 0 {
			errs = append(errs, fmt.Errorf("sites[%d] %s: crew_size must be > 0", i, s.Name))
		}
		if s.TimeIdx < 0 {
			errs = append(errs, fmt.Errorf("sites[%d] %s: time_idx must be >= 0", i, s.Name))
		}
	}
	return errors.Join(errs...)
}

// siteConfig returns the configured defaults for a site name.
func (c Config) siteConfig(name string) (SiteConfig, bool) {
	for _, s := range c.Sites {
		if s.Name == name {
			return s, true
		}
	}
	return SiteConfig{}, false
}

// siteNames lists configured site names in table order.
func (c Config) siteNames() []string {
	names := make([]string, len(c.Sites))
	for i, s := range c.Sites {
		names[i] = s.Name
	}
	return names
}
