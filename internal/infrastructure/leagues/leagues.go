// Package leagues loads per-league budget profiles from a YAML file with
// environment overrides.
package leagues

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// EnvPrefix is the prefix of league profile overrides. A double underscore
// separates key levels: LEAGUEBUDGET_LEAGUES__123__START_BUDGET.
const EnvPrefix = "LEAGUEBUDGET_"

// DateLayout is the layout of season_start values.
const DateLayout = "2006-01-02"

// DefaultStartBudget is used when neither the league nor the file sets one.
var DefaultStartBudget = decimal.NewFromInt(50_000_000)

type leagueEntry struct {
	Name        string `koanf:"name"`
	StartBudget string `koanf:"start_budget"`
	SeasonStart string `koanf:"season_start"`
}

type document struct {
	DefaultStartBudget string                 `koanf:"default_start_budget"`
	DefaultSeasonStart string                 `koanf:"default_season_start"`
	Leagues            map[string]leagueEntry `koanf:"leagues"`
}

// Registry holds the configured league profiles.
type Registry struct {
	profiles map[string]domain.LeagueProfile
	fallback *domain.LeagueProfile
}

// Load reads profiles from path, then applies environment overrides. A
// missing file is not an error; profiles may come from the environment alone.
func Load(path string) (*Registry, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load league profiles from %s: %w", path, err)
			}
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load league profile overrides: %w", err)
	}

	var doc document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode league profiles: %w", err)
	}

	return fromDocument(doc)
}

func fromDocument(doc document) (*Registry, error) {
	defaultBudget := DefaultStartBudget
	if doc.DefaultStartBudget != "" {
		d, err := decimal.NewFromString(doc.DefaultStartBudget)
		if err != nil {
			return nil, fmt.Errorf("invalid default_start_budget %q: %w", doc.DefaultStartBudget, err)
		}
		defaultBudget = d
	}

	r := &Registry{profiles: make(map[string]domain.LeagueProfile, len(doc.Leagues))}

	if doc.DefaultSeasonStart != "" {
		start, err := time.Parse(DateLayout, doc.DefaultSeasonStart)
		if err != nil {
			return nil, fmt.Errorf("invalid default_season_start %q: %w", doc.DefaultSeasonStart, err)
		}
		r.fallback = &domain.LeagueProfile{StartBudget: defaultBudget, SeasonStart: start}
	}

	for id, entry := range doc.Leagues {
		profile := domain.LeagueProfile{ID: id, Name: entry.Name, StartBudget: defaultBudget}

		if entry.StartBudget != "" {
			d, err := decimal.NewFromString(entry.StartBudget)
			if err != nil {
				return nil, fmt.Errorf("league %s: invalid start_budget %q: %w", id, entry.StartBudget, err)
			}
			profile.StartBudget = d
		}

		switch {
		case entry.SeasonStart != "":
			start, err := time.Parse(DateLayout, entry.SeasonStart)
			if err != nil {
				return nil, fmt.Errorf("league %s: invalid season_start %q: %w", id, entry.SeasonStart, err)
			}
			profile.SeasonStart = start
		case r.fallback != nil:
			profile.SeasonStart = r.fallback.SeasonStart
		default:
			return nil, fmt.Errorf("league %s: season_start is required", id)
		}

		r.profiles[id] = profile
	}

	return r, nil
}

// Get returns the profile of leagueID. Leagues without an entry use the file
// defaults when a default season start is configured.
func (r *Registry) Get(leagueID string) (domain.LeagueProfile, error) {
	if p, ok := r.profiles[leagueID]; ok {
		return p, nil
	}
	if r.fallback != nil {
		p := *r.fallback
		p.ID = leagueID
		return p, nil
	}
	return domain.LeagueProfile{}, fmt.Errorf("%w: %s", domain.ErrLeagueNotFound, leagueID)
}

// IDs returns the configured league ids.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	return ids
}
