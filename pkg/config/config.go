// Package config resolves stored setting values against registered schemas.
//
// A values file holds one map per group, e.g.
//
//	statusbars:
//	  barWidth: 25
//
// or, in properties form, "statusbars.barWidth=25". Keys are matched
// case-insensitively against each setting's key or stored key.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/isometry/statusbars/pkg/sbctx"
	"github.com/isometry/statusbars/pkg/schema"
	"github.com/isometry/statusbars/pkg/utils"
)

var (
	// ErrUnknownGroup marks values stored under a group nothing registered.
	ErrUnknownGroup = errors.New("unknown group")

	// ErrDuplicateValue marks a setting stored under both its key and stored key.
	ErrDuplicateValue = errors.New("value set more than once")
)

// SettingError wraps an error with the group and key it concerns.
type SettingError struct {
	Group string
	Key   string
	Err   error
}

func (e SettingError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Group, e.Err)
	}
	return fmt.Sprintf("%s/%s: %v", e.Group, e.Key, e.Err)
}

func (e SettingError) Unwrap() error {
	return e.Err
}

// LoadResult holds the resolved groups and every problem found while loading.
type LoadResult struct {
	// ConfigFile is the values file read, or empty when none was found.
	ConfigFile string

	// ValidationErrors lists values that were rejected. Rejected values fall
	// back to their defaults.
	ValidationErrors []error

	groups map[string]*Resolved
}

// Group returns the resolved values of one group.
func (r *LoadResult) Group(id string) (*Resolved, bool) {
	g, ok := r.groups[id]
	return g, ok
}

// Groups returns every resolved group ordered by id.
func (r *LoadResult) Groups() []*Resolved {
	ids := make([]string, 0, len(r.groups))
	for id := range r.groups {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	groups := make([]*Resolved, len(ids))
	for i, id := range ids {
		groups[i] = r.groups[id]
	}
	return groups
}

// OverrideCounts returns the number of non-default values per group.
func (r *LoadResult) OverrideCounts() map[string]int {
	counts := make(map[string]int, len(r.groups))
	for id, g := range r.groups {
		counts[id] = len(g.Overrides())
	}
	return counts
}

// Load reads the values file named configName from the first of configPaths
// that holds one, and resolves it against every registered schema.
// A missing file is not an error: every group resolves to its defaults.
// In strict mode unknown groups and keys are reported as validation errors;
// otherwise they are logged and skipped.
func Load(ctx context.Context, configPaths []string, configName string, strict bool) (*LoadResult, error) {
	v := newViper(configPaths, configName)
	return load(ctx, v, strict)
}

// Watch loads the values file and loads it again each time it changes,
// passing every result to fn. It blocks until ctx is done.
func Watch(ctx context.Context, configPaths []string, configName string, strict bool, fn func(*LoadResult, error)) error {
	log := utils.ContextLogger(ctx, slog.String("context", "config"))

	v := newViper(configPaths, configName)
	result, err := load(ctx, v, strict)
	if err != nil {
		fn(nil, err)
		return err
	}
	if result.ConfigFile == "" {
		fn(result, nil)
		return errors.New("no values file to watch")
	}

	// fn must return before the watcher starts, so calls never overlap
	fn(result, nil)
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Debug("config change", slog.String("file", e.Name), slog.String("op", e.Op.String()))
		fn(load(ctx, v, strict))
	})
	v.WatchConfig()

	<-ctx.Done()
	return nil
}

func newViper(configPaths []string, configName string) *viper.Viper {
	v := sbctx.NewViper()
	if configPaths == nil {
		configPaths = []string{"."}
	}
	for _, configPath := range configPaths {
		v.AddConfigPath(configPath)
	}
	v.SetConfigName(configName)
	return v
}

func load(ctx context.Context, v *viper.Viper, strict bool) (*LoadResult, error) {
	log := utils.ContextLogger(ctx, slog.String("context", "config"))
	log.Debug("loading values")

	result := &LoadResult{}
	values := map[string]any{}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Error("error reading values", "error", err)
			return nil, errors.Wrap(err, "failed to read values file")
		}
		log.Info("no values file found - using defaults")
	} else {
		result.ConfigFile = v.ConfigFileUsed()
		log = log.With(slog.String("configFile", result.ConfigFile))

		resolved, err := resolveIncludes(v.AllSettings(), filepath.Dir(result.ConfigFile), nil)
		if err != nil {
			log.Error("error resolving includes", "error", err)
			return nil, err
		}
		values = resolved
	}

	result.groups, result.ValidationErrors = Harden(ctx, values, strict)
	log.Info("values loaded", slog.Any("overrides", result.OverrideCounts()), slog.Int("errors", len(result.ValidationErrors)))

	return result, nil
}

// Harden resolves raw values against every registered schema. Each
// registered group is present in the result, defaulted where unset.
func Harden(ctx context.Context, values map[string]any, strict bool) (map[string]*Resolved, []error) {
	log := utils.ContextLogger(ctx, slog.String("context", "config"))

	var errs []error
	report := func(err error) {
		if strict {
			errs = append(errs, err)
		} else {
			log.Warn("skipping value", "error", err)
		}
	}

	raw := groupValues(values)
	groups := make(map[string]*Resolved)
	for _, id := range schema.Groups() {
		s, _ := schema.Lookup(id)
		groups[id] = newResolved(s)
	}

	for _, id := range sortedKeys(raw) {
		g := matchGroup(groups, id)
		if g == nil {
			report(SettingError{Group: id, Err: ErrUnknownGroup})
			continue
		}
		log := log.With(slog.String("group", g.schema.GroupID()))

		settings, ok := raw[id].(map[string]any)
		if !ok {
			errs = append(errs, SettingError{Group: g.schema.GroupID(), Err: errors.Errorf("expected a map of settings, got %T", raw[id])})
			continue
		}

		for _, name := range sortedKeys(settings) {
			setting, ok := g.schema.Lookup(name)
			if !ok {
				report(SettingError{Group: g.schema.GroupID(), Key: name, Err: &schema.UnknownKeyError{Group: g.schema.GroupID(), Key: name}})
				continue
			}
			if prior, seen := g.stored[setting.Key]; seen {
				errs = append(errs, SettingError{Group: g.schema.GroupID(), Key: setting.Key, Err: errors.Wrapf(ErrDuplicateValue, "as %s and %s", prior, name)})
				continue
			}

			value, err := g.schema.Validate(setting.Key, settings[name])
			if err != nil {
				errs = append(errs, SettingError{Group: g.schema.GroupID(), Key: setting.Key, Err: err})
				continue
			}
			log.Debug("resolved", slog.String("key", setting.Key), slog.Any("value", value))
			g.values[setting.Key] = value
			g.stored[setting.Key] = name
		}
	}

	return groups, errs
}

// groupValues folds flat "group.key" entries into per-group maps.
func groupValues(values map[string]any) map[string]any {
	grouped := make(map[string]any, len(values))
	put := func(group string, settings map[string]any) {
		existing, ok := grouped[group].(map[string]any)
		if !ok {
			existing = map[string]any{}
		}
		grouped[group] = mergeValues(existing, settings)
	}

	for _, k := range sortedKeys(values) {
		v := values[k]
		if group, key, flat := strings.Cut(k, "."); flat {
			put(group, map[string]any{key: v})
			continue
		}
		if settings, ok := v.(map[string]any); ok {
			put(k, settings)
			continue
		}
		grouped[k] = v
	}
	return grouped
}

func matchGroup(groups map[string]*Resolved, id string) *Resolved {
	if g, ok := groups[id]; ok {
		return g
	}
	for name, g := range groups {
		if strings.EqualFold(name, id) {
			return g
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
