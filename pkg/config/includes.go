package config

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/isometry/statusbars/pkg/sbctx"
)

// IncludesKey lists files to merge beneath the map it appears in.
const IncludesKey = "includes"

// includeEntry records one file on the include chain.
type includeEntry struct {
	Path string
	Hash string
}

// includeChain is the chain of files being included, outermost first.
// Loops are detected by content hash, so the same file reached through
// different relative paths is still caught.
type includeChain []includeEntry

func contentHash(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:8])
}

func (c includeChain) contains(hash string) bool {
	return slices.ContainsFunc(c, func(e includeEntry) bool {
		return e.Hash == hash
	})
}

func (c includeChain) push(path, hash string) includeChain {
	return append(slices.Clip(c), includeEntry{Path: path, Hash: hash})
}

func (c includeChain) describe(loopPath string) string {
	parts := make([]string, 0, len(c)+1)
	for _, entry := range c {
		parts = append(parts, entry.Path)
	}
	return strings.Join(append(parts, loopPath+" (duplicate content)"), " -> ")
}

// resolveIncludes merges every "includes" list found in values, at any map
// depth. Included files merge in order; the including map wins over them.
// Paths are relative to dir and name a file without its extension.
func resolveIncludes(values map[string]any, dir string, chain includeChain) (map[string]any, error) {
	merged := make(map[string]any)

	if raw, ok := values[IncludesKey]; ok {
		paths, ok := raw.([]any)
		if !ok {
			return nil, errors.New("includes must be a list")
		}
		for _, p := range paths {
			path, ok := p.(string)
			if !ok {
				return nil, errors.Errorf("include path must be a string, got %T", p)
			}

			included, includedDir, hash, err := readInclude(filepath.Join(dir, path))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to load include %s", path)
			}
			if chain.contains(hash) {
				return nil, errors.Errorf("include loop detected: %s", chain.describe(path))
			}

			resolved, err := resolveIncludes(included, includedDir, chain.push(path, hash))
			if err != nil {
				return nil, err
			}
			merged = mergeValues(merged, resolved)
		}
	}

	local := make(map[string]any, len(values))
	for k, v := range values {
		if k == IncludesKey {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			resolved, err := resolveIncludes(nested, dir, chain)
			if err != nil {
				return nil, errors.Wrapf(err, "in %s", k)
			}
			v = resolved
		}
		local[k] = v
	}

	return mergeValues(merged, local), nil
}

// readInclude reads a values file, letting viper pick the format by extension.
func readInclude(pathWithoutExt string) (map[string]any, string, string, error) {
	v := sbctx.NewViper()
	v.AddConfigPath(filepath.Dir(pathWithoutExt))
	v.SetConfigName(filepath.Base(pathWithoutExt))

	if err := v.ReadInConfig(); err != nil {
		return nil, "", "", err
	}

	content, err := os.ReadFile(v.ConfigFileUsed())
	if err != nil {
		return nil, "", "", err
	}

	return v.AllSettings(), filepath.Dir(v.ConfigFileUsed()), contentHash(content), nil
}

// mergeValues returns dst overlaid with src. Maps merge recursively and
// lists concatenate; any other value in src replaces dst.
func mergeValues(dst, src map[string]any) map[string]any {
	result := maps.Clone(dst)
	if result == nil {
		result = make(map[string]any, len(src))
	}

	for k, v := range src {
		switch srcVal := v.(type) {
		case map[string]any:
			if dstMap, ok := result[k].(map[string]any); ok {
				result[k] = mergeValues(dstMap, srcVal)
				continue
			}
		case []any:
			if dstList, ok := result[k].([]any); ok {
				result[k] = slices.Concat(dstList, srcVal)
				continue
			}
		}
		result[k] = v
	}

	return result
}
