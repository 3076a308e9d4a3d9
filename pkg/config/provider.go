package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-tagcloud/pkg/cloud"
)

// Namespace prefixes every configuration key.
const Namespace = "tagcloud"

const (
	KeyMinFontSize    = Namespace + ".fontSize.min"
	KeyMaxFontSize    = Namespace + ".fontSize.max"
	KeyFontUnit       = Namespace + ".fontUnit"
	KeyAddSpaces      = Namespace + ".addSpaces"
	KeyShuffleTags    = Namespace + ".shuffleTags"
	KeyContainerClass = Namespace + ".containerClass"
	KeyTagClass       = Namespace + ".tagClass"
)

// Provider looks up configuration values by dotted key.
type Provider interface {
	Lookup(key string) (any, bool)
}

// MapProvider resolves dotted keys against nested maps, as produced by
// decoding YAML or JSON. A literal key containing dots wins over the nested
// path.
type MapProvider map[string]any

func (m MapProvider) Lookup(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	if value, ok := m[key]; ok {
		return value, true
	}

	var current any = map[string]any(m)
	for _, segment := range strings.Split(key, ".") {
		node, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// FromProvider applies provider values over cloud.DefaultConfig.
func FromProvider(p Provider) cloud.Config {
	return Apply(cloud.DefaultConfig(), p)
}

// Apply overlays provider values onto base. Font sizes apply only when they
// convert to a non-zero integer, strings only when non-blank, and the two
// flags only when the stored value is a real boolean.
func Apply(base cloud.Config, p Provider) cloud.Config {
	if p == nil {
		return base
	}

	if size := lookupInt(p, KeyMaxFontSize); size != 0 {
		base.MaxFontSize = size
	}
	if size := lookupInt(p, KeyMinFontSize); size != 0 {
		base.MinFontSize = size
	}
	if unit := lookupString(p, KeyFontUnit); unit != "" {
		base.FontUnit = unit
	}
	if flag, ok := lookupBool(p, KeyAddSpaces); ok {
		base.AddSpace = flag
	}
	if flag, ok := lookupBool(p, KeyShuffleTags); ok {
		base.Shuffle = flag
	}
	if class := lookupString(p, KeyContainerClass); class != "" {
		base.ContainerClass = class
	}
	if class := lookupString(p, KeyTagClass); class != "" {
		base.TagClass = class
	}
	return base
}

func lookupInt(p Provider, key string) int {
	value, ok := p.Lookup(key)
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		if v > math.MaxInt {
			return 0
		}
		return int(v)
	case float64:
		if v > math.MaxInt || v < math.MinInt || math.IsNaN(v) {
			return 0
		}
		return int(math.Trunc(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func lookupString(p Provider, key string) string {
	value, ok := p.Lookup(key)
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func lookupBool(p Provider, key string) (bool, bool) {
	value, ok := p.Lookup(key)
	if !ok {
		return false, false
	}
	flag, ok := value.(bool)
	return flag, ok
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case MapProvider:
		return map[string]any(v), true
	default:
		return nil, false
	}
}
