// Package rules converts single word tokens between English variants using
// the crosswalk tables, keeping the token's capitalisation.
package rules

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/FocuswithJustin/EnglishVariant/core/crosswalk"
	"github.com/FocuswithJustin/EnglishVariant/core/variant"
)

// mappingKey identifies one directional mapping.
type mappingKey struct {
	source, target variant.Variant
	mode           variant.Mode
}

// cacheSize holds every (source, target, mode) combination.
var cacheSize = len(variant.All) * len(variant.All) * len(variant.Modes)

// Engine looks up token replacements in a crosswalk store. Mappings are
// built on first use per (source, target, mode) and cached; an Engine is
// safe for concurrent use.
type Engine struct {
	store    *crosswalk.Store
	mappings *lru.Cache[mappingKey, map[string]string]
}

// NewEngine returns an engine over store.
func NewEngine(store *crosswalk.Store) *Engine {
	cache, err := lru.New[mappingKey, map[string]string](cacheSize)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return &Engine{store: store, mappings: cache}
}

// Store returns the crosswalk store the engine reads from.
func (e *Engine) Store() *crosswalk.Store {
	return e.store
}

// ConvertToken returns the target-variant form of token. Unknown words come
// back unchanged. The only error is an invalid variant or mode.
func (e *Engine) ConvertToken(token string, source, target variant.Variant, mode variant.Mode) (string, error) {
	if err := variant.Check(source, target, mode); err != nil {
		return "", err
	}
	if token == "" || source == target {
		return token, nil
	}

	replacement, ok := e.Mapping(source, target, mode)[strings.ToLower(token)]
	if !ok {
		return token, nil
	}
	return DetectCase(token).Apply(replacement), nil
}

// Mapping returns the lowercase source to target lookup for the given
// direction and mode. Callers must not modify the returned map. Arguments
// are assumed valid.
func (e *Engine) Mapping(source, target variant.Variant, mode variant.Mode) map[string]string {
	key := mappingKey{source: source, target: target, mode: mode}
	if m, ok := e.mappings.Get(key); ok {
		return m
	}
	// Concurrent misses may build the same mapping twice; both are identical.
	m := buildMapping(e.store, key)
	e.mappings.Add(key, m)
	return m
}

func buildMapping(store *crosswalk.Store, key mappingKey) map[string]string {
	mapping := make(map[string]string)
	if key.source == key.target {
		return mapping
	}
	ingest := func(rows []crosswalk.Row) {
		for _, row := range rows {
			src := strings.ToLower(row.Get(key.source))
			dst := strings.ToLower(row.Get(key.target))
			if src == "" || dst == "" || src == dst {
				continue
			}
			mapping[src] = dst
		}
	}
	ingest(store.Rows(crosswalk.SpellingOnly))
	if key.mode == variant.SpellingAndLexical {
		ingest(store.Rows(crosswalk.LexicalChoice))
	}
	return mapping
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine over crosswalk.Default().
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine(crosswalk.Default())
	})
	return defaultEngine
}

// ConvertToken converts token with the default engine.
func ConvertToken(token string, source, target variant.Variant, mode variant.Mode) (string, error) {
	return Default().ConvertToken(token, source, target, mode)
}
