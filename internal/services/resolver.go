package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/fretsound/fretboard-api/internal/cache"
	"github.com/fretsound/fretboard-api/internal/llm"
	"github.com/fretsound/fretboard-api/internal/models"
	"github.com/fretsound/fretboard-api/internal/observability"
	"github.com/fretsound/fretboard-api/internal/prompt"
	"github.com/fretsound/fretboard-api/internal/theory"
)

// Resolution sources reported to callers.
const (
	SourceLocal = "local"
	SourceCache = "cache"
	SourceLLM   = "llm"
)

// providerSource yields a provider for a model name.
type providerSource interface {
	GetProvider(ctx context.Context, model string) (llm.Provider, error)
}

// resolutionCache is the persistent cache surface the resolver needs.
type resolutionCache interface {
	Get(key string) (string, bool)
	Set(key, kind, value string) error
}

// ResolverService turns free-form chord and scale names into pitch-class
// structures. Chords try the LLM first and fall back to the local grammar;
// scales have no local fallback beyond the 24 built-in keys.
type ResolverService struct {
	providers providerSource
	store     resolutionCache
	loader    *prompt.Loader
	model     string
}

// NewResolverService creates a resolver backed by the given provider factory
// and cache store. The store may wrap a nil database; lookups then always miss.
func NewResolverService(factory *llm.ProviderFactory, store *cache.Store, model string) *ResolverService {
	return &ResolverService{
		providers: factory,
		store:     store,
		loader:    prompt.NewPromptLoader(),
		model:     model,
	}
}

// ResolveChord resolves a chord symbol. The returned source is "cache",
// "llm", or "local" depending on which path answered.
func (s *ResolverService) ResolveChord(ctx context.Context, input string) (*theory.Chord, string, error) {
	normalized := NormalizeInput(input)
	if normalized == "" {
		return nil, "", fmt.Errorf("empty chord input")
	}

	key := CacheKey(cache.KindChord, s.model, normalized)

	if raw, ok := s.store.Get(key); ok {
		if chord, err := s.chordFromRaw(raw); err == nil {
			log.Printf("📥 CHORD CACHE HIT: %q", normalized)
			return chord, SourceCache, nil
		}
		// A cached row that no longer decodes is treated as a miss.
		log.Printf("⚠️  Discarding undecodable cache entry for %q", normalized)
	}

	chord, err := s.resolveChordLLM(ctx, normalized, key)
	if err == nil {
		return chord, SourceLLM, nil
	}
	log.Printf("⚠️  LLM chord resolution failed for %q, trying local grammar: %v", normalized, err)

	if chord, parseErr := theory.ParseChord(normalized); parseErr == nil {
		return chord, SourceLocal, nil
	}

	return nil, "", fmt.Errorf("unable to parse chord %q", normalized)
}

// ResolveScale resolves a scale or key name. Built-in major/minor keys answer
// locally; everything else goes through the cache and the LLM.
func (s *ResolverService) ResolveScale(ctx context.Context, input string) (*theory.KeySignature, string, error) {
	normalized := NormalizeInput(input)
	if normalized == "" {
		return nil, "", fmt.Errorf("empty scale input")
	}

	if key, ok := theory.KeyByLabel(normalized); ok {
		return key, SourceLocal, nil
	}

	key := CacheKey(cache.KindScale, s.model, normalized)

	if raw, ok := s.store.Get(key); ok {
		if scale, err := s.scaleFromRaw(raw); err == nil {
			log.Printf("📥 SCALE CACHE HIT: %q", normalized)
			return scale, SourceCache, nil
		}
		log.Printf("⚠️  Discarding undecodable cache entry for %q", normalized)
	}

	scale, err := s.resolveScaleLLM(ctx, normalized, key)
	if err != nil {
		return nil, "", fmt.Errorf("unable to resolve scale %q: %w", normalized, err)
	}
	return scale, SourceLLM, nil
}

func (s *ResolverService) resolveChordLLM(ctx context.Context, input, cacheKey string) (*theory.Chord, error) {
	raw, err := s.callLLM(ctx, "chord.resolve", s.loader.GetChordSystemPrompt(), input)
	if err != nil {
		return nil, err
	}

	chord, err := s.chordFromRaw(raw)
	if err != nil {
		return nil, err
	}

	// Cache writes are best effort: a failed write only costs a future call.
	if cacheErr := s.store.Set(cacheKey, cache.KindChord, raw); cacheErr != nil {
		log.Printf("⚠️  Failed to cache chord resolution: %v", cacheErr)
	}

	return chord, nil
}

func (s *ResolverService) resolveScaleLLM(ctx context.Context, input, cacheKey string) (*theory.KeySignature, error) {
	raw, err := s.callLLM(ctx, "scale.resolve", s.loader.GetScaleSystemPrompt(), input)
	if err != nil {
		return nil, err
	}

	scale, err := s.scaleFromRaw(raw)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.store.Set(cacheKey, cache.KindScale, raw); cacheErr != nil {
		log.Printf("⚠️  Failed to cache scale resolution: %v", cacheErr)
	}

	return scale, nil
}

// callLLM runs one structured-output resolution call and returns the raw JSON.
func (s *ResolverService) callLLM(ctx context.Context, traceName, systemPrompt, input string) (string, error) {
	provider, err := s.providers.GetProvider(ctx, s.model)
	if err != nil {
		return "", err
	}

	trace := observability.GetClient().StartTrace(ctx, traceName, map[string]interface{}{
		"model": s.model,
	})
	defer trace.Finish()
	generation := trace.Generation("llm.resolve", nil)
	defer generation.Finish()

	resp, err := provider.Resolve(ctx, &llm.ResolveRequest{
		Model:        s.model,
		SystemPrompt: systemPrompt,
		UserText:     input,
		OutputSchema: &llm.OutputSchema{
			Name:        "resolution",
			Description: "Chord or scale spelled as root, label and degree-tagged tones",
			Schema:      llm.GetResolutionSchema(),
		},
	})
	if err != nil {
		generation.SetLevel("ERROR")
		return "", err
	}

	if usage, ok := resp.Usage.(map[string]interface{}); ok {
		generation.LogResolution(s.model, input, resp.RawOutput, usage)
	} else {
		generation.Input(input)
		generation.Output(resp.RawOutput)
	}

	return resp.RawOutput, nil
}

// chordFromRaw strictly decodes a resolution payload into a chord. Any
// structural or note-name defect rejects the whole payload.
func (s *ResolverService) chordFromRaw(raw string) (*theory.Chord, error) {
	res, err := decodeResolution(raw)
	if err != nil {
		return nil, err
	}

	root, tones, err := parseResolution(res)
	if err != nil {
		return nil, err
	}

	return theory.ChordFromTones(res.Label, root, tones, theory.SourceLLM), nil
}

func (s *ResolverService) scaleFromRaw(raw string) (*theory.KeySignature, error) {
	res, err := decodeResolution(raw)
	if err != nil {
		return nil, err
	}

	root, tones, err := parseResolution(res)
	if err != nil {
		return nil, err
	}

	return theory.ScaleFromTones(res.Label, root, tones), nil
}

// decodeResolution parses the LLM's JSON output. Unknown fields are an error:
// there is no partial extraction from malformed responses.
func decodeResolution(raw string) (*models.Resolution, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var res models.Resolution
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("invalid resolution payload: %w", err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// parseResolution converts the string note names of a resolution into theory
// types, failing on the first name that does not parse.
func parseResolution(res *models.Resolution) (theory.Note, []theory.ToneDegree, error) {
	root, err := theory.ParseNote(res.Root)
	if err != nil {
		return theory.Note{}, nil, fmt.Errorf("resolution root: %w", err)
	}

	tones := make([]theory.ToneDegree, 0, len(res.Tones))
	for _, t := range res.Tones {
		note, err := theory.ParseNote(t.Note)
		if err != nil {
			return theory.Note{}, nil, fmt.Errorf("resolution tone %q: %w", t.Note, err)
		}
		tones = append(tones, theory.ToneDegree{Note: note, Degree: t.Degree})
	}

	return root, tones, nil
}
