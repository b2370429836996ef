package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/polyglot/internal/prompts"
)

// Execute runs the translation pipeline for a single document. It builds the
// state graph (analyze → translate → review → refine? → enhance), executes
// it, and extracts the Result from the final state. An empty target language
// falls back to the runtime default. Missing content fails before any
// inference call is made.
func Execute(ctx context.Context, rt *Runtime, content, targetLanguage string) (*Result, error) {
	if strings.TrimSpace(content) == "" {
		return nil, stageErr(prompts.StageAnalyze, ErrNoContent)
	}

	if targetLanguage == "" {
		targetLanguage = rt.DefaultTargetLanguage
	}

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyTransState, TranslationState{
		OriginalText:   content,
		TargetLanguage: targetLanguage,
	})

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, err
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("polyglot-translate")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("analyze", AnalyzeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("translate", TranslateNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("review", ReviewNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("refine", RefineNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("enhance", EnhanceNode(rt)); err != nil {
		return nil, err
	}

	// analyze → translate → review (unconditional)
	if err := graph.AddEdge("analyze", "translate", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("translate", "review", nil); err != nil {
		return nil, err
	}

	refine := needsRefine(rt.QualityThreshold)

	// review → refine (when quality falls below threshold with corrections)
	if err := graph.AddEdge("review", "refine", refine); err != nil {
		return nil, err
	}

	// review → enhance (when the translation passed review)
	if err := graph.AddEdge("review", "enhance", state.Not(refine)); err != nil {
		return nil, err
	}

	// refine → enhance (unconditional)
	if err := graph.AddEdge("refine", "enhance", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("analyze"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("enhance"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	val, ok := s.Get(KeyTransState)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyTransState)
	}

	ts, ok := val.(TranslationState)
	if !ok {
		return nil, fmt.Errorf("%s is not TranslationState", KeyTransState)
	}

	result := &Result{
		OriginalText:   ts.OriginalText,
		TranslatedText: ts.EnhancedText,
		TargetLanguage: ts.TargetLanguage,
		CompletedAt:    time.Now(),
	}

	if ts.Analysis != nil {
		result.Analysis = *ts.Analysis
	}

	if ts.Review != nil {
		result.Review = *ts.Review
	}

	return result, nil
}

func needsRefine(threshold int) func(state.State) bool {
	return func(s state.State) bool {
		val, ok := s.Get(KeyTransState)
		if !ok {
			return false
		}

		ts, ok := val.(TranslationState)
		if !ok {
			return false
		}

		return ts.NeedsRefine(threshold)
	}
}
