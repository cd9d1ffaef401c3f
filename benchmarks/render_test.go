package benchmarks

import (
	"testing"

	"github.com/MjAbuz/liquid/pkg/liquid"
	"github.com/MjAbuz/liquid/pkg/liquid/cache"
	"github.com/MjAbuz/liquid/pkg/liquid/expr"
)

var benchVars = map[string]any{
	"user":  map[string]any{"admin": true, "name": "ada"},
	"score": 83,
	"x":     1,
}

// BenchmarkRender_SimpleIf measures rendering a parsed two-branch
// template.
func BenchmarkRender_SimpleIf(b *testing.B) {
	tmpl, err := liquid.NewEngine().ParseString("bench", simpleIf)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Render(benchVars)
	}
}

// BenchmarkRender_FiveBranches measures branch selection over five
// branches.
func BenchmarkRender_FiveBranches(b *testing.B) {
	tmpl, err := liquid.NewEngine().ParseString("bench", branchyIf)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Render(benchVars)
	}
}

// BenchmarkRender_CacheHit measures a render served from the memory
// cache.
func BenchmarkRender_CacheHit(b *testing.B) {
	engine := liquid.NewEngine(liquid.WithRenderCache(cache.NewMemoryStore()))
	defer engine.Close()
	tmpl, err := engine.ParseString("bench", simpleIf)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := tmpl.Render(benchVars); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Render(benchVars)
	}
}

// BenchmarkEvaluate_Chain10 measures evaluating a 10-comparison chain.
func BenchmarkEvaluate_Chain10(b *testing.B) {
	cond, err := expr.Parse(chainedCondition(10), expr.ModeLax)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cond.Evaluate(benchVars)
	}
}
