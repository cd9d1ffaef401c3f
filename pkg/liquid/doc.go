// Package liquid renders Liquid-style templates with conditional
// branching.
//
// # Template Surface
//
// A template mixes literal text with two delimiter forms:
//
//	{{ expr }}           output: resolve an operand and emit it
//	{% tag markup %}     tag: control flow
//
// The one built-in control construct is the if tag:
//
//	{% if user.admin %}
//	  Welcome back.
//	{% elsif visits > 3 %}
//	  Good to see you again.
//	{% else %}
//	  Hello!
//	{% endif %}
//
// Exactly one branch renders: the first whose guard holds. Guards
// after it are never evaluated. With no matching branch the construct
// contributes nothing. An elsif after else and a second else are both
// syntax errors.
//
// # Conditions
//
// Guards are condition chains over the comparators ==, !=, <, >, <=,
// >=, and contains, joined by and/or. Chains evaluate right to left
// with no precedence between and and or:
//
//	a or b and c   ==   a or (b and c)
//
// Only nil and false are falsy; empty strings and zero are truthy.
// Condition parsing is lenient by default and exact under
// WithStrictParsing. See the expr subpackage.
//
// # Usage
//
//	engine := liquid.NewEngine(liquid.WithStrictParsing())
//	tmpl, err := engine.ParseString("greeting", src)
//	if err != nil {
//		// *SyntaxError
//	}
//	out, err := tmpl.Render(map[string]any{"user": user})
//
// For one-off renders, liquid.Render(src, vars) uses a shared lenient
// engine.
//
// # Observability and Caching
//
// WithLogger, WithMetrics, and WithTracing instrument parse and
// render; WithRenderCache memoizes render output keyed on source and
// bindings, which is sound because rendering is a pure function of
// both. All four are off by default.
package liquid
