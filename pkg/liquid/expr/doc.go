/*
Package expr provides boolean condition parsing and evaluation for
liquid tag markup.

# Overview

expr implements the condition language used by branching tags. A
condition is a comparison chained with `and`/`or` boundary keywords,
evaluated against a variable map. Two parsing modes are supported: a
tolerant lax mode and an exact strict mode. Both produce the same
chain shape and share one evaluator.

# Condition Syntax

	<condition>  := <comparison> (('and' | 'or') <comparison>)*
	<comparison> := <operand> (<op> <operand>)?
	<op>         := '==' | '!=' | '<' | '>' | '<=' | '>=' | 'contains'
	<operand>    := 'string' | "string" | number | true | false | nil | <path>
	<path>       := ident ('.' ident | '[' index ']' | '[' 'key' ']')*

A bare operand with no comparison evaluates by truthiness.

# Associativity

Chains are right-associative with no precedence distinction between
`and` and `or`. The chain

	a op1 b op2 c

groups as

	a op1 (b op2 c)

so `true or false and false` evaluates to true: the right-hand group
`false and false` is false, then `true or false` is true. This differs
from conventional operator precedence and is part of the language
contract; both parsing modes build the same right-nested chain.

# Parsing Modes

Lax mode splits the markup on whole-word `and`/`or` boundaries (quoted
strings and bracketed path segments are atomic) and matches each chunk
against a fixed operand/operator/operand pattern. Trailing words after
a complete comparison inside a chunk are ignored.

Strict mode tokenizes with an exact lexer and parses by recursive
descent. Any trailing input after the final comparison is a syntax
error.

# Operands

Operands are parsed once and resolved lazily at evaluate time:

  - Quoted strings: 'hello' or "hello"
  - Numbers: 42, 3.14, -1
  - Booleans: true, false
  - Nil: nil, null
  - Variable paths: user.name, items[0], map["key"]

Undefined variables resolve to nil.

# Truthiness

nil and false are falsy; every other value, including empty strings
and zero, is truthy.

# Examples

	cond, err := expr.Parse("status == 'active' and count > 0", expr.ModeStrict)
	if err != nil {
	    log.Fatal(err)
	}
	ok, err := cond.Evaluate(map[string]any{"status": "active", "count": 5})
	// ok == true
*/
package expr
