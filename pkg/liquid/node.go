package liquid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MjAbuz/liquid/pkg/liquid/expr"
)

// node is one renderable element of a parsed template.
type node interface {
	render(sb *strings.Builder, vars map[string]any) error
}

// textNode emits literal template text.
type textNode struct {
	text string
}

func (n *textNode) render(sb *strings.Builder, _ map[string]any) error {
	sb.WriteString(n.text)
	return nil
}

// outputNode resolves an operand and emits its string form.
type outputNode struct {
	operand expr.Operand
}

func (n *outputNode) render(sb *strings.Builder, vars map[string]any) error {
	v, err := n.operand.Resolve(vars)
	if err != nil {
		return &RenderError{Tag: "output", Err: err}
	}
	sb.WriteString(formatValue(v))
	return nil
}

// renderBody renders a node sequence in order.
func renderBody(body []node, sb *strings.Builder, vars map[string]any) error {
	for _, n := range body {
		if err := n.render(sb, vars); err != nil {
			return err
		}
	}
	return nil
}

// formatValue renders a resolved value as output text.
// nil contributes nothing.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		var sb strings.Builder
		for _, item := range val {
			sb.WriteString(formatValue(item))
		}
		return sb.String()
	case []string:
		return strings.Join(val, "")
	default:
		return fmt.Sprintf("%v", val)
	}
}
