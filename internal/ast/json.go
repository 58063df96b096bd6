package ast

import "blink-lang/internal/span"

// NodeToMap converts an AST node to a map suitable for JSON serialization.
// Every node becomes a tagged-union object with a "kind" field, mirroring
// the seven-kind discriminated union the tree itself is built from.
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *VarDef:
		return m("VarDef", n.SpanVal, "name", n.Name, "value", NodeToMap(n.Value))
	case *FnDef:
		return m("FnDef", n.SpanVal,
			"name", n.Name,
			"params", nodeSlice(n.Params),
			"body", NodeToMap(n.Body))
	case *Variable:
		return m("Variable", n.SpanVal, "name", n.Name)
	case *FnCall:
		return m("FnCall", n.SpanVal, "name", n.Name, "args", nodeSlice(n.Args))
	case *String:
		return m("String", n.SpanVal, "value", n.Value)
	case *Compound:
		return m("Compound", n.SpanVal, "children", nodeSlice(n.Children))
	case *Noop:
		return m("Noop", n.SpanVal)
	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": map[string]interface{}{"offset": s.Start.Offset, "line": s.Start.Line, "column": s.Start.Column},
		"end":   map[string]interface{}{"offset": s.End.Offset, "line": s.End.Line, "column": s.End.Column},
	}
}

func nodeSlice(nodes []Node) []interface{} {
	result := make([]interface{}, len(nodes))
	for i, n := range nodes {
		result[i] = NodeToMap(n)
	}
	return result
}
