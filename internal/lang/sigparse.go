package lang

import "strings"

// splitTopLevel splits a comma-separated list while respecting nesting in
// parentheses, brackets, braces, and angle brackets. Shared by the signature
// scanners; the best-effort contract is that ambiguity fails the compile
// stage rather than mis-binding a call.
func splitTopLevel(value string) []string {
	var parts []string
	var current strings.Builder
	depthParen, depthBracket, depthBrace, depthAngle := 0, 0, 0, 0

	for _, ch := range value {
		if ch == ',' && depthParen == 0 && depthBracket == 0 && depthBrace == 0 && depthAngle == 0 {
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		switch ch {
		case '(':
			depthParen++
		case ')':
			depthParen--
		case '[':
			depthBracket++
		case ']':
			depthBracket--
		case '{':
			depthBrace++
		case '}':
			depthBrace--
		case '<':
			depthAngle++
		case '>':
			if depthAngle > 0 {
				depthAngle--
			}
		}
		current.WriteRune(ch)
	}

	if tail := strings.TrimSpace(current.String()); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

// normalizeType strips all whitespace from a type expression so lookups like
// "* ListNode" and "*ListNode" agree.
func normalizeType(typeName string) string {
	return strings.Join(strings.Fields(typeName), "")
}
