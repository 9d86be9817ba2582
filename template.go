package hand

import (
	"fmt"
	"strings"
)

// render substitutes values into template. Each {} placeholder consumes the
// next value, formatted with [fmt.Sprint]. Doubled braces ({{ and }}) emit a
// single literal brace; an unpaired brace passes through verbatim.
//
// Running out of values is a call-site bug and panics rather than emitting a
// mangled line. Values beyond the last placeholder are ignored.
func render(template string, values []any) string {
	if !strings.Contains(template, "{") && !strings.Contains(template, "}") {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))

	next := 0

	for i := 0; i < len(template); i++ {
		c := template[i]

		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			sb.WriteByte('{')

			i++
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			sb.WriteByte('}')

			i++
		case c == '{' && i+1 < len(template) && template[i+1] == '}':
			if next >= len(values) {
				panic(fmt.Sprintf(
					"hand: template %q needs at least %d values, got %d",
					template, next+1, len(values)))
			}

			sb.WriteString(fmt.Sprint(values[next]))

			next++
			i++
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}
