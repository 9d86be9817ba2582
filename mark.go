package hand

// A Mark is the styled glyph printed ahead of a message body. Values carry
// their own SGR styling and reset, so a Mark renders the same way on any
// stream. Any short string works as a custom Mark:
//
//	hand.Customln(hand.Mark("🔍"), "searching {} entries", n)
type Mark string

// Severity marks. Each glyph is wrapped in a fixed bold-color SGR sequence
// followed by a reset, leaving the message body unstyled.
const (
	// MarkInfo is a bold bright blue information sign.
	MarkInfo Mark = "\x1b[1;94mℹ️\x1b[0m"
	// MarkWarn is a bold yellow warning sign.
	MarkWarn Mark = "\x1b[1;33m⚠️\x1b[0m"
	// MarkError is a bold bright red cross.
	MarkError Mark = "\x1b[1;91m❌\x1b[0m"
	// MarkSuccess is a bold bright green check.
	MarkSuccess Mark = "\x1b[1;92m✅\x1b[0m"
	// MarkWait is a bold magenta hourglass.
	MarkWait Mark = "\x1b[1;35m⌛\x1b[0m"
)
