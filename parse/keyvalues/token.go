package keyvalues

// scanTokens returns the quoted substrings of line, in order, without
// their quotes. A "//" outside quotes ends the line. An unterminated
// quote is dropped.
func scanTokens(line string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if start >= 0 {
			if ch == '"' {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}
		switch {
		case ch == '"':
			start = i + 1
		case ch == '/' && i+1 < len(line) && line[i+1] == '/':
			return tokens
		}
	}
	return tokens
}
