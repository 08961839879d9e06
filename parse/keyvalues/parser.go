package keyvalues

import (
	"bufio"
	"io"
	"strings"
)

// =========================
// Public API
// =========================

// Parse builds a container from KeyValues lines. parentPath is recorded
// as the result's path and prefixes the paths of everything below it.
//
// Malformed input is never rejected: unbalanced braces or unexpected
// token counts produce whatever partial tree the lines describe.
func Parse(lines []string, parentPath string) *Container {
	p := &parser{
		parentPath: parentPath,
		result:     NewContainer(parentPath, ""),
		buffer:     make(map[string][]string),
	}
	for _, line := range lines {
		p.line(line)
	}
	p.result.key = p.baseKey
	return p.result
}

// ParseString parses a whole document held in memory.
func ParseString(text string) *Container {
	return Parse(strings.Split(text, "\n"), "")
}

// ParseReader parses a document read from r. The only error returned is
// the reader's own.
func ParseReader(r io.Reader) (*Container, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Parse(lines, ""), nil
}

// =========================
// Parser Implementation
// =========================

type parser struct {
	parentPath string
	result     *Container

	depth   int
	baseKey string
	// pending is the depth-1 key waiting for either a value or a block.
	pending    string
	hasPending bool
	pathStack  []string
	// buffer holds the raw lines of the nested block under pending.
	buffer map[string][]string
}

func (p *parser) line(raw string) {
	line := strings.TrimSpace(strings.ReplaceAll(raw, "\t", ""))
	if line == "" {
		return
	}

	if p.depth == 1 {
		p.member(line)
	}

	if strings.HasPrefix(line, "{") {
		p.depth++
		if p.depth == 1 {
			p.pathStack = append(p.pathStack, p.baseKey)
			return
		}
	}

	if strings.HasPrefix(line, "}") {
		if p.depth == 0 {
			return
		}
		p.depth--
		switch p.depth {
		case 0:
			clear(p.buffer)
			if n := len(p.pathStack); n > 0 {
				p.pathStack = p.pathStack[:n-1]
			}
			return
		case 1:
			p.closeChild(line)
			return
		}
	}

	if p.depth == 0 {
		p.topLevel(line)
		return
	}

	if p.depth >= 2 {
		p.bufferLine(line)
	}
}

// member handles a line seen while inside the outermost block.
func (p *parser) member(line string) {
	tokens := scanTokens(line)
	switch {
	case len(tokens) == 1:
		if !p.hasPending {
			p.pending, p.hasPending = tokens[0], true
			p.bufferLine(line)
		}
	case len(tokens) >= 2:
		path := joinPath(append([]string{p.parentPath}, p.pathStack...)...)
		p.result.Set(tokens[0], NewLeaf(path, tokens[0], tokens[1]))
		p.pending, p.hasPending = "", false
	}
}

// topLevel handles a line outside every block.
func (p *parser) topLevel(line string) {
	tokens := scanTokens(line)
	switch {
	case len(tokens) == 1:
		p.baseKey = tokens[0]
	case len(tokens) >= 2:
		p.result.Set(tokens[0], NewLeaf(p.parentPath, tokens[0], tokens[1]))
	}
}

// closeChild finishes the nested block under the pending key: the
// buffered lines, closing brace included, are parsed on their own and
// the result is attached under that key.
func (p *parser) closeChild(line string) {
	defer func() {
		clear(p.buffer)
		p.pending, p.hasPending = "", false
	}()
	if !p.hasPending {
		return
	}
	p.bufferLine(line)
	child := Parse(p.buffer[p.pending], joinPath(p.parentPath, p.baseKey))
	p.result.Set(p.pending, child)
}

func (p *parser) bufferLine(line string) {
	p.buffer[p.pending] = append(p.buffer[p.pending], line)
}
