package parse

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/weftlang/weft/grammar"
	"github.com/weftlang/weft/token"
)

// StartRule is the rule generation begins from.
const StartRule = "main"

// Parse reads grammar text and returns the node tree rooted at the main
// rule. The result is ready for compiler.Compile.
func Parse(src string) (grammar.Node, error) {
	rules, err := readRules(src)
	if err != nil {
		return nil, err
	}
	start, ok := rules[StartRule]
	if !ok {
		return nil, fmt.Errorf("rule %q: %w", StartRule, ErrNoMainRule)
	}
	r := resolver{rules: rules, trail: make(map[string]bool)}
	return r.expand(start)
}

// ParseFile reads and parses the grammar file at path.
func ParseFile(path string) (grammar.Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse: read grammar: %w", err)
	}
	return Parse(string(src))
}

// ruleDef is a collected but unresolved rule.
type ruleDef struct {
	name    string
	shuffle bool
	line    int
	alts    []altDef
}

// altDef is one alternative: a weight and an item sequence.
type altDef struct {
	weight int
	items  []itemDef
}

type itemKind int

const (
	itemWord itemKind = iota
	itemRef
	itemMark
	itemEmpty
)

// itemDef is one whitespace-separated item of an alternative.
type itemDef struct {
	kind  itemKind
	text  string // literal text or referenced rule name
	label string // correlation label for itemRef, may be empty
	mark  token.Kind
}

// readRules collects every rule declaration. Bodies are parsed but
// references stay unresolved, so forward references cost nothing here.
func readRules(src string) (map[string]*ruleDef, error) {
	rules := make(map[string]*ruleDef)

	for i, raw := range strings.Split(src, "\n") {
		lineNo := i + 1
		line := raw
		if hash := strings.IndexByte(line, '#'); hash >= 0 {
			line = line[:hash]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return nil, fmt.Errorf("line %d: missing %q in rule declaration: %w", lineNo, "=", ErrSyntax)
		}
		name := strings.TrimSpace(line[:eq])
		body := line[eq+1:]

		shuffled := strings.HasSuffix(name, "~")
		if shuffled {
			name = strings.TrimSpace(strings.TrimSuffix(name, "~"))
		}
		if !validName(name) {
			return nil, fmt.Errorf("line %d: bad rule name %q: %w", lineNo, name, ErrSyntax)
		}
		if _, ok := rules[name]; ok {
			return nil, fmt.Errorf("line %d: rule %q: %w", lineNo, name, ErrDuplicateRule)
		}

		def := &ruleDef{name: name, shuffle: shuffled, line: lineNo}
		for _, alt := range strings.Split(body, "|") {
			a, err := parseAlt(alt, shuffled)
			if err != nil {
				return nil, fmt.Errorf("line %d: rule %q: %w", lineNo, name, err)
			}
			def.alts = append(def.alts, a)
		}
		rules[name] = def
	}
	return rules, nil
}

// parseAlt parses one alternative body into a weight and items.
func parseAlt(body string, shuffled bool) (altDef, error) {
	fields := strings.Fields(body)
	alt := altDef{weight: 1}

	if len(fields) > 0 {
		if w, err := strconv.Atoi(fields[0]); err == nil {
			if shuffled {
				return alt, fmt.Errorf("shuffle alternatives cannot carry weights: %w", ErrSyntax)
			}
			if w <= 0 {
				return alt, fmt.Errorf("weight %d must be positive: %w", w, ErrSyntax)
			}
			alt.weight = w
			fields = fields[1:]
		}
	}

	for _, f := range fields {
		item, err := parseItem(f)
		if err != nil {
			return alt, err
		}
		alt.items = append(alt.items, item)
	}
	return alt, nil
}

// parseItem classifies a single field.
func parseItem(f string) (itemDef, error) {
	switch f {
	case ".":
		return itemDef{kind: itemMark, mark: token.Period}, nil
	case ",":
		return itemDef{kind: itemMark, mark: token.Comma}, nil
	case ";":
		return itemDef{kind: itemMark, mark: token.Semicolon}, nil
	case "--":
		return itemDef{kind: itemMark, mark: token.Dash}, nil
	case "a/an":
		return itemDef{kind: itemMark, mark: token.Article}, nil
	case "+":
		return itemDef{kind: itemMark, mark: token.Glue}, nil
	case "()":
		return itemDef{kind: itemEmpty}, nil
	}

	if strings.HasPrefix(f, "<") {
		if !strings.HasSuffix(f, ">") || len(f) < 3 {
			return itemDef{}, fmt.Errorf("malformed reference %q: %w", f, ErrSyntax)
		}
		inner := f[1 : len(f)-1]
		name, label, hasLabel := strings.Cut(inner, "@")
		if !validName(name) || (hasLabel && !validName(label)) {
			return itemDef{}, fmt.Errorf("malformed reference %q: %w", f, ErrSyntax)
		}
		return itemDef{kind: itemRef, text: name, label: label}, nil
	}

	if strings.ContainsAny(f, "<>") {
		return itemDef{}, fmt.Errorf("stray angle bracket in %q: %w", f, ErrSyntax)
	}
	return itemDef{kind: itemWord, text: f}, nil
}

// validName accepts identifier-style rule and label names.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// resolver expands collected rules into grammar nodes. trail holds the
// rules on the current expansion path for recursion detection.
type resolver struct {
	rules map[string]*ruleDef
	trail map[string]bool
}

func (r *resolver) expand(def *ruleDef) (grammar.Node, error) {
	if r.trail[def.name] {
		return nil, fmt.Errorf("line %d: rule %q references itself: %w", def.line, def.name, ErrRecursiveRule)
	}
	r.trail[def.name] = true
	defer delete(r.trail, def.name)

	children := make([]grammar.Node, 0, len(def.alts))
	for _, alt := range def.alts {
		n, err := r.expandAlt(def, alt)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}

	if def.shuffle {
		return grammar.Mix(children...), nil
	}
	if len(children) == 1 {
		// A single alternative is not a choice; emit it directly so the
		// rule consumes no cycle.
		return children[0], nil
	}
	alts := make([]grammar.Alternative, len(children))
	for i, c := range children {
		alts[i] = grammar.Alt(def.alts[i].weight, c)
	}
	return grammar.Pick(alts...), nil
}

func (r *resolver) expandAlt(def *ruleDef, alt altDef) (grammar.Node, error) {
	if len(alt.items) == 0 {
		return grammar.Empty(), nil
	}

	nodes := make([]grammar.Node, 0, len(alt.items))
	for _, item := range alt.items {
		n, err := r.expandItem(def, item)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return grammar.Seq(nodes...), nil
}

func (r *resolver) expandItem(def *ruleDef, item itemDef) (grammar.Node, error) {
	switch item.kind {
	case itemWord:
		return grammar.Lit(item.text), nil
	case itemEmpty:
		return grammar.Empty(), nil
	case itemMark:
		return grammar.Mark{Kind: item.mark}, nil
	case itemRef:
		target, ok := r.rules[item.text]
		if !ok {
			return nil, fmt.Errorf("line %d: rule %q references %q: %w", def.line, def.name, item.text, ErrUnknownRule)
		}
		n, err := r.expand(target)
		if err != nil {
			return nil, err
		}
		if item.label != "" {
			n = grammar.Fix(item.label, n)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("line %d: %w", def.line, ErrSyntax)
	}
}
