package installer

import (
	"os"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// InspectForeignHook parses a hook file that is not ours and reports what it
// appears to run, so status output can name the conflicting tool instead of
// just saying "something else". Non-shell hooks are reported by their
// interpreter line when one is present.
func InspectForeignHook(path string) string {
	content, err := os.ReadFile(path) //nolint:gosec // path is inside the repo's hook dir
	if err != nil {
		return "unreadable hook script"
	}

	text := string(content)

	if interp, ok := nonShellInterpreter(text); ok {
		return interp + " script"
	}

	parser := syntax.NewParser(syntax.KeepComments(false))

	prog, err := parser.Parse(strings.NewReader(text), path)
	if err != nil {
		return "unrecognized script"
	}

	if cmd := firstCommand(prog); cmd != "" {
		return "shell script running " + cmd
	}

	return "shell script"
}

// nonShellInterpreter reports the shebang interpreter when it is not a
// POSIX-ish shell worth parsing.
func nonShellInterpreter(text string) (string, bool) {
	if !strings.HasPrefix(text, "#!") {
		return "", false
	}

	line, _, _ := strings.Cut(text, "\n")

	fields := strings.Fields(strings.TrimPrefix(line, "#!"))
	if len(fields) == 0 {
		return "", false
	}

	interp := fields[0]
	if base := lastPathElement(interp); base == "env" && len(fields) > 1 {
		interp = fields[1]
	}

	base := lastPathElement(interp)
	switch base {
	case "sh", "bash", "dash", "ksh", "zsh":
		return "", false
	default:
		return base, true
	}
}

// firstCommand walks the parsed script and returns the first command word
// that is not shell bookkeeping.
func firstCommand(prog *syntax.File) string {
	var found string

	syntax.Walk(prog, func(node syntax.Node) bool {
		if found != "" {
			return false
		}

		call, ok := node.(*syntax.CallExpr)
		if !ok {
			return true
		}

		// Never descend into a call's own words; a command substitution
		// inside `cd "$(dirname "$0")"` or an assignment is not the
		// command the hook runs.
		if len(call.Args) == 0 {
			return false
		}

		word := literalWord(call.Args[0])
		if word == "exec" && len(call.Args) > 1 {
			word = literalWord(call.Args[1])
		}

		if word == "" || isShellBookkeeping(word) {
			return false
		}

		found = lastPathElement(word)

		return false
	})

	return found
}

// literalWord flattens a word made of literal parts, returning "" when the
// word has expansions we cannot resolve statically.
func literalWord(word *syntax.Word) string {
	var builder strings.Builder

	for _, part := range word.Parts {
		lit, ok := part.(*syntax.Lit)
		if !ok {
			return ""
		}

		builder.WriteString(lit.Value)
	}

	return builder.String()
}

func isShellBookkeeping(word string) bool {
	switch word {
	case "set", "cd", "export", "exec", "test", "[", ":", "true":
		return true
	default:
		return false
	}
}

func lastPathElement(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}

	return path
}
