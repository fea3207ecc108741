package cli

import "strings"

// joinExprArgs accepts an expression either as one argument or split into
// one argument per field.
func joinExprArgs(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return strings.Join(args, " ")
}
