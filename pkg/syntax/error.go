package syntax

import "github.com/nilterm/resolver/internal/rerrors"

func newParseError(line int, msg string, args ...interface{}) error {
	formatted := make([]interface{}, 0, len(args)+1)
	formatted = append(formatted, line)
	formatted = append(formatted, args...)
	return rerrors.New("syntax: line %d: "+msg, formatted...)
}
