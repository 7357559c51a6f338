package cmd

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

const (
	tokWord = iota
	tokString
)

// ErrSyntax is returned for input lines that cannot be split into arguments.
var ErrSyntax = errors.New("syntax error")

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// argLexer compiles the argument DFA on first use: bare words, double quoted
// strings with backslash escapes, and blanks between them.
func argLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte("( |\t|\r|\n)+"), skip)
		l.Add([]byte(`"([^"\\]|\\.)*"`), makeToken(tokString))
		l.Add([]byte("[^ \t\r\n\"]+"), makeToken(tokWord))
		if err := l.Compile(); err != nil {
			lexerErr = err
			return
		}
		lexer = l
	})
	return lexer, lexerErr
}

// splitArgs splits a command line into its arguments. Quoted arguments have
// their quotes removed and escapes resolved.
func splitArgs(line string) ([]string, error) {
	l, err := argLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := l.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}

	var argv []string
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return nil, fmt.Errorf("%w: unterminated quote at offset %d", ErrSyntax, ui.FailTC)
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		token := tok.(*lexmachine.Token)
		switch token.Type {
		case tokString:
			argv = append(argv, unquote(string(token.Lexeme)))
		default:
			argv = append(argv, string(token.Lexeme))
		}
	}
	return argv, nil
}

func unquote(s string) string {
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
