package lang

// lexer walks a complete source buffer and produces the token sequence
// consumed by the parser. Line and column are 1-based, and column counts
// bytes from the start of the line.
type lexer struct {
	src  []byte
	toks []Token
	pos  int
	line int
	col  int
}

// tokenize converts src into a token sequence terminated by a single
// TokenEOF, or fails with a positioned lexical error.
func tokenize(src []byte) ([]Token, *Error) {
	l := &lexer{
		src:  src,
		toks: make([]Token, 0, initialTokens),
		line: 1,
		col:  1,
	}

	for !l.eof() {
		if err := l.next(); err != nil {
			return nil, err
		}
	}

	l.emit(TokenEOF, "", l.line, l.col)

	return l.toks, nil
}

const initialTokens = 64

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}

	return l.src[l.pos]
}

func (l *lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}

	return l.src[l.pos+offset]
}

// advance consumes one byte, maintaining line/column. A newline increments
// the line counter and resets the column.
func (l *lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++

	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return ch
}

func (l *lexer) emit(kind TokenKind, text string, line, col int) {
	l.toks = append(l.toks, Token{
		Kind:   kind,
		Text:   text,
		Line:   line,
		Column: col,
	})
}

// next consumes one token (or skipped run) starting at the current position.
func (l *lexer) next() *Error {
	ch := l.peek()

	switch ch {
	case ' ', '\t', '\r', '\n':
		l.advance()

		return nil

	case '/':
		return l.comment()

	case '=':
		l.emit(TokenEQ, "=", l.line, l.col)
	case ';':
		l.emit(TokenSemicolon, ";", l.line, l.col)
	case ',':
		l.emit(TokenComma, ",", l.line, l.col)
	case '[':
		l.emit(TokenLeftBracket, "[", l.line, l.col)
	case ']':
		l.emit(TokenRightBracket, "]", l.line, l.col)
	case '(':
		l.emit(TokenLeftParen, "(", l.line, l.col)
	case ')':
		l.emit(TokenRightParen, ")", l.line, l.col)
	case '{':
		l.emit(TokenLeftCurly, "{", l.line, l.col)
	case '}':
		l.emit(TokenRightCurly, "}", l.line, l.col)

	case '"':
		return l.stringLiteral()

	default:
		if isDigit(ch) || (ch == '-' && isDigit(l.peekAt(1))) {
			return l.number()
		}

		return l.word()
	}

	l.advance()

	return nil
}

// comment consumes a `//` line comment or a `/* */` block comment. A lone
// slash is not a token in this grammar.
func (l *lexer) comment() *Error {
	line, col := l.line, l.col
	l.advance()

	switch l.peek() {
	case '/':
		for !l.eof() && l.peek() != '\n' {
			l.advance()
		}

		return nil

	case '*':
		l.advance()

		for !l.eof() {
			if l.peek() == '*' && l.peekAt(1) == '/' {
				l.advance()
				l.advance()

				return nil
			}

			l.advance()
		}

		return newError(ErrorUnterminatedComment, line, col,
			"unterminated block comment")

	default:
		return newError(ErrorUnknownToken, line, col, "unknown token `/`")
	}
}

// number consumes an integer or double literal. At most one decimal point is
// permitted; a second is a lexical error.
func (l *lexer) number() *Error {
	line, col := l.line, l.col
	start := l.pos

	if l.peek() == '-' {
		l.advance()
	}

	dots := 0

	for !l.eof() && (isDigit(l.peek()) || l.peek() == '.') {
		if l.peek() == '.' {
			dots++
		}

		l.advance()
	}

	text := string(l.src[start:l.pos])

	if dots > 1 {
		return newError(ErrorUnknownToken, line, col,
			"malformed number `%s`", text)
	}

	kind := TokenInt
	if dots == 1 {
		kind = TokenDouble
	}

	l.emit(kind, text, line, col)

	return nil
}

// stringLiteral consumes a double-quoted string, translating the escapes
// \n, \t, \", \', and \\. Any other escaped character is kept as a literal
// backslash followed by that character. Reaching end of input before the
// closing quote is a lexical error at the opening quote.
func (l *lexer) stringLiteral() *Error {
	line, col := l.line, l.col
	l.advance()

	var buf []byte

	for !l.eof() {
		ch := l.advance()

		switch ch {
		case '"':
			l.emit(TokenString, string(buf), line, col)

			return nil

		case '\\':
			if l.eof() {
				break
			}

			esc := l.advance()

			switch esc {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case '"':
				buf = append(buf, '"')
			case '\'':
				buf = append(buf, '\'')
			case '\\':
				buf = append(buf, '\\')
			default:
				buf = append(buf, '\\', esc)
			}

		default:
			buf = append(buf, ch)
		}
	}

	return newError(ErrorUnterminatedString, line, col,
		"unterminated string literal")
}

// word consumes a run of characters up to the next whitespace or structural
// character. The words `true` and `false` are boolean literals; anything
// else is an identifier.
func (l *lexer) word() *Error {
	line, col := l.line, l.col
	start := l.pos

	for !l.eof() && !isWordBoundary(l.peek()) {
		l.advance()
	}

	text := string(l.src[start:l.pos])

	switch text {
	case "true", "false":
		l.emit(TokenBool, text, line, col)
	default:
		l.emit(TokenIdentifier, text, line, col)
	}

	return nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isWordBoundary(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n',
		'=', ';', ',', '[', ']', '(', ')', '{', '}', '"':
		return true
	}

	return false
}
