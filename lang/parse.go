package lang

// valueStarters is the set of tokens that may begin a value: a scalar
// literal or an aggregate opener.
const valueStarters = TokenLeftBracket | TokenLeftParen | TokenLeftCurly |
	TokenInt | TokenDouble | TokenBool | TokenString

// parser consumes the token sequence exactly once, left to right, building
// the variable tree under the root context. Nesting is tracked with two
// parallel stacks: the opening symbol of each live aggregate, and the
// context node currently being appended to.
type parser struct {
	toks     []Token
	brackets []byte
	ctx      []*Variable
}

// parse builds a variable tree from a tokenized source, stopping at the
// first structural or semantic error.
func parse(toks []Token) (*Variable, *Error) {
	root := &Variable{kind: TypeStruct}

	p := &parser{
		toks: toks,
		ctx:  []*Variable{root},
	}

	if err := p.run(); err != nil {
		return nil, err
	}

	return root, nil
}

func (p *parser) current() *Variable { return p.ctx[len(p.ctx)-1] }

func (p *parser) openBracket() byte {
	if len(p.brackets) == 0 {
		return 0
	}

	return p.brackets[len(p.brackets)-1]
}

func (p *parser) push(bracket byte, ctx *Variable) {
	p.brackets = append(p.brackets, bracket)
	p.ctx = append(p.ctx, ctx)
}

func (p *parser) pop() {
	p.brackets = p.brackets[:len(p.brackets)-1]
	p.ctx = p.ctx[:len(p.ctx)-1]
}

// afterValue returns the tokens acceptable once a value is complete, decided
// by the innermost open aggregate: continue or close the element sequence,
// or terminate the declaration.
func (p *parser) afterValue() TokenKind {
	switch p.openBracket() {
	case '[':
		return TokenComma | TokenRightBracket
	case '(':
		return TokenComma | TokenRightParen
	default:
		return TokenSemicolon
	}
}

// afterDeclaration returns the tokens acceptable after a `;`: another
// declaration, the enclosing struct's close, or end of input at top level.
func (p *parser) afterDeclaration() TokenKind {
	if p.openBracket() == '{' {
		return TokenIdentifier | TokenRightCurly
	}

	return TokenIdentifier | TokenEOF
}

// appendMember appends a completed `name = scalar ;` declaration to the
// current struct context.
func (p *parser) appendMember(kind Type, name Token, raw string) *Error {
	_, err := p.current().add(kind, name.Text, raw, name)

	return err
}

// appendElement appends a completed scalar element to the current array or
// list context, enforcing array type homogeneity. The token locates the
// element for the mismatch diagnostic.
func (p *parser) appendElement(kind Type, raw string, at Token) *Error {
	ctx := p.current()

	if ctx.kind == TypeArray {
		if want := ctx.elemType(); want != TypeNone && kind != want {
			return newError(ErrorUnexpectedToken, at.Line, at.Column,
				"wrong array element type: expected %s, got %s", want, kind)
		}
	}

	_, err := ctx.add(kind, "", raw, at)

	return err
}

// open materializes a new aggregate under the current context, using the
// pending name when declared at struct level, and descends into it. Arrays
// reject a nested aggregate whose type differs from their established
// element type.
func (p *parser) open(
	kind Type,
	bracket byte,
	name Token,
	hasName bool,
	at Token,
) *Error {
	ctx := p.current()

	if ctx.kind == TypeArray {
		if want := ctx.elemType(); want != TypeNone && kind != want {
			return newError(ErrorUnexpectedToken, at.Line, at.Column,
				"wrong array element type: expected %s, got %s", want, kind)
		}
	}

	memberName, nameTok := "", at
	if hasName {
		memberName, nameTok = name.Text, name
	}

	child, err := ctx.add(kind, memberName, "", nameTok)
	if err != nil {
		return err
	}

	p.push(bracket, child)

	return nil
}

// run drives the state machine. The expected mask holds every token kind
// legal in the current state; any other token is an immediate error carrying
// that token's position.
func (p *parser) run() *Error {
	expected := TokenIdentifier | TokenEOF

	var (
		name    Token
		value   string
		kind    Type
		hasName bool
		hasVal  bool
		prev    Token
	)

	// reset drops the pending declaration state.
	reset := func() {
		name, hasName = Token{}, false
		value, hasVal = "", false
	}

	for _, tok := range p.toks {
		if tok.Kind&expected == 0 {
			return newError(ErrorUnexpectedToken, tok.Line, tok.Column,
				"unexpected token %s, expected %s",
				describeToken(tok), expected)
		}

		switch tok.Kind {
		case TokenEQ:
			expected = valueStarters

		case TokenSemicolon:
			if hasName && hasVal {
				if err := p.appendMember(kind, name, value); err != nil {
					return err
				}
			}

			reset()

			expected = p.afterDeclaration()

		case TokenComma:
			// Aggregate-valued elements are appended when they open, so
			// only a pending scalar remains to be added here.
			if hasVal {
				if err := p.appendElement(kind, value, prev); err != nil {
					return err
				}
			}

			reset()

			expected = valueStarters
			switch p.openBracket() {
			case '[':
				expected |= TokenRightBracket
			case '(':
				expected |= TokenRightParen
			}

		case TokenLeftBracket:
			if err := p.open(TypeArray, '[', name, hasName, tok); err != nil {
				return err
			}

			reset()

			expected = valueStarters | TokenRightBracket

		case TokenLeftParen:
			if err := p.open(TypeList, '(', name, hasName, tok); err != nil {
				return err
			}

			reset()

			expected = valueStarters | TokenRightParen

		case TokenLeftCurly:
			if err := p.open(TypeStruct, '{', name, hasName, tok); err != nil {
				return err
			}

			reset()

			expected = TokenIdentifier | TokenRightCurly

		case TokenRightBracket, TokenRightParen:
			// The last element before the close has no trailing comma.
			if hasVal {
				if err := p.appendElement(kind, value, prev); err != nil {
					return err
				}
			}

			reset()
			p.pop()

			expected = p.afterValue()

		case TokenRightCurly:
			reset()
			p.pop()

			expected = p.afterValue()

		case TokenIdentifier:
			name, hasName = tok, true
			expected = TokenEQ

		case TokenInt:
			kind, value, hasVal = TypeInt, tok.Text, true
			expected = p.afterValue()

		case TokenDouble:
			kind, value, hasVal = TypeDouble, tok.Text, true
			expected = p.afterValue()

		case TokenBool:
			kind, value, hasVal = TypeBool, tok.Text, true
			expected = p.afterValue()

		case TokenString:
			// Adjacent string literals concatenate.
			if prev.Kind == TokenString && hasVal {
				value += tok.Text
			} else {
				value = tok.Text
			}

			kind, hasVal = TypeString, true
			expected = p.afterValue() | TokenString

		case TokenEOF:
			// Only reachable at top level with no pending declaration.
		}

		prev = tok
	}

	return nil
}

func describeToken(tok Token) string {
	if tok.Kind == TokenEOF {
		return "end of input"
	}

	return "`" + tok.Text + "`"
}
