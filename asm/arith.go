package asm

import (
	"slices"
)

func isOperator(tok Token) bool {
	switch tok.Kind {
	case TOKEN_PLUS, TOKEN_MINUS, TOKEN_MULTIPLY:
		return true
	}
	return false
}

func precedence(tok Token) int {
	if tok.Kind == TOKEN_MULTIPLY {
		return 1
	}
	return 0
}

// Fold replaces the first parenthesized arithmetic group in tokens with
// its value. Groups after the first are left in place.
func Fold(tokens []Token) (folded []Token, err error) {
	start, end, found, err := findGroup(tokens)
	if err != nil || !found {
		return tokens, err
	}

	postfix, err := toPostfix(tokens[start:end])
	if err != nil {
		return
	}

	value, err := evaluate(postfix)
	if err != nil {
		return
	}

	folded = slices.Concat(tokens[:start], []Token{Number(value)}, tokens[end:])
	return
}

// findGroup locates the first '(' and its matching ')'.
func findGroup(tokens []Token) (start, end int, found bool, err error) {
	start = slices.IndexFunc(tokens, func(tok Token) bool { return tok.Kind == TOKEN_OPEN_PAREN })
	if start < 0 {
		return
	}

	depth := 0
	for n := start; n < len(tokens); n++ {
		tok := tokens[n]
		switch {
		case tok.Kind == TOKEN_OPEN_PAREN:
			depth++
		case tok.Kind == TOKEN_CLOSE_PAREN:
			depth--
			if depth == 0 {
				end = n + 1
				found = true
				return
			}
		case tok.IsValue(), isOperator(tok):
		default:
			err = ErrInvalidArithmetic
			return
		}
	}

	err = ErrMismatchedParen
	return
}

// toPostfix reorders an infix group into postfix order. All operators are
// left associative; '*' binds tighter than '+' and '-'.
func toPostfix(tokens []Token) (output []Token, err error) {
	operators := &Stack[Token]{}

	for _, tok := range tokens {
		switch {
		case tok.IsValue():
			output = append(output, Number(tok.Value))
		case isOperator(tok):
			for top, ok := operators.Peek(); ok && isOperator(top) && precedence(top) >= precedence(tok); top, ok = operators.Peek() {
				operators.Pop()
				output = append(output, top)
			}
			operators.Push(tok)
		case tok.Kind == TOKEN_OPEN_PAREN:
			operators.Push(tok)
		case tok.Kind == TOKEN_CLOSE_PAREN:
			for {
				top, ok := operators.Pop()
				if !ok {
					err = ErrMismatchedParen
					return
				}
				if top.Kind == TOKEN_OPEN_PAREN {
					break
				}
				output = append(output, top)
			}
		default:
			err = ErrInvalidArithmetic
			return
		}
	}

	for !operators.Empty() {
		top, _ := operators.Pop()
		if !isOperator(top) {
			err = ErrMismatchedParen
			return
		}
		output = append(output, top)
	}

	return
}

// evaluate reduces a postfix sequence to a single value.
func evaluate(postfix []Token) (value int32, err error) {
	values := &Stack[int32]{}

	for _, tok := range postfix {
		if tok.IsValue() {
			values.Push(tok.Value)
			continue
		}

		right, ok := values.Pop()
		if !ok {
			err = ErrInvalidArithmetic
			return
		}
		left, ok := values.Pop()
		if !ok {
			err = ErrInvalidArithmetic
			return
		}

		switch tok.Kind {
		case TOKEN_PLUS:
			values.Push(left + right)
		case TOKEN_MINUS:
			values.Push(left - right)
		case TOKEN_MULTIPLY:
			values.Push(left * right)
		default:
			err = ErrInvalidArithmetic
			return
		}
	}

	if values.Len() != 1 {
		err = ErrInvalidArithmetic
		return
	}

	value, _ = values.Pop()
	return
}
