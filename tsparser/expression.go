package tsparser

import (
	"github.com/ChainSafe/rulewalk/ast"
)

func (p *parser) parseExpression() (ast.Node, error) {
	return p.parseAssignment()
}

func isAssignmentOperator(kind ast.Kind) bool {
	return kind == ast.EqualsToken || kind == ast.PlusEqualsToken || kind == ast.MinusEqualsToken
}

func (p *parser) parseAssignment() (ast.Node, error) {
	if p.isArrowFunctionStart() {
		return p.parseArrowFunction()
	}
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if p.at(ast.QuestionToken) {
		return p.parseConditional(left)
	}
	if t := p.tok(); isAssignmentOperator(t.kind) {
		p.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{
			Span:          span(left.Pos(), right.End()),
			Left:          left,
			OperatorToken: tokenNode(t, t.kind),
			Right:         right,
		}, nil
	}
	return left, nil
}

func (p *parser) parseConditional(cond ast.Node) (ast.Node, error) {
	p.advance()
	whenTrue, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.ColonToken); err != nil {
		return nil, err
	}
	whenFalse, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.Conditional{
		Span:      span(cond.Pos(), whenFalse.End()),
		Condition: cond,
		WhenTrue:  whenTrue,
		WhenFalse: whenFalse,
	}, nil
}

// isArrowFunctionStart looks ahead for `x =>` or `( ... ) =>`.
func (p *parser) isArrowFunctionStart() bool {
	switch p.tok().kind {
	case ast.Identifier:
		return p.peek(1).kind == ast.EqualsGreaterThanToken
	case ast.OpenParenToken:
		depth := 0
		for i := p.i; i < len(p.tokens); i++ {
			switch p.tokens[i].kind {
			case ast.OpenParenToken:
				depth++
			case ast.CloseParenToken:
				depth--
				if depth == 0 {
					return i+1 < len(p.tokens) && p.tokens[i+1].kind == ast.EqualsGreaterThanToken
				}
			case ast.EndOfFileToken:
				return false
			}
		}
	}
	return false
}

func (p *parser) parseArrowFunction() (ast.Node, error) {
	start := p.tok().pos
	fn := &ast.FunctionLike{FunctionKind: ast.ArrowFunction}
	if p.at(ast.Identifier) {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		fn.Parameters = []*ast.ParameterDecl{{Span: name.Span, Name: name}}
	} else {
		params, err := p.parseParameters()
		if err != nil {
			return nil, err
		}
		fn.Parameters = params
	}
	if _, err := p.expect(ast.EqualsGreaterThanToken); err != nil {
		return nil, err
	}
	var err error
	if p.at(ast.OpenBraceToken) {
		fn.Body, err = p.parseBlock()
	} else {
		fn.Body, err = p.parseAssignment()
	}
	if err != nil {
		return nil, err
	}
	fn.Span = span(start, p.prevEnd())
	return fn, nil
}

func binaryPrecedence(kind ast.Kind) int {
	switch kind {
	case ast.BarBarToken:
		return 1
	case ast.AmpersandAmpersandToken:
		return 2
	case ast.BarToken:
		return 3
	case ast.AmpersandToken:
		return 4
	case ast.EqualsEqualsToken, ast.ExclamationEqualsToken, ast.EqualsEqualsEqualsToken, ast.ExclamationEqualsEqualsToken:
		return 5
	case ast.LessThanToken, ast.GreaterThanToken, ast.LessThanEqualsToken, ast.GreaterThanEqualsToken, ast.InstanceOfKeyword:
		return 6
	case ast.PlusToken, ast.MinusToken:
		return 7
	case ast.AsteriskToken, ast.SlashToken, ast.PercentToken:
		return 8
	}
	return 0
}

// parseBinary parses left-associative binary operators binding tighter than minPrec.
func (p *parser) parseBinary(minPrec int) (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.tok()
		prec := binaryPrecedence(t.kind)
		if prec == 0 || prec <= minPrec {
			return left, nil
		}
		p.advance()
		right, err := p.parseBinary(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{
			Span:          span(left.Pos(), right.End()),
			Left:          left,
			OperatorToken: tokenNode(t, t.kind),
			Right:         right,
		}
	}
}

func (p *parser) parseUnary() (ast.Node, error) {
	t := p.tok()
	switch t.kind {
	case ast.ExclamationToken, ast.MinusToken, ast.PlusToken, ast.TypeOfKeyword:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.PrefixUnary{
			Span:     span(t.pos, operand.End()),
			Operator: tokenNode(t, t.kind),
			Operand:  operand,
		}, nil
	}
	return p.parseLeftHandSide()
}

func (p *parser) parseLeftHandSide() (ast.Node, error) {
	var (
		expr ast.Node
		err  error
	)
	if p.at(ast.NewKeyword) {
		expr, err = p.parseNew()
	} else {
		expr, err = p.parsePrimary()
	}
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok().kind {
		case ast.DotToken, ast.OpenBracketToken:
			if expr, err = p.parseMemberAccess(expr); err != nil {
				return nil, err
			}
		case ast.OpenParenToken:
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.Call{Span: span(expr.Pos(), p.prevEnd()), Expression: expr, Arguments: args}
		default:
			return expr, nil
		}
	}
}

// parseMemberAccess parses one `.name` or `[expr]` suffix of expr.
func (p *parser) parseMemberAccess(expr ast.Node) (ast.Node, error) {
	if p.eat(ast.DotToken) {
		t := p.tok()
		if !isIdentifierName(t) {
			return nil, p.errorf("identifier expected")
		}
		p.advance()
		name := &ast.Ident{Span: span(t.pos, t.end), Text: t.text}
		return &ast.PropertyAccess{Span: span(expr.Pos(), t.end), Expression: expr, Name: name}, nil
	}
	if _, err := p.expect(ast.OpenBracketToken); err != nil {
		return nil, err
	}
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.CloseBracketToken); err != nil {
		return nil, err
	}
	return &ast.ElementAccess{Span: span(expr.Pos(), p.prevEnd()), Expression: expr, Argument: arg}, nil
}

func (p *parser) parseNew() (ast.Node, error) {
	start := p.advance().pos
	callee, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.at(ast.DotToken) || p.at(ast.OpenBracketToken) {
		if callee, err = p.parseMemberAccess(callee); err != nil {
			return nil, err
		}
	}
	call := &ast.Call{IsNew: true, Expression: callee}
	if p.at(ast.OpenParenToken) {
		if call.Arguments, err = p.parseArguments(); err != nil {
			return nil, err
		}
	}
	call.Span = span(start, p.prevEnd())
	return call, nil
}

func (p *parser) parseArguments() ([]ast.Node, error) {
	if _, err := p.expect(ast.OpenParenToken); err != nil {
		return nil, err
	}
	var args []ast.Node
	for !p.at(ast.CloseParenToken) {
		arg, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.eat(ast.CommaToken) {
			break
		}
	}
	if _, err := p.expect(ast.CloseParenToken); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parsePrimary() (ast.Node, error) {
	t := p.tok()
	switch t.kind {
	case ast.Identifier:
		return p.parseIdentifier()
	case ast.NumericLiteral, ast.StringLiteral, ast.NoSubstitutionTemplateLiteral,
		ast.NullKeyword, ast.TrueKeyword, ast.FalseKeyword, ast.ThisKeyword:
		p.advance()
		return &ast.Literal{Span: span(t.pos, t.end), LiteralKind: t.kind, Text: t.text}, nil
	case ast.OpenParenToken:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ast.CloseParenToken); err != nil {
			return nil, err
		}
		return &ast.Parenthesized{Span: span(t.pos, p.prevEnd()), Expression: expr}, nil
	case ast.OpenBracketToken:
		return p.parseArrayLiteral()
	case ast.OpenBraceToken:
		return p.parseObjectLiteral()
	case ast.FunctionKeyword:
		return p.parseFunction(ast.FunctionExpression, t.pos, nil)
	}
	return nil, p.errorf("expression expected")
}

func (p *parser) parseArrayLiteral() (ast.Node, error) {
	open := p.advance()
	array := &ast.ArrayLiteral{}
	for !p.at(ast.CloseBracketToken) {
		if t := p.tok(); t.kind == ast.CommaToken {
			array.Elements = append(array.Elements, &ast.Omitted{Span: span(t.pos, t.pos)})
			p.advance()
			continue
		}
		elem, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		array.Elements = append(array.Elements, elem)
		if !p.eat(ast.CommaToken) {
			break
		}
	}
	if _, err := p.expect(ast.CloseBracketToken); err != nil {
		return nil, err
	}
	array.Span = span(open.pos, p.prevEnd())
	return array, nil
}

func (p *parser) parseObjectLiteral() (ast.Node, error) {
	open := p.advance()
	object := &ast.ObjectLiteral{}
	for !p.at(ast.CloseBraceToken) {
		start := p.tok().pos
		name, err := p.parsePropertyName()
		if err != nil {
			return nil, err
		}
		prop := &ast.PropertyAssign{Name: name}
		if p.eat(ast.ColonToken) {
			if prop.Initializer, err = p.parseAssignment(); err != nil {
				return nil, err
			}
		} else if _, ok := name.(*ast.Ident); !ok {
			return nil, p.errorf("':' expected")
		}
		prop.Span = span(start, p.prevEnd())
		object.Properties = append(object.Properties, prop)
		if !p.eat(ast.CommaToken) {
			break
		}
	}
	if _, err := p.expect(ast.CloseBraceToken); err != nil {
		return nil, err
	}
	object.Span = span(open.pos, p.prevEnd())
	return object, nil
}

// parseType consumes a type annotation and keeps it as an opaque node.
func (p *parser) parseType() (ast.Node, error) {
	start := p.tok().pos
	if err := p.skipTypeOperand(); err != nil {
		return nil, err
	}
	for p.eat(ast.BarToken) || p.eat(ast.AmpersandToken) {
		if err := p.skipTypeOperand(); err != nil {
			return nil, err
		}
	}
	end := p.prevEnd()
	return &ast.TypeNode{Span: span(start, end), Text: p.text[start:end]}, nil
}

func (p *parser) skipTypeOperand() error {
	t := p.tok()
	switch {
	case t.kind == ast.OpenParenToken:
		p.advance()
		if _, err := p.parseType(); err != nil {
			return err
		}
		if _, err := p.expect(ast.CloseParenToken); err != nil {
			return err
		}
	case t.kind == ast.OpenBraceToken:
		for depth := 0; ; {
			switch p.advance().kind {
			case ast.OpenBraceToken:
				depth++
			case ast.CloseBraceToken:
				depth--
			case ast.EndOfFileToken:
				return p.errorf("'}' expected")
			}
			if depth == 0 {
				break
			}
		}
	case t.kind == ast.StringLiteral || t.kind == ast.NumericLiteral:
		p.advance()
	case isIdentifierName(t):
		p.advance()
		for p.eat(ast.DotToken) {
			if !isIdentifierName(p.tok()) {
				return p.errorf("identifier expected")
			}
			p.advance()
		}
		if p.eat(ast.LessThanToken) {
			for {
				if _, err := p.parseType(); err != nil {
					return err
				}
				if !p.eat(ast.CommaToken) {
					break
				}
			}
			if _, err := p.expect(ast.GreaterThanToken); err != nil {
				return err
			}
		}
	default:
		return p.errorf("type expected")
	}
	for p.at(ast.OpenBracketToken) && p.peek(1).kind == ast.CloseBracketToken {
		p.advance()
		p.advance()
	}
	return nil
}
