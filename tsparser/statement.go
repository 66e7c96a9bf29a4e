package tsparser

import (
	"fmt"

	"github.com/ChainSafe/rulewalk/ast"
)

type parser struct {
	text   string
	tokens []token
	i      int
}

func (p *parser) tok() token {
	return p.tokens[p.i]
}

func (p *parser) peek(n int) token {
	if p.i+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.i+n]
}

func (p *parser) advance() token {
	t := p.tokens[p.i]
	if t.kind != ast.EndOfFileToken {
		p.i++
	}
	return t
}

func (p *parser) at(kind ast.Kind) bool {
	return p.tokens[p.i].kind == kind
}

func (p *parser) eat(kind ast.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(kind ast.Kind) (token, error) {
	if !p.at(kind) {
		return token{}, p.errorf("'%s' expected", kind)
	}
	return p.advance(), nil
}

// prevEnd returns the end offset of the last consumed token.
func (p *parser) prevEnd() int {
	if p.i == 0 {
		return 0
	}
	return p.tokens[p.i-1].end
}

func (p *parser) errorf(format string, args ...any) error {
	return &offsetError{offset: p.tok().pos, msg: fmt.Sprintf(format, args...)}
}

// parseSemicolon accepts an explicit semicolon or a position where one is
// inserted automatically: before '}', at the end of input or after a line break.
func (p *parser) parseSemicolon() error {
	if p.eat(ast.SemicolonToken) {
		return nil
	}
	t := p.tok()
	if t.kind == ast.CloseBraceToken || t.kind == ast.EndOfFileToken || t.newlineBefore {
		return nil
	}
	return p.errorf("';' expected")
}

func span(start, end int) ast.Span {
	return ast.Span{Start: start, Stop: end}
}

func tokenNode(t token, kind ast.Kind) *ast.Token {
	return &ast.Token{Span: span(t.pos, t.end), TokenKind: kind}
}

func isIdentifierName(t token) bool {
	return t.kind == ast.Identifier || t.kind.IsKeyword()
}

func (p *parser) parseIdentifier() (*ast.Ident, error) {
	t := p.tok()
	if t.kind != ast.Identifier {
		return nil, p.errorf("identifier expected")
	}
	p.advance()
	return &ast.Ident{Span: span(t.pos, t.end), Text: t.text}, nil
}

func (p *parser) parseSourceElements() ([]ast.Node, error) {
	var statements []ast.Node
	for !p.at(ast.EndOfFileToken) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

//nolint:cyclop
func (p *parser) parseStatement() (ast.Node, error) {
	t := p.tok()
	switch t.kind {
	case ast.OpenBraceToken:
		return p.parseBlock()
	case ast.SemicolonToken:
		p.advance()
		return &ast.Statement{Span: span(t.pos, t.end), StatementKind: ast.EmptyStatement}, nil
	case ast.VarKeyword, ast.LetKeyword, ast.ConstKeyword:
		return p.parseVariableStatement(t.pos, nil)
	case ast.FunctionKeyword:
		return p.parseFunction(ast.FunctionDeclaration, t.pos, nil)
	case ast.ClassKeyword:
		return p.parseClass(t.pos, nil)
	case ast.IfKeyword:
		return p.parseIf()
	case ast.WhileKeyword:
		return p.parseWhile()
	case ast.ReturnKeyword:
		return p.parseReturn()
	case ast.DebuggerKeyword:
		p.advance()
		if err := p.parseSemicolon(); err != nil {
			return nil, err
		}
		return &ast.Statement{Span: span(t.pos, p.prevEnd()), StatementKind: ast.DebuggerStatement}, nil
	case ast.ExportKeyword:
		return p.parseDeclarationWithModifiers()
	case ast.Identifier:
		if t.text == "declare" && p.startsDeclaration(p.peek(1)) {
			return p.parseDeclarationWithModifiers()
		}
	}
	return p.parseExpressionStatement()
}

func (p *parser) startsDeclaration(t token) bool {
	switch t.kind {
	case ast.VarKeyword, ast.LetKeyword, ast.ConstKeyword, ast.FunctionKeyword, ast.ClassKeyword, ast.ExportKeyword:
		return true
	case ast.Identifier:
		return t.text == "declare"
	}
	return false
}

func (p *parser) parseDeclarationWithModifiers() (ast.Node, error) {
	start := p.tok().pos
	var mods ast.ModifierList
	for {
		t := p.tok()
		if t.kind == ast.ExportKeyword {
			mods = append(mods, tokenNode(t, ast.ExportKeyword))
			p.advance()
			continue
		}
		if t.kind == ast.Identifier && t.text == "declare" && p.startsDeclaration(p.peek(1)) {
			mods = append(mods, tokenNode(t, ast.DeclareKeyword))
			p.advance()
			continue
		}
		break
	}
	switch p.tok().kind {
	case ast.VarKeyword, ast.LetKeyword, ast.ConstKeyword:
		return p.parseVariableStatement(start, mods)
	case ast.FunctionKeyword:
		return p.parseFunction(ast.FunctionDeclaration, start, mods)
	case ast.ClassKeyword:
		return p.parseClass(start, mods)
	}
	return nil, p.errorf("declaration expected")
}

func (p *parser) parseBlock() (ast.Node, error) {
	open, err := p.expect(ast.OpenBraceToken)
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{}
	for !p.at(ast.CloseBraceToken) {
		if p.at(ast.EndOfFileToken) {
			return nil, p.errorf("'}' expected")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.advance()
	block.Span = span(open.pos, p.prevEnd())
	return block, nil
}

func (p *parser) parseVariableStatement(start int, mods ast.ModifierList) (ast.Node, error) {
	list, err := p.parseVariableDeclarationList()
	if err != nil {
		return nil, err
	}
	if err := p.parseSemicolon(); err != nil {
		return nil, err
	}
	return &ast.VariableStmt{
		Span:            span(start, p.prevEnd()),
		Modifiers:       mods,
		DeclarationList: list,
	}, nil
}

func (p *parser) parseVariableDeclarationList() (*ast.VariableDeclList, error) {
	keyword := p.advance()
	list := &ast.VariableDeclList{Keyword: keyword.kind}
	for {
		decl, err := p.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}
		list.Declarations = append(list.Declarations, decl)
		if !p.eat(ast.CommaToken) {
			break
		}
	}
	list.Span = span(keyword.pos, p.prevEnd())
	return list, nil
}

func (p *parser) parseVariableDeclaration() (*ast.VariableDecl, error) {
	start := p.tok().pos
	name, err := p.parseBindingName()
	if err != nil {
		return nil, err
	}
	decl := &ast.VariableDecl{Name: name}
	if p.eat(ast.ColonToken) {
		if decl.Type, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if p.eat(ast.EqualsToken) {
		if decl.Initializer, err = p.parseAssignment(); err != nil {
			return nil, err
		}
	}
	decl.Span = span(start, p.prevEnd())
	return decl, nil
}

func (p *parser) parseBindingName() (ast.Node, error) {
	switch p.tok().kind {
	case ast.OpenBraceToken:
		return p.parseObjectBindingPattern()
	case ast.OpenBracketToken:
		return p.parseArrayBindingPattern()
	}
	return p.parseIdentifier()
}

func (p *parser) parseObjectBindingPattern() (ast.Node, error) {
	open := p.advance()
	pattern := &ast.BindingPattern{PatternKind: ast.ObjectBindingPattern}
	for !p.at(ast.CloseBraceToken) {
		elem, err := p.parseObjectBindingElement()
		if err != nil {
			return nil, err
		}
		pattern.Elements = append(pattern.Elements, elem)
		if !p.eat(ast.CommaToken) {
			break
		}
	}
	if _, err := p.expect(ast.CloseBraceToken); err != nil {
		return nil, err
	}
	pattern.Span = span(open.pos, p.prevEnd())
	return pattern, nil
}

func (p *parser) parseObjectBindingElement() (ast.Node, error) {
	start := p.tok().pos
	elem := &ast.BindingElem{}
	var err error
	switch {
	case p.at(ast.DotDotDotToken):
		elem.DotDotDot = tokenNode(p.advance(), ast.DotDotDotToken)
		if elem.Name, err = p.parseIdentifier(); err != nil {
			return nil, err
		}
	case p.at(ast.OpenBracketToken) || p.peek(1).kind == ast.ColonToken:
		if elem.PropertyName, err = p.parsePropertyName(); err != nil {
			return nil, err
		}
		if _, err = p.expect(ast.ColonToken); err != nil {
			return nil, err
		}
		if elem.Name, err = p.parseBindingName(); err != nil {
			return nil, err
		}
	default:
		if elem.Name, err = p.parseIdentifier(); err != nil {
			return nil, err
		}
	}
	if p.eat(ast.EqualsToken) {
		if elem.Initializer, err = p.parseAssignment(); err != nil {
			return nil, err
		}
	}
	elem.Span = span(start, p.prevEnd())
	return elem, nil
}

func (p *parser) parseArrayBindingPattern() (ast.Node, error) {
	open := p.advance()
	pattern := &ast.BindingPattern{PatternKind: ast.ArrayBindingPattern}
	for !p.at(ast.CloseBracketToken) {
		if t := p.tok(); t.kind == ast.CommaToken {
			pattern.Elements = append(pattern.Elements, &ast.Omitted{Span: span(t.pos, t.pos)})
			p.advance()
			continue
		}
		start := p.tok().pos
		elem := &ast.BindingElem{}
		var err error
		if p.at(ast.DotDotDotToken) {
			elem.DotDotDot = tokenNode(p.advance(), ast.DotDotDotToken)
		}
		if elem.Name, err = p.parseBindingName(); err != nil {
			return nil, err
		}
		if p.eat(ast.EqualsToken) {
			if elem.Initializer, err = p.parseAssignment(); err != nil {
				return nil, err
			}
		}
		elem.Span = span(start, p.prevEnd())
		pattern.Elements = append(pattern.Elements, elem)
		if !p.eat(ast.CommaToken) {
			break
		}
	}
	if _, err := p.expect(ast.CloseBracketToken); err != nil {
		return nil, err
	}
	pattern.Span = span(open.pos, p.prevEnd())
	return pattern, nil
}

// parsePropertyName reads an identifier, a string or numeric literal, or a
// computed `[expr]` name.
func (p *parser) parsePropertyName() (ast.Node, error) {
	t := p.tok()
	switch {
	case t.kind == ast.StringLiteral || t.kind == ast.NumericLiteral:
		p.advance()
		return &ast.Literal{Span: span(t.pos, t.end), LiteralKind: t.kind, Text: t.text}, nil
	case t.kind == ast.OpenBracketToken:
		p.advance()
		expr, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(ast.CloseBracketToken); err != nil {
			return nil, err
		}
		return &ast.ComputedName{Span: span(t.pos, p.prevEnd()), Expression: expr}, nil
	case isIdentifierName(t):
		p.advance()
		return &ast.Ident{Span: span(t.pos, t.end), Text: t.text}, nil
	}
	return nil, p.errorf("property name expected")
}

func (p *parser) parseFunction(kind ast.Kind, start int, mods ast.ModifierList) (ast.Node, error) {
	if _, err := p.expect(ast.FunctionKeyword); err != nil {
		return nil, err
	}
	fn := &ast.FunctionLike{FunctionKind: kind, Modifiers: mods}
	if p.at(ast.Identifier) {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		fn.Name = name
	} else if kind == ast.FunctionDeclaration {
		return nil, p.errorf("identifier expected")
	}
	if err := p.parseSignature(fn); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	fn.Span = span(start, p.prevEnd())
	return fn, nil
}

func (p *parser) parseSignature(fn *ast.FunctionLike) error {
	params, err := p.parseParameters()
	if err != nil {
		return err
	}
	fn.Parameters = params
	if p.eat(ast.ColonToken) {
		if fn.Type, err = p.parseType(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseParameters() ([]*ast.ParameterDecl, error) {
	if _, err := p.expect(ast.OpenParenToken); err != nil {
		return nil, err
	}
	var params []*ast.ParameterDecl
	for !p.at(ast.CloseParenToken) {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.eat(ast.CommaToken) {
			break
		}
	}
	if _, err := p.expect(ast.CloseParenToken); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *parser) parseParameter() (*ast.ParameterDecl, error) {
	start := p.tok().pos
	param := &ast.ParameterDecl{}
	for {
		t := p.tok()
		kind, ok := ast.LookupModifier(t.text)
		if t.kind != ast.Identifier || !ok || kind == ast.DeclareKeyword || kind == ast.StaticKeyword {
			break
		}
		next := p.peek(1).kind
		if next != ast.Identifier && next != ast.OpenBraceToken && next != ast.OpenBracketToken && next != ast.DotDotDotToken {
			break
		}
		param.Modifiers = append(param.Modifiers, tokenNode(t, kind))
		p.advance()
	}
	if p.at(ast.DotDotDotToken) {
		param.DotDotDot = tokenNode(p.advance(), ast.DotDotDotToken)
	}
	var err error
	if param.Name, err = p.parseBindingName(); err != nil {
		return nil, err
	}
	p.eat(ast.QuestionToken)
	if p.eat(ast.ColonToken) {
		if param.Type, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if p.eat(ast.EqualsToken) {
		if param.Initializer, err = p.parseAssignment(); err != nil {
			return nil, err
		}
	}
	param.Span = span(start, p.prevEnd())
	return param, nil
}

func (p *parser) parseClass(start int, mods ast.ModifierList) (ast.Node, error) {
	if _, err := p.expect(ast.ClassKeyword); err != nil {
		return nil, err
	}
	class := &ast.ClassDecl{Modifiers: mods}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	class.Name = name
	if p.eat(ast.ExtendsKeyword) {
		if class.Extends, err = p.parseLeftHandSide(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(ast.OpenBraceToken); err != nil {
		return nil, err
	}
	for !p.at(ast.CloseBraceToken) {
		if p.at(ast.EndOfFileToken) {
			return nil, p.errorf("'}' expected")
		}
		if p.eat(ast.SemicolonToken) {
			continue
		}
		member, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		class.Members = append(class.Members, member)
	}
	p.advance()
	class.Span = span(start, p.prevEnd())
	return class, nil
}

func isMemberNameStart(t token) bool {
	return isIdentifierName(t) || t.kind == ast.StringLiteral || t.kind == ast.NumericLiteral ||
		t.kind == ast.OpenBracketToken
}

func (p *parser) parseClassMember() (ast.Node, error) {
	start := p.tok().pos
	var mods ast.ModifierList
	for {
		t := p.tok()
		kind, ok := ast.LookupModifier(t.text)
		if t.kind != ast.Identifier || !ok || !isMemberNameStart(p.peek(1)) {
			break
		}
		mods = append(mods, tokenNode(t, kind))
		p.advance()
	}
	name, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	if p.at(ast.OpenParenToken) {
		kind := ast.MethodDeclaration
		if id, ok := name.(*ast.Ident); ok && id.Text == "constructor" {
			kind = ast.Constructor
		}
		fn := &ast.FunctionLike{FunctionKind: kind, Modifiers: mods, Name: name}
		if err := p.parseSignature(fn); err != nil {
			return nil, err
		}
		if fn.Body, err = p.parseBlock(); err != nil {
			return nil, err
		}
		fn.Span = span(start, p.prevEnd())
		return fn, nil
	}
	prop := &ast.PropertyDecl{Modifiers: mods, Name: name}
	if !p.eat(ast.QuestionToken) {
		p.eat(ast.ExclamationToken)
	}
	if p.eat(ast.ColonToken) {
		if prop.Type, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if p.eat(ast.EqualsToken) {
		if prop.Initializer, err = p.parseAssignment(); err != nil {
			return nil, err
		}
	}
	if err := p.parseSemicolon(); err != nil {
		return nil, err
	}
	prop.Span = span(start, p.prevEnd())
	return prop, nil
}

func (p *parser) parseIf() (ast.Node, error) {
	start := p.advance().pos
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Expression: cond}
	if stmt.ThenStatement, err = p.parseStatement(); err != nil {
		return nil, err
	}
	if p.eat(ast.ElseKeyword) {
		if stmt.ElseStatement, err = p.parseStatement(); err != nil {
			return nil, err
		}
	}
	stmt.Span = span(start, p.prevEnd())
	return stmt, nil
}

func (p *parser) parseWhile() (ast.Node, error) {
	start := p.advance().pos
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	stmt := &ast.WhileStmt{Expression: cond}
	if stmt.Statement, err = p.parseStatement(); err != nil {
		return nil, err
	}
	stmt.Span = span(start, p.prevEnd())
	return stmt, nil
}

func (p *parser) parseCondition() (ast.Node, error) {
	if _, err := p.expect(ast.OpenParenToken); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ast.CloseParenToken); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *parser) parseReturn() (ast.Node, error) {
	start := p.advance().pos
	stmt := &ast.ReturnStmt{}
	t := p.tok()
	if t.kind != ast.SemicolonToken && t.kind != ast.CloseBraceToken && t.kind != ast.EndOfFileToken && !t.newlineBefore {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Expression = expr
	}
	if err := p.parseSemicolon(); err != nil {
		return nil, err
	}
	stmt.Span = span(start, p.prevEnd())
	return stmt, nil
}

func (p *parser) parseExpressionStatement() (ast.Node, error) {
	start := p.tok().pos
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.parseSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Span: span(start, p.prevEnd()), Expression: expr}, nil
}
