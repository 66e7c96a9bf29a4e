// Package ast defines the syntax tree walked by the analyzers.
//
// The tree covers the TypeScript subset produced by package tsparser. Nodes are
// immutable once built and may be shared between goroutines.
package ast

// Node is a handle into the parsed tree.
type Node interface {
	Kind() Kind
	// Pos is the byte offset of the node's first token.
	Pos() int
	// End is the byte offset right after the node's last token.
	End() int
	// Children returns the direct children in source order.
	Children() []Node
}

// Span is the position part shared by all nodes.
type Span struct {
	Start int
	Stop  int
}

func (s Span) Pos() int { return s.Start }
func (s Span) End() int { return s.Stop }

// Width returns the number of bytes the node covers.
func Width(n Node) int {
	return n.End() - n.Pos()
}

// collect drops absent optional children.
func collect(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Token is a leaf node for operators and modifier keywords.
type Token struct {
	Span
	TokenKind Kind
}

func (t *Token) Kind() Kind       { return t.TokenKind }
func (t *Token) Children() []Node { return nil }

// ModifierList holds the modifier keywords written before a declaration.
type ModifierList []*Token

// Has reports whether the list contains a modifier of the given kind.
func (m ModifierList) Has(kind Kind) bool {
	for _, t := range m {
		if t.TokenKind == kind {
			return true
		}
	}
	return false
}

func (m ModifierList) nodes() []Node {
	out := make([]Node, 0, len(m))
	for _, t := range m {
		out = append(out, t)
	}
	return out
}

type Ident struct {
	Span
	Text string
}

func (*Ident) Kind() Kind       { return Identifier }
func (*Ident) Children() []Node { return nil }

// Literal covers numeric, string and template literals as well as the
// null, true, false and this keywords. Text is the raw source text.
type Literal struct {
	Span
	LiteralKind Kind
	Text        string
}

func (l *Literal) Kind() Kind     { return l.LiteralKind }
func (*Literal) Children() []Node { return nil }

type TypeNode struct {
	Span
	Text string
}

func (*TypeNode) Kind() Kind       { return TypeReference }
func (*TypeNode) Children() []Node { return nil }

type ComputedName struct {
	Span
	Expression Node
}

func (*ComputedName) Kind() Kind         { return ComputedPropertyName }
func (c *ComputedName) Children() []Node { return collect(c.Expression) }

// BindingPattern is an object or array destructuring pattern.
type BindingPattern struct {
	Span
	PatternKind Kind
	Elements    []Node
}

func (b *BindingPattern) Kind() Kind       { return b.PatternKind }
func (b *BindingPattern) Children() []Node { return collect(b.Elements...) }

type BindingElem struct {
	Span
	DotDotDot    *Token
	PropertyName Node
	Name         Node
	Initializer  Node
}

func (*BindingElem) Kind() Kind { return BindingElement }
func (b *BindingElem) Children() []Node {
	var dots Node
	if b.DotDotDot != nil {
		dots = b.DotDotDot
	}
	return collect(dots, b.PropertyName, b.Name, b.Initializer)
}

type ArrayLiteral struct {
	Span
	Elements []Node
}

func (*ArrayLiteral) Kind() Kind         { return ArrayLiteralExpression }
func (a *ArrayLiteral) Children() []Node { return collect(a.Elements...) }

type ObjectLiteral struct {
	Span
	Properties []Node
}

func (*ObjectLiteral) Kind() Kind         { return ObjectLiteralExpression }
func (o *ObjectLiteral) Children() []Node { return collect(o.Properties...) }

// PropertyAssign is `name: value` inside an object literal. Shorthand
// properties have no Initializer.
type PropertyAssign struct {
	Span
	Name        Node
	Initializer Node
}

func (p *PropertyAssign) Kind() Kind {
	if p.Initializer == nil {
		return ShorthandPropertyAssignment
	}
	return PropertyAssignment
}
func (p *PropertyAssign) Children() []Node { return collect(p.Name, p.Initializer) }

type PropertyAccess struct {
	Span
	Expression Node
	Name       *Ident
}

func (*PropertyAccess) Kind() Kind         { return PropertyAccessExpression }
func (p *PropertyAccess) Children() []Node { return collect(p.Expression, p.Name) }

type ElementAccess struct {
	Span
	Expression Node
	Argument   Node
}

func (*ElementAccess) Kind() Kind         { return ElementAccessExpression }
func (e *ElementAccess) Children() []Node { return collect(e.Expression, e.Argument) }

// Call is a call or, when IsNew is set, a `new` expression.
type Call struct {
	Span
	IsNew      bool
	Expression Node
	Arguments  []Node
}

func (c *Call) Kind() Kind {
	if c.IsNew {
		return NewExpression
	}
	return CallExpression
}
func (c *Call) Children() []Node {
	return append(collect(c.Expression), collect(c.Arguments...)...)
}

type Parenthesized struct {
	Span
	Expression Node
}

func (*Parenthesized) Kind() Kind         { return ParenthesizedExpression }
func (p *Parenthesized) Children() []Node { return collect(p.Expression) }

type PrefixUnary struct {
	Span
	Operator *Token
	Operand  Node
}

func (*PrefixUnary) Kind() Kind         { return PrefixUnaryExpression }
func (p *PrefixUnary) Children() []Node { return collect(p.Operator, p.Operand) }

// Binary covers arithmetic, comparison, logical and assignment expressions.
type Binary struct {
	Span
	Left          Node
	OperatorToken *Token
	Right         Node
}

func (*Binary) Kind() Kind         { return BinaryExpression }
func (b *Binary) Children() []Node { return collect(b.Left, b.OperatorToken, b.Right) }

type Conditional struct {
	Span
	Condition Node
	WhenTrue  Node
	WhenFalse Node
}

func (*Conditional) Kind() Kind         { return ConditionalExpression }
func (c *Conditional) Children() []Node { return collect(c.Condition, c.WhenTrue, c.WhenFalse) }

// Omitted is the hole in `[a, , b]`.
type Omitted struct {
	Span
}

func (*Omitted) Kind() Kind       { return OmittedExpression }
func (*Omitted) Children() []Node { return nil }

// FunctionLike covers function declarations and expressions, arrow
// functions, methods and constructors. Body is a Block, or an expression for
// concise arrow functions.
type FunctionLike struct {
	Span
	FunctionKind Kind
	Modifiers    ModifierList
	Name         Node
	Parameters   []*ParameterDecl
	Type         Node
	Body         Node
}

func (f *FunctionLike) Kind() Kind { return f.FunctionKind }
func (f *FunctionLike) Children() []Node {
	out := f.Modifiers.nodes()
	out = append(out, collect(f.Name)...)
	for _, p := range f.Parameters {
		out = append(out, p)
	}
	return append(out, collect(f.Type, f.Body)...)
}

type ParameterDecl struct {
	Span
	Modifiers   ModifierList
	DotDotDot   *Token
	Name        Node
	Type        Node
	Initializer Node
}

func (*ParameterDecl) Kind() Kind { return Parameter }
func (p *ParameterDecl) Children() []Node {
	out := p.Modifiers.nodes()
	if p.DotDotDot != nil {
		out = append(out, p.DotDotDot)
	}
	return append(out, collect(p.Name, p.Type, p.Initializer)...)
}

type ClassDecl struct {
	Span
	Modifiers ModifierList
	Name      *Ident
	Extends   Node
	Members   []Node
}

func (*ClassDecl) Kind() Kind { return ClassDeclaration }
func (c *ClassDecl) Children() []Node {
	out := c.Modifiers.nodes()
	if c.Name != nil {
		out = append(out, c.Name)
	}
	out = append(out, collect(c.Extends)...)
	return append(out, collect(c.Members...)...)
}

// PropertyDecl is a class field. Name is an Identifier, a string or numeric
// literal, or a ComputedPropertyName.
type PropertyDecl struct {
	Span
	Modifiers   ModifierList
	Name        Node
	Type        Node
	Initializer Node
}

func (*PropertyDecl) Kind() Kind { return PropertyDeclaration }
func (p *PropertyDecl) Children() []Node {
	return append(p.Modifiers.nodes(), collect(p.Name, p.Type, p.Initializer)...)
}

type VariableStmt struct {
	Span
	Modifiers       ModifierList
	DeclarationList *VariableDeclList
}

func (*VariableStmt) Kind() Kind { return VariableStatement }
func (v *VariableStmt) Children() []Node {
	return append(v.Modifiers.nodes(), v.DeclarationList)
}

// VariableDeclList is the `var a = 1, b` part of a variable statement.
// Keyword is one of VarKeyword, LetKeyword or ConstKeyword.
type VariableDeclList struct {
	Span
	Keyword      Kind
	Declarations []*VariableDecl
}

func (*VariableDeclList) Kind() Kind { return VariableDeclarationList }
func (v *VariableDeclList) Children() []Node {
	out := make([]Node, 0, len(v.Declarations))
	for _, d := range v.Declarations {
		out = append(out, d)
	}
	return out
}

type VariableDecl struct {
	Span
	Name        Node
	Type        Node
	Initializer Node
}

func (*VariableDecl) Kind() Kind         { return VariableDeclaration }
func (v *VariableDecl) Children() []Node { return collect(v.Name, v.Type, v.Initializer) }

type BlockStmt struct {
	Span
	Statements []Node
}

func (*BlockStmt) Kind() Kind         { return Block }
func (b *BlockStmt) Children() []Node { return collect(b.Statements...) }

type IfStmt struct {
	Span
	Expression    Node
	ThenStatement Node
	ElseStatement Node
}

func (*IfStmt) Kind() Kind { return IfStatement }
func (i *IfStmt) Children() []Node {
	return collect(i.Expression, i.ThenStatement, i.ElseStatement)
}

type WhileStmt struct {
	Span
	Expression Node
	Statement  Node
}

func (*WhileStmt) Kind() Kind         { return WhileStatement }
func (w *WhileStmt) Children() []Node { return collect(w.Expression, w.Statement) }

type ReturnStmt struct {
	Span
	Expression Node
}

func (*ReturnStmt) Kind() Kind         { return ReturnStatement }
func (r *ReturnStmt) Children() []Node { return collect(r.Expression) }

type ExpressionStmt struct {
	Span
	Expression Node
}

func (*ExpressionStmt) Kind() Kind         { return ExpressionStatement }
func (e *ExpressionStmt) Children() []Node { return collect(e.Expression) }

// Statement is a leaf statement: `debugger;` or `;`.
type Statement struct {
	Span
	StatementKind Kind
}

func (s *Statement) Kind() Kind     { return s.StatementKind }
func (*Statement) Children() []Node { return nil }
