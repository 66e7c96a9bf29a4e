package ast

import "fmt"

// Kind tags every token and node of the syntax tree.
type Kind int

const (
	Unknown Kind = iota
	EndOfFileToken

	// Literals and names.
	Identifier
	NumericLiteral
	StringLiteral
	NoSubstitutionTemplateLiteral

	// Punctuation.
	OpenBraceToken
	CloseBraceToken
	OpenParenToken
	CloseParenToken
	OpenBracketToken
	CloseBracketToken
	DotToken
	DotDotDotToken
	SemicolonToken
	CommaToken
	ColonToken
	QuestionToken
	EqualsGreaterThanToken

	// Operators.
	LessThanToken
	GreaterThanToken
	LessThanEqualsToken
	GreaterThanEqualsToken
	EqualsEqualsToken
	ExclamationEqualsToken
	EqualsEqualsEqualsToken
	ExclamationEqualsEqualsToken
	PlusToken
	MinusToken
	AsteriskToken
	SlashToken
	PercentToken
	AmpersandToken
	BarToken
	AmpersandAmpersandToken
	BarBarToken
	ExclamationToken
	EqualsToken
	PlusEqualsToken
	MinusEqualsToken

	// Reserved words.
	ClassKeyword
	ConstKeyword
	DebuggerKeyword
	ElseKeyword
	ExportKeyword
	ExtendsKeyword
	FalseKeyword
	FunctionKeyword
	IfKeyword
	InstanceOfKeyword
	LetKeyword
	NewKeyword
	NullKeyword
	ReturnKeyword
	ThisKeyword
	TrueKeyword
	TypeOfKeyword
	VarKeyword
	WhileKeyword

	// Contextual modifiers. The scanner reports them as identifiers; the parser
	// turns them into modifier tokens where they act as modifiers.
	DeclareKeyword
	PublicKeyword
	PrivateKeyword
	ProtectedKeyword
	StaticKeyword
	ReadonlyKeyword

	// Names and types.
	ComputedPropertyName
	TypeReference

	// Binding patterns.
	ObjectBindingPattern
	ArrayBindingPattern
	BindingElement

	// Expressions.
	ArrayLiteralExpression
	ObjectLiteralExpression
	PropertyAssignment
	ShorthandPropertyAssignment
	PropertyAccessExpression
	ElementAccessExpression
	CallExpression
	NewExpression
	ParenthesizedExpression
	FunctionExpression
	ArrowFunction
	PrefixUnaryExpression
	BinaryExpression
	ConditionalExpression
	OmittedExpression

	// Statements.
	Block
	VariableStatement
	EmptyStatement
	ExpressionStatement
	IfStatement
	WhileStatement
	ReturnStatement
	DebuggerStatement

	// Declarations.
	VariableDeclaration
	VariableDeclarationList
	Parameter
	FunctionDeclaration
	ClassDeclaration
	PropertyDeclaration
	MethodDeclaration
	Constructor

	SourceFile
)

var kindNames = map[Kind]string{
	EndOfFileToken:                "EndOfFileToken",
	Identifier:                    "Identifier",
	NumericLiteral:                "NumericLiteral",
	StringLiteral:                 "StringLiteral",
	NoSubstitutionTemplateLiteral: "NoSubstitutionTemplateLiteral",
	OpenBraceToken:                "{",
	CloseBraceToken:               "}",
	OpenParenToken:                "(",
	CloseParenToken:               ")",
	OpenBracketToken:              "[",
	CloseBracketToken:             "]",
	DotToken:                      ".",
	DotDotDotToken:                "...",
	SemicolonToken:                ";",
	CommaToken:                    ",",
	ColonToken:                    ":",
	QuestionToken:                 "?",
	EqualsGreaterThanToken:        "=>",
	LessThanToken:                 "<",
	GreaterThanToken:              ">",
	LessThanEqualsToken:           "<=",
	GreaterThanEqualsToken:        ">=",
	EqualsEqualsToken:             "==",
	ExclamationEqualsToken:        "!=",
	EqualsEqualsEqualsToken:       "===",
	ExclamationEqualsEqualsToken:  "!==",
	PlusToken:                     "+",
	MinusToken:                    "-",
	AsteriskToken:                 "*",
	SlashToken:                    "/",
	PercentToken:                  "%",
	AmpersandToken:                "&",
	BarToken:                      "|",
	AmpersandAmpersandToken:       "&&",
	BarBarToken:                   "||",
	ExclamationToken:              "!",
	EqualsToken:                   "=",
	PlusEqualsToken:               "+=",
	MinusEqualsToken:              "-=",
	ClassKeyword:                  "class",
	ConstKeyword:                  "const",
	DebuggerKeyword:               "debugger",
	ElseKeyword:                   "else",
	ExportKeyword:                 "export",
	ExtendsKeyword:                "extends",
	FalseKeyword:                  "false",
	FunctionKeyword:               "function",
	IfKeyword:                     "if",
	InstanceOfKeyword:             "instanceof",
	LetKeyword:                    "let",
	NewKeyword:                    "new",
	NullKeyword:                   "null",
	ReturnKeyword:                 "return",
	ThisKeyword:                   "this",
	TrueKeyword:                   "true",
	TypeOfKeyword:                 "typeof",
	VarKeyword:                    "var",
	WhileKeyword:                  "while",
	DeclareKeyword:                "declare",
	PublicKeyword:                 "public",
	PrivateKeyword:                "private",
	ProtectedKeyword:              "protected",
	StaticKeyword:                 "static",
	ReadonlyKeyword:               "readonly",
	ComputedPropertyName:          "ComputedPropertyName",
	TypeReference:                 "TypeReference",
	ObjectBindingPattern:          "ObjectBindingPattern",
	ArrayBindingPattern:           "ArrayBindingPattern",
	BindingElement:                "BindingElement",
	ArrayLiteralExpression:        "ArrayLiteralExpression",
	ObjectLiteralExpression:       "ObjectLiteralExpression",
	PropertyAssignment:            "PropertyAssignment",
	ShorthandPropertyAssignment:   "ShorthandPropertyAssignment",
	PropertyAccessExpression:      "PropertyAccessExpression",
	ElementAccessExpression:       "ElementAccessExpression",
	CallExpression:                "CallExpression",
	NewExpression:                 "NewExpression",
	ParenthesizedExpression:       "ParenthesizedExpression",
	FunctionExpression:            "FunctionExpression",
	ArrowFunction:                 "ArrowFunction",
	PrefixUnaryExpression:         "PrefixUnaryExpression",
	BinaryExpression:              "BinaryExpression",
	ConditionalExpression:         "ConditionalExpression",
	OmittedExpression:             "OmittedExpression",
	Block:                         "Block",
	VariableStatement:             "VariableStatement",
	EmptyStatement:                "EmptyStatement",
	ExpressionStatement:           "ExpressionStatement",
	IfStatement:                   "IfStatement",
	WhileStatement:                "WhileStatement",
	ReturnStatement:               "ReturnStatement",
	DebuggerStatement:             "DebuggerStatement",
	VariableDeclaration:           "VariableDeclaration",
	VariableDeclarationList:       "VariableDeclarationList",
	Parameter:                     "Parameter",
	FunctionDeclaration:           "FunctionDeclaration",
	ClassDeclaration:              "ClassDeclaration",
	PropertyDeclaration:           "PropertyDeclaration",
	MethodDeclaration:             "MethodDeclaration",
	Constructor:                   "Constructor",
	SourceFile:                    "SourceFile",
}

func (k Kind) String() string {
	v, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", k)
	}
	return v
}

var keywords = map[string]Kind{
	"class":      ClassKeyword,
	"const":      ConstKeyword,
	"debugger":   DebuggerKeyword,
	"else":       ElseKeyword,
	"export":     ExportKeyword,
	"extends":    ExtendsKeyword,
	"false":      FalseKeyword,
	"function":   FunctionKeyword,
	"if":         IfKeyword,
	"instanceof": InstanceOfKeyword,
	"let":        LetKeyword,
	"new":        NewKeyword,
	"null":       NullKeyword,
	"return":     ReturnKeyword,
	"this":       ThisKeyword,
	"true":       TrueKeyword,
	"typeof":     TypeOfKeyword,
	"var":        VarKeyword,
	"while":      WhileKeyword,
}

// LookupKeyword reports the reserved word kind for text, or Identifier.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Identifier
}

var modifiers = map[string]Kind{
	"declare":   DeclareKeyword,
	"export":    ExportKeyword,
	"public":    PublicKeyword,
	"private":   PrivateKeyword,
	"protected": ProtectedKeyword,
	"static":    StaticKeyword,
	"readonly":  ReadonlyKeyword,
}

// LookupModifier reports the modifier kind spelled by text.
func LookupModifier(text string) (Kind, bool) {
	k, ok := modifiers[text]
	return k, ok
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= ClassKeyword && k <= WhileKeyword
}
