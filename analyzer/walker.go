package analyzer

import (
	"github.com/ChainSafe/rulewalk/ast"
	"github.com/ChainSafe/rulewalk/common/lifo"
)

// Handler is invoked for every node of the kind it was registered for. It
// must call w.VisitChildren(node) to continue into the subtree; returning
// without doing so skips it.
type Handler func(w *Walker, node ast.Node)

// Walker performs a pre-order, left-to-right traversal of one file on behalf
// of one rule and accumulates the failures the rule reports.
type Walker struct {
	file      *ast.File
	ruleName  string
	handlers  map[ast.Kind]Handler
	ancestors lifo.Stack[ast.Node]
	failures  []*Failure
}

// NewWalker creates a walker for file reporting failures under ruleName.
func NewWalker(file *ast.File, ruleName string) *Walker {
	return &Walker{
		file:     file,
		ruleName: ruleName,
		handlers: make(map[ast.Kind]Handler),
	}
}

// Handle registers h for nodes of the given kind, replacing any previous handler.
func (w *Walker) Handle(kind ast.Kind, h Handler) *Walker {
	w.handlers[kind] = h
	return w
}

// Walk traverses the whole file and returns the failures in the order they
// were added. The result is never nil.
func (w *Walker) Walk() []*Failure {
	w.failures = make([]*Failure, 0)
	w.Visit(w.file)
	return w.failures
}

// Visit dispatches node to its handler, or visits its children when the rule
// has no handler for the node's kind.
func (w *Walker) Visit(node ast.Node) {
	if h, ok := w.handlers[node.Kind()]; ok {
		h(w, node)
		return
	}
	w.VisitChildren(node)
}

// VisitChildren visits the children of node in source order.
func (w *Walker) VisitChildren(node ast.Node) {
	w.ancestors.Push(node)
	for _, child := range node.Children() {
		w.Visit(child)
	}
	w.ancestors.Pop()
}

// Parent returns the parent of the node currently being handled, or nil at the root.
func (w *Walker) Parent() ast.Node {
	return w.Ancestor(0)
}

// Ancestor returns the ancestor depth levels above the parent of the current node.
func (w *Walker) Ancestor(depth int) ast.Node {
	n, _ := w.ancestors.Below(depth)
	return n
}

// File returns the file being walked.
func (w *Walker) File() *ast.File {
	return w.file
}

// AddFailure records a failure covering width bytes from start.
func (w *Walker) AddFailure(start, width int, message string) {
	w.failures = append(w.failures, NewFailure(w.file, start, width, message, w.ruleName))
}

// AddFailureAtNode records a failure covering node.
func (w *Walker) AddFailureAtNode(node ast.Node, message string) {
	w.AddFailure(node.Pos(), ast.Width(node), message)
}
