package ast

type NodeType string

const (
	NodeVariable    NodeType = "Variable"
	NodeAbstraction NodeType = "Abstraction"
	NodeApplication NodeType = "Application"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Term is the marker interface for lambda-calculus syntax nodes. Every term
// is one of Variable, Abstraction, or Application; terms are constructed
// once and never mutated afterwards.
type Term interface {
	Node
	termNode()
}

type termMarker struct{}

func (termMarker) termNode() {}

// Variable

type Variable struct {
	nodeImpl
	termMarker

	Name string `json:"name"`
}

func NewVariable(name string) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}

// Abstraction

type Abstraction struct {
	nodeImpl
	termMarker

	Parameter string `json:"parameter"`
	Body      Term   `json:"body"`
}

func NewAbstraction(parameter string, body Term) *Abstraction {
	return &Abstraction{nodeImpl: newNodeImpl(NodeAbstraction), Parameter: parameter, Body: body}
}

// Application

type Application struct {
	nodeImpl
	termMarker

	Function Term `json:"function"`
	Argument Term `json:"argument"`
}

func NewApplication(function Term, argument Term) *Application {
	return &Application{nodeImpl: newNodeImpl(NodeApplication), Function: function, Argument: argument}
}

// Equal reports structural equality of two terms. Nil compares equal only
// to nil.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch left := a.(type) {
	case *Variable:
		right, ok := b.(*Variable)
		return ok && left.Name == right.Name
	case *Abstraction:
		right, ok := b.(*Abstraction)
		return ok && left.Parameter == right.Parameter && Equal(left.Body, right.Body)
	case *Application:
		right, ok := b.(*Application)
		return ok && Equal(left.Function, right.Function) && Equal(left.Argument, right.Argument)
	default:
		return false
	}
}
