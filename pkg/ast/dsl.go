package ast

// Term construction helpers.

func Var(name string) *Variable {
	return NewVariable(name)
}

func Abs(parameter string, body Term) *Abstraction {
	return NewAbstraction(parameter, body)
}

func App(function Term, argument Term) *Application {
	return NewApplication(function, argument)
}

// AppN folds a curried application chain left to right, so
// AppN(f, a, b) builds ((f a) b).
func AppN(function Term, arguments ...Term) Term {
	result := function
	for _, arg := range arguments {
		result = NewApplication(result, arg)
	}
	return result
}
