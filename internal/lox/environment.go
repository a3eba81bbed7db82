package lox

import "fmt"

// Environment is the flat variable store for one interpreter session. The
// language has no nested scopes, so there is no enclosing chain.
type Environment struct {
	values map[string]interface{}
}

func NewEnvironment() *Environment {
	return &Environment{make(map[string]interface{})}
}

// Define unconditionally binds the name, silently shadowing any prior
// binding. A declaration without an initializer stores nil.
func (env *Environment) Define(name string, value interface{}) {
	env.values[name] = value
}

// Get returns the value bound to the name held by the token.
func (env *Environment) Get(name *Token) (interface{}, error) {
	if value, ok := env.values[name.Lexeme]; ok {
		return value, nil
	}
	return nil, NewRuntimeError(undefinedVariable(name))
}

// Assign overwrites an existing binding and returns the assigned value so
// chained assignments can evaluate to it. It never creates a new binding.
func (env *Environment) Assign(name *Token, value interface{}) (interface{}, error) {
	if _, ok := env.values[name.Lexeme]; !ok {
		return nil, NewRuntimeError(undefinedVariable(name))
	}
	env.values[name.Lexeme] = value
	return value, nil
}

func undefinedVariable(name *Token) string {
	return fmt.Sprintf(
		"[line %d] Error: variable '%s' is not defined",
		name.Line, name.Lexeme,
	)
}
