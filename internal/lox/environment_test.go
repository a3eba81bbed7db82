package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(name string, line int) *Token {
	return NewToken(IDENTIFIER, name, nil, line)
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()

	env.Define("a", float32(1))
	val, err := env.Get(ident("a", 1))
	assert.NoError(err)
	assert.Equal(float32(1), val)

	// a declaration without initializer stores nil
	env.Define("b", nil)
	val, err = env.Get(ident("b", 1))
	assert.NoError(err)
	assert.Nil(val)
}

func TestEnvironmentDefineShadowsSilently(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()

	env.Define("a", float32(1))
	env.Define("a", "now a string")

	val, err := env.Get(ident("a", 1))
	assert.NoError(err)
	assert.Equal("now a string", val)
}

func TestEnvironmentGetUndefined(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()

	_, err := env.Get(ident("ghost", 7))
	assert.Error(err)
	assert.IsType(&RuntimeError{}, err)
	assert.Equal("[line 7] Error: variable 'ghost' is not defined", err.Error())
}

func TestEnvironmentAssign(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()

	env.Define("a", float32(1))
	val, err := env.Assign(ident("a", 1), float32(2))
	assert.NoError(err)
	assert.Equal(float32(2), val)

	got, err := env.Get(ident("a", 1))
	assert.NoError(err)
	assert.Equal(float32(2), got)
}

func TestEnvironmentAssignNeverCreatesBinding(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()

	_, err := env.Assign(ident("a", 3), float32(1))
	assert.Error(err)
	assert.Equal("[line 3] Error: variable 'a' is not defined", err.Error())

	// the failed assignment must not have defined the name
	_, err = env.Get(ident("a", 4))
	assert.Error(err)
}
