package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokIdent(name string) *Token {
	return NewToken(IDENTIFIER, name, nil, 1)
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(nil)

	env.Define("x", 1.0)
	val, err := env.Get(tokIdent("x"))
	assert.NoError(err)
	assert.Equal(1.0, val)

	// defining again overwrites without complaint
	env.Define("x", "hello")
	val, err = env.Get(tokIdent("x"))
	assert.NoError(err)
	assert.Equal("hello", val)

	// nil is a valid value, distinct from being undefined
	env.Define("y", nil)
	val, err = env.Get(tokIdent("y"))
	assert.NoError(err)
	assert.Nil(val)
}

func TestEnvironmentGetUndefined(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(nil)

	_, err := env.Get(tokIdent("missing"))
	assert.Error(err)
	assert.Equal("Undefined variable 'missing'.\n[line 1]", err.Error())

	var runtimeErr *RuntimeError
	assert.ErrorAs(err, &runtimeErr)
}

func TestEnvironmentAssign(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(nil)

	env.Define("x", 1.0)
	assert.NoError(env.Assign(tokIdent("x"), 2.0))
	val, err := env.Get(tokIdent("x"))
	assert.NoError(err)
	assert.Equal(2.0, val)

	// assignment never creates a binding
	err = env.Assign(tokIdent("missing"), 1.0)
	assert.Error(err)
	assert.Equal("Undefined variable 'missing'.\n[line 1]", err.Error())
}

func TestEnvironmentEnclosing(t *testing.T) {
	assert := assert.New(t)
	global := NewEnvironment(nil)
	local := NewEnvironment(global)

	// lookups walk up the chain
	global.Define("x", 1.0)
	val, err := local.Get(tokIdent("x"))
	assert.NoError(err)
	assert.Equal(1.0, val)

	// a local definition shadows the outer one without touching it
	local.Define("x", 2.0)
	val, err = local.Get(tokIdent("x"))
	assert.NoError(err)
	assert.Equal(2.0, val)
	val, err = global.Get(tokIdent("x"))
	assert.NoError(err)
	assert.Equal(1.0, val)

	// assignment targets the innermost frame that defines the name
	global.Define("y", "before")
	assert.NoError(local.Assign(tokIdent("y"), "after"))
	val, err = global.Get(tokIdent("y"))
	assert.NoError(err)
	assert.Equal("after", val)
}

func TestEnvironmentDeeplyNested(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(nil)
	env.Define("x", 1.0)
	for i := 0; i < 10; i++ {
		env = NewEnvironment(env)
	}

	val, err := env.Get(tokIdent("x"))
	assert.NoError(err)
	assert.Equal(1.0, val)

	assert.NoError(env.Assign(tokIdent("x"), 2.0))
	val, err = env.Get(tokIdent("x"))
	assert.NoError(err)
	assert.Equal(2.0, val)
}
