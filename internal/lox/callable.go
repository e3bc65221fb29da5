package lox

import (
	"fmt"
	"time"
)

// returnSignal carries the value of a "return" statement up the interpreter's
// error channel until it reaches the call frame that consumes it. It only
// reaches Interpret when a return statement appears outside of any function.
type returnSignal struct {
	value interface{}
}

func newReturnSignal(value interface{}) *returnSignal {
	return &returnSignal{value}
}

func (r *returnSignal) Error() string {
	return fmt.Sprintf("return %v", stringify(r.value))
}

// Callable is implemented by Lox objects that can be called.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
}

// Function is a user-defined Lox function together with the environment that
// was active at its declaration, so its body can keep using the surrounding
// bindings after the declaring scope has returned.
type Function struct {
	decl    *FunctionStmt
	closure *Environment
}

func NewFunction(decl *FunctionStmt, closure *Environment) *Function {
	return &Function{decl, closure}
}

func (fn *Function) Arity() int {
	return len(fn.decl.Params)
}

// Call binds the arguments by position in a fresh environment whose parent is
// the function's closure, not the caller's environment, then executes the
// body. Each call gets its own frame, otherwise recursion would break.
func (fn *Function) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}
	if err := in.execBlock(fn.decl.Body, env); err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return nil, nil
}

func (fn *Function) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}

// nativeFnClock implements the built-in clock(), returning the wall-clock
// time in seconds.
type nativeFnClock struct{}

func (fn *nativeFnClock) Arity() int {
	return 0
}

func (fn *nativeFnClock) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return time.Since(time.Unix(0, 0)).Seconds(), nil
}

func (fn *nativeFnClock) String() string {
	return "<native fn>"
}
