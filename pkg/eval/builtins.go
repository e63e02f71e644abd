package eval

import (
	"fmt"

	"go.starlark.net/starlark"
)

// quoteBuiltin returns the Q builtin. Q("name") resolves a binding by its
// string name, which is the only way to reach columns whose names are not
// valid identifiers (reserved words, spaces, leading digits).
func (e *Environment) quoteBuiltin() *starlark.Builtin {
	return starlark.NewBuiltin("Q", func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var name string
		if err := starlark.UnpackPositionalArgs("Q", args, kwargs, 1, &name); err != nil {
			return nil, err
		}
		v, err := e.Lookup(name)
		if err != nil {
			return nil, err
		}
		return ToStarlark(v)
	})
}

// groupSizeBuiltin returns the n builtin. n() is the size of the current
// group and only has a value inside a grouped operation.
func (e *Environment) groupSizeBuiltin() *starlark.Builtin {
	return starlark.NewBuiltin("n", func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs("n", args, kwargs, 0); err != nil {
			return nil, err
		}
		if e.groupSize < 0 {
			return nil, fmt.Errorf("n() is only defined inside a grouped operation")
		}
		return starlark.MakeInt(e.groupSize), nil
	})
}
