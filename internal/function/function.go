package function

// Nest nests several wrapping functions around final, allowing `res := a(b(c(final)))` to be written as
// `res := function.Nest(final, a, b, c)`. The first wrapper is the outermost one.
func Nest[T any](final T, wrappers ...func(T) T) T {
	res := final
	for i := len(wrappers) - 1; i >= 0; i-- {
		res = wrappers[i](res)
	}
	return res
}
