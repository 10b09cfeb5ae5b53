// SPDX-License-Identifier: MIT

package functor

import "github.com/katalvlaran/lvcat/moncat"

// Category is a strict monoidal target category whose objects are moncat
// types and whose arrows are values of type T.
//
// Then(f, g) is "f then g" and must fail when the codomain of f is not the
// domain of g. Tensor places f left of g.
type Category[T any] interface {
	Id(x moncat.Ty) (T, error)
	Then(f, g T) (T, error)
	Tensor(f, g T) (T, error)
}

// Shaped is implemented by categories that can measure their arrows.
// A functor into a Shaped category checks every arrow image against the
// sizes of its mapped domain and codomain.
type Shaped[T any] interface {
	// Size is the size of the object x in the target (a width, a dimension).
	Size(x moncat.Ty) int
	// Shape returns the sizes of the domain and codomain of f.
	Shape(f T) (dom, cod int)
}
