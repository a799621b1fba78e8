// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a simple 2d vector type called Vec, a 2d matrix type Mat and an
// affine transform matrix named Affine. All types assume screen coordinates,
// meaning the y axis points down and positive angles turn clockwise.
//
// There is also a type named Rad to represent angle values in radian.
package gm
