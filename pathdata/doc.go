/*
Package pathdata models vector path data as used by the "d" attribute of
SVG paths, restricted to the commands M, L, C, Q, A, H, V, S, T and Z.

A Data value is a sequence of commands starting with a move-to. Each
command carries a kind, a relative flag and exactly as many values as its
kind demands:

	MoveTo, LineTo, SmoothQuadTo   x y
	HorizontalTo                   x
	VerticalTo                     y
	QuadTo                         x1 y1 x y
	SmoothCubicTo                  x2 y2 x y
	CubicTo                        x1 y1 x2 y2 x y
	ArcTo                          rx ry rot large-arc sweep x y
	ClosePath                      –

The package converts between absolute and relative form, replaces
commands by shorthands where the omitted values can be inferred (and back),
and serializes path data to compact strings:

	d, _ := pathdata.New(pathdata.M(5, 5), pathdata.L(5, 15))
	d, _ = pathdata.ToShorthands(d, -1)   // M5 5 V15
	d, _ = pathdata.ToRelative(d, 1)      // M5 5 v10
	s, _ := pathdata.Serialize(d, 1, true)

Strings produced by Serialize can be read back with Parse.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pathdata
