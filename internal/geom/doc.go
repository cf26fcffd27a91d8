// Package geom provides plain geometry and color value types for Riverline.
//
// This package contains type definitions and pure arithmetic only. All other
// internal packages import geom; geom imports nothing internal. This ensures
// geom remains the foundational layer with no circular dependencies.
//
// These types are deliberately framework-free: the layout engine produces
// positions, rectangles, and polylines as data, and the host presentation
// layer maps them onto whatever rendering primitives it uses.
package geom
