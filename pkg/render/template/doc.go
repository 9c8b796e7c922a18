// Package template defines the rendering seam used by the placemark viewer.
// Adapters live in subpackages.
package template
