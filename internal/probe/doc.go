// Package probe inspects PNG headers and classifies their color mode, which
// decides how a file is normalized before JPEG encoding.
package probe
