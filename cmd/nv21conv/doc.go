// Package main provides the command-line interface for converting raw NV21
// camera frames.
//
// # Overview
//
// nv21conv reads one NV21 frame from disk, runs a configured chain of
// rotate, flip and resize steps, and writes the result as NV21, packed
// RGBA, PNG, or separate luma and chroma plane files.
//
// # Usage
//
// Write a starting configuration:
//
//	go run ./cmd/nv21conv -mkconf
//
// Convert a frame using nv21conv.yml from the working directory:
//
//	go run ./cmd/nv21conv -in cam.nv21 -width 1280 -height 720 -out cam.png
//
// # Configuration
//
// Settings are layered: built-in defaults, then the YAML file, then any
// flag given on the command line. Steps can only be set in the file:
//
//	input: cam.nv21
//	output: cam.png
//	width: 1280
//	height: 720
//	stride: 1280
//	format: png
//	log_level: info
//	steps:
//	- op: rotate
//	  degrees: 90
//	- op: flip
//	  axis: horizontal
//	- op: resize
//	  width: 360
//	  height: 640
//
// # Output Formats
//
//   - nv21: tightly packed NV21
//   - rgba: packed RGBA, 4 bytes per pixel
//   - png: RGBA encoded as PNG
//   - planes: <output>.y and <output>.vu, tightly packed
package main
