// Package webpmux reads WebP container information by running the webpmux
// tool and parsing its -info text report. No image data is decoded; every
// fact comes from the external tool.
package webpmux
