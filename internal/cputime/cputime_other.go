//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package cputime

import "time"

const Supported = false

var processStart = time.Now()

func processTime() time.Duration { return time.Since(processStart) }
