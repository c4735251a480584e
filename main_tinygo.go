//go:build tinygo

package main

import (
	"portal/app"
	"portal/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
