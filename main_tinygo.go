//go:build tinygo && baremetal

package main

import (
	"fastgfx/app"
	"fastgfx/hal"
)

func main() {
	hal.RunDevice(app.Factory(app.DefaultConfig()), 30)
}
