package main

import (
	"exusiai.dev/chartboard/cmd/app"
)

func main() {
	app.Run()
}
