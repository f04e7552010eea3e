package main

import (
	"github.com/humanbelnik/movierama/core/internal/app"
	"github.com/humanbelnik/movierama/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
