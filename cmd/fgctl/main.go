package main

import (
	"github.com/famousguessr/famousguessr-go/internal/cli"
)

func main() {
	cli.Execute()
}
