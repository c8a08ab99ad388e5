package main

import (
	"github.com/spencer-p/lowtides/cmd/lowtides/cmd"
)

func main() {
	cmd.Execute()
}
