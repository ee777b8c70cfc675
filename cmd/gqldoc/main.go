package main

import (
	"log"
	"os"

	"github.com/vvakame/gqldoc/internal/cli"
)

func main() {
	err := cli.NewRootCommand(os.Stdout).Execute()
	if err != nil {
		log.Fatal(err)
	}
}
