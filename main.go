package main

import (
	"os"

	"github.com/sunwei/docs-playground/commands"
	"github.com/sunwei/docs-playground/hugofs"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], hugofs.Os, os.Stdout, os.Stderr))
}
