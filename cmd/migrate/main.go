package main

import "github.com/karnaval/go-costume-catalog/cmd/migrate/cmd"

func main() {
	cmd.Execute()
}
