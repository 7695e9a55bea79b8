package main

import "github.com/alexiusacademia/gosection/cmd"

func main() {
	cmd.Execute()
}
