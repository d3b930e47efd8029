package main

import "github.com/Sena-ops/solcheck/cmd"

func main() {
	cmd.Execute()
}
