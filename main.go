package main

import "github.com/saturn-engine/jnigen/cmd"

var version = "v0.3.1"

func main() {
	cmd.Execute(version)
}
