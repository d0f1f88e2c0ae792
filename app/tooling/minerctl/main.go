package main

import "github.com/hashforge/miner/app/tooling/minerctl/cmd"

func main() {
	cmd.Execute()
}
