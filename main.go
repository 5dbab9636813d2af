package main

import "github.com/kava-labs/deploy-networks/cmd"

func main() {
	cmd.Execute()
}
