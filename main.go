package main

import "github.com/dzjyyds666/kvq/cmd"

func main() {
	cmd.Execute()
}
