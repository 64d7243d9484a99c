package main

import "netconnect/cmd"

func main() {
	cmd.Execute()
}
