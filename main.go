package main

import "bestseller-sync/cmd"

func main() {
	cmd.Execute()
}
