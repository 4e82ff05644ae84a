package main

import "item-translator/cmd"

func main() {
	cmd.Execute()
}
