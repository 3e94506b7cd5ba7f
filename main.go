package main

import "bucket-catalog/cmd"

func main() {
	cmd.Execute()
}
