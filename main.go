package main

import "github.com/jsphweid/ukulala/cmd"

func main() {
	cmd.Execute()
}
