package main

import "github.com/saulo-duarte/vocaquiz/cmd"

func main() {
	cmd.Execute()
}
