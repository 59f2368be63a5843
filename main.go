package main

import "nathanbeddoewebdev/dnsimple/cmd"

func main() {
	cmd.Execute()
}
