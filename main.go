package main

import "github.com/chrisdamba/trafficwatch/cmd"

func main() {
	cmd.Execute()
}
