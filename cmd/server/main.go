package main

import "employees/cmd/server/cmd"

func main() {
	cmd.Execute()
}
