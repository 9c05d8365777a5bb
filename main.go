package main

import "github.com/frahmantamala/student-finance/cmd"

func main() {
	cmd.Execute()
}
