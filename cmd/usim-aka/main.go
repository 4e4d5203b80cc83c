package main

import "github.com/iniwex5/usim-go/cmd/usim-aka/cmd"

func main() {
	cmd.Execute()
}
