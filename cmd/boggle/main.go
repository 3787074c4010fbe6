package main

import "github.com/Captainbleu/Boggle/internal/cli"

func main() {
	cli.Execute()
}
