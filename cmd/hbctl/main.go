package main

import "github.com/Mahesh-Koilapu/hbctl/internal/cli"

func main() {
	cli.Execute()
}
