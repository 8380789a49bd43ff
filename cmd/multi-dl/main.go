package main

import "github.com/ytget/multi-downloader/cmd/multi-dl/cmd"

func main() {
	cmd.Execute()
}
