package main

import "github.com/devbush/audio-transcribe/internal/adapters/cli"

func main() {
	cli.Execute()
}
