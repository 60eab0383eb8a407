package main

import "github.com/video-stream/transcript/cmd"

func main() {
	cmd.Execute()
}
