package main

import (
	"tweetvault/internal/cmd"
)

func main() {
	cmd.Run()
}
