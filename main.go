package main

import "github.com/tldr-it-stepankutaj/byteproc/cmd/byteproc"

func main() {
	byteproc.Execute()
}
