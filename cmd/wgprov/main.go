// Package main implements the wgprov CLI.
package main

func main() {
	Execute()
}
