// Command edl runs Edit Description Language scripts against local files.
package main

func main() {
	Execute()
}
