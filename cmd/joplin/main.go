// Command joplin talks to the Joplin Data API from the shell.
package main

func main() {
	Execute()
}
