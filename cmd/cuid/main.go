// cuid prints collision-resistant identifiers.
package main

import "github.com/getmockd/cuid/pkg/cli"

func main() {
	cli.Execute()
}
