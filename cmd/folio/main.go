// Command folio serves and exports the folio blog.
package main

func main() {
	Execute()
}
