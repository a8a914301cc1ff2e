// Package ui provides terminal styling for rendered puzzle output.
//
// Styles are built on github.com/fatih/color, which disables escape codes
// automatically when output is not a terminal (or when NO_COLOR is set).
//
// Example usage:
//
//	fmt.Println(ui.Cell(3, "23", true)) // " 23", the digits in bold green
//	fmt.Println(ui.Blank(3))            // "   "
package ui
