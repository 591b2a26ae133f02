/*
Package gaealist implements a family of singly-linked containers in pure Go.
It provides an owned stack, a stack and a queue whose nodes live in a
generation-checked arena, and a nested list with both-end push and pop.
*/
package gaealist
