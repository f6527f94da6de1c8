// Command tfsmatch matches network CLI capture files against a TextFSM
// template corpus and writes structured JSON artifacts for the winners.
package main
