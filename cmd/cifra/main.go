// Command cifra solves Cifra Carmesim boxes read from standard input.
//
//	cifra < box.txt
//	cifra render -o solution.html < box.txt
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
